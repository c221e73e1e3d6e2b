package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/Tanmay000009/swe-fastfood/internal/app"
	"github.com/Tanmay000009/swe-fastfood/internal/domain"
)

// Catalog is the surface the restaurant and menu handlers need.
type Catalog interface {
	CreateRestaurant(ctx context.Context, in app.CreateRestaurantInput) (domain.Restaurant, error)
	GetRestaurant(ctx context.Context, id string) (domain.Restaurant, error)
	ListRestaurants(ctx context.Context) ([]domain.Restaurant, error)
	CreateMenuItem(ctx context.Context, in app.CreateMenuItemInput) (domain.MenuItem, error)
	ListMenu(ctx context.Context, restaurantID string) ([]domain.MenuItem, error)
	UpdateMenuItem(ctx context.Context, in app.UpdateMenuItemInput) (domain.MenuItem, error)
	DeleteMenuItem(ctx context.Context, id string) error
}

type restaurantResponse struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"owner_id"`
	Name        string    `json:"name"`
	Address     string    `json:"address"`
	Zip         string    `json:"zip,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	Cuisine     string    `json:"cuisine,omitempty"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func toRestaurantResponse(r domain.Restaurant) restaurantResponse {
	return restaurantResponse{
		ID:          r.ID,
		OwnerID:     r.OwnerID,
		Name:        r.Name,
		Address:     r.Address,
		Zip:         r.Zip,
		Phone:       r.Phone,
		Cuisine:     r.Cuisine,
		Description: r.Description,
		CreatedAt:   r.CreatedAt,
	}
}

type menuItemResponse struct {
	ID           string    `json:"id"`
	RestaurantID string    `json:"restaurant_id"`
	Name         string    `json:"name"`
	Price        int64     `json:"price"`
	Category     string    `json:"category,omitempty"`
	Description  string    `json:"description,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

func toMenuItemResponse(item domain.MenuItem) menuItemResponse {
	return menuItemResponse{
		ID:           item.ID,
		RestaurantID: item.RestaurantID,
		Name:         item.Name,
		Price:        item.Price,
		Category:     item.Category,
		Description:  item.Description,
		CreatedAt:    item.CreatedAt,
	}
}

type createRestaurantRequest struct {
	Name        string `json:"name"`
	Address     string `json:"address"`
	Zip         string `json:"zip"`
	Phone       string `json:"phone"`
	Cuisine     string `json:"cuisine"`
	Description string `json:"description"`
}

// HandleCreateRestaurant returns the handler for POST /restaurants; the
// authenticated owner becomes the restaurant's owner.
func HandleCreateRestaurant(svc Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, ok := principalFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, codeUnauthorized, "no token provided")
			return
		}
		if principal.Role != domain.ActorOwner {
			writeError(w, http.StatusForbidden, codeForbidden, "only owners can create restaurants")
			return
		}

		var req createRestaurantRequest
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
			return
		}

		restaurant, err := svc.CreateRestaurant(r.Context(), app.CreateRestaurantInput{
			OwnerID:     principal.ID,
			Name:        req.Name,
			Address:     req.Address,
			Zip:         req.Zip,
			Phone:       req.Phone,
			Cuisine:     req.Cuisine,
			Description: req.Description,
		})
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, toRestaurantResponse(restaurant))
	}
}

// HandleListRestaurants returns the handler for GET /restaurants.
func HandleListRestaurants(svc Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		restaurants, err := svc.ListRestaurants(r.Context())
		if err != nil {
			writeDomainError(w, err)
			return
		}
		out := make([]restaurantResponse, 0, len(restaurants))
		for _, restaurant := range restaurants {
			out = append(out, toRestaurantResponse(restaurant))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// HandleGetRestaurant returns the handler for GET /restaurants/{id}.
func HandleGetRestaurant(svc Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		restaurant, err := svc.GetRestaurant(r.Context(), r.PathValue("id"))
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toRestaurantResponse(restaurant))
	}
}

type createMenuItemRequest struct {
	Name        string `json:"name"`
	Price       int64  `json:"price"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

// HandleCreateMenuItem returns the handler for POST /restaurants/{id}/menu.
func HandleCreateMenuItem(svc Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, ok := principalFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, codeUnauthorized, "no token provided")
			return
		}
		restaurantID := r.PathValue("id")
		if err := requireRestaurantOwner(r.Context(), svc, principal.ID, principal.Role, restaurantID); err != nil {
			writeDomainError(w, err)
			return
		}

		var req createMenuItemRequest
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
			return
		}

		item, err := svc.CreateMenuItem(r.Context(), app.CreateMenuItemInput{
			RestaurantID: restaurantID,
			Name:         req.Name,
			Price:        req.Price,
			Category:     req.Category,
			Description:  req.Description,
		})
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, toMenuItemResponse(item))
	}
}

// HandleListMenu returns the handler for GET /restaurants/{id}/menu.
func HandleListMenu(svc Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListMenu(r.Context(), r.PathValue("id"))
		if err != nil {
			writeDomainError(w, err)
			return
		}
		out := make([]menuItemResponse, 0, len(items))
		for _, item := range items {
			out = append(out, toMenuItemResponse(item))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

type updateMenuItemRequest struct {
	Name        string `json:"name"`
	Price       int64  `json:"price"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

// HandleUpdateMenuItem returns the handler for PUT /menu-items/{id}.
func HandleUpdateMenuItem(svc Catalog, menu MenuItemGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, ok := principalFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, codeUnauthorized, "no token provided")
			return
		}
		itemID := r.PathValue("id")
		existing, err := menu.GetMenuItem(r.Context(), itemID)
		if err != nil {
			writeDomainError(w, err)
			return
		}
		if err := requireRestaurantOwner(r.Context(), svc, principal.ID, principal.Role, existing.RestaurantID); err != nil {
			writeDomainError(w, err)
			return
		}

		var req updateMenuItemRequest
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
			return
		}

		item, err := svc.UpdateMenuItem(r.Context(), app.UpdateMenuItemInput{
			ID:          itemID,
			Name:        req.Name,
			Price:       req.Price,
			Category:    req.Category,
			Description: req.Description,
		})
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toMenuItemResponse(item))
	}
}

// HandleDeleteMenuItem returns the handler for DELETE /menu-items/{id}.
func HandleDeleteMenuItem(svc Catalog, menu MenuItemGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, ok := principalFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, codeUnauthorized, "no token provided")
			return
		}
		itemID := r.PathValue("id")
		existing, err := menu.GetMenuItem(r.Context(), itemID)
		if err != nil {
			writeDomainError(w, err)
			return
		}
		if err := requireRestaurantOwner(r.Context(), svc, principal.ID, principal.Role, existing.RestaurantID); err != nil {
			writeDomainError(w, err)
			return
		}

		if err := svc.DeleteMenuItem(r.Context(), itemID); err != nil {
			writeDomainError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

type MenuItemGetter interface {
	GetMenuItem(ctx context.Context, id string) (domain.MenuItem, error)
}

func requireRestaurantOwner(ctx context.Context, svc Catalog, principalID string, role domain.ActorKind, restaurantID string) error {
	if role != domain.ActorOwner {
		return domain.ErrForbidden
	}
	restaurant, err := svc.GetRestaurant(ctx, restaurantID)
	if err != nil {
		return err
	}
	if restaurant.OwnerID != principalID {
		return domain.ErrForbidden
	}
	return nil
}
