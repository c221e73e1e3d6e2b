package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/Tanmay000009/swe-fastfood/internal/app"
	"github.com/Tanmay000009/swe-fastfood/internal/domain"
)

// OrderSubmitter is the minimal interface needed to place an order.
type OrderSubmitter interface {
	SubmitOrder(ctx context.Context, in app.SubmitOrderInput) (domain.Order, error)
}

type OrderGetter interface {
	GetOrder(ctx context.Context, id string) (domain.Order, error)
}

type OrderLister interface {
	ListOrders(ctx context.Context, filter app.ListOrdersFilter) ([]domain.OrderSummary, error)
}

type OrderTransitioner interface {
	TransitionOrder(ctx context.Context, orderID string, actor domain.Actor, target domain.OrderStatus) (domain.Order, error)
}

type RestaurantGetter interface {
	GetRestaurant(ctx context.Context, id string) (domain.Restaurant, error)
}

type submitOrderLine struct {
	MenuItemID string `json:"menu_item_id"`
	UnitPrice  int64  `json:"unit_price"`
	Quantity   int    `json:"quantity"`
}

type submitOrderRequest struct {
	RestaurantID string            `json:"restaurant_id"`
	Items        []submitOrderLine `json:"items"`
	PickupTime   *time.Time        `json:"pickup_time,omitempty"`
	Notes        string            `json:"notes,omitempty"`
}

type orderItemResponse struct {
	MenuItemID string `json:"menu_item_id"`
	Quantity   int    `json:"quantity"`
}

type orderResponse struct {
	ID           string              `json:"id"`
	CustomerID   string              `json:"customer_id"`
	RestaurantID string              `json:"restaurant_id"`
	Items        []orderItemResponse `json:"items"`
	Total        int64               `json:"total"`
	Status       string              `json:"status"`
	PickupTime   *time.Time          `json:"pickup_time,omitempty"`
	Notes        string              `json:"notes,omitempty"`
	CreatedDate  time.Time           `json:"created_date"`
	UpdatedDate  time.Time           `json:"updated_date"`
}

func toOrderResponse(order domain.Order) orderResponse {
	items := make([]orderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, orderItemResponse{
			MenuItemID: item.MenuItemID,
			Quantity:   item.Quantity,
		})
	}
	return orderResponse{
		ID:           order.ID,
		CustomerID:   order.CustomerID,
		RestaurantID: order.RestaurantID,
		Items:        items,
		Total:        order.Total,
		Status:       string(order.Status),
		PickupTime:   order.PickupTime,
		Notes:        order.Notes,
		CreatedDate:  order.CreatedDate,
		UpdatedDate:  order.UpdatedDate,
	}
}

type summaryLineResponse struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

type orderSummaryResponse struct {
	OrderID           string                `json:"order_id"`
	Lines             []summaryLineResponse `json:"lines"`
	RestaurantName    string                `json:"restaurant_name"`
	RestaurantAddress string                `json:"restaurant_address"`
	Status            string                `json:"status"`
	Total             int64                 `json:"total"`
	CreatedDate       time.Time             `json:"created_date"`
	PickupTime        *time.Time            `json:"pickup_time,omitempty"`
	Notes             string                `json:"notes,omitempty"`
}

func toSummaryResponse(summary domain.OrderSummary) orderSummaryResponse {
	lines := make([]summaryLineResponse, 0, len(summary.Lines))
	for _, line := range summary.Lines {
		lines = append(lines, summaryLineResponse{
			Name:     line.Name,
			Quantity: line.Quantity,
		})
	}
	return orderSummaryResponse{
		OrderID:           summary.OrderID,
		Lines:             lines,
		RestaurantName:    summary.RestaurantName,
		RestaurantAddress: summary.RestaurantAddress,
		Status:            string(summary.Status),
		Total:             summary.Total,
		CreatedDate:       summary.CreatedDate,
		PickupTime:        summary.PickupTime,
		Notes:             summary.Notes,
	}
}

// HandleSubmitOrder returns the handler for POST /orders. The customer id
// always comes from the authenticated principal, never the payload.
func HandleSubmitOrder(svc OrderSubmitter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, ok := principalFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, codeUnauthorized, "no token provided")
			return
		}
		if principal.Role != domain.ActorCustomer {
			writeError(w, http.StatusForbidden, codeForbidden, "only customers can place orders")
			return
		}

		var req submitOrderRequest
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
			return
		}

		lines := make([]app.OrderLine, 0, len(req.Items))
		for _, item := range req.Items {
			lines = append(lines, app.OrderLine{
				MenuItemID: item.MenuItemID,
				UnitPrice:  item.UnitPrice,
				Quantity:   item.Quantity,
			})
		}

		order, err := svc.SubmitOrder(r.Context(), app.SubmitOrderInput{
			CustomerID:   principal.ID,
			RestaurantID: req.RestaurantID,
			Lines:        lines,
			PickupTime:   req.PickupTime,
			Notes:        req.Notes,
		})
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, toOrderResponse(order))
	}
}

// HandleGetOrder returns the handler for GET /orders/{id}. The order is only
// visible to its customer and the owning restaurant's owner.
func HandleGetOrder(svc OrderGetter, restaurants RestaurantGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, ok := principalFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, codeUnauthorized, "no token provided")
			return
		}

		order, err := svc.GetOrder(r.Context(), r.PathValue("id"))
		if err != nil {
			writeDomainError(w, err)
			return
		}

		switch principal.Role {
		case domain.ActorCustomer:
			if order.CustomerID != principal.ID {
				writeError(w, http.StatusForbidden, codeForbidden, "order belongs to another customer")
				return
			}
		case domain.ActorOwner:
			restaurant, err := restaurants.GetRestaurant(r.Context(), order.RestaurantID)
			if err != nil {
				writeDomainError(w, err)
				return
			}
			if restaurant.OwnerID != principal.ID {
				writeError(w, http.StatusForbidden, codeForbidden, "order belongs to another restaurant")
				return
			}
		default:
			writeError(w, http.StatusForbidden, codeForbidden, "unknown role")
			return
		}

		writeJSON(w, http.StatusOK, toOrderResponse(order))
	}
}

// HandleListOrders returns the handler for GET /orders. Customers see their
// own orders; owners see orders of a restaurant they own.
func HandleListOrders(svc OrderLister, restaurants RestaurantGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, ok := principalFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, codeUnauthorized, "no token provided")
			return
		}

		var filter app.ListOrdersFilter
		switch principal.Role {
		case domain.ActorCustomer:
			customerID := r.URL.Query().Get("customer_id")
			if customerID == "" {
				customerID = principal.ID
			}
			if customerID != principal.ID {
				writeError(w, http.StatusForbidden, codeForbidden, "cannot list another customer's orders")
				return
			}
			filter.CustomerID = customerID
		case domain.ActorOwner:
			restaurantID := r.URL.Query().Get("restaurant_id")
			if restaurantID == "" {
				writeError(w, http.StatusBadRequest, codeInvalidID, "restaurant_id is required")
				return
			}
			restaurant, err := restaurants.GetRestaurant(r.Context(), restaurantID)
			if err != nil {
				writeDomainError(w, err)
				return
			}
			if restaurant.OwnerID != principal.ID {
				writeError(w, http.StatusForbidden, codeForbidden, "restaurant does not belong to this owner")
				return
			}
			filter.RestaurantID = restaurantID
		default:
			writeError(w, http.StatusForbidden, codeForbidden, "unknown role")
			return
		}

		summaries, err := svc.ListOrders(r.Context(), filter)
		if err != nil {
			writeDomainError(w, err)
			return
		}
		out := make([]orderSummaryResponse, 0, len(summaries))
		for _, summary := range summaries {
			out = append(out, toSummaryResponse(summary))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// HandleTransitionOrder returns the handler for the accept/cancel/complete
// routes; target fixes which transition the route performs.
func HandleTransitionOrder(svc OrderTransitioner, target domain.OrderStatus) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, ok := principalFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, codeUnauthorized, "no token provided")
			return
		}

		order, err := svc.TransitionOrder(r.Context(), r.PathValue("id"), principal.Actor(), target)
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toOrderResponse(order))
	}
}
