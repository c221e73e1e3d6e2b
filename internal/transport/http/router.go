package http

import (
	"net/http"

	"github.com/Tanmay000009/swe-fastfood/internal/domain"
)

// RouterDeps collects everything the route table needs.
type RouterDeps struct {
	Orders interface {
		OrderSubmitter
		OrderGetter
		OrderLister
		OrderTransitioner
	}
	Catalog interface {
		Catalog
		MenuItemGetter
	}
	Customers Customers
	Verifier  TokenVerifier
}

// NewRouter builds the full route table. Auth is applied per route so public
// reads (restaurant listings, menus) stay token-free.
func NewRouter(deps RouterDeps) *http.ServeMux {
	mux := http.NewServeMux()
	authed := func(h http.Handler) http.Handler {
		return RequireAuth(deps.Verifier, h)
	}

	mux.HandleFunc("GET /health", HealthHandler)

	mux.Handle("POST /orders", authed(HandleSubmitOrder(deps.Orders)))
	mux.Handle("GET /orders", authed(HandleListOrders(deps.Orders, deps.Catalog)))
	mux.Handle("GET /orders/{id}", authed(HandleGetOrder(deps.Orders, deps.Catalog)))
	mux.Handle("POST /orders/{id}/accept", authed(HandleTransitionOrder(deps.Orders, domain.OrderStatusAccepted)))
	mux.Handle("POST /orders/{id}/cancel", authed(HandleTransitionOrder(deps.Orders, domain.OrderStatusCancelled)))
	mux.Handle("POST /orders/{id}/complete", authed(HandleTransitionOrder(deps.Orders, domain.OrderStatusCompleted)))

	mux.Handle("POST /restaurants", authed(HandleCreateRestaurant(deps.Catalog)))
	mux.Handle("GET /restaurants", HandleListRestaurants(deps.Catalog))
	mux.Handle("GET /restaurants/{id}", HandleGetRestaurant(deps.Catalog))
	mux.Handle("POST /restaurants/{id}/menu", authed(HandleCreateMenuItem(deps.Catalog)))
	mux.Handle("GET /restaurants/{id}/menu", HandleListMenu(deps.Catalog))
	mux.Handle("PUT /menu-items/{id}", authed(HandleUpdateMenuItem(deps.Catalog, deps.Catalog)))
	mux.Handle("DELETE /menu-items/{id}", authed(HandleDeleteMenuItem(deps.Catalog, deps.Catalog)))

	mux.Handle("POST /customers", HandleCreateCustomer(deps.Customers))
	mux.Handle("GET /customers/{id}", authed(HandleGetCustomer(deps.Customers)))

	mux.Handle("/", NotFoundHandler())
	return mux
}
