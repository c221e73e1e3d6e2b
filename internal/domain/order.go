package domain

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "Pending"
	OrderStatusAccepted  OrderStatus = "Accepted"
	OrderStatusCancelled OrderStatus = "Cancelled"
	OrderStatusCompleted OrderStatus = "Completed"
)

// Terminal reports whether no further transitions are allowed from s.
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusCancelled || s == OrderStatusCompleted
}

// CanTransitionTo reports whether the status graph has an edge from s to next.
// Actor policy (who may trigger the edge, cancellation windows) belongs to the
// order service, not here.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	switch s {
	case OrderStatusPending:
		return next == OrderStatusAccepted || next == OrderStatusCancelled
	case OrderStatusAccepted:
		return next == OrderStatusCompleted
	default:
		return false
	}
}

// OrderItem is one line of an order. Quantity is positive; zero-quantity
// lines are dropped before the order is persisted.
type OrderItem struct {
	MenuItemID string
	Quantity   int
}

// Order is a customer's request for menu item quantities from one restaurant.
// Items and Total are fixed at creation; only Status and UpdatedDate change
// afterwards.
type Order struct {
	ID           string
	CustomerID   string
	RestaurantID string
	Items        []OrderItem
	// Total is in minor currency units, priced at creation time.
	Total       int64
	Status      OrderStatus
	PickupTime  *time.Time
	Notes       string
	CreatedDate time.Time
	UpdatedDate time.Time
}

// OrderSummaryLine is a display line of an order summary.
type OrderSummaryLine struct {
	Name     string
	Quantity int
}

// OrderSummary is the denormalized read-time view of an order joined with
// current menu item and restaurant names. It is rebuilt on every read and
// never persisted.
type OrderSummary struct {
	OrderID           string
	Lines             []OrderSummaryLine
	RestaurantName    string
	RestaurantAddress string
	Status            OrderStatus
	Total             int64
	CreatedDate       time.Time
	PickupTime        *time.Time
	Notes             string
}
