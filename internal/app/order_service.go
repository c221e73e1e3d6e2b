package app

import (
	"context"
	"errors"
	"time"

	"github.com/Tanmay000009/swe-fastfood/internal/clock"
	"github.com/Tanmay000009/swe-fastfood/internal/domain"
)

type OrderRepository interface {
	CreateOrder(ctx context.Context, order domain.Order) error
	GetOrder(ctx context.Context, id string) (domain.Order, error)
	ListOrdersByCustomer(ctx context.Context, customerID string) ([]domain.Order, error)
	ListOrdersByRestaurant(ctx context.Context, restaurantID string) ([]domain.Order, error)
	// UpdateOrderStatus is a compare-and-set: it moves the order from expected
	// to next and refreshes updated_date, or fails with ErrStatusConflict when
	// the stored status no longer matches expected.
	UpdateOrderStatus(ctx context.Context, id string, expected, next domain.OrderStatus, at time.Time) (domain.Order, error)
}

type RestaurantLookup interface {
	GetRestaurant(ctx context.Context, id string) (domain.Restaurant, error)
}

type CustomerLookup interface {
	GetCustomer(ctx context.Context, id string) (domain.Customer, error)
}

// OrderEvents receives lifecycle notifications. Implementations are
// best-effort; a failed publish must not fail the order operation.
type OrderEvents interface {
	OrderCreated(ctx context.Context, order domain.Order)
	OrderStatusChanged(ctx context.Context, order domain.Order, previous domain.OrderStatus)
}

type OrderService struct {
	repo         OrderRepository
	restaurants  RestaurantLookup
	customers    CustomerLookup
	projector    *Projector
	events       OrderEvents
	clock        clock.Clock
	cancelWindow time.Duration
}

const defaultCancelWindow = 2 * time.Minute

// maxTransitionAttempts bounds the read-check-set loop when concurrent
// transitions keep invalidating the observed status.
const maxTransitionAttempts = 3

func NewOrderService(
	repo OrderRepository,
	restaurants RestaurantLookup,
	customers CustomerLookup,
	projector *Projector,
	events OrderEvents,
	clk clock.Clock,
	opts ...OrderServiceOption,
) *OrderService {
	svc := &OrderService{
		repo:         repo,
		restaurants:  restaurants,
		customers:    customers,
		projector:    projector,
		events:       events,
		clock:        clk,
		cancelWindow: defaultCancelWindow,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

type OrderServiceOption func(*OrderService)

// WithCancellationWindow overrides how long after creation a customer may
// self-cancel a pending order.
func WithCancellationWindow(d time.Duration) OrderServiceOption {
	return func(s *OrderService) {
		if d > 0 {
			s.cancelWindow = d
		}
	}
}

type SubmitOrderInput struct {
	CustomerID   string
	RestaurantID string
	Lines        []OrderLine
	PickupTime   *time.Time
	Notes        string
}

func (s *OrderService) SubmitOrder(ctx context.Context, in SubmitOrderInput) (domain.Order, error) {
	if in.CustomerID == "" || in.RestaurantID == "" {
		return domain.Order{}, domain.ErrInvalidID
	}
	if len(in.Lines) == 0 {
		return domain.Order{}, domain.ErrEmptyOrder
	}

	total, kept, err := ComputeTotal(in.Lines)
	if err != nil {
		return domain.Order{}, err
	}
	if len(kept) == 0 {
		return domain.Order{}, domain.ErrEmptyOrder
	}

	// Referential checks at creation time; a missing collaborator aborts the
	// whole submission.
	if _, err := s.restaurants.GetRestaurant(ctx, in.RestaurantID); err != nil {
		return domain.Order{}, err
	}
	if _, err := s.customers.GetCustomer(ctx, in.CustomerID); err != nil {
		return domain.Order{}, err
	}

	items := make([]domain.OrderItem, 0, len(kept))
	for _, line := range kept {
		items = append(items, domain.OrderItem{
			MenuItemID: line.MenuItemID,
			Quantity:   line.Quantity,
		})
	}

	now := s.clock.Now()
	order := domain.Order{
		ID:           newID(),
		CustomerID:   in.CustomerID,
		RestaurantID: in.RestaurantID,
		Items:        items,
		Total:        total,
		Status:       domain.OrderStatusPending,
		PickupTime:   in.PickupTime,
		Notes:        in.Notes,
		CreatedDate:  now,
		UpdatedDate:  now,
	}

	if err := s.repo.CreateOrder(ctx, order); err != nil {
		return domain.Order{}, err
	}
	if s.events != nil {
		s.events.OrderCreated(ctx, order)
	}
	return order, nil
}

func (s *OrderService) GetOrder(ctx context.Context, id string) (domain.Order, error) {
	if id == "" {
		return domain.Order{}, domain.ErrInvalidID
	}
	return s.repo.GetOrder(ctx, id)
}

// ListOrdersFilter selects orders by exactly one of customer or restaurant.
type ListOrdersFilter struct {
	CustomerID   string
	RestaurantID string
}

func (s *OrderService) ListOrders(ctx context.Context, filter ListOrdersFilter) ([]domain.OrderSummary, error) {
	var (
		orders []domain.Order
		err    error
	)
	switch {
	case filter.CustomerID != "" && filter.RestaurantID == "":
		orders, err = s.repo.ListOrdersByCustomer(ctx, filter.CustomerID)
	case filter.RestaurantID != "" && filter.CustomerID == "":
		orders, err = s.repo.ListOrdersByRestaurant(ctx, filter.RestaurantID)
	default:
		return nil, domain.ErrInvalidID
	}
	if err != nil {
		return nil, err
	}
	return s.projector.BuildSummaries(ctx, orders)
}

// TransitionOrder moves an order through the status graph on behalf of actor.
// Ownership is verified before any state check. The update itself is a
// compare-and-set against the status observed in this attempt; on conflict
// the order is re-read and re-evaluated, so the loser of a race is told the
// transition is no longer legal rather than seeing a spurious failure.
func (s *OrderService) TransitionOrder(ctx context.Context, orderID string, actor domain.Actor, target domain.OrderStatus) (domain.Order, error) {
	if orderID == "" {
		return domain.Order{}, domain.ErrInvalidID
	}
	switch target {
	case domain.OrderStatusAccepted, domain.OrderStatusCancelled, domain.OrderStatusCompleted:
	default:
		return domain.Order{}, domain.ErrIllegalTransition
	}

	now := s.clock.Now()

	for attempt := 0; attempt < maxTransitionAttempts; attempt++ {
		order, err := s.repo.GetOrder(ctx, orderID)
		if err != nil {
			return domain.Order{}, err
		}

		if err := s.authorize(ctx, order, actor, target); err != nil {
			return domain.Order{}, err
		}

		if !order.Status.CanTransitionTo(target) {
			return domain.Order{}, domain.ErrIllegalTransition
		}

		// Customer self-cancel only within the window; the boundary instant
		// itself still succeeds.
		if actor.Kind == domain.ActorCustomer && target == domain.OrderStatusCancelled {
			if now.Sub(order.CreatedDate) > s.cancelWindow {
				return domain.Order{}, domain.ErrCancelWindowExpired
			}
		}

		updated, err := s.repo.UpdateOrderStatus(ctx, order.ID, order.Status, target, now)
		if errors.Is(err, domain.ErrStatusConflict) {
			continue
		}
		if err != nil {
			return domain.Order{}, err
		}
		if s.events != nil {
			s.events.OrderStatusChanged(ctx, updated, order.Status)
		}
		return updated, nil
	}
	return domain.Order{}, domain.ErrStatusConflict
}

func (s *OrderService) authorize(ctx context.Context, order domain.Order, actor domain.Actor, target domain.OrderStatus) error {
	switch actor.Kind {
	case domain.ActorCustomer:
		if actor.ID == "" || actor.ID != order.CustomerID {
			return domain.ErrForbidden
		}
		// Customers may only cancel; accept/complete are owner actions.
		if target != domain.OrderStatusCancelled {
			return domain.ErrForbidden
		}
		return nil
	case domain.ActorOwner:
		restaurant, err := s.restaurants.GetRestaurant(ctx, order.RestaurantID)
		if err != nil {
			return err
		}
		if actor.ID == "" || restaurant.OwnerID != actor.ID {
			return domain.ErrForbidden
		}
		return nil
	default:
		return domain.ErrForbidden
	}
}
