package app

import (
	"context"
	"sync"
	"time"

	"github.com/Tanmay000009/swe-fastfood/internal/domain"
)

// fakeOrderRepo is an in-memory OrderRepository whose UpdateOrderStatus is a
// real compare-and-set, so concurrent transition tests behave like the
// Postgres implementation.
type fakeOrderRepo struct {
	mu     sync.Mutex
	orders map[string]domain.Order
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[string]domain.Order)}
}

func (f *fakeOrderRepo) CreateOrder(_ context.Context, order domain.Order) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.orders[order.ID] = order
	return nil
}

func (f *fakeOrderRepo) GetOrder(_ context.Context, id string) (domain.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	order, ok := f.orders[id]
	if !ok {
		return domain.Order{}, domain.ErrOrderNotFound
	}
	return order, nil
}

func (f *fakeOrderRepo) ListOrdersByCustomer(_ context.Context, customerID string) ([]domain.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.Order
	for _, order := range f.orders {
		if order.CustomerID == customerID {
			out = append(out, order)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) ListOrdersByRestaurant(_ context.Context, restaurantID string) ([]domain.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.Order
	for _, order := range f.orders {
		if order.RestaurantID == restaurantID {
			out = append(out, order)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) UpdateOrderStatus(_ context.Context, id string, expected, next domain.OrderStatus, at time.Time) (domain.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	order, ok := f.orders[id]
	if !ok {
		return domain.Order{}, domain.ErrOrderNotFound
	}
	if order.Status != expected {
		return domain.Order{}, domain.ErrStatusConflict
	}
	order.Status = next
	order.UpdatedDate = at
	f.orders[id] = order
	return order, nil
}

type fakeRestaurants struct {
	restaurants map[string]domain.Restaurant
}

func (f *fakeRestaurants) GetRestaurant(_ context.Context, id string) (domain.Restaurant, error) {
	restaurant, ok := f.restaurants[id]
	if !ok {
		return domain.Restaurant{}, domain.ErrRestaurantNotFound
	}
	return restaurant, nil
}

type fakeCustomers struct {
	customers map[string]domain.Customer
}

func (f *fakeCustomers) GetCustomer(_ context.Context, id string) (domain.Customer, error) {
	customer, ok := f.customers[id]
	if !ok {
		return domain.Customer{}, domain.ErrCustomerNotFound
	}
	return customer, nil
}

type fakeMenu struct {
	mu    sync.Mutex
	items map[string]domain.MenuItem
}

func (f *fakeMenu) GetMenuItem(_ context.Context, id string) (domain.MenuItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	item, ok := f.items[id]
	if !ok {
		return domain.MenuItem{}, domain.ErrMenuItemNotFound
	}
	return item, nil
}

// recordingEvents captures published lifecycle notifications.
type recordingEvents struct {
	mu      sync.Mutex
	created []domain.Order
	changed []statusChange
}

type statusChange struct {
	order    domain.Order
	previous domain.OrderStatus
}

func (r *recordingEvents) OrderCreated(_ context.Context, order domain.Order) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.created = append(r.created, order)
}

func (r *recordingEvents) OrderStatusChanged(_ context.Context, order domain.Order, previous domain.OrderStatus) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.changed = append(r.changed, statusChange{order: order, previous: previous})
}
