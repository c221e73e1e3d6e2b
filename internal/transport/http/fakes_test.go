package http

import (
	"context"
	"errors"

	"github.com/Tanmay000009/swe-fastfood/internal/app"
	"github.com/Tanmay000009/swe-fastfood/internal/auth"
	"github.com/Tanmay000009/swe-fastfood/internal/domain"
)

// staticVerifier maps raw tokens straight to principals.
type staticVerifier struct {
	principals map[string]auth.Principal
}

func (v *staticVerifier) Verify(raw string) (auth.Principal, error) {
	p, ok := v.principals[raw]
	if !ok {
		return auth.Principal{}, auth.ErrInvalidToken
	}
	return p, nil
}

type fakeOrders struct {
	submitFn     func(ctx context.Context, in app.SubmitOrderInput) (domain.Order, error)
	getFn        func(ctx context.Context, id string) (domain.Order, error)
	listFn       func(ctx context.Context, filter app.ListOrdersFilter) ([]domain.OrderSummary, error)
	transitionFn func(ctx context.Context, orderID string, actor domain.Actor, target domain.OrderStatus) (domain.Order, error)
}

func (f *fakeOrders) SubmitOrder(ctx context.Context, in app.SubmitOrderInput) (domain.Order, error) {
	if f.submitFn == nil {
		return domain.Order{}, errors.New("submit not stubbed")
	}
	return f.submitFn(ctx, in)
}

func (f *fakeOrders) GetOrder(ctx context.Context, id string) (domain.Order, error) {
	if f.getFn == nil {
		return domain.Order{}, errors.New("get not stubbed")
	}
	return f.getFn(ctx, id)
}

func (f *fakeOrders) ListOrders(ctx context.Context, filter app.ListOrdersFilter) ([]domain.OrderSummary, error) {
	if f.listFn == nil {
		return nil, errors.New("list not stubbed")
	}
	return f.listFn(ctx, filter)
}

func (f *fakeOrders) TransitionOrder(ctx context.Context, orderID string, actor domain.Actor, target domain.OrderStatus) (domain.Order, error) {
	if f.transitionFn == nil {
		return domain.Order{}, errors.New("transition not stubbed")
	}
	return f.transitionFn(ctx, orderID, actor, target)
}

type fakeCatalog struct {
	createRestaurantFn func(ctx context.Context, in app.CreateRestaurantInput) (domain.Restaurant, error)
	getRestaurantFn    func(ctx context.Context, id string) (domain.Restaurant, error)
	listRestaurantsFn  func(ctx context.Context) ([]domain.Restaurant, error)
	createMenuItemFn   func(ctx context.Context, in app.CreateMenuItemInput) (domain.MenuItem, error)
	getMenuItemFn      func(ctx context.Context, id string) (domain.MenuItem, error)
	listMenuFn         func(ctx context.Context, restaurantID string) ([]domain.MenuItem, error)
	updateMenuItemFn   func(ctx context.Context, in app.UpdateMenuItemInput) (domain.MenuItem, error)
	deleteMenuItemFn   func(ctx context.Context, id string) error
}

func (f *fakeCatalog) CreateRestaurant(ctx context.Context, in app.CreateRestaurantInput) (domain.Restaurant, error) {
	if f.createRestaurantFn == nil {
		return domain.Restaurant{}, errors.New("create restaurant not stubbed")
	}
	return f.createRestaurantFn(ctx, in)
}

func (f *fakeCatalog) GetRestaurant(ctx context.Context, id string) (domain.Restaurant, error) {
	if f.getRestaurantFn == nil {
		return domain.Restaurant{}, domain.ErrRestaurantNotFound
	}
	return f.getRestaurantFn(ctx, id)
}

func (f *fakeCatalog) ListRestaurants(ctx context.Context) ([]domain.Restaurant, error) {
	if f.listRestaurantsFn == nil {
		return nil, errors.New("list restaurants not stubbed")
	}
	return f.listRestaurantsFn(ctx)
}

func (f *fakeCatalog) CreateMenuItem(ctx context.Context, in app.CreateMenuItemInput) (domain.MenuItem, error) {
	if f.createMenuItemFn == nil {
		return domain.MenuItem{}, errors.New("create menu item not stubbed")
	}
	return f.createMenuItemFn(ctx, in)
}

func (f *fakeCatalog) GetMenuItem(ctx context.Context, id string) (domain.MenuItem, error) {
	if f.getMenuItemFn == nil {
		return domain.MenuItem{}, domain.ErrMenuItemNotFound
	}
	return f.getMenuItemFn(ctx, id)
}

func (f *fakeCatalog) ListMenu(ctx context.Context, restaurantID string) ([]domain.MenuItem, error) {
	if f.listMenuFn == nil {
		return nil, errors.New("list menu not stubbed")
	}
	return f.listMenuFn(ctx, restaurantID)
}

func (f *fakeCatalog) UpdateMenuItem(ctx context.Context, in app.UpdateMenuItemInput) (domain.MenuItem, error) {
	if f.updateMenuItemFn == nil {
		return domain.MenuItem{}, errors.New("update menu item not stubbed")
	}
	return f.updateMenuItemFn(ctx, in)
}

func (f *fakeCatalog) DeleteMenuItem(ctx context.Context, id string) error {
	if f.deleteMenuItemFn == nil {
		return errors.New("delete menu item not stubbed")
	}
	return f.deleteMenuItemFn(ctx, id)
}

type fakeCustomersSvc struct {
	createFn func(ctx context.Context, in app.CreateCustomerInput) (domain.Customer, error)
	getFn    func(ctx context.Context, id string) (domain.Customer, error)
}

func (f *fakeCustomersSvc) CreateCustomer(ctx context.Context, in app.CreateCustomerInput) (domain.Customer, error) {
	if f.createFn == nil {
		return domain.Customer{}, errors.New("create customer not stubbed")
	}
	return f.createFn(ctx, in)
}

func (f *fakeCustomersSvc) GetCustomer(ctx context.Context, id string) (domain.Customer, error) {
	if f.getFn == nil {
		return domain.Customer{}, domain.ErrCustomerNotFound
	}
	return f.getFn(ctx, id)
}
