package app

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/Tanmay000009/swe-fastfood/internal/domain"
)

type MenuItemLookup interface {
	GetMenuItem(ctx context.Context, id string) (domain.MenuItem, error)
}

// Placeholders used when a referenced menu item or restaurant can no longer
// be resolved; a stale reference degrades one line, never the whole summary.
const (
	unavailableItemName   = "Item unavailable"
	unknownRestaurantName = "Unknown restaurant"
)

// Projector joins orders with current menu item and restaurant names to build
// display-ready summaries. Nothing is cached: every call re-resolves names so
// summaries follow menu renames.
type Projector struct {
	menu        MenuItemLookup
	restaurants RestaurantLookup
	concurrency int
}

const defaultProjectorConcurrency = 8

func NewProjector(menu MenuItemLookup, restaurants RestaurantLookup, opts ...ProjectorOption) *Projector {
	p := &Projector{
		menu:        menu,
		restaurants: restaurants,
		concurrency: defaultProjectorConcurrency,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

type ProjectorOption func(*Projector)

// WithProjectorConcurrency bounds how many orders are resolved at once.
func WithProjectorConcurrency(n int) ProjectorOption {
	return func(p *Projector) {
		if n > 0 {
			p.concurrency = n
		}
	}
}

// BuildSummaries resolves each order concurrently and reassembles the results
// in input order. The only error it returns is context cancellation; lookup
// failures degrade to placeholders instead.
func (p *Projector) BuildSummaries(ctx context.Context, orders []domain.Order) ([]domain.OrderSummary, error) {
	out := make([]domain.OrderSummary, len(orders))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.concurrency)
	for i, order := range orders {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out[i] = p.buildOne(gctx, order)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// BuildSummary projects a single order.
func (p *Projector) BuildSummary(ctx context.Context, order domain.Order) domain.OrderSummary {
	return p.buildOne(ctx, order)
}

func (p *Projector) buildOne(ctx context.Context, order domain.Order) domain.OrderSummary {
	summary := domain.OrderSummary{
		OrderID:     order.ID,
		Lines:       make([]domain.OrderSummaryLine, 0, len(order.Items)),
		Status:      order.Status,
		Total:       order.Total,
		CreatedDate: order.CreatedDate,
		PickupTime:  order.PickupTime,
		Notes:       order.Notes,
	}

	for _, item := range order.Items {
		name := unavailableItemName
		if menuItem, err := p.menu.GetMenuItem(ctx, item.MenuItemID); err == nil {
			name = menuItem.Name
		}
		summary.Lines = append(summary.Lines, domain.OrderSummaryLine{
			Name:     name,
			Quantity: item.Quantity,
		})
	}

	summary.RestaurantName = unknownRestaurantName
	if restaurant, err := p.restaurants.GetRestaurant(ctx, order.RestaurantID); err == nil {
		summary.RestaurantName = restaurant.Name
		summary.RestaurantAddress = restaurant.Address
	}
	return summary
}
