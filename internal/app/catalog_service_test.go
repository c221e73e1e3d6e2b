package app

import (
	"context"
	"testing"
	"time"

	"github.com/Tanmay000009/swe-fastfood/internal/clock"
	"github.com/Tanmay000009/swe-fastfood/internal/domain"
)

type fakeCatalogRepo struct {
	restaurants map[string]domain.Restaurant
	items       map[string]domain.MenuItem
}

func newFakeCatalogRepo() *fakeCatalogRepo {
	return &fakeCatalogRepo{
		restaurants: make(map[string]domain.Restaurant),
		items:       make(map[string]domain.MenuItem),
	}
}

func (f *fakeCatalogRepo) CreateRestaurant(_ context.Context, restaurant domain.Restaurant) error {
	f.restaurants[restaurant.ID] = restaurant
	return nil
}

func (f *fakeCatalogRepo) GetRestaurant(_ context.Context, id string) (domain.Restaurant, error) {
	restaurant, ok := f.restaurants[id]
	if !ok {
		return domain.Restaurant{}, domain.ErrRestaurantNotFound
	}
	return restaurant, nil
}

func (f *fakeCatalogRepo) ListRestaurants(context.Context) ([]domain.Restaurant, error) {
	out := make([]domain.Restaurant, 0, len(f.restaurants))
	for _, r := range f.restaurants {
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeCatalogRepo) CreateMenuItem(_ context.Context, item domain.MenuItem) error {
	f.items[item.ID] = item
	return nil
}

func (f *fakeCatalogRepo) GetMenuItem(_ context.Context, id string) (domain.MenuItem, error) {
	item, ok := f.items[id]
	if !ok {
		return domain.MenuItem{}, domain.ErrMenuItemNotFound
	}
	return item, nil
}

func (f *fakeCatalogRepo) ListMenuByRestaurant(_ context.Context, restaurantID string) ([]domain.MenuItem, error) {
	var out []domain.MenuItem
	for _, item := range f.items {
		if item.RestaurantID == restaurantID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (f *fakeCatalogRepo) UpdateMenuItem(_ context.Context, item domain.MenuItem) error {
	if _, ok := f.items[item.ID]; !ok {
		return domain.ErrMenuItemNotFound
	}
	f.items[item.ID] = item
	return nil
}

func (f *fakeCatalogRepo) DeleteMenuItem(_ context.Context, id string) error {
	if _, ok := f.items[id]; !ok {
		return domain.ErrMenuItemNotFound
	}
	delete(f.items, id)
	return nil
}

// fakeMenuCache records read-throughs and invalidations.
type fakeMenuCache struct {
	loads       int
	invalidated []string
}

func (c *fakeMenuCache) GetMenu(ctx context.Context, restaurantID string, load func(context.Context) ([]domain.MenuItem, error)) ([]domain.MenuItem, error) {
	c.loads++
	return load(ctx)
}

func (c *fakeMenuCache) Invalidate(_ context.Context, restaurantID string) {
	c.invalidated = append(c.invalidated, restaurantID)
}

func TestCatalogService_Restaurants(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("create and get round-trip", func(t *testing.T) {
		repo := newFakeCatalogRepo()
		svc := NewCatalogService(repo, nil, clock.NewFixed(now))

		created, err := svc.CreateRestaurant(context.Background(), CreateRestaurantInput{
			OwnerID: testOwnerID,
			Name:    "Campus Canteen",
			Address: "12 Main St",
			Cuisine: "Diner",
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if created.ID == "" || !created.CreatedAt.Equal(now) {
			t.Fatalf("expected id and timestamp set, got %+v", created)
		}

		got, err := svc.GetRestaurant(context.Background(), created.ID)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if got.Name != "Campus Canteen" || got.OwnerID != testOwnerID {
			t.Fatalf("unexpected restaurant: %+v", got)
		}
	})

	t.Run("name required", func(t *testing.T) {
		svc := NewCatalogService(newFakeCatalogRepo(), nil, clock.NewFixed(now))

		_, err := svc.CreateRestaurant(context.Background(), CreateRestaurantInput{OwnerID: testOwnerID})
		if err != domain.ErrRestaurantNameRequired {
			t.Fatalf("expected ErrRestaurantNameRequired, got %v", err)
		}
	})

	t.Run("owner required", func(t *testing.T) {
		svc := NewCatalogService(newFakeCatalogRepo(), nil, clock.NewFixed(now))

		_, err := svc.CreateRestaurant(context.Background(), CreateRestaurantInput{Name: "No Owner"})
		if err != domain.ErrInvalidID {
			t.Fatalf("expected ErrInvalidID, got %v", err)
		}
	})
}

func TestCatalogService_MenuItems(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	seed := func(t *testing.T, cache MenuCache) (*CatalogService, domain.Restaurant) {
		t.Helper()
		repo := newFakeCatalogRepo()
		svc := NewCatalogService(repo, cache, clock.NewFixed(now))
		restaurant, err := svc.CreateRestaurant(context.Background(), CreateRestaurantInput{
			OwnerID: testOwnerID,
			Name:    "Campus Canteen",
		})
		if err != nil {
			t.Fatalf("seed restaurant: %v", err)
		}
		return svc, restaurant
	}

	t.Run("create requires existing restaurant", func(t *testing.T) {
		svc, _ := seed(t, nil)

		_, err := svc.CreateMenuItem(context.Background(), CreateMenuItemInput{
			RestaurantID: "missing",
			Name:         "Burger",
			Price:        500,
		})
		if err != domain.ErrRestaurantNotFound {
			t.Fatalf("expected ErrRestaurantNotFound, got %v", err)
		}
	})

	t.Run("negative price rejected", func(t *testing.T) {
		svc, restaurant := seed(t, nil)

		_, err := svc.CreateMenuItem(context.Background(), CreateMenuItemInput{
			RestaurantID: restaurant.ID,
			Name:         "Burger",
			Price:        -1,
		})
		if err != domain.ErrInvalidPrice {
			t.Fatalf("expected ErrInvalidPrice, got %v", err)
		}
	})

	t.Run("update rewrites fields", func(t *testing.T) {
		svc, restaurant := seed(t, nil)
		item, err := svc.CreateMenuItem(context.Background(), CreateMenuItemInput{
			RestaurantID: restaurant.ID,
			Name:         "Burger",
			Price:        500,
			Category:     "Mains",
		})
		if err != nil {
			t.Fatalf("seed item: %v", err)
		}

		updated, err := svc.UpdateMenuItem(context.Background(), UpdateMenuItemInput{
			ID:       item.ID,
			Name:     "Double Burger",
			Price:    750,
			Category: "Mains",
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if updated.Name != "Double Burger" || updated.Price != 750 {
			t.Fatalf("unexpected item: %+v", updated)
		}
		if updated.RestaurantID != restaurant.ID {
			t.Fatalf("restaurant binding must not change, got %s", updated.RestaurantID)
		}
	})

	t.Run("delete removes item", func(t *testing.T) {
		svc, restaurant := seed(t, nil)
		item, err := svc.CreateMenuItem(context.Background(), CreateMenuItemInput{
			RestaurantID: restaurant.ID,
			Name:         "Fries",
			Price:        300,
		})
		if err != nil {
			t.Fatalf("seed item: %v", err)
		}

		if err := svc.DeleteMenuItem(context.Background(), item.ID); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if _, err := svc.GetMenuItem(context.Background(), item.ID); err != domain.ErrMenuItemNotFound {
			t.Fatalf("expected ErrMenuItemNotFound, got %v", err)
		}
	})

	t.Run("writes invalidate the menu cache", func(t *testing.T) {
		cache := &fakeMenuCache{}
		svc, restaurant := seed(t, cache)

		item, err := svc.CreateMenuItem(context.Background(), CreateMenuItemInput{
			RestaurantID: restaurant.ID,
			Name:         "Burger",
			Price:        500,
		})
		if err != nil {
			t.Fatalf("create item: %v", err)
		}
		if _, err := svc.UpdateMenuItem(context.Background(), UpdateMenuItemInput{
			ID: item.ID, Name: "Burger", Price: 600,
		}); err != nil {
			t.Fatalf("update item: %v", err)
		}
		if err := svc.DeleteMenuItem(context.Background(), item.ID); err != nil {
			t.Fatalf("delete item: %v", err)
		}

		if len(cache.invalidated) != 3 {
			t.Fatalf("expected 3 invalidations, got %d", len(cache.invalidated))
		}
		for i, id := range cache.invalidated {
			if id != restaurant.ID {
				t.Fatalf("invalidation %d targeted %s, want %s", i, id, restaurant.ID)
			}
		}
	})

	t.Run("list reads through the cache when present", func(t *testing.T) {
		cache := &fakeMenuCache{}
		svc, restaurant := seed(t, cache)

		if _, err := svc.ListMenu(context.Background(), restaurant.ID); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if cache.loads != 1 {
			t.Fatalf("expected cache to serve the list, loads=%d", cache.loads)
		}
	})

	t.Run("list works without a cache", func(t *testing.T) {
		svc, restaurant := seed(t, nil)
		if _, err := svc.CreateMenuItem(context.Background(), CreateMenuItemInput{
			RestaurantID: restaurant.ID,
			Name:         "Burger",
			Price:        500,
		}); err != nil {
			t.Fatalf("seed item: %v", err)
		}

		items, err := svc.ListMenu(context.Background(), restaurant.ID)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(items) != 1 {
			t.Fatalf("expected 1 item, got %d", len(items))
		}
	})
}
