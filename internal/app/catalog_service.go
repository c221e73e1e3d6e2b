package app

import (
	"context"

	"github.com/Tanmay000009/swe-fastfood/internal/clock"
	"github.com/Tanmay000009/swe-fastfood/internal/domain"
)

type CatalogRepository interface {
	CreateRestaurant(ctx context.Context, restaurant domain.Restaurant) error
	GetRestaurant(ctx context.Context, id string) (domain.Restaurant, error)
	ListRestaurants(ctx context.Context) ([]domain.Restaurant, error)
	CreateMenuItem(ctx context.Context, item domain.MenuItem) error
	GetMenuItem(ctx context.Context, id string) (domain.MenuItem, error)
	ListMenuByRestaurant(ctx context.Context, restaurantID string) ([]domain.MenuItem, error)
	UpdateMenuItem(ctx context.Context, item domain.MenuItem) error
	DeleteMenuItem(ctx context.Context, id string) error
}

// MenuCache is an optional read-through cache for per-restaurant menu
// listings. Order reads never go through it.
type MenuCache interface {
	GetMenu(ctx context.Context, restaurantID string, load func(context.Context) ([]domain.MenuItem, error)) ([]domain.MenuItem, error)
	Invalidate(ctx context.Context, restaurantID string)
}

// CatalogService owns restaurant and menu item CRUD. It carries no lifecycle
// logic; the only subtlety is keeping the menu cache in sync with writes.
type CatalogService struct {
	repo  CatalogRepository
	cache MenuCache
	clock clock.Clock
}

func NewCatalogService(repo CatalogRepository, cache MenuCache, clk clock.Clock) *CatalogService {
	return &CatalogService{
		repo:  repo,
		cache: cache,
		clock: clk,
	}
}

type CreateRestaurantInput struct {
	OwnerID     string
	Name        string
	Address     string
	Zip         string
	Phone       string
	Cuisine     string
	Description string
}

func (s *CatalogService) CreateRestaurant(ctx context.Context, in CreateRestaurantInput) (domain.Restaurant, error) {
	if in.OwnerID == "" {
		return domain.Restaurant{}, domain.ErrInvalidID
	}
	if in.Name == "" {
		return domain.Restaurant{}, domain.ErrRestaurantNameRequired
	}

	restaurant := domain.Restaurant{
		ID:          newID(),
		OwnerID:     in.OwnerID,
		Name:        in.Name,
		Address:     in.Address,
		Zip:         in.Zip,
		Phone:       in.Phone,
		Cuisine:     in.Cuisine,
		Description: in.Description,
		CreatedAt:   s.clock.Now(),
	}
	if err := s.repo.CreateRestaurant(ctx, restaurant); err != nil {
		return domain.Restaurant{}, err
	}
	return restaurant, nil
}

func (s *CatalogService) GetRestaurant(ctx context.Context, id string) (domain.Restaurant, error) {
	if id == "" {
		return domain.Restaurant{}, domain.ErrInvalidID
	}
	return s.repo.GetRestaurant(ctx, id)
}

func (s *CatalogService) ListRestaurants(ctx context.Context) ([]domain.Restaurant, error) {
	return s.repo.ListRestaurants(ctx)
}

type CreateMenuItemInput struct {
	RestaurantID string
	Name         string
	Price        int64
	Category     string
	Description  string
}

func (s *CatalogService) CreateMenuItem(ctx context.Context, in CreateMenuItemInput) (domain.MenuItem, error) {
	if in.RestaurantID == "" {
		return domain.MenuItem{}, domain.ErrInvalidID
	}
	if in.Name == "" {
		return domain.MenuItem{}, domain.ErrMenuItemNameRequired
	}
	if in.Price < 0 {
		return domain.MenuItem{}, domain.ErrInvalidPrice
	}
	if _, err := s.repo.GetRestaurant(ctx, in.RestaurantID); err != nil {
		return domain.MenuItem{}, err
	}

	item := domain.MenuItem{
		ID:           newID(),
		RestaurantID: in.RestaurantID,
		Name:         in.Name,
		Price:        in.Price,
		Category:     in.Category,
		Description:  in.Description,
		CreatedAt:    s.clock.Now(),
	}
	if err := s.repo.CreateMenuItem(ctx, item); err != nil {
		return domain.MenuItem{}, err
	}
	s.invalidateMenu(ctx, item.RestaurantID)
	return item, nil
}

func (s *CatalogService) GetMenuItem(ctx context.Context, id string) (domain.MenuItem, error) {
	if id == "" {
		return domain.MenuItem{}, domain.ErrInvalidID
	}
	return s.repo.GetMenuItem(ctx, id)
}

func (s *CatalogService) ListMenu(ctx context.Context, restaurantID string) ([]domain.MenuItem, error) {
	if restaurantID == "" {
		return nil, domain.ErrInvalidID
	}
	load := func(ctx context.Context) ([]domain.MenuItem, error) {
		return s.repo.ListMenuByRestaurant(ctx, restaurantID)
	}
	if s.cache == nil {
		return load(ctx)
	}
	return s.cache.GetMenu(ctx, restaurantID, load)
}

type UpdateMenuItemInput struct {
	ID          string
	Name        string
	Price       int64
	Category    string
	Description string
}

func (s *CatalogService) UpdateMenuItem(ctx context.Context, in UpdateMenuItemInput) (domain.MenuItem, error) {
	if in.ID == "" {
		return domain.MenuItem{}, domain.ErrInvalidID
	}
	if in.Name == "" {
		return domain.MenuItem{}, domain.ErrMenuItemNameRequired
	}
	if in.Price < 0 {
		return domain.MenuItem{}, domain.ErrInvalidPrice
	}

	item, err := s.repo.GetMenuItem(ctx, in.ID)
	if err != nil {
		return domain.MenuItem{}, err
	}
	item.Name = in.Name
	item.Price = in.Price
	item.Category = in.Category
	item.Description = in.Description

	if err := s.repo.UpdateMenuItem(ctx, item); err != nil {
		return domain.MenuItem{}, err
	}
	s.invalidateMenu(ctx, item.RestaurantID)
	return item, nil
}

func (s *CatalogService) DeleteMenuItem(ctx context.Context, id string) error {
	if id == "" {
		return domain.ErrInvalidID
	}
	item, err := s.repo.GetMenuItem(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.DeleteMenuItem(ctx, id); err != nil {
		return err
	}
	s.invalidateMenu(ctx, item.RestaurantID)
	return nil
}

func (s *CatalogService) invalidateMenu(ctx context.Context, restaurantID string) {
	if s.cache != nil {
		s.cache.Invalidate(ctx, restaurantID)
	}
}
