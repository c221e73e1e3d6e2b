package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Tanmay000009/swe-fastfood/internal/domain"
)

type CatalogRepository struct {
	pool *pgxpool.Pool
}

func NewCatalogRepository(pool *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{pool: pool}
}

func (r *CatalogRepository) CreateRestaurant(ctx context.Context, restaurant domain.Restaurant) error {
	const stmt = `
INSERT INTO restaurants (id, owner_id, name, address, zip, phone, cuisine, description, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.pool.Exec(ctx, stmt,
		restaurant.ID,
		restaurant.OwnerID,
		restaurant.Name,
		restaurant.Address,
		restaurant.Zip,
		restaurant.Phone,
		restaurant.Cuisine,
		restaurant.Description,
		restaurant.CreatedAt,
	)
	if err != nil {
		if isInvalidUUID(err) {
			return domain.ErrInvalidID
		}
		return fmt.Errorf("create restaurant: %w", err)
	}
	return nil
}

func (r *CatalogRepository) GetRestaurant(ctx context.Context, id string) (domain.Restaurant, error) {
	const query = `
SELECT id, owner_id, name, address, zip, phone, cuisine, description, created_at
FROM restaurants
WHERE id = $1`

	var rest domain.Restaurant
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&rest.ID,
		&rest.OwnerID,
		&rest.Name,
		&rest.Address,
		&rest.Zip,
		&rest.Phone,
		&rest.Cuisine,
		&rest.Description,
		&rest.CreatedAt,
	)
	if err != nil {
		if isInvalidUUID(err) {
			return domain.Restaurant{}, domain.ErrInvalidID
		}
		if err == pgx.ErrNoRows {
			return domain.Restaurant{}, domain.ErrRestaurantNotFound
		}
		return domain.Restaurant{}, fmt.Errorf("get restaurant: %w", err)
	}
	return rest, nil
}

func (r *CatalogRepository) ListRestaurants(ctx context.Context) ([]domain.Restaurant, error) {
	const query = `
SELECT id, owner_id, name, address, zip, phone, cuisine, description, created_at
FROM restaurants
ORDER BY name`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list restaurants: %w", err)
	}
	defer rows.Close()

	var restaurants []domain.Restaurant
	for rows.Next() {
		var rest domain.Restaurant
		if err := rows.Scan(
			&rest.ID,
			&rest.OwnerID,
			&rest.Name,
			&rest.Address,
			&rest.Zip,
			&rest.Phone,
			&rest.Cuisine,
			&rest.Description,
			&rest.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("list restaurants: %w", err)
		}
		restaurants = append(restaurants, rest)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list restaurants: %w", err)
	}
	return restaurants, nil
}

func (r *CatalogRepository) CreateMenuItem(ctx context.Context, item domain.MenuItem) error {
	const stmt = `
INSERT INTO menu_items (id, restaurant_id, name, price, category, description, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.pool.Exec(ctx, stmt,
		item.ID,
		item.RestaurantID,
		item.Name,
		item.Price,
		item.Category,
		item.Description,
		item.CreatedAt,
	)
	if err != nil {
		if isInvalidUUID(err) {
			return domain.ErrInvalidID
		}
		return fmt.Errorf("create menu item: %w", err)
	}
	return nil
}

func (r *CatalogRepository) GetMenuItem(ctx context.Context, id string) (domain.MenuItem, error) {
	const query = `
SELECT id, restaurant_id, name, price, category, description, created_at
FROM menu_items
WHERE id = $1`

	var item domain.MenuItem
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&item.ID,
		&item.RestaurantID,
		&item.Name,
		&item.Price,
		&item.Category,
		&item.Description,
		&item.CreatedAt,
	)
	if err != nil {
		if isInvalidUUID(err) {
			return domain.MenuItem{}, domain.ErrInvalidID
		}
		if err == pgx.ErrNoRows {
			return domain.MenuItem{}, domain.ErrMenuItemNotFound
		}
		return domain.MenuItem{}, fmt.Errorf("get menu item: %w", err)
	}
	return item, nil
}

func (r *CatalogRepository) ListMenuByRestaurant(ctx context.Context, restaurantID string) ([]domain.MenuItem, error) {
	const query = `
SELECT id, restaurant_id, name, price, category, description, created_at
FROM menu_items
WHERE restaurant_id = $1
ORDER BY category, name`

	rows, err := r.pool.Query(ctx, query, restaurantID)
	if err != nil {
		if isInvalidUUID(err) {
			return nil, domain.ErrInvalidID
		}
		return nil, fmt.Errorf("list menu: %w", err)
	}
	defer rows.Close()

	var items []domain.MenuItem
	for rows.Next() {
		var item domain.MenuItem
		if err := rows.Scan(
			&item.ID,
			&item.RestaurantID,
			&item.Name,
			&item.Price,
			&item.Category,
			&item.Description,
			&item.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("list menu: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		if isInvalidUUID(err) {
			return nil, domain.ErrInvalidID
		}
		return nil, fmt.Errorf("list menu: %w", err)
	}
	return items, nil
}

func (r *CatalogRepository) UpdateMenuItem(ctx context.Context, item domain.MenuItem) error {
	const stmt = `
UPDATE menu_items
SET name = $2, price = $3, category = $4, description = $5
WHERE id = $1`

	tag, err := r.pool.Exec(ctx, stmt,
		item.ID,
		item.Name,
		item.Price,
		item.Category,
		item.Description,
	)
	if err != nil {
		if isInvalidUUID(err) {
			return domain.ErrInvalidID
		}
		return fmt.Errorf("update menu item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrMenuItemNotFound
	}
	return nil
}

func (r *CatalogRepository) DeleteMenuItem(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM menu_items WHERE id = $1`, id)
	if err != nil {
		if isInvalidUUID(err) {
			return domain.ErrInvalidID
		}
		return fmt.Errorf("delete menu item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrMenuItemNotFound
	}
	return nil
}
