package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Tanmay000009/swe-fastfood/internal/domain"
)

type OrderRepository struct {
	pool *pgxpool.Pool
}

func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{pool: pool}
}

// orderItemRecord is the JSONB shape of one order line.
type orderItemRecord struct {
	MenuItemID string `json:"menu_item_id"`
	Quantity   int    `json:"quantity"`
}

const orderColumns = `id, customer_id, restaurant_id, items, order_total, order_status, pickup_time, notes, created_date, updated_date`

func (r *OrderRepository) CreateOrder(ctx context.Context, order domain.Order) error {
	const stmt = `
INSERT INTO orders (id, customer_id, restaurant_id, items, order_total, order_status, pickup_time, notes, created_date, updated_date)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	items, err := marshalItems(order.Items)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, stmt,
		order.ID,
		order.CustomerID,
		order.RestaurantID,
		items,
		order.Total,
		order.Status,
		order.PickupTime,
		order.Notes,
		order.CreatedDate,
		order.UpdatedDate,
	)
	if err != nil {
		if isInvalidUUID(err) {
			return domain.ErrInvalidID
		}
		return fmt.Errorf("create order: %w", err)
	}
	return nil
}

func (r *OrderRepository) GetOrder(ctx context.Context, id string) (domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`

	order, err := scanOrder(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if isInvalidUUID(err) {
			return domain.Order{}, domain.ErrInvalidID
		}
		if err == pgx.ErrNoRows {
			return domain.Order{}, domain.ErrOrderNotFound
		}
		return domain.Order{}, fmt.Errorf("get order: %w", err)
	}
	return order, nil
}

func (r *OrderRepository) ListOrdersByCustomer(ctx context.Context, customerID string) ([]domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE customer_id = $1 ORDER BY created_date DESC`
	return r.list(ctx, query, customerID)
}

func (r *OrderRepository) ListOrdersByRestaurant(ctx context.Context, restaurantID string) ([]domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE restaurant_id = $1 ORDER BY created_date DESC`
	return r.list(ctx, query, restaurantID)
}

// UpdateOrderStatus performs the compare-and-set the lifecycle engine relies
// on: the row only changes when the stored status still equals expected. A
// zero-row update is disambiguated into not-found versus concurrent change.
func (r *OrderRepository) UpdateOrderStatus(ctx context.Context, id string, expected, next domain.OrderStatus, at time.Time) (domain.Order, error) {
	query := `
UPDATE orders
SET order_status = $2, updated_date = $3
WHERE id = $1 AND order_status = $4
RETURNING ` + orderColumns

	order, err := scanOrder(r.pool.QueryRow(ctx, query, id, next, at, expected))
	if err == nil {
		return order, nil
	}
	if isInvalidUUID(err) {
		return domain.Order{}, domain.ErrInvalidID
	}
	if err != pgx.ErrNoRows {
		return domain.Order{}, fmt.Errorf("update order status: %w", err)
	}

	var exists bool
	if err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM orders WHERE id = $1)`, id).Scan(&exists); err != nil {
		return domain.Order{}, fmt.Errorf("update order status: %w", err)
	}
	if !exists {
		return domain.Order{}, domain.ErrOrderNotFound
	}
	return domain.Order{}, domain.ErrStatusConflict
}

func (r *OrderRepository) list(ctx context.Context, query string, arg any) ([]domain.Order, error) {
	rows, err := r.pool.Query(ctx, query, arg)
	if err != nil {
		if isInvalidUUID(err) {
			return nil, domain.ErrInvalidID
		}
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("list orders: %w", err)
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		if isInvalidUUID(err) {
			return nil, domain.ErrInvalidID
		}
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

func scanOrder(row pgx.Row) (domain.Order, error) {
	var (
		o         domain.Order
		status    string
		itemsJSON []byte
	)
	err := row.Scan(
		&o.ID,
		&o.CustomerID,
		&o.RestaurantID,
		&itemsJSON,
		&o.Total,
		&status,
		&o.PickupTime,
		&o.Notes,
		&o.CreatedDate,
		&o.UpdatedDate,
	)
	if err != nil {
		return domain.Order{}, err
	}
	o.Status = domain.OrderStatus(status)

	var records []orderItemRecord
	if err := json.Unmarshal(itemsJSON, &records); err != nil {
		return domain.Order{}, fmt.Errorf("decode order items: %w", err)
	}
	o.Items = make([]domain.OrderItem, 0, len(records))
	for _, rec := range records {
		o.Items = append(o.Items, domain.OrderItem{
			MenuItemID: rec.MenuItemID,
			Quantity:   rec.Quantity,
		})
	}
	return o, nil
}

func marshalItems(items []domain.OrderItem) ([]byte, error) {
	records := make([]orderItemRecord, 0, len(items))
	for _, item := range items {
		records = append(records, orderItemRecord{
			MenuItemID: item.MenuItemID,
			Quantity:   item.Quantity,
		})
	}
	data, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("encode order items: %w", err)
	}
	return data, nil
}
