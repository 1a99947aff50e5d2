package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"marketplace/internal/model"

	"github.com/jackc/pgx/v5"
)

// OrderRepository defines operations for orders and their line items
type OrderRepository interface {
	CreateWithItems(ctx context.Context, order *model.Order) error
	FindByContact(ctx context.Context, filters model.OrderFilters) ([]model.Order, error)
	FindAll(ctx context.Context) ([]model.Order, error)
	UpdateStatus(ctx context.Context, id int64, status model.OrderStatus) (*model.Order, error)
}

type orderRepository struct {
	db DBTX
}

// NewOrderRepository creates a new OrderRepository
func NewOrderRepository(db DBTX) OrderRepository {
	return &orderRepository{db: db}
}

const orderColumns = `id, buyer_name, buyer_contact, delivery_address, payment_method, total_amount, status, created_at`

func scanOrder(row scanner, o *model.Order) error {
	return row.Scan(&o.ID, &o.BuyerName, &o.BuyerContact, &o.DeliveryAddress, &o.PaymentMethod,
		&o.TotalAmount, &o.Status, &o.CreatedAt)
}

// CreateWithItems inserts the order and every line item in one transaction.
// Either all rows are committed or none are.
func (r *orderRepository) CreateWithItems(ctx context.Context, o *model.Order) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin order transaction: %w", err)
	}

	orderSQL := `INSERT INTO orders (buyer_name, buyer_contact, delivery_address, payment_method, total_amount, status)
            VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, created_at`
	err = tx.QueryRow(ctx, orderSQL, o.BuyerName, o.BuyerContact, o.DeliveryAddress, o.PaymentMethod, o.TotalAmount, o.Status).
		Scan(&o.ID, &o.CreatedAt)
	if err != nil {
		_ = tx.Rollback(ctx)
		return fmt.Errorf("failed to create order: %w", err)
	}

	itemSQL := `INSERT INTO order_items (order_id, product_name, quantity, unit_type, price_per_kg, total_price)
            VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	for i := range o.CartSummary {
		item := &o.CartSummary[i]
		item.OrderID = o.ID
		err := tx.QueryRow(ctx, itemSQL, item.OrderID, item.ProductName, item.Quantity, item.UnitType, item.PricePerKg, item.TotalPrice).
			Scan(&item.ID)
		if err != nil {
			_ = tx.Rollback(ctx)
			return fmt.Errorf("failed to create order item %d: %w", i, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit order transaction: %w", err)
	}
	return nil
}

// FindByContact lists a buyer's orders, newest first, optionally narrowed by status
func (r *orderRepository) FindByContact(ctx context.Context, filters model.OrderFilters) ([]model.Order, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT ` + orderColumns + ` FROM orders WHERE buyer_contact = $1`)
	args := []any{filters.BuyerContact}

	if filters.Status != nil && *filters.Status != "" {
		queryBuilder.WriteString(" AND status = $2")
		args = append(args, *filters.Status)
	}
	queryBuilder.WriteString(" ORDER BY created_at DESC, id DESC")

	return r.queryOrders(ctx, queryBuilder.String(), args...)
}

// FindAll lists every order, newest first
func (r *orderRepository) FindAll(ctx context.Context) ([]model.Order, error) {
	return r.queryOrders(ctx, `SELECT `+orderColumns+` FROM orders ORDER BY created_at DESC, id DESC`)
}

// UpdateStatus sets the status of an order and returns the updated record with its line items
func (r *orderRepository) UpdateStatus(ctx context.Context, id int64, status model.OrderStatus) (*model.Order, error) {
	updated := make([]model.Order, 1)
	sql := `UPDATE orders SET status = $1 WHERE id = $2 RETURNING ` + orderColumns
	if err := scanOrder(r.db.QueryRow(ctx, sql, status, id), &updated[0]); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}
	if err := r.attachItems(ctx, updated); err != nil {
		return nil, err
	}
	return &updated[0], nil
}

func (r *orderRepository) queryOrders(ctx context.Context, sql string, args ...any) ([]model.Order, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	orders := make([]model.Order, 0)
	for rows.Next() {
		var o model.Order
		if err := scanOrder(rows, &o); err != nil {
			return nil, fmt.Errorf("failed to scan order row: %w", err)
		}
		orders = append(orders, o)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating order rows: %w", err)
	}
	rows.Close()

	if err := r.attachItems(ctx, orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// attachItems loads the line items of all given orders with a single query
func (r *orderRepository) attachItems(ctx context.Context, orders []model.Order) error {
	if len(orders) == 0 {
		return nil
	}

	ids := make([]int64, len(orders))
	byID := make(map[int64]*model.Order, len(orders))
	for i := range orders {
		ids[i] = orders[i].ID
		orders[i].CartSummary = make([]model.LineItem, 0)
		byID[orders[i].ID] = &orders[i]
	}

	sql := `SELECT id, order_id, product_name, quantity, unit_type, price_per_kg, total_price
            FROM order_items WHERE order_id = ANY($1) ORDER BY id`
	rows, err := r.db.Query(ctx, sql, ids)
	if err != nil {
		return fmt.Errorf("failed to query order items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item model.LineItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductName, &item.Quantity, &item.UnitType, &item.PricePerKg, &item.TotalPrice); err != nil {
			return fmt.Errorf("failed to scan order item row: %w", err)
		}
		if o, ok := byID[item.OrderID]; ok {
			o.CartSummary = append(o.CartSummary, item)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("error iterating order item rows: %w", err)
	}
	return nil
}
