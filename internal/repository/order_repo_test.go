package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"marketplace/internal/model"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	orderCols = []string{"id", "buyer_name", "buyer_contact", "delivery_address", "payment_method", "total_amount", "status", "created_at"}
	itemCols  = []string{"id", "order_id", "product_name", "quantity", "unit_type", "price_per_kg", "total_price"}
)

func newTestOrder() *model.Order {
	return &model.Order{
		BuyerName:       "Dana",
		BuyerContact:    "0700",
		DeliveryAddress: "1 Main St",
		PaymentMethod:   "cash",
		TotalAmount:     35,
		Status:          model.OrderStatusPending,
		CartSummary: []model.LineItem{
			{ProductName: "Tomato", Quantity: 2, UnitType: "kg", PricePerKg: 10, TotalPrice: 20},
			{ProductName: "Onion", Quantity: 3, UnitType: "kg", PricePerKg: 5, TotalPrice: 15},
		},
	}
}

func TestOrderRepository_CreateWithItems(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	now := time.Now()
	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO orders").
		WithArgs("Dana", "0700", "1 Main St", "cash", 35.0, model.OrderStatusPending).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(int64(9), now))
	mock.ExpectQuery("INSERT INTO order_items").
		WithArgs(int64(9), "Tomato", 2.0, "kg", 10.0, 20.0).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(100)))
	mock.ExpectQuery("INSERT INTO order_items").
		WithArgs(int64(9), "Onion", 3.0, "kg", 5.0, 15.0).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(101)))
	mock.ExpectCommit()

	order := newTestOrder()
	err = NewOrderRepository(mock).CreateWithItems(context.Background(), order)

	require.NoError(t, err)
	assert.Equal(t, int64(9), order.ID)
	assert.Equal(t, now, order.CreatedAt)
	assert.Equal(t, int64(100), order.CartSummary[0].ID)
	assert.Equal(t, int64(9), order.CartSummary[1].OrderID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepository_CreateWithItems_RollsBackOnItemFailure(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO orders").
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(int64(9), time.Now()))
	mock.ExpectQuery("INSERT INTO order_items").
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(100)))
	mock.ExpectQuery("INSERT INTO order_items").
		WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	err = NewOrderRepository(mock).CreateWithItems(context.Background(), newTestOrder())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepository_CreateWithItems_RollsBackOnOrderFailure(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO orders").WillReturnError(errors.New("constraint"))
	mock.ExpectRollback()

	err = NewOrderRepository(mock).CreateWithItems(context.Background(), newTestOrder())

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepository_FindByContact_WithStatus(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	now := time.Now()
	mock.ExpectQuery("FROM orders WHERE buyer_contact = (.+) AND status = (.+) ORDER BY created_at DESC").
		WithArgs("0700", "shipped").
		WillReturnRows(pgxmock.NewRows(orderCols).
			AddRow(int64(2), "Dana", "0700", "1 Main St", "cash", 15.0, model.OrderStatusShipped, now).
			AddRow(int64(1), "Dana", "0700", "1 Main St", "cash", 20.0, model.OrderStatusShipped, now.Add(-time.Hour)))
	mock.ExpectQuery("FROM order_items WHERE order_id = ANY").
		WithArgs([]int64{2, 1}).
		WillReturnRows(pgxmock.NewRows(itemCols).
			AddRow(int64(10), int64(1), "Tomato", 2.0, "kg", 10.0, 20.0).
			AddRow(int64(11), int64(2), "Onion", 3.0, "kg", 5.0, 15.0))

	status := "shipped"
	orders, err := NewOrderRepository(mock).FindByContact(context.Background(), model.OrderFilters{BuyerContact: "0700", Status: &status})

	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, int64(2), orders[0].ID)
	require.Len(t, orders[0].CartSummary, 1)
	assert.Equal(t, "Onion", orders[0].CartSummary[0].ProductName)
	require.Len(t, orders[1].CartSummary, 1)
	assert.Equal(t, "Tomato", orders[1].CartSummary[0].ProductName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepository_FindByContact_NoOrdersSkipsItemQuery(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("FROM orders WHERE buyer_contact").
		WithArgs("0711").
		WillReturnRows(pgxmock.NewRows(orderCols))

	orders, err := NewOrderRepository(mock).FindByContact(context.Background(), model.OrderFilters{BuyerContact: "0711"})

	require.NoError(t, err)
	assert.NotNil(t, orders)
	assert.Empty(t, orders)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepository_FindAll(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("FROM orders ORDER BY created_at DESC, id DESC").
		WillReturnRows(pgxmock.NewRows(orderCols).
			AddRow(int64(1), "Dana", "0700", "1 Main St", "cash", 20.0, model.OrderStatusPending, time.Now()))
	mock.ExpectQuery("FROM order_items").
		WithArgs([]int64{1}).
		WillReturnRows(pgxmock.NewRows(itemCols))

	orders, err := NewOrderRepository(mock).FindAll(context.Background())

	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.NotNil(t, orders[0].CartSummary)
	assert.Empty(t, orders[0].CartSummary)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepository_UpdateStatus(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("UPDATE orders SET status").
		WithArgs(model.OrderStatusDelivered, int64(1)).
		WillReturnRows(pgxmock.NewRows(orderCols).
			AddRow(int64(1), "Dana", "0700", "1 Main St", "cash", 20.0, model.OrderStatusDelivered, time.Now()))
	mock.ExpectQuery("FROM order_items WHERE order_id = ANY").
		WithArgs([]int64{1}).
		WillReturnRows(pgxmock.NewRows(itemCols).
			AddRow(int64(5), int64(1), "Tomato", 2.0, "kg", 10.0, 20.0))
	mock.ExpectQuery("UPDATE orders SET status").
		WithArgs(model.OrderStatusDelivered, int64(2)).
		WillReturnRows(pgxmock.NewRows(orderCols))

	repo := NewOrderRepository(mock)

	order, err := repo.UpdateStatus(context.Background(), 1, model.OrderStatusDelivered)
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusDelivered, order.Status)
	require.Len(t, order.CartSummary, 1)
	assert.Equal(t, 20.0, order.CartSummary[0].TotalPrice)

	_, err = repo.UpdateStatus(context.Background(), 2, model.OrderStatusDelivered)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
