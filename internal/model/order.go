package model

import "time"

// OrderStatus is an open string: the well-known values below are used by the
// admin UI but any non-empty status is accepted and stored as-is.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Known reports whether s is one of the predefined statuses
func (s OrderStatus) Known() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// Order is a purchase record. It owns its line items (cart summary).
type Order struct {
	ID              int64       `json:"id"`
	BuyerName       string      `json:"buyer_name"`
	BuyerContact    string      `json:"buyer_contact"`
	DeliveryAddress string      `json:"delivery_address"`
	PaymentMethod   string      `json:"payment_method"`
	TotalAmount     float64     `json:"total_amount"`
	Status          OrderStatus `json:"status"`
	CreatedAt       time.Time   `json:"created_at"`
	CartSummary     []LineItem  `json:"cart_summary"`
}

// LineItem is a frozen snapshot of one product within an order.
// It does not reference the live product record.
type LineItem struct {
	ID          int64   `json:"id"`
	OrderID     int64   `json:"order_id"`
	ProductName string  `json:"product_name"`
	Quantity    float64 `json:"quantity"`
	UnitType    string  `json:"unit_type"`
	PricePerKg  float64 `json:"price_per_kg"`
	TotalPrice  float64 `json:"total_price"`
}

// OrderItemRequest is one entry of the items array submitted with an order
type OrderItemRequest struct {
	Name       string  `json:"name"`
	Quantity   float64 `json:"quantity"`
	UnitType   string  `json:"unit_type"`
	PricePerKg float64 `json:"price_per_kg"`
}

// PlaceOrderRequest is the body of POST /orders
type PlaceOrderRequest struct {
	BuyerName       string             `json:"buyer_name" validate:"required"`
	BuyerContact    string             `json:"buyer_contact" validate:"required"`
	DeliveryAddress string             `json:"delivery_address" validate:"required"`
	PaymentMethod   string             `json:"payment_method" validate:"required"`
	Items           []OrderItemRequest `json:"items" validate:"required,min=1"`
}

// UpdateOrderStatusRequest is the body of PUT /admin/orders/:id/status
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// OrderFilters narrows a customer's order listing
type OrderFilters struct {
	BuyerContact string
	Status       *string
}
