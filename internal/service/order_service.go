package service

import (
	"context"
	"errors"
	"fmt"

	"marketplace/internal/model"
	"marketplace/internal/repository"

	log "github.com/sirupsen/logrus"
)

var ErrOrderNotFound = errors.New("order not found")

// OrderService defines order placement and management
type OrderService interface {
	PlaceOrder(ctx context.Context, req model.PlaceOrderRequest) (*model.Order, error)
	UserOrders(ctx context.Context, phone, status string) ([]model.Order, error)
	AllOrders(ctx context.Context) ([]model.Order, error)
	UpdateStatus(ctx context.Context, id int64, status string) (*model.Order, error)
}

type orderService struct {
	repo repository.OrderRepository
}

// NewOrderService creates a new OrderService
func NewOrderService(repo repository.OrderRepository) OrderService {
	return &orderService{repo: repo}
}

// BuildLineItems snapshots the submitted items and sums the order total.
// Prices are taken from the request as-is, not from the catalog.
func BuildLineItems(items []model.OrderItemRequest) ([]model.LineItem, float64) {
	lineItems := make([]model.LineItem, 0, len(items))
	var total float64
	for _, item := range items {
		unitType := item.UnitType
		if unitType == "" {
			unitType = model.DefaultUnitType
		}
		lineTotal := item.Quantity * item.PricePerKg
		lineItems = append(lineItems, model.LineItem{
			ProductName: item.Name,
			Quantity:    item.Quantity,
			UnitType:    unitType,
			PricePerKg:  item.PricePerKg,
			TotalPrice:  lineTotal,
		})
		total += lineTotal
	}
	return lineItems, total
}

func (s *orderService) PlaceOrder(ctx context.Context, req model.PlaceOrderRequest) (*model.Order, error) {
	lineItems, total := BuildLineItems(req.Items)

	order := &model.Order{
		BuyerName:       req.BuyerName,
		BuyerContact:    req.BuyerContact,
		DeliveryAddress: req.DeliveryAddress,
		PaymentMethod:   req.PaymentMethod,
		TotalAmount:     total,
		Status:          model.OrderStatusPending,
		CartSummary:     lineItems,
	}
	if err := s.repo.CreateWithItems(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to create order in repo: %w", err)
	}

	log.WithFields(log.Fields{"order_id": order.ID, "items": len(order.CartSummary)}).Info("Order placed")
	return order, nil
}

func (s *orderService) UserOrders(ctx context.Context, phone, status string) ([]model.Order, error) {
	filters := model.OrderFilters{BuyerContact: phone}
	if status != "" {
		filters.Status = &status
	}
	orders, err := s.repo.FindByContact(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to get user orders from repo: %w", err)
	}
	return orders, nil
}

func (s *orderService) AllOrders(ctx context.Context) ([]model.Order, error) {
	orders, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get all orders from repo: %w", err)
	}
	return orders, nil
}

// UpdateStatus stores any non-empty status; unknown values are kept but logged
func (s *orderService) UpdateStatus(ctx context.Context, id int64, status string) (*model.Order, error) {
	newStatus := model.OrderStatus(status)
	if !newStatus.Known() {
		log.WithFields(log.Fields{"order_id": id, "status": status}).Warn("Setting non-standard order status")
	}

	order, err := s.repo.UpdateStatus(ctx, id, newStatus)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to update order status in repo: %w", err)
	}
	return order, nil
}
