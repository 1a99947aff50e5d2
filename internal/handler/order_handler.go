package handler

import (
	"errors"
	"net/http"

	"marketplace/internal/model"
	"marketplace/internal/response"
	"marketplace/internal/service"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// OrderHandler handles order requests
type OrderHandler struct {
	service service.OrderService
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(s service.OrderService) *OrderHandler {
	return &OrderHandler{service: s}
}

func (h *OrderHandler) PlaceOrder(c *gin.Context) {
	var req model.PlaceOrderRequest
	if !bindJSON(c, &req, "buyer_name, buyer_contact, delivery_address, payment_method and items are required") {
		return
	}

	order, err := h.service.PlaceOrder(c.Request.Context(), req)
	if err != nil {
		log.WithError(err).Error("Error placing order")
		response.Error(c, http.StatusInternalServerError, "Error placing order", err)
		return
	}
	response.With(c, http.StatusCreated, "Order placed successfully", response.KeyOrder, order)
}

// GetUserOrders lists a buyer's orders by phone, with an optional status filter
func (h *OrderHandler) GetUserOrders(c *gin.Context) {
	phone := c.Query("phone")
	if phone == "" {
		response.Error(c, http.StatusBadRequest, "Phone number is required in query", nil)
		return
	}

	orders, err := h.service.UserOrders(c.Request.Context(), phone, c.Query("status"))
	if err != nil {
		log.WithError(err).Error("Error fetching user orders")
		response.Error(c, http.StatusInternalServerError, "Error fetching orders", err)
		return
	}
	response.With(c, http.StatusOK, "Orders fetched", response.KeyOrders, orders)
}

func (h *OrderHandler) GetAllOrdersAdmin(c *gin.Context) {
	orders, err := h.service.AllOrders(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Error fetching all orders")
		response.Error(c, http.StatusInternalServerError, "Error fetching orders", err)
		return
	}
	response.With(c, http.StatusOK, "Orders fetched", response.KeyOrders, orders)
}

func (h *OrderHandler) UpdateOrderStatusAdmin(c *gin.Context) {
	id, ok := parseID(c, "id", "Invalid order ID")
	if !ok {
		return
	}

	var req model.UpdateOrderStatusRequest
	if !bindJSON(c, &req, "Status is required") {
		return
	}

	order, err := h.service.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			response.Error(c, http.StatusNotFound, "Order not found", nil)
			return
		}
		log.WithError(err).Error("Error updating order status")
		response.Error(c, http.StatusInternalServerError, "Error updating status", err)
		return
	}
	response.With(c, http.StatusOK, "Order status updated", response.KeyOrder, order)
}

// RegisterOrderRoutes registers order routes
func (h *OrderHandler) RegisterOrderRoutes(rg *gin.RouterGroup, adminMW gin.HandlerFunc) {
	rg.POST("/orders", h.PlaceOrder)
	rg.GET("/user/orders", h.GetUserOrders)

	adminRoutes := rg.Group("/admin/orders")
	adminRoutes.Use(adminMW)
	{
		adminRoutes.GET("", h.GetAllOrdersAdmin)
		adminRoutes.PUT("/:id/status", h.UpdateOrderStatusAdmin)
	}
}
