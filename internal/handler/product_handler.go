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

// ProductHandler handles catalog requests
type ProductHandler struct {
	service service.ProductService
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(s service.ProductService) *ProductHandler {
	return &ProductHandler{service: s}
}

func (h *ProductHandler) ListProducts(c *gin.Context) {
	products, err := h.service.ListAvailable(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Error fetching products")
		response.Error(c, http.StatusInternalServerError, "Error fetching products", err)
		return
	}
	response.Success(c, http.StatusOK, "Products fetched", products)
}

func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, ok := parseID(c, "id", "Invalid product ID")
	if !ok {
		return
	}

	product, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			response.Error(c, http.StatusNotFound, "Product not found", nil)
			return
		}
		log.WithError(err).Error("Error fetching product")
		response.Error(c, http.StatusInternalServerError, "Error fetching product", err)
		return
	}
	response.Success(c, http.StatusOK, "Product fetched", product)
}

func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req model.CreateProductRequest
	if !bindJSON(c, &req, "Name and price are required") {
		return
	}

	product, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		log.WithError(err).Error("Error creating product")
		response.Error(c, http.StatusInternalServerError, "Error creating product", err)
		return
	}
	response.Success(c, http.StatusCreated, "Product created", product)
}

func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id, ok := parseID(c, "id", "Invalid product ID")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			response.Error(c, http.StatusNotFound, "Product not found", nil)
			return
		}
		log.WithError(err).Error("Error deleting product")
		response.Error(c, http.StatusInternalServerError, "Error deleting product", err)
		return
	}
	response.Success(c, http.StatusOK, "Product deleted", nil)
}

// RegisterProductRoutes registers catalog routes. Mutations go through adminMW.
func (h *ProductHandler) RegisterProductRoutes(rg *gin.RouterGroup, adminMW gin.HandlerFunc) {
	productGroup := rg.Group("/products")
	{
		productGroup.GET("", h.ListProducts)
		productGroup.GET("/:id", h.GetProduct)
		productGroup.POST("", adminMW, h.CreateProduct)
		productGroup.DELETE("/:id", adminMW, h.DeleteProduct)
	}
}
