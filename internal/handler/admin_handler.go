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

// AdminHandler handles admin account requests
type AdminHandler struct {
	service service.AdminService
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(s service.AdminService) *AdminHandler {
	return &AdminHandler{service: s}
}

func (h *AdminHandler) Signup(c *gin.Context) {
	var req model.AdminSignupRequest
	if !bindJSON(c, &req, "All fields are required: name, username, password") {
		return
	}

	admin, err := h.service.Signup(c.Request.Context(), req.Name, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrAdminExists) {
			response.Error(c, http.StatusConflict, "Username already exists", nil)
			return
		}
		log.WithError(err).Error("Admin signup error")
		response.Error(c, http.StatusInternalServerError, "Failed to create admin", err)
		return
	}
	response.Success(c, http.StatusCreated, "Admin created successfully", admin)
}

func (h *AdminHandler) Login(c *gin.Context) {
	var req model.AdminCredentials
	if !bindJSON(c, &req, "Username and password are required") {
		return
	}

	admin, err := h.service.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		h.credentialError(c, err, "User not found", "Login failed")
		return
	}
	response.Success(c, http.StatusOK, "Login successful", admin)
}

// Delete removes the caller's own account; credentials come in the body
func (h *AdminHandler) Delete(c *gin.Context) {
	var req model.AdminCredentials
	if !bindJSON(c, &req, "Username and password are required") {
		return
	}

	if err := h.service.Delete(c.Request.Context(), req.Username, req.Password); err != nil {
		h.credentialError(c, err, "Admin not found", "Failed to delete admin")
		return
	}
	response.Success(c, http.StatusOK, "Admin deleted successfully", nil)
}

func (h *AdminHandler) credentialError(c *gin.Context, err error, notFoundMessage, internalMessage string) {
	switch {
	case errors.Is(err, service.ErrAdminNotFound):
		response.Error(c, http.StatusNotFound, notFoundMessage, nil)
	case errors.Is(err, service.ErrInvalidCredentials):
		response.Error(c, http.StatusUnauthorized, "Wrong password", nil)
	default:
		log.WithError(err).Error(internalMessage)
		response.Error(c, http.StatusInternalServerError, internalMessage, err)
	}
}

// RegisterAdminRoutes registers admin account routes
func (h *AdminHandler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	adminGroup := rg.Group("/admin")
	{
		adminGroup.POST("/signup", h.Signup)
		adminGroup.POST("/login", h.Login)
		adminGroup.DELETE("/delete", h.Delete)
	}
}
