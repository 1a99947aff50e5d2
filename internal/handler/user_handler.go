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

// UserHandler handles customer account requests
type UserHandler struct {
	service service.UserService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(s service.UserService) *UserHandler {
	return &UserHandler{service: s}
}

func (h *UserHandler) Signup(c *gin.Context) {
	var req model.UserCredentials
	if !bindJSON(c, &req, "Username and phone number are required") {
		return
	}

	user, err := h.service.Signup(c.Request.Context(), req.Username, req.PhoneNumber)
	if err != nil {
		if errors.Is(err, service.ErrUserExists) {
			response.Error(c, http.StatusConflict, "User already exists", nil)
			return
		}
		log.WithError(err).Error("User signup error")
		response.Error(c, http.StatusInternalServerError, "Server error", err)
		return
	}
	response.Success(c, http.StatusCreated, "User created successfully", user)
}

func (h *UserHandler) Login(c *gin.Context) {
	var req model.UserCredentials
	if !bindJSON(c, &req, "Username and phone number are required") {
		return
	}

	user, err := h.service.Login(c.Request.Context(), req.Username, req.PhoneNumber)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.Error(c, http.StatusUnauthorized, "Invalid username or phone number", nil)
			return
		}
		log.WithError(err).Error("User login error")
		response.Error(c, http.StatusInternalServerError, "Server error", err)
		return
	}
	response.Success(c, http.StatusOK, "Login successful", user)
}

// RegisterUserRoutes registers customer account routes
func (h *UserHandler) RegisterUserRoutes(rg *gin.RouterGroup) {
	userGroup := rg.Group("/user")
	{
		userGroup.POST("/signup", h.Signup)
		userGroup.POST("/login", h.Login)
	}
}
