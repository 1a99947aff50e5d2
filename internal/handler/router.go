package handler

import (
	"marketplace/internal/middleware"
	"marketplace/internal/repository"
	"marketplace/internal/service"

	"github.com/gin-gonic/gin"
)

// Dependencies are the services the router wires into handlers
type Dependencies struct {
	Admins   service.AdminService
	Users    service.UserService
	Products service.ProductService
	Orders   service.OrderService
	Status   repository.StatusRepository
	DB       Pinger
}

// NewRouter builds the gin engine with every route mounted under /api,
// plus /health and /metrics at the root.
func NewRouter(deps Dependencies) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestID(), middleware.RequestLogger(), middleware.Metrics(), middleware.CORS())

	adminAuthMW := middleware.AdminAuthMiddleware(deps.Admins)

	apiGroup := router.Group("/api")
	NewAdminHandler(deps.Admins).RegisterAdminRoutes(apiGroup)
	NewUserHandler(deps.Users).RegisterUserRoutes(apiGroup)
	NewProductHandler(deps.Products).RegisterProductRoutes(apiGroup, adminAuthMW)
	NewOrderHandler(deps.Orders).RegisterOrderRoutes(apiGroup, adminAuthMW)

	statusHandler := NewStatusHandler(deps.Status, deps.DB)
	statusHandler.RegisterStatusRoutes(apiGroup)
	router.GET("/health", statusHandler.Health)
	router.GET("/metrics", gin.WrapH(middleware.MetricsHandler()))

	return router
}
