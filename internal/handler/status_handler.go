package handler

import (
	"context"
	"net/http"

	"marketplace/internal/repository"
	"marketplace/internal/response"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// Pinger is satisfied by *pgxpool.Pool
type Pinger interface {
	Ping(ctx context.Context) error
}

// StatusHandler serves diagnostic endpoints
type StatusHandler struct {
	repo repository.StatusRepository
	db   Pinger
}

// NewStatusHandler creates a new StatusHandler
func NewStatusHandler(repo repository.StatusRepository, db Pinger) *StatusHandler {
	return &StatusHandler{repo: repo, db: db}
}

// DBStatus lists the tables available in the database
func (h *StatusHandler) DBStatus(c *gin.Context) {
	tables, err := h.repo.ListTables(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Database connection error")
		response.Error(c, http.StatusInternalServerError, "Failed to connect to database", err)
		return
	}
	response.With(c, http.StatusOK, "Database connection successful", response.KeyTables, tables)
}

func (h *StatusHandler) Health(c *gin.Context) {
	if err := h.db.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "db": "unhealthy"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "db": "healthy"})
}

// RegisterStatusRoutes registers /db-status under rg
func (h *StatusHandler) RegisterStatusRoutes(rg *gin.RouterGroup) {
	rg.GET("/db-status", h.DBStatus)
}
