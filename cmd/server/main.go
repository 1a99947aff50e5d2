package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"marketplace/internal/config"
	"marketplace/internal/handler"
	"marketplace/internal/repository"
	"marketplace/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading, relying on environment variables")
	}

	// --- Configuration ---
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	config.ConfigureLogger(cfg.LogLevel, cfg.LogFormat)
	gin.SetMode(cfg.GinMode)

	// --- Database Connection ---
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dbPool, err := config.ConnectDB(ctx, &cfg.DB)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// --- Auto Migration ---
	if err := config.AutoMigrate(ctx, dbPool); err != nil {
		dbPool.Close()
		log.Fatalf("Failed to auto-migrate database: %v", err)
	}

	// --- Initialize Repositories ---
	adminRepo := repository.NewAdminRepository(dbPool)
	userRepo := repository.NewUserRepository(dbPool)
	productRepo := repository.NewProductRepository(dbPool)
	orderRepo := repository.NewOrderRepository(dbPool)
	statusRepo := repository.NewStatusRepository(dbPool)

	// --- Initialize Services ---
	router := handler.NewRouter(handler.Dependencies{
		Admins:   service.NewAdminService(adminRepo, cfg.BcryptCost),
		Users:    service.NewUserService(userRepo),
		Products: service.NewProductService(productRepo),
		Orders:   service.NewOrderService(orderRepo),
		Status:   statusRepo,
		DB:       dbPool,
	})

	// --- Start Server ---
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("Server running on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// --- Graceful Shutdown ---
	<-ctx.Done()
	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Server forced to shutdown")
	}

	dbPool.Close()
	log.Println("Disconnected from database")
	os.Exit(0)
}
