package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/phonehub/phonehub-api/internal/application/service"
	"github.com/phonehub/phonehub-api/internal/config"
	"github.com/phonehub/phonehub-api/internal/infrastructure/database"
	"github.com/phonehub/phonehub-api/internal/infrastructure/repository"
	"github.com/phonehub/phonehub-api/internal/presentation/http/handler"
	"github.com/phonehub/phonehub-api/internal/presentation/http/routes"
	"github.com/phonehub/phonehub-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed default data
	if err := database.SeedDefaultData(db); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	roleRepo := repository.NewRoleRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	phoneRepo := repository.NewPhoneRepository(db)
	accessoryRepo := repository.NewAccessoryRepository(db)
	saleRepo := repository.NewSaleRepository(db)
	transferRepo := repository.NewTransferRepository(db)
	activityRepo := repository.NewActivityLogRepository(db)
	reportRepo := repository.NewReportRepository(db)

	// Purge expired sessions hourly
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			if n, err := sessionRepo.DeleteExpired(context.Background()); err != nil {
				log.Printf("Session cleanup failed: %v", err)
			} else if n > 0 {
				log.Printf("Purged %d expired sessions", n)
			}
		}
	}()

	// Initialize services
	authService := service.NewAuthService(userRepo, roleRepo, sessionRepo, jwtManager)
	phoneService := service.NewPhoneService(phoneRepo)
	accessoryService := service.NewAccessoryService(accessoryRepo)
	saleService := service.NewSaleService(saleRepo, phoneRepo, accessoryRepo)
	transferService := service.NewTransferService(transferRepo, phoneRepo, accessoryRepo)
	reportService := service.NewReportService(reportRepo)
	activityService := service.NewActivityService(activityRepo)
	userService := service.NewUserService(userRepo, roleRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:      handler.NewAuthHandler(authService, activityService),
		Phone:     handler.NewPhoneHandler(phoneService, activityService),
		Accessory: handler.NewAccessoryHandler(accessoryService, activityService),
		Sale:      handler.NewSaleHandler(saleService, activityService),
		Transfer:  handler.NewTransferHandler(transferService, activityService),
		Report:    handler.NewReportHandler(reportService),
		Activity:  handler.NewActivityHandler(activityService),
		User:      handler.NewUserHandler(userService, activityService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager: jwtManager,
		Cfg:        cfg,
	})

	// Get port from environment or use default
	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
		os.Exit(1)
	}
}
