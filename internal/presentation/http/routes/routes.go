package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/phonehub/phonehub-api/internal/config"
	"github.com/phonehub/phonehub-api/internal/presentation/http/handler"
	"github.com/phonehub/phonehub-api/internal/presentation/http/middleware"
	"github.com/phonehub/phonehub-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth      *handler.AuthHandler
	Phone     *handler.PhoneHandler
	Accessory *handler.AccessoryHandler
	Sale      *handler.SaleHandler
	Transfer  *handler.TransferHandler
	Report    *handler.ReportHandler
	Activity  *handler.ActivityHandler
	User      *handler.UserHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager *utils.JWTManager
	Cfg        *config.Config
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		registerAuthRoutes(v1, h)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		// Per-user rate limiter
		rateLimiter := middleware.NewUserRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h)
	}

	return router
}

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/register", h.Auth.Register)
		auth.POST("/refresh", h.Auth.RefreshToken)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers) {
	// Auth/Profile routes
	protected.POST("/auth/logout", h.Auth.Logout)
	protected.POST("/auth/change-password", h.Auth.ChangePassword)
	protected.GET("/profile", h.User.Me)

	// Phones
	registerPhoneRoutes(protected, h)

	// Accessories
	registerAccessoryRoutes(protected, h)

	// Sales
	registerSaleRoutes(protected, h)

	// Transfers
	registerTransferRoutes(protected, h)

	// Reports
	registerReportRoutes(protected, h)

	// Activity trail
	protected.GET("/activity", h.Activity.List)

	// Users (Admin)
	registerUserRoutes(protected, h)
}

func registerPhoneRoutes(protected *gin.RouterGroup, h *Handlers) {
	phones := protected.Group("/phones")
	{
		phones.GET("", h.Phone.List)
		phones.GET("/in-stock", h.Phone.InStock)
		phones.POST("", h.Phone.Create)
		phones.GET("/:id", h.Phone.Get)
		phones.PUT("/:id", h.Phone.Update)
		phones.DELETE("/:id", h.Phone.Delete)
	}
}

func registerAccessoryRoutes(protected *gin.RouterGroup, h *Handlers) {
	accessories := protected.Group("/accessories")
	{
		accessories.GET("", h.Accessory.List)
		accessories.GET("/low-stock", h.Accessory.LowStock)
		accessories.POST("", h.Accessory.Create)
		accessories.GET("/:id", h.Accessory.Get)
		accessories.PUT("/:id", h.Accessory.Update)
		accessories.DELETE("/:id", h.Accessory.Delete)
	}
}

func registerSaleRoutes(protected *gin.RouterGroup, h *Handlers) {
	sales := protected.Group("/sales")
	{
		sales.GET("", h.Sale.List)
		sales.POST("", h.Sale.Create)
		sales.GET("/:id", h.Sale.Get)
	}
}

func registerTransferRoutes(protected *gin.RouterGroup, h *Handlers) {
	transfers := protected.Group("/transfers")
	{
		transfers.GET("", h.Transfer.List)
		transfers.POST("", h.Transfer.Create)
	}
}

func registerReportRoutes(protected *gin.RouterGroup, h *Handlers) {
	reports := protected.Group("/reports")
	{
		reports.GET("/weekly", h.Report.Weekly)
		reports.GET("/monthly", h.Report.Monthly)
	}
}

func registerUserRoutes(protected *gin.RouterGroup, h *Handlers) {
	users := protected.Group("/users")
	users.Use(middleware.RequireRole("admin"))
	{
		users.GET("", h.User.List)
		users.GET("/:id", h.User.Get)
		users.POST("/:id/promote", h.User.Promote)
		users.DELETE("/:id", h.User.Delete)
	}
}
