package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/syedahad2205/dajaj-pos/internal/config"
	"github.com/syedahad2205/dajaj-pos/internal/presentation/http/handler"
	"github.com/syedahad2205/dajaj-pos/internal/presentation/http/middleware"
	"github.com/syedahad2205/dajaj-pos/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth    *handler.AuthHandler
	Menu    *handler.MenuHandler
	Session *handler.SessionHandler
	Bill    *handler.BillHandler
	Printer *handler.PrinterHandler
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
		v1.POST("/auth/login", h.Auth.Login)
		v1.GET("/menu", h.Menu.GetMenu)

		// Bill viewing is public but token-gated: operators pass via their
		// session, customers via the bill's public token.
		v1.GET("/bills/:billNo", middleware.OptionalAuthMiddleware(deps.JWTManager), h.Bill.GetBill)

		// Protected routes (operator authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		// Per-client rate limiter
		rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
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

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers) {
	// Cart sessions
	sessions := protected.Group("/sessions")
	{
		sessions.POST("", h.Session.CreateSession)
		sessions.GET("/:id", h.Session.GetSession)
		sessions.PUT("/:id/lines", h.Session.SetLine)
		sessions.POST("/:id/lines/adjust", h.Session.AdjustLine)
		sessions.POST("/:id/lines/decrement", h.Session.DecrementVariant)
		sessions.POST("/:id/lines/remove", h.Session.RemoveLine)
		sessions.DELETE("/:id", h.Session.DestroySession)
	}

	// Bills
	bills := protected.Group("/bills")
	{
		bills.POST("", h.Bill.CreateBill)
		bills.GET("", h.Bill.ListBills)
		bills.POST("/:billNo/whatsapp", h.Bill.WhatsAppLink)
		bills.GET("/:billNo/receipt", h.Printer.GetReceipt)
		bills.POST("/:billNo/print", h.Printer.PrintBill)
	}

	// Printer
	printer := protected.Group("/printer")
	{
		printer.GET("/status", h.Printer.GetStatus)
		printer.POST("/test", h.Printer.TestPrint)
	}
}
