package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nexyrt/agsa-finance/internal/config"
	"github.com/nexyrt/agsa-finance/internal/domain/entity"
	"github.com/nexyrt/agsa-finance/internal/presentation/http/handler"
	"github.com/nexyrt/agsa-finance/internal/presentation/http/middleware"
	"github.com/nexyrt/agsa-finance/pkg/utils"
	"go.uber.org/zap"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth    *handler.AuthHandler
	Invoice *handler.InvoiceHandler
	Company *handler.CompanyHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager  *utils.JWTManager
	Cfg         *config.Config
	Logger      *zap.Logger
	RateLimiter *middleware.UserRateLimiter
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware(deps.Logger))
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		registerAuthRoutes(v1, h)

		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))
		if deps.RateLimiter != nil {
			protected.Use(deps.RateLimiter.Middleware())
		}

		registerProtectedRoutes(protected, h)
	}

	return router
}

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/refresh", h.Auth.RefreshToken)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers) {
	protected.POST("/auth/logout", h.Auth.Logout)
	protected.GET("/profile", h.Auth.GetProfile)

	protected.GET("/company-profile",
		middleware.RequirePermission(entity.PermissionViewInvoices),
		h.Company.GetProfile,
	)

	invoices := protected.Group("/invoices/:id")
	{
		invoices.GET("/print-data", middleware.RequirePermission(entity.PermissionViewInvoices), h.Invoice.PrintData)
		invoices.GET("/pdf/preview", middleware.RequirePermission(entity.PermissionViewInvoices), h.Invoice.PreviewPDF)
		invoices.GET("/pdf", middleware.RequirePermission(entity.PermissionPrintInvoices), h.Invoice.DownloadPDF)
	}
}
