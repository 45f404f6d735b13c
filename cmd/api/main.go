package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nexyrt/agsa-finance/internal/application/service"
	"github.com/nexyrt/agsa-finance/internal/config"
	"github.com/nexyrt/agsa-finance/internal/infrastructure/database"
	"github.com/nexyrt/agsa-finance/internal/infrastructure/repository"
	"github.com/nexyrt/agsa-finance/internal/infrastructure/storage"
	"github.com/nexyrt/agsa-finance/internal/presentation/http/handler"
	"github.com/nexyrt/agsa-finance/internal/presentation/http/middleware"
	"github.com/nexyrt/agsa-finance/internal/presentation/http/routes"
	"github.com/nexyrt/agsa-finance/pkg/logger"
	"github.com/nexyrt/agsa-finance/pkg/pdf"
	"github.com/nexyrt/agsa-finance/pkg/utils"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg := config.Load()

	zlog, err := logger.Init(cfg.App.Env, cfg.Log.Level, cfg.App.Name)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Amounts are JSON numbers, not strings
	decimal.MarshalJSONWithoutQuotes = true

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database, cfg.App.Debug, zlog)
	if err != nil {
		zlog.Fatal("failed to connect to database", zap.Error(err))
	}

	if err := database.AutoMigrate(db, zlog); err != nil {
		zlog.Fatal("failed to run migrations", zap.Error(err))
	}

	if err := database.SeedDefaultData(db, cfg.Admin, zlog); err != nil {
		zlog.Warn("failed to seed default data", zap.Error(err))
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.App.Name,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)
	companyRepo := repository.NewCompanyProfileRepository(db)

	// Branding images live under the public storage root
	assets := storage.NewOSAssetStore(cfg.Storage.PublicPath, zlog)
	companyResolver := service.NewCompanyInfoResolver(companyDefaults(cfg.CompanyFallback), assets)

	renderer := service.NewPDFRenderer(pdf.Options{
		PageSize:    "A4",
		Orientation: "P",
		DPI:         cfg.PDF.DPI,
		FontFamily:  cfg.PDF.FontFamily,
		FontDir:     cfg.PDF.FontDir,
	})

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager, zlog)
	printService := service.NewInvoicePrintService(invoiceRepo, companyRepo, companyResolver, renderer, zlog)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:    handler.NewAuthHandler(authService),
		Invoice: handler.NewInvoiceHandler(printService),
		Company: handler.NewCompanyHandler(printService),
	}

	rateLimiter := middleware.NewUserRateLimiter(
		middleware.RateLimiterConfigFromWindow(cfg.RateLimit.Requests, cfg.RateLimit.Duration),
	)
	defer rateLimiter.Stop()

	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:  jwtManager,
		Cfg:         cfg,
		Logger:      zlog,
		RateLimiter: rateLimiter,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zlog.Info("starting server", zap.String("port", port), zap.String("env", cfg.App.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatal("failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zlog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zlog.Error("server forced to shutdown", zap.Error(err))
	}
}

func companyDefaults(c config.CompanyFallbackConfig) service.CompanyDefaults {
	return service.CompanyDefaults{
		Name:              c.Name,
		Address:           c.Address,
		Email:             c.Email,
		Phone:             c.Phone,
		LogoPath:          c.LogoPath,
		SignaturePath:     c.SignaturePath,
		StampPath:         c.StampPath,
		BankName:          c.BankName,
		BankAccountNumber: c.BankAccountNumber,
		BankAccountName:   c.BankAccountName,
		SignerName:        c.SignerName,
		SignerPosition:    c.SignerPosition,
	}
}
