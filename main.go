package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/apimatic/paypal-sample-app/config"
	"github.com/apimatic/paypal-sample-app/controllers"
	"github.com/apimatic/paypal-sample-app/middleware"
	"github.com/apimatic/paypal-sample-app/providers"
	"github.com/apimatic/paypal-sample-app/repository"
	"github.com/apimatic/paypal-sample-app/routes"
	servicepkg "github.com/apimatic/paypal-sample-app/services"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	cfg := config.LoadConfig()
	gin.SetMode(cfg.GinMode)

	// In-memory state; everything here is lost on restart by design.
	credentialStore := repository.NewMemoryCredentialStore()
	productRepo := repository.NewMemoryProductRepository()
	ledger := repository.NewMemoryPaymentLedger()
	imageStore := repository.NewMemoryImageStore()

	// Provider and DI chain
	paypalProvider := providers.NewPayPalProvider(cfg.PayPalBaseURL)
	setupService := servicepkg.NewSetupService(credentialStore, paypalProvider, logger)
	catalogService := servicepkg.NewCatalogService(productRepo, ledger, imageStore, logger)
	checkoutService := servicepkg.NewCheckoutService(credentialStore, productRepo, ledger, paypalProvider, logger)

	// Optional credential seed from the environment (best-effort; the
	// setup form remains the source of truth).
	if cfg.PayPalClientID != "" && cfg.PayPalClientSecret != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		if svcErr := setupService.Configure(ctx, cfg.PayPalClientID, cfg.PayPalClientSecret); svcErr != nil {
			logger.Warn("Seeded PayPal credentials rejected", zap.String("reason", svcErr.Message))
		}
		cancel()
	}

	validator := controllers.NewRequestValidator()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger))

	// 30-second request timeout
	r.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	})

	r.Use(cors.Default())
	r.LoadHTMLGlob("templates/*.html")

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "paypal-sample-app"})
	})

	routes.Register(r, routes.Controllers{
		Setup:      controllers.NewSetupController(setupService, validator),
		Storefront: controllers.NewStorefrontController(catalogService, setupService, validator),
		Checkout:   controllers.NewCheckoutController(checkoutService),
		Uploads:    controllers.NewUploadController(imageStore),
	}, credentialStore)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	logger.Info("Storefront started", zap.String("port", cfg.Port))
	<-quit
	logger.Info("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	logger.Info("Server exited cleanly")
}
