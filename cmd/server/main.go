package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"bloom/internal/config"
	"bloom/internal/extract"
	"bloom/internal/gateway"
	"bloom/internal/gateway/claude"
	"bloom/internal/gateway/gemini"
	"bloom/internal/gateway/openai"
	"bloom/internal/handler"
	"bloom/internal/logger"
	"bloom/internal/middleware"
	"bloom/internal/observability"
	"bloom/internal/port"
	"bloom/internal/router"
	"bloom/internal/service"
)

// @title Bloom Backend API
// @version 1.0
// @description Financial chat, document Q&A, health score and CSV transaction import over a hosted language model.
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the access token.

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(cfg.Log.Level, cfg.Log.Format); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing := observability.InitTracing(ctx, &cfg.Tracing, cfg.Server.Environment, appLogger)

	// Register model providers
	gateway.RegisterProvider("gemini", func(c *config.GatewayProviderConfig) (port.ModelGateway, error) {
		return gemini.NewClient(c), nil
	})
	gateway.RegisterProvider("openai", func(c *config.GatewayProviderConfig) (port.ModelGateway, error) {
		return openai.NewClient(c), nil
	})
	gateway.RegisterProvider("claude", func(c *config.GatewayProviderConfig) (port.ModelGateway, error) {
		return claude.NewClient(c), nil
	})

	gw, err := gateway.Build(&cfg.Gateway)
	if err != nil {
		return fmt.Errorf("failed to initialize model gateway: %w", err)
	}
	tracedGW := gateway.NewTracedGateway(gw)
	appLogger.Info("model gateway initialized",
		zap.String("provider", cfg.Gateway.Primary.Provider),
		zap.String("model", tracedGW.Model()),
		zap.Int("providers", len(cfg.Gateway.Providers())))

	extractor := extract.NewExtractor(extract.NewPDFBackend())
	maxUpload := cfg.Server.MaxUploadBytes()

	// Initialize services
	assistantSvc := service.NewAssistantService(tracedGW, extractor, maxUpload)
	healthScoreSvc := service.NewHealthScoreService(tracedGW)
	csvImportSvc := service.NewCSVImportService(tracedGW, extractor, maxUpload)

	var verifier *middleware.TokenVerifier
	if cfg.Auth.Enabled() {
		verifier = middleware.NewTokenVerifier(&cfg.Auth)
	} else {
		appLogger.Warn("auth disabled: BLOOM_AUTH_JWT_SECRET not set")
	}

	r := router.Setup(cfg, appLogger, verifier, router.Handlers{
		Assistant:   handler.NewAssistantHandler(assistantSvc),
		HealthScore: handler.NewHealthScoreHandler(healthScoreSvc),
		Import:      handler.NewImportHandler(csvImportSvc),
		Health:      handler.NewHealthHandler(tracedGW),
	})

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		appLogger.Info("server starting", zap.String("address", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
	case <-ctx.Done():
		appLogger.Info("shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownGrace)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("server shutdown error", zap.Error(err))
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		appLogger.Error("tracing shutdown error", zap.Error(err))
	}

	return nil
}
