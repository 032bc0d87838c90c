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
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/magnamoney/alie-relay/pkg/api"
	"github.com/magnamoney/alie-relay/pkg/clients/hubspot"
	"github.com/magnamoney/alie-relay/pkg/config"
	"github.com/magnamoney/alie-relay/pkg/logger"
	"github.com/magnamoney/alie-relay/pkg/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file loaded")
	}

	// Initialize configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	zapLogger := logger.New(logger.ForEnvironment(cfg.Env, cfg.LogLevel, cfg.LogFormat))
	defer func() { _ = zapLogger.Sync() }()

	if !cfg.HasCredentials() {
		zapLogger.Warn("HUBSPOT_PRIVATE_APP_TOKEN is not set; submissions will fail")
	}
	if cfg.HubSpotFormID == "MY_HUBSPOT_FORM_ID" {
		zapLogger.Warn("HUBSPOT_FORM_ID is the placeholder value; set the real form GUID")
	}

	// Initialize API clients
	hubspotClient := hubspot.NewClient(hubspot.Options{
		Token:    cfg.HubSpotPrivateAppToken,
		PortalID: cfg.HubSpotPortalID,
		FormID:   cfg.HubSpotFormID,
		BaseURL:  cfg.HubSpotBaseURL,
		Timeout:  cfg.HubSpotTimeout,
		Logger:   zapLogger,
	})

	// Initialize services
	submissionService := services.NewALIESubmissionService(hubspotClient, cfg, zapLogger)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	handlers := api.NewHandlers(submissionService, cfg)
	router := api.NewRouter(handlers, cfg, zapLogger)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zapLogger.Info("Server starting", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatal("Error starting server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLogger.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Error("Server forced to shutdown", zap.Error(err))
	}
}
