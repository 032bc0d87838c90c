package api

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/magnamoney/alie-relay/pkg/config"
	"github.com/magnamoney/alie-relay/pkg/middleware"
)

// SubmitPath is where the ALIE page posts its form
const SubmitPath = "/api/hubspot-alie-submit"

// NewRouter wires middleware and routes
func NewRouter(h *Handlers, cfg *config.Config, log *zap.Logger) *gin.Engine {
	router := gin.New()

	router.Use(middleware.RequestID(), middleware.Logger(log), middleware.Recovery(log))
	router.Use(middleware.Tracing(cfg.ServiceName, cfg.TracingEnabled)...)
	router.Use(middleware.CORSWithConfig(middleware.CORSConfig{AllowOrigins: cfg.CORSAllowOrigins}))
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))

	// Any other method on a known path, custom verbs included, gets 405
	router.HandleMethodNotAllowed = true
	router.NoMethod(h.MethodNotAllowed)

	router.POST(SubmitPath, h.HandleALIESubmission)
	router.GET("/health", h.HealthCheck)

	return router
}
