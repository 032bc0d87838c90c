package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/magnamoney/alie-relay/pkg/clients/hubspot"
	"github.com/magnamoney/alie-relay/pkg/config"
	"github.com/magnamoney/alie-relay/pkg/logger"
	"github.com/magnamoney/alie-relay/pkg/models"
	"github.com/magnamoney/alie-relay/pkg/services"
)

// TrackingCookie is the HubSpot visitor token cookie
const TrackingCookie = "hubspotutk"

// Handlers contains all HTTP handlers for the API
type Handlers struct {
	submissionService services.ALIESubmissionService
	config            *config.Config
}

// NewHandlers creates a new Handlers instance
func NewHandlers(submissionService services.ALIESubmissionService, cfg *config.Config) *Handlers {
	return &Handlers{
		submissionService: submissionService,
		config:            cfg,
	}
}

// HealthCheck handler for monitoring
func (h *Handlers) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// MethodNotAllowed answers any non-POST request on the submit path.
// Other paths keep gin's default 405 body.
func (h *Handlers) MethodNotAllowed(c *gin.Context) {
	if c.Request.URL.Path != SubmitPath {
		return
	}
	c.Header("Allow", http.MethodPost)
	c.JSON(http.StatusMethodNotAllowed, gin.H{"message": "Method Not Allowed"})
}

// HandleALIESubmission relays the ALIE form to HubSpot and redirects to the thank-you page
func (h *Handlers) HandleALIESubmission(c *gin.Context) {
	log := logger.FromGin(c)

	if !h.config.HasCredentials() {
		log.Error("HubSpot private app token missing")
		c.JSON(http.StatusInternalServerError, gin.H{"message": services.ErrNotConfigured.Error()})
		return
	}

	// JSON, urlencoded and multipart bodies are picked by Content-Type
	var data models.ALIEFormData
	if err := c.ShouldBind(&data); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Email is required"})
			return
		}
		// Bodies without Content-Length only hit the limit while binding
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"message": "Request body too large"})
			return
		}
		log.Warn("Error binding ALIE form", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	// Both are optional; absence yields empty strings
	hutk, _ := c.Cookie(TrackingCookie)
	meta := models.SubmissionMeta{
		HUTK:    hutk,
		PageURI: c.GetHeader("Referer"),
	}

	err := h.submissionService.Submit(c.Request.Context(), data, meta)

	var apiErr *hubspot.APIError
	switch {
	case err == nil:
		c.Redirect(http.StatusFound, h.config.ThankYouURL)
	case errors.As(err, &apiErr):
		log.Error("HubSpot error",
			zap.Int("hubspot_status", apiErr.StatusCode),
			zap.String("body", apiErr.Body),
		)
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to submit to HubSpot",
			"detail":  apiErr.Body,
		})
	default:
		log.Error("Server error", zap.Error(err))
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Server error",
			"error":   err.Error(),
		})
	}
}
