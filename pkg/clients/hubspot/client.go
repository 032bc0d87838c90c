package hubspot

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/magnamoney/alie-relay/pkg/models"
)

// DefaultBaseURL is the host of the HubSpot Forms API
const DefaultBaseURL = "https://api.hsforms.com"

// HTTPClient abstracts the outbound transport. *http.Client satisfies it.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client defines the interface for interacting with the HubSpot Forms API
type Client interface {
	SubmitForm(ctx context.Context, submission models.HubSpotSubmission) error
}

// APIError is returned when HubSpot answers with a non-2xx status
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("error from HubSpot API (status %d): %s", e.StatusCode, e.Body)
}

// Options configures a Client
type Options struct {
	Token    string
	PortalID string
	FormID   string
	BaseURL  string
	Timeout  time.Duration

	// HTTPClient overrides the transport; a client with Timeout is built when nil
	HTTPClient HTTPClient
	Logger     *zap.Logger
}

type clientImpl struct {
	token      string
	portalID   string
	formID     string
	baseURL    string
	httpClient HTTPClient
	logger     *zap.Logger
}

// NewClient creates a new HubSpot Forms client
func NewClient(opts Options) Client {
	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: opts.Timeout}
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &clientImpl{
		token:      opts.Token,
		portalID:   opts.PortalID,
		formID:     opts.FormID,
		baseURL:    baseURL,
		httpClient: httpClient,
		logger:     logger.Named("hubspot"),
	}
}

// SubmitURL returns the integration submit endpoint for a portal and form
func SubmitURL(baseURL, portalID, formID string) string {
	return fmt.Sprintf("%s/submissions/v3/integration/submit/%s/%s",
		baseURL, url.PathEscape(portalID), url.PathEscape(formID))
}

func (c *clientImpl) SubmitForm(ctx context.Context, submission models.HubSpotSubmission) error {
	submitURL := SubmitURL(c.baseURL, c.portalID, c.formID)

	jsonPayload, err := json.Marshal(submission)
	if err != nil {
		return fmt.Errorf("error creating payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, submitURL, bytes.NewReader(jsonPayload))
	if err != nil {
		return fmt.Errorf("error creating request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("error submitting form to HubSpot: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("error reading response: %w", err)
		}
		return &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	// Success body is discarded
	_, _ = io.Copy(io.Discard, resp.Body)

	c.logger.Debug("Submitted form to HubSpot",
		zap.String("form_id", c.formID),
		zap.Int("status", resp.StatusCode),
		zap.Int("fields", len(submission.Fields)),
	)
	return nil
}
