package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all application configuration values
type Config struct {
	// HubSpot
	HubSpotPrivateAppToken string        `env:"HUBSPOT_PRIVATE_APP_TOKEN"`
	HubSpotPortalID        string        `env:"HUBSPOT_PORTAL_ID" envDefault:"8402236"`
	HubSpotFormID          string        `env:"HUBSPOT_FORM_ID" envDefault:"MY_HUBSPOT_FORM_ID"`
	HubSpotBaseURL         string        `env:"HUBSPOT_API_BASE_URL" envDefault:"https://api.hsforms.com"`
	HubSpotTimeout         time.Duration `env:"HUBSPOT_TIMEOUT" envDefault:"15s"`

	// ALIE form
	PageName    string `env:"ALIE_PAGE_NAME" envDefault:"Magna Money ALIE Form"`
	ThankYouURL string `env:"ALIE_THANK_YOU_URL" envDefault:"https://magna-money-alie.vercel.app/thank-you-ALIE.html"`

	// Server
	Port             string   `env:"PORT" envDefault:"8080"`
	Env              string   `env:"APP_ENV" envDefault:"development"`
	LogLevel         string   `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat        string   `env:"LOG_FORMAT"`
	CORSAllowOrigins []string `env:"CORS_ALLOW_ORIGINS" envSeparator:","`
	MaxBodyBytes     int64    `env:"MAX_BODY_BYTES" envDefault:"1048576"`
	TracingEnabled   bool     `env:"TRACING_ENABLED" envDefault:"false"`
	ServiceName      string   `env:"SERVICE_NAME" envDefault:"alie-relay"`
}

// LoadConfig reads configuration from environment variables
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// HasCredentials reports whether the HubSpot private app token is set.
// A missing token is reported per request rather than failing startup.
func (c *Config) HasCredentials() bool {
	return c.HubSpotPrivateAppToken != ""
}

// IsProduction reports whether the service runs in production
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
