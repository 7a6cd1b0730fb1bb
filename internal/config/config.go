package config

import (
	"errors"
	"os"
	"strings"
)

// Config holds application configuration
type Config struct {
	Port     string
	Env      string
	LogLevel string
	SiteName string

	// GoHighLevel CRM credentials. Both are required before any contact
	// can be forwarded; Validate enforces this at startup.
	GHLAPIKey     string
	GHLLocationID string
	GHLBaseURL    string

	// SendGrid email configuration for new-lead notifications.
	SendGridAPIKey    string
	SendGridFromEmail string
	SendGridFromName  string
	LeadNotifyEmails  []string
}

// Load reads configuration from environment variables
func Load() *Config {
	return &Config{
		Port:     getEnv("PORT", "8080"),
		Env:      getEnv("ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		SiteName: getEnv("SITE_NAME", "SignFlow"),

		GHLAPIKey:     getEnv("GHL_API_KEY", ""),
		GHLLocationID: getEnv("GHL_LOCATION_ID", ""),
		GHLBaseURL:    getEnv("GHL_BASE_URL", ""),

		SendGridAPIKey:    getEnv("SENDGRID_API_KEY", ""),
		SendGridFromEmail: getEnv("SENDGRID_FROM_EMAIL", ""),
		SendGridFromName:  getEnv("SENDGRID_FROM_NAME", "SignFlow"),
		LeadNotifyEmails:  getEnvAsList("LEAD_NOTIFY_EMAILS"),
	}
}

// ErrMissingCRMCredentials is returned when the GoHighLevel credentials are
// absent. Missing credentials are a fatal misconfiguration, not a retryable
// condition.
var ErrMissingCRMCredentials = errors.New("config: GHL_API_KEY and GHL_LOCATION_ID are required")

// Validate checks that every required value is present.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.GHLAPIKey) == "" || strings.TrimSpace(c.GHLLocationID) == "" {
		return ErrMissingCRMCredentials
	}
	return nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsList retrieves a comma-separated environment variable as a slice,
// dropping empty entries.
func getEnvAsList(key string) []string {
	raw := getEnv(key, "")
	if raw == "" {
		return nil
	}
	var values []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			values = append(values, part)
		}
	}
	return values
}
