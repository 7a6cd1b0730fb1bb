package ghl

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/signflow/leadgen-platform/pkg/logging"
)

const (
	defaultBaseURL = "https://services.leadconnectorhq.com"
	apiVersion     = "2021-07-28"
	defaultTimeout = 10 * time.Second
)

var tracer trace.Tracer = otel.Tracer("signflow.internal.ghl")

// ErrNotConfigured is returned by NewClient when the API credentials are
// absent.
var ErrNotConfigured = errors.New("ghl: api credentials not configured")

// Config holds the GoHighLevel connection settings.
type Config struct {
	APIKey     string
	LocationID string
	BaseURL    string
}

// Client creates contacts in GoHighLevel.
type Client struct {
	baseURL    string
	apiKey     string
	locationID string
	httpClient *http.Client
	logger     *logging.Logger
}

// NewClient builds a GoHighLevel client. Credentials are validated here so a
// misconfigured deployment fails at startup rather than on the first lead.
func NewClient(cfg Config, logger *logging.Logger) (*Client, error) {
	if strings.TrimSpace(cfg.APIKey) == "" || strings.TrimSpace(cfg.LocationID) == "" {
		return nil, ErrNotConfigured
	}
	if logger == nil {
		logger = logging.Default()
	}
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		baseURL:    baseURL,
		apiKey:     cfg.APIKey,
		locationID: cfg.LocationID,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		logger: logger,
	}, nil
}

// CreateContact normalizes the contact and POSTs it to the contact-creation
// endpoint. Every failure comes back as a single opaque error carrying a
// best-effort human-readable message; callers do not distinguish causes.
func (c *Client) CreateContact(ctx context.Context, contact Contact) (*ContactResult, error) {
	if strings.TrimSpace(contact.Email) == "" {
		return nil, errors.New("ghl: email is required")
	}

	ctx, span := tracer.Start(ctx, "ghl.create_contact")
	defer span.End()
	span.SetAttributes(
		attribute.String("signflow.lead_source", contact.Source),
	)

	payload := c.buildPayload(contact)

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("ghl: marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/contacts/", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("ghl: create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Version", apiVersion)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("ghl: contact request failed", "error", err)
		return nil, fmt.Errorf("ghl: http request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Error("ghl: read response failed", "error", err)
		return nil, fmt.Errorf("ghl: read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := extractErrorMessage(respBody, resp.StatusCode)
		c.logger.Error("ghl: contact creation rejected",
			"status", resp.StatusCode,
			"message", msg,
		)
		return nil, errors.New(msg)
	}

	var out apiResponse
	if err := json.Unmarshal(respBody, &out); err != nil {
		c.logger.Error("ghl: malformed success response", "error", err)
		return nil, fmt.Errorf("ghl: unmarshal response: %w", err)
	}

	contactID := ""
	if out.Contact != nil {
		contactID = out.Contact.ID
	}
	c.logger.Info("ghl: contact created", "contact_id", contactID, "source", contact.Source)

	return &ContactResult{
		Contact: out.Contact,
		Message: "Contact created successfully",
	}, nil
}

func (c *Client) buildPayload(contact Contact) contactPayload {
	firstName := contact.FirstName
	lastName := contact.LastName
	if firstName == "" && contact.Name != "" {
		firstName, lastName = SplitName(contact.Name)
	}

	payload := contactPayload{
		Email:      contact.Email,
		LocationID: c.locationID,
		FirstName:  firstName,
		LastName:   lastName,
		Phone:      NormalizePhone(contact.Phone),
		Source:     contact.Source,
	}
	if len(contact.Tags) > 0 {
		payload.Tags = contact.Tags
	}
	return payload
}

// extractErrorMessage pulls the human message out of a GoHighLevel error
// body, falling back to a generic status-based message.
func extractErrorMessage(body []byte, status int) string {
	var parsed struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Message != "" {
		return parsed.Message
	}
	return fmt.Sprintf("GHL API error: %d", status)
}
