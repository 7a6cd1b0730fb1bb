package leads

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/signflow/leadgen-platform/internal/ghl"
	"github.com/signflow/leadgen-platform/internal/observability/metrics"
	"github.com/signflow/leadgen-platform/pkg/logging"
)

const (
	submitSuccessMessage = "Thank you! We'll be in touch soon."
	submitFailureMessage = "Failed to submit form. Please try again or contact us directly."
)

// CRMClient creates contacts in the external CRM.
type CRMClient interface {
	CreateContact(ctx context.Context, contact ghl.Contact) (*ghl.ContactResult, error)
}

// LeadNotifier tells site operators about accepted leads. Failures are
// logged, never surfaced to the submitter.
type LeadNotifier interface {
	NotifyNewLead(ctx context.Context, req *SubmitLeadRequest) error
}

// Handler handles HTTP requests for lead submissions
type Handler struct {
	crm      CRMClient
	notifier LeadNotifier
	metrics  *metrics.LeadMetrics
	logger   *logging.Logger
}

// NewHandler creates a new leads handler
func NewHandler(crm CRMClient, notifier LeadNotifier, m *metrics.LeadMetrics, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{
		crm:      crm,
		notifier: notifier,
		metrics:  m,
		logger:   logger,
	}
}

// SubmitLeadResponse is the success envelope for an accepted lead.
type SubmitLeadResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	ContactID string `json:"contactId,omitempty"`
}

// ErrorResponse is the failure envelope for every non-2xx status.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// SubmitLead handles /api/submit-lead for every method. The handler owns the
// whole method policy: OPTIONS is answered before any validation, anything
// other than POST is rejected.
func (h *Handler) SubmitLead(w http.ResponseWriter, r *http.Request) {
	setCORSHeaders(w)

	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, ErrorResponse{Error: "Method not allowed"})
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	status, resp := h.Process(r.Context(), body)
	writeJSON(w, status, resp)
}

// Process applies validation, tag derivation and CRM forwarding to a raw
// JSON body and returns the response status and envelope. It is shared by
// the HTTP server and the lambda entrypoint so every surface answers
// identically.
func (h *Handler) Process(ctx context.Context, body []byte) (int, any) {
	var req SubmitLeadRequest
	if err := json.Unmarshal(body, &req); err != nil {
		h.logger.Error("failed to decode submission", "error", err)
		return http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"}
	}

	if err := req.Validate(); err != nil {
		h.metrics.ObserveSubmission(req.Source, "invalid")
		return http.StatusBadRequest, ErrorResponse{Error: err.Error()}
	}

	submissionID := uuid.NewString()

	source := req.Source
	if source == "" {
		source = string(SourceWebsite)
	}
	detail := req.Source
	if detail == "" {
		detail = "unknown"
	}

	contact := ghl.Contact{
		FirstName: req.DisplayName(),
		Email:     req.Email,
		Phone:     req.Phone,
		Tags:      TagsForSource(req.Source),
		Source:    source,
		CustomFields: map[string]string{
			"comment":            req.Comment,
			"lead_source_detail": detail,
		},
	}

	start := time.Now()
	result, err := h.crm.CreateContact(ctx, contact)
	h.metrics.ObserveCRMLatency(time.Since(start).Seconds())
	if err != nil {
		h.logger.Error("lead submission failed",
			"submission_id", submissionID,
			"source", req.Source,
			"error", err,
		)
		h.metrics.ObserveSubmission(req.Source, "error")
		return http.StatusInternalServerError, ErrorResponse{
			Error:   submitFailureMessage,
			Details: err.Error(),
		}
	}

	resp := SubmitLeadResponse{Success: true, Message: submitSuccessMessage}
	if result.Contact != nil {
		resp.ContactID = result.Contact.ID
	}

	h.metrics.ObserveSubmission(req.Source, "ok")
	h.logger.Info("lead created",
		"submission_id", submissionID,
		"contact_id", resp.ContactID,
		"source", source,
	)

	if h.notifier != nil {
		if err := h.notifier.NotifyNewLead(ctx, &req); err != nil {
			h.logger.Error("lead notification failed", "submission_id", submissionID, "error", err)
		}
	}

	return http.StatusOK, resp
}

// setCORSHeaders advertises open cross-origin access on every response. The
// endpoint serves a public marketing form posted from arbitrary origins.
func setCORSHeaders(w http.ResponseWriter) {
	h := w.Header()
	h.Set("Access-Control-Allow-Origin", "*")
	h.Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	h.Set("Access-Control-Allow-Headers", "Content-Type")
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
