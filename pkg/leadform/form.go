// Package leadform is the shared submission contract for every surface that
// collects leads (contact section, case-study pages, blog popup). It owns the
// UI-local state of one form: field values, a submit-in-flight guard, and the
// last success/error outcome. It performs no format validation beyond the
// terms checkbox; the endpoint is the trust boundary.
package leadform

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/signflow/leadgen-platform/pkg/logging"
)

const (
	defaultTimeout = 15 * time.Second

	networkErrorMessage = "Network error. Please check your connection and try again."
	genericErrorMessage = "Failed to submit form. Please try again."
	termsErrorMessage   = "Please agree to the terms and conditions"
)

// ErrSubmitInFlight is returned when Submit is called while a previous
// submission is still running. The caller should disable the control instead
// of queueing.
var ErrSubmitInFlight = errors.New("leadform: submit already in flight")

// State holds the field values a visitor has entered.
type State struct {
	FirstName string `json:"firstName,omitempty"`
	Name      string `json:"name,omitempty"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	Comment   string `json:"comment,omitempty"`
	Agreed    bool   `json:"agreed"`
}

type submitPayload struct {
	State
	Source string `json:"source"`
}

// Status is the submission lifecycle a surface renders from.
type Status string

const (
	StatusIdle       Status = "idle"
	StatusSubmitting Status = "submitting"
	StatusSuccess    Status = "success"
	StatusError      Status = "error"
)

// ValidationError reports a field that failed pre-submit validation.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// SubmissionError carries the human-readable message to show inline when the
// endpoint rejects a submission or the call never completes.
type SubmissionError struct {
	StatusCode int
	Message    string
}

func (e *SubmissionError) Error() string { return e.Message }

// Result is the server acknowledgment for an accepted lead.
type Result struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	ContactID string `json:"contactId"`
}

// Form is one lead-capture surface bound to a fixed source tag.
type Form struct {
	endpoint   string
	source     string
	httpClient *http.Client
	logger     *logging.Logger

	mu         sync.Mutex
	submitting bool
	state      State
	status     Status
	errMsg     string
}

// New creates a form for the given endpoint URL and per-surface source tag.
func New(endpoint, source string, logger *logging.Logger) *Form {
	if logger == nil {
		logger = logging.Default()
	}
	return &Form{
		endpoint: endpoint,
		source:   source,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		logger: logger,
		status: StatusIdle,
	}
}

// SetState replaces the entered field values.
func (f *Form) SetState(s State) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state = s
}

// State returns the current field values.
func (f *Form) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Status returns the submission lifecycle state.
func (f *Form) Status() Status {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.status
}

// ErrorMessage returns the inline message for the last failure, "" otherwise.
func (f *Form) ErrorMessage() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.errMsg
}

// Submit posts the entered values to the endpoint. On success the fields are
// reset; on failure they are preserved so the visitor can resubmit. No retry
// is attempted.
func (f *Form) Submit(ctx context.Context) (*Result, error) {
	f.mu.Lock()
	if !f.state.Agreed {
		f.status = StatusError
		f.errMsg = termsErrorMessage
		f.mu.Unlock()
		return nil, &ValidationError{Field: "agreed", Message: termsErrorMessage}
	}
	if f.submitting {
		f.mu.Unlock()
		return nil, ErrSubmitInFlight
	}
	f.submitting = true
	f.status = StatusSubmitting
	f.errMsg = ""
	payload := submitPayload{State: f.state, Source: f.source}
	f.mu.Unlock()

	result, err := f.post(ctx, payload)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.submitting = false
	if err != nil {
		f.status = StatusError
		f.errMsg = err.Error()
		return nil, err
	}

	f.state = State{}
	f.status = StatusSuccess
	return result, nil
}

func (f *Form) post(ctx context.Context, payload submitPayload) (*Result, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, &SubmissionError{Message: networkErrorMessage}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, &SubmissionError{Message: networkErrorMessage}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		f.logger.Error("leadform: submit failed", "source", f.source, "error", err)
		return nil, &SubmissionError{Message: networkErrorMessage}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &SubmissionError{Message: networkErrorMessage}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr struct {
			Error string `json:"error"`
		}
		msg := genericErrorMessage
		if json.Unmarshal(respBody, &apiErr) == nil && apiErr.Error != "" {
			msg = apiErr.Error
		}
		f.logger.Warn("leadform: submission rejected",
			"source", f.source,
			"status", resp.StatusCode,
			"message", msg,
		)
		return nil, &SubmissionError{StatusCode: resp.StatusCode, Message: msg}
	}

	var result Result
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, &SubmissionError{StatusCode: resp.StatusCode, Message: networkErrorMessage}
	}

	f.logger.Info("leadform: lead submitted", "source", f.source, "contact_id", result.ContactID)
	return &result, nil
}
