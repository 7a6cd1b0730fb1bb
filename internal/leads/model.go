package leads

import "regexp"

// emailPattern is a deliberately loose local@domain.tld check. Anything
// stricter belongs to the CRM, which owns contact validation.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// SubmitLeadRequest represents the request body for a lead submission
type SubmitLeadRequest struct {
	FirstName string `json:"firstName"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Comment   string `json:"comment"`
	Source    string `json:"source"`
}

// Validate validates the submission, reporting the first failing field
func (r *SubmitLeadRequest) Validate() error {
	if r.Email == "" {
		return ErrEmailRequired
	}
	if !emailPattern.MatchString(r.Email) {
		return ErrInvalidEmail
	}
	return nil
}

// DisplayName returns the best available name for logs and notifications.
func (r *SubmitLeadRequest) DisplayName() string {
	if r.FirstName != "" {
		return r.FirstName
	}
	return r.Name
}
