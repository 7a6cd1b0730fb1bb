package leads

import "errors"

// Error strings below are returned verbatim in API responses; the wording is
// part of the public contract with the site's forms.
var (
	// ErrEmailRequired is returned when the email field is absent
	ErrEmailRequired = errors.New("Email is required")

	// ErrInvalidEmail is returned when the email fails the basic shape check
	ErrInvalidEmail = errors.New("Invalid email format")
)
