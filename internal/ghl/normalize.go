package ghl

import "strings"

// NormalizePhone reduces a free-text phone number to E.164-like form:
// digits only, country code 1 prepended when absent, then a leading "+".
// Empty or digit-free input yields "" so the field can be omitted from the
// outbound payload. The transform is idempotent.
func NormalizePhone(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if digits == "" {
		return ""
	}
	if !strings.HasPrefix(digits, "1") {
		digits = "1" + digits
	}
	return "+" + digits
}

// SplitName breaks a combined display name into first and last parts. The
// first whitespace-separated token becomes the first name; the remainder,
// joined by single spaces, becomes the last name ("" when there is none).
func SplitName(name string) (firstName, lastName string) {
	parts := strings.Fields(name)
	if len(parts) == 0 {
		return "", ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}
