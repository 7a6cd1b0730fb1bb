package ghl

// Contact is the adapter-level input for contact creation. Name is split
// into first/last only when FirstName is not already supplied.
type Contact struct {
	FirstName    string
	LastName     string
	Name         string
	Email        string
	Phone        string
	Tags         []string
	Source       string
	CustomFields map[string]string
}

// contactPayload is the wire body for POST /contacts/. Optional fields are
// omitted entirely when empty; GoHighLevel rejects empty-string values.
// CustomFields never goes on the wire.
type contactPayload struct {
	Email      string   `json:"email"`
	LocationID string   `json:"locationId"`
	FirstName  string   `json:"firstName,omitempty"`
	LastName   string   `json:"lastName,omitempty"`
	Phone      string   `json:"phone,omitempty"`
	Tags       []string `json:"tags,omitempty"`
	Source     string   `json:"source,omitempty"`
}

// ContactInfo is the contact record echoed back by GoHighLevel.
type ContactInfo struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
}

type apiResponse struct {
	Contact *ContactInfo `json:"contact"`
	Message string       `json:"message"`
}

// ContactResult is the adapter's uniform success result.
type ContactResult struct {
	Contact *ContactInfo
	Message string
}
