package ghl

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	c, err := NewClient(Config{APIKey: "test-key", LocationID: "loc_1", BaseURL: baseURL}, nil)
	if err != nil {
		t.Fatalf("NewClient error: %v", err)
	}
	return c
}

func TestNewClientMissingCredentials(t *testing.T) {
	if _, err := NewClient(Config{APIKey: "key"}, nil); err != ErrNotConfigured {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
	if _, err := NewClient(Config{LocationID: "loc"}, nil); err != ErrNotConfigured {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
	if _, err := NewClient(Config{APIKey: "  ", LocationID: "loc"}, nil); err != ErrNotConfigured {
		t.Fatalf("expected ErrNotConfigured for blank key, got %v", err)
	}
}

func TestCreateContact_Success(t *testing.T) {
	var gotPath, gotAuth, gotVersion string
	var gotBody map[string]any

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotVersion = r.Header.Get("Version")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"contact": map[string]any{"id": "contact_123", "email": "jon@example.com", "firstName": "Jon"},
		})
	}))
	defer ts.Close()

	c := newTestClient(t, ts.URL)
	result, err := c.CreateContact(context.Background(), Contact{
		FirstName: "Jon",
		Email:     "jon@example.com",
		Phone:     "(555) 123-4567",
		Tags:      []string{"Website Lead", "Case Study Form"},
		Source:    "case-study",
	})
	if err != nil {
		t.Fatalf("CreateContact error: %v", err)
	}

	if result.Contact == nil || result.Contact.ID != "contact_123" {
		t.Fatalf("unexpected result: %+v", result)
	}
	if result.Message != "Contact created successfully" {
		t.Fatalf("unexpected message: %s", result.Message)
	}
	if gotPath != "/contacts/" {
		t.Fatalf("unexpected path: %s", gotPath)
	}
	if gotAuth != "Bearer test-key" {
		t.Fatalf("unexpected auth header: %s", gotAuth)
	}
	if gotVersion != "2021-07-28" {
		t.Fatalf("unexpected version header: %s", gotVersion)
	}
	if gotBody["email"] != "jon@example.com" || gotBody["locationId"] != "loc_1" {
		t.Fatalf("unexpected body: %v", gotBody)
	}
	if gotBody["firstName"] != "Jon" {
		t.Fatalf("unexpected firstName: %v", gotBody["firstName"])
	}
	if gotBody["phone"] != "+15551234567" {
		t.Fatalf("expected normalized phone, got %v", gotBody["phone"])
	}
	tags, ok := gotBody["tags"].([]any)
	if !ok || len(tags) != 2 || tags[0] != "Website Lead" || tags[1] != "Case Study Form" {
		t.Fatalf("unexpected tags: %v", gotBody["tags"])
	}
	if _, present := gotBody["customFields"]; present {
		t.Fatal("customFields must not be sent on the wire")
	}
}

func TestCreateContact_OmitsEmptyOptionalFields(t *testing.T) {
	var gotBody map[string]any
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_ = json.NewEncoder(w).Encode(map[string]any{"contact": map[string]any{"id": "c1", "email": "a@b.co"}})
	}))
	defer ts.Close()

	c := newTestClient(t, ts.URL)
	if _, err := c.CreateContact(context.Background(), Contact{Email: "a@b.co", Phone: "   "}); err != nil {
		t.Fatalf("CreateContact error: %v", err)
	}

	for _, key := range []string{"phone", "firstName", "lastName", "tags", "source"} {
		if _, present := gotBody[key]; present {
			t.Fatalf("expected %q to be omitted, body=%v", key, gotBody)
		}
	}
}

func TestCreateContact_SplitsNameWhenFirstNameMissing(t *testing.T) {
	var gotBody map[string]any
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_ = json.NewEncoder(w).Encode(map[string]any{"contact": map[string]any{"id": "c1", "email": "jane@example.com"}})
	}))
	defer ts.Close()

	c := newTestClient(t, ts.URL)
	if _, err := c.CreateContact(context.Background(), Contact{Name: "Jane Doe Smith", Email: "jane@example.com"}); err != nil {
		t.Fatalf("CreateContact error: %v", err)
	}

	if gotBody["firstName"] != "Jane" {
		t.Fatalf("expected firstName Jane, got %v", gotBody["firstName"])
	}
	if gotBody["lastName"] != "Doe Smith" {
		t.Fatalf("expected lastName 'Doe Smith', got %v", gotBody["lastName"])
	}
}

func TestCreateContact_ErrorWithMessageBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_ = json.NewEncoder(w).Encode(map[string]any{"message": "duplicate contact"})
	}))
	defer ts.Close()

	c := newTestClient(t, ts.URL)
	_, err := c.CreateContact(context.Background(), Contact{Email: "dup@example.com"})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if err.Error() != "duplicate contact" {
		t.Fatalf("expected upstream message, got %q", err.Error())
	}
}

func TestCreateContact_ErrorWithUnparsableBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("<html>nope</html>"))
	}))
	defer ts.Close()

	c := newTestClient(t, ts.URL)
	_, err := c.CreateContact(context.Background(), Contact{Email: "a@b.co"})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if err.Error() != "GHL API error: 502" {
		t.Fatalf("expected generic status message, got %q", err.Error())
	}
}

func TestCreateContact_NetworkFailure(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	ts.Close() // closed immediately to force a connection error

	c := newTestClient(t, ts.URL)
	_, err := c.CreateContact(context.Background(), Contact{Email: "a@b.co"})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "ghl: http request") {
		t.Fatalf("unexpected error: %v", err)
	}
}
