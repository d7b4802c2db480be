package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/halland-longevity/backend/internal/model"
	"github.com/halland-longevity/backend/internal/repository"
	"github.com/halland-longevity/backend/internal/service"
)

// ---------------------------------------------------------------------------
// Mock ContactService
// ---------------------------------------------------------------------------

type mockContactService struct {
	submitFunc func(ctx context.Context, in *model.ContactMessageInput) (*model.ContactMessage, error)
	listFunc   func(ctx context.Context) ([]*model.ContactMessage, error)
}

func (m *mockContactService) Submit(ctx context.Context, in *model.ContactMessageInput) (*model.ContactMessage, error) {
	if m.submitFunc != nil {
		return m.submitFunc(ctx, in)
	}
	return &model.ContactMessage{ID: 1}, nil
}

func (m *mockContactService) List(ctx context.Context) ([]*model.ContactMessage, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

func postJSON(t *testing.T, h http.HandlerFunc, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	if err := json.NewDecoder(rec.Body).Decode(&env); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return env
}

// ---------------------------------------------------------------------------
// POST /api/contact
// ---------------------------------------------------------------------------

// TestContactHandler_Submit_Success runs the full pipeline against real
// service and storage: the first valid submission is stored with id 1.
func TestContactHandler_Submit_Success(t *testing.T) {
	store := repository.NewMemStorage()
	h := NewContactHandler(service.NewContactService(store))

	body := `{"firstName":"Jo","lastName":"Li","email":"jo@example.com","interest":"research","message":"Hello there!"}`
	rec := postJSON(t, h.Submit, "/api/contact", body)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d — body: %s", rec.Code, rec.Body.String())
	}
	env := decodeEnvelope(t, rec)
	if !env.Success {
		t.Error("expected success=true")
	}

	stored, err := store.GetContactMessage(context.Background(), 1)
	if err != nil {
		t.Fatalf("expected record with id 1: %v", err)
	}
	if stored.FirstName != "Jo" || stored.Email != "jo@example.com" {
		t.Errorf("stored record mismatch: %+v", stored)
	}
}

func TestContactHandler_Submit_ResponseIncludesRecord(t *testing.T) {
	h := NewContactHandler(service.NewContactService(repository.NewMemStorage()))

	body := `{"firstName":"Jo","lastName":"Li","email":"jo@example.com","phone":"123","interest":"visiting","message":"Hello there!"}`
	rec := postJSON(t, h.Submit, "/api/contact", body)

	var resp struct {
		Success bool                  `json:"success"`
		Data    *model.ContactMessage `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Data == nil {
		t.Fatal("expected data in response")
	}
	if resp.Data.ID != 1 {
		t.Errorf("expected data.id=1, got %d", resp.Data.ID)
	}
	if resp.Data.CreatedAt.IsZero() {
		t.Error("expected data.createdAt to be set")
	}
}

// TestContactHandler_Submit_ValidationFailure verifies a 400 with an
// aggregate message listing every failing field.
func TestContactHandler_Submit_ValidationFailure(t *testing.T) {
	called := false
	mock := &mockContactService{
		submitFunc: func(ctx context.Context, in *model.ContactMessageInput) (*model.ContactMessage, error) {
			called = true
			return nil, nil
		},
	}
	h := NewContactHandler(mock)

	body := `{"firstName":"J","lastName":"L","email":"bad","interest":"","message":"short"}`
	rec := postJSON(t, h.Submit, "/api/contact", body)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if called {
		t.Error("expected service not to be called on validation failure")
	}
	env := decodeEnvelope(t, rec)
	if env.Success {
		t.Error("expected success=false")
	}
	for _, field := range []string{"firstName", "lastName", "email", "interest", "message"} {
		if !strings.Contains(env.Message, field) {
			t.Errorf("expected message to mention %q, got %q", field, env.Message)
		}
	}
}

func TestContactHandler_Submit_InvalidJSON(t *testing.T) {
	h := NewContactHandler(&mockContactService{})

	rec := postJSON(t, h.Submit, "/api/contact", "{bad json")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for invalid JSON, got %d", rec.Code)
	}
}

// TestContactHandler_Submit_ServiceError verifies that storage failures
// surface as a generic 500 without internal detail.
func TestContactHandler_Submit_ServiceError(t *testing.T) {
	mock := &mockContactService{
		submitFunc: func(ctx context.Context, in *model.ContactMessageInput) (*model.ContactMessage, error) {
			return nil, errors.New("pq: connection refused on 10.0.0.5")
		},
	}
	h := NewContactHandler(mock)

	body := `{"firstName":"Jo","lastName":"Li","email":"jo@example.com","interest":"research","message":"Hello there!"}`
	rec := postJSON(t, h.Submit, "/api/contact", body)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	env := decodeEnvelope(t, rec)
	if env.Success {
		t.Error("expected success=false")
	}
	if strings.Contains(env.Message, "10.0.0.5") {
		t.Errorf("internal detail leaked to caller: %q", env.Message)
	}
}

// TestContactHandler_Submit_WrongMethod verifies 405 with an Allow header.
func TestContactHandler_Submit_WrongMethod(t *testing.T) {
	h := NewContactHandler(&mockContactService{})

	req := httptest.NewRequest(http.MethodGet, "/api/contact", nil)
	rec := httptest.NewRecorder()
	h.Submit(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", rec.Code)
	}
	if allow := rec.Header().Get("Allow"); allow != http.MethodPost {
		t.Errorf("expected Allow: POST, got %q", allow)
	}
}

// TestContactHandler_Submit_Preflight verifies OPTIONS gets an empty 200.
func TestContactHandler_Submit_Preflight(t *testing.T) {
	h := NewContactHandler(&mockContactService{})

	req := httptest.NewRequest(http.MethodOptions, "/api/contact", nil)
	rec := httptest.NewRecorder()
	h.Submit(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200 for preflight, got %d", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Errorf("expected empty body, got %q", rec.Body.String())
	}
}
