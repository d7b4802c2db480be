package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/halland-longevity/backend/internal/model"
	"github.com/halland-longevity/backend/internal/service"
	"github.com/halland-longevity/backend/internal/validate"
)

// ContactHandler handles contact form submissions.
type ContactHandler struct {
	contactService service.ContactService
}

// NewContactHandler creates a ContactHandler with the given service.
func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// Submit handles POST /api/contact: decode, validate, persist, respond.
// OPTIONS is answered with an empty 200 for preflights; any other method
// gets 405 with an Allow header.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeFailure(w, http.StatusMethodNotAllowed, "Method Not Allowed")
		return
	}

	var in model.ContactMessageInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeFailure(w, http.StatusBadRequest, "request body must be valid JSON")
		return
	}

	if err := validate.ContactMessage(&in); err != nil {
		writeFailure(w, http.StatusBadRequest, err.Error())
		return
	}

	msg, err := h.contactService.Submit(r.Context(), &in)
	if err != nil {
		// full detail stays server-side
		slog.Error("contact submission failed", "error", err)
		writeFailure(w, http.StatusInternalServerError, "Failed to process contact request")
		return
	}

	writeSuccess(w, http.StatusCreated, "Contact message received successfully", msg)
}
