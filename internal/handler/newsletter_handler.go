package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/halland-longevity/backend/internal/model"
	"github.com/halland-longevity/backend/internal/service"
	"github.com/halland-longevity/backend/internal/validate"
)

// NewsletterHandler handles newsletter signups.
type NewsletterHandler struct {
	newsletterService service.NewsletterService
}

// NewNewsletterHandler creates a NewsletterHandler with the given service.
func NewNewsletterHandler(newsletterService service.NewsletterService) *NewsletterHandler {
	return &NewsletterHandler{newsletterService: newsletterService}
}

// Subscribe handles POST /api/newsletter. An email that is already
// subscribed is a success for the visitor, not an error: it returns 200
// with an informational message and creates nothing.
func (h *NewsletterHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeFailure(w, http.StatusMethodNotAllowed, "Method Not Allowed")
		return
	}

	var in model.NewsletterSubscriptionInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeFailure(w, http.StatusBadRequest, "request body must be valid JSON")
		return
	}

	if err := validate.NewsletterSubscription(&in); err != nil {
		writeFailure(w, http.StatusBadRequest, err.Error())
		return
	}

	sub, already, err := h.newsletterService.Subscribe(r.Context(), &in)
	if err != nil {
		slog.Error("newsletter subscription failed", "error", err)
		writeFailure(w, http.StatusInternalServerError, "Failed to process newsletter subscription")
		return
	}

	if already {
		writeSuccess(w, http.StatusOK, "Email is already subscribed to the newsletter", nil)
		return
	}
	writeSuccess(w, http.StatusCreated, "Successfully subscribed to the newsletter", sub)
}
