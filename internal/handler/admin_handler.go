package handler

import (
	"net/http"

	"github.com/halland-longevity/backend/internal/model"
	"github.com/halland-longevity/backend/internal/service"
)

// AdminHandler exposes read-only listings of the stored submissions for
// site operators. Routes are registered only when an admin token is
// configured; the token check lives in RequireAdminToken.
type AdminHandler struct {
	contactService    service.ContactService
	newsletterService service.NewsletterService
}

// NewAdminHandler creates an AdminHandler with the given services.
func NewAdminHandler(contactService service.ContactService, newsletterService service.NewsletterService) *AdminHandler {
	return &AdminHandler{
		contactService:    contactService,
		newsletterService: newsletterService,
	}
}

// contactsResponse is the JSON response for GET /api/admin/contacts.
type contactsResponse struct {
	Messages []*model.ContactMessage `json:"messages"`
}

// ListContacts handles GET /api/admin/contacts.
func (h *AdminHandler) ListContacts(w http.ResponseWriter, r *http.Request) {
	messages, err := h.contactService.List(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "list_failed"})
		return
	}
	// Return [] not null for empty lists
	if messages == nil {
		messages = []*model.ContactMessage{}
	}
	writeJSON(w, http.StatusOK, contactsResponse{Messages: messages})
}

// subscriptionsResponse is the JSON response for GET /api/admin/subscriptions.
type subscriptionsResponse struct {
	Subscriptions []*model.NewsletterSubscription `json:"subscriptions"`
}

// ListSubscriptions handles GET /api/admin/subscriptions.
func (h *AdminHandler) ListSubscriptions(w http.ResponseWriter, r *http.Request) {
	subs, err := h.newsletterService.List(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "list_failed"})
		return
	}
	if subs == nil {
		subs = []*model.NewsletterSubscription{}
	}
	writeJSON(w, http.StatusOK, subscriptionsResponse{Subscriptions: subs})
}
