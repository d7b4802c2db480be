package handler

import (
	"net/http"

	"github.com/halland-longevity/backend/internal/repository"
)

// HealthHandler reports whether the storage backend is reachable.
type HealthHandler struct {
	store repository.Storage
}

// NewHealthHandler creates a HealthHandler over the given storage.
func NewHealthHandler(store repository.Storage) *HealthHandler {
	return &HealthHandler{store: store}
}

type healthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Health handles GET /api/health.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Ping(r.Context()); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, healthResponse{
			Status:  "unhealthy",
			Message: err.Error(),
		})
		return
	}
	writeJSON(w, http.StatusOK, healthResponse{
		Status:  "ok",
		Message: "Halland Longevity API",
	})
}
