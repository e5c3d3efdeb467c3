package handler

import (
	"net/http"

	"github.com/autovoice/voice-showroom/internal/inventory"
	"github.com/autovoice/voice-showroom/internal/service"
)

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	store inventory.Store
	chat  *service.ChatService
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(store inventory.Store, chat *service.ChatService) *HealthHandler {
	return &HealthHandler{
		store: store,
		chat:  chat,
	}
}

// Health handles GET /health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
	})
}

// Ready handles GET /ready
// Reports catalog size and gateway configuration. A missing credential is
// degraded operation, not unreadiness; the catalog endpoints still work.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	cars, err := h.store.GetAll(r.Context())
	if err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "not ready",
			"reason": "inventory unavailable",
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":           "ready",
		"catalogSize":      len(cars),
		"openaiConfigured": h.chat.Configured(),
	})
}
