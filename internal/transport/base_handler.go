package transport

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/frahmantamala/workforce-management/pkg/logger"
)

// BaseHandler provides the response helpers shared by HTTP handlers.
type BaseHandler struct {
	Logger *slog.Logger
}

func NewBaseHandler(lg *slog.Logger) *BaseHandler {
	if lg == nil {
		lg = logger.LoggerWrapper()
	}
	return &BaseHandler{Logger: lg}
}

func (h *BaseHandler) WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.Logger.Error("failed to encode JSON response", "error", err)
	}
}

// WriteError writes a single-message error body, the shape the store uses
// for action-level failures.
func (h *BaseHandler) WriteError(w http.ResponseWriter, status int, message string) {
	h.WriteJSON(w, status, map[string]string{"error": message})
}

// WriteFieldErrors writes a per-field error body, the shape the store uses
// when payload validation fails.
func (h *BaseHandler) WriteFieldErrors(w http.ResponseWriter, fieldErrors map[string][]string) {
	h.WriteJSON(w, http.StatusBadRequest, fieldErrors)
}
