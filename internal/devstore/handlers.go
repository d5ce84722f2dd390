package devstore

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"gorm.io/gorm"

	"github.com/frahmantamala/workforce-management/internal/transport"
)

type Handler struct {
	*transport.BaseHandler
	db *gorm.DB
}

func NewHandler(base *transport.BaseHandler, db *gorm.DB) *Handler {
	return &Handler{BaseHandler: base, db: db}
}

// pathID parses the {id} segment; a malformed id behaves like a missing
// record, matching the remote store.
func (h *Handler) pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		h.writeNotFound(w)
		return 0, false
	}
	return id, true
}

func (h *Handler) writeNotFound(w http.ResponseWriter) {
	h.WriteJSON(w, http.StatusNotFound, map[string]string{"detail": "Not found."})
}

func (h *Handler) writeStorageError(w http.ResponseWriter, err error) {
	h.Logger.Error("storage failure", "error", err)
	h.WriteError(w, http.StatusInternalServerError, "storage failure")
}

func (h *Handler) decodeInto(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.WriteError(w, http.StatusBadRequest, "request body is not valid JSON")
		return false
	}
	return true
}
