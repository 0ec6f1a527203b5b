package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"adforge/internal/core/port"
)

// requestIdentity extracts the draft id from the route and the
// authenticated user id supplied by the upstream layer via the X-User-ID
// header. It writes the error response itself and reports ok=false when
// either is missing or malformed.
func requestIdentity(w http.ResponseWriter, r *http.Request) (draftID, userID int64, ok bool) {
	var err error
	draftID, err = strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid draft id", http.StatusBadRequest)
		return 0, 0, false
	}
	userID, err = strconv.ParseInt(r.Header.Get("X-User-ID"), 10, 64)
	if err != nil {
		http.Error(w, "missing or invalid X-User-ID", http.StatusUnauthorized)
		return 0, 0, false
	}
	return draftID, userID, true
}

// writeDomainError maps publisher errors onto HTTP statuses: lookups to
// 404, state conflicts to 409 and everything else to 500.
func (h *Handler) writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, port.ErrDraftNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, port.ErrAlreadyPublished),
		errors.Is(err, port.ErrPublishInProgress),
		errors.Is(err, port.ErrInvalidDraftStatus),
		errors.Is(err, port.ErrNotPublished):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		h.logger.Error("internal error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// encoding should rarely fail; log and give up on the response
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// handlePublish runs the publish orchestration for one draft. State
// conflicts (already published, publish in progress) come back as HTTP 409;
// a completed run is HTTP 200 with the structured result, whether or not
// entities failed.
func (h *Handler) handlePublish(w http.ResponseWriter, r *http.Request) {
	draftID, userID, ok := requestIdentity(w, r)
	if !ok {
		return
	}
	result, err := h.svc.Publish(r.Context(), draftID, userID)
	if err != nil {
		h.writeDomainError(w, err)
		return
	}
	h.writeJSON(w, result)
}

// handleValidate returns every blocking issue on the draft.
func (h *Handler) handleValidate(w http.ResponseWriter, r *http.Request) {
	draftID, userID, ok := requestIdentity(w, r)
	if !ok {
		return
	}
	result, err := h.svc.Validate(r.Context(), draftID, userID)
	if err != nil {
		h.writeDomainError(w, err)
		return
	}
	h.writeJSON(w, result)
}

// handleActivate flips a published campaign to active. Drafts that are not
// published yet produce HTTP 409.
func (h *Handler) handleActivate(w http.ResponseWriter, r *http.Request) {
	draftID, userID, ok := requestIdentity(w, r)
	if !ok {
		return
	}
	if err := h.svc.Activate(r.Context(), draftID, userID); err != nil {
		h.writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
