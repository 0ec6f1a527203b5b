package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"adforge/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
// It holds the publisher use case to execute business logic and a logger for
// structured logging. Routes are registered on a chi.Router for convenient
// method handling.
type Handler struct {
	svc    port.CampaignPublisher
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured. It accepts the
// publisher implementation and a logger. The returned Handler registers
// handlers for each endpoint on a new chi.Router.
func NewHandler(svc port.CampaignPublisher, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, logger: logger}
	r := chi.NewRouter()

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/drafts/{id}", h.handleGetDraft)
		r.Get("/drafts/{id}/validate", h.handleValidate)
		r.Post("/drafts/{id}/publish", h.handlePublish)
		r.Post("/drafts/{id}/activate", h.handleActivate)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
