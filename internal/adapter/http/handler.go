package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"campaign-editor/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
// It opens editor sessions through the use case, keeps them in a Registry
// and exposes their commands. Routes are registered on a chi.Router.
type Handler struct {
	uc       port.EditorUseCase
	sessions *Registry
	logger   *slog.Logger
	router   chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(uc port.EditorUseCase, sessions *Registry, logger *slog.Logger) *Handler {
	h := &Handler{uc: uc, sessions: sessions, logger: logger}
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Route("/api/v1/editor/sessions", func(r chi.Router) {
		r.Post("/", h.handleCreateSession)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.handleGetSession)
			r.Delete("/", h.handleDeleteSession)
			r.Get("/changes", h.handleChanges)
			r.Put("/form", h.handleSetForm)
			r.Post("/commands/{name}", h.handleCommand)
		})
	})
	r.Handle("/metrics", promhttp.Handler())
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
