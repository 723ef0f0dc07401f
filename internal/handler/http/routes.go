package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)

	router.Post("/webhook", h.webhook)
	router.Get("/version", h.version)

	router.Group(func(r chi.Router) {
		r.Use(withGZip)
		r.Get("/rows", h.rows)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.withReconcileToken)
		r.Post("/reconcile", h.reconcile)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
