package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging, withGZip)

	// stateless payload and style operations
	router.Group(func(r chi.Router) {
		r.Post("/api/payload/validate", h.validatePayload)
		r.Post("/api/payload/build", h.buildPayload)
		r.Get("/api/styles/presets", h.listPresets)
		r.Post("/api/styles/preset/{preset}", h.applyPreset)
	})

	// history
	router.Group(func(r chi.Router) {
		r.Post("/api/payloads", h.savePayload)
		r.Get("/api/payloads", h.listPayloads)
		r.Get("/api/payloads/{id}", h.getPayload)
		r.Delete("/api/payloads/{id}", h.deletePayload)
	})

	router.Get("/api/version", h.getServerVersion)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
