package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter wires the cleaning endpoints: one batch and one single
// route per platform, plus a health probe.
func NewRouter() *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/", handleHealth)
	r.Post("/clean/{platform}", handleCleanBatch)
	r.Post("/clean/{platform}/single", handleCleanSingle)

	return r
}
