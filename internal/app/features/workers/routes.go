// internal/app/features/workers/routes.go
package workers

import (
	"github.com/dalemusser/waffle/middleware"
	"github.com/go-chi/chi/v5"
)

// Routes returns the router mounted under /worker. Submissions are capped at
// h.MaxBodyBytes.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.With(middleware.LimitBodySize(h.MaxBodyBytes)).Post("/", h.ServeCreate)
	r.Get("/", h.ServeList)
	r.Delete("/{id}", h.ServeDelete)
	return r
}
