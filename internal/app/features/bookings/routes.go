// internal/app/features/bookings/routes.go
package bookings

import (
	"github.com/dalemusser/waffle/middleware"
	"github.com/go-chi/chi/v5"
)

// MountRoutes registers the booking endpoints on the supplied router.
// /all-bookings sits outside /bookings, so this feature mounts on the root
// rather than returning a subrouter. New bookings are capped at
// h.MaxBodyBytes.
func MountRoutes(r chi.Router, h *Handler) {
	r.Route("/bookings", func(r chi.Router) {
		r.With(middleware.LimitBodySize(h.MaxBodyBytes)).Post("/", h.ServeCreate)
		r.Get("/", h.ServeByEmail)
		r.Delete("/{id}", h.ServeDelete)
	})
	r.Get("/all-bookings", h.ServeListAll)
}
