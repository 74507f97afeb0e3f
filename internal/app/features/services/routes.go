// internal/app/features/services/routes.go
package services

import "github.com/go-chi/chi/v5"

// Routes returns the router mounted under /services.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeList)
	r.Get("/id/{id}", h.ServeByID)
	r.Get("/category/{category}", h.ServeByCategory)
	return r
}
