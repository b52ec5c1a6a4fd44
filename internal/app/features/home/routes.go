// internal/app/features/home/routes.go
package home

import "github.com/go-chi/chi/v5"

// MountRoutes registers GET / on the supplied router.
func MountRoutes(r chi.Router, h *Handler) {
	r.Get("/", h.ServeRoot)
}
