// internal/app/features/places/routes.go
package places

import "github.com/go-chi/chi/v5"

// MountRoutes registers GET /districts and GET /upazilas on the supplied
// router.
func MountRoutes(r chi.Router, h *Handler) {
	r.Get("/districts", h.ServeDistricts)
	r.Get("/upazilas", h.ServeUpazilas)
}
