// internal/app/features/users/routes.go
package users

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes returns a subrouter for the users endpoints (mounted at /users).
// createMW wraps registration only, e.g. a rate limiter.
func Routes(h *Handler, createMW ...func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()
	r.With(createMW...).Post("/", h.Create)
	r.Get("/", h.List)
	r.Get("/{email}", h.Show)
	return r
}
