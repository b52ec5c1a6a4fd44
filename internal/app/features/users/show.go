// internal/app/features/users/show.go
package users

import (
	"errors"
	"net/http"
	"net/url"

	userstore "github.com/dalemusser/bloodbank/internal/app/store/users"
	"github.com/dalemusser/bloodbank/internal/app/system/jsonutil"
	"github.com/dalemusser/bloodbank/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
)

// Show handles GET /users/{email}. The match is exact and case-sensitive.
//
//	200 user document
//	404 {"message":"User not found"}
//	500 {"message":"Internal server error"}
func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")
	// chi routes on RawPath when it is set, so only then is the value still
	// escaped. Path is already decoded; unescaping it again would turn a
	// literal "%41" into "A".
	if r.URL.RawPath != "" {
		if unescaped, err := url.PathUnescape(email); err == nil {
			email = unescaped
		}
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "find user by email")
	defer cancel()

	u, err := h.Users.GetByEmail(ctx, email)
	if errors.Is(err, userstore.ErrNotFound) {
		jsonutil.Message(w, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		h.ErrLog.ServerErrorMessage(w, r, "Internal server error", err)
		return
	}
	_ = jsonutil.Write(w, http.StatusOK, u)
}
