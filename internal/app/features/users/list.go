// internal/app/features/users/list.go
package users

import (
	"net/http"

	"github.com/dalemusser/bloodbank/internal/app/system/jsonutil"
	"github.com/dalemusser/bloodbank/internal/app/system/timeouts"
)

// List handles GET /users. Users come back in store order; an empty
// collection yields [].
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "list users")
	defer cancel()

	list, err := h.Users.List(ctx)
	if err != nil {
		h.ErrLog.ServerError(w, r, "Failed to fetch users", err)
		return
	}
	_ = jsonutil.Write(w, http.StatusOK, list)
}
