// internal/app/features/users/create.go
package users

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/dalemusser/bloodbank/internal/app/system/jsonutil"
	"github.com/dalemusser/bloodbank/internal/app/system/requestlog"
	"github.com/dalemusser/bloodbank/internal/app/system/timeouts"
	"github.com/dalemusser/bloodbank/internal/domain/models"
	"go.uber.org/zap"
)

const msgRequired = "Email and name are required"

// createRequest is the POST /users body. Role and status are not accepted
// from clients; any such fields in the body are ignored.
type createRequest struct {
	Email       string  `json:"email" validate:"required"`
	Name        string  `json:"name" validate:"required"`
	PhotoURL    *string `json:"photoURL"`
	BloodGroup  *string `json:"bloodGroup"`
	DistrictID  *string `json:"districtId"`
	UpazilaName *string `json:"upazilaName"`
}

// Create handles POST /users.
//
//	200 {"acknowledged":true,"insertedId":"<hex>"}
//	400 {"message":"Email and name are required"}
//	500 {"error":"User registration failed"}
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			jsonutil.Message(w, http.StatusRequestEntityTooLarge, "Request body too large")
			return
		}
		h.Log.Debug("rejecting malformed user payload", append(requestlog.Fields(r), zap.Error(err))...)
		jsonutil.Message(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	h.Log.Debug("received user data", append(requestlog.Fields(r),
		zap.String("email", req.Email),
		zap.String("name", req.Name))...)

	if err := h.Validate.Struct(req); err != nil {
		jsonutil.Message(w, http.StatusBadRequest, msgRequired)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "insert user")
	defer cancel()

	created, err := h.Users.Create(ctx, models.User{
		Email:       req.Email,
		Name:        req.Name,
		PhotoURL:    req.PhotoURL,
		BloodGroup:  req.BloodGroup,
		DistrictID:  req.DistrictID,
		UpazilaName: req.UpazilaName,
	})
	if err != nil {
		h.ErrLog.ServerError(w, r, "User registration failed", err)
		return
	}

	h.Log.Info("user inserted", append(requestlog.Fields(r), zap.String("id", created.ID.Hex()))...)
	_ = jsonutil.Write(w, http.StatusOK, models.InsertResult{
		Acknowledged: true,
		InsertedID:   created.ID,
	})
}
