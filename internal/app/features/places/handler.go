// internal/app/features/places/handler.go
package places

import (
	"net/http"

	errorsfeature "github.com/dalemusser/bloodbank/internal/app/features/errors"
	"github.com/dalemusser/bloodbank/internal/app/system/jsonutil"
	"github.com/dalemusser/bloodbank/internal/app/system/metrics"
	"github.com/dalemusser/bloodbank/internal/app/system/refdata"
	"go.uber.org/zap"
)

// Handler serves the district and upazila reference lists.
type Handler struct {
	Districts refdata.Dataset
	Upazilas  refdata.Dataset
	Metrics   *metrics.Metrics
	ErrLog    *errorsfeature.ErrorLogger
	Log       *zap.Logger
}

// NewHandler creates a places handler reading the given files.
func NewHandler(districtsPath, upazilasPath string, m *metrics.Metrics, errLog *errorsfeature.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Districts: refdata.Dataset{Name: "districts", Path: districtsPath},
		Upazilas:  refdata.Dataset{Name: "upazilas", Path: upazilasPath},
		Metrics:   m,
		ErrLog:    errLog,
		Log:       logger,
	}
}

// ServeDistricts handles GET /districts.
func (h *Handler) ServeDistricts(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, h.Districts)
}

// ServeUpazilas handles GET /upazilas.
func (h *Handler) ServeUpazilas(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, h.Upazilas)
}

// serve re-reads the dataset file and returns it sorted by name. Any failure
// yields 500 {"error":"Failed to load <dataset>"} and no partial list.
func (h *Handler) serve(w http.ResponseWriter, r *http.Request, ds refdata.Dataset) {
	list, err := refdata.Load(ds.Path)
	h.Metrics.RefdataLoaded(ds.Name, err)
	if err != nil {
		h.ErrLog.ServerError(w, r, "Failed to load "+ds.Name, err, zap.String("dataset", ds.Name))
		return
	}
	if err := jsonutil.Write(w, http.StatusOK, list); err != nil {
		h.Log.Error("write reference list failed", zap.String("dataset", ds.Name), zap.Error(err))
	}
}
