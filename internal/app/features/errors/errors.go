// internal/app/features/errors/errors.go
package errors

import (
	"net/http"

	"github.com/dalemusser/bloodbank/internal/app/system/jsonutil"
	"github.com/dalemusser/bloodbank/internal/app/system/requestlog"
	"go.uber.org/zap"
)

// ErrorLogger logs server-side failures with request context and answers
// the client with a generic message. Driver and filesystem details go to the
// log only.
type ErrorLogger struct {
	Log *zap.Logger
}

// NewErrorLogger constructs an ErrorLogger.
func NewErrorLogger(logger *zap.Logger) *ErrorLogger {
	return &ErrorLogger{Log: logger}
}

// ServerError logs err and writes 500 {"error": msg}.
func (e *ErrorLogger) ServerError(w http.ResponseWriter, r *http.Request, msg string, err error, fields ...zap.Field) {
	e.log(r, msg, err, fields)
	jsonutil.Error(w, http.StatusInternalServerError, msg)
}

// ServerErrorMessage logs err and writes 500 {"message": msg}. Used where the
// endpoint's other error bodies are keyed by "message".
func (e *ErrorLogger) ServerErrorMessage(w http.ResponseWriter, r *http.Request, msg string, err error, fields ...zap.Field) {
	e.log(r, msg, err, fields)
	jsonutil.Message(w, http.StatusInternalServerError, msg)
}

func (e *ErrorLogger) log(r *http.Request, msg string, err error, fields []zap.Field) {
	all := append(requestlog.Fields(r),
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Error(err),
	)
	e.Log.Error(msg, append(all, fields...)...)
}
