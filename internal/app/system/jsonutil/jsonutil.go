// Package jsonutil writes JSON responses.
package jsonutil

import (
	"encoding/json"
	"net/http"
)

// Write marshals v and writes it with the given status. The body is encoded
// before any header is sent, so an encoding failure becomes a 500 instead of
// a truncated response.
func Write(w http.ResponseWriter, status int, v any) error {
	body, err := json.Marshal(v)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"Internal server error"}` + "\n"))
		return err
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err = w.Write(append(body, '\n'))
	return err
}

// Error writes {"error": msg}.
func Error(w http.ResponseWriter, status int, msg string) {
	_ = Write(w, status, map[string]string{"error": msg})
}

// Message writes {"message": msg}.
func Message(w http.ResponseWriter, status int, msg string) {
	_ = Write(w, status, map[string]string{"message": msg})
}
