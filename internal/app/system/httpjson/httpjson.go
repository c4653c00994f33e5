// internal/app/system/httpjson/httpjson.go

// Package httpjson holds the small helpers every API handler uses to write
// JSON responses and the shared {"error": "..."} failure body.
package httpjson

import (
	"encoding/json"
	"io"
	"net/http"
)

// errorBody is the wire shape of every failure response.
type errorBody struct {
	Error string `json:"error"`
}

// Write encodes v as JSON with the given status code.
func Write(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Error writes {"error": msg} with the given status code.
func Error(w http.ResponseWriter, status int, msg string) {
	Write(w, status, errorBody{Error: msg})
}

// Decode reads the request body into dst. Unknown fields are tolerated;
// malformed JSON is not. An empty body decodes as the zero value, so
// endpoints whose fields are all optional accept a bodyless request.
func Decode(r *http.Request, dst any) error {
	err := json.NewDecoder(r.Body).Decode(dst)
	if err == io.EOF {
		return nil
	}
	return err
}
