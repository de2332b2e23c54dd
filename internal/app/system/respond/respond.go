// Package respond writes the JSON envelopes used by every API handler.
//
// Error responses always carry a human-readable reason so callers can render
// actionable feedback ("you already applied" reads differently from "file too
// large"). Internal detail never reaches the client; handlers log it and send
// the generic 500 message instead.
package respond

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// errorBody is the JSON shape of every non-2xx response.
type errorBody struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// JSON writes v with the given status code.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Error writes a plain error message with the given status code.
func Error(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, errorBody{Error: msg})
}

// FieldErrors writes a 400 with the full set of per-field validation
// messages, keyed by field name.
func FieldErrors(w http.ResponseWriter, fields map[string]string) {
	JSON(w, http.StatusBadRequest, errorBody{
		Error:  "The submission has invalid or missing fields.",
		Fields: fields,
	})
}

// NotFound writes a 404 with the given message.
func NotFound(w http.ResponseWriter, msg string) {
	Error(w, http.StatusNotFound, msg)
}

// Conflict writes a 409 with the given message.
func Conflict(w http.ResponseWriter, msg string) {
	Error(w, http.StatusConflict, msg)
}

// PayloadTooLarge writes a 413 with the given message.
func PayloadTooLarge(w http.ResponseWriter, msg string) {
	Error(w, http.StatusRequestEntityTooLarge, msg)
}

// ServerError logs the underlying error and writes the generic 500 message.
// The detail stays server-side.
func ServerError(w http.ResponseWriter, log *zap.Logger, op string, err error) {
	if log != nil {
		log.Error(op, zap.Error(err))
	}
	Error(w, http.StatusInternalServerError, "Something went wrong. Please try again.")
}
