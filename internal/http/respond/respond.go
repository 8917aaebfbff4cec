// Package respond writes the uniform response envelope every API
// route uses, so clients can always rely on the same shape.
package respond

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

type successEnvelope struct {
	StatusCode int    `json:"statusCode"`
	Data       any    `json:"data"`
	Message    string `json:"message"`
	Success    bool   `json:"success"`
}

type errorEnvelope struct {
	Success    bool     `json:"success"`
	Message    string   `json:"message"`
	Errors     []string `json:"errors"`
	StatusCode int      `json:"statusCode"`
}

// Data writes a success envelope with the given status code.
func Data(w http.ResponseWriter, status int, data any, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	envelope := successEnvelope{
		StatusCode: status,
		Data:       data,
		Message:    message,
		Success:    true,
	}

	if err := json.NewEncoder(w).Encode(envelope); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// Error writes an error envelope. Internal details never reach the
// client; callers pass a message that is safe to expose.
func Error(w http.ResponseWriter, status int, message string, errs ...string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if errs == nil {
		errs = []string{}
	}

	envelope := errorEnvelope{
		Success:    false,
		Message:    message,
		Errors:     errs,
		StatusCode: status,
	}

	if err := json.NewEncoder(w).Encode(envelope); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
