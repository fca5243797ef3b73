package web

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"userdir/internal/core"
)

// ErrorResponse is the JSON shape of every error reply.
type ErrorResponse struct {
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
	Action  string   `json:"action,omitempty"`
	Code    string   `json:"code,omitempty"`
}

// writeJSON encodes v as JSON and writes it to w.
// Logs encoding errors since headers are already sent.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("json encode failed", "error", err)
	}
}

// respondMessage writes a bare error message with its mapped code.
func respondMessage(w http.ResponseWriter, status int, message string) {
	msg := core.MapError(errors.New(message))
	writeJSON(w, status, ErrorResponse{
		Error:  message,
		Action: msg.Action,
		Code:   msg.Code,
	})
}

// respondError maps a domain error to an HTTP status and a user-facing JSON
// body. Validation problems list every violation in Details.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)

	if status >= 500 {
		slog.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
	}

	resp := ErrorResponse{Error: err.Error()}

	var vErr *core.ValidationFailedError
	if errors.As(err, &vErr) {
		resp.Error = "Validation failed"
		for _, v := range vErr.Violations {
			resp.Details = append(resp.Details, v.Message)
		}
	}

	msg := core.MapError(err)
	resp.Action = msg.Action
	resp.Code = msg.Code

	// Internal detail stays in the log.
	var sErr *core.StorageError
	if errors.As(err, &sErr) {
		resp.Error = msg.Message
	}

	writeJSON(w, status, resp)
}

// statusFor picks the HTTP status code for a domain error.
func statusFor(err error) int {
	var (
		vErr *core.ValidationFailedError
		dErr *core.DuplicateEmailError
		sErr *core.StorageError
	)

	switch {
	case errors.Is(err, core.ErrNotFound):
		return http.StatusNotFound
	case errors.As(err, &vErr), errors.As(err, &dErr):
		return http.StatusBadRequest
	case errors.Is(err, core.ErrEmptyBatch):
		return http.StatusBadRequest
	case errors.As(err, &sErr):
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}
