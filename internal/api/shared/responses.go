package shared

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// Response status values used in the envelope.
const (
	StatusSuccess = "success"
	StatusFail    = "fail"
	StatusError   = "error"
)

// Envelope is the response body shape used by every endpoint:
// {"status": "success"|"fail"|"error", "data": ...} for outcomes carrying
// data, or {"status": "error", "message": ...} for opaque server errors.
type Envelope struct {
	Status  string `json:"status"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

// RespondWithJSON writes a JSON response with the given status code and body.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("failed to encode JSON response",
			"error", err,
			"path", r.URL.Path,
			"method", r.Method)
	}
}

// RespondSuccess writes a success envelope with the given data.
func RespondSuccess(w http.ResponseWriter, r *http.Request, data any) {
	// A success envelope with no data still carries an explicit null.
	body := struct {
		Status string `json:"status"`
		Data   any    `json:"data"`
	}{Status: StatusSuccess, Data: data}
	RespondWithJSON(w, r, http.StatusOK, body)
}

// RespondFail writes a fail envelope: the request was well-formed enough
// to reach a decision, and the decision was no. Data carries the reason,
// either a plain string or structured field errors.
func RespondFail(w http.ResponseWriter, r *http.Request, status int, data any) {
	slog.Debug("sending fail response",
		"status_code", status,
		"path", r.URL.Path,
		"method", r.Method)
	RespondWithJSON(w, r, status, Envelope{Status: StatusFail, Data: data})
}

// RespondError writes an error envelope with a generic message. Internal
// detail belongs in the log, never in the message.
func RespondError(w http.ResponseWriter, r *http.Request, status int, message string) {
	slog.Debug("sending error response",
		"status_code", status,
		"message", message,
		"path", r.URL.Path,
		"method", r.Method)
	RespondWithJSON(w, r, status, Envelope{Status: StatusError, Message: message})
}
