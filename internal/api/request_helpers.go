package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/snapvault/photo-api/internal/api/shared"
	"github.com/snapvault/photo-api/internal/platform/logger"
	"github.com/snapvault/photo-api/internal/redact"
)

// identityFromRequest extracts the authenticated identity set by the auth
// middleware. A missing identity means the route was wired without the
// middleware; the caller gets a 401 either way.
func identityFromRequest(w http.ResponseWriter, r *http.Request) (shared.Identity, bool) {
	identity, ok := shared.IdentityFromContext(r.Context())
	if !ok || identity.UserID == uuid.Nil {
		logger.FromContext(r.Context()).Warn("identity not found in request context",
			"path", r.URL.Path)
		shared.RespondFail(w, r, http.StatusUnauthorized, "Authorization required")
		return shared.Identity{}, false
	}
	return identity, true
}

// uuidParam parses a UUID URL parameter, answering 400 on malformed input.
func uuidParam(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	raw := chi.URLParam(r, name)
	id, err := uuid.Parse(raw)
	if err != nil {
		shared.RespondFail(w, r, http.StatusBadRequest, "Invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}

// respondServiceError maps a service error onto the envelope: expected
// failures become fail envelopes with safe messages, anything else becomes
// a generic 500 error with the detail logged.
func respondServiceError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	status := MapErrorToStatusCode(err)
	if status >= http.StatusInternalServerError {
		logger.FromContext(r.Context()).Error("request failed",
			"error", redact.Error(err),
			"path", r.URL.Path,
			"method", r.Method)
		shared.RespondError(w, r, status, fallback)
		return
	}
	shared.RespondFail(w, r, status, GetSafeErrorMessage(err))
}
