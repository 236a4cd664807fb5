package middleware

import (
	"log/slog"
	"net/http"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/snapvault/photo-api/internal/platform/logger"
)

// RequestLogger attaches a request-scoped logger carrying the chi request
// ID to the context, so every log line emitted while serving the request
// can be correlated.
func RequestLogger(base *slog.Logger) func(http.Handler) http.Handler {
	if base == nil {
		base = slog.Default()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := base
			if reqID := chimiddleware.GetReqID(r.Context()); reqID != "" {
				log = base.With(slog.String("request_id", reqID))
			}

			ctx := logger.WithLogger(r.Context(), log)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
