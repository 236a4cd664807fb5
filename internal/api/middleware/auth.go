// Package middleware provides HTTP middleware for the API, most
// importantly the JWT authentication gate protecting resource routes.
package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/snapvault/photo-api/internal/api/shared"
	"github.com/snapvault/photo-api/internal/redact"
	"github.com/snapvault/photo-api/internal/service/auth"
)

// AuthMiddleware provides JWT authentication for routes. It is the sole
// gate in front of every resource endpoint; only register, login, and
// refresh bypass it.
type AuthMiddleware struct {
	jwtService auth.JWTService
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(jwtService auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
	}
}

// BearerToken extracts the token from an "Authorization: Bearer <token>"
// header. The scheme comparison is case-insensitive. Returns
// auth.ErrMissingToken when the header is absent or not bearer-shaped.
func BearerToken(r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", auth.ErrMissingToken
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", auth.ErrMissingToken
	}

	return parts[1], nil
}

// Authenticate validates access tokens from the Authorization header and
// attaches the caller's identity to the request context.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := BearerToken(r)
		if err != nil {
			shared.RespondFail(w, r, http.StatusUnauthorized, "Authorization required")
			return
		}

		claims, err := m.jwtService.ValidateToken(r.Context(), token)
		if err != nil {
			switch {
			case errors.Is(err, auth.ErrExpiredToken):
				shared.RespondFail(w, r, http.StatusUnauthorized, "Token expired")
			case errors.Is(err, auth.ErrInvalidToken),
				errors.Is(err, auth.ErrWrongTokenType),
				errors.Is(err, auth.ErrTokenNotYetValid):
				shared.RespondFail(w, r, http.StatusUnauthorized, "Authorization failed")
			default:
				slog.Error("failed to validate token", "error", redact.Error(err))
				shared.RespondError(w, r, http.StatusInternalServerError, "Authentication error")
			}
			return
		}

		ctx := shared.WithIdentity(r.Context(), shared.Identity{
			UserID:      claims.UserID,
			Email:       claims.Email,
			DisplayName: claims.DisplayName,
		})

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
