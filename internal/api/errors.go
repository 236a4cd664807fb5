package api

import (
	"errors"
	"net/http"

	"github.com/snapvault/photo-api/internal/domain"
	"github.com/snapvault/photo-api/internal/service/auth"
	"github.com/snapvault/photo-api/internal/service/gallery"
	"github.com/snapvault/photo-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to HTTP status codes. The
// ordering encodes the precedence the handlers rely on: not-found beats
// not-owned because services check existence before ownership.
func MapErrorToStatusCode(err error) int {
	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, auth.ErrInvalidRefreshToken),
		errors.Is(err, auth.ErrExpiredRefreshToken),
		errors.Is(err, auth.ErrWrongTokenType):
		return http.StatusUnauthorized

	// Authorization errors
	case errors.Is(err, gallery.ErrAlbumNotOwned),
		errors.Is(err, gallery.ErrPhotoNotOwned):
		return http.StatusForbidden

	// Not found errors
	case errors.Is(err, gallery.ErrAlbumNotFound),
		errors.Is(err, gallery.ErrPhotoNotFound),
		errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	// Conflict errors
	case errors.Is(err, store.ErrEmailExists):
		return http.StatusConflict

	// Domain validation the request validator could not catch, e.g. a
	// URL with a scheme but no host
	case errors.Is(err, domain.ErrAlbumTitleTooShort),
		errors.Is(err, domain.ErrPhotoTitleTooShort),
		errors.Is(err, domain.ErrInvalidPhotoURL),
		errors.Is(err, domain.ErrPhotoCommentTooShort):
		return http.StatusUnprocessableEntity

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-facing message for the
// error. Internal detail stays in the logs.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrMissingToken):
		return "Authorization failed"

	case errors.Is(err, auth.ErrInvalidRefreshToken),
		errors.Is(err, auth.ErrExpiredRefreshToken),
		errors.Is(err, auth.ErrWrongTokenType):
		return "Invalid token"

	case errors.Is(err, gallery.ErrAlbumNotOwned):
		return "You don't have access to this album"

	case errors.Is(err, gallery.ErrPhotoNotOwned):
		return "Action denied. This photo does not belong to you"

	case errors.Is(err, gallery.ErrAlbumNotFound):
		return "Album Not Found"

	case errors.Is(err, gallery.ErrPhotoNotFound):
		return "Photo Not Found"

	case errors.Is(err, store.ErrEmailExists):
		return "Email already registered"

	// Domain sentinel messages are written for users; pass them through
	case errors.Is(err, domain.ErrAlbumTitleTooShort),
		errors.Is(err, domain.ErrPhotoTitleTooShort),
		errors.Is(err, domain.ErrInvalidPhotoURL),
		errors.Is(err, domain.ErrPhotoCommentTooShort):
		return err.Error()

	default:
		return "An unexpected error occurred"
	}
}
