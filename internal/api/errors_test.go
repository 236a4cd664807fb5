package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/snapvault/photo-api/internal/domain"
	"github.com/snapvault/photo-api/internal/service/auth"
	"github.com/snapvault/photo-api/internal/service/gallery"
	"github.com/snapvault/photo-api/internal/store"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"expired token", auth.ErrExpiredToken, http.StatusUnauthorized},
		{"invalid refresh token", auth.ErrInvalidRefreshToken, http.StatusUnauthorized},
		{"album not owned", gallery.ErrAlbumNotOwned, http.StatusForbidden},
		{"photo not owned", gallery.ErrPhotoNotOwned, http.StatusForbidden},
		{"album not found", gallery.ErrAlbumNotFound, http.StatusNotFound},
		{"photo not found", gallery.ErrPhotoNotFound, http.StatusNotFound},
		{"email exists", store.ErrEmailExists, http.StatusConflict},
		{"bad photo url", domain.ErrInvalidPhotoURL, http.StatusUnprocessableEntity},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
		{
			"wrapped errors unwrap",
			fmt.Errorf("loading album: %w", gallery.ErrAlbumNotFound),
			http.StatusNotFound,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, MapErrorToStatusCode(tc.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	t.Parallel()

	t.Run("internal detail never leaks", func(t *testing.T) {
		t.Parallel()
		err := errors.New(`pq: connection to "postgres://user:secret@db" refused`)
		msg := GetSafeErrorMessage(err)
		assert.Equal(t, "An unexpected error occurred", msg)
	})

	t.Run("known failures get their user-facing text", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Album Not Found", GetSafeErrorMessage(gallery.ErrAlbumNotFound))
		assert.Equal(t, "You don't have access to this album",
			GetSafeErrorMessage(gallery.ErrAlbumNotOwned))
		assert.Equal(t, "Action denied. This photo does not belong to you",
			GetSafeErrorMessage(gallery.ErrPhotoNotOwned))
	})
}
