package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAlbum(t *testing.T) {
	t.Parallel()

	owner := uuid.New()

	t.Run("valid album", func(t *testing.T) {
		t.Parallel()
		album, err := NewAlbum(owner, "Trip")
		require.NoError(t, err)
		assert.Equal(t, owner, album.UserID)
		assert.Equal(t, "Trip", album.Title)
	})

	t.Run("short title", func(t *testing.T) {
		t.Parallel()
		_, err := NewAlbum(owner, "Tr")
		assert.ErrorIs(t, err, ErrAlbumTitleTooShort)
	})

	t.Run("missing owner", func(t *testing.T) {
		t.Parallel()
		_, err := NewAlbum(uuid.Nil, "Trip")
		assert.ErrorIs(t, err, ErrEmptyAlbumOwner)
	})
}
