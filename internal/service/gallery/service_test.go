package gallery

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snapvault/photo-api/internal/domain"
	"github.com/snapvault/photo-api/internal/mocks"
)

type fixture struct {
	svc    Service
	albums *mocks.AlbumStore
	photos *mocks.PhotoStore
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	photos := mocks.NewPhotoStore()
	albums := mocks.NewAlbumStore(photos)
	return &fixture{
		svc:    NewService(albums, photos, nil),
		albums: albums,
		photos: photos,
	}
}

func (f *fixture) seedAlbum(t *testing.T, userID uuid.UUID, title string) *domain.Album {
	t.Helper()
	album, err := domain.NewAlbum(userID, title)
	require.NoError(t, err)
	require.NoError(t, f.albums.Create(context.Background(), album))
	return album
}

func (f *fixture) seedPhoto(t *testing.T, userID uuid.UUID, title string) *domain.Photo {
	t.Helper()
	photo, err := domain.NewPhoto(userID, title, "http://x/"+title+".jpg", "")
	require.NoError(t, err)
	require.NoError(t, f.photos.Create(context.Background(), photo))
	return photo
}

func TestGetAlbumOwnership(t *testing.T) {
	t.Parallel()

	owner := uuid.New()
	intruder := uuid.New()

	t.Run("owner sees album with photos", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		album := f.seedAlbum(t, owner, "Trip")
		photo := f.seedPhoto(t, owner, "Sunset")
		require.NoError(t, f.svc.AttachPhoto(context.Background(), owner, album.ID, photo.ID))

		got, err := f.svc.GetAlbum(context.Background(), owner, album.ID)
		require.NoError(t, err)
		assert.Equal(t, album.ID, got.ID)
		require.Len(t, got.Photos, 1)
		assert.Equal(t, photo.ID, got.Photos[0].ID)
	})

	t.Run("non-owner is denied without data", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		album := f.seedAlbum(t, owner, "Trip")

		got, err := f.svc.GetAlbum(context.Background(), intruder, album.ID)
		assert.ErrorIs(t, err, ErrAlbumNotOwned)
		assert.Nil(t, got)
	})

	t.Run("missing album is not found, never forbidden", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)

		_, err := f.svc.GetAlbum(context.Background(), intruder, uuid.New())
		assert.ErrorIs(t, err, ErrAlbumNotFound)
		assert.NotErrorIs(t, err, ErrAlbumNotOwned)
	})
}

func TestUpdateAlbum(t *testing.T) {
	t.Parallel()

	owner := uuid.New()
	intruder := uuid.New()

	t.Run("owner updates title", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		album := f.seedAlbum(t, owner, "Trip")

		updated, err := f.svc.UpdateAlbum(context.Background(), owner, album.ID, "Summer Trip")
		require.NoError(t, err)
		assert.Equal(t, "Summer Trip", updated.Title)
	})

	t.Run("non-owner denied", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		album := f.seedAlbum(t, owner, "Trip")

		_, err := f.svc.UpdateAlbum(context.Background(), intruder, album.ID, "Stolen")
		assert.ErrorIs(t, err, ErrAlbumNotOwned)

		// Unchanged
		got, err := f.svc.GetAlbum(context.Background(), owner, album.ID)
		require.NoError(t, err)
		assert.Equal(t, "Trip", got.Title)
	})

	t.Run("missing album", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		_, err := f.svc.UpdateAlbum(context.Background(), owner, uuid.New(), "Whatever")
		assert.ErrorIs(t, err, ErrAlbumNotFound)
	})

	t.Run("invalid title rejected", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		album := f.seedAlbum(t, owner, "Trip")
		_, err := f.svc.UpdateAlbum(context.Background(), owner, album.ID, "ab")
		assert.ErrorIs(t, err, domain.ErrAlbumTitleTooShort)
	})
}

func TestAttachPhoto(t *testing.T) {
	t.Parallel()

	userA := uuid.New()
	userB := uuid.New()

	t.Run("attach succeeds for owner of both", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		album := f.seedAlbum(t, userA, "Trip")
		photo := f.seedPhoto(t, userA, "Sunset")

		require.NoError(t, f.svc.AttachPhoto(context.Background(), userA, album.ID, photo.ID))
		assert.Equal(t, 1, f.albums.AttachmentCount())
	})

	t.Run("double attach rejected without duplicate row", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		album := f.seedAlbum(t, userA, "Trip")
		photo := f.seedPhoto(t, userA, "Sunset")

		require.NoError(t, f.svc.AttachPhoto(context.Background(), userA, album.ID, photo.ID))
		err := f.svc.AttachPhoto(context.Background(), userA, album.ID, photo.ID)
		assert.ErrorIs(t, err, ErrPhotoAlreadyInAlbum)
		assert.Equal(t, 1, f.albums.AttachmentCount())
	})

	t.Run("foreign photo denied", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		album := f.seedAlbum(t, userA, "Trip")
		photoOfB := f.seedPhoto(t, userB, "Sunset")

		err := f.svc.AttachPhoto(context.Background(), userA, album.ID, photoOfB.ID)
		assert.ErrorIs(t, err, ErrPhotoNotOwned)
		assert.Equal(t, 0, f.albums.AttachmentCount())
	})

	t.Run("foreign album denied", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		albumOfB := f.seedAlbum(t, userB, "Trip")
		photo := f.seedPhoto(t, userA, "Sunset")

		err := f.svc.AttachPhoto(context.Background(), userA, albumOfB.ID, photo.ID)
		assert.ErrorIs(t, err, ErrAlbumNotOwned)
	})

	t.Run("missing album is not found", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		photo := f.seedPhoto(t, userA, "Sunset")

		err := f.svc.AttachPhoto(context.Background(), userA, uuid.New(), photo.ID)
		assert.ErrorIs(t, err, ErrAlbumNotFound)
	})

	t.Run("missing photo reads as denied", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		album := f.seedAlbum(t, userA, "Trip")

		err := f.svc.AttachPhoto(context.Background(), userA, album.ID, uuid.New())
		assert.ErrorIs(t, err, ErrPhotoNotOwned)
	})
}

func TestPhotoOperations(t *testing.T) {
	t.Parallel()

	owner := uuid.New()
	intruder := uuid.New()

	t.Run("get denies non-owner", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		photo := f.seedPhoto(t, owner, "Sunset")

		_, err := f.svc.GetPhoto(context.Background(), intruder, photo.ID)
		assert.ErrorIs(t, err, ErrPhotoNotOwned)
	})

	t.Run("get missing photo is not found", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		_, err := f.svc.GetPhoto(context.Background(), owner, uuid.New())
		assert.ErrorIs(t, err, ErrPhotoNotFound)
	})

	t.Run("delete denies non-owner and keeps photo", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		photo := f.seedPhoto(t, owner, "Sunset")

		err := f.svc.DeletePhoto(context.Background(), intruder, photo.ID)
		assert.ErrorIs(t, err, ErrPhotoNotOwned)

		_, err = f.svc.GetPhoto(context.Background(), owner, photo.ID)
		assert.NoError(t, err)
	})

	t.Run("update validates fields", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		photo := f.seedPhoto(t, owner, "Sunset")

		_, err := f.svc.UpdatePhoto(
			context.Background(), owner, photo.ID, "Sunset", "not-a-url", "")
		assert.ErrorIs(t, err, domain.ErrInvalidPhotoURL)
	})

	t.Run("list is owner-scoped", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		f.seedPhoto(t, owner, "Sunset")
		f.seedPhoto(t, owner, "Sunrise")
		f.seedPhoto(t, intruder, "Other")

		photos, err := f.svc.ListPhotos(context.Background(), owner)
		require.NoError(t, err)
		assert.Len(t, photos, 2)
	})
}

func TestDeleteAlbumKeepsPhotos(t *testing.T) {
	t.Parallel()

	owner := uuid.New()
	f := newFixture(t)
	album := f.seedAlbum(t, owner, "Trip")
	photo := f.seedPhoto(t, owner, "Sunset")
	require.NoError(t, f.svc.AttachPhoto(context.Background(), owner, album.ID, photo.ID))

	require.NoError(t, f.svc.DeleteAlbum(context.Background(), owner, album.ID))

	// The association went with the album; the photo itself survives.
	assert.Equal(t, 0, f.albums.AttachmentCount())
	_, err := f.svc.GetPhoto(context.Background(), owner, photo.ID)
	assert.NoError(t, err)
}
