package gallery

import (
	"context"

	"github.com/google/uuid"
	"github.com/snapvault/photo-api/internal/domain"
)

// AlbumWithPhotos is an album together with its attached photos, as
// returned by GetAlbum.
type AlbumWithPhotos struct {
	domain.Album
	Photos []*domain.Photo `json:"photos"`
}

// Service defines owner-scoped operations over albums and photos. Every
// per-ID operation loads the persisted resource and checks that it belongs
// to the calling user before reading or mutating it; existence is checked
// before ownership, so a nonexistent ID yields a not-found error, never a
// not-owned one.
type Service interface {
	// ListAlbums returns all albums owned by the user.
	ListAlbums(ctx context.Context, userID uuid.UUID) ([]*domain.Album, error)

	// GetAlbum returns one of the user's albums together with its photos.
	// Returns ErrAlbumNotFound or ErrAlbumNotOwned.
	GetAlbum(ctx context.Context, userID, albumID uuid.UUID) (*AlbumWithPhotos, error)

	// CreateAlbum creates a new album owned by the user.
	CreateAlbum(ctx context.Context, userID uuid.UUID, title string) (*domain.Album, error)

	// UpdateAlbum changes the title of one of the user's albums.
	// Returns ErrAlbumNotFound or ErrAlbumNotOwned.
	UpdateAlbum(ctx context.Context, userID, albumID uuid.UUID, title string) (*domain.Album, error)

	// DeleteAlbum removes one of the user's albums. Attached photos are
	// detached, not deleted.
	// Returns ErrAlbumNotFound or ErrAlbumNotOwned.
	DeleteAlbum(ctx context.Context, userID, albumID uuid.UUID) error

	// AttachPhoto attaches one of the user's photos to one of the user's
	// albums. The album must exist (ErrAlbumNotFound otherwise); both the
	// album and the photo must belong to the user (ErrAlbumNotOwned /
	// ErrPhotoNotOwned otherwise); attaching an already-attached photo
	// returns ErrPhotoAlreadyInAlbum and creates no duplicate row.
	AttachPhoto(ctx context.Context, userID, albumID, photoID uuid.UUID) error

	// ListPhotos returns all photos owned by the user.
	ListPhotos(ctx context.Context, userID uuid.UUID) ([]*domain.Photo, error)

	// GetPhoto returns one of the user's photos.
	// Returns ErrPhotoNotFound or ErrPhotoNotOwned.
	GetPhoto(ctx context.Context, userID, photoID uuid.UUID) (*domain.Photo, error)

	// CreatePhoto creates a new photo owned by the user.
	CreatePhoto(
		ctx context.Context,
		userID uuid.UUID,
		title, url, comment string,
	) (*domain.Photo, error)

	// UpdatePhoto changes the title, URL, and comment of one of the user's
	// photos. Returns ErrPhotoNotFound or ErrPhotoNotOwned.
	UpdatePhoto(
		ctx context.Context,
		userID, photoID uuid.UUID,
		title, url, comment string,
	) (*domain.Photo, error)

	// DeletePhoto removes one of the user's photos and its album
	// associations. Returns ErrPhotoNotFound or ErrPhotoNotOwned.
	DeletePhoto(ctx context.Context, userID, photoID uuid.UUID) error
}
