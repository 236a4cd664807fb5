package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/snapvault/photo-api/internal/domain"
)

// AlbumStore defines the interface for album data persistence, including
// the album/photo association table.
type AlbumStore interface {
	// Create saves a new album to the store.
	// Returns ErrInvalidEntity if the owning user does not exist.
	Create(ctx context.Context, album *domain.Album) error

	// GetByID retrieves an album by its unique ID.
	// Returns ErrAlbumNotFound if the album does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Album, error)

	// ListByUser retrieves all albums owned by the given user,
	// newest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Album, error)

	// Update modifies an existing album's title.
	// Returns ErrAlbumNotFound if the album does not exist.
	Update(ctx context.Context, album *domain.Album) error

	// Delete removes an album and its association rows. The photos
	// themselves are untouched.
	// Returns ErrAlbumNotFound if the album does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// AttachPhoto creates an association row between an album and a photo.
	// Returns ErrPhotoAlreadyInAlbum if the pair already exists and
	// ErrInvalidEntity if either side does not exist.
	AttachPhoto(ctx context.Context, albumID, photoID uuid.UUID) error

	// ListPhotos retrieves all photos attached to the given album.
	ListPhotos(ctx context.Context, albumID uuid.UUID) ([]*domain.Photo, error)
}
