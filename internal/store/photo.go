package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/snapvault/photo-api/internal/domain"
)

// PhotoStore defines the interface for photo data persistence.
type PhotoStore interface {
	// Create saves a new photo to the store.
	// Returns ErrInvalidEntity if the owning user does not exist.
	Create(ctx context.Context, photo *domain.Photo) error

	// GetByID retrieves a photo by its unique ID.
	// Returns ErrPhotoNotFound if the photo does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Photo, error)

	// ListByUser retrieves all photos owned by the given user,
	// newest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Photo, error)

	// Update modifies an existing photo's title, URL, and comment.
	// Returns ErrPhotoNotFound if the photo does not exist.
	Update(ctx context.Context, photo *domain.Photo) error

	// Delete removes a photo and its association rows.
	// Returns ErrPhotoNotFound if the photo does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}
