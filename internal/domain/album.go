package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Common album validation errors
var (
	ErrEmptyAlbumID       = errors.New("album ID cannot be empty")
	ErrEmptyAlbumOwner    = errors.New("album must have an owning user")
	ErrAlbumTitleTooShort = errors.New("album title must be at least 3 characters long")
)

// Album is a user-owned collection of photos. The owning user is set at
// creation and never reassigned; photos are related through an association
// table, not ownership transfer.
type Album struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewAlbum creates a new Album owned by the given user.
// Returns an error if validation fails.
func NewAlbum(userID uuid.UUID, title string) (*Album, error) {
	now := time.Now().UTC()
	album := &Album{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     title,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := album.Validate(); err != nil {
		return nil, err
	}

	return album, nil
}

// Validate checks if the Album has valid data.
func (a *Album) Validate() error {
	if a.ID == uuid.Nil {
		return ErrEmptyAlbumID
	}
	if a.UserID == uuid.Nil {
		return ErrEmptyAlbumOwner
	}
	if len(a.Title) < 3 {
		return ErrAlbumTitleTooShort
	}
	return nil
}
