package domain

import (
	"errors"
	"net/url"
	"time"

	"github.com/google/uuid"
)

// Common photo validation errors
var (
	ErrEmptyPhotoID         = errors.New("photo ID cannot be empty")
	ErrEmptyPhotoOwner      = errors.New("photo must have an owning user")
	ErrPhotoTitleTooShort   = errors.New("photo title must be at least 3 characters long")
	ErrInvalidPhotoURL      = errors.New("photo URL must be a valid absolute URL")
	ErrPhotoCommentTooShort = errors.New("photo comment must be at least 3 characters long")
)

// Photo is a user-owned reference to an image. Only the URL and metadata
// are stored, never the binary. A photo may be attached to any number of
// the owner's albums without changing ownership.
type Photo struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Title     string    `json:"title"`
	URL       string    `json:"url"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewPhoto creates a new Photo owned by the given user.
// Returns an error if validation fails.
func NewPhoto(userID uuid.UUID, title, photoURL, comment string) (*Photo, error) {
	now := time.Now().UTC()
	photo := &Photo{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     title,
		URL:       photoURL,
		Comment:   comment,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := photo.Validate(); err != nil {
		return nil, err
	}

	return photo, nil
}

// Validate checks if the Photo has valid data.
func (p *Photo) Validate() error {
	if p.ID == uuid.Nil {
		return ErrEmptyPhotoID
	}
	if p.UserID == uuid.Nil {
		return ErrEmptyPhotoOwner
	}
	if len(p.Title) < 3 {
		return ErrPhotoTitleTooShort
	}

	u, err := url.Parse(p.URL)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return ErrInvalidPhotoURL
	}

	// Comment is optional, but when present follows the title rule.
	if p.Comment != "" && len(p.Comment) < 3 {
		return ErrPhotoCommentTooShort
	}

	return nil
}
