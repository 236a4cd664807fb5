package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the
	// store. Entity-specific variants wrap it so callers can match either.
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an operation would create a duplicate
	// of a unique entity.
	ErrDuplicate = errors.New("entity already exists")

	// ErrInvalidEntity is returned when an entity fails validation before
	// being stored, or references a row that does not exist.
	ErrInvalidEntity = errors.New("invalid entity")

	// Entity-specific "not found" errors

	// ErrUserNotFound indicates that the requested user does not exist.
	ErrUserNotFound = fmt.Errorf("%w: user", ErrNotFound)

	// ErrAlbumNotFound indicates that the requested album does not exist.
	ErrAlbumNotFound = fmt.Errorf("%w: album", ErrNotFound)

	// ErrPhotoNotFound indicates that the requested photo does not exist.
	ErrPhotoNotFound = fmt.Errorf("%w: photo", ErrNotFound)

	// Entity-specific "duplicate" errors

	// ErrEmailExists indicates that a user with the given email already
	// exists. The users.email unique constraint is the authoritative guard;
	// application-level pre-checks only shape a friendlier error.
	ErrEmailExists = fmt.Errorf("%w: email", ErrDuplicate)

	// ErrPhotoAlreadyInAlbum indicates the (album, photo) association row
	// already exists. The album_photos primary key is the authoritative
	// guard against double-attach.
	ErrPhotoAlreadyInAlbum = fmt.Errorf("%w: photo already in album", ErrDuplicate)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError checks if the error is any kind of "duplicate" error.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}
