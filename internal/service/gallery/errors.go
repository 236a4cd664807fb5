package gallery

import "errors"

// Gallery service errors. Not-found and not-owned are deliberately
// distinct: a missing resource must never be reported as a permission
// problem, and existence is always checked before ownership.
var (
	// ErrAlbumNotFound indicates the requested album does not exist.
	ErrAlbumNotFound = errors.New("album not found")

	// ErrPhotoNotFound indicates the requested photo does not exist.
	ErrPhotoNotFound = errors.New("photo not found")

	// ErrAlbumNotOwned indicates the album exists but belongs to a
	// different user.
	ErrAlbumNotOwned = errors.New("album not owned by user")

	// ErrPhotoNotOwned indicates the photo exists but belongs to a
	// different user.
	ErrPhotoNotOwned = errors.New("photo not owned by user")

	// ErrPhotoAlreadyInAlbum indicates the photo is already attached to
	// the album. Attaching twice is rejected without creating a row, but
	// is not treated as a hard failure by the API layer.
	ErrPhotoAlreadyInAlbum = errors.New("photo already attached to album")
)
