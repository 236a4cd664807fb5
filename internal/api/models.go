package api

// Common request/response structures. Field rules mirror what the stores
// enforce so a request failing validation never touches the database.

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Email     string `json:"email"      validate:"required,email"`
	Password  string `json:"password"   validate:"required,min=6,max=72"`
	FirstName string `json:"first_name" validate:"required,min=3"`
	LastName  string `json:"last_name"  validate:"required,min=3"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// ProfileResponse is the public profile returned after registration.
// It deliberately excludes the user ID and any credential material.
type ProfileResponse struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// TokenPairResponse is the successful login payload.
type TokenPairResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// AccessTokenResponse is the successful refresh payload.
type AccessTokenResponse struct {
	AccessToken string `json:"access_token"`
}

// CreateAlbumRequest defines the payload for creating or renaming an album.
type CreateAlbumRequest struct {
	Title string `json:"title" validate:"required,min=3"`
}

// AttachPhotoRequest defines the payload for attaching a photo to an album.
type AttachPhotoRequest struct {
	PhotoID string `json:"photo_id" validate:"required,uuid"`
}

// CreatePhotoRequest defines the payload for creating a photo.
type CreatePhotoRequest struct {
	Title   string `json:"title"   validate:"required,min=3"`
	URL     string `json:"url"     validate:"required,url"`
	Comment string `json:"comment" validate:"omitempty,min=3"`
}

// UpdatePhotoRequest defines the payload for updating a photo.
type UpdatePhotoRequest struct {
	Title   string `json:"title"   validate:"required,min=3"`
	URL     string `json:"url"     validate:"required,url"`
	Comment string `json:"comment" validate:"omitempty,min=3"`
}
