package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/snapvault/photo-api/internal/api/shared"
	"github.com/snapvault/photo-api/internal/service/gallery"
)

// AlbumHandler handles album-related HTTP requests.
type AlbumHandler struct {
	gallery gallery.Service
	logger  *slog.Logger
}

// NewAlbumHandler creates a new AlbumHandler.
func NewAlbumHandler(galleryService gallery.Service, logger *slog.Logger) *AlbumHandler {
	if logger == nil {
		logger = slog.Default()
	}

	return &AlbumHandler{
		gallery: galleryService,
		logger:  logger.With(slog.String("component", "album_handler")),
	}
}

// List handles GET /albums. Returns all albums owned by the caller.
func (h *AlbumHandler) List(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromRequest(w, r)
	if !ok {
		return
	}

	albums, err := h.gallery.ListAlbums(r.Context(), identity.UserID)
	if err != nil {
		respondServiceError(w, r, err, "Couldn't get albums")
		return
	}

	shared.RespondSuccess(w, r, albums)
}

// Get handles GET /albums/{albumId}. Returns the album together with its
// attached photos. A foreign album yields 403 with no album data.
func (h *AlbumHandler) Get(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromRequest(w, r)
	if !ok {
		return
	}
	albumID, ok := uuidParam(w, r, "albumId")
	if !ok {
		return
	}

	album, err := h.gallery.GetAlbum(r.Context(), identity.UserID, albumID)
	if err != nil {
		respondServiceError(w, r, err, "Exception thrown in database when finding album")
		return
	}

	shared.RespondSuccess(w, r, album)
}

// Create handles POST /albums.
func (h *AlbumHandler) Create(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromRequest(w, r)
	if !ok {
		return
	}

	var req CreateAlbumRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondFail(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.Validate.Struct(req); err != nil {
		shared.RespondFail(w, r, http.StatusUnprocessableEntity, shared.ValidationErrors(err))
		return
	}

	album, err := h.gallery.CreateAlbum(r.Context(), identity.UserID, req.Title)
	if err != nil {
		respondServiceError(w, r, err,
			"Exception thrown in database when adding an album to a user")
		return
	}

	shared.RespondSuccess(w, r, album)
}

// Update handles PUT /albums/{albumId}.
func (h *AlbumHandler) Update(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromRequest(w, r)
	if !ok {
		return
	}
	albumID, ok := uuidParam(w, r, "albumId")
	if !ok {
		return
	}

	var req CreateAlbumRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondFail(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.Validate.Struct(req); err != nil {
		shared.RespondFail(w, r, http.StatusUnprocessableEntity, shared.ValidationErrors(err))
		return
	}

	album, err := h.gallery.UpdateAlbum(r.Context(), identity.UserID, albumID, req.Title)
	if err != nil {
		respondServiceError(w, r, err, "Exception thrown in database when updating an album")
		return
	}

	shared.RespondSuccess(w, r, album)
}

// Delete handles DELETE /albums/{albumId}. The album's photos survive;
// only the album and its association rows go.
func (h *AlbumHandler) Delete(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromRequest(w, r)
	if !ok {
		return
	}
	albumID, ok := uuidParam(w, r, "albumId")
	if !ok {
		return
	}

	if err := h.gallery.DeleteAlbum(r.Context(), identity.UserID, albumID); err != nil {
		respondServiceError(w, r, err, "Exception thrown in database when deleting an album")
		return
	}

	shared.RespondSuccess(w, r, nil)
}

// AttachPhoto handles POST /albums/{albumId}/photos. Both the album and
// the photo must belong to the caller; attaching an already-attached photo
// answers with a fail envelope, not an error status.
func (h *AlbumHandler) AttachPhoto(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromRequest(w, r)
	if !ok {
		return
	}
	albumID, ok := uuidParam(w, r, "albumId")
	if !ok {
		return
	}

	var req AttachPhotoRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondFail(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.Validate.Struct(req); err != nil {
		shared.RespondFail(w, r, http.StatusUnprocessableEntity, shared.ValidationErrors(err))
		return
	}

	// Validated as uuid by the request rules
	photoID := uuid.MustParse(req.PhotoID)

	err := h.gallery.AttachPhoto(r.Context(), identity.UserID, albumID, photoID)
	if err != nil {
		if errors.Is(err, gallery.ErrPhotoAlreadyInAlbum) {
			shared.RespondFail(w, r, http.StatusOK, "Photo already exists")
			return
		}
		respondServiceError(w, r, err,
			"Exception thrown in database when adding a photo to an album")
		return
	}

	shared.RespondSuccess(w, r, nil)
}
