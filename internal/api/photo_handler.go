package api

import (
	"log/slog"
	"net/http"

	"github.com/snapvault/photo-api/internal/api/shared"
	"github.com/snapvault/photo-api/internal/service/gallery"
)

// PhotoHandler handles photo-related HTTP requests.
type PhotoHandler struct {
	gallery gallery.Service
	logger  *slog.Logger
}

// NewPhotoHandler creates a new PhotoHandler.
func NewPhotoHandler(galleryService gallery.Service, logger *slog.Logger) *PhotoHandler {
	if logger == nil {
		logger = slog.Default()
	}

	return &PhotoHandler{
		gallery: galleryService,
		logger:  logger.With(slog.String("component", "photo_handler")),
	}
}

// List handles GET /photos. Returns all photos owned by the caller.
func (h *PhotoHandler) List(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromRequest(w, r)
	if !ok {
		return
	}

	photos, err := h.gallery.ListPhotos(r.Context(), identity.UserID)
	if err != nil {
		respondServiceError(w, r, err, "Couldn't get photos")
		return
	}

	shared.RespondSuccess(w, r, photos)
}

// Get handles GET /photos/{photoId}.
func (h *PhotoHandler) Get(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromRequest(w, r)
	if !ok {
		return
	}
	photoID, ok := uuidParam(w, r, "photoId")
	if !ok {
		return
	}

	photo, err := h.gallery.GetPhoto(r.Context(), identity.UserID, photoID)
	if err != nil {
		respondServiceError(w, r, err, "Exception thrown in database when finding photo")
		return
	}

	shared.RespondSuccess(w, r, photo)
}

// Create handles POST /photos.
func (h *PhotoHandler) Create(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromRequest(w, r)
	if !ok {
		return
	}

	var req CreatePhotoRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondFail(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.Validate.Struct(req); err != nil {
		shared.RespondFail(w, r, http.StatusUnprocessableEntity, shared.ValidationErrors(err))
		return
	}

	photo, err := h.gallery.CreatePhoto(
		r.Context(),
		identity.UserID,
		req.Title,
		req.URL,
		req.Comment,
	)
	if err != nil {
		respondServiceError(w, r, err,
			"Exception thrown in database when adding a photo to a user")
		return
	}

	shared.RespondSuccess(w, r, photo)
}

// Update handles PUT /photos/{photoId}.
func (h *PhotoHandler) Update(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromRequest(w, r)
	if !ok {
		return
	}
	photoID, ok := uuidParam(w, r, "photoId")
	if !ok {
		return
	}

	var req UpdatePhotoRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondFail(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.Validate.Struct(req); err != nil {
		shared.RespondFail(w, r, http.StatusUnprocessableEntity, shared.ValidationErrors(err))
		return
	}

	photo, err := h.gallery.UpdatePhoto(
		r.Context(),
		identity.UserID,
		photoID,
		req.Title,
		req.URL,
		req.Comment,
	)
	if err != nil {
		respondServiceError(w, r, err, "Exception thrown in database when updating a photo")
		return
	}

	shared.RespondSuccess(w, r, photo)
}

// Delete handles DELETE /photos/{photoId}.
func (h *PhotoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromRequest(w, r)
	if !ok {
		return
	}
	photoID, ok := uuidParam(w, r, "photoId")
	if !ok {
		return
	}

	if err := h.gallery.DeletePhoto(r.Context(), identity.UserID, photoID); err != nil {
		respondServiceError(w, r, err, "Exception thrown in database when deleting a photo")
		return
	}

	shared.RespondSuccess(w, r, nil)
}
