package gallery

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/snapvault/photo-api/internal/domain"
	"github.com/snapvault/photo-api/internal/platform/logger"
	"github.com/snapvault/photo-api/internal/store"
)

// Verify interface compliance at compile time
var _ Service = (*serviceImpl)(nil)

// serviceImpl implements the Service interface on top of the album and
// photo stores.
type serviceImpl struct {
	albums store.AlbumStore
	photos store.PhotoStore
	logger *slog.Logger
}

// NewService creates a new gallery Service implementation.
func NewService(albums store.AlbumStore, photos store.PhotoStore, logger *slog.Logger) Service {
	if albums == nil {
		panic("albums store cannot be nil")
	}
	if photos == nil {
		panic("photos store cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &serviceImpl{
		albums: albums,
		photos: photos,
		logger: logger.With(slog.String("component", "gallery_service")),
	}
}

// ownedAlbum loads an album and verifies ownership. Existence is checked
// first: a missing album is ErrAlbumNotFound even for a non-owner.
func (s *serviceImpl) ownedAlbum(
	ctx context.Context,
	userID, albumID uuid.UUID,
) (*domain.Album, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	album, err := s.albums.GetByID(ctx, albumID)
	if err != nil {
		if errors.Is(err, store.ErrAlbumNotFound) {
			return nil, ErrAlbumNotFound
		}
		return nil, fmt.Errorf("failed to get album: %w", err)
	}

	if album.UserID != userID {
		log.Warn("user does not own album",
			slog.String("user_id", userID.String()),
			slog.String("album_id", albumID.String()),
			slog.String("owner_id", album.UserID.String()))
		return nil, ErrAlbumNotOwned
	}

	return album, nil
}

// ownedPhoto loads a photo and verifies ownership, mirroring ownedAlbum.
func (s *serviceImpl) ownedPhoto(
	ctx context.Context,
	userID, photoID uuid.UUID,
) (*domain.Photo, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	photo, err := s.photos.GetByID(ctx, photoID)
	if err != nil {
		if errors.Is(err, store.ErrPhotoNotFound) {
			return nil, ErrPhotoNotFound
		}
		return nil, fmt.Errorf("failed to get photo: %w", err)
	}

	if photo.UserID != userID {
		log.Warn("user does not own photo",
			slog.String("user_id", userID.String()),
			slog.String("photo_id", photoID.String()),
			slog.String("owner_id", photo.UserID.String()))
		return nil, ErrPhotoNotOwned
	}

	return photo, nil
}

// ListAlbums implements Service.ListAlbums.
func (s *serviceImpl) ListAlbums(
	ctx context.Context,
	userID uuid.UUID,
) ([]*domain.Album, error) {
	albums, err := s.albums.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list albums: %w", err)
	}
	return albums, nil
}

// GetAlbum implements Service.GetAlbum.
func (s *serviceImpl) GetAlbum(
	ctx context.Context,
	userID, albumID uuid.UUID,
) (*AlbumWithPhotos, error) {
	album, err := s.ownedAlbum(ctx, userID, albumID)
	if err != nil {
		return nil, err
	}

	photos, err := s.albums.ListPhotos(ctx, albumID)
	if err != nil {
		return nil, fmt.Errorf("failed to list album photos: %w", err)
	}

	return &AlbumWithPhotos{Album: *album, Photos: photos}, nil
}

// CreateAlbum implements Service.CreateAlbum.
func (s *serviceImpl) CreateAlbum(
	ctx context.Context,
	userID uuid.UUID,
	title string,
) (*domain.Album, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	album, err := domain.NewAlbum(userID, title)
	if err != nil {
		return nil, err
	}

	if err := s.albums.Create(ctx, album); err != nil {
		return nil, fmt.Errorf("failed to create album: %w", err)
	}

	log.Info("album created",
		slog.String("album_id", album.ID.String()),
		slog.String("user_id", userID.String()))
	return album, nil
}

// UpdateAlbum implements Service.UpdateAlbum.
func (s *serviceImpl) UpdateAlbum(
	ctx context.Context,
	userID, albumID uuid.UUID,
	title string,
) (*domain.Album, error) {
	album, err := s.ownedAlbum(ctx, userID, albumID)
	if err != nil {
		return nil, err
	}

	album.Title = title
	if err := album.Validate(); err != nil {
		return nil, err
	}

	if err := s.albums.Update(ctx, album); err != nil {
		if errors.Is(err, store.ErrAlbumNotFound) {
			return nil, ErrAlbumNotFound
		}
		return nil, fmt.Errorf("failed to update album: %w", err)
	}

	return album, nil
}

// DeleteAlbum implements Service.DeleteAlbum.
func (s *serviceImpl) DeleteAlbum(ctx context.Context, userID, albumID uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if _, err := s.ownedAlbum(ctx, userID, albumID); err != nil {
		return err
	}

	if err := s.albums.Delete(ctx, albumID); err != nil {
		if errors.Is(err, store.ErrAlbumNotFound) {
			return ErrAlbumNotFound
		}
		return fmt.Errorf("failed to delete album: %w", err)
	}

	log.Info("album deleted",
		slog.String("album_id", albumID.String()),
		slog.String("user_id", userID.String()))
	return nil
}

// AttachPhoto implements Service.AttachPhoto. The album lookup runs first
// so a nonexistent album reads as not-found; after that, ownership of both
// sides is required before the association row is written.
func (s *serviceImpl) AttachPhoto(ctx context.Context, userID, albumID, photoID uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if _, err := s.ownedAlbum(ctx, userID, albumID); err != nil {
		return err
	}

	if _, err := s.ownedPhoto(ctx, userID, photoID); err != nil {
		// A photo the caller cannot attach, whether missing or foreign,
		// reads as a permission failure for this operation.
		if errors.Is(err, ErrPhotoNotFound) {
			return ErrPhotoNotOwned
		}
		return err
	}

	if err := s.albums.AttachPhoto(ctx, albumID, photoID); err != nil {
		if errors.Is(err, store.ErrPhotoAlreadyInAlbum) {
			return ErrPhotoAlreadyInAlbum
		}
		return fmt.Errorf("failed to attach photo to album: %w", err)
	}

	log.Info("photo attached to album",
		slog.String("album_id", albumID.String()),
		slog.String("photo_id", photoID.String()),
		slog.String("user_id", userID.String()))
	return nil
}

// ListPhotos implements Service.ListPhotos.
func (s *serviceImpl) ListPhotos(
	ctx context.Context,
	userID uuid.UUID,
) ([]*domain.Photo, error) {
	photos, err := s.photos.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list photos: %w", err)
	}
	return photos, nil
}

// GetPhoto implements Service.GetPhoto.
func (s *serviceImpl) GetPhoto(
	ctx context.Context,
	userID, photoID uuid.UUID,
) (*domain.Photo, error) {
	return s.ownedPhoto(ctx, userID, photoID)
}

// CreatePhoto implements Service.CreatePhoto.
func (s *serviceImpl) CreatePhoto(
	ctx context.Context,
	userID uuid.UUID,
	title, url, comment string,
) (*domain.Photo, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	photo, err := domain.NewPhoto(userID, title, url, comment)
	if err != nil {
		return nil, err
	}

	if err := s.photos.Create(ctx, photo); err != nil {
		return nil, fmt.Errorf("failed to create photo: %w", err)
	}

	log.Info("photo created",
		slog.String("photo_id", photo.ID.String()),
		slog.String("user_id", userID.String()))
	return photo, nil
}

// UpdatePhoto implements Service.UpdatePhoto.
func (s *serviceImpl) UpdatePhoto(
	ctx context.Context,
	userID, photoID uuid.UUID,
	title, url, comment string,
) (*domain.Photo, error) {
	photo, err := s.ownedPhoto(ctx, userID, photoID)
	if err != nil {
		return nil, err
	}

	photo.Title = title
	photo.URL = url
	photo.Comment = comment
	if err := photo.Validate(); err != nil {
		return nil, err
	}

	if err := s.photos.Update(ctx, photo); err != nil {
		if errors.Is(err, store.ErrPhotoNotFound) {
			return nil, ErrPhotoNotFound
		}
		return nil, fmt.Errorf("failed to update photo: %w", err)
	}

	return photo, nil
}

// DeletePhoto implements Service.DeletePhoto.
func (s *serviceImpl) DeletePhoto(ctx context.Context, userID, photoID uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if _, err := s.ownedPhoto(ctx, userID, photoID); err != nil {
		return err
	}

	if err := s.photos.Delete(ctx, photoID); err != nil {
		if errors.Is(err, store.ErrPhotoNotFound) {
			return ErrPhotoNotFound
		}
		return fmt.Errorf("failed to delete photo: %w", err)
	}

	log.Info("photo deleted",
		slog.String("photo_id", photoID.String()),
		slog.String("user_id", userID.String()))
	return nil
}
