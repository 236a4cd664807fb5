package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/snapvault/photo-api/internal/domain"
	"github.com/snapvault/photo-api/internal/platform/logger"
	"github.com/snapvault/photo-api/internal/store"
)

// PostgresAlbumStore implements the store.AlbumStore interface using a
// PostgreSQL database as the storage backend.
type PostgresAlbumStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresAlbumStore creates a new PostgreSQL implementation of the
// AlbumStore interface.
func NewPostgresAlbumStore(db store.DBTX, logger *slog.Logger) *PostgresAlbumStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresAlbumStore{
		db:     db,
		logger: logger.With(slog.String("component", "album_store")),
	}
}

// Ensure PostgresAlbumStore implements store.AlbumStore interface
var _ store.AlbumStore = (*PostgresAlbumStore)(nil)

// Create implements store.AlbumStore.Create.
// Returns store.ErrInvalidEntity if the owning user does not exist.
func (s *PostgresAlbumStore) Create(ctx context.Context, album *domain.Album) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := album.Validate(); err != nil {
		return err
	}

	query := `
		INSERT INTO albums (id, user_id, title, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		album.ID,
		album.UserID,
		album.Title,
		album.CreatedAt,
		album.UpdatedAt,
	)

	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: user with ID %s not found",
				store.ErrInvalidEntity, album.UserID)
		}

		log.Error("failed to create album",
			slog.String("error", err.Error()),
			slog.String("album_id", album.ID.String()),
			slog.String("user_id", album.UserID.String()))
		return err
	}

	return nil
}

// GetByID implements store.AlbumStore.GetByID.
func (s *PostgresAlbumStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Album, error) {
	query := `
		SELECT id, user_id, title, created_at, updated_at
		FROM albums
		WHERE id = $1
	`

	var album domain.Album
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&album.ID,
		&album.UserID,
		&album.Title,
		&album.CreatedAt,
		&album.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrAlbumNotFound
		}
		return nil, fmt.Errorf("failed to scan album row: %w", err)
	}

	return &album, nil
}

// ListByUser implements store.AlbumStore.ListByUser.
func (s *PostgresAlbumStore) ListByUser(
	ctx context.Context,
	userID uuid.UUID,
) ([]*domain.Album, error) {
	query := `
		SELECT id, user_id, title, created_at, updated_at
		FROM albums
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query albums: %w", err)
	}
	defer func() { _ = rows.Close() }()

	albums := make([]*domain.Album, 0)
	for rows.Next() {
		var album domain.Album
		if err := rows.Scan(
			&album.ID,
			&album.UserID,
			&album.Title,
			&album.CreatedAt,
			&album.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan album row: %w", err)
		}
		albums = append(albums, &album)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate album rows: %w", err)
	}

	return albums, nil
}

// Update implements store.AlbumStore.Update.
func (s *PostgresAlbumStore) Update(ctx context.Context, album *domain.Album) error {
	if err := album.Validate(); err != nil {
		return err
	}

	query := `
		UPDATE albums
		SET title = $2, updated_at = NOW()
		WHERE id = $1
	`
	result, err := s.db.ExecContext(ctx, query, album.ID, album.Title)
	if err != nil {
		return fmt.Errorf("failed to update album: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return store.ErrAlbumNotFound
	}

	return nil
}

// Delete implements store.AlbumStore.Delete. Association rows are removed
// by the ON DELETE CASCADE on album_photos; the photos remain.
func (s *PostgresAlbumStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM albums WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete album",
			slog.String("error", err.Error()),
			slog.String("album_id", id.String()))
		return fmt.Errorf("failed to delete album: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return store.ErrAlbumNotFound
	}

	return nil
}

// AttachPhoto implements store.AlbumStore.AttachPhoto.
// The album_photos primary key makes double-attach impossible even under
// concurrent identical requests; the violation maps to
// store.ErrPhotoAlreadyInAlbum.
func (s *PostgresAlbumStore) AttachPhoto(ctx context.Context, albumID, photoID uuid.UUID) error {
	query := `
		INSERT INTO album_photos (album_id, photo_id)
		VALUES ($1, $2)
	`
	_, err := s.db.ExecContext(ctx, query, albumID, photoID)
	if err != nil {
		if isUniqueViolation(err, "") {
			return store.ErrPhotoAlreadyInAlbum
		}
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: album or photo does not exist", store.ErrInvalidEntity)
		}
		return fmt.Errorf("failed to attach photo to album: %w", err)
	}

	return nil
}

// ListPhotos implements store.AlbumStore.ListPhotos.
func (s *PostgresAlbumStore) ListPhotos(
	ctx context.Context,
	albumID uuid.UUID,
) ([]*domain.Photo, error) {
	query := `
		SELECT p.id, p.user_id, p.title, p.url, COALESCE(p.comment, ''), p.created_at, p.updated_at
		FROM photos p
		JOIN album_photos ap ON ap.photo_id = p.id
		WHERE ap.album_id = $1
		ORDER BY p.created_at DESC
	`

	rows, err := s.db.QueryContext(ctx, query, albumID)
	if err != nil {
		return nil, fmt.Errorf("failed to query album photos: %w", err)
	}
	defer func() { _ = rows.Close() }()

	photos := make([]*domain.Photo, 0)
	for rows.Next() {
		var photo domain.Photo
		if err := rows.Scan(
			&photo.ID,
			&photo.UserID,
			&photo.Title,
			&photo.URL,
			&photo.Comment,
			&photo.CreatedAt,
			&photo.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan photo row: %w", err)
		}
		photos = append(photos, &photo)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate photo rows: %w", err)
	}

	return photos, nil
}
