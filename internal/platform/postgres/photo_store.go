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

// PostgresPhotoStore implements the store.PhotoStore interface using a
// PostgreSQL database as the storage backend.
type PostgresPhotoStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresPhotoStore creates a new PostgreSQL implementation of the
// PhotoStore interface.
func NewPostgresPhotoStore(db store.DBTX, logger *slog.Logger) *PostgresPhotoStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresPhotoStore{
		db:     db,
		logger: logger.With(slog.String("component", "photo_store")),
	}
}

// Ensure PostgresPhotoStore implements store.PhotoStore interface
var _ store.PhotoStore = (*PostgresPhotoStore)(nil)

// Create implements store.PhotoStore.Create.
// Returns store.ErrInvalidEntity if the owning user does not exist.
func (s *PostgresPhotoStore) Create(ctx context.Context, photo *domain.Photo) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := photo.Validate(); err != nil {
		return err
	}

	query := `
		INSERT INTO photos (id, user_id, title, url, comment, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, $7)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		photo.ID,
		photo.UserID,
		photo.Title,
		photo.URL,
		photo.Comment,
		photo.CreatedAt,
		photo.UpdatedAt,
	)

	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: user with ID %s not found",
				store.ErrInvalidEntity, photo.UserID)
		}

		log.Error("failed to create photo",
			slog.String("error", err.Error()),
			slog.String("photo_id", photo.ID.String()),
			slog.String("user_id", photo.UserID.String()))
		return err
	}

	return nil
}

// GetByID implements store.PhotoStore.GetByID.
func (s *PostgresPhotoStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Photo, error) {
	query := `
		SELECT id, user_id, title, url, COALESCE(comment, ''), created_at, updated_at
		FROM photos
		WHERE id = $1
	`

	var photo domain.Photo
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&photo.ID,
		&photo.UserID,
		&photo.Title,
		&photo.URL,
		&photo.Comment,
		&photo.CreatedAt,
		&photo.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrPhotoNotFound
		}
		return nil, fmt.Errorf("failed to scan photo row: %w", err)
	}

	return &photo, nil
}

// ListByUser implements store.PhotoStore.ListByUser.
func (s *PostgresPhotoStore) ListByUser(
	ctx context.Context,
	userID uuid.UUID,
) ([]*domain.Photo, error) {
	query := `
		SELECT id, user_id, title, url, COALESCE(comment, ''), created_at, updated_at
		FROM photos
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query photos: %w", err)
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

// Update implements store.PhotoStore.Update.
func (s *PostgresPhotoStore) Update(ctx context.Context, photo *domain.Photo) error {
	if err := photo.Validate(); err != nil {
		return err
	}

	query := `
		UPDATE photos
		SET title = $2, url = $3, comment = NULLIF($4, ''), updated_at = NOW()
		WHERE id = $1
	`
	result, err := s.db.ExecContext(ctx, query, photo.ID, photo.Title, photo.URL, photo.Comment)
	if err != nil {
		return fmt.Errorf("failed to update photo: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return store.ErrPhotoNotFound
	}

	return nil
}

// Delete implements store.PhotoStore.Delete. Association rows are removed
// by the ON DELETE CASCADE on album_photos.
func (s *PostgresPhotoStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM photos WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete photo",
			slog.String("error", err.Error()),
			slog.String("photo_id", id.String()))
		return fmt.Errorf("failed to delete photo: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return store.ErrPhotoNotFound
	}

	return nil
}
