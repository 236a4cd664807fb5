package mocks

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/snapvault/photo-api/internal/domain"
	"github.com/snapvault/photo-api/internal/store"
)

// PhotoStore is an in-memory store.PhotoStore for tests.
type PhotoStore struct {
	mu     sync.Mutex
	photos map[uuid.UUID]*domain.Photo

	// Err, when set, is returned by every method.
	Err error
}

var _ store.PhotoStore = (*PhotoStore)(nil)

// NewPhotoStore creates an empty in-memory photo store.
func NewPhotoStore() *PhotoStore {
	return &PhotoStore{photos: make(map[uuid.UUID]*domain.Photo)}
}

// Create implements store.PhotoStore.Create.
func (s *PhotoStore) Create(ctx context.Context, photo *domain.Photo) error {
	if s.Err != nil {
		return s.Err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	copied := *photo
	s.photos[photo.ID] = &copied
	return nil
}

// GetByID implements store.PhotoStore.GetByID.
func (s *PhotoStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Photo, error) {
	if s.Err != nil {
		return nil, s.Err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	photo, ok := s.photos[id]
	if !ok {
		return nil, store.ErrPhotoNotFound
	}
	copied := *photo
	return &copied, nil
}

// ListByUser implements store.PhotoStore.ListByUser.
func (s *PhotoStore) ListByUser(
	ctx context.Context,
	userID uuid.UUID,
) ([]*domain.Photo, error) {
	if s.Err != nil {
		return nil, s.Err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	photos := make([]*domain.Photo, 0)
	for _, photo := range s.photos {
		if photo.UserID == userID {
			copied := *photo
			photos = append(photos, &copied)
		}
	}
	sort.Slice(photos, func(i, j int) bool {
		return photos[i].CreatedAt.After(photos[j].CreatedAt)
	})
	return photos, nil
}

// Update implements store.PhotoStore.Update.
func (s *PhotoStore) Update(ctx context.Context, photo *domain.Photo) error {
	if s.Err != nil {
		return s.Err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.photos[photo.ID]; !ok {
		return store.ErrPhotoNotFound
	}
	copied := *photo
	s.photos[photo.ID] = &copied
	return nil
}

// Delete implements store.PhotoStore.Delete.
func (s *PhotoStore) Delete(ctx context.Context, id uuid.UUID) error {
	if s.Err != nil {
		return s.Err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.photos[id]; !ok {
		return store.ErrPhotoNotFound
	}
	delete(s.photos, id)
	return nil
}
