package mocks

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/snapvault/photo-api/internal/domain"
	"github.com/snapvault/photo-api/internal/store"
)

type albumPhotoKey struct {
	albumID uuid.UUID
	photoID uuid.UUID
}

// AlbumStore is an in-memory store.AlbumStore for tests. It shares a
// PhotoStore so attached photos can be resolved by ListPhotos.
type AlbumStore struct {
	mu          sync.Mutex
	albums      map[uuid.UUID]*domain.Album
	attachments map[albumPhotoKey]struct{}
	photoStore  *PhotoStore

	// Err, when set, is returned by every method.
	Err error
}

var _ store.AlbumStore = (*AlbumStore)(nil)

// NewAlbumStore creates an empty in-memory album store backed by the
// given photo store for association lookups.
func NewAlbumStore(photos *PhotoStore) *AlbumStore {
	return &AlbumStore{
		albums:      make(map[uuid.UUID]*domain.Album),
		attachments: make(map[albumPhotoKey]struct{}),
		photoStore:  photos,
	}
}

// Create implements store.AlbumStore.Create.
func (s *AlbumStore) Create(ctx context.Context, album *domain.Album) error {
	if s.Err != nil {
		return s.Err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	copied := *album
	s.albums[album.ID] = &copied
	return nil
}

// GetByID implements store.AlbumStore.GetByID.
func (s *AlbumStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Album, error) {
	if s.Err != nil {
		return nil, s.Err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	album, ok := s.albums[id]
	if !ok {
		return nil, store.ErrAlbumNotFound
	}
	copied := *album
	return &copied, nil
}

// ListByUser implements store.AlbumStore.ListByUser.
func (s *AlbumStore) ListByUser(
	ctx context.Context,
	userID uuid.UUID,
) ([]*domain.Album, error) {
	if s.Err != nil {
		return nil, s.Err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	albums := make([]*domain.Album, 0)
	for _, album := range s.albums {
		if album.UserID == userID {
			copied := *album
			albums = append(albums, &copied)
		}
	}
	sort.Slice(albums, func(i, j int) bool {
		return albums[i].CreatedAt.After(albums[j].CreatedAt)
	})
	return albums, nil
}

// Update implements store.AlbumStore.Update.
func (s *AlbumStore) Update(ctx context.Context, album *domain.Album) error {
	if s.Err != nil {
		return s.Err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.albums[album.ID]; !ok {
		return store.ErrAlbumNotFound
	}
	copied := *album
	s.albums[album.ID] = &copied
	return nil
}

// Delete implements store.AlbumStore.Delete.
func (s *AlbumStore) Delete(ctx context.Context, id uuid.UUID) error {
	if s.Err != nil {
		return s.Err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.albums[id]; !ok {
		return store.ErrAlbumNotFound
	}
	delete(s.albums, id)
	for key := range s.attachments {
		if key.albumID == id {
			delete(s.attachments, key)
		}
	}
	return nil
}

// AttachPhoto implements store.AlbumStore.AttachPhoto.
func (s *AlbumStore) AttachPhoto(ctx context.Context, albumID, photoID uuid.UUID) error {
	if s.Err != nil {
		return s.Err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := albumPhotoKey{albumID: albumID, photoID: photoID}
	if _, ok := s.attachments[key]; ok {
		return store.ErrPhotoAlreadyInAlbum
	}
	s.attachments[key] = struct{}{}
	return nil
}

// ListPhotos implements store.AlbumStore.ListPhotos.
func (s *AlbumStore) ListPhotos(
	ctx context.Context,
	albumID uuid.UUID,
) ([]*domain.Photo, error) {
	if s.Err != nil {
		return nil, s.Err
	}

	s.mu.Lock()
	ids := make([]uuid.UUID, 0)
	for key := range s.attachments {
		if key.albumID == albumID {
			ids = append(ids, key.photoID)
		}
	}
	s.mu.Unlock()

	photos := make([]*domain.Photo, 0, len(ids))
	for _, id := range ids {
		photo, err := s.photoStore.GetByID(ctx, id)
		if err != nil {
			continue
		}
		photos = append(photos, photo)
	}
	sort.Slice(photos, func(i, j int) bool {
		return photos[i].CreatedAt.After(photos[j].CreatedAt)
	})
	return photos, nil
}

// AttachmentCount returns the number of association rows.
func (s *AlbumStore) AttachmentCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.attachments)
}
