package mocks

import (
	"bytes"
	"context"
	"database/sql"
	"io"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/phrazzld/photoalbum-api/internal/domain"
	"github.com/phrazzld/photoalbum-api/internal/store"
)

// MockAlbumStore implements store.AlbumStore for testing
type MockAlbumStore struct {
	CreateFn      func(ctx context.Context, album *domain.Album) error
	GetByIDFn     func(ctx context.Context, id string) (*domain.Album, error)
	ListByOwnerFn func(ctx context.Context, ownerID uuid.UUID) ([]*domain.Album, error)
	DeleteFn      func(ctx context.Context, id string) error

	mu          sync.Mutex
	Albums      map[string]*domain.Album
	CreateCalls int
	DeleteCalls int
}

var _ store.AlbumStore = (*MockAlbumStore)(nil)

// NewMockAlbumStore creates an empty in-memory album store.
func NewMockAlbumStore(albums ...*domain.Album) *MockAlbumStore {
	m := &MockAlbumStore{Albums: make(map[string]*domain.Album)}
	for _, a := range albums {
		m.Albums[a.ID] = a
	}
	return m
}

// Create implements store.AlbumStore.
func (m *MockAlbumStore) Create(ctx context.Context, album *domain.Album) error {
	m.mu.Lock()
	m.CreateCalls++
	m.mu.Unlock()
	if m.CreateFn != nil {
		return m.CreateFn(ctx, album)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Albums[album.ID] = album
	return nil
}

// GetByID implements store.AlbumStore.
func (m *MockAlbumStore) GetByID(ctx context.Context, id string) (*domain.Album, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	album, ok := m.Albums[id]
	if !ok {
		return nil, store.ErrAlbumNotFound
	}
	return album, nil
}

// ListByOwner implements store.AlbumStore. Albums are ordered by creation time.
func (m *MockAlbumStore) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Album, error) {
	if m.ListByOwnerFn != nil {
		return m.ListByOwnerFn(ctx, ownerID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	albums := []*domain.Album{}
	for _, a := range m.Albums {
		if a.OwnerID == ownerID {
			albums = append(albums, a)
		}
	}
	sort.Slice(albums, func(i, j int) bool { return albums[i].CreatedAt.Before(albums[j].CreatedAt) })
	return albums, nil
}

// Delete implements store.AlbumStore.
func (m *MockAlbumStore) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	m.DeleteCalls++
	m.mu.Unlock()
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.Albums[id]; !ok {
		return store.ErrAlbumNotFound
	}
	delete(m.Albums, id)
	return nil
}

// WithTx implements store.AlbumStore. The mock ignores the transaction.
func (m *MockAlbumStore) WithTx(_ *sql.Tx) store.AlbumStore {
	return m
}

// MockPhotoStore implements store.PhotoStore for testing
type MockPhotoStore struct {
	CreateFn         func(ctx context.Context, photo *domain.Photo) error
	GetByIDFn        func(ctx context.Context, id string) (*domain.Photo, error)
	ListByAlbumFn    func(ctx context.Context, albumID string) ([]*domain.Photo, error)
	UpdateMetadataFn func(ctx context.Context, photo *domain.Photo) error
	DeleteFn         func(ctx context.Context, id string) error

	mu                  sync.Mutex
	Photos              map[string]*domain.Photo
	CreateCalls         int
	UpdateMetadataCalls int
	DeleteCalls         int
}

var _ store.PhotoStore = (*MockPhotoStore)(nil)

// NewMockPhotoStore creates an in-memory photo store holding photos.
func NewMockPhotoStore(photos ...*domain.Photo) *MockPhotoStore {
	m := &MockPhotoStore{Photos: make(map[string]*domain.Photo)}
	for _, p := range photos {
		m.Photos[p.ID] = p
	}
	return m
}

// Create implements store.PhotoStore.
func (m *MockPhotoStore) Create(ctx context.Context, photo *domain.Photo) error {
	m.mu.Lock()
	m.CreateCalls++
	m.mu.Unlock()
	if m.CreateFn != nil {
		return m.CreateFn(ctx, photo)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Photos[photo.ID] = photo
	return nil
}

// GetByID implements store.PhotoStore. A copy is returned, like a database read.
func (m *MockPhotoStore) GetByID(ctx context.Context, id string) (*domain.Photo, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	photo, ok := m.Photos[id]
	if !ok {
		return nil, store.ErrPhotoNotFound
	}
	return clonePhoto(photo), nil
}

// ListByAlbum implements store.PhotoStore. Photos are ordered by creation time.
func (m *MockPhotoStore) ListByAlbum(ctx context.Context, albumID string) ([]*domain.Photo, error) {
	if m.ListByAlbumFn != nil {
		return m.ListByAlbumFn(ctx, albumID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	photos := []*domain.Photo{}
	for _, p := range m.Photos {
		if p.AlbumID == albumID {
			photos = append(photos, clonePhoto(p))
		}
	}
	sort.Slice(photos, func(i, j int) bool { return photos[i].CreatedAt.Before(photos[j].CreatedAt) })
	return photos, nil
}

// UpdateMetadata implements store.PhotoStore.
func (m *MockPhotoStore) UpdateMetadata(ctx context.Context, photo *domain.Photo) error {
	m.mu.Lock()
	m.UpdateMetadataCalls++
	m.mu.Unlock()
	if m.UpdateMetadataFn != nil {
		return m.UpdateMetadataFn(ctx, photo)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.Photos[photo.ID]; !ok {
		return store.ErrPhotoNotFound
	}
	m.Photos[photo.ID] = clonePhoto(photo)
	return nil
}

// Delete implements store.PhotoStore.
func (m *MockPhotoStore) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	m.DeleteCalls++
	m.mu.Unlock()
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.Photos[id]; !ok {
		return store.ErrPhotoNotFound
	}
	delete(m.Photos, id)
	return nil
}

// WithTx implements store.PhotoStore. The mock ignores the transaction.
func (m *MockPhotoStore) WithTx(_ *sql.Tx) store.PhotoStore {
	return m
}

func clonePhoto(p *domain.Photo) *domain.Photo {
	c := *p
	c.Tags = append([]string{}, p.Tags...)
	return &c
}

// MockUserStore implements store.UserStore for testing
type MockUserStore struct {
	CreateFn     func(ctx context.Context, user *domain.User) error
	GetByIDFn    func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmailFn func(ctx context.Context, email string) (*domain.User, error)

	mu    sync.Mutex
	Users map[string]*domain.User // keyed by email
}

var _ store.UserStore = (*MockUserStore)(nil)

// NewMockUserStore creates a new mock store with initialized defaults
func NewMockUserStore() *MockUserStore {
	return &MockUserStore{Users: make(map[string]*domain.User)}
}

// Create implements store.UserStore.
func (m *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, user)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.Users[user.Email]; exists {
		return store.ErrEmailExists
	}
	m.Users[user.Email] = user
	return nil
}

// GetByID implements store.UserStore.
func (m *MockUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.Users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, store.ErrUserNotFound
}

// GetByEmail implements store.UserStore.
func (m *MockUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	user, ok := m.Users[email]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	return user, nil
}

// MockBlobStore implements store.BlobStore in memory.
type MockBlobStore struct {
	PutFn    func(ctx context.Context, key, contentType string, body io.Reader, size int64) error
	GetFn    func(ctx context.Context, key string) (*store.Blob, error)
	DeleteFn func(ctx context.Context, key string) error

	mu          sync.Mutex
	Objects     map[string][]byte
	DeletedKeys []string
}

var _ store.BlobStore = (*MockBlobStore)(nil)

// NewMockBlobStore creates an empty in-memory blob store.
func NewMockBlobStore() *MockBlobStore {
	return &MockBlobStore{Objects: make(map[string][]byte)}
}

// Put implements store.BlobStore.
func (m *MockBlobStore) Put(ctx context.Context, key, contentType string, body io.Reader, size int64) error {
	if m.PutFn != nil {
		return m.PutFn(ctx, key, contentType, body, size)
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Objects[key] = data
	return nil
}

// Get implements store.BlobStore.
func (m *MockBlobStore) Get(ctx context.Context, key string) (*store.Blob, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, key)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.Objects[key]
	if !ok {
		return nil, store.ErrBlobNotFound
	}
	return &store.Blob{
		Body:          io.NopCloser(bytes.NewReader(data)),
		ContentType:   "image/jpeg",
		ContentLength: int64(len(data)),
	}, nil
}

// Delete implements store.BlobStore.
func (m *MockBlobStore) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	m.DeletedKeys = append(m.DeletedKeys, key)
	m.mu.Unlock()
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, key)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.Objects, key)
	return nil
}

// Deleted returns a copy of DeletedKeys, safe to call while deletions run.
func (m *MockBlobStore) Deleted() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.DeletedKeys...)
}
