package mocks

import (
	"context"

	"github.com/google/uuid"

	"github.com/phrazzld/photoalbum-api/internal/domain"
	"github.com/phrazzld/photoalbum-api/internal/service"
)

// MockPhotoService implements service.PhotoQueryService and
// service.PhotoCommandService. Unset functions return a zero value and nil.
type MockPhotoService struct {
	PhotoByIDFn      func(ctx context.Context, photoID string) (*domain.Photo, error)
	OriginalByIDFn   func(ctx context.Context, photoID string) (*service.Image, error)
	ThumbnailByIDFn  func(ctx context.Context, photoID string) (*service.Image, error)
	UpdateMetadataFn func(ctx context.Context, photoID, description string, tags []string) (*domain.Photo, error)
	DeletePhotoFn    func(ctx context.Context, photoID string) error
	UploadPhotoFn    func(
		ctx context.Context, principal domain.Principal, albumID, filename string, content []byte,
	) (*domain.Photo, error)

	// ReadCalls counts calls to OriginalByID and ThumbnailByID.
	ReadCalls int
	// MutationCalls counts calls to UpdateMetadata, DeletePhoto and UploadPhoto.
	MutationCalls int
}

var (
	_ service.PhotoQueryService   = (*MockPhotoService)(nil)
	_ service.PhotoCommandService = (*MockPhotoService)(nil)
)

// PhotoByID implements service.PhotoQueryService.
func (m *MockPhotoService) PhotoByID(ctx context.Context, photoID string) (*domain.Photo, error) {
	if m.PhotoByIDFn != nil {
		return m.PhotoByIDFn(ctx, photoID)
	}
	return nil, domain.NewPhotoDoesNotExistError(photoID)
}

// OriginalByID implements service.PhotoQueryService.
func (m *MockPhotoService) OriginalByID(ctx context.Context, photoID string) (*service.Image, error) {
	m.ReadCalls++
	if m.OriginalByIDFn != nil {
		return m.OriginalByIDFn(ctx, photoID)
	}
	return nil, domain.NewPhotoDoesNotExistError(photoID)
}

// ThumbnailByID implements service.PhotoQueryService.
func (m *MockPhotoService) ThumbnailByID(ctx context.Context, photoID string) (*service.Image, error) {
	m.ReadCalls++
	if m.ThumbnailByIDFn != nil {
		return m.ThumbnailByIDFn(ctx, photoID)
	}
	return nil, domain.NewPhotoDoesNotExistError(photoID)
}

// UpdateMetadata implements service.PhotoCommandService.
func (m *MockPhotoService) UpdateMetadata(
	ctx context.Context, photoID, description string, tags []string,
) (*domain.Photo, error) {
	m.MutationCalls++
	if m.UpdateMetadataFn != nil {
		return m.UpdateMetadataFn(ctx, photoID, description, tags)
	}
	return nil, nil
}

// DeletePhoto implements service.PhotoCommandService.
func (m *MockPhotoService) DeletePhoto(ctx context.Context, photoID string) error {
	m.MutationCalls++
	if m.DeletePhotoFn != nil {
		return m.DeletePhotoFn(ctx, photoID)
	}
	return nil
}

// UploadPhoto implements service.PhotoCommandService.
func (m *MockPhotoService) UploadPhoto(
	ctx context.Context, principal domain.Principal, albumID, filename string, content []byte,
) (*domain.Photo, error) {
	m.MutationCalls++
	if m.UploadPhotoFn != nil {
		return m.UploadPhotoFn(ctx, principal, albumID, filename, content)
	}
	return nil, nil
}

// MockAlbumService implements service.AlbumQueryService and
// service.AlbumCommandService.
type MockAlbumService struct {
	AlbumByIDFn     func(ctx context.Context, albumID string) (*domain.Album, error)
	AlbumsByOwnerFn func(ctx context.Context, ownerID uuid.UUID) ([]*domain.Album, error)
	PhotosOfFn      func(ctx context.Context, album *domain.Album) ([]*domain.Photo, error)
	CreateAlbumFn   func(ctx context.Context, ownerID uuid.UUID, name string) (*domain.Album, error)
	DeleteAlbumFn   func(ctx context.Context, albumID string) error

	// MutationCalls counts calls to CreateAlbum and DeleteAlbum.
	MutationCalls int
}

var (
	_ service.AlbumQueryService   = (*MockAlbumService)(nil)
	_ service.AlbumCommandService = (*MockAlbumService)(nil)
)

// AlbumByID implements service.AlbumQueryService.
func (m *MockAlbumService) AlbumByID(ctx context.Context, albumID string) (*domain.Album, error) {
	if m.AlbumByIDFn != nil {
		return m.AlbumByIDFn(ctx, albumID)
	}
	return nil, domain.NewAlbumDoesNotExistError(albumID)
}

// AlbumsByOwner implements service.AlbumQueryService.
func (m *MockAlbumService) AlbumsByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Album, error) {
	if m.AlbumsByOwnerFn != nil {
		return m.AlbumsByOwnerFn(ctx, ownerID)
	}
	return []*domain.Album{}, nil
}

// PhotosOf implements service.AlbumQueryService.
func (m *MockAlbumService) PhotosOf(ctx context.Context, album *domain.Album) ([]*domain.Photo, error) {
	if m.PhotosOfFn != nil {
		return m.PhotosOfFn(ctx, album)
	}
	return []*domain.Photo{}, nil
}

// CreateAlbum implements service.AlbumCommandService.
func (m *MockAlbumService) CreateAlbum(ctx context.Context, ownerID uuid.UUID, name string) (*domain.Album, error) {
	m.MutationCalls++
	if m.CreateAlbumFn != nil {
		return m.CreateAlbumFn(ctx, ownerID, name)
	}
	return domain.NewAlbum(ownerID, name)
}

// DeleteAlbum implements service.AlbumCommandService.
func (m *MockAlbumService) DeleteAlbum(ctx context.Context, albumID string) error {
	m.MutationCalls++
	if m.DeleteAlbumFn != nil {
		return m.DeleteAlbumFn(ctx, albumID)
	}
	return nil
}

// MockUserService implements service.UserService.
type MockUserService struct {
	RegisterFn     func(ctx context.Context, email, password string) (*domain.User, error)
	AuthenticateFn func(ctx context.Context, email, password string) (*domain.User, error)
}

var _ service.UserService = (*MockUserService)(nil)

// Register implements service.UserService.
func (m *MockUserService) Register(ctx context.Context, email, password string) (*domain.User, error) {
	if m.RegisterFn != nil {
		return m.RegisterFn(ctx, email, password)
	}
	return domain.NewUser(email, password)
}

// Authenticate implements service.UserService.
func (m *MockUserService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	if m.AuthenticateFn != nil {
		return m.AuthenticateFn(ctx, email, password)
	}
	return nil, domain.NewUserNotAuthenticatedError()
}
