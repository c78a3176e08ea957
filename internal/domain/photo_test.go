package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPhoto(t *testing.T) {
	owner := uuid.New()

	photo, err := NewPhoto("A1", owner, "beach.jpg")
	require.NoError(t, err)

	assert.NotEmpty(t, photo.ID)
	assert.Equal(t, "A1", photo.AlbumID)
	assert.Equal(t, owner, photo.Owner())
	assert.Equal(t, "beach.jpg", photo.OriginalFilename)
	assert.Equal(t, BlobKeyFor("A1", photo.ID), photo.BlobKey)
	assert.NotNil(t, photo.Tags)
	assert.Empty(t, photo.Tags)
}

func TestNewPhotoValidation(t *testing.T) {
	tests := []struct {
		name     string
		albumID  string
		owner    uuid.UUID
		filename string
		want     error
	}{
		{"missing album", "", uuid.New(), "a.jpg", ErrPhotoAlbumIDEmpty},
		{"missing owner", "A1", uuid.Nil, "a.jpg", ErrPhotoOwnerIDEmpty},
		{"missing filename", "A1", uuid.New(), "", ErrPhotoFilenameEmpty},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			photo, err := NewPhoto(tc.albumID, tc.owner, tc.filename)
			assert.Nil(t, photo)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestPhotoUpdateMetadata(t *testing.T) {
	photo, err := NewPhoto("A1", uuid.New(), "sunset.jpg")
	require.NoError(t, err)
	before := photo.UpdatedAt

	time.Sleep(time.Millisecond)
	photo.UpdateMetadata("Summer trip", []string{"beach", " sunset ", "", "beach"})

	assert.Equal(t, "Summer trip", photo.Description)
	assert.Equal(t, []string{"beach", "sunset"}, photo.Tags)
	assert.True(t, photo.UpdatedAt.After(before))
}

func TestNormalizeTags(t *testing.T) {
	assert.Equal(t, []string{}, NormalizeTags(nil))
	assert.Equal(t, []string{"y", "x"}, NormalizeTags([]string{"y", "x", "y"}))
}
