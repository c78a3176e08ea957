package service

import (
	"errors"
	"fmt"

	"github.com/phrazzld/photoalbum-api/internal/domain"
	"github.com/phrazzld/photoalbum-api/internal/store"
)

// albumError translates a store failure while looking up albumID.
func albumError(albumID string, err error, action string) error {
	if store.IsNotFoundError(err) {
		return domain.NewAlbumDoesNotExistError(albumID)
	}
	return fmt.Errorf("failed to %s: %w", action, err)
}

// photoError translates a store failure while looking up photoID.
func photoError(photoID string, err error, action string) error {
	if store.IsNotFoundError(err) {
		return domain.NewPhotoDoesNotExistError(photoID)
	}
	return fmt.Errorf("failed to %s: %w", action, err)
}

// validationFields names the request field each domain validation error is about.
var validationFields = []struct {
	err   error
	field string
}{
	{domain.ErrEmptyEmail, "email"},
	{domain.ErrInvalidEmail, "email"},
	{domain.ErrEmptyPassword, "password"},
	{domain.ErrPasswordTooShort, "password"},
	{domain.ErrPasswordTooLong, "password"},
	{domain.ErrAlbumNameEmpty, "name"},
	{domain.ErrAlbumNameTooLong, "name"},
	{domain.ErrPhotoFilenameEmpty, "filename"},
}

// validationError converts a domain validation failure into a V001 error.
// Errors that are not input validation failures are returned wrapped.
func validationError(err error, action string) error {
	for _, vf := range validationFields {
		if errors.Is(err, vf.err) {
			return domain.NewValidationError(vf.field, err.Error())
		}
	}
	return fmt.Errorf("failed to %s: %w", action, err)
}
