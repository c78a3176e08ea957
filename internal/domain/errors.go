package domain

import (
	"errors"
	"fmt"
)

// Error kinds. Every *Error wraps exactly one of these so callers can classify
// failures with errors.Is without inspecting codes or messages.
var (
	// ErrNotFound is returned when a referenced album or photo does not exist.
	ErrNotFound = errors.New("not found")

	// ErrUnauthorized is returned when the principal may not act on the target.
	ErrUnauthorized = errors.New("unauthorized operation")

	// ErrUnauthenticated is returned when no valid principal accompanies a request.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrConflict is returned when an entity would collide with an existing one.
	ErrConflict = errors.New("conflict")

	// ErrValidation is returned when input fails validation.
	ErrValidation = errors.New("validation failed")

	// ErrUnsupportedMedia is returned when uploaded content is not a supported image.
	ErrUnsupportedMedia = errors.New("unsupported media type")
)

// ErrorCode is the stable, machine-readable identifier of a failure kind.
// Clients switch on codes; messages are diagnostic only.
type ErrorCode string

// Known error codes.
const (
	CodeAlbumDoesNotExist      ErrorCode = "A001"
	CodePhotoDoesNotExist      ErrorCode = "P001"
	CodeUserIsNotAuthorized    ErrorCode = "S001"
	CodeUserNotAuthenticated   ErrorCode = "S002"
	CodeEmailAlreadyRegistered ErrorCode = "U001"
	CodeValidationFailed       ErrorCode = "V001"
	CodeUnsupportedMediaType   ErrorCode = "V002"
	CodeInternal               ErrorCode = "I001"
)

// Error is a domain failure carrying a stable code and a formatted message.
type Error struct {
	code    ErrorCode
	message string
	kind    error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.message
}

// Code returns the stable error code.
func (e *Error) Code() ErrorCode {
	return e.code
}

// Unwrap exposes the error kind to errors.Is.
func (e *Error) Unwrap() error {
	return e.kind
}

func newError(kind error, code ErrorCode, format string, args ...any) *Error {
	return &Error{
		code:    code,
		message: fmt.Sprintf(format, args...),
		kind:    kind,
	}
}

// NewAlbumDoesNotExistError reports a missing album.
func NewAlbumDoesNotExistError(albumID string) *Error {
	return newError(ErrNotFound, CodeAlbumDoesNotExist,
		"An album for the given album ID %s does not exist.", albumID)
}

// NewPhotoDoesNotExistError reports a missing photo.
func NewPhotoDoesNotExistError(photoID string) *Error {
	return newError(ErrNotFound, CodePhotoDoesNotExist,
		"A photo for the given photo ID %s does not exist.", photoID)
}

// NewUserIsNotAuthorizedError reports a failed authorization check. Only the
// principal's identity is recorded; nothing about the target leaks.
func NewUserIsNotAuthorizedError(principal Principal) *Error {
	return newError(ErrUnauthorized, CodeUserIsNotAuthorized,
		"User %s is not authorized to perform this operation.", principal.Name())
}

// NewUserNotAuthenticatedError reports missing or invalid credentials.
func NewUserNotAuthenticatedError() *Error {
	return newError(ErrUnauthenticated, CodeUserNotAuthenticated,
		"The request could not be authenticated.")
}

// NewEmailAlreadyRegisteredError reports a duplicate registration.
func NewEmailAlreadyRegisteredError() *Error {
	return newError(ErrConflict, CodeEmailAlreadyRegistered,
		"A user with the given email address is already registered.")
}

// NewValidationError reports invalid input for a single field.
func NewValidationError(field, reason string) *Error {
	return newError(ErrValidation, CodeValidationFailed,
		"Invalid %s: %s.", field, reason)
}

// NewUnsupportedMediaTypeError reports an upload that is not a JPEG image.
func NewUnsupportedMediaTypeError(format string) *Error {
	return newError(ErrUnsupportedMedia, CodeUnsupportedMediaType,
		"Unsupported image format %q, only JPEG images are accepted.", format)
}

// CodeOf returns the code of the first *Error in err's chain, or CodeInternal.
func CodeOf(err error) ErrorCode {
	var domainErr *Error
	if errors.As(err, &domainErr) {
		return domainErr.Code()
	}
	return CodeInternal
}
