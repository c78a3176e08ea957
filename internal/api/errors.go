package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/phrazzld/photoalbum-api/internal/api/shared"
	"github.com/phrazzld/photoalbum-api/internal/domain"
	"github.com/phrazzld/photoalbum-api/internal/service/auth"
)

// genericErrorMessage is sent for every failure that is not a domain error.
const genericErrorMessage = "An unexpected error occurred"

// HandlerFunc is an HTTP handler that reports failures by returning them.
type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

// Handle adapts fn to http.HandlerFunc. A returned error is written with
// HandleAPIError; fn must not have written a response in that case.
func Handle(fn HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := fn(w, r); err != nil {
			HandleAPIError(w, r, err)
		}
	}
}

// HandleAPIError writes err as a JSON error response. The status and code are
// derived from the error kind; the full error is logged redacted.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error) {
	shared.RespondWithErrorAndLog(w, r,
		MapErrorToStatusCode(err),
		string(domain.CodeOf(err)),
		GetSafeErrorMessage(err),
		err)
}

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error kind.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound

	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusForbidden

	case errors.Is(err, domain.ErrUnauthenticated),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrWrongTokenType),
		errors.Is(err, auth.ErrMissingToken):
		return http.StatusUnauthorized

	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict

	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest

	case errors.Is(err, domain.ErrUnsupportedMedia):
		return http.StatusUnsupportedMediaType

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns the message sent to clients. Domain errors are
// written for clients; anything else may carry internal details and is
// replaced by a generic message.
func GetSafeErrorMessage(err error) string {
	var domainErr *domain.Error
	if errors.As(err, &domainErr) {
		return domainErr.Error()
	}
	return genericErrorMessage
}

// validationFailure converts a request decoding or validator error into a
// V001 error naming the first offending field.
func validationFailure(err error) error {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return domain.NewValidationError(jsonFieldName(fe), validationTagMessage(fe))
	}
	return domain.NewValidationError("request body", "malformed JSON")
}

// jsonFieldName lowercases the first letter of the struct field name, which
// matches the JSON names of the request models.
func jsonFieldName(fe validator.FieldError) string {
	name := fe.Field()
	if name == "" {
		return "field"
	}
	return strings.ToLower(name[:1]) + name[1:]
}

// validationTagMessage maps validation tags to client-facing reasons.
func validationTagMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "required field"
	case "email":
		return "invalid email format"
	case "min":
		return fmt.Sprintf("must be at least %s long", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s long", fe.Param())
	default:
		return "validation failed"
	}
}
