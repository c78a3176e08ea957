// Package service contains the application use cases of the photo album API.
// It orchestrates the domain objects and the stores defined in internal/store
// to serve the resource handlers.
//
// Services never check authorization; the handlers do that before calling any
// operation that reads content or mutates state. Services translate store
// failures into domain errors so that callers only have to deal with
// *domain.Error values and unclassified internal failures:
//
//   - store.ErrAlbumNotFound becomes A001 (domain.NewAlbumDoesNotExistError)
//   - store.ErrPhotoNotFound becomes P001 (domain.NewPhotoDoesNotExistError)
//   - store.ErrEmailExists becomes U001 (domain.NewEmailAlreadyRegisteredError)
//   - domain validation failures become V001
//
// Any other error is wrapped with context and left for the API layer to report
// as an internal error.
package service
