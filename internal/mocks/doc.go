// Package mocks provides shared test doubles for the store, service and auth
// interfaces.
//
// Every mock has one function field per interface method. When the field is
// nil the mock falls back to a simple default; the store mocks keep entities
// in memory so that scenario tests can chain operations:
//
//	photos := mocks.NewMockPhotoStore()
//	photos.GetByIDFn = func(ctx context.Context, id string) (*domain.Photo, error) {
//	    return nil, store.ErrPhotoNotFound
//	}
//
// Mocks record how often mutating methods were called so tests can assert
// that an operation was never attempted.
package mocks
