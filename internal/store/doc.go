// Package store defines interfaces for data persistence operations.
// These interfaces abstract the underlying data storage mechanism from
// the application's core logic: albums, photos and users live in a
// relational database, original images in a blob store.
package store
