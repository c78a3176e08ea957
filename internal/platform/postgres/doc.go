// Package postgres provides PostgreSQL-specific implementations for the data
// storage interfaces defined in the internal/store package: albums, photos
// and users. It also embeds the schema migrations applied with goose.
package postgres
