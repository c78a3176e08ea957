// Package domain contains the core entities of the photo album service
// (albums, photos, users and the requesting principal) together with the
// error taxonomy shared by every layer. It has no dependencies on storage
// or transport.
package domain
