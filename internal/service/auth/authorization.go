// Package auth holds the authorization gate, access token handling and
// password hashing.
package auth

import "github.com/phrazzld/photoalbum-api/internal/domain"

// Authorization decides whether a principal may act on a resource.
// Handlers consult it before every read or mutation.
type Authorization interface {
	IsAuthorized(principal domain.Principal, target domain.Owned) bool
}

// OwnershipAuthorization grants access to a resource's owner only.
type OwnershipAuthorization struct{}

var _ Authorization = OwnershipAuthorization{}

// NewOwnershipAuthorization returns the default authorization gate.
func NewOwnershipAuthorization() OwnershipAuthorization {
	return OwnershipAuthorization{}
}

// IsAuthorized reports whether principal owns target. The zero principal
// owns nothing.
func (OwnershipAuthorization) IsAuthorized(principal domain.Principal, target domain.Owned) bool {
	if principal.IsZero() || target == nil {
		return false
	}
	return target.Owner() == principal.ID
}

// AuthorizationFunc adapts a function to Authorization.
type AuthorizationFunc func(principal domain.Principal, target domain.Owned) bool

// IsAuthorized calls f.
func (f AuthorizationFunc) IsAuthorized(principal domain.Principal, target domain.Owned) bool {
	return f(principal, target)
}
