package domain

import "github.com/google/uuid"

// Principal is the authenticated caller of a request.
type Principal struct {
	ID uuid.UUID
}

// NewPrincipal creates a principal for the given user ID.
func NewPrincipal(id uuid.UUID) Principal {
	return Principal{ID: id}
}

// Name returns the identity used for auditing.
func (p Principal) Name() string {
	return p.ID.String()
}

// IsZero reports whether the principal carries no identity.
func (p Principal) IsZero() bool {
	return p.ID == uuid.Nil
}

// Owned is implemented by entities that belong to a single user.
type Owned interface {
	Owner() uuid.UUID
}
