package auth

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/phrazzld/photoalbum-api/internal/domain"
)

func TestOwnershipAuthorization(t *testing.T) {
	owner := uuid.New()
	photo := &domain.Photo{ID: "P1", AlbumID: "A1", OwnerID: owner}
	album := &domain.Album{ID: "A1", OwnerID: owner}
	gate := NewOwnershipAuthorization()

	tests := []struct {
		name      string
		principal domain.Principal
		target    domain.Owned
		want      bool
	}{
		{"owner of photo", domain.NewPrincipal(owner), photo, true},
		{"owner of album", domain.NewPrincipal(owner), album, true},
		{"other user", domain.NewPrincipal(uuid.New()), photo, false},
		{"zero principal", domain.Principal{}, photo, false},
		{"zero principal on unowned photo", domain.Principal{}, &domain.Photo{ID: "P2"}, false},
		{"nil target", domain.NewPrincipal(owner), nil, false},
		{"typed nil photo", domain.NewPrincipal(owner), (*domain.Photo)(nil), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, gate.IsAuthorized(tt.principal, tt.target))
		})
	}
}

func TestAuthorizationFunc(t *testing.T) {
	var calls int
	gate := AuthorizationFunc(func(domain.Principal, domain.Owned) bool {
		calls++
		return true
	})

	assert.True(t, gate.IsAuthorized(domain.Principal{}, nil))
	assert.Equal(t, 1, calls)
}
