package representation

import (
	"time"

	"github.com/google/uuid"
)

// AuthRepr is returned by registration and login.
type AuthRepr struct {
	UserID    uuid.UUID `json:"userId"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}
