package api

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=12,max=72"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// CreateAlbumRequest defines the payload for creating an album.
type CreateAlbumRequest struct {
	Name string `json:"name" validate:"required,max=200"`
}

// UpdateMetadataRequest defines the payload for replacing a photo's metadata.
// Both fields are replaced; omitted tags clear the tag list.
type UpdateMetadataRequest struct {
	Description string   `json:"description" validate:"max=2000"`
	Tags        []string `json:"tags"        validate:"max=50,dive,max=64"`
}
