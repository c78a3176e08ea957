package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/photoalbum-api/internal/api/shared"
	"github.com/phrazzld/photoalbum-api/internal/domain"
	"github.com/phrazzld/photoalbum-api/internal/platform/logger"
	"github.com/phrazzld/photoalbum-api/internal/representation"
	"github.com/phrazzld/photoalbum-api/internal/service"
	"github.com/phrazzld/photoalbum-api/internal/service/auth"
)

// AuthHandler handles authentication-related API requests.
type AuthHandler struct {
	users      service.UserService
	jwtService auth.JWTService
	logger     *slog.Logger
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(users service.UserService, jwtService auth.JWTService, logger *slog.Logger) *AuthHandler {
	if users == nil || jwtService == nil {
		// ALLOW-PANIC
		panic("auth handler dependencies cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthHandler{
		users:      users,
		jwtService: jwtService,
		logger:     logger.With(slog.String("component", "auth_handler")),
	}
}

// Register handles POST /auth/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) error {
	var req RegisterRequest
	if err := decodeRequest(r, &req); err != nil {
		return err
	}

	user, err := h.users.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return h.respondWithToken(w, r, http.StatusCreated, user)
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) error {
	var req LoginRequest
	if err := decodeRequest(r, &req); err != nil {
		return err
	}

	user, err := h.users.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return h.respondWithToken(w, r, http.StatusOK, user)
}

func (h *AuthHandler) respondWithToken(w http.ResponseWriter, r *http.Request, status int, user *domain.User) error {
	token, expiresAt, err := h.jwtService.GenerateToken(r.Context(), user.ID)
	if err != nil {
		logger.FromContextOrDefault(r.Context(), h.logger).Error("failed to generate token",
			slog.String("user_id", user.ID.String()))
		return err
	}

	shared.RespondWithJSON(w, r, status, representation.AuthRepr{
		UserID:    user.ID,
		Token:     token,
		ExpiresAt: expiresAt,
	})
	return nil
}
