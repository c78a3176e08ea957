package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/phrazzld/photoalbum-api/internal/api/shared"
	"github.com/phrazzld/photoalbum-api/internal/domain"
	"github.com/phrazzld/photoalbum-api/internal/platform/logger"
	"github.com/phrazzld/photoalbum-api/internal/redact"
	"github.com/phrazzld/photoalbum-api/internal/service/auth"
)

// AuthMiddleware turns a bearer token into the request's principal.
type AuthMiddleware struct {
	jwtService auth.JWTService
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(jwtService auth.JWTService) *AuthMiddleware {
	if jwtService == nil {
		// ALLOW-PANIC
		panic("jwtService cannot be nil")
	}
	return &AuthMiddleware{jwtService: jwtService}
}

// Authenticate validates the Authorization header and stores the principal in
// the request context. Requests without a valid token get 401 with code S002.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		token, ok := bearerToken(r.Header.Get("Authorization"))
		if !ok {
			unauthenticated(w, r, "Authorization header required")
			return
		}

		claims, err := m.jwtService.ValidateToken(r.Context(), token)
		if err != nil {
			switch {
			case errors.Is(err, auth.ErrExpiredToken):
				unauthenticated(w, r, "Token expired")
			case errors.Is(err, auth.ErrInvalidToken),
				errors.Is(err, auth.ErrTokenNotYetValid),
				errors.Is(err, auth.ErrWrongTokenType):
				unauthenticated(w, r, "Invalid token")
			default:
				log.Error("failed to validate token", slog.String("error", redact.Error(err)))
				shared.RespondWithError(w, r, http.StatusInternalServerError,
					string(domain.CodeInternal), "Authentication error")
			}
			return
		}

		principal := domain.NewPrincipal(claims.UserID)
		if principal.IsZero() {
			unauthenticated(w, r, "Invalid token")
			return
		}

		ctx := shared.WithPrincipal(r.Context(), principal)
		ctx = logger.WithLogger(ctx, log.With(slog.String("user_id", principal.Name())))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// bearerToken extracts the token of a "Bearer <token>" header value.
func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func unauthenticated(w http.ResponseWriter, r *http.Request, message string) {
	shared.RespondWithError(w, r, http.StatusUnauthorized,
		string(domain.CodeUserNotAuthenticated), message)
}
