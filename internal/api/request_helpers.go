package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/phrazzld/photoalbum-api/internal/api/shared"
	"github.com/phrazzld/photoalbum-api/internal/domain"
	"github.com/phrazzld/photoalbum-api/internal/link"
	"github.com/phrazzld/photoalbum-api/internal/service/auth"
)

// Path parameter names used by the router.
const (
	AlbumIDParam = "albumId"
	PhotoIDParam = "photoId"
)

// principalFrom returns the authenticated principal, or S002 when the request
// did not pass the authentication middleware.
func principalFrom(r *http.Request) (domain.Principal, error) {
	principal, ok := shared.PrincipalFrom(r.Context())
	if !ok {
		return domain.Principal{}, domain.NewUserNotAuthenticatedError()
	}
	return principal, nil
}

// authorize returns S001 unless principal may act on target.
func authorize(authz auth.Authorization, principal domain.Principal, target domain.Owned) error {
	if !authz.IsAuthorized(principal, target) {
		return domain.NewUserIsNotAuthorizedError(principal)
	}
	return nil
}

// decodeRequest decodes and validates a JSON body into v, reporting any
// failure as V001.
func decodeRequest(r *http.Request, v interface{}) error {
	if err := shared.DecodeJSON(r, v); err != nil {
		return validationFailure(err)
	}
	if err := shared.ValidateRequest(v); err != nil {
		return validationFailure(err)
	}
	return nil
}

// downloadRequested parses the optional download query flag.
func downloadRequested(r *http.Request) (bool, error) {
	raw := r.URL.Query().Get(link.DownloadParam)
	if raw == "" {
		return false, nil
	}
	download, err := strconv.ParseBool(raw)
	if err != nil {
		return false, domain.NewValidationError(link.DownloadParam, "must be a boolean")
	}
	return download, nil
}

func pathParam(r *http.Request, name string) string {
	return chi.URLParam(r, name)
}
