package http

import (
	"errors"
	"net/http"

	"github.com/rentlinkhq/rentlink/internal/rental/domain"
	"github.com/rentlinkhq/rentlink/internal/rental/service"
	"github.com/rentlinkhq/rentlink/pkg/httpx"
	"github.com/rentlinkhq/rentlink/pkg/rentsdk"
)

// principal resolves the authenticated subject to an application user. The
// bearer token was already verified by the authn middleware; what can still
// fail is the subject having no profile yet, which every endpoint except
// profile creation treats as 403.
func principal(w http.ResponseWriter, r *http.Request, users *service.UserService) (domain.User, bool) {
	subject := httpx.SubjectFromContext(r.Context())
	if subject == "" {
		httpx.WriteError(w, http.StatusUnauthorized, rentsdk.ErrorCodeUnauthorized, "authentication required")
		return domain.User{}, false
	}

	user, err := users.GetByExternalID(r.Context(), subject)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			httpx.WriteError(w, http.StatusForbidden, rentsdk.ErrorCodeForbidden, "complete your profile first")
			return domain.User{}, false
		}
		writeServiceError(w, r, err)
		return domain.User{}, false
	}
	return user, true
}
