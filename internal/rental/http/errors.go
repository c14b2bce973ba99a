package http

import (
	"errors"
	"net/http"

	"github.com/rentlinkhq/rentlink/internal/rental/service"
	"github.com/rentlinkhq/rentlink/internal/rental/store"
	"github.com/rentlinkhq/rentlink/pkg/httpx"
	"github.com/rentlinkhq/rentlink/pkg/rentsdk"
	"github.com/rentlinkhq/rentlink/pkg/slogx"
)

// writeServiceError maps the service error taxonomy onto HTTP status codes
// with stable error codes. Unknown errors are logged and become a 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidRequest):
		httpx.WriteError(w, http.StatusBadRequest, rentsdk.ErrorCodeInvalidRequest, err.Error())
	case errors.Is(err, service.ErrForbidden):
		httpx.WriteError(w, http.StatusForbidden, rentsdk.ErrorCodeForbidden, "operation not permitted")
	case errors.Is(err, service.ErrNotFound), errors.Is(err, store.ErrNotFound):
		httpx.WriteError(w, http.StatusNotFound, rentsdk.ErrorCodeNotFound, "record not found")
	case errors.Is(err, service.ErrEmailAlreadyRegistered):
		httpx.WriteError(w, http.StatusConflict, rentsdk.ErrorCodeConflict, "email already belongs to an account")
	case errors.Is(err, service.ErrInviteExpired):
		httpx.WriteError(w, http.StatusConflict, rentsdk.ErrorCodeInviteExpired, "invitation has expired")
	case errors.Is(err, service.ErrUnitUnavailable):
		httpx.WriteError(w, http.StatusConflict, rentsdk.ErrorCodeUnitUnavailable, "unit is not available")
	case errors.Is(err, service.ErrInvalidState):
		httpx.WriteError(w, http.StatusConflict, rentsdk.ErrorCodeInvalidState, "operation not valid for current status")
	default:
		slogx.FromContext(r.Context()).Error("unhandled service error", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, rentsdk.ErrorCodeServerError, "internal server error")
	}
}

func writeInvalidBody(w http.ResponseWriter) {
	httpx.WriteError(w, http.StatusBadRequest, rentsdk.ErrorCodeInvalidRequest, "invalid JSON body")
}
