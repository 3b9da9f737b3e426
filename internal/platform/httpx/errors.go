package httpx

import (
	"errors"
	"net/http"

	"github.com/dentora/backoffice/internal/shared"
)

// Problemer is implemented by errors that know their own problem mapping.
type Problemer interface {
	Problem() (status int, title, detail, hint string)
}

// RespondError maps domain errors to HTTP responses using RFC7807.
func RespondError(w http.ResponseWriter, err error) {
	var p Problemer
	if errors.As(err, &p) {
		status, title, detail, hint := p.Problem()
		ProblemWithHint(w, status, title, detail, hint)
		return
	}
	switch {
	case errors.Is(err, shared.ErrNotFound):
		Problem(w, http.StatusNotFound, "Not Found", err.Error())
	case errors.Is(err, shared.ErrInvalidCredentials):
		Problem(w, http.StatusUnauthorized, "Unauthorized", err.Error())
	case errors.Is(err, shared.ErrNotAuthenticated):
		ProblemWithHint(w, http.StatusUnauthorized, "Unauthorized", err.Error(), "please sign in again")
	case errors.Is(err, shared.ErrCSRFTokenMissing), errors.Is(err, shared.ErrCSRFTokenMismatch):
		Problem(w, http.StatusForbidden, "Forbidden", err.Error())
	default:
		Problem(w, http.StatusInternalServerError, "Internal Error", "")
	}
}
