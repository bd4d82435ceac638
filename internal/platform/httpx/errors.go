package httpx

import (
	"errors"
	"net/http"

	"github.com/marvelgate/marvelgate/internal/shared"
)

// RespondError maps domain errors to RFC7807 problem responses.
//
// Credential, identity and authority failures all collapse to 403 so the
// boundary reveals nothing about which check failed.
func RespondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, shared.ErrInvalidCredentials),
		errors.Is(err, shared.ErrUnauthenticated),
		errors.Is(err, shared.ErrInvalidToken),
		errors.Is(err, shared.ErrForbidden):
		Problem(w, http.StatusForbidden, "Forbidden", "")
	case errors.Is(err, shared.ErrNotFound):
		Problem(w, http.StatusNotFound, "Not Found", err.Error())
	case errors.Is(err, shared.ErrNegativeOffset),
		errors.Is(err, shared.ErrNonPositiveLimit):
		Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
	default:
		Problem(w, http.StatusInternalServerError, "Internal Error", "")
	}
}
