package interactions

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/marvelgate/marvelgate/internal/auth"
	"github.com/marvelgate/marvelgate/internal/platform/httpx"
)

// Recorder returns middleware that persists one Entry per request before the
// downstream handler runs. A failed insert fails the request: serving a
// protected resource without its audit record is not allowed.
//
// Mounted only on the protected resource groups, after the authentication
// gate and the authorization checks.
func Recorder(repo Repository, authService *auth.Service, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ident, err := authService.CurrentPrincipal(r.Context())
			if err != nil {
				httpx.RespondError(w, err)
				return
			}

			entry := Entry{
				URL:           fullRequestURL(r),
				HTTPMethod:    r.Method,
				Username:      ident.Username,
				RemoteAddress: r.RemoteAddr,
				OccurredAt:    time.Now().UTC(),
			}
			if err := repo.Insert(r.Context(), entry); err != nil {
				if logger != nil {
					logger.Error("persist interaction log", slog.Any("error", err))
				}
				httpx.Problem(w, http.StatusInternalServerError, "Internal Error", "")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func fullRequestURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + r.Host + r.URL.RequestURI()
}
