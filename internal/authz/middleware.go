package authz

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/marvelgate/marvelgate/internal/platform/httpx"
	"github.com/marvelgate/marvelgate/internal/shared"
)

// RequireAuthenticated denies anonymous callers. Protected resource groups
// use it where any authenticated principal may read.
func RequireAuthenticated() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if shared.IdentityFromContext(r.Context()) == nil {
				httpx.Problem(w, http.StatusForbidden, "Forbidden", "")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireAuthority guards a route group behind a single authority.
func RequireAuthority(authority string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ident := shared.IdentityFromContext(r.Context())
			if !Allowed(ident, authority) {
				httpx.Problem(w, http.StatusForbidden, "Forbidden", "")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireAuthorityOrSelf guards a route carrying a username path parameter:
// the caller needs readAny, or must be requesting its own data with readOwn.
func RequireAuthorityOrSelf(param, readAny, readOwn string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ident := shared.IdentityFromContext(r.Context())
			username := chi.URLParam(r, param)
			if !AllowedSelfOr(ident, readAny, username, readOwn) {
				httpx.Problem(w, http.StatusForbidden, "Forbidden", "")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
