package auth

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/marvelgate/marvelgate/internal/shared"
)

// Authenticator returns the request authentication gate. It runs once per
// request, before any authorization check or audit logging.
//
// A missing or malformed Authorization header and any token validation
// failure pass the request through anonymously; protected operations are then
// denied downstream for lack of identity rather than rejected here, because
// some endpoints permit anonymous access.
func Authenticator(tokens *TokenService, repo Repository, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			subject, err := tokens.ExtractSubject(token)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			user, err := repo.FindByUsername(r.Context(), subject)
			if err != nil {
				if logger != nil {
					logger.Warn("token subject not resolvable", slog.String("subject", subject))
				}
				next.ServeHTTP(w, r)
				return
			}

			ident := &shared.Identity{
				Username:    user.Username,
				Role:        string(user.Role.Name),
				Authorities: user.Authorities(),
			}
			ctx := shared.ContextWithIdentity(r.Context(), ident)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", false
	}
	return token, true
}
