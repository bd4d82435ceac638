package auth

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/text/unicode/norm"

	"github.com/marvelgate/marvelgate/internal/shared"
)

// Service orchestrates credential verification and token issuance.
type Service struct {
	repo   Repository
	tokens *TokenService
}

// NewService constructs a new Service.
func NewService(repo Repository, tokens *TokenService) *Service {
	return &Service{repo: repo, tokens: tokens}
}

// Login verifies the credentials and returns a signed access token. Unknown
// usernames, disabled accounts and wrong passwords are indistinguishable to
// the caller.
func (s *Service) Login(ctx context.Context, username, password string) (string, error) {
	username = norm.NFC.String(strings.TrimSpace(username))

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return "", shared.ErrInvalidCredentials
	}
	if !user.CanAuthenticate() {
		return "", shared.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", shared.ErrInvalidCredentials
	}

	return s.tokens.Issue(user.Username, string(user.Role.Name), user.Authorities())
}

// Logout terminates the caller's session. Tokens are stateless, so there is
// no server-side state to clear; the call is idempotent and never fails for
// lack of a session.
func (s *Service) Logout(ctx context.Context) error {
	return nil
}

// CurrentPrincipal returns the identity bound to the request by the
// authentication gate.
func (s *Service) CurrentPrincipal(ctx context.Context) (*shared.Identity, error) {
	ident := shared.IdentityFromContext(ctx)
	if ident == nil {
		return nil, shared.ErrUnauthenticated
	}
	return ident, nil
}
