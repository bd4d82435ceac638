package auth

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/marvelgate/marvelgate/internal/shared"
)

type stubRepo struct {
	users map[string]*User
}

func (s *stubRepo) FindByUsername(ctx context.Context, username string) (*User, error) {
	user, ok := s.users[username]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return user, nil
}

func newTestUser(t *testing.T, username, password string, role RoleName, perms ...string) *User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	return &User{
		ID:           1,
		Username:     username,
		PasswordHash: string(hash),
		Role:         Role{Name: role, Permissions: perms},
		Enabled:      true,
	}
}

func newTestService(t *testing.T, users ...*User) *Service {
	t.Helper()
	repo := &stubRepo{users: map[string]*User{}}
	for _, u := range users {
		repo.users[u.Username] = u
	}
	return NewService(repo, newTestTokenService(t, 30))
}

func TestLoginIssuesTokenForSubject(t *testing.T) {
	user := newTestUser(t, "ironman", "Friday1234", RoleCustomer, shared.PermInteractionReadOwn)
	svc := newTestService(t, user)

	token, err := svc.Login(context.Background(), "ironman", "Friday1234")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}

	claims, err := newTestTokenService(t, 30).Validate(token)
	if err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
	if claims.Subject != "ironman" {
		t.Fatalf("expected subject ironman got %s", claims.Subject)
	}
	if claims.Role != "CUSTOMER" {
		t.Fatalf("expected role CUSTOMER got %s", claims.Role)
	}
	want := []string{"ROLE_CUSTOMER", shared.PermInteractionReadOwn}
	if len(claims.Authorities) != len(want) {
		t.Fatalf("unexpected authorities %v", claims.Authorities)
	}
	for i, a := range want {
		if claims.Authorities[i] != a {
			t.Fatalf("expected authority %s at %d got %s", a, i, claims.Authorities[i])
		}
	}
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	locked := newTestUser(t, "thor", "Mjolnir1234", RoleCustomer)
	locked.AccountLocked = true
	svc := newTestService(t, newTestUser(t, "ironman", "Friday1234", RoleCustomer), locked)

	cases := []struct {
		name     string
		username string
		password string
	}{
		{"unknown user", "loki", "whatever"},
		{"wrong password", "ironman", "Thursday1234"},
		{"locked account", "thor", "Mjolnir1234"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Login(context.Background(), tc.username, tc.password)
			if !errors.Is(err, shared.ErrInvalidCredentials) {
				t.Fatalf("expected ErrInvalidCredentials got %v", err)
			}
		})
	}
}

func TestLoginNormalizesUsername(t *testing.T) {
	svc := newTestService(t, newTestUser(t, "ironman", "Friday1234", RoleCustomer))
	if _, err := svc.Login(context.Background(), "  ironman  ", "Friday1234"); err != nil {
		t.Fatalf("expected trimmed username to log in, got %v", err)
	}
}

func TestLogoutIsIdempotent(t *testing.T) {
	svc := newTestService(t)
	if err := svc.Logout(context.Background()); err != nil {
		t.Fatalf("first logout returned error: %v", err)
	}
	if err := svc.Logout(context.Background()); err != nil {
		t.Fatalf("second logout returned error: %v", err)
	}
}

func TestCurrentPrincipal(t *testing.T) {
	svc := newTestService(t)

	if _, err := svc.CurrentPrincipal(context.Background()); !errors.Is(err, shared.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated got %v", err)
	}

	ident := &shared.Identity{Username: "ironman", Role: "CUSTOMER"}
	ctx := shared.ContextWithIdentity(context.Background(), ident)
	got, err := svc.CurrentPrincipal(ctx)
	if err != nil {
		t.Fatalf("CurrentPrincipal returned error: %v", err)
	}
	if got.Username != "ironman" {
		t.Fatalf("expected ironman got %s", got.Username)
	}
}
