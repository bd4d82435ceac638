package authz

import (
	"testing"

	"github.com/marvelgate/marvelgate/internal/shared"
)

func TestAllowed(t *testing.T) {
	auditor := &shared.Identity{
		Username:    "nickfury",
		Role:        "AUDITOR",
		Authorities: []string{"ROLE_AUDITOR", shared.PermInteractionReadAll},
	}

	if !Allowed(auditor, shared.PermInteractionReadAll) {
		t.Fatal("expected granted authority to allow")
	}
	if Allowed(auditor, shared.PermInteractionReadOwn) {
		t.Fatal("expected missing authority to deny")
	}
	if Allowed(nil, shared.PermInteractionReadAll) {
		t.Fatal("expected anonymous caller to be denied")
	}
}

func TestAllowedSelfOr(t *testing.T) {
	customer := &shared.Identity{
		Username:    "ironman",
		Role:        "CUSTOMER",
		Authorities: []string{"ROLE_CUSTOMER", shared.PermInteractionReadOwn},
	}
	auditor := &shared.Identity{
		Username:    "nickfury",
		Role:        "AUDITOR",
		Authorities: []string{"ROLE_AUDITOR", shared.PermInteractionReadByUsername},
	}

	cases := []struct {
		name     string
		ident    *shared.Identity
		username string
		want     bool
	}{
		{"anonymous denied", nil, "ironman", false},
		{"self with read-own", customer, "ironman", true},
		{"other without read-any", customer, "thor", false},
		{"any user with read-any", auditor, "ironman", true},
		{"read-any reads itself too", auditor, "nickfury", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := AllowedSelfOr(tc.ident, shared.PermInteractionReadByUsername, tc.username, shared.PermInteractionReadOwn)
			if got != tc.want {
				t.Fatalf("AllowedSelfOr = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestSelfWithoutReadOwnIsDenied(t *testing.T) {
	bare := &shared.Identity{Username: "ironman", Role: "CUSTOMER", Authorities: []string{"ROLE_CUSTOMER"}}
	if AllowedSelfOr(bare, shared.PermInteractionReadByUsername, "ironman", shared.PermInteractionReadOwn) {
		t.Fatal("matching username alone must not grant access")
	}
}
