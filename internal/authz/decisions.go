// Package authz decides whether an identity may perform an operation.
// Decisions are deterministic and side-effect free; authorities were expanded
// from the caller's role when the identity was established.
package authz

import "github.com/marvelgate/marvelgate/internal/shared"

// Allowed reports whether the identity carries the required authority.
// Anonymous callers are denied.
func Allowed(ident *shared.Identity, authority string) bool {
	return ident.HasAuthority(authority)
}

// AllowedSelfOr grants access when the identity carries readAny, or when it
// names the same principal as username and carries readOwn.
func AllowedSelfOr(ident *shared.Identity, readAny, username, readOwn string) bool {
	if ident == nil {
		return false
	}
	if ident.HasAuthority(readAny) {
		return true
	}
	return ident.Username == username && ident.HasAuthority(readOwn)
}
