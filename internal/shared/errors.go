package shared

import "errors"

var (
	// ErrNotFound indicates resource not found.
	ErrNotFound = errors.New("not found")
	// ErrInvalidCredentials indicates login failure, cause deliberately unspecified.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidToken indicates a token that failed format, signature or expiry checks.
	ErrInvalidToken = errors.New("invalid token")
	// ErrUnauthenticated indicates no identity is bound to the request.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrForbidden indicates an authenticated caller lacks the required authority.
	ErrForbidden = errors.New("forbidden")
)
