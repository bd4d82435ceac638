package shared

// Identity describes the authenticated caller for the remainder of a request.
// A nil *Identity means the request is anonymous.
type Identity struct {
	Username    string
	Role        string
	Authorities []string
}

// HasAuthority reports whether the identity carries the given authority string.
func (id *Identity) HasAuthority(authority string) bool {
	if id == nil {
		return false
	}
	for _, a := range id.Authorities {
		if a == authority {
			return true
		}
	}
	return false
}
