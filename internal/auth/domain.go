package auth

// RoleName identifies one of the closed set of roles.
type RoleName string

// Known roles. Permissions attached to a role are resolved from the
// credential store at runtime, not hardcoded here.
const (
	RoleCustomer RoleName = "CUSTOMER"
	RoleAuditor  RoleName = "AUDITOR"
)

// Valid reports whether the role name belongs to the closed set.
func (r RoleName) Valid() bool {
	switch r {
	case RoleCustomer, RoleAuditor:
		return true
	}
	return false
}

// Authority returns the authority string the role itself contributes.
func (r RoleName) Authority() string {
	return "ROLE_" + string(r)
}

// Role bundles a role name with the permission names granted to it.
type Role struct {
	Name        RoleName
	Permissions []string
}

// User is an authenticatable principal. Rows are provisioned externally and
// never mutated by this service.
type User struct {
	ID                 int64
	Username           string
	PasswordHash       string
	Role               Role
	AccountExpired     bool
	AccountLocked      bool
	CredentialsExpired bool
	Enabled            bool
}

// CanAuthenticate reports whether the account state permits a login.
func (u *User) CanAuthenticate() bool {
	return u.Enabled && !u.AccountExpired && !u.AccountLocked && !u.CredentialsExpired
}

// Authorities expands the user's role into its authority strings: the role
// authority itself plus one authority per granted permission.
func (u *User) Authorities() []string {
	authorities := make([]string, 0, len(u.Role.Permissions)+1)
	authorities = append(authorities, u.Role.Name.Authority())
	authorities = append(authorities, u.Role.Permissions...)
	return authorities
}
