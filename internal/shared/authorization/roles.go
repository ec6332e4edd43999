package authorization

type UserRole string

const (
	RoleUser       UserRole = "user"
	RoleSubAdmin   UserRole = "sub_admin"
	RoleSuperAdmin UserRole = "super_admin"
)

func (r UserRole) String() string {
	return string(r)
}

// IsAdmin reports whether the role bypasses normal entitlement checks.
// This is the single place the admin-override rule lives; callers must not
// re-implement role string comparisons.
func (r UserRole) IsAdmin() bool {
	return r == RoleSubAdmin || r == RoleSuperAdmin
}

func (r UserRole) IsValid() bool {
	return r == RoleUser || r == RoleSubAdmin || r == RoleSuperAdmin
}

func ParseUserRole(s string) UserRole {
	role := UserRole(s)
	if role.IsValid() {
		return role
	}
	return RoleUser
}
