package authorization

// Role is the closed set of principal roles. Requests arrive with a role
// already resolved by the authentication layer; free-form role strings are
// rejected at the boundary.
type Role string

const (
	RoleTenant Role = "tenant"
	RoleOwner  Role = "owner"
	RoleAdmin  Role = "admin"
	RoleStaff  Role = "staff"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleTenant, RoleOwner, RoleAdmin, RoleStaff:
		return true
	}
	return false
}

func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

func (r Role) IsOwner() bool {
	return r == RoleOwner
}

func (r Role) IsStaff() bool {
	return r == RoleStaff
}

func (r Role) IsTenant() bool {
	return r == RoleTenant
}

// ParseRole converts a stored role string to a Role, reporting whether the
// string names a legal role.
func ParseRole(s string) (Role, bool) {
	r := Role(s)
	return r, r.IsValid()
}
