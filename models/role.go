package models

// Role is the closed set of viewer roles. The backend speaks ROLE_*
// strings; everything inside the bot switches on this type so a new
// role is a compile-visible addition, not a stray string.
type Role int

const (
	RoleGuest Role = iota
	RoleCustomer
	RoleStaff
	RoleAdmin
)

const (
	wireRoleCustomer = "ROLE_CUSTOMER"
	wireRoleStaff    = "ROLE_STAFF"
	wireRoleAdmin    = "ROLE_ADMIN"
)

// ParseRole maps a wire role string to a Role. Unknown or empty strings
// mean guest.
func ParseRole(s string) Role {
	switch s {
	case wireRoleCustomer:
		return RoleCustomer
	case wireRoleStaff:
		return RoleStaff
	case wireRoleAdmin:
		return RoleAdmin
	default:
		return RoleGuest
	}
}

// Wire returns the backend's spelling of the role. Guest has no wire
// form and returns "".
func (r Role) Wire() string {
	switch r {
	case RoleCustomer:
		return wireRoleCustomer
	case RoleStaff:
		return wireRoleStaff
	case RoleAdmin:
		return wireRoleAdmin
	default:
		return ""
	}
}

func (r Role) String() string {
	switch r {
	case RoleCustomer:
		return "customer"
	case RoleStaff:
		return "staff"
	case RoleAdmin:
		return "admin"
	default:
		return "guest"
	}
}

// IsStaff reports whether the role may use staff screens (items,
// inventory, tax, order completion).
func (r Role) IsStaff() bool {
	return r == RoleStaff || r == RoleAdmin
}
