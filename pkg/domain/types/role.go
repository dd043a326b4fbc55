package types

// Role is the role attached to a profile at signup
type Role string

const (
	// RolePM is a project manager who owns a risk table
	RolePM Role = "PM"
	// RoleRC is a risk controller who reads every risk table
	RoleRC Role = "RC"
)

func AllRoles() []Role {
	return []Role{RolePM, RoleRC}
}

func (r Role) IsValid() bool {
	return r == RolePM || r == RoleRC
}

func (r Role) String() string {
	return string(r)
}
