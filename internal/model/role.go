package model

// Role is the authorization level of a User.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// OrDefault returns RoleUser for the empty role.
func (r Role) OrDefault() Role {
	if r == "" {
		return RoleUser
	}
	return r
}
