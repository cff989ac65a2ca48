// Package role holds the capability tier shared between the auth and
// profile packages.
package role

// Role is the capability tier attached to a profile. Unknown marks a session
// whose role lookup has not resolved (or failed); it never grants admin
// privilege.
type Role string

const (
	Admin    Role = "admin"
	Employee Role = "employee"
	Unknown  Role = ""
)

// Parse maps a stored role string onto a Role. Anything that is not admin is
// treated as a plain employee.
func Parse(s string) Role {
	if s == string(Admin) {
		return Admin
	}
	return Employee
}

func (r Role) IsAdmin() bool {
	return r == Admin
}
