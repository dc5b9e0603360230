// Package entity contains the core business objects of the project.
package entity

// Role decides what a user may do: customers place and track their own orders, admins run the
// catalog and move orders through the workflow.
type Role string

const (
	RoleCustomer Role = "CUSTOMER"
	RoleAdmin    Role = "ADMIN"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	return r == RoleCustomer || r == RoleAdmin
}

// RoleOrCustomer returns r, or RoleCustomer when r is unknown or empty. Unknown roles never
// gain admin rights.
func RoleOrCustomer(r Role) Role {
	if r.IsValid() {
		return r
	}

	return RoleCustomer
}
