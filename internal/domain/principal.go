package domain

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleCashier Role = "cashier"
)

// Principal is an already-authenticated operator. Credential verification
// happens outside the engine; only the username and role reach it.
type Principal struct {
	Username string
	Role     Role
}
