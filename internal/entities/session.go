package entities

// Session контекст вызывающего пользователя, передаётся явно до гейтвея
type Session struct {
	Token string
}

type UserRole string

const (
	RoleCustomer UserRole = "CUSTOMER"
	RoleAdmin    UserRole = "ADMIN"
)

type Profile struct {
	ID      int64
	Name    string
	Email   string
	Phone   string
	Address string
	Role    UserRole
	HasCard bool
}

func (p Profile) IsAdmin() bool {
	return p.Role == RoleAdmin
}
