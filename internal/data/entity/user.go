package entity

type UserRole string

const (
	RoleClient UserRole = "client"
	RoleOwner  UserRole = "owner"
	RoleAdmin  UserRole = "admin"
)

type User struct {
	Base
	Name         string   `db:"name"`
	Email        string   `db:"email"`
	PasswordHash string   `db:"password"`
	Phone        *string  `db:"phone"`
	Address      *string  `db:"address"`
	Role         UserRole `db:"role"`
	IsActive     bool     `db:"is_active"`
}
