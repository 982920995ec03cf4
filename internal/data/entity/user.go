package entity

type UserRole string

const (
	RoleCustomer UserRole = "customer"
	RoleOwner    UserRole = "owner"
	RoleAdmin    UserRole = "admin"
)

type User struct {
	Base
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Phone    *string  `json:"phone,omitempty"`
	Role     UserRole `json:"role"`
	IsActive bool     `json:"isActive"`
}
