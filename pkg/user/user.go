package user

import "time"

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

type User struct {
	Id          int
	Uid         string
	Email       string
	DisplayName string
	Role        Role
	// Currency is the ISO 4217 code used when formatting amounts for this user.
	Currency  string
	CreatedAt time.Time
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
