package domain

import (
	"context"
	"time"
)

// Role is the access level of a registered user.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User represents a registered account. Usernames are unique and
// case-sensitive; the password hash is an opaque credential compared
// only by the registry.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	Role         Role
	Email        string
	DisplayName  string
	CreatedAt    time.Time
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// UserRepository defines persistence operations for users.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByUsername(ctx context.Context, username string) (*User, error)
	List(ctx context.Context) ([]User, error)
	DeleteAll(ctx context.Context) error
}
