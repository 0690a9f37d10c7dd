package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is a profile row. PasswordHash is bcrypt and never leaves the
// service layer.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Role         string
	Department   string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin reports whether the user carries the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
