package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/fleetops/FMS-CarBookingService/internal/domain"
)

// UserResponse is one profile without its password hash.
type UserResponse struct {
	ID         uuid.UUID `json:"id"`
	Email      string    `json:"email"`
	Role       string    `json:"role"`
	Department string    `json:"department"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// UserListResponse is the profile list.
type UserListResponse struct {
	Users []*UserResponse `json:"users"`
	Total int             `json:"total"`
}

// LoginRequest carries the login form.
type LoginRequest struct {
	Email    string
	Password string
}

// LoginResponse is the issued token with the caller's profile.
type LoginResponse struct {
	Token     string        `json:"token"`
	ExpiresAt time.Time     `json:"expires_at"`
	User      *UserResponse `json:"user"`
}

// CreateUserRequest carries the admin user form.
type CreateUserRequest struct {
	Email      string
	Password   string
	Role       string
	Department string
}

// UpdateUserRequest carries the editable profile fields. An empty
// Password keeps the current one.
type UpdateUserRequest struct {
	Role       string
	Department string
	Password   string
}

// FromDomainUser converts a domain user.
func FromDomainUser(u *domain.User) *UserResponse {
	return &UserResponse{
		ID:         u.ID,
		Email:      u.Email,
		Role:       u.Role,
		Department: u.Department,
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}
}

// FromDomainUserList converts a user slice.
func FromDomainUserList(users []*domain.User) *UserListResponse {
	out := make([]*UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, FromDomainUser(u))
	}
	return &UserListResponse{Users: out, Total: len(out)}
}
