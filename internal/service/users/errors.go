package users

import "errors"

var (
	// ErrInvalidCredentials is returned on a wrong email or password,
	// one error for both cases
	ErrInvalidCredentials = errors.New("users.service: invalid credentials")

	// ErrUserNotFound is returned when the profile does not exist
	ErrUserNotFound = errors.New("users.service: user not found")

	// ErrEmailTaken is returned when the email is already registered
	ErrEmailTaken = errors.New("users.service: email already registered")

	// ErrInvalidInput is returned on malformed profile data
	ErrInvalidInput = errors.New("users.service: invalid input")

	// ErrInternal is returned on infrastructure failures
	ErrInternal = errors.New("users.service: internal error")
)
