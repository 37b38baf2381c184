package domain

import "errors"

var (
	// Registration failures. ErrDuplicateIdentity is raised by the store when
	// a unique index rejects a write that raced past the advisory guards.
	ErrDuplicateUsername = errors.New("username is already taken")
	ErrDuplicateEmail    = errors.New("email is already in use")
	ErrDuplicateIdentity = errors.New("user already exists")

	// Login failures. ErrInactiveAccount must render identically to
	// ErrInvalidCredentials at the HTTP boundary so account state never leaks.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInactiveAccount    = errors.New("account is inactive")
	ErrTooManyAttempts    = errors.New("too many failed login attempts")
	ErrUserNotFound       = errors.New("user not found")

	// Token failures.
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("invalid token")
)
