package ports

import (
	"context"

	"github.com/epfafrica/user-service/internal/core/domain"
)

// RegisterInput is the DTO passed from the transport layer for registration.
type RegisterInput struct {
	Username  string
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// LoginResult carries a freshly minted token plus the identity projection
// returned to the caller. The user's password hash is excluded by the
// domain.User JSON contract.
type LoginResult struct {
	Token     string
	TokenType string
	User      *domain.User
}

type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
	Login(ctx context.Context, username, password string) (*LoginResult, error)
}
