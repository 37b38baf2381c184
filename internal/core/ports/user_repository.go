package ports

import (
	"context"

	"github.com/epfafrica/user-service/internal/core/domain"
)

// UserRepository is the system of record for user identities. Implementations
// must enforce username and email uniqueness atomically at write time:
// Create returns domain.ErrDuplicateIdentity when a unique constraint rejects
// the insert, regardless of any earlier existence checks by the caller.
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	Count(ctx context.Context) (int64, error)
}
