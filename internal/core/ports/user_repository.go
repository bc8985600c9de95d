package ports

import (
	"context"

	"github.com/authmgr/auth-service/internal/core/domain"
)

// UserRepository defines the persistence boundary for user records.
//
// Create must enforce username uniqueness atomically (a store-level unique
// constraint, not a read-then-insert) and surface a violation as
// domain.ErrUsernameTaken.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}
