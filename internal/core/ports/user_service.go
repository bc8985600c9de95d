package ports

import (
	"context"

	"github.com/authmgr/auth-service/internal/core/domain"
)

// UserService is the authenticated profile surface. The subject id comes from
// a decoded token and is re-resolved against the live store on every call, so
// a deleted account fails here even while its token is still cryptographically
// valid.
type UserService interface {
	GetSelf(ctx context.Context, subjectID string) (*domain.User, error)
	UpdateSelf(ctx context.Context, subjectID string, update domain.ProfileUpdate) (*domain.User, error)
	DeleteSelf(ctx context.Context, subjectID string) error
}
