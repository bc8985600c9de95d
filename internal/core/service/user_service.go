package service

import (
	"context"
	"time"

	"github.com/authmgr/auth-service/internal/core/domain"
	"github.com/authmgr/auth-service/internal/core/ports"
)

// UserService implements the authenticated profile surface. The subject id is
// always re-resolved against the store, so operations on a deleted account
// fail even while its token is still within expiry.
type UserService struct {
	repo ports.UserRepository
}

func NewUserService(repo ports.UserRepository) *UserService {
	return &UserService{repo: repo}
}

// GetSelf returns the caller's own profile.
func (s *UserService) GetSelf(ctx context.Context, subjectID string) (*domain.User, error) {
	return s.repo.FindByID(ctx, subjectID)
}

// UpdateSelf applies only the provided display fields and returns the updated
// profile. Username and password cannot change through this operation.
func (s *UserService) UpdateSelf(ctx context.Context, subjectID string, update domain.ProfileUpdate) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, subjectID)
	if err != nil {
		return nil, err
	}

	if update.FirstName != nil {
		user.FirstName = *update.FirstName
	}
	if update.LastName != nil {
		user.LastName = *update.LastName
	}
	user.UpdatedAt = time.Now().UTC()

	return s.repo.Update(ctx, user)
}

// DeleteSelf removes the caller's record from the store.
func (s *UserService) DeleteSelf(ctx context.Context, subjectID string) error {
	if _, err := s.repo.FindByID(ctx, subjectID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, subjectID)
}
