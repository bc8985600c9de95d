package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/authmgr/auth-service/internal/core/domain"
	"github.com/authmgr/auth-service/internal/core/ports"
	"github.com/authmgr/auth-service/internal/core/token"
)

// AuthService implements registration, login and token renewal. The service
// itself is stateless; all state lives in the repository and the limiter.
type AuthService struct {
	repo   ports.UserRepository
	hasher ports.PasswordHasher
	codec  *token.Codec
	lim    ports.LoginLimiter
}

func NewAuthService(repo ports.UserRepository, hasher ports.PasswordHasher, codec *token.Codec, lim ports.LoginLimiter) *AuthService {
	return &AuthService{repo: repo, hasher: hasher, codec: codec, lim: lim}
}

// Register creates a user and returns a token bound to the new id. All
// missing or blank required fields are reported together in one
// ValidationError.
func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (string, error) {
	ve := domain.NewValidationError()
	if strings.TrimSpace(in.Username) == "" {
		ve.Add("username", "this field may not be blank")
	}
	if in.Password == "" {
		ve.Add("password", "this field may not be blank")
	}
	if !ve.Empty() {
		return "", ve
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	created, err := s.repo.Create(ctx, &domain.User{
		Username:     in.Username,
		PasswordHash: hash,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
	})
	if err != nil {
		return "", err
	}

	return s.codec.Encode(created.ID)
}

// Login authenticates username/password and mints a token. An unknown
// username and a wrong password produce the same failure, and no token is
// minted until the hash check has passed. Attempts are throttled per
// (username, ip).
func (s *AuthService) Login(ctx context.Context, username, password, ip string) (string, error) {
	if username == "" || password == "" {
		return "", domain.ErrInvalidCredentials
	}

	allowed, err := s.lim.Allow(ctx, username, ip)
	if err != nil {
		return "", fmt.Errorf("login limiter: %w", err)
	}
	if !allowed {
		return "", domain.ErrRateLimited
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if !errors.Is(err, domain.ErrUserNotFound) {
			return "", fmt.Errorf("find user: %w", err)
		}
		// Burn a hash comparison so an unknown username costs the same as a
		// wrong password.
		s.hasher.Verify(password, dummyPasswordHash)
		return "", s.loginFailure(ctx, username, ip)
	}
	if !s.hasher.Verify(password, user.PasswordHash) {
		return "", s.loginFailure(ctx, username, ip)
	}

	_ = s.lim.Success(ctx, username, ip)

	return s.codec.Encode(user.ID)
}

// dummyPasswordHash is a throwaway bcrypt digest compared against on the
// unknown-username path. Unknown username and wrong password stay
// indistinguishable in both response and timing.
const dummyPasswordHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

func (s *AuthService) loginFailure(ctx context.Context, username, ip string) error {
	if blocked, err := s.lim.Failure(ctx, username, ip); err == nil && blocked {
		return domain.ErrRateLimited
	}
	return domain.ErrInvalidCredentials
}

// VerifyToken decodes raw, re-resolves its subject against the live store and
// mints a fresh token for the same subject with a strictly later issued-at. Every decode failure (and a
// deleted subject) collapses to ErrInvalidToken outward; the underlying
// reason stays in the wrapped error for logging.
func (s *AuthService) VerifyToken(ctx context.Context, raw string) (string, error) {
	claims, err := s.codec.Decode(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrInvalidToken, err)
	}

	user, err := s.repo.FindByID(ctx, claims.Subject)
	if err != nil {
		return "", fmt.Errorf("%w: subject no longer exists", domain.ErrInvalidToken)
	}

	return s.codec.Renew(user.ID, claims)
}

// RefreshToken renews a valid token. The contract is identical to
// VerifyToken: decode the old token, mint a new one.
func (s *AuthService) RefreshToken(ctx context.Context, raw string) (string, error) {
	return s.VerifyToken(ctx, raw)
}
