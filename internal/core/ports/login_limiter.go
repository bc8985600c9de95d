package ports

import "context"

// LoginLimiter throttles login attempts per (username, client IP).
type LoginLimiter interface {
	// Allow reports whether a login attempt may proceed right now.
	Allow(ctx context.Context, username, ip string) (bool, error)
	// Failure records a failed attempt and reports whether the pair is now
	// blocked.
	Failure(ctx context.Context, username, ip string) (bool, error)
	// Success resets the failure counter after a successful login.
	Success(ctx context.Context, username, ip string) error
}
