package redis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	failureWindow = 15 * time.Minute
	lockout       = 15 * time.Minute
	maxFailures   = 5
)

// LoginLimiter throttles login attempts per (username, client IP) using
// Redis. After maxFailures failed attempts inside failureWindow the pair is
// blocked for the lockout duration. IPs are stored hashed, never raw.
// Key format: login_fail:<username>:<ip_hash> / login_block:<username>:<ip_hash>
type LoginLimiter struct {
	client *redis.Client
}

// NewLoginLimiter creates a LoginLimiter wrapping the given Redis client.
func NewLoginLimiter(client *redis.Client) *LoginLimiter {
	return &LoginLimiter{client: client}
}

// Allow reports whether a login attempt for this (username, ip) may proceed.
func (l *LoginLimiter) Allow(ctx context.Context, username, ip string) (bool, error) {
	n, err := l.client.Exists(ctx, l.blockKey(username, ip)).Result()
	if err != nil {
		return false, fmt.Errorf("limiter allow: %w", err)
	}
	return n == 0, nil
}

// Failure records a failed attempt and reports whether the pair is now blocked.
func (l *LoginLimiter) Failure(ctx context.Context, username, ip string) (bool, error) {
	key := l.failKey(username, ip)

	count, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("limiter failure: %w", err)
	}
	if count == 1 {
		_ = l.client.Expire(ctx, key, failureWindow).Err()
	}
	if count < maxFailures {
		return false, nil
	}

	if err := l.client.Set(ctx, l.blockKey(username, ip), "1", lockout).Err(); err != nil {
		return false, fmt.Errorf("limiter block: %w", err)
	}
	return true, nil
}

// Success resets the counters after a successful login (best-effort).
func (l *LoginLimiter) Success(ctx context.Context, username, ip string) error {
	return l.client.Del(ctx, l.failKey(username, ip), l.blockKey(username, ip)).Err()
}

func (l *LoginLimiter) failKey(username, ip string) string {
	return fmt.Sprintf("login_fail:%s:%s", username, hashIP(ip))
}

func (l *LoginLimiter) blockKey(username, ip string) string {
	return fmt.Sprintf("login_block:%s:%s", username, hashIP(ip))
}

func hashIP(ip string) string {
	sum := sha256.Sum256([]byte(ip))
	return hex.EncodeToString(sum[:8])
}
