// Package token implements the signed-token codec: a claim set is serialized
// to a compact HS256 JWT and decoded back with the signature and expiry
// enforced server-side on every call.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Leeway is the fixed clock-skew tolerance applied to expiry comparison.
const Leeway = 30 * time.Second

var (
	// ErrMalformed indicates the token does not have the expected structural
	// shape.
	ErrMalformed = errors.New("token malformed")

	// ErrSignatureInvalid indicates the signature does not match the payload.
	ErrSignatureInvalid = errors.New("token signature invalid")

	// ErrExpired indicates the token is past its expiry (beyond Leeway).
	ErrExpired = errors.New("token expired")
)

// Claims is the versioned claim schema embedded in every token. The schema is
// open: unknown claims from older or newer issuers are ignored on decode, and
// APIVersion lets verifiers detect future claim-shape changes.
type Claims struct {
	APIVersion string `json:"apiVersion"`
	jwt.RegisteredClaims
}

// Codec encodes and decodes signed tokens with a process-wide secret. It holds
// no mutable state after construction and is safe for concurrent use.
type Codec struct {
	secret     []byte
	ttl        time.Duration
	apiVersion string
	parser     *jwt.Parser

	// now is swapped in tests to control the clock.
	now func() time.Time
}

// NewCodec builds a Codec signing with secret for tokens valid for ttl.
func NewCodec(secret []byte, ttl time.Duration, apiVersion string) *Codec {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &Codec{
		secret:     secret,
		ttl:        ttl,
		apiVersion: apiVersion,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithLeeway(Leeway),
			jwt.WithExpirationRequired(),
		),
		now: time.Now,
	}
}

// Encode mints a signed token for the given subject with fresh issued-at and
// expiry claims.
func (c *Codec) Encode(subject string) (string, error) {
	return c.mint(subject, c.now().UTC())
}

// Renew mints a replacement token for the given subject. The new issued-at is
// guaranteed strictly later than prev's at wire precision (whole seconds), so
// a renewal within the same second as the original still advances the clock.
func (c *Codec) Renew(subject string, prev *Claims) (string, error) {
	now := c.now().UTC()
	if prev != nil && prev.IssuedAt != nil {
		if floor := prev.IssuedAt.Add(time.Second); now.Before(floor) {
			now = floor
		}
	}
	return c.mint(subject, now)
}

func (c *Codec) mint(subject string, now time.Time) (string, error) {
	if subject == "" {
		return "", errors.New("token: empty subject")
	}

	claims := Claims{
		APIVersion: c.apiVersion,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(c.secret)
}

// Decode verifies the signature and expiry of raw and returns its claims.
// Failures are distinguishable by the caller: ErrMalformed, ErrSignatureInvalid
// or ErrExpired. Signature comparison is constant-time (HMAC verification
// inside golang-jwt).
func (c *Codec) Decode(raw string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := c.parser.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		return c.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrTokenUnverifiable):
			return nil, ErrSignatureInvalid
		default:
			return nil, ErrMalformed
		}
	}
	if !parsed.Valid || claims.Subject == "" {
		return nil, ErrMalformed
	}
	return claims, nil
}

// TTL returns the configured token lifetime.
func (c *Codec) TTL() time.Duration {
	return c.ttl
}
