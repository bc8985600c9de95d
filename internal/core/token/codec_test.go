package token

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func newTestCodec(secret string, ttl time.Duration) *Codec {
	return NewCodec([]byte(secret), ttl, "v1")
}

func TestCodec_RoundTrip(t *testing.T) {
	c := newTestCodec("secret", time.Hour)

	raw, err := c.Encode("user-42")
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	claims, err := c.Decode(raw)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if claims.Subject != "user-42" {
		t.Fatalf("expected subject user-42, got %q", claims.Subject)
	}
	if claims.APIVersion != "v1" {
		t.Fatalf("expected apiVersion v1, got %q", claims.APIVersion)
	}
	if claims.IssuedAt == nil || claims.ExpiresAt == nil {
		t.Fatalf("expected issued-at and expiry claims")
	}
	if got := claims.ExpiresAt.Sub(claims.IssuedAt.Time); got != time.Hour {
		t.Fatalf("expected 1h lifetime, got %v", got)
	}
}

func TestCodec_RenewWithinSameSecond(t *testing.T) {
	c := newTestCodec("secret", time.Hour)
	// Freeze the clock so the renewal lands in the same second as the original.
	frozen := time.Now().UTC()
	c.now = func() time.Time { return frozen }

	raw, err := c.Encode("user-42")
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	old, err := c.Decode(raw)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	renewed, err := c.Renew("user-42", old)
	if err != nil {
		t.Fatalf("renew: %v", err)
	}
	fresh, err := c.Decode(renewed)
	if err != nil {
		t.Fatalf("decode renewed: %v", err)
	}

	if !fresh.IssuedAt.After(old.IssuedAt.Time) {
		t.Fatalf("renewed issued-at %v is not strictly later than %v", fresh.IssuedAt.Time, old.IssuedAt.Time)
	}
	if !fresh.ExpiresAt.After(old.ExpiresAt.Time) {
		t.Fatalf("renewed expiry %v is not strictly later than %v", fresh.ExpiresAt.Time, old.ExpiresAt.Time)
	}
}

func TestCodec_RenewAfterDelayUsesWallClock(t *testing.T) {
	c := newTestCodec("secret", time.Hour)
	c.now = func() time.Time { return time.Now().Add(-10 * time.Minute) }

	raw, err := c.Encode("user-42")
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	old, err := c.Decode(raw)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	c.now = time.Now
	renewed, err := c.Renew("user-42", old)
	if err != nil {
		t.Fatalf("renew: %v", err)
	}
	fresh, err := c.Decode(renewed)
	if err != nil {
		t.Fatalf("decode renewed: %v", err)
	}

	// Well past the old issued-at, so the floor must not apply.
	if got := fresh.IssuedAt.Sub(old.IssuedAt.Time); got < 9*time.Minute {
		t.Fatalf("expected renewed issued-at near the wall clock, got %v after the original", got)
	}
}

func TestCodec_EmptySubject(t *testing.T) {
	c := newTestCodec("secret", time.Hour)
	if _, err := c.Encode(""); err == nil {
		t.Fatalf("expected error for empty subject")
	}
}

func TestCodec_Expired(t *testing.T) {
	c := newTestCodec("secret", time.Minute)
	c.now = func() time.Time { return time.Now().Add(-time.Hour) }

	raw, err := c.Encode("user-42")
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	c.now = time.Now
	if _, err := c.Decode(raw); !errors.Is(err, ErrExpired) {
		t.Fatalf("expected ErrExpired, got %v", err)
	}
}

func TestCodec_ExpiredWithinLeeway(t *testing.T) {
	c := newTestCodec("secret", time.Minute)
	// Expired 10s ago: inside the 30s leeway, still accepted.
	c.now = func() time.Time { return time.Now().Add(-time.Minute - 10*time.Second) }

	raw, err := c.Encode("user-42")
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	c.now = time.Now
	if _, err := c.Decode(raw); err != nil {
		t.Fatalf("expected token inside leeway to decode, got %v", err)
	}
}

func TestCodec_TamperedPayload(t *testing.T) {
	c := newTestCodec("secret", time.Hour)

	raw, err := c.Encode("user-42")
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	parts := strings.Split(raw, ".")
	if len(parts) != 3 {
		t.Fatalf("expected compact JWT, got %q", raw)
	}
	payload := []byte(parts[1])
	if payload[0] == 'A' {
		payload[0] = 'B'
	} else {
		payload[0] = 'A'
	}

	tampered := parts[0] + "." + string(payload) + "." + parts[2]
	_, err = c.Decode(tampered)
	if err == nil {
		t.Fatalf("expected decode failure for tampered payload")
	}
	if !errors.Is(err, ErrSignatureInvalid) && !errors.Is(err, ErrMalformed) {
		t.Fatalf("expected signature/malformed failure, got %v", err)
	}
}

func TestCodec_TamperedSignature(t *testing.T) {
	c := newTestCodec("secret", time.Hour)

	raw, err := c.Encode("user-42")
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	parts := strings.Split(raw, ".")
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}

	tampered := parts[0] + "." + parts[1] + "." + string(sig)
	if _, err := c.Decode(tampered); !errors.Is(err, ErrSignatureInvalid) {
		t.Fatalf("expected ErrSignatureInvalid, got %v", err)
	}
}

func TestCodec_WrongSecret(t *testing.T) {
	raw, err := newTestCodec("secret-a", time.Hour).Encode("user-42")
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	if _, err := newTestCodec("secret-b", time.Hour).Decode(raw); !errors.Is(err, ErrSignatureInvalid) {
		t.Fatalf("expected ErrSignatureInvalid, got %v", err)
	}
}

func TestCodec_Malformed(t *testing.T) {
	c := newTestCodec("secret", time.Hour)
	for _, raw := range []string{"", "garbage", "a.b", "a.b.c.d"} {
		if _, err := c.Decode(raw); !errors.Is(err, ErrMalformed) {
			t.Fatalf("Decode(%q): expected ErrMalformed, got %v", raw, err)
		}
	}
}

func TestCodec_RejectsUnsignedAlg(t *testing.T) {
	c := newTestCodec("secret", time.Hour)

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   "user-42",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	raw, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := c.Decode(raw); err == nil {
		t.Fatalf("expected decode failure for alg=none token")
	}
}

func TestCodec_MissingExpiry(t *testing.T) {
	c := newTestCodec("secret", time.Hour)

	noExp := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "user-42"})
	raw, err := noExp.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := c.Decode(raw); err == nil {
		t.Fatalf("expected decode failure for token without expiry")
	}
}

func TestCodec_UnknownClaimsIgnored(t *testing.T) {
	c := newTestCodec("secret", time.Hour)

	// A token from a future issuer with extra claims still decodes.
	extra := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":        "user-42",
		"apiVersion": "v2",
		"exp":        time.Now().Add(time.Hour).Unix(),
		"iat":        time.Now().Unix(),
		"tenant":     "acme",
	})
	raw, err := extra.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	claims, err := c.Decode(raw)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if claims.Subject != "user-42" || claims.APIVersion != "v2" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}
