package handler

import (
	"errors"
	"testing"

	"github.com/authmgr/auth-service/internal/core/domain"
)

func TestValidator_ReportsAllFieldsAtOnce(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&registerRequest{})
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(ve.Fields) != 2 {
		t.Fatalf("expected 2 flagged fields, got %v", ve.Fields)
	}
	for _, field := range []string{"username", "password"} {
		msgs, ok := ve.Fields[field]
		if !ok || len(msgs) == 0 {
			t.Fatalf("expected messages for %q: %v", field, ve.Fields)
		}
	}
}

func TestValidator_UsesJSONFieldNames(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&tokenRequest{})
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if _, ok := ve.Fields["token"]; !ok {
		t.Fatalf("expected json name 'token', got %v", ve.Fields)
	}
	if _, ok := ve.Fields["Token"]; ok {
		t.Fatalf("struct field name leaked: %v", ve.Fields)
	}
}

func TestValidator_PassesValidInput(t *testing.T) {
	v := NewValidator()

	if err := v.Validate(&registerRequest{Username: "user1", Password: "password"}); err != nil {
		t.Fatalf("expected valid input to pass, got %v", err)
	}
}
