package models

import (
	"errors"
	"testing"
)

func TestValidateRequired(t *testing.T) {
	if err := ValidateRequired("value", "prompt"); err != nil {
		t.Errorf("Unexpected error for non-empty value: %v", err)
	}

	err := ValidateRequired("   ", "prompt")
	if err == nil {
		t.Fatal("Expected error for whitespace-only value")
	}

	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("Expected ValidationError, got %T", err)
	}
	if vErr.Field != "prompt" {
		t.Errorf("Expected field 'prompt', got %q", vErr.Field)
	}
}

func TestValidateEnum(t *testing.T) {
	allowed := []string{"structured", "embedded"}

	if err := ValidateEnum("embedded", allowed, "response_mode"); err != nil {
		t.Errorf("Unexpected error for allowed value: %v", err)
	}
	if err := ValidateEnum("freestyle", allowed, "response_mode"); err == nil {
		t.Error("Expected error for disallowed value")
	}
}
