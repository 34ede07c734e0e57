package apperr

import (
	"errors"
	"fmt"
	"testing"
)

func TestWeakPasswordError(t *testing.T) {
	err := fmt.Errorf("update failed: %w", &WeakPasswordError{})
	if !IsWeakPassword(err) {
		t.Fatalf("expected wrapped WeakPasswordError to be detected")
	}
	if IsWeakPassword(errors.New("other")) {
		t.Fatalf("unrelated error misclassified")
	}
}

func TestDuplicateKeyError(t *testing.T) {
	err := &DuplicateKeyError{Field: "email"}
	if err.Error() != "email must be unique" {
		t.Fatalf("message = %q", err.Error())
	}
	if !IsDuplicateKey(fmt.Errorf("insert: %w", err)) {
		t.Fatalf("expected wrapped DuplicateKeyError to be detected")
	}
}

func TestInvalidIdentifierError(t *testing.T) {
	if !IsInvalidIdentifier(&InvalidIdentifierError{ID: "xx"}) {
		t.Fatalf("expected InvalidIdentifierError to be detected")
	}
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("%s is required", "Email")
	var ve *ValidationError
	if !errors.As(err, &ve) || ve.Message != "Email is required" {
		t.Fatalf("unexpected validation error: %v", err)
	}
}
