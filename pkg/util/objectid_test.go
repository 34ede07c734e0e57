package util

import (
	"testing"

	"staffhub/pkg/apperr"
)

func TestParseObjectID(t *testing.T) {
	oid := GenerateObjectID()
	parsed, err := ParseObjectID(oid.Hex())
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if parsed != oid {
		t.Fatalf("round trip mismatch: %v != %v", parsed, oid)
	}

	_, err = ParseObjectID("not-an-id")
	if !apperr.IsInvalidIdentifier(err) {
		t.Fatalf("expected InvalidIdentifierError, got %v", err)
	}
	if IsValidObjectID("not-an-id") {
		t.Fatalf("expected invalid hex to be rejected")
	}
}
