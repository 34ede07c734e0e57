package util

import "testing"

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("Abcdef12")
	if err != nil {
		t.Fatalf("hash error: %v", err)
	}
	if hash == "Abcdef12" {
		t.Fatalf("hash must not equal the plaintext")
	}
	if !VerifyPassword("Abcdef12", hash) {
		t.Fatalf("expected password to match its hash")
	}
	if VerifyPassword("Abcdef13", hash) {
		t.Fatalf("expected wrong password to be rejected")
	}
}

func TestValidatePassword(t *testing.T) {
	cases := []struct {
		password string
		valid    bool
	}{
		{"Abcdef12", true},
		{"aB3aB3aB3", true},
		{"short", false},
		{"abcdefg1", false},  // no uppercase
		{"ABCDEFG1", false},  // no lowercase
		{"Abcdefgh", false},  // no digit
		{"Abcdef1", false},   // too short
		{"", false},
		{"Pa55word With Spaces", true},
	}
	for _, c := range cases {
		if got := ValidatePassword(c.password); got != c.valid {
			t.Errorf("ValidatePassword(%q) = %v, want %v", c.password, got, c.valid)
		}
	}
}

func TestNormalizeEmail(t *testing.T) {
	if got := NormalizeEmail("  Jane.Doe@School.LK "); got != "jane.doe@school.lk" {
		t.Errorf("NormalizeEmail = %q", got)
	}
}
