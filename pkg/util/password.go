package util

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"
)

const (
	// BCryptCost is the cost factor for bcrypt password hashing.
	BCryptCost = 12
	// MinPasswordLength is the minimum accepted password length.
	MinPasswordLength = 8
)

// HashPassword hashes a plaintext password using bcrypt.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), BCryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword compares a plaintext password with its bcrypt hash.
func VerifyPassword(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// ValidatePassword reports whether a password satisfies the policy:
// at least 8 characters with one lowercase letter, one uppercase letter
// and one digit.
func ValidatePassword(password string) bool {
	if len(password) < MinPasswordLength {
		return false
	}
	var lower, upper, digit bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	return lower && upper && digit
}

// NormalizeEmail lowercases and trims an email address. Emails are stored
// lowercase so the unique index is case-insensitive in practice as well.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
