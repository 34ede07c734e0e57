package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when an update or delete targets a record
	// that does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrMissingArgument is returned by services when a required argument
	// is absent.
	ErrMissingArgument = errors.New("missing required argument")

	// ErrInvalidCredentials is returned on a failed login attempt. The
	// message deliberately does not say whether the email or the password
	// was wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// WeakPasswordMessage is the message carried by every WeakPasswordError.
const WeakPasswordMessage = "Password must be at least 8 characters long, contain at least one lowercase letter, one uppercase letter, and one digit."

// WeakPasswordError signals a password policy violation. It is raised
// before any store call is made.
type WeakPasswordError struct{}

func (e *WeakPasswordError) Error() string { return WeakPasswordMessage }

// IsWeakPassword reports whether err is a WeakPasswordError.
func IsWeakPassword(err error) bool {
	var wpe *WeakPasswordError
	return errors.As(err, &wpe)
}

// DuplicateKeyError signals a unique-index violation, naming the field.
type DuplicateKeyError struct {
	Field string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("%s must be unique", e.Field)
}

// IsDuplicateKey reports whether err is a DuplicateKeyError.
func IsDuplicateKey(err error) bool {
	var dke *DuplicateKeyError
	return errors.As(err, &dke)
}

// InvalidIdentifierError signals a malformed id passed where an
// identifier is required.
type InvalidIdentifierError struct {
	ID string
}

func (e *InvalidIdentifierError) Error() string {
	return fmt.Sprintf("invalid identifier: %q", e.ID)
}

// IsInvalidIdentifier reports whether err is an InvalidIdentifierError.
func IsInvalidIdentifier(err error) bool {
	var iie *InvalidIdentifierError
	return errors.As(err, &iie)
}

// ValidationError signals a schema-level required-field or format
// violation.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// NewValidationError builds a ValidationError from a format string.
func NewValidationError(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}
