package service

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"staffhub/internal/config"
	"staffhub/internal/model"
	"staffhub/internal/repository"
	"staffhub/pkg/apperr"
	"staffhub/pkg/util"
)

// AuthService handles login and the password-reset flow
type AuthService struct {
	users  repository.IUserRepository
	resets repository.IPasswordResetRepository
	cfg    *config.Config
}

// NewAuthService creates a new auth service
func NewAuthService(cfg *config.Config, users repository.IUserRepository, resets repository.IPasswordResetRepository) *AuthService {
	return &AuthService{users: users, resets: resets, cfg: cfg}
}

// Login verifies the credentials and issues a signed token. Unknown
// email and wrong password fail identically.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	user, err := s.users.FindOne(ctx, model.UserFilter{Email: email})
	if err != nil {
		return "", nil, err
	}
	if user == nil || !user.Active || user.Archived {
		return "", nil, apperr.ErrInvalidCredentials
	}
	if !util.VerifyPassword(password, user.Password) {
		return "", nil, apperr.ErrInvalidCredentials
	}

	token, err := s.issueToken(user.ID.Hex())
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *AuthService) issueToken(subject string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.Auth.TokenTTL)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.Auth.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ValidateToken parses a signed token and returns the user id it was
// issued for.
func (s *AuthService) ValidateToken(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.cfg.Auth.JWTSecret), nil
	})
	if err != nil {
		return "", err
	}
	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", fmt.Errorf("token carries no subject")
	}
	return claims.Subject, nil
}

// RequestPasswordReset creates a single-use reset token for the account
// with the given email and returns its value. Delivery (mail, SMS) is
// outside this layer.
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) (string, error) {
	if email == "" {
		return "", apperr.ErrMissingArgument
	}
	user, err := s.users.FindOne(ctx, model.UserFilter{Email: email})
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", apperr.ErrNotFound
	}

	record, err := s.resets.Create(ctx, &model.PasswordResetToken{
		UserID: user.ID,
		Token:  uuid.NewString(),
	})
	if err != nil {
		return "", err
	}
	return record.Token, nil
}

// ResetPassword consumes the token and sets the new password through
// the user repository, which enforces the password policy and hashing.
// Consuming deletes the token, so a second attempt with the same token
// fails with ErrNotFound.
func (s *AuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	if token == "" || newPassword == "" {
		return apperr.ErrMissingArgument
	}
	// Check the policy before consuming: a weak password must not burn
	// the single-use token.
	if !util.ValidatePassword(newPassword) {
		return &apperr.WeakPasswordError{}
	}
	record, err := s.resets.Consume(ctx, token)
	if err != nil {
		return err
	}
	if record == nil {
		return apperr.ErrNotFound
	}

	updated, err := s.users.UpdateOne(ctx,
		model.UserFilter{ID: &record.UserID},
		model.UserUpdate{Password: &newPassword},
	)
	if err != nil {
		return err
	}
	if updated == nil {
		return apperr.ErrNotFound
	}
	return nil
}
