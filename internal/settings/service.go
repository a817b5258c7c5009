package settings

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"

	"github.com/Santykk/MERCADEO/internal/logger"
	"github.com/Santykk/MERCADEO/internal/user"

	"go.uber.org/zap"
)

type Service interface {
	GetSettings(ctx context.Context, ident user.Identity) (*UserSettings, error)
	CreateDefaults(ctx context.Context, ident user.Identity) error
	UpdateSettings(ctx context.Context, ident user.Identity, in UpdateSettingsInput) error
	EnableTwoFactor(ctx context.Context, ident user.Identity) (string, error)
	DisableTwoFactor(ctx context.Context, ident user.Identity) error
	DeleteAccount(ctx context.Context, ident user.Identity) error
}

type service struct {
	repo  Repository
	users user.Repository
}

func NewService(repo Repository, users user.Repository) Service {
	return &service{repo: repo, users: users}
}

// GetSettings returns nil without error when the user has no settings row
// yet; callers treat that as "use defaults".
func (s *service) GetSettings(ctx context.Context, ident user.Identity) (*UserSettings, error) {
	if ident.IsZero() {
		return nil, ErrUserNotAuthenticated
	}

	settings, err := s.repo.GetByUser(ctx, ident.UserID)
	if errors.Is(err, ErrSettingsNotFound) {
		return nil, nil
	}
	return settings, err
}

func (s *service) CreateDefaults(ctx context.Context, ident user.Identity) error {
	if ident.IsZero() {
		return ErrUserNotAuthenticated
	}
	return s.repo.CreateDefaults(ctx, ident.UserID)
}

func (s *service) UpdateSettings(ctx context.Context, ident user.Identity, in UpdateSettingsInput) error {
	if ident.IsZero() {
		return ErrUserNotAuthenticated
	}
	return s.repo.Update(ctx, ident.UserID, in)
}

// EnableTwoFactor generates a fresh secret, persists it, and returns it so
// the caller can deliver setup instructions.
func (s *service) EnableTwoFactor(ctx context.Context, ident user.Identity) (string, error) {
	if ident.IsZero() {
		return "", ErrUserNotAuthenticated
	}

	secret, err := generateSecret()
	if err != nil {
		return "", err
	}

	enabled := true
	err = s.repo.Update(ctx, ident.UserID, UpdateSettingsInput{
		TwoFactorEnabled: &enabled,
		TwoFactorSecret:  &secret,
	})
	if err != nil {
		return "", err
	}

	return secret, nil
}

func (s *service) DisableTwoFactor(ctx context.Context, ident user.Identity) error {
	if ident.IsZero() {
		return ErrUserNotAuthenticated
	}

	disabled := false
	return s.repo.Update(ctx, ident.UserID, UpdateSettingsInput{
		TwoFactorEnabled: &disabled,
		ClearTwoFactor:   true,
	})
}

// DeleteAccount removes the user's settings and profile rows. Secondary
// cleanup failures are logged and skipped so the deletion flow always
// completes; removing the auth record itself is an admin operation outside
// this service.
func (s *service) DeleteAccount(ctx context.Context, ident user.Identity) error {
	if ident.IsZero() {
		return ErrUserNotAuthenticated
	}

	log := logger.FromCtx(ctx).With(zap.String("user_id", ident.UserID.String()))

	if err := s.repo.DeleteByUser(ctx, ident.UserID); err != nil {
		log.Error("failed to delete user settings", zap.Error(err))
	}

	if err := s.users.DeleteProfile(ctx, ident.UserID); err != nil {
		log.Error("failed to delete user profile", zap.Error(err))
	}

	return nil
}

func generateSecret() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
