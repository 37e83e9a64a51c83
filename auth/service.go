// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"context"
	"log/slog"
	"strings"

	"github.com/danielhkuo/quizdesk/models"
)

// UserStore is the slice of the storage engine the service needs.
type UserStore interface {
	GetUserByUsername(ctx context.Context, username string) (models.User, bool, error)
	CreateUser(ctx context.Context, username, passwordHash string, role models.Role) (int64, error)
}

// Service checks credentials and creates accounts.
type Service struct {
	store UserStore
}

func NewService(store UserStore) *Service {
	return &Service{store: store}
}

// Authenticate looks up the trimmed username exactly and compares password
// digests. A wrong password or unknown user yields ok == false with a nil
// error; the error is reserved for storage failures.
func (s *Service) Authenticate(ctx context.Context, username, password string) (models.User, bool, error) {
	username = strings.TrimSpace(username)
	user, found, err := s.store.GetUserByUsername(ctx, username)
	if err != nil {
		return models.User{}, false, err
	}
	if !found || user.PasswordHash != HashPassword(password) {
		slog.Warn("login rejected", "username", username)
		return models.User{}, false, nil
	}
	return user, true, nil
}

// Register creates a regular user account and returns its id. Surrounding
// whitespace is stripped from the username before any check.
func (s *Service) Register(ctx context.Context, username, password string) (int64, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return 0, models.Invalid("username", "Username is required")
	}
	if strings.TrimSpace(password) == "" {
		return 0, models.Invalid("password", "Password is required")
	}
	if strings.EqualFold(username, BootstrapAdminUsername) {
		return 0, &models.ValidationError{
			Field:   "username",
			Message: "Cannot register as 'admin'. Use the admin login instead.",
			Err:     models.ErrReservedUsername,
		}
	}

	_, exists, err := s.store.GetUserByUsername(ctx, username)
	if err != nil {
		return 0, err
	}
	if exists {
		return 0, &models.ValidationError{
			Field:   "username",
			Message: "Username already exists",
			Err:     models.ErrDuplicateUsername,
		}
	}

	id, err := s.store.CreateUser(ctx, username, HashPassword(password), models.RoleUser)
	if err != nil {
		return 0, err
	}
	slog.Info("user registered", "user_id", id, "username", username)
	return id, nil
}
