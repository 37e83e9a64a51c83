// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"

	"github.com/danielhkuo/quizdesk/models"
)

// GetUserByUsername looks a user up by exact (case-sensitive) username.
func (s *Store) GetUserByUsername(ctx context.Context, username string) (models.User, bool, error) {
	return s.getUser(ctx, "get user by username", `
		SELECT id, username, password, role FROM users WHERE username = $1
	`, username)
}

func (s *Store) GetUserByID(ctx context.Context, id int64) (models.User, bool, error) {
	return s.getUser(ctx, "get user by id", `
		SELECT id, username, password, role FROM users WHERE id = $1
	`, id)
}

func (s *Store) getUser(ctx context.Context, op, query string, arg any) (models.User, bool, error) {
	var (
		user  models.User
		role  string
		found bool
	)
	err := s.withTx(ctx, op, func(tx *sql.Tx) error {
		err := tx.QueryRowContext(ctx, query, arg).Scan(&user.ID, &user.Username, &user.PasswordHash, &role)
		if err == sql.ErrNoRows {
			return nil
		}
		if err != nil {
			return err
		}
		found = true
		user.Role = models.Role(role)
		return nil
	})
	if err != nil || !found {
		return models.User{}, false, err
	}
	return user, true, nil
}

// CreateUser inserts an account with an already hashed password.
func (s *Store) CreateUser(ctx context.Context, username, passwordHash string, role models.Role) (int64, error) {
	var id int64
	err := s.withTx(ctx, "create user", func(tx *sql.Tx) error {
		err := tx.QueryRowContext(ctx, `
			INSERT INTO users (username, password, role)
			VALUES ($1, $2, $3)
			RETURNING id
		`, username, passwordHash, string(role)).Scan(&id)
		if isUniqueViolation(err) {
			return &models.ValidationError{
				Field:   "username",
				Message: "Username already exists",
				Err:     models.ErrDuplicateUsername,
			}
		}
		return err
	})
	return id, err
}
