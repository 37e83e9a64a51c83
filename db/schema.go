// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	"github.com/danielhkuo/quizdesk/auth"
	"github.com/danielhkuo/quizdesk/models"
)

// Init creates all tables and makes sure the bootstrap admin exists.
// Safe to call multiple times - uses IF NOT EXISTS and never duplicates rows.
func (s *Store) Init(ctx context.Context) error {
	return s.withTx(ctx, "init schema", func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, schemaFor(s.dialect)); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
		return bootstrapAdmin(ctx, tx)
	})
}

// bootstrapAdmin guarantees exactly one admin account. An existing admin keeps
// its password unless it is still stored in plaintext or is not a digest.
func bootstrapAdmin(ctx context.Context, tx *sql.Tx) error {
	digest := auth.HashPassword(auth.BootstrapAdminPassword)

	var admins int
	err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM users WHERE role = $1`, string(models.RoleAdmin)).Scan(&admins)
	if err != nil {
		return fmt.Errorf("failed to count admins: %w", err)
	}

	if admins == 0 {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO users (username, password, role)
			VALUES ($1, $2, $3)
			ON CONFLICT (username) DO UPDATE SET password = excluded.password, role = excluded.role
		`, auth.BootstrapAdminUsername, digest, string(models.RoleAdmin))
		if err != nil {
			return fmt.Errorf("failed to create admin: %w", err)
		}
		slog.Info("bootstrap admin created", "username", auth.BootstrapAdminUsername)
		return nil
	}

	res, err := tx.ExecContext(ctx, `
		UPDATE users
		SET password = $1
		WHERE username = $2 AND (password = $3 OR LENGTH(password) <> $4)
	`, digest, auth.BootstrapAdminUsername, auth.BootstrapAdminPassword, auth.DigestLength)
	if err != nil {
		return fmt.Errorf("failed to rehash admin password: %w", err)
	}
	if n, _ := res.RowsAffected(); n > 0 {
		slog.Info("bootstrap admin password rehashed", "username", auth.BootstrapAdminUsername)
	}
	return nil
}

func schemaFor(d Dialect) string {
	pk := "INTEGER PRIMARY KEY AUTOINCREMENT"
	if d == Postgres {
		pk = "BIGSERIAL PRIMARY KEY"
	}
	return strings.ReplaceAll(schema, "{{pk}}", pk)
}

const schema = `
-- Accounts
CREATE TABLE IF NOT EXISTS users (
    id {{pk}},
    username TEXT NOT NULL UNIQUE,
    password TEXT NOT NULL,
    role TEXT NOT NULL CHECK (role IN ('admin', 'user'))
);

-- Quizzes
CREATE TABLE IF NOT EXISTS quizzes (
    id {{pk}},
    title TEXT NOT NULL CHECK (title <> ''),
    description TEXT NOT NULL DEFAULT '',
    created_by BIGINT NOT NULL REFERENCES users(id),
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_quizzes_title ON quizzes(title);

-- Questions
CREATE TABLE IF NOT EXISTS questions (
    id {{pk}},
    quiz_id BIGINT NOT NULL REFERENCES quizzes(id) ON DELETE CASCADE,
    question_text TEXT NOT NULL CHECK (question_text <> ''),
    question_type TEXT NOT NULL CHECK (question_type IN ('single_choice', 'multiple_choice')),
    points INTEGER NOT NULL DEFAULT 1 CHECK (points > 0)
);

CREATE INDEX IF NOT EXISTS idx_questions_quiz_id ON questions(quiz_id);

-- Options
CREATE TABLE IF NOT EXISTS options (
    id {{pk}},
    question_id BIGINT NOT NULL REFERENCES questions(id) ON DELETE CASCADE,
    option_text TEXT NOT NULL CHECK (option_text <> ''),
    is_correct BOOLEAN NOT NULL DEFAULT FALSE
);

CREATE INDEX IF NOT EXISTS idx_options_question_id ON options(question_id);

-- Responses (append-only)
CREATE TABLE IF NOT EXISTS responses (
    id {{pk}},
    user_id BIGINT NOT NULL REFERENCES users(id),
    question_id BIGINT NOT NULL REFERENCES questions(id) ON DELETE CASCADE,
    selected_option_id BIGINT NOT NULL REFERENCES options(id) ON DELETE CASCADE,
    response_time TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_responses_user_question ON responses(user_id, question_id);

-- Scores (one row per submission)
CREATE TABLE IF NOT EXISTS scores (
    id {{pk}},
    user_id BIGINT NOT NULL REFERENCES users(id),
    quiz_id BIGINT NOT NULL REFERENCES quizzes(id) ON DELETE CASCADE,
    score INTEGER NOT NULL CHECK (score >= 0),
    total_points INTEGER NOT NULL CHECK (total_points >= 0),
    completed_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_scores_user_id ON scores(user_id);
`
