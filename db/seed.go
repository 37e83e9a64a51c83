// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/danielhkuo/quizdesk/models"
)

// SeedQuizzes inserts every draft whose title is not taken yet and reports how
// many quizzes were created. Drafts are expected to be validated by the caller.
func (s *Store) SeedQuizzes(ctx context.Context, createdBy int64, drafts []models.QuizDraft) (int, error) {
	created := 0
	err := s.withTx(ctx, "seed quizzes", func(tx *sql.Tx) error {
		for _, d := range drafts {
			var exists bool
			err := tx.QueryRowContext(ctx,
				`SELECT EXISTS (SELECT 1 FROM quizzes WHERE title = $1)`, d.Title).Scan(&exists)
			if err != nil {
				return err
			}
			if exists {
				slog.Debug("seed quiz already present", "title", d.Title)
				continue
			}

			quizID, err := insertQuiz(ctx, tx, d.Title, d.Description, createdBy)
			if err != nil {
				return err
			}
			for _, q := range d.Questions {
				if _, err := insertQuestion(ctx, tx, quizID, q); err != nil {
					return err
				}
			}
			created++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return created, nil
}
