// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/danielhkuo/quizdesk/models"
)

// RecordSubmission appends the response rows, grades them against the current
// state of the quiz and stores one score row. Everything happens in one
// transaction: on failure nothing is persisted.
//
// Pairs referencing a question or option deleted since the session started are
// dropped, since they can no longer satisfy the foreign keys.
func (s *Store) RecordSubmission(ctx context.Context, sub models.Submission, grade models.GradeFunc) (models.Score, error) {
	var score models.Score
	err := s.withTx(ctx, "record submission", func(tx *sql.Tx) error {
		if _, ok, err := getQuiz(ctx, tx, sub.QuizID); err != nil {
			return err
		} else if !ok {
			return &models.NotFoundError{Entity: "quiz", ID: sub.QuizID}
		}

		questions, err := loadQuestions(ctx, tx, sub.QuizID)
		if err != nil {
			return err
		}
		live := make(map[int64]models.Question, len(questions))
		for _, q := range questions {
			live[q.ID] = q
		}

		now := time.Now().UTC()
		for _, pair := range sub.Responses {
			q, ok := live[pair.QuestionID]
			if !ok || !q.HasOption(pair.SelectedOptionID) {
				slog.Warn("dropping stale response",
					"user_id", sub.UserID,
					"question_id", pair.QuestionID,
					"option_id", pair.SelectedOptionID)
				continue
			}
			_, err := tx.ExecContext(ctx, `
				INSERT INTO responses (user_id, question_id, selected_option_id, response_time)
				VALUES ($1, $2, $3, $4)
			`, sub.UserID, pair.QuestionID, pair.SelectedOptionID, now)
			if err != nil {
				return err
			}
		}

		earned, total := grade(questions)
		score = models.Score{
			UserID:      sub.UserID,
			QuizID:      sub.QuizID,
			Score:       earned,
			TotalPoints: total,
			CompletedAt: now,
		}
		return tx.QueryRowContext(ctx, `
			INSERT INTO scores (user_id, quiz_id, score, total_points, completed_at)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id
		`, score.UserID, score.QuizID, score.Score, score.TotalPoints, score.CompletedAt).Scan(&score.ID)
	})
	if err != nil {
		return models.Score{}, err
	}
	return score, nil
}

// ListUserScores returns a user's submissions, newest first, with quiz titles.
func (s *Store) ListUserScores(ctx context.Context, userID int64) ([]models.ScoreEntry, error) {
	entries := []models.ScoreEntry{}
	err := s.withTx(ctx, "list user scores", func(tx *sql.Tx) error {
		rows, err := tx.QueryContext(ctx, `
			SELECT s.id, s.user_id, s.quiz_id, s.score, s.total_points, s.completed_at, q.title
			FROM scores s
			JOIN quizzes q ON q.id = s.quiz_id
			WHERE s.user_id = $1
			ORDER BY s.completed_at DESC, s.id DESC
		`, userID)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var e models.ScoreEntry
			if err := rows.Scan(&e.ID, &e.UserID, &e.QuizID, &e.Score.Score, &e.TotalPoints, &e.CompletedAt, &e.QuizTitle); err != nil {
				return err
			}
			entries = append(entries, e)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// ListResponses returns the stored answers of a user for one quiz in insertion order.
func (s *Store) ListResponses(ctx context.Context, userID, quizID int64) ([]models.Response, error) {
	responses := []models.Response{}
	err := s.withTx(ctx, "list responses", func(tx *sql.Tx) error {
		rows, err := tx.QueryContext(ctx, `
			SELECT r.id, r.user_id, r.question_id, r.selected_option_id, r.response_time
			FROM responses r
			JOIN questions q ON q.id = r.question_id
			WHERE r.user_id = $1 AND q.quiz_id = $2
			ORDER BY r.id
		`, userID, quizID)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var r models.Response
			if err := rows.Scan(&r.ID, &r.UserID, &r.QuestionID, &r.SelectedOptionID, &r.ResponseTime); err != nil {
				return err
			}
			responses = append(responses, r)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return responses, nil
}
