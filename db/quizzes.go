// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/danielhkuo/quizdesk/models"
)

// ListQuizzes returns every quiz sorted by title.
func (s *Store) ListQuizzes(ctx context.Context) ([]models.Quiz, error) {
	quizzes := []models.Quiz{}
	err := s.withTx(ctx, "list quizzes", func(tx *sql.Tx) error {
		rows, err := tx.QueryContext(ctx, `
			SELECT id, title, description, created_by, created_at
			FROM quizzes
			ORDER BY title ASC, id ASC
		`)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var q models.Quiz
			if err := rows.Scan(&q.ID, &q.Title, &q.Description, &q.CreatedBy, &q.CreatedAt); err != nil {
				return err
			}
			quizzes = append(quizzes, q)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return quizzes, nil
}

// GetQuiz returns the quiz header without its questions.
func (s *Store) GetQuiz(ctx context.Context, id int64) (models.Quiz, bool, error) {
	var (
		quiz  models.Quiz
		found bool
	)
	err := s.withTx(ctx, "get quiz", func(tx *sql.Tx) error {
		var err error
		quiz, found, err = getQuiz(ctx, tx, id)
		return err
	})
	return quiz, found, err
}

// GetQuizWithQuestions returns the quiz with its questions and their options,
// both in creation order.
func (s *Store) GetQuizWithQuestions(ctx context.Context, id int64) (models.QuizWithQuestions, bool, error) {
	var (
		result models.QuizWithQuestions
		found  bool
	)
	err := s.withTx(ctx, "get quiz with questions", func(tx *sql.Tx) error {
		quiz, ok, err := getQuiz(ctx, tx, id)
		if err != nil || !ok {
			return err
		}
		questions, err := loadQuestions(ctx, tx, id)
		if err != nil {
			return err
		}
		result = models.QuizWithQuestions{Quiz: quiz, Questions: questions}
		found = true
		return nil
	})
	if err != nil || !found {
		return models.QuizWithQuestions{}, false, err
	}
	return result, true, nil
}

// GetQuestion returns a single question with its options.
func (s *Store) GetQuestion(ctx context.Context, id int64) (models.Question, bool, error) {
	var (
		question models.Question
		found    bool
	)
	err := s.withTx(ctx, "get question", func(tx *sql.Tx) error {
		var typeName string
		err := tx.QueryRowContext(ctx, `
			SELECT id, quiz_id, question_text, question_type, points
			FROM questions
			WHERE id = $1
		`, id).Scan(&question.ID, &question.QuizID, &question.Text, &typeName, &question.Points)
		if err == sql.ErrNoRows {
			return nil
		}
		if err != nil {
			return err
		}
		if question.Type, err = models.ParseQuestionType(typeName); err != nil {
			return err
		}

		rows, err := tx.QueryContext(ctx, `
			SELECT id, question_id, option_text, is_correct
			FROM options
			WHERE question_id = $1
			ORDER BY id
		`, id)
		if err != nil {
			return err
		}
		defer rows.Close()

		question.Options = []models.Option{}
		for rows.Next() {
			var opt models.Option
			if err := rows.Scan(&opt.ID, &opt.QuestionID, &opt.Text, &opt.IsCorrect); err != nil {
				return err
			}
			question.Options = append(question.Options, opt)
		}
		found = true
		return rows.Err()
	})
	if err != nil || !found {
		return models.Question{}, false, err
	}
	return question, true, nil
}

func (s *Store) CreateQuiz(ctx context.Context, title, description string, createdBy int64) (int64, error) {
	var id int64
	err := s.withTx(ctx, "create quiz", func(tx *sql.Tx) error {
		var err error
		id, err = insertQuiz(ctx, tx, title, description, createdBy)
		return err
	})
	return id, err
}

// UpdateQuiz overwrites title and description of an existing quiz.
func (s *Store) UpdateQuiz(ctx context.Context, id int64, title, description string) error {
	return s.withTx(ctx, "update quiz", func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `
			UPDATE quizzes
			SET title = $1, description = $2
			WHERE id = $3
		`, title, description, id)
		if err != nil {
			return err
		}
		return requireRow(res, "quiz", id)
	})
}

// DeleteQuiz removes a quiz and, by cascade, its questions, options,
// responses and scores. Reports whether a row was deleted.
func (s *Store) DeleteQuiz(ctx context.Context, id int64) (bool, error) {
	return s.deleteByID(ctx, "delete quiz", `DELETE FROM quizzes WHERE id = $1`, id)
}

// DeleteQuestion removes a question and its options.
func (s *Store) DeleteQuestion(ctx context.Context, id int64) (bool, error) {
	return s.deleteByID(ctx, "delete question", `DELETE FROM questions WHERE id = $1`, id)
}

func (s *Store) deleteByID(ctx context.Context, op, query string, id int64) (bool, error) {
	var deleted bool
	err := s.withTx(ctx, op, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, query, id)
		if err != nil {
			return err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		deleted = n > 0
		return nil
	})
	return deleted, err
}

// SaveQuestionWithOptions inserts a question (zero draft ID) or overwrites an
// existing one, replacing its whole option set. All or nothing.
//
// Replacing the options deletes every stored response that selected one of
// the old options, so an update erases the question's response history.
// Score rows are not touched.
func (s *Store) SaveQuestionWithOptions(ctx context.Context, d models.QuestionDraft) (int64, error) {
	var id int64
	err := s.withTx(ctx, "save question", func(tx *sql.Tx) error {
		if d.ID == 0 {
			_, ok, err := getQuiz(ctx, tx, d.QuizID)
			if err != nil {
				return err
			}
			if !ok {
				return &models.NotFoundError{Entity: "quiz", ID: d.QuizID}
			}
			id, err = insertQuestion(ctx, tx, d.QuizID, d)
			return err
		}

		res, err := tx.ExecContext(ctx, `
			UPDATE questions
			SET question_text = $1, question_type = $2, points = $3
			WHERE id = $4 AND quiz_id = $5
		`, d.Text, d.Type.String(), d.Points, d.ID, d.QuizID)
		if err != nil {
			return err
		}
		if err := requireRow(res, "question", d.ID); err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM options WHERE question_id = $1`, d.ID); err != nil {
			return err
		}
		id = d.ID
		return insertOptions(ctx, tx, d.ID, d.Options)
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

func getQuiz(ctx context.Context, q queryer, id int64) (models.Quiz, bool, error) {
	var quiz models.Quiz
	err := q.QueryRowContext(ctx, `
		SELECT id, title, description, created_by, created_at
		FROM quizzes
		WHERE id = $1
	`, id).Scan(&quiz.ID, &quiz.Title, &quiz.Description, &quiz.CreatedBy, &quiz.CreatedAt)
	if err == sql.ErrNoRows {
		return models.Quiz{}, false, nil
	}
	if err != nil {
		return models.Quiz{}, false, err
	}
	return quiz, true, nil
}

// loadQuestions reads the live question tree of a quiz.
func loadQuestions(ctx context.Context, q queryer, quizID int64) ([]models.Question, error) {
	rows, err := q.QueryContext(ctx, `
		SELECT id, quiz_id, question_text, question_type, points
		FROM questions
		WHERE quiz_id = $1
		ORDER BY id
	`, quizID)
	if err != nil {
		return nil, err
	}

	questions := []models.Question{}
	index := make(map[int64]int)
	for rows.Next() {
		var (
			question models.Question
			typeName string
		)
		if err := rows.Scan(&question.ID, &question.QuizID, &question.Text, &typeName, &question.Points); err != nil {
			rows.Close()
			return nil, err
		}
		if question.Type, err = models.ParseQuestionType(typeName); err != nil {
			rows.Close()
			return nil, err
		}
		question.Options = []models.Option{}
		index[question.ID] = len(questions)
		questions = append(questions, question)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	optRows, err := q.QueryContext(ctx, `
		SELECT o.id, o.question_id, o.option_text, o.is_correct
		FROM options o
		JOIN questions q ON q.id = o.question_id
		WHERE q.quiz_id = $1
		ORDER BY o.id
	`, quizID)
	if err != nil {
		return nil, err
	}
	defer optRows.Close()

	for optRows.Next() {
		var opt models.Option
		if err := optRows.Scan(&opt.ID, &opt.QuestionID, &opt.Text, &opt.IsCorrect); err != nil {
			return nil, err
		}
		i, ok := index[opt.QuestionID]
		if !ok {
			continue
		}
		questions[i].Options = append(questions[i].Options, opt)
	}
	return questions, optRows.Err()
}

func insertQuiz(ctx context.Context, tx *sql.Tx, title, description string, createdBy int64) (int64, error) {
	var id int64
	err := tx.QueryRowContext(ctx, `
		INSERT INTO quizzes (title, description, created_by, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, title, description, createdBy, time.Now().UTC()).Scan(&id)
	return id, err
}

func insertQuestion(ctx context.Context, tx *sql.Tx, quizID int64, d models.QuestionDraft) (int64, error) {
	var id int64
	err := tx.QueryRowContext(ctx, `
		INSERT INTO questions (quiz_id, question_text, question_type, points)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, quizID, d.Text, d.Type.String(), d.Points).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, insertOptions(ctx, tx, id, d.Options)
}

func insertOptions(ctx context.Context, tx *sql.Tx, questionID int64, options []models.OptionInput) error {
	for i, opt := range options {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO options (question_id, option_text, is_correct)
			VALUES ($1, $2, $3)
		`, questionID, opt.Text, opt.IsCorrect)
		if err != nil {
			return fmt.Errorf("insert option %d: %w", i+1, err)
		}
	}
	return nil
}

func requireRow(res sql.Result, entity string, id int64) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return &models.NotFoundError{Entity: entity, ID: id}
	}
	return nil
}
