// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"context"
	"log/slog"

	"github.com/danielhkuo/quizdesk/models"
)

// Store is what the engine needs from the storage engine.
type Store interface {
	GetQuizWithQuestions(ctx context.Context, id int64) (models.QuizWithQuestions, bool, error)
	RecordSubmission(ctx context.Context, sub models.Submission, grade models.GradeFunc) (models.Score, error)
}

// Engine starts and submits quiz sessions.
type Engine struct {
	store    Store
	registry *Registry
}

func NewEngine(store Store, registry *Registry) *Engine {
	return &Engine{store: store, registry: registry}
}

func (e *Engine) Registry() *Registry { return e.registry }

// Start loads the quiz tree, snapshots it into a new session positioned on
// the first question and registers the session.
func (e *Engine) Start(ctx context.Context, userID, quizID int64) (*Session, error) {
	quiz, found, err := e.store.GetQuizWithQuestions(ctx, quizID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, &models.NotFoundError{Entity: "quiz", ID: quizID}
	}

	s := newSession(newID(), userID, quiz)
	if err := s.begin(); err != nil {
		return nil, err
	}
	e.registry.add(s)

	slog.Info("session started",
		"session_id", s.ID,
		"user_id", userID,
		"quiz_id", quizID,
		"questions", s.QuestionCount())
	return s, nil
}

// Submit persists the session's responses and score. Grading runs against
// the questions as stored at submit time. On failure the session stays in
// progress with its selections intact so the caller can retry.
func (e *Engine) Submit(ctx context.Context, s *Session) (Result, error) {
	if s.state == Completed {
		return Result{}, models.ErrSessionCompleted
	}

	score, err := e.store.RecordSubmission(ctx, s.Submission(), Grader(s.selectedByQuestion()))
	if err != nil {
		slog.Error("failed to submit quiz", "session_id", s.ID, "error", err)
		return Result{}, err
	}

	r := s.complete(score)
	slog.Info("quiz submitted",
		"session_id", s.ID,
		"user_id", s.UserID,
		"quiz_id", s.QuizID(),
		"score", r.Score,
		"total_points", r.TotalPoints)
	return r, nil
}
