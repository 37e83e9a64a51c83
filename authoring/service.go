// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package authoring

import (
	"context"
	"log/slog"

	"github.com/danielhkuo/quizdesk/models"
)

// Store is the part of the storage engine used for authoring.
type Store interface {
	CreateQuiz(ctx context.Context, title, description string, createdBy int64) (int64, error)
	UpdateQuiz(ctx context.Context, id int64, title, description string) error
	DeleteQuiz(ctx context.Context, id int64) (bool, error)
	SaveQuestionWithOptions(ctx context.Context, d models.QuestionDraft) (int64, error)
	DeleteQuestion(ctx context.Context, id int64) (bool, error)
	SeedQuizzes(ctx context.Context, createdBy int64, drafts []models.QuizDraft) (int, error)
}

// Service creates, edits and deletes quizzes and their questions.
type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

func (s *Service) CreateQuiz(ctx context.Context, title, description string, authorID int64) (int64, error) {
	title, description, err := validateQuizFields(title, description)
	if err != nil {
		return 0, err
	}

	id, err := s.store.CreateQuiz(ctx, title, description, authorID)
	if err != nil {
		slog.Error("failed to create quiz", "error", err)
		return 0, err
	}
	slog.Info("quiz created", "quiz_id", id, "title", title, "author_id", authorID)
	return id, nil
}

// UpdateQuiz overwrites title and description. A missing quiz yields
// *models.NotFoundError.
func (s *Service) UpdateQuiz(ctx context.Context, id int64, title, description string) error {
	title, description, err := validateQuizFields(title, description)
	if err != nil {
		return err
	}

	if err := s.store.UpdateQuiz(ctx, id, title, description); err != nil {
		return err
	}
	slog.Info("quiz updated", "quiz_id", id)
	return nil
}

// DeleteQuiz removes the quiz with everything below it. Deleting an absent
// quiz is a no-op reported as false.
func (s *Service) DeleteQuiz(ctx context.Context, id int64) (bool, error) {
	deleted, err := s.store.DeleteQuiz(ctx, id)
	if err != nil {
		return false, err
	}
	if deleted {
		slog.Info("quiz deleted", "quiz_id", id)
	}
	return deleted, nil
}

// SaveQuestionWithOptions validates d and then inserts it (zero ID) or
// replaces the stored question and its whole option set.
func (s *Service) SaveQuestionWithOptions(ctx context.Context, d models.QuestionDraft) (int64, error) {
	d, err := ValidateQuestion(d)
	if err != nil {
		return 0, err
	}

	id, err := s.store.SaveQuestionWithOptions(ctx, d)
	if err != nil {
		return 0, err
	}
	slog.Info("question saved",
		"quiz_id", d.QuizID,
		"question_id", id,
		"type", d.Type.String(),
		"options", len(d.Options),
		"update", d.ID != 0)
	return id, nil
}

func (s *Service) DeleteQuestion(ctx context.Context, id int64) (bool, error) {
	deleted, err := s.store.DeleteQuestion(ctx, id)
	if err != nil {
		return false, err
	}
	if deleted {
		slog.Info("question deleted", "question_id", id)
	}
	return deleted, nil
}

// CreateDemoQuizzes inserts the bundled demo quizzes that do not exist yet and
// returns how many were created.
func (s *Service) CreateDemoQuizzes(ctx context.Context, adminID int64) (int, error) {
	drafts, err := DemoQuizzes()
	if err != nil {
		return 0, err
	}

	created, err := s.store.SeedQuizzes(ctx, adminID, drafts)
	if err != nil {
		return 0, err
	}
	slog.Info("demo quizzes seeded", "created", created, "available", len(drafts))
	return created, nil
}
