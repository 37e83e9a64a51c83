// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package authoring_test

import (
	"context"
	"errors"
	"testing"

	"github.com/danielhkuo/quizdesk/authoring"
	"github.com/danielhkuo/quizdesk/models"
	"github.com/danielhkuo/quizdesk/testutil"
)

func opts(correct []bool, texts ...string) []models.OptionInput {
	out := make([]models.OptionInput, len(texts))
	for i, t := range texts {
		out[i] = models.OptionInput{Text: t, IsCorrect: correct[i]}
	}
	return out
}

func TestValidateQuestion(t *testing.T) {
	tests := []struct {
		name      string
		draft     models.QuestionDraft
		wantField string
	}{
		{
			name:  "valid single choice",
			draft: models.QuestionDraft{Text: "Q", Type: models.SingleChoice, Points: 1, Options: opts([]bool{true, false}, "a", "b")},
		},
		{
			name:  "valid multiple choice",
			draft: models.QuestionDraft{Text: "Q", Type: models.MultipleChoice, Points: 2, Options: opts([]bool{true, true, false}, "a", "b", "c")},
		},
		{
			name:      "blank text",
			draft:     models.QuestionDraft{Text: "   ", Type: models.SingleChoice, Points: 1, Options: opts([]bool{true, false}, "a", "b")},
			wantField: "question_text",
		},
		{
			name:      "one option",
			draft:     models.QuestionDraft{Text: "Q", Type: models.SingleChoice, Points: 1, Options: opts([]bool{true}, "a")},
			wantField: "options",
		},
		{
			name:      "no correct option",
			draft:     models.QuestionDraft{Text: "Q", Type: models.MultipleChoice, Points: 1, Options: opts([]bool{false, false}, "a", "b")},
			wantField: "options",
		},
		{
			name:      "single choice with two correct",
			draft:     models.QuestionDraft{Text: "Q", Type: models.SingleChoice, Points: 1, Options: opts([]bool{true, true}, "a", "b")},
			wantField: "options",
		},
		{
			name:      "blank option text",
			draft:     models.QuestionDraft{Text: "Q", Type: models.SingleChoice, Points: 1, Options: opts([]bool{true, false}, "a", " ")},
			wantField: "options",
		},
		{
			name:      "zero points",
			draft:     models.QuestionDraft{Text: "Q", Type: models.SingleChoice, Points: 0, Options: opts([]bool{true, false}, "a", "b")},
			wantField: "points",
		},
		{
			name:      "unknown type",
			draft:     models.QuestionDraft{Text: "Q", Points: 1, Options: opts([]bool{true, false}, "a", "b")},
			wantField: "question_type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := authoring.ValidateQuestion(tt.draft)
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			var ve *models.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if ve.Field != tt.wantField {
				t.Errorf("field = %q, want %q", ve.Field, tt.wantField)
			}
		})
	}
}

func TestValidateQuestion_Trims(t *testing.T) {
	d, err := authoring.ValidateQuestion(models.QuestionDraft{
		Text: "  What?  ", Type: models.SingleChoice, Points: 1,
		Options: opts([]bool{true, false}, " yes ", "no"),
	})
	if err != nil {
		t.Fatal(err)
	}
	if d.Text != "What?" || d.Options[0].Text != "yes" {
		t.Errorf("texts not trimmed: %+v", d)
	}
}

func TestEditOption(t *testing.T) {
	opt, err := authoring.EditOption("  Paris ", true)
	if err != nil {
		t.Fatal(err)
	}
	if opt.Text != "Paris" || !opt.IsCorrect {
		t.Errorf("EditOption() = %+v", opt)
	}

	if _, err := authoring.EditOption("", false); !models.IsValidation(err) {
		t.Errorf("expected ValidationError, got %v", err)
	}
}

func TestCreateQuiz(t *testing.T) {
	store := testutil.SetupTestStore(t)
	svc := authoring.NewService(store)
	admin := testutil.AdminUser(t, store)
	ctx := context.Background()

	if _, err := svc.CreateQuiz(ctx, "   ", "desc", admin.ID); !models.IsValidation(err) {
		t.Errorf("blank title: expected ValidationError, got %v", err)
	}

	id, err := svc.CreateQuiz(ctx, "  Math ", " numbers ", admin.ID)
	if err != nil {
		t.Fatal(err)
	}
	quiz, found, err := store.GetQuiz(ctx, id)
	if err != nil || !found {
		t.Fatalf("found=%v err=%v", found, err)
	}
	if quiz.Title != "Math" || quiz.Description != "numbers" || quiz.CreatedBy != admin.ID {
		t.Errorf("unexpected quiz %+v", quiz)
	}
}

func TestUpdateQuiz(t *testing.T) {
	store := testutil.SetupTestStore(t)
	svc := authoring.NewService(store)
	ctx := context.Background()
	id := testutil.CreateTestQuiz(t, store, "Old")

	if err := svc.UpdateQuiz(ctx, id, "", ""); !models.IsValidation(err) {
		t.Errorf("expected ValidationError, got %v", err)
	}
	if err := svc.UpdateQuiz(ctx, 9999, "New", ""); !models.IsNotFound(err) {
		t.Errorf("expected NotFoundError, got %v", err)
	}
	if err := svc.UpdateQuiz(ctx, id, "New", "d"); err != nil {
		t.Fatal(err)
	}
	quiz, _, _ := store.GetQuiz(ctx, id)
	if quiz.Title != "New" {
		t.Errorf("title = %q, want New", quiz.Title)
	}
}

func TestSaveQuestionWithOptions_RoundTrip(t *testing.T) {
	store := testutil.SetupTestStore(t)
	svc := authoring.NewService(store)
	ctx := context.Background()
	quizID := testutil.CreateTestQuiz(t, store, "RoundTrip")

	saved := opts([]bool{false, true, false}, "3", "4", "5")
	id, err := svc.SaveQuestionWithOptions(ctx, models.QuestionDraft{
		QuizID: quizID, Text: "2 + 2?", Type: models.SingleChoice, Points: 2, Options: saved,
	})
	if err != nil {
		t.Fatal(err)
	}

	quiz, _, _ := store.GetQuizWithQuestions(ctx, quizID)
	if len(quiz.Questions) != 1 || quiz.Questions[0].ID != id {
		t.Fatalf("unexpected questions %+v", quiz.Questions)
	}
	got := quiz.Questions[0].Options
	if len(got) != len(saved) {
		t.Fatalf("got %d options, want %d", len(got), len(saved))
	}
	for i := range saved {
		if got[i].Text != saved[i].Text || got[i].IsCorrect != saved[i].IsCorrect {
			t.Errorf("option %d = %+v, want %+v", i, got[i], saved[i])
		}
	}
}

func TestSaveQuestionWithOptions_InvalidUpdateLeavesState(t *testing.T) {
	store := testutil.SetupTestStore(t)
	svc := authoring.NewService(store)
	ctx := context.Background()
	quizID := testutil.CreateTestQuiz(t, store, "Guarded")
	before := testutil.AddTestQuestion(t, store, quizID, models.SingleChoice, 1, []string{"a", "b", "c"}, "a")

	_, err := svc.SaveQuestionWithOptions(ctx, models.QuestionDraft{
		QuizID: quizID, ID: before.ID, Text: "Changed", Type: models.SingleChoice, Points: 3,
		Options: opts([]bool{true, true}, "x", "y"),
	})
	if !models.IsValidation(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}

	after, _, _ := store.GetQuestion(ctx, before.ID)
	if after.Text != before.Text || after.Points != before.Points || len(after.Options) != 3 {
		t.Errorf("question changed by rejected save: %+v", after)
	}
	for i := range before.Options {
		if after.Options[i] != before.Options[i] {
			t.Errorf("option %d changed: %+v -> %+v", i, before.Options[i], after.Options[i])
		}
	}
}

func TestDeleteQuestion_Idempotent(t *testing.T) {
	store := testutil.SetupTestStore(t)
	svc := authoring.NewService(store)
	ctx := context.Background()
	quizID := testutil.CreateTestQuiz(t, store, "Q")
	q := testutil.AddTestQuestion(t, store, quizID, models.SingleChoice, 1, []string{"a", "b"}, "a")

	for i, want := range []bool{true, false} {
		deleted, err := svc.DeleteQuestion(ctx, q.ID)
		if err != nil || deleted != want {
			t.Errorf("call %d: deleted=%v err=%v, want %v", i+1, deleted, err, want)
		}
	}
}

func TestDeleteQuiz_RemovesQuestionsAndOptions(t *testing.T) {
	store := testutil.SetupTestStore(t)
	svc := authoring.NewService(store)
	ctx := context.Background()
	quizID := testutil.CreateTestQuiz(t, store, "Cascade")

	var questions []models.Question
	for i := 0; i < 3; i++ {
		questions = append(questions, testutil.AddTestQuestion(t, store, quizID, models.SingleChoice, 1,
			[]string{"a", "b"}, "a"))
	}

	deleted, err := svc.DeleteQuiz(ctx, quizID)
	if err != nil || !deleted {
		t.Fatalf("deleted=%v err=%v", deleted, err)
	}
	if _, found, _ := store.GetQuizWithQuestions(ctx, quizID); found {
		t.Error("quiz still found")
	}
	for _, q := range questions {
		if _, found, _ := store.GetQuestion(ctx, q.ID); found {
			t.Errorf("question %d still found", q.ID)
		}
	}

	deleted, err = svc.DeleteQuiz(ctx, quizID)
	if err != nil || deleted {
		t.Errorf("second delete: deleted=%v err=%v", deleted, err)
	}
}

func TestCreateDemoQuizzes(t *testing.T) {
	store := testutil.SetupTestStore(t)
	svc := authoring.NewService(store)
	admin := testutil.AdminUser(t, store)
	ctx := context.Background()

	created, err := svc.CreateDemoQuizzes(ctx, admin.ID)
	if err != nil {
		t.Fatal(err)
	}
	if created != 4 {
		t.Errorf("created = %d, want 4", created)
	}

	created, err = svc.CreateDemoQuizzes(ctx, admin.ID)
	if err != nil || created != 0 {
		t.Errorf("second run created=%d err=%v", created, err)
	}

	quizzes, _ := store.ListQuizzes(ctx)
	if len(quizzes) != 4 {
		t.Fatalf("got %d quizzes, want 4", len(quizzes))
	}
	if quizzes[0].Title != "Demo: General Knowledge" {
		t.Errorf("first quiz by title = %q", quizzes[0].Title)
	}
}

func TestDemoQuizzes_Valid(t *testing.T) {
	drafts, err := authoring.DemoQuizzes()
	if err != nil {
		t.Fatal(err)
	}
	if len(drafts) != 4 {
		t.Fatalf("got %d demo quizzes, want 4", len(drafts))
	}
	for _, d := range drafts {
		if len(d.Questions) == 0 {
			t.Errorf("demo quiz %q has no questions", d.Title)
		}
	}
}
