// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package authoring implements quiz authoring: quizzes, questions and options,
validated before anything reaches storage.

# Usage

	svc := authoring.NewService(store)

	quizID, err := svc.CreateQuiz(ctx, "Math", "", adminID)
	questionID, err := svc.SaveQuestionWithOptions(ctx, models.QuestionDraft{
		QuizID: quizID,
		Text:   "2 + 2?",
		Type:   models.SingleChoice,
		Points: 2,
		Options: []models.OptionInput{
			{Text: "3"}, {Text: "4", IsCorrect: true}, {Text: "5"},
		},
	})

A draft with a non-zero ID updates that question and replaces its whole
option set in one transaction.

# Validation

ValidateQuestion rejects, with *models.ValidationError:

  - empty question text
  - unknown question type or non-positive points
  - fewer than 2 options, or an option with empty text
  - no correct option
  - more than one correct option on a single_choice question

EditOption validates a single option and returns it; the caller decides where
it goes.

# Demo Quizzes

demo_quizzes.yaml is embedded into the binary and parsed with gopkg.in/yaml.v3.
CreateDemoQuizzes inserts only the quizzes whose title is not present yet.
*/
package authoring
