// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package authoring

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/danielhkuo/quizdesk/models"
)

//go:embed demo_quizzes.yaml
var demoQuizzesYAML []byte

type demoFile struct {
	Quizzes []demoQuiz `yaml:"quizzes"`
}

type demoQuiz struct {
	Title       string         `yaml:"title"`
	Description string         `yaml:"description"`
	Questions   []demoQuestion `yaml:"questions"`
}

type demoQuestion struct {
	Text    string       `yaml:"text"`
	Type    string       `yaml:"type"`
	Points  int          `yaml:"points"`
	Options []demoOption `yaml:"options"`
}

type demoOption struct {
	Text    string `yaml:"text"`
	Correct bool   `yaml:"correct"`
}

// DemoQuizzes parses the embedded fixture into validated quiz drafts.
func DemoQuizzes() ([]models.QuizDraft, error) {
	return parseDemoQuizzes(demoQuizzesYAML)
}

func parseDemoQuizzes(data []byte) ([]models.QuizDraft, error) {
	var file demoFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse demo quizzes: %w", err)
	}

	drafts := make([]models.QuizDraft, 0, len(file.Quizzes))
	for _, dq := range file.Quizzes {
		title, description, err := validateQuizFields(dq.Title, dq.Description)
		if err != nil {
			return nil, fmt.Errorf("demo quiz: %w", err)
		}
		draft := models.QuizDraft{Title: title, Description: description}

		for i, q := range dq.Questions {
			qtype, err := models.ParseQuestionType(q.Type)
			if err != nil {
				return nil, fmt.Errorf("demo quiz %q question %d: %w", title, i+1, err)
			}
			options := make([]models.OptionInput, 0, len(q.Options))
			for _, o := range q.Options {
				options = append(options, models.OptionInput{Text: o.Text, IsCorrect: o.Correct})
			}
			valid, err := ValidateQuestion(models.QuestionDraft{
				Text:    q.Text,
				Type:    qtype,
				Points:  q.Points,
				Options: options,
			})
			if err != nil {
				return nil, fmt.Errorf("demo quiz %q question %d: %w", title, i+1, err)
			}
			draft.Questions = append(draft.Questions, valid)
		}
		drafts = append(drafts, draft)
	}
	return drafts, nil
}
