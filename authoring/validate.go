// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package authoring

import (
	"fmt"
	"strings"

	"github.com/danielhkuo/quizdesk/models"
)

// MinOptions is the smallest option set a question may have.
const MinOptions = 2

// EditOption validates a single option edit and returns the normalized option.
func EditOption(text string, correct bool) (models.OptionInput, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return models.OptionInput{}, models.Invalid("option_text", "Option text is required")
	}
	return models.OptionInput{Text: text, IsCorrect: correct}, nil
}

// ValidateQuestion checks a question draft and returns it with texts trimmed.
// Nothing here touches storage.
func ValidateQuestion(d models.QuestionDraft) (models.QuestionDraft, error) {
	d.Text = strings.TrimSpace(d.Text)
	if d.Text == "" {
		return d, models.Invalid("question_text", "Question text is required")
	}
	if d.Type != models.SingleChoice && d.Type != models.MultipleChoice {
		return d, models.Invalid("question_type", "Question type must be single_choice or multiple_choice")
	}
	if d.Points <= 0 {
		return d, models.Invalid("points", "Points must be a positive number")
	}
	if len(d.Options) < MinOptions {
		return d, models.Invalid("options", "At least 2 options are required")
	}

	options := make([]models.OptionInput, 0, len(d.Options))
	correct := 0
	for i, o := range d.Options {
		opt, err := EditOption(o.Text, o.IsCorrect)
		if err != nil {
			return d, models.Invalid("options", fmt.Sprintf("Option %d: option text is required", i+1))
		}
		if opt.IsCorrect {
			correct++
		}
		options = append(options, opt)
	}
	d.Options = options

	if correct == 0 {
		return d, models.Invalid("options", "At least one correct option is required")
	}
	if d.Type == models.SingleChoice && correct > 1 {
		return d, models.Invalid("options", "Single choice questions can have only one correct answer")
	}
	return d, nil
}

func validateQuizFields(title, description string) (string, string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", "", models.Invalid("title", "Quiz title is required")
	}
	return title, strings.TrimSpace(description), nil
}
