// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"fmt"
	"slices"
	"time"

	"github.com/danielhkuo/quizdesk/models"
)

// State of a quiz session.
type State int

const (
	NotStarted State = iota
	InProgress
	Completed
)

func (s State) String() string {
	switch s {
	case NotStarted:
		return "not_started"
	case InProgress:
		return "in_progress"
	case Completed:
		return "completed"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Result is the outcome of a submitted session.
type Result struct {
	ScoreID     int64     `json:"score_id"`
	Score       int       `json:"score"`
	TotalPoints int       `json:"total_points"`
	Percentage  float64   `json:"percentage"`
	CompletedAt time.Time `json:"completed_at"`
}

// Session is one user's pass through a quiz. It works on a snapshot of the
// quiz taken when the session started and keeps answers in memory until
// submit. A Session is not safe for concurrent use; the Registry serialises
// access.
type Session struct {
	ID     string
	UserID int64

	quiz       models.QuizWithQuestions
	state      State
	index      int
	selections map[int64]map[int64]struct{}
	result     *Result
}

func newSession(id string, userID int64, quiz models.QuizWithQuestions) *Session {
	return &Session{
		ID:         id,
		UserID:     userID,
		quiz:       quiz,
		state:      NotStarted,
		selections: make(map[int64]map[int64]struct{}),
	}
}

// begin moves a fresh session to the first question.
func (s *Session) begin() error {
	if s.state != NotStarted {
		return fmt.Errorf("session %s already started", s.ID)
	}
	if len(s.quiz.Questions) == 0 {
		return models.ErrEmptyQuiz
	}
	s.state = InProgress
	s.index = 0
	return nil
}

func (s *Session) State() State { return s.state }

// Index is the position of the current question.
func (s *Session) Index() int { return s.index }

func (s *Session) QuizID() int64 { return s.quiz.Quiz.ID }

func (s *Session) QuizTitle() string { return s.quiz.Quiz.Title }

func (s *Session) QuestionCount() int { return len(s.quiz.Questions) }

// Current returns the question at the current index.
func (s *Session) Current() (models.Question, bool) {
	if s.index < 0 || s.index >= len(s.quiz.Questions) {
		return models.Question{}, false
	}
	return s.quiz.Questions[s.index], true
}

// Selected returns the chosen option ids for a question, ascending.
func (s *Session) Selected(questionID int64) []int64 {
	set := s.selections[questionID]
	ids := make([]int64, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Answered counts questions with at least one selected option.
func (s *Session) Answered() int {
	n := 0
	for _, set := range s.selections {
		if len(set) > 0 {
			n++
		}
	}
	return n
}

// Result returns the score once the session is completed.
func (s *Session) Result() (Result, bool) {
	if s.result == nil {
		return Result{}, false
	}
	return *s.result, true
}

// SelectAnswer records a choice. A single_choice question keeps only the
// latest option; a multiple_choice question toggles the option.
func (s *Session) SelectAnswer(questionID, optionID int64) error {
	switch s.state {
	case Completed:
		return models.ErrSessionCompleted
	case NotStarted:
		return fmt.Errorf("session %s not started", s.ID)
	}

	q, ok := s.quiz.Question(questionID)
	if !ok {
		return models.Invalid("question_id", fmt.Sprintf("Question %d is not part of this quiz", questionID))
	}
	if !q.HasOption(optionID) {
		return models.Invalid("option_id", fmt.Sprintf("Option %d does not belong to question %d", optionID, questionID))
	}

	switch q.Type {
	case models.SingleChoice:
		s.selections[questionID] = map[int64]struct{}{optionID: {}}
	case models.MultipleChoice:
		set, ok := s.selections[questionID]
		if !ok {
			set = make(map[int64]struct{})
			s.selections[questionID] = set
		}
		if _, selected := set[optionID]; selected {
			delete(set, optionID)
		} else {
			set[optionID] = struct{}{}
		}
	default:
		return fmt.Errorf("unsupported question type %v", q.Type)
	}
	return nil
}

// Advance moves to the next question, staying on the last one.
func (s *Session) Advance() int {
	if s.state == InProgress && s.index < len(s.quiz.Questions)-1 {
		s.index++
	}
	return s.index
}

// Retreat moves to the previous question, staying on the first one.
func (s *Session) Retreat() int {
	if s.state == InProgress && s.index > 0 {
		s.index--
	}
	return s.index
}

// Submission flattens the selections into one pair per selected option, in
// question order.
func (s *Session) Submission() models.Submission {
	sub := models.Submission{UserID: s.UserID, QuizID: s.quiz.Quiz.ID}
	for _, q := range s.quiz.Questions {
		for _, optionID := range s.Selected(q.ID) {
			sub.Responses = append(sub.Responses, models.ResponsePair{
				QuestionID:       q.ID,
				SelectedOptionID: optionID,
			})
		}
	}
	return sub
}

// selectedByQuestion copies the selections for grading.
func (s *Session) selectedByQuestion() map[int64][]int64 {
	out := make(map[int64][]int64, len(s.selections))
	for qid := range s.selections {
		out[qid] = s.Selected(qid)
	}
	return out
}

func (s *Session) complete(score models.Score) Result {
	r := Result{
		ScoreID:     score.ID,
		Score:       score.Score,
		TotalPoints: score.TotalPoints,
		Percentage:  score.Percentage(),
		CompletedAt: score.CompletedAt,
	}
	s.result = &r
	s.state = Completed
	return r
}
