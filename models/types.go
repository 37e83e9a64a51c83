package models

import (
	"fmt"
	"time"
)

// Role of an account.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// QuestionType selects how a question is answered and scored.
type QuestionType int

const (
	SingleChoice QuestionType = iota + 1
	MultipleChoice
)

func (t QuestionType) String() string {
	switch t {
	case SingleChoice:
		return "single_choice"
	case MultipleChoice:
		return "multiple_choice"
	}
	return fmt.Sprintf("QuestionType(%d)", int(t))
}

// ParseQuestionType converts the stored name back into a QuestionType.
func ParseQuestionType(s string) (QuestionType, error) {
	switch s {
	case "single_choice":
		return SingleChoice, nil
	case "multiple_choice":
		return MultipleChoice, nil
	}
	return 0, fmt.Errorf("unknown question type %q", s)
}

func (t QuestionType) MarshalText() ([]byte, error) {
	if t != SingleChoice && t != MultipleChoice {
		return nil, fmt.Errorf("invalid question type %d", int(t))
	}
	return []byte(t.String()), nil
}

func (t *QuestionType) UnmarshalText(b []byte) error {
	parsed, err := ParseQuestionType(string(b))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Domain types

type User struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"` // Never expose in JSON
	Role         Role   `json:"role"`
}

func (u User) IsAdmin() bool { return u.Role == RoleAdmin }

type Quiz struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedBy   int64     `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
}

type Option struct {
	ID         int64  `json:"id"`
	QuestionID int64  `json:"question_id"`
	Text       string `json:"option_text"`
	IsCorrect  bool   `json:"is_correct"`
}

type Question struct {
	ID      int64        `json:"id"`
	QuizID  int64        `json:"quiz_id"`
	Text    string       `json:"question_text"`
	Type    QuestionType `json:"question_type"`
	Points  int          `json:"points"`
	Options []Option     `json:"options"`
}

// CorrectOptionIDs returns the ids of the options flagged correct, in option order.
func (q Question) CorrectOptionIDs() []int64 {
	ids := make([]int64, 0, 1)
	for _, o := range q.Options {
		if o.IsCorrect {
			ids = append(ids, o.ID)
		}
	}
	return ids
}

// HasOption reports whether optionID belongs to the question.
func (q Question) HasOption(optionID int64) bool {
	for _, o := range q.Options {
		if o.ID == optionID {
			return true
		}
	}
	return false
}

// GradeFunc scores a submission against the live questions of a quiz and
// returns the earned and the total available points.
type GradeFunc func(questions []Question) (earned, total int)

// PublicOption is an option as shown to quiz takers.
type PublicOption struct {
	ID   int64  `json:"id"`
	Text string `json:"option_text"`
}

// PublicQuestion is a question without correctness flags.
type PublicQuestion struct {
	ID      int64          `json:"id"`
	QuizID  int64          `json:"quiz_id"`
	Text    string         `json:"question_text"`
	Type    QuestionType   `json:"question_type"`
	Points  int            `json:"points"`
	Options []PublicOption `json:"options"`
}

func (q Question) Public() PublicQuestion {
	options := make([]PublicOption, 0, len(q.Options))
	for _, o := range q.Options {
		options = append(options, PublicOption{ID: o.ID, Text: o.Text})
	}
	return PublicQuestion{
		ID:      q.ID,
		QuizID:  q.QuizID,
		Text:    q.Text,
		Type:    q.Type,
		Points:  q.Points,
		Options: options,
	}
}

type QuizWithQuestions struct {
	Quiz      Quiz       `json:"quiz"`
	Questions []Question `json:"questions"`
}

// TotalPoints sums the configured points of every question.
func (q QuizWithQuestions) TotalPoints() int {
	total := 0
	for _, question := range q.Questions {
		total += question.Points
	}
	return total
}

// Question looks up a question of the quiz by id.
func (q QuizWithQuestions) Question(id int64) (Question, bool) {
	for _, question := range q.Questions {
		if question.ID == id {
			return question, true
		}
	}
	return Question{}, false
}

// PublicQuiz is a quiz with its questions stripped of correctness flags.
type PublicQuiz struct {
	Quiz      Quiz             `json:"quiz"`
	Questions []PublicQuestion `json:"questions"`
}

func (q QuizWithQuestions) Public() PublicQuiz {
	questions := make([]PublicQuestion, 0, len(q.Questions))
	for _, question := range q.Questions {
		questions = append(questions, question.Public())
	}
	return PublicQuiz{Quiz: q.Quiz, Questions: questions}
}

type Response struct {
	ID               int64     `json:"id"`
	UserID           int64     `json:"user_id"`
	QuestionID       int64     `json:"question_id"`
	SelectedOptionID int64     `json:"selected_option_id"`
	ResponseTime     time.Time `json:"response_time"`
}

type Score struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	QuizID      int64     `json:"quiz_id"`
	Score       int       `json:"score"`
	TotalPoints int       `json:"total_points"`
	CompletedAt time.Time `json:"completed_at"`
}

func (s Score) Percentage() float64 {
	return Percentage(s.Score, s.TotalPoints)
}

// ScoreEntry is one row of a user's score history.
type ScoreEntry struct {
	Score
	QuizTitle string `json:"quiz_title"`
}

// Percentage returns earned/total as a percentage, 0 when total is 0.
func Percentage(earned, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(earned) / float64(total) * 100
}

// Authoring inputs

// OptionInput is one option of a question being saved.
type OptionInput struct {
	Text      string `json:"text"`
	IsCorrect bool   `json:"is_correct"`
}

// QuestionDraft is the full payload of a question-with-options save.
// A zero ID means insert.
type QuestionDraft struct {
	QuizID  int64
	ID      int64
	Text    string
	Type    QuestionType
	Points  int
	Options []OptionInput
}

// QuizDraft describes a complete quiz to seed in one go.
type QuizDraft struct {
	Title       string
	Description string
	Questions   []QuestionDraft
}

// Submission holds the flattened (question, option) pairs of a finished session.
type Submission struct {
	UserID    int64
	QuizID    int64
	Responses []ResponsePair
}

type ResponsePair struct {
	QuestionID       int64
	SelectedOptionID int64
}

// Request types

type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type QuizRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type QuestionRequest struct {
	Text    string        `json:"question_text"`
	Type    QuestionType  `json:"question_type"`
	Points  int           `json:"points"`
	Options []OptionInput `json:"options"`
}

type StartSessionRequest struct {
	QuizID int64 `json:"quiz_id"`
}

type SelectAnswerRequest struct {
	QuestionID int64 `json:"question_id"`
	OptionID   int64 `json:"option_id"`
}

// Response types

type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	User      User      `json:"user"`
}

type RegisterResponse struct {
	UserID int64 `json:"user_id"`
}

type CreatedResponse struct {
	ID int64 `json:"id"`
}

type DemoQuizzesResponse struct {
	Created int `json:"created"`
}

type ScoreHistoryEntry struct {
	ID           int64     `json:"id"`
	QuizID       int64     `json:"quiz_id"`
	QuizTitle    string    `json:"quiz_title"`
	Score        int       `json:"score"`
	TotalPoints  int       `json:"total_points"`
	Percentage   float64   `json:"percentage"`
	CompletedAt  time.Time `json:"completed_at"`
	CompletedAgo string    `json:"completed_ago"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
