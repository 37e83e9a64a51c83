// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/danielhkuo/quizdesk/auth"
	"github.com/danielhkuo/quizdesk/cliparse"
	"github.com/danielhkuo/quizdesk/db"
	"github.com/danielhkuo/quizdesk/models"
)

// TestTokenSecret signs bearer tokens in tests
const TestTokenSecret = "test-token-secret"

// SetupTestStore creates a fresh sqlite database in a temp dir with the full
// schema and the bootstrap admin
func SetupTestStore(t *testing.T) *db.Store {
	t.Helper()

	store, err := db.Open(db.SQLite, filepath.Join(t.TempDir(), "quiz.db"))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	if err := store.Init(context.Background()); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return store
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3318,
		DatabaseURL:  "quiz.db",
		DatabaseType: db.SQLite,
		TokenSecret:  TestTokenSecret,
		TokenTTL:     time.Hour,
		SessionTTL:   time.Hour,
	}
}

// AdminUser returns the bootstrap admin row
func AdminUser(t *testing.T, store *db.Store) models.User {
	t.Helper()

	admin, found, err := store.GetUserByUsername(context.Background(), auth.BootstrapAdminUsername)
	if err != nil || !found {
		t.Fatalf("Failed to load bootstrap admin: found=%v err=%v", found, err)
	}
	return admin
}

// CreateTestUser registers a regular user and returns it
func CreateTestUser(t *testing.T, store *db.Store, username, password string) models.User {
	t.Helper()

	id, err := store.CreateUser(context.Background(), username, auth.HashPassword(password), models.RoleUser)
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}
	return models.User{ID: id, Username: username, PasswordHash: auth.HashPassword(password), Role: models.RoleUser}
}

// CreateTestQuiz creates a quiz owned by the bootstrap admin and returns its ID
func CreateTestQuiz(t *testing.T, store *db.Store, title string) int64 {
	t.Helper()

	admin := AdminUser(t, store)
	id, err := store.CreateQuiz(context.Background(), title, "A test quiz", admin.ID)
	if err != nil {
		t.Fatalf("Failed to create test quiz: %v", err)
	}
	return id
}

// AddTestQuestion adds a question to a quiz and returns it as stored.
// Options are given as texts; the ones listed in correct are flagged correct.
func AddTestQuestion(t *testing.T, store *db.Store, quizID int64, qtype models.QuestionType, points int, options []string, correct ...string) models.Question {
	t.Helper()

	isCorrect := make(map[string]bool, len(correct))
	for _, c := range correct {
		isCorrect[c] = true
	}
	inputs := make([]models.OptionInput, 0, len(options))
	for _, o := range options {
		inputs = append(inputs, models.OptionInput{Text: o, IsCorrect: isCorrect[o]})
	}

	id, err := store.SaveQuestionWithOptions(context.Background(), models.QuestionDraft{
		QuizID:  quizID,
		Text:    "Test question",
		Type:    qtype,
		Points:  points,
		Options: inputs,
	})
	if err != nil {
		t.Fatalf("Failed to create test question: %v", err)
	}

	q, found, err := store.GetQuestion(context.Background(), id)
	if err != nil || !found {
		t.Fatalf("Failed to reload test question: found=%v err=%v", found, err)
	}
	return q
}

// OptionID returns the id of the option with the given text
func OptionID(t *testing.T, q models.Question, text string) int64 {
	t.Helper()

	for _, o := range q.Options {
		if o.Text == text {
			return o.ID
		}
	}
	t.Fatalf("Option %q not found in question %d", text, q.ID)
	return 0
}

// BearerHeader returns an Authorization header for user
func BearerHeader(t *testing.T, user models.User) map[string]string {
	t.Helper()

	issuer, err := auth.NewIssuer(TestTokenSecret, time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	token, _, err := issuer.Issue(user)
	if err != nil {
		t.Fatalf("Failed to issue test token: %v", err)
	}
	return map[string]string{"Authorization": "Bearer " + token}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
