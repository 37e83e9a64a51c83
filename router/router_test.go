// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/quizdesk/models"
	"github.com/danielhkuo/quizdesk/testutil"
)

func newTestMux(t *testing.T) *http.ServeMux {
	t.Helper()

	store := testutil.SetupTestStore(t)
	mux, err := NewRouter(store, testutil.GetTestConfig())
	if err != nil {
		t.Fatalf("NewRouter() error = %v", err)
	}
	return mux
}

func TestHealthEndpoint(t *testing.T) {
	mux := newTestMux(t)

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	if w.Body.String() != "OK" {
		t.Errorf("Expected body 'OK', got '%s'", w.Body.String())
	}
}

func TestRootEndpoint(t *testing.T) {
	mux := newTestMux(t)

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	expected := "quizdesk API v1"
	if w.Body.String() != expected {
		t.Errorf("Expected body '%s', got '%s'", expected, w.Body.String())
	}
}

func TestNewRouter_RequiresTokenSecret(t *testing.T) {
	store := testutil.SetupTestStore(t)
	cfg := testutil.GetTestConfig()
	cfg.TokenSecret = ""

	if _, err := NewRouter(store, cfg); err == nil {
		t.Error("Expected error for empty token secret")
	}
}

func TestRouteExistence(t *testing.T) {
	mux := newTestMux(t)

	// Protected routes answer 401 without a token; the point is that they
	// are matched at all
	testCases := []struct {
		method string
		path   string
	}{
		{"GET", "/health"},
		{"GET", "/"},

		{"POST", "/auth/register"},
		{"POST", "/auth/login"},

		{"GET", "/quizzes"},
		{"GET", "/quizzes/1"},
		{"POST", "/quizzes"},
		{"PUT", "/quizzes/1"},
		{"DELETE", "/quizzes/1"},
		{"POST", "/quizzes/1/questions"},
		{"PUT", "/quizzes/1/questions/2"},
		{"DELETE", "/questions/1"},
		{"POST", "/demo-quizzes"},

		{"POST", "/sessions"},
		{"GET", "/sessions/abc"},
		{"POST", "/sessions/abc/answers"},
		{"POST", "/sessions/abc/advance"},
		{"POST", "/sessions/abc/retreat"},
		{"POST", "/sessions/abc/submit"},
		{"DELETE", "/sessions/abc"},

		{"GET", "/me/scores"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code == http.StatusMethodNotAllowed || w.Code == http.StatusNotFound {
				t.Errorf("Route %s %s returned %d, expected route handler to exist", tc.method, tc.path, w.Code)
			}
		})
	}
}

func TestRoleEnforcement(t *testing.T) {
	store := testutil.SetupTestStore(t)
	mux, err := NewRouter(store, testutil.GetTestConfig())
	if err != nil {
		t.Fatal(err)
	}
	alice := testutil.CreateTestUser(t, store, "alice", "pw")
	admin := testutil.AdminUser(t, store)

	testCases := []struct {
		name           string
		method         string
		path           string
		body           interface{}
		headers        map[string]string
		expectedStatus int
	}{
		{"list without token", "GET", "/quizzes", nil, nil, http.StatusUnauthorized},
		{"list as user", "GET", "/quizzes", nil, testutil.BearerHeader(t, alice), http.StatusOK},
		{"create as user", "POST", "/quizzes", models.QuizRequest{Title: "X"}, testutil.BearerHeader(t, alice), http.StatusForbidden},
		{"create as admin", "POST", "/quizzes", models.QuizRequest{Title: "X"}, testutil.BearerHeader(t, admin), http.StatusCreated},
		{"garbage token", "GET", "/me/scores", nil, map[string]string{"Authorization": "Bearer nope"}, http.StatusUnauthorized},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, testutil.MakeRequest(tc.method, tc.path, tc.body, tc.headers))
			testutil.AssertStatus(t, w, tc.expectedStatus)
		})
	}
}

func TestSpecificMethodRouting(t *testing.T) {
	mux := newTestMux(t)

	testCases := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
	}{
		{"POST to health endpoint", "POST", "/health", http.StatusMethodNotAllowed},
		{"GET to submit endpoint", "GET", "/sessions/abc/submit", http.StatusMethodNotAllowed},
		{"PUT to questions collection", "PUT", "/quizzes/1/questions", http.StatusMethodNotAllowed},
		{"unknown path", "GET", "/nope", http.StatusNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code != tc.expectedStatus {
				t.Errorf("Expected %d for %s %s, got %d", tc.expectedStatus, tc.method, tc.path, w.Code)
			}
		})
	}
}
