// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/danielhkuo/quizdesk/auth"
	"github.com/danielhkuo/quizdesk/models"
	"github.com/danielhkuo/quizdesk/testutil"
)

func newAuthHandler(t *testing.T) (*AuthHandler, *auth.Issuer) {
	t.Helper()

	store := testutil.SetupTestStore(t)
	tokens, err := auth.NewIssuer(testutil.TestTokenSecret, time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	return NewAuthHandler(auth.NewService(store), tokens), tokens
}

func TestRegister(t *testing.T) {
	handler, _ := newAuthHandler(t)

	tests := []struct {
		name           string
		body           interface{}
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:           "valid registration",
			body:           models.CredentialsRequest{Username: "alice", Password: "pw"},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "duplicate username",
			body:           models.CredentialsRequest{Username: "alice", Password: "other"},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Username already exists",
		},
		{
			name:           "reserved admin name",
			body:           models.CredentialsRequest{Username: "Admin", Password: "pw"},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Cannot register as 'admin'. Use the admin login instead.",
		},
		{
			name:           "padded admin",
			body:           models.CredentialsRequest{Username: " admin", Password: "pw"},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Cannot register as 'admin'. Use the admin login instead.",
		},
		{
			name:           "tab and upper case admin",
			body:           models.CredentialsRequest{Username: "\tADMIN", Password: "pw"},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Cannot register as 'admin'. Use the admin login instead.",
		},
		{
			name:           "padded duplicate",
			body:           models.CredentialsRequest{Username: "alice ", Password: "pw"},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Username already exists",
		},
		{
			name:           "missing password",
			body:           models.CredentialsRequest{Username: "bob"},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Password is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/auth/register", tt.body, nil)
			w := httptest.NewRecorder()

			handler.Register(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)
			if tt.expectedStatus == http.StatusCreated {
				var resp models.RegisterResponse
				testutil.AssertJSON(t, w, &resp)
				if resp.UserID == 0 {
					t.Error("Expected non-zero user_id")
				}
				return
			}

			var resp models.ErrorResponse
			testutil.AssertJSON(t, w, &resp)
			if resp.Message != tt.expectedMsg {
				t.Errorf("Expected message %q, got %q", tt.expectedMsg, resp.Message)
			}
		})
	}
}

func TestRegister_InvalidJSON(t *testing.T) {
	handler, _ := newAuthHandler(t)

	req := httptest.NewRequest("POST", "/auth/register", bytes.NewReader([]byte("{invalid")))
	w := httptest.NewRecorder()

	handler.Register(w, req)

	testutil.AssertStatus(t, w, http.StatusBadRequest)
}

func TestLogin(t *testing.T) {
	handler, tokens := newAuthHandler(t)

	tests := []struct {
		name           string
		username       string
		password       string
		expectedStatus int
	}{
		{"bootstrap admin", "admin", "admin", http.StatusOK},
		{"padded admin username", " admin ", "admin", http.StatusOK},
		{"wrong password", "admin", "nope", http.StatusUnauthorized},
		{"unknown user", "ghost", "admin", http.StatusUnauthorized},
		{"blank username", "  ", "admin", http.StatusBadRequest},
		{"blank password", "admin", "", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := models.CredentialsRequest{Username: tt.username, Password: tt.password}
			req := testutil.MakeRequest("POST", "/auth/login", body, nil)
			w := httptest.NewRecorder()

			handler.Login(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)

			switch tt.expectedStatus {
			case http.StatusOK:
				var resp models.LoginResponse
				testutil.AssertJSON(t, w, &resp)
				if resp.User.Role != models.RoleAdmin {
					t.Errorf("Expected admin role, got %q", resp.User.Role)
				}
				claims, err := tokens.Parse(resp.Token)
				if err != nil {
					t.Fatalf("Issued token does not parse: %v", err)
				}
				if claims.Username != "admin" {
					t.Errorf("Expected token for admin, got %q", claims.Username)
				}
			case http.StatusUnauthorized:
				var resp models.ErrorResponse
				testutil.AssertJSON(t, w, &resp)
				if resp.Message != "Invalid username or password." {
					t.Errorf("Unexpected message %q", resp.Message)
				}
			}
		})
	}
}
