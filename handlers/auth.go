// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/danielhkuo/quizdesk/auth"
	"github.com/danielhkuo/quizdesk/middleware"
	"github.com/danielhkuo/quizdesk/models"
)

type AuthHandler struct {
	auth   *auth.Service
	tokens *auth.Issuer
}

func NewAuthHandler(svc *auth.Service, tokens *auth.Issuer) *AuthHandler {
	return &AuthHandler{auth: svc, tokens: tokens}
}

// Register handles POST /auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.CredentialsRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	id, err := h.auth.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		middleware.WriteError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, models.RegisterResponse{UserID: id})
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.CredentialsRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if strings.TrimSpace(req.Username) == "" || req.Password == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Please enter both username and password")
		return
	}

	user, ok, err := h.auth.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		middleware.WriteError(w, err)
		return
	}
	if !ok {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid username or password.")
		return
	}

	token, expires, err := h.tokens.Issue(user)
	if err != nil {
		slog.Error("failed to issue token", "user_id", user.ID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to log in")
		return
	}

	slog.Info("user logged in", "user_id", user.ID, "role", string(user.Role))

	middleware.JSONResponse(w, http.StatusOK, models.LoginResponse{
		Token:     token,
		ExpiresAt: expires,
		User:      user,
	})
}
