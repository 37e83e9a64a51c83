// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/danielhkuo/quizdesk/auth"
	"github.com/danielhkuo/quizdesk/models"
)

type contextKey struct{}

var userKey contextKey

// TokenParser verifies bearer tokens.
type TokenParser interface {
	Parse(token string) (*auth.Claims, error)
}

// WithUser stores the authenticated user in ctx.
func WithUser(ctx context.Context, user models.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// UserFromContext returns the user set by RequireUser or RequireAdmin.
func UserFromContext(ctx context.Context) (models.User, bool) {
	user, ok := ctx.Value(userKey).(models.User)
	return user, ok
}

// RequireUser rejects requests without a valid bearer token
func RequireUser(tokens TokenParser, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := authenticate(tokens, r)
		if !ok {
			ErrorResponse(w, http.StatusUnauthorized, "Missing or invalid bearer token")
			return
		}
		next(w, r.WithContext(WithUser(r.Context(), user)))
	}
}

// RequireAdmin rejects requests whose token does not carry the admin role
func RequireAdmin(tokens TokenParser, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := authenticate(tokens, r)
		if !ok {
			ErrorResponse(w, http.StatusUnauthorized, "Missing or invalid bearer token")
			return
		}
		if !user.IsAdmin() {
			slog.Warn("admin route denied", "user_id", user.ID, "path", r.URL.Path)
			ErrorResponse(w, http.StatusForbidden, "Admin access required")
			return
		}
		next(w, r.WithContext(WithUser(r.Context(), user)))
	}
}

func authenticate(tokens TokenParser, r *http.Request) (models.User, bool) {
	header := r.Header.Get("Authorization")
	token, found := strings.CutPrefix(header, "Bearer ")
	if !found || token == "" {
		return models.User{}, false
	}

	claims, err := tokens.Parse(token)
	if err != nil {
		slog.Debug("bearer token rejected", "error", err)
		return models.User{}, false
	}
	id, err := claims.UserID()
	if err != nil {
		return models.User{}, false
	}
	return models.User{ID: id, Username: claims.Username, Role: claims.Role}, true
}
