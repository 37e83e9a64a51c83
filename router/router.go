// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"fmt"
	"net/http"

	"github.com/danielhkuo/quizdesk/auth"
	"github.com/danielhkuo/quizdesk/authoring"
	"github.com/danielhkuo/quizdesk/cliparse"
	"github.com/danielhkuo/quizdesk/db"
	"github.com/danielhkuo/quizdesk/handlers"
	"github.com/danielhkuo/quizdesk/middleware"
	"github.com/danielhkuo/quizdesk/session"
)

func NewRouter(store *db.Store, cfg cliparse.Config) (*http.ServeMux, error) {
	tokens, err := auth.NewIssuer(cfg.TokenSecret, cfg.TokenTTL)
	if err != nil {
		return nil, fmt.Errorf("token issuer: %w", err)
	}

	mux := http.NewServeMux()

	// Initialize services and handlers
	engine := session.NewEngine(store, session.NewRegistry(cfg.SessionTTL))
	authHandler := handlers.NewAuthHandler(auth.NewService(store), tokens)
	quizHandler := handlers.NewQuizHandler(store, authoring.NewService(store))
	sessionHandler := handlers.NewSessionHandler(engine)
	scoreHandler := handlers.NewScoreHandler(store)

	user := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(middleware.RequireUser(tokens, h))
	}
	admin := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(middleware.RequireAdmin(tokens, h))
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Accounts
	mux.HandleFunc("POST /auth/register", middleware.WithLogging(authHandler.Register))
	mux.HandleFunc("POST /auth/login", middleware.WithLogging(authHandler.Login))

	// Quiz browsing
	mux.HandleFunc("GET /quizzes", user(quizHandler.ListQuizzes))
	mux.HandleFunc("GET /quizzes/{id}", user(quizHandler.GetQuiz))

	// Authoring (admin operations)
	mux.HandleFunc("POST /quizzes", admin(quizHandler.CreateQuiz))
	mux.HandleFunc("PUT /quizzes/{id}", admin(quizHandler.UpdateQuiz))
	mux.HandleFunc("DELETE /quizzes/{id}", admin(quizHandler.DeleteQuiz))
	mux.HandleFunc("POST /quizzes/{id}/questions", admin(quizHandler.AddQuestion))
	mux.HandleFunc("PUT /quizzes/{id}/questions/{questionID}", admin(quizHandler.UpdateQuestion))
	mux.HandleFunc("DELETE /questions/{id}", admin(quizHandler.DeleteQuestion))
	mux.HandleFunc("POST /demo-quizzes", admin(quizHandler.CreateDemoQuizzes))

	// Quiz sessions (owner only; the registry rejects other users)
	mux.HandleFunc("POST /sessions", user(sessionHandler.StartSession))
	mux.HandleFunc("GET /sessions/{id}", user(sessionHandler.GetSession))
	mux.HandleFunc("POST /sessions/{id}/answers", user(sessionHandler.SelectAnswer))
	mux.HandleFunc("POST /sessions/{id}/advance", user(sessionHandler.Advance))
	mux.HandleFunc("POST /sessions/{id}/retreat", user(sessionHandler.Retreat))
	mux.HandleFunc("POST /sessions/{id}/submit", user(sessionHandler.Submit))
	mux.HandleFunc("DELETE /sessions/{id}", user(sessionHandler.Discard))

	// Score history
	mux.HandleFunc("GET /me/scores", user(scoreHandler.MyScores))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("quizdesk API v1"))
	})

	return mux, nil
}
