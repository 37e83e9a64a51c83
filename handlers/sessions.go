// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/quizdesk/middleware"
	"github.com/danielhkuo/quizdesk/models"
	"github.com/danielhkuo/quizdesk/session"
)

type SessionHandler struct {
	engine *session.Engine
}

func NewSessionHandler(engine *session.Engine) *SessionHandler {
	return &SessionHandler{engine: engine}
}

// StartSession handles POST /sessions
func (h *SessionHandler) StartSession(w http.ResponseWriter, r *http.Request) {
	var req models.StartSessionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.QuizID <= 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "quiz_id is required")
		return
	}

	user, _ := middleware.UserFromContext(r.Context())
	s, err := h.engine.Start(r.Context(), user.ID, req.QuizID)
	if err != nil {
		middleware.WriteError(w, err)
		return
	}

	var view session.View
	err = h.engine.Registry().Do(s.ID, user.ID, func(s *session.Session) error {
		view = s.View()
		return nil
	})
	if err != nil {
		middleware.WriteError(w, err)
		return
	}
	middleware.JSONResponse(w, http.StatusCreated, view)
}

// GetSession handles GET /sessions/{id}
func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	h.withSession(w, r, func(s *session.Session) error { return nil })
}

// SelectAnswer handles POST /sessions/{id}/answers
func (h *SessionHandler) SelectAnswer(w http.ResponseWriter, r *http.Request) {
	var req models.SelectAnswerRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	h.withSession(w, r, func(s *session.Session) error {
		return s.SelectAnswer(req.QuestionID, req.OptionID)
	})
}

// Advance handles POST /sessions/{id}/advance
func (h *SessionHandler) Advance(w http.ResponseWriter, r *http.Request) {
	h.withSession(w, r, func(s *session.Session) error {
		s.Advance()
		return nil
	})
}

// Retreat handles POST /sessions/{id}/retreat
func (h *SessionHandler) Retreat(w http.ResponseWriter, r *http.Request) {
	h.withSession(w, r, func(s *session.Session) error {
		s.Retreat()
		return nil
	})
}

// Submit handles POST /sessions/{id}/submit
func (h *SessionHandler) Submit(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFromContext(r.Context())

	var result session.Result
	err := h.engine.Registry().Do(r.PathValue("id"), user.ID, func(s *session.Session) error {
		var err error
		result, err = h.engine.Submit(r.Context(), s)
		return err
	})
	if err != nil {
		middleware.WriteError(w, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, result)
}

// Discard handles DELETE /sessions/{id}
func (h *SessionHandler) Discard(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFromContext(r.Context())

	if err := h.engine.Registry().Remove(r.PathValue("id"), user.ID); err != nil {
		middleware.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// withSession runs fn on the caller's session and responds with its view
func (h *SessionHandler) withSession(w http.ResponseWriter, r *http.Request, fn func(*session.Session) error) {
	user, _ := middleware.UserFromContext(r.Context())

	var view session.View
	err := h.engine.Registry().Do(r.PathValue("id"), user.ID, func(s *session.Session) error {
		if err := fn(s); err != nil {
			return err
		}
		view = s.View()
		return nil
	})
	if err != nil {
		middleware.WriteError(w, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, view)
}
