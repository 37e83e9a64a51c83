// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/danielhkuo/quizdesk/authoring"
	"github.com/danielhkuo/quizdesk/middleware"
	"github.com/danielhkuo/quizdesk/models"
)

// QuizReader is the read side of the storage engine used for display.
type QuizReader interface {
	ListQuizzes(ctx context.Context) ([]models.Quiz, error)
	GetQuizWithQuestions(ctx context.Context, id int64) (models.QuizWithQuestions, bool, error)
}

type QuizHandler struct {
	quizzes   QuizReader
	authoring *authoring.Service
}

func NewQuizHandler(quizzes QuizReader, svc *authoring.Service) *QuizHandler {
	return &QuizHandler{quizzes: quizzes, authoring: svc}
}

// ListQuizzes handles GET /quizzes
func (h *QuizHandler) ListQuizzes(w http.ResponseWriter, r *http.Request) {
	quizzes, err := h.quizzes.ListQuizzes(r.Context())
	if err != nil {
		middleware.WriteError(w, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, quizzes)
}

// GetQuiz handles GET /quizzes/{id}
// Admins see correctness flags; everyone else gets the public view.
func (h *QuizHandler) GetQuiz(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	quiz, found, err := h.quizzes.GetQuizWithQuestions(r.Context(), id)
	if err != nil {
		middleware.WriteError(w, err)
		return
	}
	if !found {
		middleware.WriteError(w, &models.NotFoundError{Entity: "quiz", ID: id})
		return
	}

	if user, _ := middleware.UserFromContext(r.Context()); user.IsAdmin() {
		middleware.JSONResponse(w, http.StatusOK, quiz)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, quiz.Public())
}

// CreateQuiz handles POST /quizzes
func (h *QuizHandler) CreateQuiz(w http.ResponseWriter, r *http.Request) {
	var req models.QuizRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	user, _ := middleware.UserFromContext(r.Context())
	id, err := h.authoring.CreateQuiz(r.Context(), req.Title, req.Description, user.ID)
	if err != nil {
		middleware.WriteError(w, err)
		return
	}
	middleware.JSONResponse(w, http.StatusCreated, models.CreatedResponse{ID: id})
}

// UpdateQuiz handles PUT /quizzes/{id}
func (h *QuizHandler) UpdateQuiz(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req models.QuizRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := h.authoring.UpdateQuiz(r.Context(), id, req.Title, req.Description); err != nil {
		middleware.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DeleteQuiz handles DELETE /quizzes/{id}
func (h *QuizHandler) DeleteQuiz(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	deleted, err := h.authoring.DeleteQuiz(r.Context(), id)
	if err != nil {
		middleware.WriteError(w, err)
		return
	}
	if !deleted {
		middleware.WriteError(w, &models.NotFoundError{Entity: "quiz", ID: id})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// AddQuestion handles POST /quizzes/{id}/questions
func (h *QuizHandler) AddQuestion(w http.ResponseWriter, r *http.Request) {
	quizID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	h.saveQuestion(w, r, quizID, 0, http.StatusCreated)
}

// UpdateQuestion handles PUT /quizzes/{id}/questions/{questionID}
func (h *QuizHandler) UpdateQuestion(w http.ResponseWriter, r *http.Request) {
	quizID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	questionID, ok := pathID(w, r, "questionID")
	if !ok {
		return
	}
	h.saveQuestion(w, r, quizID, questionID, http.StatusOK)
}

func (h *QuizHandler) saveQuestion(w http.ResponseWriter, r *http.Request, quizID, questionID int64, status int) {
	var req models.QuestionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	id, err := h.authoring.SaveQuestionWithOptions(r.Context(), models.QuestionDraft{
		QuizID:  quizID,
		ID:      questionID,
		Text:    req.Text,
		Type:    req.Type,
		Points:  req.Points,
		Options: req.Options,
	})
	if err != nil {
		middleware.WriteError(w, err)
		return
	}
	middleware.JSONResponse(w, status, models.CreatedResponse{ID: id})
}

// DeleteQuestion handles DELETE /questions/{id}
func (h *QuizHandler) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	deleted, err := h.authoring.DeleteQuestion(r.Context(), id)
	if err != nil {
		middleware.WriteError(w, err)
		return
	}
	if !deleted {
		middleware.WriteError(w, &models.NotFoundError{Entity: "question", ID: id})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// CreateDemoQuizzes handles POST /demo-quizzes
func (h *QuizHandler) CreateDemoQuizzes(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFromContext(r.Context())

	created, err := h.authoring.CreateDemoQuizzes(r.Context(), user.ID)
	if err != nil {
		middleware.WriteError(w, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, models.DemoQuizzesResponse{Created: created})
}

// pathID parses a positive integer path value, writing 400 on failure
func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil || id <= 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid "+name)
		return 0, false
	}
	return id, true
}
