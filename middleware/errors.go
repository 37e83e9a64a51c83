// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/quizdesk/models"
)

// StatusFor maps an error from the services to an HTTP status.
func StatusFor(err error) int {
	var (
		validation *models.ValidationError
		notFound   *models.NotFoundError
	)
	switch {
	case errors.As(err, &validation):
		return http.StatusBadRequest
	case errors.As(err, &notFound), errors.Is(err, models.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrEmptyQuiz):
		return http.StatusUnprocessableEntity
	case errors.Is(err, models.ErrSessionCompleted):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

// WriteError writes err as a JSON error response. Validation and lookup
// messages are shown verbatim; anything else is logged and replaced with a
// generic message.
func WriteError(w http.ResponseWriter, err error) {
	status := StatusFor(err)
	if status == http.StatusInternalServerError {
		slog.Error("request failed", "error", err)
		ErrorResponse(w, status, "Internal server error")
		return
	}

	var validation *models.ValidationError
	if errors.As(err, &validation) {
		ErrorResponse(w, status, validation.Message)
		return
	}
	ErrorResponse(w, status, err.Error())
}
