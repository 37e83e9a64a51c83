// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs request start at debug level and completion (status, remote, duration_ms).

# CORS Middleware

Enable cross-origin requests for frontend access:

	server := http.Server{
		Handler: middleware.CORS(mux),
	}

Allows methods GET, POST, PUT, DELETE, OPTIONS with headers
Content-Type, Authorization.

# Bearer Authentication

	mux.HandleFunc("GET /quizzes", middleware.RequireUser(issuer, h.ListQuizzes))
	mux.HandleFunc("POST /quizzes", middleware.RequireAdmin(issuer, h.CreateQuiz))

Both verify the Authorization: Bearer token and put the user in the request
context:

	user, ok := middleware.UserFromContext(r.Context())

Missing or invalid tokens get 401; non-admins on admin routes get 403.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

Parse JSON request bodies:

	var req models.QuizRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

# Error Mapping

WriteError turns service errors into responses:

  - *models.ValidationError → 400, message verbatim
  - *models.NotFoundError, models.ErrSessionNotFound → 404
  - models.ErrEmptyQuiz → 422
  - models.ErrSessionCompleted → 409
  - anything else → 500 with a generic message, logged

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)

Used in request logs.
*/
package middleware
