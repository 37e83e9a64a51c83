// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the quizdesk API.

# Handler Types

Each handler is a struct holding the services it calls:

  - AuthHandler: Registration and login
  - QuizHandler: Quiz browsing and authoring
  - SessionHandler: Quiz attempts, answers and submission
  - ScoreHandler: Score history for the caller

Handlers are created via constructor functions:

	quizHandler := handlers.NewQuizHandler(store, authoring.NewService(store))

Routes that need a caller are wrapped with middleware.RequireUser or
middleware.RequireAdmin; handlers read the caller with
middleware.UserFromContext.

# Errors

Service errors are written with middleware.WriteError, which maps validation
failures to 400, missing records and foreign sessions to 404, empty quizzes to
422 and repeated submits to 409. Validation messages are returned verbatim.

# Quiz Visibility

GET /quizzes/{id} returns correctness flags only to admins. Everyone else gets
models.PublicQuiz, the same shape session views use.

# Session Flow

	POST /sessions              → StartSession (returns the first view)
	POST /sessions/{id}/answers → SelectAnswer (radio or toggle by type)
	POST /sessions/{id}/advance → Advance
	POST /sessions/{id}/retreat → Retreat
	POST /sessions/{id}/submit  → Submit (grades and saves once)

# Score History

GET /me/scores lists the caller's attempts newest first. Percentages are
rounded to one decimal and each entry carries a humanized age such as
"3 hours ago".
*/
package handlers
