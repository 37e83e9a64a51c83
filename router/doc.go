// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the quizdesk API.

# Route Registration

NewRouter wires the services to the store and returns a configured
http.ServeMux. It fails only when the configuration cannot sign tokens:

	mux, err := router.NewRouter(store, cfg)

# Endpoints

Health:

	GET /health

Accounts (public):

	POST /auth/register - Create a regular user
	POST /auth/login    - Exchange credentials for a bearer token

Quizzes (any logged-in user):

	GET /quizzes      - List quizzes by title
	GET /quizzes/{id} - Quiz with questions; correctness only for admins

Authoring (admin):

	POST   /quizzes                              - Create quiz
	PUT    /quizzes/{id}                         - Edit title and description
	DELETE /quizzes/{id}                         - Delete quiz and its history
	POST   /quizzes/{id}/questions               - Add question with options
	PUT    /quizzes/{id}/questions/{questionID}  - Replace question and options
	DELETE /questions/{id}                       - Delete question
	POST   /demo-quizzes                         - Insert missing demo quizzes

Sessions (owner only):

	POST   /sessions              - Start a quiz attempt
	GET    /sessions/{id}         - Current view
	POST   /sessions/{id}/answers - Select or toggle an option
	POST   /sessions/{id}/advance - Next question
	POST   /sessions/{id}/retreat - Previous question
	POST   /sessions/{id}/submit  - Grade and persist
	DELETE /sessions/{id}         - Discard without saving

Scores:

	GET /me/scores - Caller's history, newest first

# Handler Initialization

One session registry is shared by all requests, so a mux holds its sessions
for its lifetime. Build exactly one router per process.
*/
package router
