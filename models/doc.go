// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines domain records, the error taxonomy, and the request and
response types of the API.

# Domain Types

Fixed-shape records mirroring the six tables:

  - User: id, username, password digest (never serialized), role
  - Quiz: title, description, author, creation time
  - Question: text, type, points, ordered options
  - Option: text and correctness flag
  - Response: one selected option of one question by one user
  - Score: earned and total points of one submission

QuizWithQuestions is the nested read model returned by the store.

# Question Types

QuestionType is an enumeration, serialized by name:

	SingleChoice   = "single_choice"
	MultipleChoice = "multiple_choice"

# Errors

  - ValidationError: bad input, Message is shown verbatim
  - NotFoundError: referenced id is absent
  - StorageError: database failure, wraps the driver error
  - ErrEmptyQuiz: a session was requested for a quiz without questions
  - ErrSessionCompleted: a submitted session was used again
  - ErrDuplicateUsername, ErrReservedUsername: wrapped by ValidationError

Failed authentication is not an error; see package auth.

# Roles

	RoleAdmin = "admin"
	RoleUser  = "user"
*/
package models
