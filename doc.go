// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the quizdesk API server.

quizdesk stores multiple-choice quizzes, lets an admin author them, and lets
users take them one question at a time. Submitted attempts are graded
all-or-nothing per question and saved to a per-user score history.

# Starting the Server

The server needs a token secret; everything else has a default:

	TOKEN_SECRET=change-me go run .

Or with flags:

	go run . -p 3318 -d quiz.db -token-secret change-me

A .env file in the working directory is read first. Variables already set in
the environment take precedence over it.

# Configuration

Required settings:

  - TOKEN_SECRET (-token-secret): HMAC key for bearer tokens

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - DATABASE_URL (-d): sqlite file path or postgres URL (default: quiz.db)
  - TOKEN_TTL (-token-ttl): bearer token lifetime (default: 24h)
  - SESSION_TTL (-session-ttl): idle quiz session lifetime (default: 2h)
  - SEED_DEMO (-seed-demo): insert the demo quizzes at startup
  - LOG_LEVEL=debug (-v): debug logging

On first start the schema is created and an "admin" account with password
"admin" is bootstrapped.

# Architecture

  - handlers: HTTP request handlers (auth, quizzes, sessions, scores)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, bearer auth, JSON and error helpers
  - models: Records, request/response types and the error taxonomy
  - auth: Password digests, login, registration and tokens
  - authoring: Quiz and question editing with validation, demo quizzes
  - session: Quiz attempts, scoring and the session registry
  - db: Storage engine for sqlite and postgres
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
