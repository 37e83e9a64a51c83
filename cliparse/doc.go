// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	if err := cliparse.LoadDotEnv(".env"); err != nil {
		log.Fatal(err)
	}
	cfg, err := cliparse.ParseFlags(os.Args[1:])

LoadDotEnv uses github.com/joho/godotenv and never overrides variables that
are already present in the environment.

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseURL: sqlite file path or postgres connection string (default: quiz.db)
  - DatabaseType: db.SQLite or db.Postgres (default: sqlite)
  - TokenSecret: Bearer token signing secret (required)
  - TokenTTL: Bearer token lifetime (default: 24h)
  - SessionTTL: Idle quiz sessions are dropped after this (default: 2h)
  - SeedDemo: Create the demo quizzes at startup
  - Verbose: Debug logging

# CLI Flags

	-p             Server port
	-d             Database URL
	-t             Database type
	-token-secret  Token signing secret
	-token-ttl     Token lifetime
	-session-ttl   Session idle lifetime
	-seed-demo     Seed demo quizzes
	-v             Debug logging

# Environment Variables

Flags fall back to environment variables:

	PORT          → -p
	DATABASE_URL  → -d
	DATABASE_TYPE → -t
	TOKEN_SECRET  → -token-secret
	TOKEN_TTL     → -token-ttl
	SESSION_TTL   → -session-ttl
	SEED_DEMO     → -seed-demo
	LOG_LEVEL=debug → -v

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error for a missing TOKEN_SECRET, an unknown database
type, an unparsable or out-of-range port and non-positive durations.
*/
package cliparse
