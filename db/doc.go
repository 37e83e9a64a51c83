// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db is the storage engine: schema creation, admin bootstrap and every
persistence operation over users, quizzes, questions, options, responses and
scores.

# Opening a Store

	store, err := db.Open(db.SQLite, "quiz.db")
	if err != nil {
		log.Fatal(err)
	}
	defer store.Close()

	if err := store.Init(ctx); err != nil {
		log.Fatal(err)
	}

Two dialects are supported: SQLite (modernc.org/sqlite, pure Go) and Postgres
(github.com/lib/pq). Queries use $N placeholders and RETURNING, which both
accept. SQLite connections enable foreign keys through the DSN pragma and the
pool is capped at a single connection.

Init is safe to call multiple times - uses IF NOT EXISTS for all tables and
indexes and never duplicates the bootstrap admin.

# Bootstrap Admin

Init guarantees an admin account exists. When no admin row is present, the
account "admin" is created with the digest of the bootstrap password. An
existing admin keeps its password unless it is still the plaintext bootstrap
password or is not a digest at all, in which case it is rehashed.

# Transactions

Every exported method runs in its own transaction and either commits fully or
rolls back. Failures come back as:

  - *models.ValidationError: unique username taken
  - *models.NotFoundError: an update addressed a missing id
  - *models.StorageError: anything the driver reported

Lookups by id never fail on a missing row; they return found == false.

# Tables

	users 1──* quizzes (created_by)
	quizzes 1──* questions 1──* options
	users 1──* responses *──1 options
	users 1──* scores *──1 quizzes

Deleting a quiz cascades to its questions, their options, the responses
pointing at them and the quiz's scores. Users are never cascaded.

# Ordering

  - ListQuizzes: title ascending
  - questions of a quiz: id ascending (creation order)
  - options of a question: id ascending
  - ListUserScores: newest first

# Submissions

RecordSubmission writes responses and the score in one transaction. Grading is
injected as a GradeFunc and runs against the questions as they are stored at
submission time, so total_points always reflects the live point values.
*/
package db
