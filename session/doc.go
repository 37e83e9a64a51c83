// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package session drives a user through a quiz and scores the submission.

# State Machine

	NotStarted ──Start──▶ InProgress(index) ──Submit──▶ Completed

Start loads the quiz tree once and keeps it as the session's snapshot; a quiz
without questions fails with models.ErrEmptyQuiz. Nothing is written to storage
until Submit.

# Answering

	err := s.SelectAnswer(questionID, optionID)

  - single_choice: the selection becomes exactly {optionID} (radio)
  - multiple_choice: optionID is toggled in or out (checkbox)

Advance and Retreat clamp to the first and last question and never drop
recorded selections.

# Submitting

	result, err := engine.Submit(ctx, s)

Submit flattens selections into one (question, option) pair per selected
option and hands them to the store together with a grader. The store writes
responses, grades against the live questions and writes one score row in a
single transaction. If that fails the session stays InProgress with all
selections, so submitting again needs no re-answering. Submitting a completed
session fails with models.ErrSessionCompleted; a retake is a new session and
adds a new score row.

# Scoring

No partial credit. A single_choice question scores when the one selected
option is its correct option. A multiple_choice question scores when the
selected set equals the correct set exactly. The total is the sum of the
current points of every question at submit time.

# Registry

Sessions live in a Registry keyed by a random uuid. Do gives exclusive
access to one session and hides sessions owned by other users; sessions idle
for longer than the TTL are dropped lazily.
*/
package session
