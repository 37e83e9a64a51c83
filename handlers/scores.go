// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"math"
	"net/http"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/quizdesk/middleware"
	"github.com/danielhkuo/quizdesk/models"
)

// ScoreReader lists a user's past submissions.
type ScoreReader interface {
	ListUserScores(ctx context.Context, userID int64) ([]models.ScoreEntry, error)
}

type ScoreHandler struct {
	scores ScoreReader
	now    func() time.Time
}

func NewScoreHandler(scores ScoreReader) *ScoreHandler {
	return &ScoreHandler{scores: scores, now: time.Now}
}

// MyScores handles GET /me/scores
func (h *ScoreHandler) MyScores(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFromContext(r.Context())

	entries, err := h.scores.ListUserScores(r.Context(), user.ID)
	if err != nil {
		middleware.WriteError(w, err)
		return
	}

	now := h.now()
	history := make([]models.ScoreHistoryEntry, 0, len(entries))
	for _, e := range entries {
		history = append(history, models.ScoreHistoryEntry{
			ID:           e.ID,
			QuizID:       e.QuizID,
			QuizTitle:    e.QuizTitle,
			Score:        e.Score.Score,
			TotalPoints:  e.TotalPoints,
			Percentage:   math.Round(e.Percentage()*10) / 10,
			CompletedAt:  e.CompletedAt,
			CompletedAgo: humanize.RelTime(e.CompletedAt, now, "ago", "from now"),
		})
	}
	middleware.JSONResponse(w, http.StatusOK, history)
}
