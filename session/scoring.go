// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import "github.com/danielhkuo/quizdesk/models"

// Grade scores selected option ids per question against questions. There is
// no partial credit: a question earns its full points or nothing. total is
// the sum of the points of every question passed in.
func Grade(questions []models.Question, selected map[int64][]int64) (earned, total int) {
	for _, q := range questions {
		total += q.Points
		if questionCorrect(q, selected[q.ID]) {
			earned += q.Points
		}
	}
	return earned, total
}

// Grader binds a session's selections into a models.GradeFunc.
func Grader(selected map[int64][]int64) models.GradeFunc {
	return func(questions []models.Question) (int, int) {
		return Grade(questions, selected)
	}
}

func questionCorrect(q models.Question, selected []int64) bool {
	correct := q.CorrectOptionIDs()

	switch q.Type {
	case models.SingleChoice:
		return len(correct) == 1 && len(selected) == 1 && selected[0] == correct[0]
	case models.MultipleChoice:
		chosen := distinct(selected)
		if len(correct) == 0 || len(correct) != len(chosen) {
			return false
		}
		for _, id := range correct {
			if _, ok := chosen[id]; !ok {
				return false
			}
		}
		return true
	}
	return false
}

func distinct(ids []int64) map[int64]struct{} {
	set := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}
