// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import "github.com/danielhkuo/quizdesk/models"

// View is the read-only picture of a session shown to its owner. Correctness
// flags never appear in it.
type View struct {
	ID            string                 `json:"id"`
	QuizID        int64                  `json:"quiz_id"`
	QuizTitle     string                 `json:"quiz_title"`
	State         State                  `json:"state"`
	QuestionIndex int                    `json:"question_index"`
	QuestionCount int                    `json:"question_count"`
	Current       *models.PublicQuestion `json:"current_question,omitempty"`
	Selections    map[int64][]int64      `json:"selections"`
	Answered      int                    `json:"answered"`
	Result        *Result                `json:"result,omitempty"`
}

func (s *Session) View() View {
	v := View{
		ID:            s.ID,
		QuizID:        s.QuizID(),
		QuizTitle:     s.QuizTitle(),
		State:         s.state,
		QuestionIndex: s.index,
		QuestionCount: s.QuestionCount(),
		Selections:    make(map[int64][]int64),
		Answered:      s.Answered(),
	}
	if q, ok := s.Current(); ok {
		pq := q.Public()
		v.Current = &pq
	}
	for qid, ids := range s.selectedByQuestion() {
		if len(ids) > 0 {
			v.Selections[qid] = ids
		}
	}
	if r, ok := s.Result(); ok {
		v.Result = &r
	}
	return v
}
