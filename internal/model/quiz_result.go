package model

import "time"

// QuizResult is one finished attempt at a unit. It is stored inside the
// profile history, newest first, and never changed afterwards.
type QuizResult struct {
	UnitID         string         `json:"unitId"`
	UnitTitle      string         `json:"unitTitle"`
	Score          int            `json:"score"`
	TotalQuestions int            `json:"totalQuestions"`
	UserAnswers    map[string]any `json:"userAnswers,omitempty"`
	Timestamp      time.Time      `json:"timestamp"`
}

// Ratio is score/totalQuestions; a result without questions counts as 0.
func (r QuizResult) Ratio() float64 {
	if r.TotalQuestions <= 0 {
		return 0
	}
	return float64(r.Score) / float64(r.TotalQuestions)
}
