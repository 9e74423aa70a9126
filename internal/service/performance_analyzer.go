package service

import (
	"adaptive_tutor_backend/internal/model"
	"adaptive_tutor_backend/internal/util"
)

// Thresholds classify a single quiz result. A ratio below Weak marks the
// unit title weak; a ratio at or above Strong marks it strong.
type Thresholds struct {
	Weak   float64
	Strong float64
}

var (
	PathThresholds = Thresholds{Weak: 0.5, Strong: 0.8}
	// ExamThresholds widen the weak band so the exam covers more remediation.
	ExamThresholds = Thresholds{Weak: 0.6, Strong: 0.8}
)

const (
	recentWindow = 5

	remedialBelow = 0.5
	advancedAbove = 0.85
	remedialLevel = 1
	advancedLevel = 4
)

type PerformanceAnalysis struct {
	AdjustedLevel int      `json:"adjustedLevel"`
	WeakTopics    []string `json:"weakTopics"`
	StrongTopics  []string `json:"strongTopics"`
	// RecentAverage is the mean ratio of the newest five results; 0 when
	// HasHistory is false.
	RecentAverage float64 `json:"recentAverage"`
	HasHistory    bool    `json:"hasHistory"`
}

// AnalyzePerformance turns history (newest first) into generation controls.
// Self-reported proficiency is kept unless the recent average falls in the
// remedial or advanced band. A zero self-report counts as the default level.
func AnalyzePerformance(history []model.QuizResult, selfReported int, th Thresholds) PerformanceAnalysis {
	level := selfReported
	if level == 0 {
		level = util.DefaultProficiency
	}

	out := PerformanceAnalysis{
		AdjustedLevel: level,
		WeakTopics:    []string{},
		StrongTopics:  []string{},
	}
	if len(history) == 0 {
		return out
	}
	out.HasHistory = true

	weakSeen := make(map[string]bool)
	strongSeen := make(map[string]bool)
	for _, h := range history {
		r := h.Ratio()
		if r < th.Weak && !weakSeen[h.UnitTitle] {
			weakSeen[h.UnitTitle] = true
			out.WeakTopics = append(out.WeakTopics, h.UnitTitle)
		}
		if r >= th.Strong && !strongSeen[h.UnitTitle] {
			strongSeen[h.UnitTitle] = true
			out.StrongTopics = append(out.StrongTopics, h.UnitTitle)
		}
	}

	recent := history
	if len(recent) > recentWindow {
		recent = recent[:recentWindow]
	}
	var sum float64
	for _, h := range recent {
		sum += h.Ratio()
	}
	out.RecentAverage = sum / float64(len(recent))

	switch {
	case out.RecentAverage < remedialBelow:
		out.AdjustedLevel = remedialLevel
	case out.RecentAverage > advancedAbove:
		out.AdjustedLevel = advancedLevel
	}
	return out
}
