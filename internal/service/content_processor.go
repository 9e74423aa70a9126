package service

import (
	"adaptive_tutor_backend/internal/model"
	"math"
)

func unitFromGenerated(g GeneratedUnit) model.LearningUnit {
	questions := make([]model.Question, len(g.Questions))
	copy(questions, g.Questions)
	return model.LearningUnit{
		TopicID:         g.TopicID,
		Title:           g.Title,
		Description:     g.Description,
		Questions:       questions,
		TotalXP:         int(math.Round(g.TotalXP)),
		DurationMinutes: int(math.Round(g.DurationMinutes)),
	}
}

// BuildPathUnits gives every unit a fresh id and the adjusted level. Only the
// first unit starts active.
func BuildPathUnits(path GeneratedPath, adjustedLevel int) []model.LearningUnit {
	units := make([]model.LearningUnit, 0, len(path.Units))
	for i, g := range path.Units {
		u := unitFromGenerated(g)
		u.ID = "unit-" + model.GenerateUUID()
		u.Level = adjustedLevel
		u.Status = model.UnitLocked
		if i == 0 {
			u.Status = model.UnitActive
		}
		units = append(units, u)
	}
	return units
}

// BuildChallengeUnit keeps the original id so the path entry is replaced in
// place.
func BuildChallengeUnit(g GeneratedUnit, original model.LearningUnit) model.LearningUnit {
	u := unitFromGenerated(g)
	u.ID = original.ID
	u.Status = model.UnitActive
	u.Level = ChallengeLevel(original)
	return u
}

func BuildExamUnit(g GeneratedUnit) model.LearningUnit {
	u := unitFromGenerated(g)
	u.ID = "exam-" + model.GenerateUUID()
	u.Status = model.UnitActive
	u.Level = model.ExamLevel
	return u
}
