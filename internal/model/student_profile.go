package model

import (
	"adaptive_tutor_backend/pkg/numerology"

	"gorm.io/gorm"
)

// StudentProfile is persisted as one row; path, history and tag lists are
// JSON columns.
type StudentProfile struct {
	UUIDBase
	Name             string         `gorm:"size:100;not null" json:"name"`
	BirthDate        string         `gorm:"size:20;not null" json:"birthDate"`
	Grade            int            `gorm:"not null" json:"grade"`
	NumerologyNumber int            `gorm:"not null" json:"numerologyNumber"`
	ProficiencyLevel int            `gorm:"not null;default:2" json:"proficiencyLevel"`
	LearningHabits   []string       `gorm:"type:text;serializer:json" json:"learningHabits"`
	Notes            string         `gorm:"type:text" json:"notes"`
	SelectedTopics   []string       `gorm:"type:text;serializer:json" json:"selectedTopics"`
	LearningPath     []LearningUnit `gorm:"type:longtext;serializer:json" json:"learningPath"`
	History          []QuizResult   `gorm:"type:longtext;serializer:json" json:"history"`

	NumerologyProfile *numerology.Profile `gorm:"-" json:"numerologyProfile,omitempty"`
}

func (StudentProfile) TableName() string {
	return "student_profiles"
}

func (p *StudentProfile) AfterFind(tx *gorm.DB) error {
	p.AttachNumerology()
	return nil
}

// AttachNumerology fills NumerologyProfile from the stored number.
func (p *StudentProfile) AttachNumerology() {
	np, _ := numerology.Lookup(p.NumerologyNumber)
	p.NumerologyProfile = &np
}

// UnitIndex returns the position of the unit with id in the path, or -1.
func (p *StudentProfile) UnitIndex(id string) int {
	for i := range p.LearningPath {
		if p.LearningPath[i].ID == id {
			return i
		}
	}
	return -1
}
