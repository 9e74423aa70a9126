package model

type UnitStatus string

const (
	UnitLocked    UnitStatus = "locked"
	UnitActive    UnitStatus = "active"
	UnitCompleted UnitStatus = "completed"
)

// ExamLevel marks a comprehensive exam unit.
const ExamLevel = 99

type QuestionType string

const (
	QuestionMultipleChoice QuestionType = "multiple-choice"
	QuestionTrueFalse      QuestionType = "true-false"
	QuestionFillInBlank    QuestionType = "fill-in-blank"
)

const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

type Question struct {
	ID            string       `json:"id"`
	Type          QuestionType `json:"type"`
	Content       string       `json:"content"`
	Options       []string     `json:"options,omitempty"`
	CorrectAnswer string       `json:"correctAnswer"`
	Explanation   string       `json:"explanation"`
	Difficulty    string       `json:"difficulty"`
}

type LearningUnit struct {
	ID              string     `json:"id"`
	TopicID         string     `json:"topicId"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	Questions       []Question `json:"questions"`
	TotalXP         int        `json:"totalXp"`
	DurationMinutes int        `json:"durationMinutes"`
	Status          UnitStatus `json:"status"`
	Level           int        `json:"level"`
}

func (u LearningUnit) IsExam() bool {
	return u.Level == ExamLevel
}
