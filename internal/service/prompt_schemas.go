package service

import (
	"adaptive_tutor_backend/internal/model"
	"adaptive_tutor_backend/internal/schema"
	"errors"
	"fmt"
)

func questionSchema() *schema.Node {
	return schema.Object(
		schema.Required("id", schema.String()),
		schema.Required("type", schema.StringEnum(
			string(model.QuestionMultipleChoice),
			string(model.QuestionTrueFalse),
			string(model.QuestionFillInBlank),
		)),
		schema.Required("content", schema.String()),
		schema.Optional("options", schema.Nullable(schema.Array(schema.String()))),
		schema.Required("correctAnswer", schema.String()),
		schema.Required("explanation", schema.String()),
		schema.Required("difficulty", schema.StringEnum(model.DifficultyEasy, model.DifficultyMedium, model.DifficultyHard)),
	)
}

// UnitSchema describes one generated learning unit.
func UnitSchema() *schema.Node {
	return schema.Object(
		schema.Required("topicId", schema.String()),
		schema.Required("title", schema.String()),
		schema.Required("description", schema.String()),
		schema.Required("totalXp", schema.Number()),
		schema.Required("durationMinutes", schema.Number()),
		schema.Required("questions", schema.Array(questionSchema())),
	)
}

func PathSchema() *schema.Node {
	return schema.Object(
		schema.Required("units", schema.Array(UnitSchema())),
	)
}

func ActivitiesSchema() *schema.Node {
	activity := schema.Object(
		schema.Required("id", schema.String()),
		schema.Required("type", schema.StringEnum(
			string(model.ActivityGame),
			string(model.ActivityPuzzle),
			string(model.ActivityChallenge),
		)),
		schema.Required("title", schema.String()),
		schema.Required("description", schema.String()),
		schema.Required("difficulty", schema.StringEnum("Dễ", "Vừa", "Khó")),
		schema.Required("duration", schema.String()),
		schema.Required("xpReward", schema.Number()),
		schema.Required("interactiveContent", schema.String().Describe("Nội dung chính: Câu hỏi đố, luật chơi, hoặc hướng dẫn thử thách. PHẢI CÓ CÂU HỎI CUỐI CÙNG.")),
		schema.Required("answer", schema.String().Describe("Đáp án CHÍNH XÁC cho câu hỏi (số hoặc từ ngắn) để chấm điểm.")),
		schema.Optional("hint", schema.Nullable(schema.String())),
		schema.Required("funFact", schema.String().Describe("Sự thật thú vị liên quan đến chủ đề")),
	)
	return schema.Object(
		schema.Required("activities", schema.Array(activity)),
	)
}

// GeneratedUnit is a unit as returned by the model, before ids, status and
// level are assigned. XP and duration arrive as JSON numbers.
type GeneratedUnit struct {
	TopicID         string           `json:"topicId"`
	Title           string           `json:"title"`
	Description     string           `json:"description"`
	TotalXP         float64          `json:"totalXp"`
	DurationMinutes float64          `json:"durationMinutes"`
	Questions       []model.Question `json:"questions"`
}

var validQuestionTypes = map[model.QuestionType]bool{
	model.QuestionMultipleChoice: true,
	model.QuestionTrueFalse:      true,
	model.QuestionFillInBlank:    true,
}

var validDifficulties = map[string]bool{
	model.DifficultyEasy:   true,
	model.DifficultyMedium: true,
	model.DifficultyHard:   true,
}

func (u *GeneratedUnit) Validate() error {
	if len(u.Questions) == 0 {
		return fmt.Errorf("unit %q has no questions", u.Title)
	}
	for i, q := range u.Questions {
		if !validQuestionTypes[q.Type] {
			return fmt.Errorf("unit %q question %d has unknown type %q", u.Title, i+1, q.Type)
		}
		if !validDifficulties[q.Difficulty] {
			return fmt.Errorf("unit %q question %d has unknown difficulty %q", u.Title, i+1, q.Difficulty)
		}
	}
	return nil
}

type GeneratedPath struct {
	Units []GeneratedUnit `json:"units"`
}

func (p *GeneratedPath) Validate() error {
	if len(p.Units) == 0 {
		return errors.New("learning path has no units")
	}
	for i := range p.Units {
		if err := p.Units[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}

type GeneratedActivities struct {
	Activities []model.Activity `json:"activities"`
}

func (a *GeneratedActivities) Validate() error {
	if len(a.Activities) == 0 {
		return errors.New("no activities returned")
	}
	return nil
}
