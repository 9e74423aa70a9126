package service

import (
	"adaptive_tutor_backend/internal/llm"
	"adaptive_tutor_backend/internal/model"
	"adaptive_tutor_backend/internal/util"
	"adaptive_tutor_backend/pkg/logger"
	"context"

	"go.uber.org/zap"
)

// Generator is the fallback generation client.
type Generator interface {
	GenerateJSON(ctx context.Context, req *llm.Request, out any) (string, error)
	GenerateText(ctx context.Context, req *llm.Request) (string, string, error)
}

// LearningPathService turns a profile into generated learning content. It
// never mutates the profile it is given; persisting results is up to the
// caller.
type LearningPathService struct {
	Generator Generator
	Archive   *ContentArchive
	log       *zap.Logger
}

func NewLearningPathService(gen Generator, archive *ContentArchive) *LearningPathService {
	return &LearningPathService{
		Generator: gen,
		Archive:   archive,
		log:       logger.Log.With(zap.String("service", "LearningPathService")),
	}
}

// GenerateLearningPath returns the new path for topics. Blank and repeated
// topics are dropped. Generation errors are returned unchanged.
func (s *LearningPathService) GenerateLearningPath(ctx context.Context, p *model.StudentProfile, topics []string) ([]model.LearningUnit, error) {
	topics = dedupe(topics)
	if len(topics) == 0 {
		return nil, util.ErrEmptyTopics
	}
	perf := AnalyzePerformance(p.History, p.ProficiencyLevel, PathThresholds)
	req := ComposeLearningPath(p, perf, topics)

	var out GeneratedPath
	modelID, err := s.Generator.GenerateJSON(ctx, req, &out)
	if err != nil {
		s.log.Error("learning path generation failed", zap.String("profile_id", p.ID), zap.Error(err))
		return nil, err
	}

	units := BuildPathUnits(out, perf.AdjustedLevel)
	s.log.Info("learning path generated",
		zap.String("profile_id", p.ID),
		zap.String("model", modelID),
		zap.Int("units", len(units)),
		zap.Int("level", perf.AdjustedLevel),
	)
	for i := range units {
		s.archive(ctx, p.ID, units[i].ID, units[i])
	}
	return units, nil
}

func (s *LearningPathService) GenerateChallengeUnit(ctx context.Context, p *model.StudentProfile, unit model.LearningUnit) (model.LearningUnit, error) {
	req := ComposeChallenge(p, unit)

	var out GeneratedUnit
	modelID, err := s.Generator.GenerateJSON(ctx, req, &out)
	if err != nil {
		s.log.Error("challenge generation failed", zap.String("unit_id", unit.ID), zap.Error(err))
		return unitZero, err
	}

	upgraded := BuildChallengeUnit(out, unit)
	s.log.Info("challenge unit generated",
		zap.String("unit_id", upgraded.ID),
		zap.String("model", modelID),
		zap.Int("level", upgraded.Level),
	)
	s.archive(ctx, p.ID, upgraded.ID, upgraded)
	return upgraded, nil
}

func (s *LearningPathService) GenerateComprehensiveTest(ctx context.Context, p *model.StudentProfile) (model.LearningUnit, error) {
	perf := AnalyzePerformance(p.History, p.ProficiencyLevel, ExamThresholds)
	req := ComposeExam(p, perf)

	var out GeneratedUnit
	modelID, err := s.Generator.GenerateJSON(ctx, req, &out)
	if err != nil {
		s.log.Error("exam generation failed", zap.String("profile_id", p.ID), zap.Error(err))
		return unitZero, err
	}

	exam := BuildExamUnit(out)
	s.log.Info("exam generated", zap.String("unit_id", exam.ID), zap.String("model", modelID), zap.Int("questions", len(exam.Questions)))
	s.archive(ctx, p.ID, exam.ID, exam)
	return exam, nil
}

// GenerateEntertainmentContent falls back to FallbackActivities on any
// failure, including a missing credential. fromFallback reports which one the
// caller got.
func (s *LearningPathService) GenerateEntertainmentContent(ctx context.Context, p *model.StudentProfile) (activities []model.Activity, fromFallback bool) {
	req := ComposeEntertainment(p)

	var out GeneratedActivities
	modelID, err := s.Generator.GenerateJSON(ctx, req, &out)
	if err != nil {
		s.log.Warn("entertainment generation failed, serving built-in activity", zap.String("profile_id", p.ID), zap.Error(err))
		return FallbackActivities(), true
	}
	s.log.Info("entertainment generated", zap.String("model", modelID), zap.Int("activities", len(out.Activities)))
	return out.Activities, false
}

func (s *LearningPathService) archive(ctx context.Context, profileID, contentID string, v any) {
	if !s.Archive.Enabled() {
		return
	}
	if _, err := s.Archive.Save(ctx, profileID, contentID, v); err != nil {
		s.log.Warn("archive generated content failed", zap.String("content_id", contentID), zap.Error(err))
	}
}

var unitZero model.LearningUnit

// FallbackActivities is the built-in entertainment set.
func FallbackActivities() []model.Activity {
	hint := "Hình dáng của nó giống cái nhẫn."
	return []model.Activity{{
		ID:                 "fallback-1",
		Type:               model.ActivityPuzzle,
		Title:              "Bí mật con số 0",
		Description:        "Tại sao con số 0 lại quan trọng đến thế?",
		Difficulty:         "Dễ",
		Duration:           "2 phút",
		XPReward:           50,
		InteractiveContent: "Cái gì không có bắt đầu, không có kết thúc, và cũng chẳng có gì ở giữa? (Nhập tên hình học)",
		Answer:             "Hình tròn",
		Hint:               &hint,
		FunFact:            "Số 0 được phát minh bởi người Ấn Độ cổ đại!",
	}}
}
