package service

import (
	"adaptive_tutor_backend/internal/model"
	"adaptive_tutor_backend/internal/util"
	"adaptive_tutor_backend/pkg/logger"
	"adaptive_tutor_backend/pkg/numerology"
	"hash/fnv"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

type ProfileStore interface {
	Create(profile *model.StudentProfile) error
	FindByID(id string) (*model.StudentProfile, error)
	Update(profile *model.StudentProfile) error
}

type OnboardRequest struct {
	Name             string   `json:"name" binding:"required"`
	BirthDate        string   `json:"birthDate" binding:"required"`
	Grade            int      `json:"grade" binding:"required"`
	ProficiencyLevel int      `json:"proficiencyLevel"`
	LearningHabits   []string `json:"learningHabits"`
	Notes            string   `json:"notes"`
}

type QuizSubmission struct {
	UnitID         string         `json:"unitId" binding:"required"`
	UnitTitle      string         `json:"unitTitle"`
	Score          int            `json:"score"`
	TotalQuestions int            `json:"totalQuestions" binding:"required"`
	UserAnswers    map[string]any `json:"userAnswers"`
}

const defaultUnitTitle = "Bài học"

// lockStripes bounds the number of mutexes; profiles hashing to the same
// stripe share one.
const lockStripes = 64

// ProfileService owns load-modify-save of stored profiles. Updates to one
// profile are serialised.
type ProfileService struct {
	Store ProfileStore
	now   func() time.Time
	locks [lockStripes]sync.Mutex
}

func NewProfileService(store ProfileStore) *ProfileService {
	return &ProfileService{Store: store, now: time.Now}
}

func stripe(id string) int {
	h := fnv.New32a()
	h.Write([]byte(id))
	return int(h.Sum32() % lockStripes)
}

func (s *ProfileService) lock(id string) func() {
	mu := &s.locks[stripe(id)]
	mu.Lock()
	return mu.Unlock
}

func (s *ProfileService) Onboard(req OnboardRequest) (*model.StudentProfile, error) {
	if req.Grade < util.MinGrade || req.Grade > util.MaxGrade {
		return nil, util.ErrInvalidGrade
	}
	level := req.ProficiencyLevel
	if level == 0 {
		level = util.DefaultProficiency
	}
	if level < util.MinProficiency || level > util.MaxProficiency {
		return nil, util.ErrInvalidProficiency
	}

	np := numerology.Analyze(req.Name, req.BirthDate)
	p := &model.StudentProfile{
		Name:              strings.TrimSpace(req.Name),
		BirthDate:         strings.TrimSpace(req.BirthDate),
		Grade:             req.Grade,
		NumerologyNumber:  np.LifePathNumber,
		ProficiencyLevel:  level,
		LearningHabits:    dedupe(req.LearningHabits),
		Notes:             req.Notes,
		SelectedTopics:    []string{},
		LearningPath:      []model.LearningUnit{},
		History:           []model.QuizResult{},
		NumerologyProfile: &np,
	}
	if err := s.Store.Create(p); err != nil {
		return nil, err
	}
	logger.Log.Info("student onboarded",
		zap.String("profile_id", p.ID),
		zap.Int("grade", p.Grade),
		zap.Int("numerology", p.NumerologyNumber),
	)
	return p, nil
}

func (s *ProfileService) Get(id string) (*model.StudentProfile, error) {
	return s.Store.FindByID(id)
}

// Performance analyses a stored profile with the path thresholds.
func (s *ProfileService) Performance(id string) (PerformanceAnalysis, error) {
	p, err := s.Store.FindByID(id)
	if err != nil {
		return PerformanceAnalysis{}, err
	}
	return AnalyzePerformance(p.History, p.ProficiencyLevel, PathThresholds), nil
}

// RecordQuizResult prepends the result to history. A unit of the path that is
// not an exam becomes completed on a pass and active otherwise.
func (s *ProfileService) RecordQuizResult(id string, sub QuizSubmission) (*model.StudentProfile, *model.QuizResult, error) {
	if sub.TotalQuestions <= 0 || sub.Score < 0 || sub.Score > sub.TotalQuestions {
		return nil, nil, util.ErrInvalidScore
	}

	defer s.lock(id)()
	p, err := s.Store.FindByID(id)
	if err != nil {
		return nil, nil, err
	}

	title := strings.TrimSpace(sub.UnitTitle)
	idx := p.UnitIndex(sub.UnitID)
	if idx >= 0 {
		title = p.LearningPath[idx].Title
	}
	if title == "" {
		title = defaultUnitTitle
	}

	result := model.QuizResult{
		UnitID:         sub.UnitID,
		UnitTitle:      title,
		Score:          sub.Score,
		TotalQuestions: sub.TotalQuestions,
		UserAnswers:    sub.UserAnswers,
		Timestamp:      s.now(),
	}

	if idx >= 0 && !p.LearningPath[idx].IsExam() {
		if result.Ratio() >= util.PassRatio {
			p.LearningPath[idx].Status = model.UnitCompleted
		} else {
			p.LearningPath[idx].Status = model.UnitActive
		}
	}
	p.History = append([]model.QuizResult{result}, p.History...)

	if err := s.Store.Update(p); err != nil {
		return nil, nil, err
	}
	return p, &result, nil
}

// ApplyLearningPath replaces the stored path and selected topics. A grade of
// 0 keeps the current one.
func (s *ProfileService) ApplyLearningPath(id string, grade int, topics []string, units []model.LearningUnit) (*model.StudentProfile, error) {
	defer s.lock(id)()
	p, err := s.Store.FindByID(id)
	if err != nil {
		return nil, err
	}
	if grade != 0 {
		p.Grade = grade
	}
	p.SelectedTopics = dedupe(topics)
	p.LearningPath = units
	if err := s.Store.Update(p); err != nil {
		return nil, err
	}
	return p, nil
}

// ReplaceUnit swaps the path entry with the same id as unit.
func (s *ProfileService) ReplaceUnit(id string, unit model.LearningUnit) (*model.StudentProfile, error) {
	defer s.lock(id)()
	p, err := s.Store.FindByID(id)
	if err != nil {
		return nil, err
	}
	idx := p.UnitIndex(unit.ID)
	if idx < 0 {
		return nil, util.ErrUnitNotFound
	}
	p.LearningPath[idx] = unit
	if err := s.Store.Update(p); err != nil {
		return nil, err
	}
	return p, nil
}

// FindUnit returns the path unit with unitID.
func (s *ProfileService) FindUnit(p *model.StudentProfile, unitID string) (model.LearningUnit, error) {
	idx := p.UnitIndex(unitID)
	if idx < 0 {
		return model.LearningUnit{}, util.ErrUnitNotFound
	}
	return p.LearningPath[idx], nil
}

// ValidateGrade accepts 0 as "unchanged".
func ValidateGrade(grade int) error {
	if grade != 0 && (grade < util.MinGrade || grade > util.MaxGrade) {
		return util.ErrInvalidGrade
	}
	return nil
}

func dedupe(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]bool, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}
