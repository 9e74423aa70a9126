package service

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"adaptive_tutor_backend/internal/model"
	"adaptive_tutor_backend/internal/util"
)

type memoryStore struct {
	profiles map[string]model.StudentProfile
	seq      int
}

func newMemoryStore() *memoryStore {
	return &memoryStore{profiles: map[string]model.StudentProfile{}}
}

func (m *memoryStore) Create(p *model.StudentProfile) error {
	m.seq++
	p.ID = fmt.Sprintf("p-%d", m.seq)
	m.profiles[p.ID] = *p
	return nil
}

func (m *memoryStore) FindByID(id string) (*model.StudentProfile, error) {
	p, ok := m.profiles[id]
	if !ok {
		return nil, util.ErrProfileNotFound
	}
	p.LearningPath = append([]model.LearningUnit(nil), p.LearningPath...)
	p.History = append([]model.QuizResult(nil), p.History...)
	return &p, nil
}

func (m *memoryStore) Update(p *model.StudentProfile) error {
	m.profiles[p.ID] = *p
	return nil
}

func TestOnboardComputesNumerology(t *testing.T) {
	svc := NewProfileService(newMemoryStore())
	p, err := svc.Onboard(OnboardRequest{
		Name:           "Lê Minh",
		BirthDate:      "09/09/2009",
		Grade:          9,
		LearningHabits: []string{"visual", "visual", " night "},
	})
	if err != nil {
		t.Fatalf("Onboard: %v", err)
	}
	if p.NumerologyNumber != 11 {
		t.Errorf("NumerologyNumber = %d, want 11", p.NumerologyNumber)
	}
	if p.ProficiencyLevel != util.DefaultProficiency {
		t.Errorf("ProficiencyLevel = %d", p.ProficiencyLevel)
	}
	if len(p.LearningHabits) != 2 || p.LearningHabits[1] != "night" {
		t.Errorf("habits = %v", p.LearningHabits)
	}
	if p.NumerologyProfile == nil || p.NumerologyProfile.LifePathNumber != 11 {
		t.Errorf("profile = %+v", p.NumerologyProfile)
	}
}

func TestOnboardFallbackNumberStaysInKnownSet(t *testing.T) {
	svc := NewProfileService(newMemoryStore())
	p, err := svc.Onboard(OnboardRequest{Name: "X", BirthDate: "1/1/9", Grade: 6})
	if err != nil {
		t.Fatal(err)
	}
	if p.NumerologyNumber != 1 {
		t.Errorf("NumerologyNumber = %d, want 1", p.NumerologyNumber)
	}
}

func TestOnboardValidation(t *testing.T) {
	svc := NewProfileService(newMemoryStore())
	tests := []struct {
		req  OnboardRequest
		want error
	}{
		{OnboardRequest{Name: "A", BirthDate: "01/01/2010", Grade: 5}, util.ErrInvalidGrade},
		{OnboardRequest{Name: "A", BirthDate: "01/01/2010", Grade: 13}, util.ErrInvalidGrade},
		{OnboardRequest{Name: "A", BirthDate: "01/01/2010", Grade: 8, ProficiencyLevel: 5}, util.ErrInvalidProficiency},
	}
	for _, tt := range tests {
		if _, err := svc.Onboard(tt.req); !errors.Is(err, tt.want) {
			t.Errorf("Onboard(%+v) err = %v, want %v", tt.req, err, tt.want)
		}
	}
}

func seededProfile(t *testing.T, svc *ProfileService) *model.StudentProfile {
	t.Helper()
	p, err := svc.Onboard(OnboardRequest{Name: "A", BirthDate: "15/03/2001", Grade: 7})
	if err != nil {
		t.Fatal(err)
	}
	units := []model.LearningUnit{
		{ID: "unit-1", Title: "Phân số", Status: model.UnitActive, Level: 2},
		{ID: "unit-2", Title: "Số thập phân", Status: model.UnitLocked, Level: 2},
	}
	p, err = svc.ApplyLearningPath(p.ID, 0, []string{"Phân số"}, units)
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func TestRecordQuizResultUpdatesStatusAndHistory(t *testing.T) {
	svc := NewProfileService(newMemoryStore())
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	svc.now = func() time.Time { return fixed }
	p := seededProfile(t, svc)

	p, res, err := svc.RecordQuizResult(p.ID, QuizSubmission{UnitID: "unit-1", Score: 2, TotalQuestions: 5})
	if err != nil {
		t.Fatalf("RecordQuizResult: %v", err)
	}
	if p.LearningPath[0].Status != model.UnitActive {
		t.Errorf("failing score status = %s", p.LearningPath[0].Status)
	}
	if res.UnitTitle != "Phân số" || !res.Timestamp.Equal(fixed) {
		t.Errorf("result = %+v", res)
	}

	p, _, err = svc.RecordQuizResult(p.ID, QuizSubmission{UnitID: "unit-1", Score: 3, TotalQuestions: 6})
	if err != nil {
		t.Fatal(err)
	}
	if p.LearningPath[0].Status != model.UnitCompleted {
		t.Errorf("passing score status = %s", p.LearningPath[0].Status)
	}
	if len(p.History) != 2 || p.History[0].Score != 3 {
		t.Errorf("history not newest first: %+v", p.History)
	}
}

func TestRecordQuizResultForExamOnlyAppendsHistory(t *testing.T) {
	svc := NewProfileService(newMemoryStore())
	p := seededProfile(t, svc)

	p, res, err := svc.RecordQuizResult(p.ID, QuizSubmission{UnitID: "exam-1", UnitTitle: "Kiểm tra Tổng hợp Kiến thức", Score: 18, TotalQuestions: 20})
	if err != nil {
		t.Fatal(err)
	}
	if res.UnitTitle != "Kiểm tra Tổng hợp Kiến thức" {
		t.Errorf("title = %q", res.UnitTitle)
	}
	if p.LearningPath[0].Status != model.UnitActive || p.LearningPath[1].Status != model.UnitLocked {
		t.Errorf("path changed by exam: %+v", p.LearningPath)
	}
	if len(p.History) != 1 {
		t.Errorf("history = %d", len(p.History))
	}
}

func TestRecordQuizResultRejectsBadScores(t *testing.T) {
	svc := NewProfileService(newMemoryStore())
	p := seededProfile(t, svc)
	for _, sub := range []QuizSubmission{
		{UnitID: "unit-1", Score: 6, TotalQuestions: 5},
		{UnitID: "unit-1", Score: -1, TotalQuestions: 5},
		{UnitID: "unit-1", Score: 0, TotalQuestions: 0},
	} {
		if _, _, err := svc.RecordQuizResult(p.ID, sub); !errors.Is(err, util.ErrInvalidScore) {
			t.Errorf("RecordQuizResult(%+v) err = %v", sub, err)
		}
	}
}

func TestReplaceUnitInPlace(t *testing.T) {
	svc := NewProfileService(newMemoryStore())
	p := seededProfile(t, svc)

	upgraded := model.LearningUnit{ID: "unit-2", Title: "Số thập phân - Nâng cao", Status: model.UnitActive, Level: 3}
	p, err := svc.ReplaceUnit(p.ID, upgraded)
	if err != nil {
		t.Fatal(err)
	}
	if len(p.LearningPath) != 2 || p.LearningPath[1].Title != "Số thập phân - Nâng cao" || p.LearningPath[1].Level != 3 {
		t.Errorf("path = %+v", p.LearningPath)
	}

	if _, err := svc.ReplaceUnit(p.ID, model.LearningUnit{ID: "nope"}); !errors.Is(err, util.ErrUnitNotFound) {
		t.Errorf("err = %v", err)
	}
}

func TestPerformanceForStoredProfile(t *testing.T) {
	svc := NewProfileService(newMemoryStore())
	p := seededProfile(t, svc)
	svc.RecordQuizResult(p.ID, QuizSubmission{UnitID: "unit-1", Score: 1, TotalQuestions: 5})

	perf, err := svc.Performance(p.ID)
	if err != nil {
		t.Fatal(err)
	}
	if perf.AdjustedLevel != 1 || len(perf.WeakTopics) != 1 {
		t.Errorf("perf = %+v", perf)
	}
	if _, err := svc.Performance("missing"); !errors.Is(err, util.ErrProfileNotFound) {
		t.Errorf("err = %v", err)
	}
}

func TestApplyLearningPathCleansTopics(t *testing.T) {
	svc := NewProfileService(newMemoryStore())
	p := seededProfile(t, svc)

	p, err := svc.ApplyLearningPath(p.ID, 0, []string{" Hình học ", "", "Hình học", "Đại số"}, p.LearningPath)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"Hình học", "Đại số"}
	if fmt.Sprint(p.SelectedTopics) != fmt.Sprint(want) {
		t.Errorf("topics = %q, want %q", p.SelectedTopics, want)
	}
}

// syncStore lets memoryStore be shared between goroutines.
type syncStore struct {
	mu    sync.Mutex
	inner *memoryStore
}

func (s *syncStore) Create(p *model.StudentProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.Create(p)
}

func (s *syncStore) FindByID(id string) (*model.StudentProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.FindByID(id)
}

func (s *syncStore) Update(p *model.StudentProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.Update(p)
}

func TestConcurrentQuizResultsAreNotLost(t *testing.T) {
	svc := NewProfileService(&syncStore{inner: newMemoryStore()})
	p := seededProfile(t, svc)

	const n = 20
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			svc.RecordQuizResult(p.ID, QuizSubmission{UnitID: "unit-1", Score: 3, TotalQuestions: 5})
		}()
	}
	wg.Wait()

	got, err := svc.Get(p.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(got.History) != n {
		t.Errorf("history = %d, want %d", len(got.History), n)
	}
}

func TestLockStripesAreBounded(t *testing.T) {
	for i := 0; i < 1000; i++ {
		id := fmt.Sprintf("profile-%d", i)
		s := stripe(id)
		if s < 0 || s >= lockStripes {
			t.Fatalf("stripe(%q) = %d", id, s)
		}
		if stripe(id) != s {
			t.Fatalf("stripe(%q) not stable", id)
		}
	}
}
