package service

import (
	"strings"
	"testing"

	"adaptive_tutor_backend/internal/model"
	"adaptive_tutor_backend/internal/schema"
)

func testProfile() *model.StudentProfile {
	p := &model.StudentProfile{
		Name:             "Trần Thị Bình",
		BirthDate:        "15/03/2001",
		Grade:            7,
		NumerologyNumber: 3,
		ProficiencyLevel: 2,
	}
	p.ID = "profile-1"
	return p
}

func TestLearningPathPromptWithoutHistory(t *testing.T) {
	p := testProfile()
	perf := AnalyzePerformance(nil, p.ProficiencyLevel, PathThresholds)
	req := ComposeLearningPath(p, perf, []string{"Phân số"})

	if strings.Contains(req.Prompt, "Chủ đề đang yếu") {
		t.Error("prompt carries a weak-topic directive without history")
	}
	if !strings.Contains(req.Prompt, NoHistoryDirective) {
		t.Error("prompt is missing the no-history directive")
	}
	if !strings.Contains(req.Prompt, "Lớp: 7") || !strings.Contains(req.Prompt, "Phân số") {
		t.Errorf("prompt missing grade or topics:\n%s", req.Prompt)
	}
	if req.Temperature != 0.7 || req.Task != TaskLearningPath {
		t.Errorf("temperature/task = %v/%s", req.Temperature, req.Task)
	}
	if req.Schema.Kind != schema.KindObject || req.Schema.FieldNames()[0] != "units" {
		t.Errorf("schema = %+v", req.Schema)
	}
}

func TestLearningPathPromptWithHistory(t *testing.T) {
	p := testProfile()
	p.History = []model.QuizResult{result("Phân số", 3, 10), result("Hình học", 9, 10)}
	perf := AnalyzePerformance(p.History, p.ProficiencyLevel, PathThresholds)
	req := ComposeLearningPath(p, perf, []string{"Phân số", "Hình học"})

	if !strings.Contains(req.Prompt, "Chủ đề đang yếu (CẦN KHẮC PHỤC NGAY): Phân số") {
		t.Errorf("weak topics not interpolated:\n%s", req.Prompt)
	}
	if !strings.Contains(req.Prompt, "Chủ đề thế mạnh (CẦN PHÁT HUY): Hình học") {
		t.Errorf("strong topics not interpolated:\n%s", req.Prompt)
	}
	if !strings.Contains(req.Prompt, "Điểm trung bình gần đây: 6.0/10.") {
		t.Errorf("average not interpolated:\n%s", req.Prompt)
	}
	if strings.Contains(req.Prompt, "%!") {
		t.Errorf("format verb leaked into prompt:\n%s", req.Prompt)
	}
}

func TestEveryTaskCarriesMathRules(t *testing.T) {
	p := testProfile()
	perf := AnalyzePerformance(nil, 2, PathThresholds)
	unit := model.LearningUnit{ID: "unit-1", Title: "Phân số", Level: 2}
	reqs := map[string]string{
		TaskLearningPath:  ComposeLearningPath(p, perf, []string{"x"}).SystemInstruction,
		TaskChallenge:     ComposeChallenge(p, unit).SystemInstruction,
		TaskExam:          ComposeExam(p, perf).SystemInstruction,
		TaskEntertainment: ComposeEntertainment(p).SystemInstruction,
	}
	for task, sys := range reqs {
		if !strings.Contains(sys, "KHÔNG dùng LaTeX") {
			t.Errorf("%s system instruction lacks math formatting rules", task)
		}
	}
}

func TestTemperatures(t *testing.T) {
	p := testProfile()
	perf := AnalyzePerformance(nil, 2, PathThresholds)
	unit := model.LearningUnit{Title: "Phân số", Level: 1}
	tests := []struct {
		task string
		got  float32
		want float32
	}{
		{TaskChallenge, ComposeChallenge(p, unit).Temperature, 0.8},
		{TaskExam, ComposeExam(p, perf).Temperature, 0.7},
		{TaskEntertainment, ComposeEntertainment(p).Temperature, 0.85},
		{TaskTutorChat, ComposeTutorChat(p, model.HelpHint, "hi", nil).Temperature, 0.7},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s temperature = %v, want %v", tt.task, tt.got, tt.want)
		}
	}
}

func TestChallengePromptNamesNextLevel(t *testing.T) {
	req := ComposeChallenge(testProfile(), model.LearningUnit{Title: "Phương trình", Level: 2})
	if !strings.Contains(req.Prompt, "(Level 3)") {
		t.Errorf("prompt lacks next level:\n%s", req.Prompt)
	}
	if !strings.Contains(req.Prompt, "20% Trung bình, 80% Khó") {
		t.Errorf("percent signs mangled:\n%s", req.Prompt)
	}
	if got := ChallengeLevel(model.LearningUnit{}); got != 2 {
		t.Errorf("ChallengeLevel(level 0) = %d, want 2", got)
	}
}

func TestExamTopicsFallbackChain(t *testing.T) {
	p := testProfile()
	if got := examTopics(p); got != "Toán tổng hợp" {
		t.Errorf("no path, no topics = %q", got)
	}
	p.SelectedTopics = []string{"Đại số", "Hình học"}
	if got := examTopics(p); got != "Đại số, Hình học" {
		t.Errorf("selected topics = %q", got)
	}
	p.LearningPath = []model.LearningUnit{{Title: "Bài 1"}, {Title: "Bài 2"}}
	if got := examTopics(p); got != "Bài 1, Bài 2" {
		t.Errorf("path titles = %q", got)
	}
}

func TestExamPromptDefaultsWeakAreas(t *testing.T) {
	p := testProfile()
	req := ComposeExam(p, AnalyzePerformance(nil, 2, ExamThresholds))
	if !strings.Contains(req.Prompt, "Chưa có dữ liệu, hãy kiểm tra kiến thức nền tảng.") {
		t.Errorf("exam prompt lacks default weak areas:\n%s", req.Prompt)
	}
}

func TestEntertainmentUsesFirstThreePathTitles(t *testing.T) {
	p := testProfile()
	p.LearningPath = []model.LearningUnit{{Title: "A"}, {Title: "B"}, {Title: "C"}, {Title: "D"}}
	req := ComposeEntertainment(p)
	if !strings.Contains(req.Prompt, "Chủ đề đang học: A, B, C\n") {
		t.Errorf("topics line wrong:\n%s", req.Prompt)
	}
	if req.Schema.FieldNames()[0] != "activities" {
		t.Errorf("schema fields = %v", req.Schema.FieldNames())
	}
}

func TestTutorChatKeepsLastFiveTurns(t *testing.T) {
	var history []model.ChatMessage
	for i := 0; i < 8; i++ {
		role := model.ChatRoleUser
		if i%2 == 1 {
			role = model.ChatRoleModel
		}
		history = append(history, model.ChatMessage{Role: role, Text: string(rune('a' + i))})
	}
	req := ComposeTutorChat(testProfile(), model.HelpLevel("bogus"), "2x = 4?", history)

	if len(req.History) != 5 {
		t.Fatalf("history = %d turns, want 5", len(req.History))
	}
	if req.History[0].Text != "d" || req.History[4].Text != "h" {
		t.Errorf("history window = %+v", req.History)
	}
	if req.Prompt != "[Chế độ: guide] 2x = 4?" {
		t.Errorf("prompt = %q", req.Prompt)
	}
	if !strings.Contains(req.SystemInstruction, "CHẾ ĐỘ HỖ TRỢ HIỆN TẠI: GUIDE") {
		t.Error("system instruction lacks help level")
	}
	if req.Schema != nil {
		t.Error("chat request should be plain text")
	}
}
