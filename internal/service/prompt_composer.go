package service

import (
	"adaptive_tutor_backend/internal/llm"
	"adaptive_tutor_backend/internal/model"
	"adaptive_tutor_backend/pkg/numerology"
	"fmt"
	"strings"
)

const (
	TaskLearningPath  = "learning_path"
	TaskChallenge     = "challenge_unit"
	TaskExam          = "comprehensive_exam"
	TaskEntertainment = "entertainment"
	TaskTutorChat     = "tutor_chat"
)

const (
	pathTemperature          float32 = 0.7
	challengeTemperature     float32 = 0.8
	examTemperature          float32 = 0.7
	entertainmentTemperature float32 = 0.85
	chatTemperature          float32 = 0.7
)

// MathFormattingInstruction is appended to every system instruction so math
// renders the same way in every generated text.
const MathFormattingInstruction = `
QUY TẮC HIỂN THỊ CÔNG THỨC TOÁN HỌC (QUAN TRỌNG):
1. Dùng ký hiệu Unicode đẹp mắt, KHÔNG dùng LaTeX thuần túy ($...$).
2. Phân số: Viết dạng a/b hoặc dùng HTML <sup>a</sup>/<sub>b</sub>.
3. Số mũ & chỉ số: Dùng Unicode (², ³, ⁰, ₁, ₂) hoặc HTML <sup>/<sub>. VD: x²
4. Căn bậc hai: Dùng √. VD: √x.
5. Ký hiệu đặc biệt: ±, ×, ÷, ≤, ≥, ≠, ≈, ∞, ∈, ∪, ∩, ∅, π, Δ.
6. Khi giải bài, trình bày từng bước rõ ràng.
`

// NoHistoryDirective replaces the performance block for a student without
// quiz history.
const NoHistoryDirective = "Học sinh mới, chưa có dữ liệu lịch sử. Hãy tạo lộ trình tiêu chuẩn theo lớp học."

const (
	defaultMathApproach = "Logic, trực quan"
	defaultExamTopics   = "Toán tổng hợp"
	defaultWeakAreas    = "Chưa có dữ liệu, hãy kiểm tra kiến thức nền tảng."
	defaultFunTopics    = "Toán tư duy cơ bản"
	entertainmentTopicN = 3
	chatHistoryTurns    = 5
)

func withMathRules(instruction string) string {
	return instruction + " " + MathFormattingInstruction
}

func numerologyOf(p *model.StudentProfile) numerology.Profile {
	if p.NumerologyProfile != nil {
		return *p.NumerologyProfile
	}
	np, _ := numerology.Lookup(p.NumerologyNumber)
	return np
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}

func performanceBlock(perf PerformanceAnalysis) string {
	if !perf.HasHistory {
		return NoHistoryDirective
	}
	weak := "Không có, nền tảng tốt."
	if len(perf.WeakTopics) > 0 {
		weak = strings.Join(perf.WeakTopics, ", ")
	}
	strong := "Đang phát triển."
	if len(perf.StrongTopics) > 0 {
		strong = strings.Join(perf.StrongTopics, ", ")
	}
	return fmt.Sprintf(`PHÂN TÍCH DỮ LIỆU HỌC TẬP THỰC TẾ CỦA HỌC SINH (QUAN TRỌNG):
- Điểm trung bình gần đây: %.1f/10.
- Chủ đề đang yếu (CẦN KHẮC PHỤC NGAY): %s
- Chủ đề thế mạnh (CẦN PHÁT HUY): %s

YÊU CẦU ĐIỀU CHỈNH LỘ TRÌNH:
1. Nếu có "Chủ đề đang yếu": BẮT BUỘC bài học đầu tiên của lộ trình phải là "Ôn tập lại [Chủ đề yếu]" với mức độ Dễ để lấy lại gốc.
2. Nếu "Điểm trung bình" cao (>8.0): Tăng tỷ lệ câu hỏi Vận dụng cao lên 50%% cho các bài học mới.
3. Nếu "Điểm trung bình" thấp (<5.0): Giảm độ khó, tập trung vào lý thuyết và ví dụ minh họa, giải thích chi tiết.`,
		perf.RecentAverage*10, weak, strong)
}

// ComposeLearningPath builds the request for a fresh multi-unit path.
func ComposeLearningPath(p *model.StudentProfile, perf PerformanceAnalysis, topics []string) *llm.Request {
	np := numerologyOf(p)
	prompt := fmt.Sprintf(`Đóng vai một chuyên gia giáo dục toán học AI & Phân tích dữ liệu. Hãy tạo một lộ trình học tập tối ưu hóa theo ngày cho học sinh này:

THÔNG TIN CƠ BẢN:
- Lớp: %d
- Phong cách học (Thần số học): %s
- Chủ đề mong muốn: %s

%s

YÊU CẦU CẤU TRÚC JSON:
1. Tạo danh sách các "Learning Unit" (Bài học).
2. Mỗi bài học bao gồm danh sách câu hỏi (Questions).
3. SỐ LƯỢNG CÂU HỎI: 5-10 câu/bài.
4. ĐA DẠNG HÌNH THỨC: 'multiple-choice', 'true-false', 'fill-in-blank'.
5. Ngôn ngữ: Tiếng Việt.

OUTPUT JSON FORMAT ONLY.`,
		p.Grade,
		orDefault(np.MathApproach, defaultMathApproach),
		strings.Join(topics, ", "),
		performanceBlock(perf),
	)

	return &llm.Request{
		Task:              TaskLearningPath,
		Prompt:            prompt,
		SystemInstruction: withMathRules("You are an Adaptive AI Tutor. You analyze student history to create the perfect learning path."),
		Schema:            PathSchema(),
		Temperature:       pathTemperature,
	}
}

// ChallengeLevel is the level of the upgraded version of unit.
func ChallengeLevel(unit model.LearningUnit) int {
	level := unit.Level
	if level == 0 {
		level = 1
	}
	return level + 1
}

func ComposeChallenge(p *model.StudentProfile, unit model.LearningUnit) *llm.Request {
	next := ChallengeLevel(unit)
	prompt := fmt.Sprintf(`Đóng vai một chuyên gia giáo dục toán học AI. Học sinh đã hoàn thành xuất sắc bài học "%s".
Hãy tạo một PHIÊN BẢN NÂNG CAO (Level %d) cho bài học này để thử thách học sinh.

THÔNG TIN ĐẦU VÀO:
- Chủ đề: %s
- Lớp: %d
- Cấp độ mới: Khó hơn, chuyên sâu hơn.

YÊU CẦU CỤ THỂ:
1. Tạo 1 Learning Unit mới vẫn giữ chủ đề cũ nhưng tên gọi thể hiện sự nâng cao (VD: "... - Thử thách", "... - Nâng cao").
2. SỐ LƯỢNG CÂU HỎI: Từ 10 đến 15 câu.
3. ĐỘ KHÓ: 20%% Trung bình, 80%% Khó/Vận dụng cao.
4. Tăng XP thưởng và thời gian làm bài.
5. Ngôn ngữ: Tiếng Việt.

OUTPUT JSON FORMAT ONLY (Single Unit object structure).`,
		unit.Title, next, unit.Title, p.Grade)

	return &llm.Request{
		Task:              TaskChallenge,
		Prompt:            prompt,
		SystemInstruction: withMathRules("You are a tough but fair AI Math Coach."),
		Schema:            UnitSchema(),
		Temperature:       challengeTemperature,
	}
}

// examTopics prefers the titles of the current path, then the selected topics.
func examTopics(p *model.StudentProfile) string {
	if len(p.LearningPath) > 0 {
		titles := make([]string, 0, len(p.LearningPath))
		for _, u := range p.LearningPath {
			titles = append(titles, u.Title)
		}
		return strings.Join(titles, ", ")
	}
	if len(p.SelectedTopics) > 0 {
		return strings.Join(p.SelectedTopics, ", ")
	}
	return defaultExamTopics
}

// ComposeExam expects perf computed with ExamThresholds.
func ComposeExam(p *model.StudentProfile, perf PerformanceAnalysis) *llm.Request {
	weak := defaultWeakAreas
	if len(perf.WeakTopics) > 0 {
		weak = strings.Join(perf.WeakTopics, ", ")
	}
	prompt := fmt.Sprintf(`Bạn là AI Giáo viên Toán cao cấp. Hãy tạo một BÀI KIỂM TRA TỔNG HỢP (Final Exam) cho học sinh này.

HỒ SƠ HỌC SINH:
- Lớp: %d
- Các chủ đề đã học trong lộ trình: %s
- Điểm yếu cần khắc phục (nếu có): %s
- Điểm mạnh (nếu có): %s

YÊU CẦU ĐỀ THI:
1. SỐ LƯỢNG: Đúng 20 câu hỏi.
2. CẤU TRÚC ĐỘ KHÓ (Tăng dần):
   - 5 câu đầu: Dễ (Khởi động, kiến thức cơ bản).
   - 10 câu giữa: Trung bình (Vận dụng).
   - 5 câu cuối: Khó (Vận dụng cao, tư duy logic).
3. HÌNH THỨC ĐA DẠNG:
   - Phải có đủ 3 loại: 'multiple-choice', 'true-false', 'fill-in-blank'.
4. NỘI DUNG: Bao phủ các chủ đề trong lộ trình, nhưng tập trung xoáy sâu vào các phần học sinh còn yếu (nếu có).
5. Tên bài: "Kiểm tra Tổng hợp Kiến thức".
6. Ngôn ngữ: Tiếng Việt.

OUTPUT JSON FORMAT ONLY.`,
		p.Grade, examTopics(p), weak, strings.Join(perf.StrongTopics, ", "))

	return &llm.Request{
		Task:              TaskExam,
		Prompt:            prompt,
		SystemInstruction: withMathRules("You are a precise Exam Creator AI. You create balanced, progressive difficulty tests."),
		Schema:            UnitSchema(),
		Temperature:       examTemperature,
	}
}

func ComposeEntertainment(p *model.StudentProfile) *llm.Request {
	np := numerologyOf(p)

	topics := defaultFunTopics
	if len(p.LearningPath) > 0 {
		n := len(p.LearningPath)
		if n > entertainmentTopicN {
			n = entertainmentTopicN
		}
		titles := make([]string, 0, n)
		for _, u := range p.LearningPath[:n] {
			titles = append(titles, u.Title)
		}
		topics = strings.Join(titles, ", ")
	}

	prompt := fmt.Sprintf(`Bạn là một nhà thiết kế Game Giáo Dục AI (Gamification Expert).
Hãy tạo ra 4-5 hoạt động giải trí toán học (Trò chơi, Câu đố, Thử thách) cho học sinh này.

HỒ SƠ NGƯỜI CHƠI:
- Lớp: %d
- Tính cách (Thần số học): %s - Thích %s
- Chủ đề đang học: %s

YÊU CẦU NỘI DUNG:
1. Vui vẻ, hài hước, mang tính tích cực.
2. Phù hợp với kiến thức Lớp %d.
3. QUAN TRỌNG: Tất cả hoạt động đều phải có một CÂU HỎI hoặc NHIỆM VỤ cụ thể mà học sinh có thể nhập đáp án vào ô trống.
4. Đối với 'challenge' (thử thách thực tế), hãy đặt câu hỏi về kết quả của thử thách (Ví dụ: "Bạn đếm được bao nhiêu hình tròn?", "Kết quả phép tính cuối cùng là gì?").
5. Cung cấp đáp án (answer) ngắn gọn, chính xác (số hoặc từ đơn) để hệ thống tự động chấm điểm.

CHI TIẾT LOẠI HÌNH:
- 'puzzle': Câu đố vui, đố mẹo toán học.
- 'game': Trò chơi tư duy nhỏ (dạng text).
- 'challenge': Thử thách thực tế (đo đạc, tìm kiếm) nhưng kết thúc bằng một câu hỏi kiểm tra.

OUTPUT JSON FORMAT ONLY.`,
		p.Grade,
		orDefault(np.Title, "Sáng tạo"),
		orDefault(np.MathApproach, "Logic"),
		topics,
		p.Grade,
	)

	return &llm.Request{
		Task:              TaskEntertainment,
		Prompt:            prompt,
		SystemInstruction: withMathRules("You are a fun and creative Gamification Master for kids."),
		Schema:            ActivitiesSchema(),
		Temperature:       entertainmentTemperature,
	}
}

const helpLevelRules = `CHẾ ĐỘ HỖ TRỢ HIỆN TẠI: %s
- Nếu chế độ là 'HINT' (Gợi ý nhẹ): CHỈ đưa ra gợi ý, công thức liên quan hoặc bước đầu tiên. KHÔNG giải hết. Khuyến khích học sinh tự làm tiếp.
- Nếu chế độ là 'GUIDE' (Hướng dẫn): Chỉ ra các bước giải (Step-by-step) nhưng để lại phần tính toán cuối cùng cho học sinh.
- Nếu chế độ là 'SOLUTION' (Giải chi tiết): Giải chi tiết từ A-Z và đưa ra đáp án cuối cùng. Giải thích cặn kẽ tại sao lại làm như vậy.`

// ComposeTutorChat builds a plain-text request. Only the newest five turns of
// history are sent.
func ComposeTutorChat(p *model.StudentProfile, level model.HelpLevel, message string, history []model.ChatMessage) *llm.Request {
	np := numerologyOf(p)
	if !level.Valid() {
		level = model.HelpGuide
	}

	system := fmt.Sprintf(`Bạn là một gia sư Toán học AI thân thiện, thông minh và kiên nhẫn.
Học sinh của bạn tên là %s, đang học lớp %d.

Đặc điểm thần số học: %s - %s.
Phong cách học tập: %s.

QUY TẮC TRẢ LỜI (RẤT QUAN TRỌNG):
1. Luôn sử dụng Tiếng Việt.
2. Phong cách: Gần gũi, khích lệ, dùng emoji phù hợp.
3. Định dạng Toán học: Sử dụng Unicode đẹp (², ³, √, π, ÷, ×) hoặc HTML (<sup>, <sub>) để hiển thị công thức rõ ràng. KHÔNG dùng LaTeX thuần ($...$).

%s

Hãy phản hồi dựa trên yêu cầu của học sinh và chế độ hỗ trợ đã chọn.`,
		orDefault(p.Name, "Học sinh"),
		p.Grade,
		orDefault(np.Title, "Không rõ"),
		np.Personality,
		orDefault(np.LearningStyle, "Trực quan"),
		fmt.Sprintf(helpLevelRules, strings.ToUpper(string(level))),
	)

	if len(history) > chatHistoryTurns {
		history = history[len(history)-chatHistoryTurns:]
	}
	turns := make([]llm.Turn, 0, len(history))
	for _, m := range history {
		role := llm.RoleUser
		if m.Role == model.ChatRoleModel {
			role = llm.RoleModel
		}
		turns = append(turns, llm.Turn{Role: role, Text: m.Text})
	}

	return &llm.Request{
		Task:              TaskTutorChat,
		Prompt:            fmt.Sprintf("[Chế độ: %s] %s", level, message),
		SystemInstruction: system,
		Temperature:       chatTemperature,
		History:           turns,
	}
}
