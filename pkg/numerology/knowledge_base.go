package numerology

// knowledgeBase maps a life-path number to its narrative profile.
var knowledgeBase = map[int]Profile{
	1: {
		LifePathNumber:  1,
		Title:           "Người Tiên Phong",
		Personality:     "Người Tiên Phong (The Leader) - Độc lập, tự chủ, ý chí mạnh mẽ. Con luôn muốn dẫn đầu và sở hữu sự quyết đoán bẩm sinh.",
		LearningStyle:   "Tự học, tự nghiên cứu, học qua dự án cá nhân. Thích được giao 'nhiệm vụ' hơn là 'bài tập'.",
		FocusCapability: "Cao khi được làm việc độc lập và theo đuổi mục tiêu riêng. Dễ mất tập trung khi bị ép làm điều không thích.",
		Motivation:      "Mong muốn được công nhận, chiến thắng, trở thành người giỏi nhất. Thích cạnh tranh lành mạnh.",
		MathApproach:    "Logic, thẳng thắn, tìm cách giải quyết nhanh và hiệu quả nhất. Không ngại thử thách khó.",
		Strengths: []string{
			"Tư duy độc lập, không thích đi theo lối mòn.",
			"Quyết tâm cao, một khi đặt mục tiêu sẽ theo đuổi đến cùng.",
			"Sáng tạo, nhiều ý tưởng mới.",
			"Can đảm, không ngại rủi ro.",
		},
		Challenges: []string{
			"Cái tôi cao, đôi khi trở nên độc đoán.",
			"Thiếu kiên nhẫn, khó lắng nghe ý kiến người khác.",
			"Không thích bị chỉ huy, ra lệnh.",
			"Có xu hướng tự cô lập khi gặp khó khăn.",
		},
		EffectiveMethods: []string{
			"Đặt mục tiêu rõ ràng, thách thức bản thân.",
			"Tự tạo các 'nhiệm vụ' cá nhân thay vì làm theo lệnh.",
			"Học qua nghiên cứu case study, project-based learning.",
			"Tham gia các cuộc thi để thỏa mãn tính cạnh tranh.",
		},
		IdealEnvironment: []string{
			"Không gian riêng, yên tĩnh.",
			"Không bị gò bó, áp đặt.",
			"Có quyền tự do lựa chọn cách học.",
			"Có cơ hội thể hiện năng lực cá nhân.",
		},
		Conclusion: "Con là một nhà lãnh đạo bẩm sinh. Hãy khuyến khích sự tự chủ của con, nhưng cũng cần rèn luyện sự kiên nhẫn và lắng nghe.",
	},
	2: {
		LifePathNumber:  2,
		Title:           "Người Hòa Giải",
		Personality:     "Người Hòa Giải (The Peacemaker) - Nhạy cảm, giàu lòng trắc ẩn và trực giác tốt. Con là nhà ngoại giao bẩm sinh.",
		LearningStyle:   "Học nhóm, học có bạn đồng hành, học qua việc giải thích cho người khác.",
		FocusCapability: "Cao trong môi trường yên tĩnh, ổn định. Dễ bị phân tâm bởi cảm xúc và mối quan hệ xung quanh.",
		Motivation:      "Mong muốn được giúp đỡ người khác, kết nối và nhận được sự yêu thương.",
		MathApproach:    "Tuân tự, cẩn thận, tỉ mỉ. Thích những bài toán có hướng dẫn rõ ràng từng bước.",
		Strengths: []string{
			"Khả năng lắng nghe và thấu cảm tuyệt vời.",
			"Giỏi làm việc nhóm, kết nối mọi người.",
			"Trực giác tốt, nhạy bén với cảm xúc.",
			"Kiên nhẫn, tỉ mỉ trong học tập.",
		},
		Challenges: []string{
			"Quá nhạy cảm, dễ bị tổn thương bởi lời nói.",
			"Thiếu quyết đoán, hay do dự.",
			"Có xu hướng phụ thuộc vào người khác.",
			"Sợ đối đầu, không dám nói lên ý kiến khác.",
		},
		EffectiveMethods: []string{
			"Học cùng bạn, giải thích lại cho bạn để hiểu sâu hơn.",
			"Tạo nhóm học tập ổn định, thân thiện.",
			"Sử dụng phương pháp học từng bước, có hệ thống.",
		},
		IdealEnvironment: []string{
			"Hài hòa, không căng thẳng.",
			"Có sự hỗ trợ từ bạn bè, thầy cô.",
			"Không khí hợp tác thay vì cạnh tranh gay gắt.",
		},
		Conclusion: "Con học tốt nhất khi cảm thấy an toàn và được yêu thương. Hãy tạo môi trường học tập nhẹ nhàng, khuyến khích làm việc nhóm.",
	},
	3: {
		LifePathNumber:  3,
		Title:           "Người Truyền Cảm Hứng",
		Personality:     "Người Truyền Cảm Hứng - Sáng tạo, lạc quan, hoạt ngôn và hài hước. Con là tâm điểm của sự chú ý.",
		LearningStyle:   "Học qua hình ảnh, âm nhạc, câu chuyện, trò chơi (Gamification).",
		FocusCapability: "Thấp, đặc biệt với những chủ đề không hứng thú. Cần sự mới mẻ liên tục.",
		Motivation:      "Niềm vui, sự hứng thú, được thể hiện bản thân và nhận lời khen ngợi.",
		MathApproach:    "Sáng tạo, tìm những lối đi bất ngờ. Không thích đi theo khuôn mẫu. Thường 'nhảy bước'.",
		Strengths: []string{
			"Óc sáng tạo và trí tưởng tượng bay bổng.",
			"Kỹ năng giao tiếp và diễn đạt xuất sắc.",
			"Lạc quan, luôn mang năng lượng tích cực.",
			"Nhanh trí, linh hoạt trong tư duy.",
		},
		Challenges: []string{
			"Dễ mất tập trung, cả thèm chóng chán.",
			"Thiếu kỷ luật, hay trì hoãn công việc.",
			"Nói nhiều hơn làm, đôi khi hời hợt.",
			"Nhạy cảm với chỉ trích, dễ nản lòng.",
		},
		EffectiveMethods: []string{
			"Biến học tập thành trò chơi, thử thách vui.",
			"Sử dụng nhiều phương tiện đa phương tiện (video, hình ảnh).",
			"Học qua kể chuyện, vai diễn.",
		},
		IdealEnvironment: []string{
			"Vui vẻ, năng động, đầy màu sắc.",
			"Có nhiều hoạt động tương tác.",
			"Không gò bó, khuyến khích sáng tạo.",
		},
		Conclusion: "Hãy để trí tưởng tượng của con bay xa. Toán học không khô khan nếu được biến thành những câu chuyện thú vị.",
	},
	4: {
		LifePathNumber:  4,
		Title:           "Người Xây Dựng",
		Personality:     "Người Xây Dựng - Thực tế, kỷ luật, tỉ mỉ và đáng tin cậy. Con thích trật tự và logic chặt chẽ.",
		LearningStyle:   "Học có cấu trúc rõ ràng, theo quy trình, từng bước một. Thích lịch trình ổn định.",
		FocusCapability: "Cao, đặc biệt với những công việc chi tiết. Có thể tập trung lâu nếu biết rõ mục tiêu.",
		Motivation:      "Muốn xây dựng nền móng vững chắc, thấy kết quả cụ thể từng bước.",
		MathApproach:    "Tuân tự, có hệ thống, từng bước một. Không bỏ qua bất kỳ bước nào.",
		Strengths: []string{
			"Làm việc chăm chỉ, kiên định.",
			"Tổ chức tốt, có kế hoạch rõ ràng.",
			"Đáng tin cậy, hoàn thành đúng hạn.",
			"Chi tiết, cẩn thận, chính xác cao.",
		},
		Challenges: []string{
			"Cứng nhắc, khó thay đổi khi đã quen.",
			"Quá lo lắng về chi tiết, thiếu cái nhìn tổng thể.",
			"Thiếu linh hoạt, khó chấp nhận cái mới.",
			"Cố chấp, khó nghe ý kiến khác.",
		},
		EffectiveMethods: []string{
			"Lập kế hoạch học tập chi tiết, cụ thể.",
			"Chia nhỏ mục tiêu thành các bước nhỏ.",
			"Tạo thói quen học tập đều đặn.",
			"Sử dụng checklist, to-do list.",
		},
		IdealEnvironment: []string{
			"Có cấu trúc rõ ràng, ổn định.",
			"Quy tắc nhất quán, không thay đổi đột ngột.",
			"Không gian gọn gàng, ngăn nắp.",
		},
		Conclusion: "Con là viên gạch nền tảng vững chắc. Hãy cung cấp lộ trình rõ ràng và ghi nhận sự nỗ lực bền bỉ của con.",
	},
	5: {
		LifePathNumber:  5,
		Title:           "Người Tự Do",
		Personality:     "Người Tự Do - Yêu tự do, thích khám phá, đa tài và linh hoạt. Ghét sự gò bó.",
		LearningStyle:   "Học qua trải nghiệm, thám hiểm, khám phá. Cần sự đa dạng, thay đổi liên tục.",
		FocusCapability: "Rất thấp với những chủ đề nhàm chán. Dễ bị bồn chồn, muốn chuyển sang thứ khác.",
		Motivation:      "Khám phá mới mẻ, trải nghiệm đa dạng, được tự do chọn lựa.",
		MathApproach:    "Thử nhiều cách, nhảy qua nhảy lại. Thích giải quyết nhanh để chuyển sang vấn đề khác.",
		Strengths: []string{
			"Thích nghi nhanh với môi trường mới.",
			"Linh hoạt, đa tài.",
			"Tò mò, ham học hỏi.",
			"Dũng cảm thử nghiệm, không sợ sai.",
		},
		Challenges: []string{
			"Thiếu kiên nhẫn, không kiên định.",
			"Dễ bồn chồn, không chịu ràng buộc.",
			"Thiếu trách nhiệm, bỏ dở giữa chừng.",
			"Khó hoàn thành dự án dài hạn.",
		},
		EffectiveMethods: []string{
			"Thay đổi phương pháp học thường xuyên.",
			"Học qua du lịch, trải nghiệm thực tế.",
			"Kết hợp nhiều môn học, nhiều kỹ năng.",
			"Cho phép tự do lựa chọn chủ đề học.",
		},
		IdealEnvironment: []string{
			"Tự do, không gò bó.",
			"Nhiều sự lựa chọn, tính bất ngờ cao.",
			"Có cơ hội di chuyển, khám phá.",
		},
		Conclusion: "Đừng ép con ngồi yên một chỗ quá lâu. Hãy để con học toán thông qua sự vận động và các ví dụ thực tế đa dạng.",
	},
	6: {
		LifePathNumber:  6,
		Title:           "Người Chăm Sóc",
		Personality:     "Người Chăm Sóc - Trách nhiệm, yêu thương, có gu thẩm mỹ. Luôn quan tâm đến người khác.",
		LearningStyle:   "Học qua việc chăm sóc, giúp đỡ người khác. Thích các bài học có ý nghĩa nhân văn.",
		FocusCapability: "Cao khi học những gì có ý nghĩa với gia đình/cộng đồng. Dễ bị phân tâm bởi nhu cầu người khác.",
		Motivation:      "Giúp đỡ người khác, làm điều có ý nghĩa, được yêu thương.",
		MathApproach:    "Liên hệ với cuộc sống thực tế. Ứng dụng vào việc giúp đỡ người khác.",
		Strengths: []string{
			"Giàu lòng trắc ẩn, quan tâm người khác.",
			"Trách nhiệm cao, chu đáo.",
			"Khả năng chăm sóc, hỗ trợ tốt.",
			"Hòa giải, tạo không khí học tập tích cực.",
		},
		Challenges: []string{
			"Lo lắng quá mức, đặc biệt cho người khác.",
			"Can thiệp thái quá, muốn giúp mọi người.",
			"Hy sinh bản thân, quên nhu cầu riêng.",
			"Cầu toàn, khó nói không.",
		},
		EffectiveMethods: []string{
			"Học qua việc dạy lại cho người khác.",
			"Tham gia các dự án cộng đồng, tình nguyện.",
			"Kết nối kiến thức với ứng dụng thực tế.",
		},
		IdealEnvironment: []string{
			"Ấm áp, hỗ trợ lẫn nhau.",
			"Có ý nghĩa nhân văn, giúp đỡ cộng đồng.",
			"Không khí hòa đồng, thân thiện.",
		},
		Conclusion: "Con có trái tim ấm áp. Hãy cho con thấy toán học có thể giúp ích cho cuộc sống và mọi người như thế nào.",
	},
	7: {
		LifePathNumber:  7,
		Title:           "Người Trí Tuệ",
		Personality:     "Người Trí Tuệ (The Thinker) - Sâu sắc, thích phân tích, tìm tòi chân lý. Hay đặt câu hỏi 'Tại sao'.",
		LearningStyle:   "Học qua nghiên cứu sâu, phân tích, tìm hiểu bản chất. Cần không gian yên tĩnh để suy ngẫm.",
		FocusCapability: "Rất cao khi học một mình, không bị làm phiền. Có thể tập trung sâu trong thời gian dài.",
		Motivation:      "Hiểu 'tại sao', khám phá bí ẩn, đạt đến sự thật. Thích tìm hiểu bản chất gốc rễ.",
		MathApproach:    "Phân tích từng chi tiết, tìm hiểu bản chất. Cần biết 'tại sao' trước khi làm.",
		Strengths: []string{
			"Phân tích sâu sắc, logic.",
			"Trực giác mạnh mẽ.",
			"Tư duy phản biện tốt.",
			"Yêu tri thức, ham học hỏi.",
		},
		Challenges: []string{
			"Xu hướng cô độc, xa cách.",
			"Hoài nghi quá mức, khó tin người.",
			"Khó chia sẻ cảm xúc, suy nghĩ.",
			"Có thể trở nên phê phán, chỉ trích.",
		},
		EffectiveMethods: []string{
			"Nghiên cứu chuyên sâu, đọc nhiều sách.",
			"Suy ngẫm, chiêm nghiệm một mình.",
			"Tìm hiểu nguồn gốc, bản chất vấn đề.",
		},
		IdealEnvironment: []string{
			"Yên tĩnh, sâu lắng.",
			"Không bị làm phiền, có không gian riêng.",
			"Được tự do suy ngẫm, nghiên cứu.",
			"Có thư viện tốt, nguồn tài liệu phong phú.",
		},
		Conclusion: "Con là một nhà nghiên cứu bẩm sinh. Hãy tôn trọng không gian riêng của con và khuyến khích con tự tìm ra câu trả lời.",
	},
	8: {
		LifePathNumber:  8,
		Title:           "Người Lãnh Đạo",
		Personality:     "Người Lãnh Đạo - Mạnh mẽ, thực tế, có tố chất kinh doanh. Nhạy bén với tiền bạc và thành công.",
		LearningStyle:   "Học có mục tiêu rõ ràng, đo lường được thành công. Thích học những gì mang lại lợi ích cụ thể.",
		FocusCapability: "Cao khi thấy mục tiêu rõ ràng và có ý nghĩa. Kiên trì với những gì mang lại thành công.",
		Motivation:      "Thành công, giàu có, quyền lực, danh vọng. Muốn đạt được vị thế cao.",
		MathApproach:    "Hiệu quả, nhanh chóng, tập trung kết quả. Áp dụng chiến lược, tính toán lợi ích.",
		Strengths: []string{
			"Lãnh đạo mạnh mẽ, quyết đoán.",
			"Tham vọng lớn, không ngừng nỗ lực.",
			"Tổ chức tốt, quản lý thời gian hiệu quả.",
			"Khả năng kinh doanh, quản trị.",
		},
		Challenges: []string{
			"Háo danh, thích quyền lực quá mức.",
			"Vật chất hóa giá trị học tập.",
			"Bỏ bê cảm xúc, mối quan hệ.",
			"Độc đoán, khó nghe ý kiến khác.",
		},
		EffectiveMethods: []string{
			"Lập kế hoạch dài hạn, từng giai đoạn.",
			"Học qua các dự án lớn, có tác động rộng.",
			"Kết hợp lý thuyết và thực hành.",
		},
		IdealEnvironment: []string{
			"Có mục tiêu rõ ràng, đo lường thành công.",
			"Môi trường chuyên nghiệp, nghiêm túc.",
			"Có cơ hội thể hiện năng lực lãnh đạo.",
		},
		Conclusion: "Con sinh ra để làm lớn. Hãy đặt ra những mục tiêu thách thức và phần thưởng xứng đáng để thúc đẩy con.",
	},
	9: {
		LifePathNumber:  9,
		Title:           "Người Nhân Ái",
		Personality:     "Người Nhân Ái - Bao dung, nhân hậu, tầm nhìn lớn. Muốn làm thế giới tốt đẹp hơn.",
		LearningStyle:   "Học có ý nghĩa nhân văn sâu sắc, liên quan đến việc giúp đỡ thế giới. Thích học những gì có giá trị cho cộng đồng.",
		FocusCapability: "Cao khi học những gì có ý nghĩa lớn lao. Khó tập trung với những điều nhỏ nhặt, chi tiết.",
		Motivation:      "Cống hiến cho cộng đồng, thay đổi thế giới, giúp đỡ người khác. Lý tưởng cao đẹp.",
		MathApproach:    "Nhìn tổng thể, kết nối với bức tranh lớn. Tìm ý nghĩa sâu xa của vấn đề.",
		Strengths: []string{
			"Lòng trắc ẩn sâu sắc, vị tha.",
			"Nhìn xa, có tầm nhìn rộng.",
			"Sáng tạo, trí tuệ cảm xúc cao.",
			"Khả năng kết nối kiến thức với thực tế xã hội.",
		},
		Challenges: []string{
			"Lý tưởng hóa, khó thực tế.",
			"Dễ thất vọng khi không đạt được lý tưởng.",
			"Hy sinh thái quá, quên bản thân.",
			"Cảm xúc thất thường, ảnh hưởng học tập.",
		},
		EffectiveMethods: []string{
			"Kết nối kiến thức với vấn đề xã hội.",
			"Học qua dự án cộng đồng, tình nguyện.",
			"Tìm hiểu các vấn đề toàn cầu.",
		},
		IdealEnvironment: []string{
			"Có ý nghĩa nhân văn sâu sắc.",
			"Liên quan đến cộng đồng, xã hội.",
			"Không khí hợp tác, chia sẻ.",
		},
		Conclusion: "Con là người có tầm nhìn vĩ đại. Hãy giúp con kết nối kiến thức sách vở với những giá trị nhân văn cao cả.",
	},
	11: {
		LifePathNumber:  11,
		Title:           "Bậc Thầy Trực Giác",
		Personality:     "Bậc Thầy Trực Giác (Master Number) - Trực giác cực mạnh, nhạy cảm, tinh tế. Có khả năng truyền cảm hứng lớn.",
		LearningStyle:   "Học qua trực giác, cảm nhận, kết nối tâm linh. Nhận biết patterns (mẫu hình) một cách trực quan.",
		FocusCapability: "Cao khi môi trường yên bình, tâm linh. Dễ bị áp lực cao làm mất tập trung.",
		Motivation:      "Giác ngộ, kết nối vũ trụ qua con số, truyền cảm hứng. Tìm kiếm sự thật sâu xa.",
		MathApproach:    "Trực giác trước, logic sau. Thấy mẫu hình, quy luật một cách trực quan.",
		Strengths: []string{
			"Trực giác siêu phàm, nhạy bén cực độ.",
			"Khả năng nhận dạng patterns xuất sắc.",
			"Sáng tạo phi thường.",
			"Truyền cảm hứng mạnh mẽ cho người khác.",
		},
		Challenges: []string{
			"Căng thẳng thần kinh, áp lực kỳ vọng cao.",
			"Quá nhạy cảm với môi trường xung quanh.",
			"Mộng mơ, thiếu thực tế.",
			"Khó giải thích cách mình biết.",
		},
		EffectiveMethods: []string{
			"Tin vào trực giác, cảm nhận của mình.",
			"Học qua thiền định, mindfulness.",
			"Tìm hiểu về tâm linh, siêu hình học.",
		},
		IdealEnvironment: []string{
			"Yên bình, tâm linh.",
			"Khuyến khích trực giác, cảm nhận.",
			"Không áp lực, căng thẳng.",
		},
		Conclusion: "Con sở hữu trực giác đặc biệt. Đừng ép con giải thích logic ngay lập tức, hãy tin vào 'cảm giác' toán học của con.",
	},
	22: {
		LifePathNumber:  22,
		Title:           "Kiến Trúc Sư Bậc Thầy",
		Personality:     "Kiến Trúc Sư Bậc Thầy (Master Number) - Tầm nhìn vĩ mô kết hợp hành động thực tế. Biến giấc mơ thành hiện thực.",
		LearningStyle:   "Học qua dự án lớn, kế hoạch dài hạn, xây dựng hệ thống. Thích các mục tiêu vĩ đại có tính thực tiễn cao.",
		FocusCapability: "Rất cao với các dự án lớn, có ý nghĩa. Kiên trì dài hạn với mục tiêu vĩ đại.",
		Motivation:      "Xây dựng nền móng cho tương lai, tạo ra điều vĩ đại. Tác động lớn, thay đổi hệ thống.",
		MathApproach:    "Hệ thống + tầm nhìn. Từng bước nhưng hướng đến mục tiêu lớn. Kết hợp trực giác và logic.",
		Strengths: []string{
			"Tham vọng lớn có tính thực tế.",
			"Tổ chức xuất sắc, quản lý dự án tốt.",
			"Kiên định phi thường với mục tiêu lớn.",
			"Kết hợp được lý tưởng và thực tế.",
		},
		Challenges: []string{
			"Áp lực cao từ bản thân và người khác.",
			"Căng thẳng vì mục tiêu quá lớn.",
			"Có thể trở nên cứng nhắc.",
			"Khó chấp nhận thất bại.",
		},
		EffectiveMethods: []string{
			"Lập kế hoạch dài hạn, từng giai đoạn.",
			"Học qua các dự án lớn, có tác động rộng.",
			"Kết hợp lý thuyết và thực hành.",
		},
		IdealEnvironment: []string{
			"Có mục tiêu lớn, tầm ảnh hưởng rộng.",
			"Môi trường nghiêm túc, chuyên nghiệp.",
			"Có nguồn lực để thực hiện dự án lớn.",
		},
		Conclusion: "Con có tiềm năng làm nên những điều phi thường. Hãy hỗ trợ con xây dựng những kế hoạch lớn với lộ trình cụ thể.",
	},
	33: {
		LifePathNumber:  33,
		Title:           "Người Chữa Lành",
		Personality:     "Người Chữa Lành (Master Number) - Tình yêu thương vô điều kiện, sự hy sinh. Mang năng lượng nuôi dưỡng.",
		LearningStyle:   "Học trong môi trường yêu thương, không cạnh tranh. Thích các hoạt động nghệ thuật và chăm sóc.",
		FocusCapability: "Cao khi được chăm sóc người khác. Dễ mất tập trung nếu môi trường xung đột.",
		Motivation:      "Mang lại niềm vui, sự chữa lành cho người khác. Cống hiến vì tình yêu thương.",
		MathApproach:    "Tiếp cận nhẹ nhàng, không áp lực. Thích giải toán để giúp bạn bè.",
		Strengths: []string{
			"Lòng yêu thương và sự tận tụy hiếm có.",
			"Khả năng lắng nghe và xoa dịu nỗi đau.",
			"Sáng tạo và hướng thiện.",
			"Truyền năng lượng tích cực.",
		},
		Challenges: []string{
			"Dễ quên bản thân vì người khác.",
			"Nhạy cảm thái quá với nỗi đau thế giới.",
			"Ôm đồm trách nhiệm.",
			"Dễ bị tổn thương tình cảm.",
		},
		EffectiveMethods: []string{
			"Học nhóm, giúp đỡ bạn bè yếu hơn.",
			"Kết hợp nghệ thuật và tình cảm vào bài học.",
			"Tạo không gian học tập ấm cúng.",
		},
		IdealEnvironment: []string{
			"Đầy tình yêu thương, hỗ trợ.",
			"Không cạnh tranh, ganh đua.",
			"Khuyến khích sự sẻ chia, giúp đỡ.",
		},
		Conclusion: "Con là hiện thân của tình yêu thương. Hãy tạo cho con môi trường học tập không áp lực, nơi con có thể giúp đỡ mọi người.",
	},
}
