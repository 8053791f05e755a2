package suggest

// topicEntry maps one interest keyword to its prompt bucket. Order matters:
// the first entry matching an interest wins.
type topicEntry struct {
	Topic   string
	Prompts []string
}

// topicTable keys concrete prompt buckets on Vietnamese interest keywords.
var topicTable = []topicEntry{
	{
		Topic: "thể thao",
		Prompts: []string{
			"Kết quả cúp châu Âu hôm nay",
			"Tin chuyển nhượng bóng đá mới nhất",
			"Lịch thi đấu của đội tuyển Việt Nam tuần này",
			"Bảng xếp hạng Ngoại hạng Anh hiện tại",
			"Những môn thể thao tốt cho sức khỏe người lớn tuổi",
		},
	},
	{
		Topic: "nấu ăn",
		Prompts: []string{
			"Gợi ý thực đơn cơm gia đình hôm nay",
			"Cách nấu phở bò chuẩn vị Hà Nội",
			"Món ăn dễ làm từ trứng và rau củ",
			"Mẹo giữ rau xanh tươi lâu trong tủ lạnh",
			"Công thức món tráng miệng đơn giản cuối tuần",
		},
	},
	{
		Topic: "đọc sách",
		Prompts: []string{
			"Những cuốn sách đáng đọc nhất năm nay",
			"Tóm tắt một cuốn sách nổi tiếng về hạt giống tâm hồn",
			"Sách hay về lịch sử Việt Nam",
			"Gợi ý sách cho người mới bắt đầu đọc",
			"Tác giả văn học Việt Nam tiêu biểu hiện nay",
		},
	},
	{
		Topic: "du lịch",
		Prompts: []string{
			"Địa điểm du lịch đẹp ở Việt Nam mùa này",
			"Kinh nghiệm du lịch Đà Lạt tự túc",
			"Những món đặc sản nên thử khi đến Huế",
			"Chuẩn bị gì cho chuyến du lịch cùng gia đình",
			"Thời điểm đẹp nhất để đi Sapa",
		},
	},
	{
		Topic: "âm nhạc",
		Prompts: []string{
			"Bài hát Việt Nam đang thịnh hành tuần này",
			"Những ca khúc nhạc Trịnh hay nhất",
			"Ca sĩ trẻ nổi bật hiện nay",
			"Gợi ý nhạc nhẹ nhàng để thư giãn buổi tối",
			"Lịch sử dòng nhạc bolero ở Việt Nam",
		},
	},
	{
		Topic: "công nghệ",
		Prompts: []string{
			"Tin công nghệ nổi bật hôm nay",
			"Điện thoại đáng mua nhất trong tầm giá hiện nay",
			"Trí tuệ nhân tạo đang thay đổi cuộc sống thế nào",
			"Mẹo bảo mật tài khoản mạng xã hội",
			"Cách dùng điện thoại chụp ảnh đẹp hơn",
		},
	},
	{
		Topic: "làm vườn",
		Prompts: []string{
			"Cách trồng rau sạch trên sân thượng",
			"Loại cây cảnh dễ chăm trong nhà",
			"Lịch bón phân cho cây ăn quả theo mùa",
			"Mẹo trị sâu bệnh cho rau không dùng hóa chất",
			"Hoa nào nên trồng vào mùa này",
		},
	},
	{
		Topic: "tài chính",
		Prompts: []string{
			"Tình hình giá vàng hôm nay",
			"Lãi suất tiết kiệm ngân hàng hiện nay",
			"Cách quản lý chi tiêu gia đình hiệu quả",
			"Nên đầu tư gì với số vốn nhỏ",
			"Tin tức thị trường chứng khoán hôm nay",
		},
	},
	{
		Topic: "giáo dục",
		Prompts: []string{
			"Phương pháp giúp trẻ học tốt ở nhà",
			"Tin tức tuyển sinh đại học năm nay",
			"Cách dạy con sử dụng mạng an toàn",
			"Kỹ năng mềm quan trọng cho học sinh",
			"Ứng dụng học tiếng Anh miễn phí tốt nhất",
		},
	},
	{
		Topic: "phim ảnh",
		Prompts: []string{
			"Phim Việt Nam đang chiếu rạp tuần này",
			"Những bộ phim truyền hình đáng xem hiện nay",
			"Phim hay trên truyền hình tối nay",
			"Diễn viên Việt Nam nổi bật năm nay",
			"Gợi ý phim phù hợp xem cùng cả nhà",
		},
	},
}

// dailyPool holds general daily-information prompts appended after the
// interest-keyed candidates in the fallback path.
var dailyPool = []string{
	"Thời tiết hôm nay thế nào",
	"Tin tức nổi bật trong ngày",
	"Giá xăng dầu hiện tại",
	"Tỷ giá ngoại tệ hôm nay",
	"Sự kiện đáng chú ý tuần này",
	"Món ăn gợi ý cho bữa tối nay",
	"Mẹo sống khỏe mỗi ngày",
	"Câu chuyện thú vị hôm nay",
	"Ngày lễ sắp tới là ngày nào",
	"Lời khuyên hữu ích cho hôm nay",
}

// genericSuggestions is the fixed batch returned when no member is selected
// or the member has no interests.
var genericSuggestions = []string{
	"Thời tiết hôm nay thế nào",
	"Tin tức mới nhất hôm nay",
	"Giá vàng hôm nay bao nhiêu",
	"Hôm nay có sự kiện gì đặc biệt",
	"Gợi ý món ăn cho bữa cơm gia đình",
	"Mẹo chăm sóc sức khỏe mùa này",
	"Chuyện vui để kể cho cả nhà",
	"Lịch nghỉ lễ sắp tới",
}
