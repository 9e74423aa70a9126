package util

import "errors"

var (
	ErrProfileNotFound    = errors.New("không tìm thấy hồ sơ học sinh")
	ErrUnitNotFound       = errors.New("không tìm thấy bài học trong lộ trình")
	ErrInvalidGrade       = errors.New("lớp học phải từ 6 đến 12")
	ErrInvalidProficiency = errors.New("trình độ phải từ 1 đến 4")
	ErrInvalidScore       = errors.New("điểm phải nằm trong khoảng từ 0 đến tổng số câu hỏi")
	ErrEmptyTopics        = errors.New("vui lòng chọn ít nhất một chủ đề")
	ErrEmptyMessage       = errors.New("tin nhắn không được để trống")
)
