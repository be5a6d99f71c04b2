package dto

import "time"

// DateLayout định dạng ngày dùng trong payload API
const DateLayout = "2006-01-02"

// ParseDate chuyển chuỗi ngày YYYY-MM-DD thành time.Time (UTC)
func ParseDate(dateStr string) (time.Time, error) {
	return time.Parse(DateLayout, dateStr)
}
