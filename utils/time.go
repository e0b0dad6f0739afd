package utils

import "time"

const DateLayout = "2006-01-02"

// ParseDate 解析 2006-01-02 格式的日期
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// FormatDate 输出 2006-01-02 格式
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// TruncateToDate 丢弃时分秒，保留 UTC 日期
func TruncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysBetween 返回 from 到 to 的整天数，to 在 from 之前时为负
func DaysBetween(from, to time.Time) int {
	from = TruncateToDate(from)
	to = TruncateToDate(to)
	return int(to.Sub(from).Hours() / 24)
}
