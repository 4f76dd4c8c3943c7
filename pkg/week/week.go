package week

import "time"

// 工时周期以周一为一周的起点（ISO 约定），周期以其周一日期标识。

// Truncate 去掉时分秒，归一化为 UTC 零点的日历日期
func Truncate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Start 返回 t 所在周的周一（含 t 当天为周一的情况）
func Start(t time.Time) time.Time {
	d := Truncate(t)
	// time.Weekday 以周日为 0，转换为周一为 0 的偏移
	offset := (int(d.Weekday()) + 6) % 7
	return d.AddDate(0, 0, -offset)
}

// End 返回 t 所在周的周日
func End(t time.Time) time.Time {
	return Start(t).AddDate(0, 0, 6)
}

// IsFriday 判断 t 是否为周五
func IsFriday(t time.Time) bool {
	return t.Weekday() == time.Friday
}

// IsSunday 判断 t 是否为周日
func IsSunday(t time.Time) bool {
	return t.Weekday() == time.Sunday
}

// IsWeekend 判断 t 是否为周末（周六或周日）
func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
