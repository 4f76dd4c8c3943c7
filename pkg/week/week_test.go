package week

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestStart_AlwaysMonday(t *testing.T) {
	// 任取一段连续日期，Start 必须返回周一，且与原日期差在 0-6 天内
	base := date(2026, time.January, 1)
	for i := 0; i < 400; i++ {
		d := base.AddDate(0, 0, i)
		start := Start(d)

		if start.Weekday() != time.Monday {
			t.Errorf("Start(%v) 应为周一，实际=%v", d, start.Weekday())
		}
		diff := int(Truncate(d).Sub(start).Hours() / 24)
		if diff < 0 || diff > 6 {
			t.Errorf("Start(%v) 偏移应在[0,6]天，实际=%d", d, diff)
		}
	}
}

func TestStart_KnownDates(t *testing.T) {
	cases := []struct {
		in   time.Time
		want time.Time
	}{
		{date(2026, time.August, 31), date(2026, time.August, 31)},  // 周一本身
		{date(2026, time.September, 6), date(2026, time.August, 31)}, // 周日归属上周一
		{date(2026, time.September, 4), date(2026, time.August, 31)}, // 周五
	}

	for _, c := range cases {
		if got := Start(c.in); !got.Equal(c.want) {
			t.Errorf("Start(%v) 期望=%v，实际=%v", c.in, c.want, got)
		}
	}
}

func TestStart_IgnoresTimeOfDay(t *testing.T) {
	withTime := time.Date(2026, time.September, 2, 23, 59, 59, 0, time.UTC)
	if got := Start(withTime); !got.Equal(date(2026, time.August, 31)) {
		t.Errorf("Start 应忽略时分秒，实际=%v", got)
	}
}

func TestEnd_IsSundaySixDaysLater(t *testing.T) {
	d := date(2026, time.September, 2) // 周三
	end := End(d)

	if end.Weekday() != time.Sunday {
		t.Errorf("End 应为周日，实际=%v", end.Weekday())
	}
	if !end.Equal(date(2026, time.September, 6)) {
		t.Errorf("期望=2026-09-06，实际=%v", end)
	}
}

func TestWeekdayPredicates(t *testing.T) {
	friday := date(2026, time.September, 4)
	saturday := date(2026, time.September, 5)
	sunday := date(2026, time.September, 6)
	monday := date(2026, time.August, 31)

	if !IsFriday(friday) || IsFriday(sunday) {
		t.Error("IsFriday 判断错误")
	}
	if !IsSunday(sunday) || IsSunday(friday) {
		t.Error("IsSunday 判断错误")
	}
	if !IsWeekend(saturday) || !IsWeekend(sunday) || IsWeekend(monday) {
		t.Error("IsWeekend 判断错误")
	}
}
