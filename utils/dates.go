package utils

import "time"

// DateLayout is the date-only wire format used by all screens. Dates are
// interpreted in server-local time.
const DateLayout = "2006-01-02"

func BeginningOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// ParseDate parses a YYYY-MM-DD string in server-local time.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.Local)
}

// WeekRange returns the Sunday..Saturday span containing t, both at midnight.
func WeekRange(t time.Time) (start, end time.Time) {
	start = BeginningOfDay(t).AddDate(0, 0, -int(t.Weekday()))
	end = start.AddDate(0, 0, 6)
	return start, end
}

func DaysBetween(start, end time.Time) int {
	start = BeginningOfDay(start)
	end = BeginningOfDay(end)
	return int(end.Sub(start).Hours() / 24)
}
