package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBeginningOfDay(t *testing.T) {
	ts := time.Date(2026, time.August, 30, 17, 45, 12, 999, time.Local)

	got := BeginningOfDay(ts)
	assert.Equal(t, time.Date(2026, time.August, 30, 0, 0, 0, 0, time.Local), got)
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2026-08-30")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, time.August, 30, 0, 0, 0, 0, time.Local), got)

	_, err = ParseDate("30/08/2026")
	assert.Error(t, err)
}

func TestWeekRange(t *testing.T) {
	// 2026-08-26 is a Wednesday
	wednesday := time.Date(2026, time.August, 26, 14, 30, 0, 0, time.Local)

	start, end := WeekRange(wednesday)
	assert.Equal(t, time.Date(2026, time.August, 23, 0, 0, 0, 0, time.Local), start)
	assert.Equal(t, time.Date(2026, time.August, 29, 0, 0, 0, 0, time.Local), end)
	assert.Equal(t, time.Sunday, start.Weekday())
	assert.Equal(t, time.Saturday, end.Weekday())
}

func TestWeekRangeOnSunday(t *testing.T) {
	sunday := time.Date(2026, time.August, 23, 9, 0, 0, 0, time.Local)

	start, end := WeekRange(sunday)
	assert.Equal(t, BeginningOfDay(sunday), start)
	assert.Equal(t, start.AddDate(0, 0, 6), end)
}

func TestDaysBetween(t *testing.T) {
	start := time.Date(2026, time.August, 23, 23, 59, 0, 0, time.Local)
	end := time.Date(2026, time.August, 26, 0, 1, 0, 0, time.Local)

	assert.Equal(t, 3, DaysBetween(start, end))
	assert.Equal(t, 0, DaysBetween(end, end))
}
