package util

import (
	"time"
)

const layout = "2006-01-02"

func NewDate(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

func DateLte(t1, t2 time.Time) bool {
	return t1.Before(t2) || t1.Format(layout) == t2.Format(layout)
}

// TruncateDate drops the time component, keeping UTC midnight
func TruncateDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DatesBetween returns every calendar date in [start, end], inclusive
func DatesBetween(start, end time.Time) []time.Time {
	out := []time.Time{}
	current := TruncateDate(start)
	for DateLte(current, end) {
		out = append(out, current)
		current = current.AddDate(0, 0, 1)
	}
	return out
}
