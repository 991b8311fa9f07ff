package domain

import (
	"strings"
	"time"
)

// DateLayout is the calendar date format used for start and end dates.
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD calendar date.
func ParseDate(value string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

// FormatDate renders t as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// Truncate drops the time of day, keeping the calendar date in UTC.
func Truncate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SameDay reports whether a and b fall on the same calendar date.
func SameDay(a, b time.Time) bool {
	return Truncate(a).Equal(Truncate(b))
}

// ParseEndDate parses value and rejects dates before notBefore.
func ParseEndDate(value string, notBefore time.Time) (time.Time, error) {
	end, err := ParseDate(value)
	if err != nil {
		return time.Time{}, err
	}
	if end.Before(Truncate(notBefore)) {
		return time.Time{}, ErrEndDateInPast
	}
	return end, nil
}
