package utils

import (
	"fmt"
	"time"

	"github.com/julianstephens/habitkit/internal/constants"
)

// Clock returns the current time. Components take one so tests can pin "today".
type Clock func() time.Time

// FixedClock returns a Clock that always reports t
func FixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}

// DateString formats t as a calendar date (YYYY-MM-DD) in t's own location.
func DateString(t time.Time) string {
	return t.Format(constants.DateFormat)
}

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(date string) (time.Time, error) {
	t, err := time.Parse(constants.DateFormat, date)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD): %w", date, err)
	}
	return t, nil
}

// ValidateDate reports whether date is a well-formed YYYY-MM-DD calendar date.
func ValidateDate(date string) bool {
	_, err := ParseDate(date)
	return err == nil
}

// AddDays shifts a YYYY-MM-DD date by n calendar days.
func AddDays(date string, n int) (string, error) {
	t, err := ParseDate(date)
	if err != nil {
		return "", err
	}
	return DateString(t.AddDate(0, 0, n)), nil
}

// RecentDates returns the n dates ending at today, oldest first.
func RecentDates(today string, n int) ([]string, error) {
	t, err := ParseDate(today)
	if err != nil {
		return nil, err
	}
	dates := make([]string, 0, n)
	for i := n - 1; i >= 0; i-- {
		dates = append(dates, DateString(t.AddDate(0, 0, -i)))
	}
	return dates, nil
}

// WeekDates returns the Sunday-to-Saturday week containing today, shifted by
// offset weeks (negative is the past).
func WeekDates(today string, offset int) ([]string, error) {
	t, err := ParseDate(today)
	if err != nil {
		return nil, err
	}
	start := t.AddDate(0, 0, -int(t.Weekday())+offset*constants.DaysPerWeek)
	dates := make([]string, constants.DaysPerWeek)
	for i := range dates {
		dates[i] = DateString(start.AddDate(0, 0, i))
	}
	return dates, nil
}
