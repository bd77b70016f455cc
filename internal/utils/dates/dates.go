// Package dates handles the calendar-date strings used throughout the ledger.
//
// All transaction and subscription dates are fixed-width local-calendar strings
// in the form YYYY-MM-DD, so lexical comparison equals chronological comparison.
// Everything here works on the local wall clock, never UTC: a transaction added
// at 23:30 must land on the user's day, not the following UTC day.
package dates

import (
	"fmt"
	"math"
	"time"
)

// DayFormat is the canonical date layout for all ledger dates.
const DayFormat = "2006-01-02"

// MonthFormat is the layout of a month prefix, e.g. "2025-02".
const MonthFormat = "2006-01"

// TimestampFormat is the layout for full timestamps (backup envelope only).
const TimestampFormat = "2006-01-02T15:04:05.000Z07:00"

// Today returns the current local date as a YYYY-MM-DD string.
func Today() string {
	return time.Now().Format(DayFormat)
}

// NowTimestamp returns the current local time as a full timestamp string.
func NowTimestamp() string {
	return time.Now().Format(TimestampFormat)
}

// Parse parses a strict YYYY-MM-DD date string.
func Parse(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DayFormat, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, want format %q: %w", s, DayFormat, err)
	}
	return t, nil
}

// IsValid reports whether s is a well-formed YYYY-MM-DD date.
func IsValid(s string) bool {
	_, err := Parse(s)
	return err == nil
}

// MonthOf returns the YYYY-MM prefix of a date string.
func MonthOf(date string) string {
	if len(date) < len(MonthFormat) {
		return date
	}
	return date[:len(MonthFormat)]
}

// CurrentMonth returns the YYYY-MM prefix of today's local date.
func CurrentMonth() string {
	return MonthOf(Today())
}

// IsValidMonth reports whether s is a well-formed YYYY-MM month prefix.
func IsValidMonth(s string) bool {
	_, err := time.ParseInLocation(MonthFormat, s, time.Local)
	return err == nil
}

// MonthsBetween returns the whole-month distance from month to laterMonth,
// both YYYY-MM strings. The result is negative when laterMonth precedes month.
func MonthsBetween(month, laterMonth string) (int, error) {
	from, err := time.ParseInLocation(MonthFormat, month, time.Local)
	if err != nil {
		return 0, fmt.Errorf("invalid month %q: %w", month, err)
	}
	to, err := time.ParseInLocation(MonthFormat, laterMonth, time.Local)
	if err != nil {
		return 0, fmt.Errorf("invalid month %q: %w", laterMonth, err)
	}
	return (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month()), nil
}

// DiffDays returns date minus from in whole days. Positive when date is in the
// future relative to from.
func DiffDays(date, from string) (int, error) {
	d, err := Parse(date)
	if err != nil {
		return 0, err
	}
	f, err := Parse(from)
	if err != nil {
		return 0, err
	}
	// Round rather than truncate so a DST-shortened day still counts whole.
	return int(math.Round(d.Sub(f).Hours() / 24)), nil
}

// AddMonthsClamped advances a date by the given number of calendar months,
// clamping the day of month when the target month is shorter: 2024-01-31 plus
// one month is 2024-02-29, not an overflow into March.
func AddMonthsClamped(date string, months int) (string, error) {
	t, err := Parse(date)
	if err != nil {
		return "", err
	}
	y, m, d := t.Date()
	// Normalize the target month using a first-of-month anchor, then clamp.
	anchor := time.Date(y, m, 1, 0, 0, 0, 0, time.Local).AddDate(0, months, 0)
	if last := daysIn(anchor.Year(), anchor.Month()); d > last {
		d = last
	}
	return time.Date(anchor.Year(), anchor.Month(), d, 0, 0, 0, 0, time.Local).Format(DayFormat), nil
}

// AddYearsClamped advances a date by whole calendar years with the same
// day-of-month clamping (Feb 29 plus one year is Feb 28).
func AddYearsClamped(date string, years int) (string, error) {
	t, err := Parse(date)
	if err != nil {
		return "", err
	}
	y, m, d := t.Date()
	if last := daysIn(y+years, m); d > last {
		d = last
	}
	return time.Date(y+years, m, d, 0, 0, 0, 0, time.Local).Format(DayFormat), nil
}

// daysIn returns the number of days in the given month.
func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.Local).Day()
}
