// Package dateutils provides the calendar helpers shared by the classifier,
// the ledger summaries and the CLI output.
package dateutils

import (
	"time"
)

// Date layouts used for display and CSV output
const (
	DateLayoutISO     = "2006-01-02"
	DateLayoutDisplay = "Mon 2 Jan 2006"
	DateLayoutFull    = "2006-01-02 15:04"
)

// FormatDate formats date with layout, defaulting to DateLayoutISO.
func FormatDate(date time.Time, layout string) string {
	if layout == "" {
		layout = DateLayoutISO
	}
	return date.Format(layout)
}

// ToISODate formats a date as YYYY-MM-DD.
func ToISODate(date time.Time) string {
	return date.Format(DateLayoutISO)
}

// AddDays moves date by n calendar days, keeping the wall-clock time.
// Across a DST change the result is not a multiple of 24h.
func AddDays(date time.Time, n int) time.Time {
	return date.AddDate(0, 0, n)
}

// StartOfDay truncates date to local midnight.
func StartOfDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
}

// SameDay reports whether a and b fall on the same calendar day in a's location.
func SameDay(a, b time.Time) bool {
	b = b.In(a.Location())
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// CompareDates compares the calendar days of two dates, ignoring the time of day:
//
//	-1 if date1 is before date2
//	 0 if they are the same day
//	 1 if date1 is after date2
func CompareDates(date1, date2 time.Time) int {
	d1 := time.Date(date1.Year(), date1.Month(), date1.Day(), 0, 0, 0, 0, time.UTC)
	d2 := time.Date(date2.Year(), date2.Month(), date2.Day(), 0, 0, 0, 0, time.UTC)

	switch {
	case d1.Before(d2):
		return -1
	case d1.After(d2):
		return 1
	default:
		return 0
	}
}
