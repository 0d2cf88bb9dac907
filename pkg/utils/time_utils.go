package utils

import (
	"time"
)

const (
	// HoursPerYear is the billing year used for yearly cost projection
	HoursPerYear = 8760

	// SecondsPerYear is a fixed 365-day year; leap years are ignored
	SecondsPerYear = 31_536_000
)

// DaysUntil returns the whole days from now until t, truncated toward zero.
// The result is negative once t has passed.
func DaysUntil(now, t time.Time) int {
	return int(t.Sub(now) / (24 * time.Hour))
}

// TermYears converts a reservation duration in seconds to whole years
func TermYears(durationSeconds int64) int64 {
	return durationSeconds / SecondsPerYear
}
