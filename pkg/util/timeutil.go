package util

import "time"

// NowUTC exposes time.Now for deterministic testing.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// UTCNoon pins a calendar day to 12:00 UTC so derived records do not
// depend on the generator's local time zone.
func UTCNoon(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 12, 0, 0, 0, time.UTC)
}

// DaysInMonth returns the number of calendar days in the given month.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// DateString renders t as the ISO calendar date used across the API.
func DateString(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}
