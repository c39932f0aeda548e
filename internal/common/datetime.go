package common

import (
	"time"
)

// TruncateToDay drops the clock part and returns the calendar day of t as UTC midnight.
func TruncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
