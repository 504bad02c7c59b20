package utils

import "time"

// CreateDateAddDaysFromNow returns the current time shifted by the given
// number of days
func CreateDateAddDaysFromNow(days int) time.Time {
	return time.Now().AddDate(0, 0, days)
}

// EpochMillis converts a time to milliseconds since the Unix epoch, the unit
// used for deliveredDate on orders
func EpochMillis(t time.Time) int64 {
	return t.UnixMilli()
}
