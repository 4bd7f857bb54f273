package util

import "time"

// NowUTC is the default clock for services; tests swap in fixed times.
func NowUTC() time.Time {
	return time.Now().UTC()
}

