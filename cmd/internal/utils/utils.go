package utils

import (
	"time"
)

// FormatEpoch renders a snapshot CreatedAt (epoch millis) as RFC 3339 in UTC.
func FormatEpoch(millis int64) string {
	return time.UnixMilli(millis).
		UTC().
		Format(time.RFC3339)
}

// NowUTC is the epoch millis stamped on imported snapshots.
func NowUTC() int64 {
	return time.Now().
		UTC().
		UnixMilli()
}
