package domain

import "time"

// TimestampLayout is the stored form of createdAt and registeredAt values.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// Timestamp renders t in UTC with millisecond precision.
func Timestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}
