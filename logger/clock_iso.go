//go:build nohumantime

package logger

import "time"

// timestampLayout is ISO-8601 with nanoseconds, always in UTC.
const timestampLayout = "2006-01-02T15:04:05.000000000Z07:00"

func (c Clock) layoutTime(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}
