//go:build !nohumantime

package logger

import "time"

// timestampLayout renders e.g. "Thu, 01 Jan 2024 00:00:00" in the clock's zone.
const timestampLayout = "Mon, 02 Jan 2006 15:04:05"

func (c Clock) layoutTime(t time.Time) string {
	return t.In(c.loc).Format(timestampLayout)
}
