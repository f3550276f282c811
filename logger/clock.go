package logger

import "time"

// Clock captures a time zone once and renders timestamps in it. It is a
// plain value handed to each Record, so nothing reads or mutates process
// time-zone state while logging.
type Clock struct {
	loc *time.Location
	now func() time.Time
}

// LocalClock captures the process's local zone at the time of the call.
func LocalClock() Clock {
	return NewClock(time.Local, time.Now)
}

// NewClock builds a Clock. A nil loc means UTC and a nil now means time.Now.
func NewClock(loc *time.Location, now func() time.Time) Clock {
	if loc == nil {
		loc = time.UTC
	}
	if now == nil {
		now = time.Now
	}
	return Clock{loc: loc, now: now}
}

// FixedClock always reports t. Useful for reproducible output.
func FixedClock(t time.Time) Clock {
	return NewClock(t.Location(), func() time.Time { return t })
}

// Timestamp renders the current time.
func (c Clock) Timestamp() string {
	if c.now == nil {
		c = NewClock(c.loc, nil)
	}
	return c.layoutTime(c.now())
}
