package logger

import (
	"errors"
	"fmt"
	"strings"
)

// Level defines log severity. Declaration order runs from most to least
// severe, so ErrorLevel has the smallest ordinal.
type Level int

const (
	// ErrorLevel reports failures.
	ErrorLevel Level = iota
	// WarnLevel reports unexpected but recoverable conditions.
	WarnLevel
	// InfoLevel reports primary program output.
	InfoLevel
	// VerbLevel reports verbose progress details.
	VerbLevel
	// DebugLevel reports diagnostic details.
	DebugLevel
	// TraceLevel reports everything, including raw byte dumps.
	TraceLevel
)

// ErrUnknownLevel is returned when a name or number matches no level.
var ErrUnknownLevel = errors.New("unknown log level provided")

var levelNames = [...]string{
	ErrorLevel: "Error",
	WarnLevel:  "Warn",
	InfoLevel:  "Info",
	VerbLevel:  "Verb",
	DebugLevel: "Debug",
	TraceLevel: "Trace",
}

// DefaultLevel returns the threshold used when nothing else is configured.
func DefaultLevel() Level {
	return WarnLevel
}

// AllLevels returns all supported levels in declaration order.
func AllLevels() []Level {
	return []Level{
		ErrorLevel,
		WarnLevel,
		InfoLevel,
		VerbLevel,
		DebugLevel,
		TraceLevel,
	}
}

// LevelFromOrdinal returns the level whose ordinal is n.
func LevelFromOrdinal(n int) (Level, bool) {
	if n < 0 || n >= len(levelNames) {
		return 0, false
	}
	return Level(n), true
}

// LevelFromName matches s case-insensitively against the level names.
func LevelFromName(s string) (Level, bool) {
	for _, l := range AllLevels() {
		if strings.EqualFold(s, levelNames[l]) {
			return l, true
		}
	}
	return 0, false
}

// ParseLevel is LevelFromName with an error for unknown names.
func ParseLevel(s string) (Level, error) {
	if l, ok := LevelFromName(s); ok {
		return l, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
}

// LevelFromInt is LevelFromOrdinal with an error for out-of-range values.
func LevelFromInt(n int) (Level, error) {
	if l, ok := LevelFromOrdinal(n); ok {
		return l, nil
	}
	return 0, fmt.Errorf("%w: %d", ErrUnknownLevel, n)
}

// String returns the capitalized level name.
func (l Level) String() string {
	if l < 0 || int(l) >= len(levelNames) {
		return fmt.Sprintf("Level(%d)", int(l))
	}
	return levelNames[l]
}

// Compare orders levels by severity: positive when l is more severe than
// other, negative when less, zero when equal.
func (l Level) Compare(other Level) int {
	switch {
	case l < other:
		return 1
	case l > other:
		return -1
	default:
		return 0
	}
}

// MoreSevereThan reports whether l outranks other.
func (l Level) MoreSevereThan(other Level) bool {
	return l.Compare(other) > 0
}

// Enabled reports whether a message at l passes the given threshold, i.e.
// whether l is at least as severe as threshold.
func (l Level) Enabled(threshold Level) bool {
	return l <= threshold
}

// MarshalText encodes the level as its lowercase name.
func (l Level) MarshalText() ([]byte, error) {
	if _, ok := LevelFromOrdinal(int(l)); !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownLevel, int(l))
	}
	return []byte(strings.ToLower(l.String())), nil
}

// UnmarshalText decodes a level name in any letter case.
func (l *Level) UnmarshalText(text []byte) error {
	parsed, err := ParseLevel(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// Format lets a Level take part in width and alignment verbs like %-8v.
// %d prints the ordinal; %v, %s and %q print the name.
func (l Level) Format(f fmt.State, verb rune) {
	if verb == 'd' {
		fmt.Fprintf(f, "%d", int(l))
		return
	}
	writeVerb(f, verb, "logger.Level", l.String())
}
