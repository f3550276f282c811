package logger

import (
	"fmt"

	"github.com/mordilloSan/go-termlog/color"
)

// Config is the configuration snapshot consulted for every emission.
// It is passed by value and never modified by this package.
type Config struct {
	// LogLevel is the least severe level that is still emitted.
	// Default: WarnLevel (see DefaultConfig)
	LogLevel Level
	// ColoredOutput enables ANSI colors when both stdout and stderr are terminals.
	// Default: false
	ColoredOutput bool
	// ColoredOutputForced enables ANSI colors without checking for a terminal.
	// Default: false
	ColoredOutputForced bool
}

// DefaultConfig returns a Config with the default threshold and no color.
func DefaultConfig() Config {
	return Config{LogLevel: DefaultLevel()}
}

// Record is a single log event. It is rendered once and then discarded.
type Record struct {
	config  Config
	message string
	level   Level
	time    string
}

// NewRecord captures the current time from clock.
func NewRecord(config Config, clock Clock, text string, level Level) Record {
	return Record{
		config:  config,
		message: text,
		level:   level,
		time:    clock.Timestamp(),
	}
}

// Level returns the record's level.
func (r Record) Level() Level {
	return r.level
}

// String renders the prefix followed by the message.
func (r Record) String() string {
	var prefix string
	if ResolveColor(r.config) {
		prefix = BuildPrefix(r.time, colorizedLevel(r.level).Text, true)
	} else {
		prefix = BuildPrefix(r.time, r.level.String(), false)
	}
	return prefix + r.message
}

// Format applies a width from the verb, so a record can be nested in a
// wider padded field such as %-80v. %q quotes the rendered line.
func (r Record) Format(f fmt.State, verb rune) {
	writeVerb(f, verb, "logger.Record", r.String())
}

// colorizedLevel maps each level to its fixed color.
func colorizedLevel(level Level) color.ColorizedText {
	text := level.String()
	switch level {
	case ErrorLevel:
		return color.RedText(text)
	case WarnLevel:
		return color.YellowText(text)
	case InfoLevel:
		return color.GreenText(text)
	case VerbLevel:
		return color.MagentaText(text)
	case DebugLevel:
		return color.BlueText(text)
	default:
		return color.CyanText(text)
	}
}
