package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// global state
var (
	// Mutex so concurrent writers never interleave within a line
	logMutex sync.Mutex

	// processClock captures the local zone once at startup.
	processClock = LocalClock()
)

// Dependency injection points for testing outputs.
var (
	outStdout io.Writer = os.Stdout
	outStderr io.Writer = os.Stderr
)

// SetClock replaces the clock used for timestamps. Call it during startup,
// before logging from multiple goroutines.
func SetClock(clock Clock) {
	processClock = clock
}

// streamFor picks stdout for Info and stderr for every other level.
func streamFor(level Level) io.Writer {
	if level == InfoLevel {
		return outStdout
	}
	return outStderr
}

// Log writes one record at level without consulting any gate.
// The returned error comes from the underlying stream.
func Log(config Config, level Level, text string) error {
	config = withTerminalColors(config)
	line := NewRecord(config, processClock, text, level).String()
	return writeLine(streamFor(level), line)
}

func writeLine(w io.Writer, line string) error {
	logMutex.Lock()
	defer logMutex.Unlock()

	_, err := io.WriteString(w, line+"\n")
	return err
}

// --- Unconditional writers ---

// Error writes an error record to stderr.
func Error(config Config, text string) error { return Log(config, ErrorLevel, text) }

// Warn writes a warning record to stderr.
func Warn(config Config, text string) error { return Log(config, WarnLevel, text) }

// Info writes an info record to stdout.
func Info(config Config, text string) error { return Log(config, InfoLevel, text) }

// Verb writes a verbose record to stderr.
func Verb(config Config, text string) error { return Log(config, VerbLevel, text) }

// Debug writes a debug record to stderr.
func Debug(config Config, text string) error { return Log(config, DebugLevel, text) }

// Trace writes a trace record to stderr.
func Trace(config Config, text string) error { return Log(config, TraceLevel, text) }

// --- Gated logging (fmt.Sprintf style) ---
//
// Each function is compiled out by its nolog_* build tag and otherwise only
// formats and writes when the level passes config.LogLevel.

// Errorf logs an error message formatted with fmt.Sprintf.
func Errorf(config Config, format string, v ...any) {
	if errorCompiled && ErrorLevel.Enabled(config.LogLevel) {
		_ = Error(config, fmt.Sprintf(format, v...))
	}
}

// Warnf logs a warning message formatted with fmt.Sprintf.
func Warnf(config Config, format string, v ...any) {
	if warnCompiled && WarnLevel.Enabled(config.LogLevel) {
		_ = Warn(config, fmt.Sprintf(format, v...))
	}
}

// Infof logs an informational message formatted with fmt.Sprintf.
func Infof(config Config, format string, v ...any) {
	if infoCompiled && InfoLevel.Enabled(config.LogLevel) {
		_ = Info(config, fmt.Sprintf(format, v...))
	}
}

// Verbf logs a verbose message formatted with fmt.Sprintf.
func Verbf(config Config, format string, v ...any) {
	if verbCompiled && VerbLevel.Enabled(config.LogLevel) {
		_ = Verb(config, fmt.Sprintf(format, v...))
	}
}

// Debugf logs a debug message formatted with fmt.Sprintf.
func Debugf(config Config, format string, v ...any) {
	if debugCompiled && DebugLevel.Enabled(config.LogLevel) {
		_ = Debug(config, fmt.Sprintf(format, v...))
	}
}

// Tracef logs a trace message formatted with fmt.Sprintf.
func Tracef(config Config, format string, v ...any) {
	if traceCompiled && TraceLevel.Enabled(config.LogLevel) {
		_ = Trace(config, fmt.Sprintf(format, v...))
	}
}

// --- Gated logging (Println style) ---

// Errorln logs an error message by joining arguments with fmt.Sprint.
func Errorln(config Config, v ...any) {
	if errorCompiled && ErrorLevel.Enabled(config.LogLevel) {
		_ = Error(config, fmt.Sprint(v...))
	}
}

// Warnln logs a warning message by joining arguments with fmt.Sprint.
func Warnln(config Config, v ...any) {
	if warnCompiled && WarnLevel.Enabled(config.LogLevel) {
		_ = Warn(config, fmt.Sprint(v...))
	}
}

// Infoln logs an informational message by joining arguments with fmt.Sprint.
func Infoln(config Config, v ...any) {
	if infoCompiled && InfoLevel.Enabled(config.LogLevel) {
		_ = Info(config, fmt.Sprint(v...))
	}
}

// Verbln logs a verbose message by joining arguments with fmt.Sprint.
func Verbln(config Config, v ...any) {
	if verbCompiled && VerbLevel.Enabled(config.LogLevel) {
		_ = Verb(config, fmt.Sprint(v...))
	}
}

// Debugln logs a debug message by joining arguments with fmt.Sprint.
func Debugln(config Config, v ...any) {
	if debugCompiled && DebugLevel.Enabled(config.LogLevel) {
		_ = Debug(config, fmt.Sprint(v...))
	}
}

// Traceln logs a trace message by joining arguments with fmt.Sprint.
func Traceln(config Config, v ...any) {
	if traceCompiled && TraceLevel.Enabled(config.LogLevel) {
		_ = Trace(config, fmt.Sprint(v...))
	}
}

// --- Trace-only helpers ---

// TraceHex logs a trace record with label as the message, followed by the
// hex dump of data. offset continues the index of a previous dump.
func TraceHex(config Config, label string, data []byte, offset int) {
	if !traceCompiled || !TraceLevel.Enabled(config.LogLevel) {
		return
	}
	config = withTerminalColors(config)
	record := NewRecord(config, processClock, label+" "+HighlightHex(data, offset, config), TraceLevel)
	_ = writeLine(outStderr, record.String())
}

// Initf writes a plain "Init" line to stderr, without a threshold check.
// It exists only in builds that include trace logging.
func Initf(format string, v ...any) {
	if !traceCompiled {
		return
	}
	prefix := BuildPrefix(processClock.Timestamp(), "Init", false)
	_ = writeLine(outStderr, prefix+fmt.Sprintf(format, v...))
}
