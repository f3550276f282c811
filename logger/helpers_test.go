package logger

import (
	"bytes"
	"testing"
	"time"
)

// Thursday, so the human layout is easy to read in failures.
var testTime = time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC)

// testStamp follows whichever timestamp layout the build selected.
var testStamp = FixedClock(testTime).Timestamp()

// levelCompiled reports whether the build kept logging for level.
func levelCompiled(level Level) bool {
	switch level {
	case ErrorLevel:
		return errorCompiled
	case WarnLevel:
		return warnCompiled
	case InfoLevel:
		return infoCompiled
	case VerbLevel:
		return verbCompiled
	case DebugLevel:
		return debugCompiled
	default:
		return traceCompiled
	}
}

func requireLevels(t *testing.T, levels ...Level) {
	t.Helper()
	for _, level := range levels {
		if !levelCompiled(level) {
			t.Skipf("%v logging is compiled out", level)
		}
	}
}

func requireColor(t *testing.T) {
	t.Helper()
	if !colorCompiled {
		t.Skip("color rendering is compiled out")
	}
}

func useFixedClock(t *testing.T) {
	t.Helper()
	old := processClock
	processClock = FixedClock(testTime)
	t.Cleanup(func() { processClock = old })
}

func stubTerminals(t *testing.T, stdout, stderr bool) {
	t.Helper()
	oldOut, oldErr := stdoutIsTerminal, stderrIsTerminal
	stdoutIsTerminal = func() bool { return stdout }
	stderrIsTerminal = func() bool { return stderr }
	t.Cleanup(func() { stdoutIsTerminal, stderrIsTerminal = oldOut, oldErr })
}

func captureStreams(t *testing.T) (stdout, stderr *bytes.Buffer) {
	t.Helper()
	stdout, stderr = &bytes.Buffer{}, &bytes.Buffer{}
	oldStdout, oldStderr := outStdout, outStderr
	outStdout, outStderr = stdout, stderr
	t.Cleanup(func() { outStdout, outStderr = oldStdout, oldStderr })
	return stdout, stderr
}
