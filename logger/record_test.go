package logger

import (
	"fmt"
	"strings"
	"testing"
)

func TestRecord_PlainRendering(t *testing.T) {
	stubTerminals(t, true, true)

	tests := []struct {
		level Level
		want  string
	}{
		{ErrorLevel, "[" + testStamp + " Error]: hello"},
		{WarnLevel, "[" + testStamp + " Warn ]: hello"},
		{InfoLevel, "[" + testStamp + " Info ]: hello"},
		{TraceLevel, "[" + testStamp + " Trace]: hello"},
	}
	for _, tt := range tests {
		r := NewRecord(Config{LogLevel: TraceLevel}, FixedClock(testTime), "hello", tt.level)
		if got := r.String(); got != tt.want {
			t.Errorf("%v: String() = %q, want %q", tt.level, got, tt.want)
		}
	}
}

func TestRecord_ColorRendering(t *testing.T) {
	requireColor(t)
	stubTerminals(t, false, false)

	cfg := Config{ColoredOutputForced: true}
	tests := map[Level]string{
		ErrorLevel: "\033[31m",
		WarnLevel:  "\033[33m",
		InfoLevel:  "\033[32m",
		VerbLevel:  "\033[35m",
		DebugLevel: "\033[34m",
		TraceLevel: "\033[36m",
	}
	for level, code := range tests {
		got := NewRecord(cfg, FixedClock(testTime), "msg", level).String()
		want := "[" + testStamp + " " + padRight(code+level.String()+"\033[0m", 14) + "]: msg"
		if got != want {
			t.Errorf("%v: String() = %q, want %q", level, got, want)
		}
	}
}

func TestRecord_ColorDisabledWithoutTerminal(t *testing.T) {
	stubTerminals(t, true, false)

	got := NewRecord(Config{ColoredOutput: true}, FixedClock(testTime), "msg", ErrorLevel).String()
	if strings.Contains(got, "\033[") {
		t.Fatalf("expected plain output when stderr is not a terminal, got %q", got)
	}
}

func TestRecord_NestedInWiderField(t *testing.T) {
	stubTerminals(t, false, false)

	r := NewRecord(Config{}, FixedClock(testTime), "x", WarnLevel)
	plain := r.String()

	if got := fmt.Sprint(r); got != plain {
		t.Fatalf("Sprint without width changed output: %q", got)
	}
	got := fmt.Sprintf("%+50v|", r)
	if want := strings.Repeat(" ", 50-len(plain)) + plain + "|"; got != want {
		t.Fatalf("Sprintf right = %q, want %q", got, want)
	}
	got = fmt.Sprintf("%-50v|", r)
	if want := plain + strings.Repeat(" ", 50-len(plain)) + "|"; got != want {
		t.Fatalf("Sprintf left = %q, want %q", got, want)
	}
}

func TestRecord_ColoredAlignmentCountsVisibleWidth(t *testing.T) {
	r := NewRecord(Config{ColoredOutputForced: true}, FixedClock(testTime), "x", ErrorLevel)
	got := fmt.Sprintf("%-50v", r)
	if VisibleWidth(got) != 50 {
		t.Fatalf("visible width = %d, want 50 (%q)", VisibleWidth(got), got)
	}
}
