package logger

import (
	"fmt"
	"strconv"
	"strings"
	"testing"
)

func TestAlign(t *testing.T) {
	tests := []struct {
		name  string
		value any
		width int
		align Alignment
		want  string
	}{
		{"no width", "abc", NoWidth, AlignRight, "abc"},
		{"left", "abc", 6, AlignLeft, "abc   "},
		{"right", "abc", 6, AlignRight, "   abc"},
		{"center odd", "abc", 6, AlignCenter, " abc  "},
		{"center even", "ab", 6, AlignCenter, "  ab  "},
		{"never truncates", "abcdef", 3, AlignRight, "abcdef"},
		{"zero width", "abc", 0, AlignLeft, "abc"},
		{"stringer", WarnLevel, 6, AlignRight, "  Warn"},
		{"number", 42, 4, AlignRight, "  42"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Align(tt.value, tt.width, tt.align); got != tt.want {
				t.Errorf("Align() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAlign_RightJustifiesContent(t *testing.T) {
	for w := 0; w < 12; w++ {
		got := Align("hello", w, AlignRight)
		if len(got) < w {
			t.Fatalf("Align width %d produced %q", w, got)
		}
		if !strings.HasSuffix(got, "hello") {
			t.Fatalf("Align width %d not right-justified: %q", w, got)
		}
	}
}

func TestAlign_CountsVisibleColumns(t *testing.T) {
	colored := colorizedLevel(ErrorLevel).Text
	got := Align(colored, 8, AlignLeft)
	if want := colored + "   "; got != want {
		t.Fatalf("Align() = %q, want %q", got, want)
	}
	if w := VisibleWidth("日本"); w != 4 {
		t.Fatalf("VisibleWidth of wide runes = %d, want 4", w)
	}
}

func TestVisibleWidth(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"plain", 5},
		{"\033[33m\\r\033[0m", 2},
		{"\033[1;31mbold\033[0m tail", 9},
		{"short\nmuch longer line", 16},
		{"", 0},
	}
	for _, tt := range tests {
		if got := VisibleWidth(tt.in); got != tt.want {
			t.Errorf("VisibleWidth(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestAlign_ThroughFmt(t *testing.T) {
	got := fmt.Sprintf("|%+7v|%-7v|%#7v|", ErrorLevel, InfoLevel, DebugLevel)
	want := "|  Error|Info   | Debug |"
	if got != want {
		t.Fatalf("Sprintf = %q, want %q", got, want)
	}
}

func TestFormat_Verbs(t *testing.T) {
	r := NewRecord(Config{}, FixedClock(testTime), "x", WarnLevel)
	tests := []struct {
		format string
		arg    any
		want   string
	}{
		{"%s", InfoLevel, "Info"},
		{"%q", InfoLevel, `"Info"`},
		{"%+8q", InfoLevel, `  "Info"`},
		{"%x", InfoLevel, "%!x(logger.Level=Info)"},
		{"%q", r, strconv.Quote(r.String())},
		{"%x", r, "%!x(logger.Record=" + r.String() + ")"},
	}
	for _, tt := range tests {
		if got := fmt.Sprintf(tt.format, tt.arg); got != tt.want {
			t.Errorf("Sprintf(%q) = %q, want %q", tt.format, got, tt.want)
		}
	}
}
