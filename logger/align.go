package logger

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Alignment selects where padding goes when a field width is requested.
type Alignment int

const (
	// AlignLeft pads on the right. It is the default.
	AlignLeft Alignment = iota
	// AlignRight pads on the left.
	AlignRight
	// AlignCenter splits the padding, with any odd column on the right.
	AlignCenter
)

// NoWidth requests the natural rendering of a value.
const NoWidth = -1

// Align renders value and pads it with spaces to width visible columns.
// Values already as wide as width are returned unchanged; nothing is truncated.
func Align(value any, width int, align Alignment) string {
	s := fmt.Sprint(value)
	if width < 0 {
		return s
	}
	pad := width - VisibleWidth(s)
	if pad <= 0 {
		return s
	}
	switch align {
	case AlignRight:
		return strings.Repeat(" ", pad) + s
	case AlignCenter:
		left := pad / 2
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
	default:
		return s + strings.Repeat(" ", pad)
	}
}

// VisibleWidth returns the number of terminal columns s occupies, ignoring
// ANSI escape sequences. Multi-line values report their widest line.
func VisibleWidth(s string) int {
	return lipgloss.Width(s)
}

// alignmentFromState maps fmt flags onto an Alignment: '-' left, '+' right,
// '#' center, none left.
func alignmentFromState(f fmt.State) Alignment {
	switch {
	case f.Flag('-'):
		return AlignLeft
	case f.Flag('+'):
		return AlignRight
	case f.Flag('#'):
		return AlignCenter
	default:
		return AlignLeft
	}
}

// writeAligned writes s honoring any width carried by the formatting verb.
func writeAligned(f fmt.State, s string) {
	width, ok := f.Width()
	if !ok {
		_, _ = io.WriteString(f, s)
		return
	}
	_, _ = io.WriteString(f, Align(s, width, alignmentFromState(f)))
}

// writeVerb renders s for the text verbs %v, %s and %q, honoring width and
// alignment. Other verbs produce fmt's usual bad-verb marker.
func writeVerb(f fmt.State, verb rune, typeName, s string) {
	switch verb {
	case 'v', 's':
		writeAligned(f, s)
	case 'q':
		writeAligned(f, strconv.Quote(s))
	default:
		fmt.Fprintf(f, "%%!%c(%s=%s)", verb, typeName, s)
	}
}
