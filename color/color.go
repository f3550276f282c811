// Package color wraps text in ANSI SGR color sequences and reports how many
// of the resulting bytes are invisible control codes.
package color

import "strconv"

// Color is a basic ANSI foreground color.
type Color int

const (
	// Red marks errors.
	Red Color = iota + 31
	// Green marks informational output.
	Green
	// Yellow marks warnings and line endings in hex dumps.
	Yellow
	// Blue marks debug output.
	Blue
	// Magenta marks verbose output.
	Magenta
	// Cyan marks trace output.
	Cyan
)

// Reset restores the terminal's default attributes.
const Reset = "\033[0m"

// ColorizedText is a rendered string plus the byte length of the color
// control sequences embedded in it. Text minus ColorCodeLength is the
// number of visible bytes.
type ColorizedText struct {
	Text            string
	ColorCodeLength int
}

// String returns the rendered text including control sequences.
func (c ColorizedText) String() string {
	return c.Text
}

// Code returns the SGR sequence that switches the terminal to c.
func (c Color) Code() string {
	return "\033[" + strconv.Itoa(int(c)) + "m"
}

// Colorize wraps text in c. Every basic color yields the same fixed-length
// wrapper, so ColorCodeLength is constant for all of them.
func Colorize(text string, c Color) ColorizedText {
	code := c.Code()
	return ColorizedText{
		Text:            code + text + Reset,
		ColorCodeLength: len(code) + len(Reset),
	}
}

// RedText wraps text in red.
func RedText(text string) ColorizedText { return Colorize(text, Red) }

// GreenText wraps text in green.
func GreenText(text string) ColorizedText { return Colorize(text, Green) }

// YellowText wraps text in yellow.
func YellowText(text string) ColorizedText { return Colorize(text, Yellow) }

// BlueText wraps text in blue.
func BlueText(text string) ColorizedText { return Colorize(text, Blue) }

// MagentaText wraps text in magenta.
func MagentaText(text string) ColorizedText { return Colorize(text, Magenta) }

// CyanText wraps text in cyan.
func CyanText(text string) ColorizedText { return Colorize(text, Cyan) }
