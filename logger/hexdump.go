package logger

import (
	"strconv"
	"strings"

	"github.com/mordilloSan/go-termlog/color"
)

const hexBytesPerLine = 8

// HighlightHex renders data as an index-annotated hex dump, eight bytes per
// line. Every line is indented to sit under the message of a trace record
// and starts with the zero-padded running index offset+i. CR and LF are
// written as \r and \n, in yellow when color resolves on for config.
//
// The result opens with "[" and is deliberately left unclosed; empty data
// yields just "[".
func HighlightHex(data []byte, offset int, config Config) string {
	var out strings.Builder
	out.WriteByte('[')
	if len(data) == 0 {
		return out.String()
	}

	useColor := ResolveColor(config)
	indent := strings.Repeat(" ", tracePrefixWidth(useColor, processClock))
	digits := len(strconv.Itoa(offset + len(data)))

	for i, b := range data {
		if i != 0 {
			out.WriteByte(' ')
		}
		if i%hexBytesPerLine == 0 {
			out.WriteByte('\n')
			out.WriteString(indent)
			out.WriteString(zeroPad(offset+i, digits))
			out.WriteString(" = ")
		}
		out.WriteString(formatHexByte(b, useColor))
	}
	return out.String()
}

// tracePrefixWidth is the visible length of a trace record's prefix.
func tracePrefixWidth(useColor bool, clock Clock) int {
	if useColor {
		text := colorizedLevel(TraceLevel)
		return len(BuildPrefix(clock.Timestamp(), text.Text, true)) - text.ColorCodeLength
	}
	return len(BuildPrefix(clock.Timestamp(), TraceLevel.String(), false))
}

func formatHexByte(b byte, useColor bool) string {
	var escaped string
	switch b {
	case '\r':
		escaped = `\r`
	case '\n':
		escaped = `\n`
	default:
		const hexDigits = "0123456789abcdef"
		return string([]byte{hexDigits[b>>4], hexDigits[b&0x0f]})
	}
	if useColor {
		return color.YellowText(escaped).Text
	}
	return escaped
}

func zeroPad(n, digits int) string {
	s := strconv.Itoa(n)
	if len(s) < digits {
		s = strings.Repeat("0", digits-len(s)) + s
	}
	return s
}
