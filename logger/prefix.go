package logger

import (
	"github.com/valyala/fasttemplate"
)

const (
	// plainLevelWidth fits the longest bare level name.
	plainLevelWidth = 5
	// colorLevelWidth adds the fixed 9-byte SGR wrapper to plainLevelWidth.
	colorLevelWidth = 14
)

var prefixTemplate = fasttemplate.New("[{{time}} {{level}}]: ", "{{", "}}")

// BuildPrefix renders "[<time> <level>]: ". In color mode levelText is
// expected to carry a color wrapper, so the field is padded to 14 bytes
// instead of 5 and the visible width stays the same in both modes.
func BuildPrefix(time, levelText string, colorEnabled bool) string {
	width := plainLevelWidth
	if colorEnabled {
		width = colorLevelWidth
	}
	return prefixTemplate.ExecuteString(map[string]interface{}{
		"time":  time,
		"level": padRight(levelText, width),
	})
}

// padRight pads by byte count, escape bytes included.
func padRight(s string, width int) string {
	for len(s) < width {
		s += " "
	}
	return s
}
