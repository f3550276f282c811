//go:build !nocolor

package logger

// Build with -tags nocolor to drop ANSI rendering.
const colorCompiled = true
