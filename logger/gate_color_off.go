//go:build nocolor

package logger

const colorCompiled = false
