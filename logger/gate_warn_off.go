//go:build nolog_warn

package logger

const warnCompiled = false
