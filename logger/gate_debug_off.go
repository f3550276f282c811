//go:build nolog_debug

package logger

const debugCompiled = false
