//go:build nolog_trace

package logger

const traceCompiled = false
