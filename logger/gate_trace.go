//go:build !nolog_trace

package logger

// Build with -tags nolog_trace to compile trace logging out.
const traceCompiled = true
