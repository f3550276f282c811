//go:build !nolog_debug

package logger

// Build with -tags nolog_debug to compile debug logging out.
const debugCompiled = true
