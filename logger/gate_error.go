//go:build !nolog_error

package logger

// Build with -tags nolog_error to compile error logging out.
const errorCompiled = true
