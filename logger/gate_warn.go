//go:build !nolog_warn

package logger

// Build with -tags nolog_warn to compile warn logging out.
const warnCompiled = true
