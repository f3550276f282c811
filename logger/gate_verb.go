//go:build !nolog_verb

package logger

// Build with -tags nolog_verb to compile verb logging out.
const verbCompiled = true
