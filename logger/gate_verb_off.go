//go:build nolog_verb

package logger

const verbCompiled = false
