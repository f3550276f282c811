//go:build !nolog_info

package logger

// Build with -tags nolog_info to compile info logging out.
const infoCompiled = true
