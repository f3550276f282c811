// Package logger provides a leveled console logger that renders
// "[<time> <Level>]: <message>" lines, optionally colored, plus a trace
// level hex dump for byte buffers.
//
// # Levels
//
// From most to least severe: Error, Warn, Info, Verb, Debug, Trace. A
// Config's LogLevel is the least severe level still written, so the default
// WarnLevel writes Error and Warn only.
//
// # Console Output
//
// Info goes to stdout, every other level to stderr. Plain output pads the
// level to 5 columns; colored output is used when Config.ColoredOutput is set
// and both stdout and stderr are terminals, or when Config.ColoredOutputForced
// is set.
//
// # Usage
//
//	cfg := logger.Config{LogLevel: logger.DebugLevel, ColoredOutput: true}
//	logger.Infof(cfg, "server started on port %d", 8080)
//	logger.Errorf(cfg, "failed to connect: %v", err)
//	logger.TraceHex(cfg, "read", buf, 0)
//
// Records take part in fmt width verbs: %-60v pads left-aligned, %+60v right
// and %#60v centered, counting visible columns only.
//
// # Build Tags
//
// Levels can be removed from the binary entirely:
//
//	go build -tags nolog_trace,nolog_debug
//
// Available tags: nolog_error, nolog_warn, nolog_info, nolog_verb,
// nolog_debug, nolog_trace, nocolor (no ANSI rendering) and nohumantime
// (ISO-8601 UTC timestamps instead of "Mon, 02 Jan 2006 15:04:05").
package logger
