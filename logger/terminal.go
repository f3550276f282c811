package logger

import (
	"os"

	"golang.org/x/term"
)

// Terminal checks. Replaced in tests.
var (
	stdoutIsTerminal = func() bool { return term.IsTerminal(int(os.Stdout.Fd())) }
	stderrIsTerminal = func() bool { return term.IsTerminal(int(os.Stderr.Fd())) }
)

// ResolveColor reports whether ANSI color may be used for an emission.
// A forced config always gets color. Otherwise color needs ColoredOutput
// and both stdout and stderr attached to a terminal, since a record may
// end up on either stream.
func ResolveColor(config Config) bool {
	if !colorCompiled {
		return false
	}
	if config.ColoredOutputForced {
		return true
	}
	return config.ColoredOutput && stdoutIsTerminal() && stderrIsTerminal()
}

// withTerminalColors returns a copy of config with ColoredOutput cleared
// when no terminal is attached.
func withTerminalColors(config Config) Config {
	if !ResolveColor(config) {
		config.ColoredOutput = false
	}
	return config
}
