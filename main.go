package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mordilloSan/go-termlog/internal/settings"
	"github.com/mordilloSan/go-termlog/logger"
)

const dumpChunkSize = 64

// Example demonstrating go-termlog: one line per level, plus an optional
// trace-level hex dump of a file.
func main() {
	configPath := flag.String("config", "", "Path to a TOML configuration file")
	level := flag.String("level", "", "Override log_level (error, warn, info, verb, debug, trace)")
	colored := flag.Bool("color", false, "Enable colored output when attached to a terminal")
	forced := flag.Bool("force-color", false, "Enable colored output unconditionally")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] [file]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	logger.Initf("go-termlog starting")

	s, err := settings.Load(*configPath)
	if err != nil {
		logger.Errorf(logger.DefaultConfig(), "%v", err)
		os.Exit(1)
	}
	if *level != "" {
		l, err := logger.ParseLevel(*level)
		if err != nil {
			logger.Errorf(logger.DefaultConfig(), "invalid -level: %v", err)
			os.Exit(1)
		}
		s.LogLevel = l
	}
	s.ColoredOutput = s.ColoredOutput || *colored
	s.ColoredOutputForced = s.ColoredOutputForced || *forced
	cfg := s.Config()

	logger.Errorf(cfg, "this is an error")
	logger.Warnf(cfg, "this is a warning")
	logger.Infof(cfg, "log level is %v", cfg.LogLevel)
	logger.Verbf(cfg, "colors resolved to %t", logger.ResolveColor(cfg))
	logger.Debugf(cfg, "debug output enabled")
	logger.Tracef(cfg, "trace output enabled")

	if flag.NArg() > 0 {
		if err := dumpFile(cfg, flag.Arg(0)); err != nil {
			logger.Errorf(cfg, "failed to dump %s: %v", flag.Arg(0), err)
			os.Exit(1)
		}
	}
}

// dumpFile traces the file's bytes in chunks, carrying the index across them.
func dumpFile(cfg logger.Config, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	buf := make([]byte, dumpChunkSize)
	offset := 0
	for {
		n, err := f.Read(buf)
		if n > 0 {
			logger.TraceHex(cfg, path, buf[:n], offset)
			offset += n
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}
