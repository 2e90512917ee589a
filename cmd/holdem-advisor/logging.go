package main

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// setupLogger configures zerolog for the CLI: pretty console output by
// default, structured JSON when requested.
func setupLogger(debug, json bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}

	var out io.Writer = zerolog.ConsoleWriter{Out: os.Stderr}
	if json {
		zerolog.TimeFieldFormat = time.RFC3339Nano
		out = os.Stderr
	}

	return zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Logger()
}
