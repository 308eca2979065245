package logging

import (
	"io"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Options controls the process logger.
type Options struct {
	JSON  bool // raw JSON lines instead of console output
	Quiet bool // drop progress lines, keep warnings and errors
}

// Setup configures zerolog to write to w and installs it as the global logger.
func Setup(w io.Writer, opts Options) zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	level := zerolog.InfoLevel
	if opts.Quiet {
		level = zerolog.WarnLevel
	}

	out := w
	if !opts.JSON {
		out = zerolog.ConsoleWriter{Out: w, NoColor: true}
	}

	logger := zerolog.New(out).With().Timestamp().Logger().Level(level)
	log.Logger = logger
	return logger
}
