// Package logging configures the zerolog logger used for --debug output and
// hands it to the packages that emit debug events.
package logging

import (
	"io"
	"time"

	"github.com/ariel-frischer/prchangelog/internal/changelog"
	"github.com/ariel-frischer/prchangelog/internal/git"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Options controls logger construction.
type Options struct {
	// Debug enables debug-level output. When false the logger is disabled.
	Debug bool
	// NoColor disables ANSI colors in the console output.
	NoColor bool
}

// New builds a human-readable console logger writing to w.
func New(w io.Writer, opts Options) zerolog.Logger {
	level := zerolog.Disabled
	if opts.Debug {
		level = zerolog.DebugLevel
	}

	console := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    opts.NoColor,
		TimeFormat: time.TimeOnly,
	}
	return zerolog.New(console).Level(level).With().Timestamp().Logger()
}

// Setup builds the logger, installs it as the global zerolog logger and
// wires it into the changelog and git packages.
func Setup(w io.Writer, opts Options) zerolog.Logger {
	l := New(w, opts)

	log.Logger = l
	changelog.SetLogger(l)
	if opts.Debug {
		git.SetDebugLogger(func(format string, args ...any) {
			l.Debug().Msgf(format, args...)
		})
	} else {
		git.SetDebugLogger(nil)
	}

	return l
}
