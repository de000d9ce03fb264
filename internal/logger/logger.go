package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/term"
)

// Setup initializes the global zerolog logger based on environment configuration.
//   - level: log level string (trace, debug, info, warn, error, fatal, panic, disabled)
//   - format: "json" for machine output, "pretty" for human-readable output
//
// Logs go to stderr; stdout belongs to the exam console.
func Setup(level, format string) zerolog.Logger {
	return New(os.Stderr, level, format, !term.IsTerminal(int(os.Stderr.Fd())))
}

// New builds a logger writing to out. noColor only applies to the pretty format.
func New(out io.Writer, level, format string, noColor bool) zerolog.Logger {
	var writer io.Writer

	if format == "pretty" {
		writer = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.RFC3339,
			NoColor:    noColor,
		}
	} else {
		writer = out
	}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.WarnLevel
	}

	zerolog.SetGlobalLevel(lvl)

	return zerolog.New(writer).
		With().
		Timestamp().
		Caller().
		Logger()
}
