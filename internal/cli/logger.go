package cli

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/term"
)

// InitLogger returns a logger writing to w at the level selected by the
// verbosity flags. Terminals get the console writer; anything else, or
// NO_COLOR, gets JSON lines.
func InitLogger(verbose, quiet bool, w io.Writer) zerolog.Logger {
	return zerolog.New(selectOutput(w)).Level(selectLevel(verbose, quiet)).With().Timestamp().Logger()
}

// selectLevel determines the appropriate log level based on flags.
func selectLevel(verbose, quiet bool) zerolog.Level {
	switch {
	case verbose:
		return zerolog.DebugLevel
	case quiet:
		return zerolog.WarnLevel
	default:
		return zerolog.InfoLevel
	}
}

func selectOutput(w io.Writer) io.Writer {
	f, ok := w.(*os.File)
	if ok && term.IsTerminal(int(f.Fd())) && os.Getenv("NO_COLOR") == "" {
		return zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: time.Kitchen,
		}
	}
	return w
}
