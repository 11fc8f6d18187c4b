package cliconfig

import (
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/bft-labs/fraglen/pkg/log"
)

// Logger returns the command's console logger writing to stderr at level.
// An unknown level falls back to info and is reported once.
func Logger(level string) zerolog.Logger {
	return newLogger(os.Stderr, level)
}

func newLogger(w io.Writer, level string) zerolog.Logger {
	lvl, err := log.ParseLevel(level)
	l := log.NewZerologAdapter(w, lvl).Logger()
	if err != nil {
		l = log.NewZerologAdapter(w, zerolog.InfoLevel).Logger()
		l.Warn().Err(err).Msg("unknown log level, using info")
	}
	return l
}
