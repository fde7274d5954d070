package logging

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New liefert einen Console-Logger auf stderr. stdout bleibt frei für das
// CSV-Ergebnis. Ohne verbose werden nur Warnungen und Fehler ausgegeben.
func New(verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	consoleWriter := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}

	return zerolog.New(consoleWriter).Level(level).With().Timestamp().Logger()
}
