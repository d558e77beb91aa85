package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Init configures the global zerolog logger. Production mode emits JSON,
// anything else gets a human-readable console writer.
func Init(production bool) {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	if !production {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
}
