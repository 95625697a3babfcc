package logger

import (
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	once sync.Once
	log  zerolog.Logger
)

// Init configures the process-wide logger. Debug switches to a human-readable
// console writer and lowers the level; production output is JSON.
func Init(debug bool) {
	once.Do(func() {
		zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
		level := zerolog.InfoLevel
		if debug {
			level = zerolog.DebugLevel
			log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
				Level(level).With().Timestamp().Logger()
			return
		}
		log = zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()
	})
}

// Get returns the shared logger, initializing it with defaults if Init was
// never called (tests).
func Get() zerolog.Logger {
	Init(false)
	return log
}
