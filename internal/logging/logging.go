package logging

import (
	"io"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/zerologr"
	"github.com/nathanieltooley/porygon/battle"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Options struct {
	Debug  bool
	LogDir string
	// Console also writes human readable output to stderr.
	Console bool
}

// New builds the application logger and makes it the global zerolog logger.
func New(opts Options) (zerolog.Logger, error) {
	level := zerolog.InfoLevel
	if opts.Debug {
		level = zerolog.DebugLevel
	}

	writers := make([]io.Writer, 0, 2)
	if opts.LogDir != "" {
		rollingWriter, err := NewRollingFileWriter(opts.LogDir, "porygon")
		if err != nil {
			return zerolog.Nop(), err
		}
		writers = append(writers, rollingWriter)
	}
	if opts.Console {
		writers = append(writers, zerolog.ConsoleWriter{Out: os.Stderr})
	}
	if len(writers) == 0 {
		return zerolog.Nop(), nil
	}

	logger := zerolog.New(zerolog.MultiLevelWriter(writers...)).With().Timestamp().Logger().Level(level)
	log.Logger = logger
	return logger, nil
}

// Bridge routes engine logging into logger. Engine V(1) lines log at debug and V(2) at trace,
// so the arithmetic traces only show when logger's level is trace.
func Bridge(logger zerolog.Logger) logr.Logger {
	zerologr.SetMaxV(2)
	bridged := zerologr.New(&logger)
	battle.SetInternalLogger(bridged)
	return bridged
}

func SetLevel(level zerolog.Level) {
	log.Logger = log.Logger.Level(level)
}
