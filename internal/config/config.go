package config

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Verbose enables debug output when true
var Verbose bool

// Log is the debug logger. SetupLogging replaces it; until then it writes
// to stderr.
var Log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

// SetupLogging configures the debug logger. When logFile is non-empty,
// debug lines are also appended to a size-rotated JSON log.
func SetupLogging(verbose bool, logFile string) {
	Verbose = verbose

	var w io.Writer = zerolog.ConsoleWriter{Out: os.Stderr}
	if logFile != "" {
		w = zerolog.MultiLevelWriter(w, &lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    5, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
		})
	}

	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	Log = zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// Debugf prints debug messages when Verbose is true
func Debugf(format string, args ...any) {
	if Verbose {
		Log.Debug().Msgf(format, args...)
	}
}
