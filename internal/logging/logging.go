// Package logging configures the process-wide zerolog logger.
package logging

import (
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	DefaultLogFileName = "roster.log"
	DefaultMaxSizeMB   = 10
	DefaultMaxBackups  = 3
	DefaultMaxAgeDays  = 30
	DefaultCompress    = true

	timeFormat = "2006-01-02 15:04:05"
)

// Apply sets the global log level and output writers and returns the
// resulting logger. Records always go to the rotating file at logFilePath;
// they are echoed to stderr only at debug or trace level so regular command
// output stays clean.
func Apply(level string, logFilePath string) zerolog.Logger {
	verbose := applyLevel(level)

	var writers []io.Writer
	if verbose {
		writers = append(writers, zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: timeFormat})
	}

	if logFilePath == "" {
		logFilePath = DefaultLogFileName
	}

	if err := ensureLogDir(logFilePath); err == nil {
		fileWriter := &lumberjack.Logger{
			Filename:   logFilePath,
			MaxSize:    DefaultMaxSizeMB,
			MaxBackups: DefaultMaxBackups,
			MaxAge:     DefaultMaxAgeDays,
			Compress:   DefaultCompress,
		}
		writers = append(writers, zerolog.ConsoleWriter{
			Out:        fileWriter,
			TimeFormat: timeFormat,
			NoColor:    true,
		})
	}

	if len(writers) == 0 {
		log.Logger = zerolog.Nop()
		return log.Logger
	}

	log.Logger = zerolog.New(zerolog.MultiLevelWriter(writers...)).With().Timestamp().Logger()
	return log.Logger
}

func applyLevel(level string) bool {
	switch level {
	case "trace":
		zerolog.SetGlobalLevel(zerolog.TraceLevel)
		return true
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		return true
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		return false
	}
}

// FilePathFor returns a log file path that lives alongside the given file,
// typically the store properties file.
func FilePathFor(path string) string {
	if path == "" {
		return DefaultLogFileName
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Join(filepath.Dir(path), DefaultLogFileName)
	}
	return filepath.Join(filepath.Dir(abs), DefaultLogFileName)
}

func ensureLogDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "" || dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
