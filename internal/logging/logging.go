// Package logging configures the diagnostic log.
//
// This is the internal, ephemeral half of the tool's dual logging: a
// structured logrus stream for debugging, written before risky
// operations are attempted. User-facing records (such as the migration
// report) are produced independently by the components themselves and
// are never derived from this log.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/goscript-cli/goscript/internal/config"
)

// Init builds the diagnostic logger from tool settings. With no log file
// configured, output is human-readable text on stderr; with one, output
// is JSON through a rotating file writer.
func Init(s *config.Settings) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(s.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to parse log level %q: %w", s.LogLevel, err)
	}

	logger := logrus.New()
	logger.SetLevel(level)

	output, outErr := buildOutput(s)
	logger.SetOutput(output)

	if s.LogFile != "" && outErr == nil {
		logger.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339Nano})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{})
	}

	if outErr != nil {
		logger.WithFields(logrus.Fields{
			"action": "logger_fallback",
			"path":   s.LogFile,
		}).Warn(outErr.Error())
	}

	return logger, nil
}

// Discard returns a logger that drops everything, for callers that run
// before settings are available.
func Discard() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

// buildOutput creates the log writer; on failure it degrades to stderr
// and returns the error for the caller to surface.
func buildOutput(s *config.Settings) (io.Writer, error) {
	if s.LogFile == "" {
		return os.Stderr, nil
	}

	dir := filepath.Dir(s.LogFile)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return os.Stderr, fmt.Errorf("failed to create log directory: %w", err)
	}

	return &lumberjack.Logger{
		Filename:   s.LogFile,
		MaxSize:    s.LogMaxSize,
		MaxBackups: s.LogMaxBackups,
		Compress:   s.LogCompress,
		LocalTime:  true,
	}, nil
}
