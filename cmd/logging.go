package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// logStderr is where the run log goes besides the log file. Replaced in tests.
var logStderr io.Writer = os.Stderr

// newLogger builds the run logger. With a non-empty path the log is also
// appended to that file; the returned func closes it.
func newLogger(path, level string) (*logrus.Logger, func() error, error) {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logger.SetLevel(lvl)

	if path == "" {
		logger.SetOutput(logStderr)
		return logger, func() error { return nil }, nil
	}

	logFile, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	logger.SetOutput(io.MultiWriter(logStderr, logFile))
	return logger, logFile.Close, nil
}
