// Package log is the process-wide logrus logger. Until Setup runs with
// logs.write enabled every line is dropped.
package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/tubevault/tubevault/filesystem"
	"github.com/tubevault/tubevault/key"
	"github.com/tubevault/tubevault/where"
)

var (
	logger  = quiet()
	enabled bool
)

func quiet() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.PanicLevel)
	return l
}

// Setup points the logger at today's file under the logs directory, or
// silences it when logs.write is off.
func Setup() error {
	enabled = viper.GetBool(key.LogsWrite)
	if !enabled {
		logger = quiet()
		return nil
	}

	name := time.Now().Format("2006-01-02") + ".log"
	file, err := filesystem.API().OpenFile(filepath.Join(where.Logs(), name), os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		enabled = false
		return fmt.Errorf("open log file: %w", err)
	}

	l := logrus.New()
	l.SetOutput(file)

	if viper.GetBool(key.LogsJson) {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	}

	level, err := logrus.ParseLevel(viper.GetString(key.LogsLevel))
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)

	logger = l
	return nil
}

// Enabled reports whether lines reach a file.
func Enabled() bool {
	return enabled
}

// Fields returns an entry tagged with fields, e.g. a refresh run id.
func Fields(fields map[string]any) *logrus.Entry {
	return logger.WithFields(fields)
}

func Error(args ...any)                 { logger.Error(args...) }
func Errorf(format string, args ...any) { logger.Errorf(format, args...) }
func Warn(args ...any)                  { logger.Warn(args...) }
func Warnf(format string, args ...any)  { logger.Warnf(format, args...) }
func Info(args ...any)                  { logger.Info(args...) }
func Infof(format string, args ...any)  { logger.Infof(format, args...) }
func Debug(args ...any)                 { logger.Debug(args...) }
func Debugf(format string, args ...any) { logger.Debugf(format, args...) }
func Tracef(format string, args ...any) { logger.Tracef(format, args...) }
