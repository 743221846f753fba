package config

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
)

// SetupLogging points every logger at out and, when a log file is
// configured, at a size-rotated JSON log file. The interactive game passes
// io.Discard as out since the terminal is taken by the board.
func SetupLogging(cfg *Config, out io.Writer, loggers ...*logrus.Logger) error {
	level := logrus.InfoLevel
	if Development() {
		level = logrus.DebugLevel
	}
	if cfg.LogLevel != "" {
		var err error
		if level, err = logrus.ParseLevel(cfg.LogLevel); err != nil {
			return err
		}
	}

	var hook logrus.Hook
	if cfg.LogFile != "" {
		var err error
		hook, err = rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
			Filename:   cfg.LogFile,
			MaxSize:    5, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Level:      level,
			Formatter:  &logrus.JSONFormatter{},
		})
		if err != nil {
			return fmt.Errorf("unable to set up log file %s: %w", cfg.LogFile, err)
		}
	}

	for _, l := range loggers {
		l.SetOutput(out)
		l.SetLevel(level)
		l.SetFormatter(&logrus.TextFormatter{DisableColors: true})
		if hook != nil {
			l.AddHook(hook)
		}
	}
	return nil
}
