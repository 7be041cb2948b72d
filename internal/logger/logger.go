package logger

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Init configures the process-wide logrus logger for the non-TUI command
// paths. Screens render their own state; only the plumbing commands log.
func Init(level string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("parse log level %q: %w", level, err)
	}

	logrus.SetLevel(lvl)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "15:04:05",
	})
	return nil
}
