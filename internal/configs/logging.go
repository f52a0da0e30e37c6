package configs

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// SetupLogging configures the standard logrus logger from LOG_LEVEL and
// LOG_FORMAT.
func (c Config) SetupLogging() error {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return fmt.Errorf("LOG_LEVEL: %w", err)
	}
	logrus.SetLevel(level)
	logrus.SetOutput(os.Stdout)

	switch strings.ToLower(c.LogFormat) {
	case "", "text":
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	case "json":
		logrus.SetFormatter(&logrus.JSONFormatter{})
	default:
		return fmt.Errorf("LOG_FORMAT: unknown format %q", c.LogFormat)
	}
	return nil
}
