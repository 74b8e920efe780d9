package config

import (
	"io"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// TimestampFormat is used by both log formats.
const TimestampFormat = "2006-01-02 15:04:05"

// InitLogger configures the standard logrus logger.
func InitLogger(cfg LogConfig, out io.Writer) error {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return errors.Wrapf(err, "invalid log level %q", cfg.Level)
	}

	switch cfg.Format {
	case "json":
		logrus.SetFormatter(&logrus.JSONFormatter{TimestampFormat: TimestampFormat})
	case "text", "":
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, TimestampFormat: TimestampFormat})
	default:
		return errors.Errorf("invalid log format %q", cfg.Format)
	}

	logrus.SetLevel(level)
	if out != nil {
		logrus.SetOutput(out)
	}
	logrus.WithFields(logrus.Fields{
		"level":  level.String(),
		"format": cfg.Format,
	}).Debug("logger initialized")
	return nil
}
