// Package logging configures the structured logger shared by lastwalk services.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Config selects the log level and output format.
type Config struct {
	Level  string `env:"LASTWALK_LOG_LEVEL" envDefault:"info"`
	Format string `env:"LASTWALK_LOG_FORMAT" envDefault:"text"`
}

// New builds a logger writing to out (stdout when nil).
//
// Unknown levels fall back to info. Format "json" selects the JSON formatter,
// anything else the text formatter with full timestamps.
func New(cfg Config, out io.Writer) *logrus.Logger {
	if out == nil {
		out = os.Stdout
	}
	logger := logrus.New()
	logger.SetOutput(out)

	level, err := logrus.ParseLevel(strings.TrimSpace(cfg.Level))
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if strings.EqualFold(strings.TrimSpace(cfg.Format), "json") {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return logger
}

// Discard returns a logger that drops everything. Tests use it for collaborators
// that require a logger.
func Discard() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

// WithService tags every entry with the owning service name.
func WithService(logger logrus.FieldLogger, service string) *logrus.Entry {
	if logger == nil {
		logger = Discard()
	}
	return logger.WithField("service", service)
}
