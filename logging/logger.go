// Package logging provides structured logging for the viewer host.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Logger is the logging surface handed to the rest of the project.
type Logger = logrus.FieldLogger

const (
	// CategoryGeneral tags application messages.
	CategoryGeneral = "general"
	// CategoryHTTP tags request/response records.
	CategoryHTTP = "http"
)

// Options configures New.
type Options struct {
	Level  string
	Format string
	Output io.Writer
	Site   string
}

// New builds a logrus logger. JSON is the default format; "text" switches to
// the human readable formatter.
func New(opts Options) (*logrus.Logger, error) {
	level := logrus.InfoLevel
	if raw := strings.TrimSpace(opts.Level); raw != "" {
		parsed, err := logrus.ParseLevel(raw)
		if err != nil {
			return nil, fmt.Errorf("parse log level: %w", err)
		}
		level = parsed
	}

	logger := logrus.New()
	logger.SetLevel(level)
	if opts.Output != nil {
		logger.SetOutput(opts.Output)
	} else {
		logger.SetOutput(os.Stdout)
	}

	switch strings.ToLower(strings.TrimSpace(opts.Format)) {
	case "", "json":
		logger.SetFormatter(&logrus.JSONFormatter{TimestampFormat: "2006-01-02T15:04:05.000Z07:00"})
	case "text":
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		return nil, fmt.Errorf("unknown log format %q", opts.Format)
	}

	if site := strings.TrimSpace(opts.Site); site != "" {
		logger.AddHook(siteHook(site))
	}
	return logger, nil
}

// Category returns a child logger tagged with category.
func Category(logger Logger, category string) Logger {
	if logger == nil {
		return Discard()
	}
	return logger.WithField("category", category)
}

// Discard returns a logger that drops everything.
func Discard() Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

type siteHook string

func (siteHook) Levels() []logrus.Level { return logrus.AllLevels }

func (h siteHook) Fire(entry *logrus.Entry) error {
	if _, ok := entry.Data["site"]; !ok {
		entry.Data["site"] = string(h)
	}
	return nil
}
