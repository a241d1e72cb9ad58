// Package logging configures the logrus logger used by the lifo command.
package logging

import (
	"io"

	"github.com/sirupsen/logrus"
)

// New returns a logger writing to w. An unparsable level falls back to info.
func New(w io.Writer, level string, json bool) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)

	if json {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{DisableColors: true})
	}

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	l.SetLevel(parsed)

	return l
}
