package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

// New returns a component-scoped structured logger. Level defaults to info
// and can be raised with TOKENHUB_LOG_LEVEL=debug to observe discarded
// mirror failures.
func New(component string) *logrus.Entry {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if lvl, err := logrus.ParseLevel(os.Getenv("TOKENHUB_LOG_LEVEL")); err == nil {
		l.SetLevel(lvl)
	}
	return l.WithField("component", component)
}
