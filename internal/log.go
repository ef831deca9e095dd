package internal

import (
	"os"

	"github.com/sirupsen/logrus"
)

// LogLevelEnv names the environment variable holding the log level
const LogLevelEnv = "LOX_LOG_LEVEL"

var logger = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	l.SetLevel(logrus.WarnLevel)
	if lvl, ok := os.LookupEnv(LogLevelEnv); ok {
		if parsed, err := logrus.ParseLevel(lvl); err == nil {
			l.SetLevel(parsed)
		} else {
			l.WithError(err).Warnf("ignoring %s", LogLevelEnv)
		}
	}
	return l
}

// SetLogger replaces the logger used by the pipeline
func SetLogger(l *logrus.Logger) {
	if l != nil {
		logger = l
	}
}

// Logger returns the logger used by the pipeline
func Logger() *logrus.Logger {
	return logger
}
