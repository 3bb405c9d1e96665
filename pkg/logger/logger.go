package logger

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
)

// DebugEnabled reports whether debug logging was requested through the
// environment.
func DebugEnabled() bool {
	return os.Getenv("SLACKCONV_DEBUG") == "true" || os.Getenv("DEBUG") == "true"
}

// New returns a logger writing to w. Only warnings and errors are shown
// unless debug logging is enabled.
func New(w io.Writer) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		DisableColors:    !isTerminal(w),
	})
	if DebugEnabled() {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.WarnLevel)
	}
	return log
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
