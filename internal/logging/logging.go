// Package logging builds the CLI's diagnostic logger.
package logging

import (
	"io"
	"os"
	"strconv"

	log "github.com/sirupsen/logrus"
)

// New returns a logger writing to w. Only warnings are shown unless debug is
// set or the DEBUG environment variable parses as true.
func New(w io.Writer, debug bool) *log.Logger {
	logger := log.New()
	logger.SetOutput(w)
	logger.SetFormatter(&log.TextFormatter{
		DisableTimestamp: true,
	})
	logger.SetLevel(log.WarnLevel)

	if dbg, err := strconv.ParseBool(os.Getenv("DEBUG")); err == nil && dbg {
		debug = true
	}
	if debug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}
