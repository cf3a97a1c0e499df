package shared

import (
	"io"

	"github.com/charmbracelet/log"
)

// SetupLogger configures a logger with timestamped output at info level,
// or debug level when requested.
func SetupLogger(w io.Writer, debug bool) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
	})
	if debug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}
