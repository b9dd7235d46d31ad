package pixelgen

import (
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// Logger is the package-wide logger. Level comes from LOG_LEVEL, falling
// back to info (or debug when the Debug flag is set).
var Logger = log.New(os.Stderr)

func init() {
	Logger.SetReportTimestamp(true)
	switch strings.ToLower(strings.TrimSpace(os.Getenv("LOG_LEVEL"))) {
	case "debug":
		Logger.SetLevel(log.DebugLevel)
	case "warn", "warning":
		Logger.SetLevel(log.WarnLevel)
	case "error":
		Logger.SetLevel(log.ErrorLevel)
	default:
		Logger.SetLevel(log.InfoLevel)
	}
}

// DebugLog logs at debug level when the Debug flag is set.
func DebugLog(format string, args ...interface{}) {
	if !Debug {
		return
	}
	Logger.Debugf(format, args...)
}
