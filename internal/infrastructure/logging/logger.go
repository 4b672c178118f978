package logging

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	glog "github.com/labstack/gommon/log"
)

const prefix = "agent-api"

func New(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", level, err)
	}
	return log.NewWithOptions(w, log.Options{
		Level:           lvl,
		Prefix:          prefix,
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
	}), nil
}

// EchoLevel maps a level name onto the framework logger's scale.
// fatal has no counterpart there, so framework output is switched off.
func EchoLevel(level string) glog.Lvl {
	switch level {
	case "debug":
		return glog.DEBUG
	case "info":
		return glog.INFO
	case "warn":
		return glog.WARN
	case "error":
		return glog.ERROR
	default:
		return glog.OFF
	}
}
