package cli

import (
	"io"

	"github.com/charmbracelet/log"
)

// newLogger creates the stderr logger. Unknown or empty levels mean warn.
func newLogger(w io.Writer, level string) *log.Logger {
	lvl, err := log.ParseLevel(level)
	if err != nil || level == "" {
		lvl = log.WarnLevel
	}
	return log.NewWithOptions(w, log.Options{
		Level:  lvl,
		Prefix: "gofile",
	})
}
