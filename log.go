package folio

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// NewLogger returns a timestamped zerolog logger writing to w at the given
// level. Unknown or empty levels fall back to info; a nil writer means stderr.
func NewLogger(w io.Writer, level string) zerolog.Logger {
	if w == nil {
		w = os.Stderr
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}
