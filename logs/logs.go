// Package logs builds the structured loggers used by the norma tools.
package logs

import (
	"io"
	"log/slog"

	slogmulti "github.com/samber/slog-multi"
)

// New creates a logger writing text records at level to terminal, and, if
// record is not nil, every record as JSON to record.
func New(terminal io.Writer, level slog.Leveler, record io.Writer) *slog.Logger {
	handlers := []slog.Handler{
		slog.NewTextHandler(terminal, &slog.HandlerOptions{
			Level: level,
		}),
	}

	if record != nil {
		handlers = append(handlers, slog.NewJSONHandler(record, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}

	return slog.New(slogmulti.Fanout(handlers...))
}
