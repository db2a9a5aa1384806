package logging

import (
	"io"
	"log/slog"
	"os"
)

// Config selects the logger output.
type Config struct {
	Level slog.Level
	// JSON switches to a JSON handler, used when stdout carries NDJSON frames.
	JSON bool
	// Writer defaults to Stderr.
	Writer io.Writer
}

// New creates a configured application logger.
// It writes to Stderr (to separate logs from the session on Stdout).
// It standardizes common keys (e.g., "error" -> "err").
func New(cfg Config) *slog.Logger {
	w := cfg.Writer
	if w == nil {
		w = os.Stderr
	}
	opts := &slog.HandlerOptions{
		Level:       cfg.Level,
		ReplaceAttr: replaceAttr,
	}
	if cfg.JSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// LevelFor maps the --debug flag to a level.
func LevelFor(debug bool) slog.Level {
	if debug {
		return slog.LevelDebug
	}
	return slog.LevelWarn
}

// NewNop returns a no-op logger.
func NewNop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func replaceAttr(groups []string, a slog.Attr) slog.Attr {
	if a.Key == "error" {
		a.Key = "err"
	}
	return a
}
