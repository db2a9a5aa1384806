package runner

import (
	"log/slog"
)

// Option defines a functional option for configuring the Runner.
type Option func(*Runner)

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		if logger != nil {
			r.Logger = logger
		}
	}
}

// WithInputHandler configures a custom IOHandler.
func WithInputHandler(handler IOHandler) Option {
	return func(r *Runner) {
		r.Handler = handler
	}
}

// WithMetrics records session counters in m.
func WithMetrics(m *Metrics) Option {
	return func(r *Runner) {
		r.Metrics = m
	}
}

// WithSessionID sets the identifier carried by frames and logs.
// Without it each Runner gets a random UUID.
func WithSessionID(id string) Option {
	return func(r *Runner) {
		r.SessionID = id
	}
}
