package brc

import "log/slog"

type Option func(*Engine) *Engine

// WithWorkers sets the number of ranges processed in parallel. Values below
// one fall back to one.
func WithWorkers(n int) Option {
	return func(e *Engine) *Engine {
		e.workers = max(n, 1)
		return e
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) *Engine {
		e.logger = logger
		return e
	}
}
