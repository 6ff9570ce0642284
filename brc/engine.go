package brc

import (
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"time"
)

// Engine runs the segment, aggregate, reduce and report pipeline.
type Engine struct {
	workers int
	logger  *slog.Logger
}

func NewEngine(options ...Option) *Engine {
	e := &Engine{
		workers: max(runtime.NumCPU(), 1),
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range options {
		e = opt(e)
	}
	return e
}

func (e *Engine) Workers() int {
	return e.workers
}

// Run loads the file at path and returns its report. Nothing is returned
// unless every record was processed.
func (e *Engine) Run(path string) ([]byte, error) {
	t := time.Now()
	in, err := Load(path)
	if err != nil {
		return nil, err
	}
	defer in.Close()
	e.logger.Debug(
		"loaded measurements",
		slog.String("path", path),
		slog.Int("bytes", len(in.Data)),
		slog.Duration("took", time.Since(t)),
	)

	out, err := e.Process(in.Data)
	if err != nil {
		return nil, fmt.Errorf("unable to process %s: %w", path, err)
	}
	return out, nil
}

// Process returns the report for an in-memory buffer of records.
func (e *Engine) Process(buf []byte) ([]byte, error) {
	summaries, err := e.Summaries(buf)
	if err != nil {
		return nil, err
	}
	return Report(summaries), nil
}

// Summaries returns the sorted per-station results for buf.
func (e *Engine) Summaries(buf []byte) ([]Summary, error) {
	t := time.Now()
	ranges := Segment(buf, e.workers)
	partials, err := Execute(buf, ranges)
	if err != nil {
		return nil, err
	}
	e.logger.Debug(
		"aggregated ranges",
		slog.Int("workers", len(ranges)),
		slog.Duration("took", time.Since(t)),
	)

	t = time.Now()
	final := Reduce(partials...)
	summaries, err := Summarize(final)
	if err != nil {
		return nil, err
	}
	e.logger.Debug(
		"merged partials",
		slog.Int("stations", len(final)),
		slog.Duration("took", time.Since(t)),
	)
	return summaries, nil
}
