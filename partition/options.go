// SPDX-License-Identifier: MIT

package partition

import (
	"io"
	"log/slog"
)

// Option customises a partition call by mutating its config.
type Option func(*config)

type config struct {
	strategy      Strategy
	maxIterations int // 0: number of polygon vertices
	logger        *slog.Logger
	verbose       bool
}

func newConfig(opts ...Option) config {
	c := config{
		strategy: Greedy,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, o := range opts {
		o(&c)
	}
	return c
}

// WithStrategy selects the algorithm. Panics on an unknown strategy.
func WithStrategy(s Strategy) Option {
	if s != Greedy && s != Minimum {
		panic("partition: WithStrategy(unknown)")
	}
	return func(c *config) { c.strategy = s }
}

// WithMaxIterations bounds the greedy driver. Zero restores the default,
// the vertex count of the polygon. Panics on a negative limit.
func WithMaxIterations(n int) Option {
	if n < 0 {
		panic("partition: WithMaxIterations(n<0)")
	}
	return func(c *config) { c.maxIterations = n }
}

// WithLogger routes progress records to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("partition: WithLogger(nil)")
	}
	return func(c *config) { c.logger = l }
}

// WithVerbose logs every committed cut at debug level.
func WithVerbose(v bool) Option {
	return func(c *config) { c.verbose = v }
}
