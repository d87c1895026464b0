// SPDX-License-Identifier: MIT

package matching

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// Sentinel errors for graph validation.
var (
	// ErrBadVertex indicates an edge to a right vertex outside [0, Right).
	ErrBadVertex = errors.New("matching: right vertex out of range")
	// ErrSizeMismatch indicates len(Adj) != Left.
	ErrSizeMismatch = errors.New("matching: adjacency size does not match left side")
)

// Free marks an unmatched vertex in Matching.PairLeft / PairRight.
const Free = -1

// Graph is a bipartite graph. Adj[u] lists the right neighbours of left
// vertex u; duplicates are tolerated.
type Graph struct {
	Left, Right int
	Adj         [][]int
}

// Validate checks that Adj has one list per left vertex and that every entry
// names an existing right vertex.
func (g Graph) Validate() error {
	if len(g.Adj) != g.Left {
		return fmt.Errorf("Validate: %d lists for %d left vertices: %w", len(g.Adj), g.Left, ErrSizeMismatch)
	}
	for u, nbrs := range g.Adj {
		for _, v := range nbrs {
			if v < 0 || v >= g.Right {
				return fmt.Errorf("Validate: edge %d→%d: %w", u, v, ErrBadVertex)
			}
		}
	}
	return nil
}

// Matching is a set of vertex-disjoint edges.
type Matching struct {
	Size      int
	PairLeft  []int // PairLeft[u] = matched right vertex or Free
	PairRight []int // PairRight[v] = matched left vertex or Free
}

// Options configures the solvers.
type Options struct {
	Ctx     context.Context
	Verbose bool
	Logger  *slog.Logger
}

// DefaultOptions returns Options with a background context and a discarding logger.
func DefaultOptions() Options {
	return Options{
		Ctx:    context.Background(),
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func (o *Options) normalize() {
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
}
