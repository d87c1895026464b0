// SPDX-License-Identifier: MIT

package partition

import (
	"fmt"
	"sort"

	"github.com/dvirbo/shapely/geometry"
)

// Partition cuts p into rectangles and returns the cuts in the order they
// were made. Cuts that continue one another along a line are returned as one
// segment, placed where its first piece was made. It returns nil, nil when p
// already is a rectangle, and an error wrapping ErrInvalidPolygon when p is
// not a simple orthogonal polygon.
func Partition(p *geometry.Polygon, opts ...Option) ([]geometry.Segment, error) {
	res, err := Solve(p, opts...)
	if err != nil {
		return nil, err
	}
	return res.Edges, nil
}

// PartitionPolygon is Partition with the default options that reports every
// failure as nil.
func PartitionPolygon(p *geometry.Polygon) []geometry.Segment {
	edges, err := Partition(p)
	if err != nil {
		return nil
	}
	return edges
}

// Solve is Partition returning the faces as well. For a rectangle the result
// has no edges and the rectangle itself as the only face.
func Solve(p *geometry.Polygon, opts ...Option) (*Result, error) {
	cfg := newConfig(opts...)
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("Solve: %w", err)
	}
	if p.IsRectangle() {
		return &Result{Rectangles: []geometry.Rect{p.Bounds()}, Strategy: cfg.strategy}, nil
	}

	var (
		res *Result
		err error
	)
	switch cfg.strategy {
	case Minimum:
		res, err = minimum(p, cfg)
	default:
		res, err = greedy(p, cfg)
	}
	if err != nil {
		return nil, err
	}

	rects, err := Rectangles(p, res.Edges)
	if err != nil {
		return nil, fmt.Errorf("Solve: %s result: %w", cfg.strategy, err)
	}
	res.Rectangles = rects
	res.Strategy = cfg.strategy
	cfg.logger.Info("partitioned polygon",
		"strategy", cfg.strategy.String(),
		"vertices", p.Len(),
		"cuts", len(res.Edges),
		"rectangles", len(rects))

	return res, nil
}

// greedy repeatedly commits the best match of the first reflex corner that
// has a concave partner, or of the first that has any partner. Each commit
// removes at least one reflex corner, so the loop ends within the number of
// vertices.
func greedy(p *geometry.Polygon, cfg config) (*Result, error) {
	st, err := NewState(p)
	if err != nil {
		return nil, err
	}
	limit := cfg.maxIterations
	if limit == 0 {
		limit = p.Len()
	}

	iter := 0
	for !st.Done() {
		if iter >= limit {
			return nil, fmt.Errorf("greedy: %d iterations: %w", iter, ErrIterationLimit)
		}
		m, ok := st.next()
		if !ok {
			// Unreachable: the widest one-cell strip beside a reflex corner's
			// missing quadrant always resolves that corner.
			return nil, &ConcavityError{Point: st.ConcaveVertices()[0]}
		}
		cuts, err := st.Commit(m)
		if err != nil {
			return nil, err
		}
		iter++
		if cfg.verbose {
			cfg.logger.Debug("committed rectangle",
				"iteration", iter,
				"from", m.From.String(),
				"partner", m.Point.String(),
				"kind", m.Kind.String(),
				"rect", m.Rect.String(),
				"cuts", len(cuts))
		}
	}

	return &Result{Edges: joinCollinear(st.Edges()), Iterations: iter}, nil
}

// next picks the match the driver commits next.
func (s *State) next() (Match, bool) {
	var (
		first Match
		found bool
	)
	for _, n := range s.reflexNodes() {
		m, ok := s.bestOf(n.i, n.j)
		if !ok {
			continue
		}
		if m.Kind == PartnerConcave {
			return m, true
		}
		if !found {
			first, found = m, true
		}
	}
	return first, found
}

// joinCollinear merges cuts that meet end to end on one line. A merged cut
// runs from its lower-left end and takes the slot of its earliest piece.
func joinCollinear(edges []geometry.Segment) []geometry.Segment {
	if len(edges) < 2 {
		return edges
	}
	type run struct {
		seg   geometry.Segment
		first int
	}
	line := func(s geometry.Segment) (horizontal bool, at, from int) {
		c := s.Canonical()
		if c.Horizontal() {
			return true, c.A.Y, c.A.X
		}
		return false, c.A.X, c.A.Y
	}

	order := make([]int, len(edges))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		ha, la, fa := line(edges[order[a]])
		hb, lb, fb := line(edges[order[b]])
		if ha != hb {
			return ha
		}
		if la != lb {
			return la < lb
		}
		return fa < fb
	})

	runs := make([]run, 0, len(edges))
	for _, i := range order {
		c := edges[i].Canonical()
		if n := len(runs); n > 0 {
			last := &runs[n-1]
			lc := last.seg.Canonical()
			if lc.Horizontal() == c.Horizontal() && lc.Contains(c.A) {
				if lc.B.Less(c.B) {
					lc.B = c.B
				}
				last.seg = lc
				last.first = min(last.first, i)
				continue
			}
		}
		runs = append(runs, run{seg: edges[i], first: i})
	}
	if len(runs) == len(edges) {
		return edges
	}

	sort.Slice(runs, func(a, b int) bool { return runs[a].first < runs[b].first })
	out := make([]geometry.Segment, len(runs))
	for i, r := range runs {
		out[i] = r.seg
	}
	return out
}
