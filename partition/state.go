// SPDX-License-Identifier: MIT

package partition

import (
	"fmt"
	"sort"

	"github.com/dvirbo/shapely/cellgrid"
	"github.com/dvirbo/shapely/geometry"
)

// State is the private bookkeeping of one greedy run: the lattice of the
// polygon, the cells not yet carved off, the cuts committed so far and the
// carved rectangles. Public queries recompute from the current mask. The
// driver keeps the best match of each reflex corner until a carved block
// comes within one cell of what that corner's scan read.
type State struct {
	poly      *geometry.Polygon
	grid      *cellgrid.Grid
	remaining cellgrid.Mask
	prefix    *cellgrid.PrefixSum
	edges     []geometry.Segment
	blocked   []geometry.Rect
	best      map[node]bestMatch
}

type node struct{ i, j int }

// bestMatch is the top match of one reflex corner and the cells its scan read.
type bestMatch struct {
	match Match
	ok    bool
	reach reach
}

// reach is the cell block [i0,i1)×[j0,j1) covering every block a scan tested.
type reach struct {
	i0, j0, i1, j1 int
	set            bool
}

func (r *reach) add(i0, j0, i1, j1 int) {
	if !r.set {
		*r = reach{i0: i0, j0: j0, i1: i1, j1: j1, set: true}
		return
	}
	r.i0, r.j0 = min(r.i0, i0), min(r.j0, j0)
	r.i1, r.j1 = max(r.i1, i1), max(r.j1, j1)
}

// touches reports whether block [i0,i1)×[j0,j1) overlaps r grown by one cell.
// Occupancy and exposure read one cell past a tested block.
func (r reach) touches(i0, j0, i1, j1 int) bool {
	if !r.set {
		return true
	}
	return r.i0-1 < i1 && i0 < r.i1+1 && r.j0-1 < j1 && j0 < r.j1+1
}

// NewState prepares a run over p. It fails with an error wrapping
// ErrInvalidPolygon when p is not a simple orthogonal polygon.
func NewState(p *geometry.Polygon) (*State, error) {
	g, err := cellgrid.New(p)
	if err != nil {
		return nil, fmt.Errorf("NewState: %w", err)
	}
	rem := g.InsideMask()

	return &State{
		poly:      p,
		grid:      g,
		remaining: rem,
		prefix:    cellgrid.NewPrefixSum(rem),
		best:      make(map[node]bestMatch),
	}, nil
}

// ConcaveVertices returns the reflex corners of the remaining region,
// leftmost then bottommost.
func (s *State) ConcaveVertices() []geometry.Point {
	nodes := s.reflexNodes()
	out := make([]geometry.Point, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, s.grid.Point(n.i, n.j))
	}
	return out
}

func (s *State) reflexNodes() []node {
	var out []node
	for i := 0; i <= s.grid.Width; i++ {
		for j := 0; j <= s.grid.Height; j++ {
			if cellgrid.IsReflex(s.remaining, i, j) {
				out = append(out, node{i, j})
			}
		}
	}
	return out
}

// Done reports whether the remaining region has no reflex corner left, i.e.
// every remaining component is a rectangle.
func (s *State) Done() bool {
	for i := 0; i <= s.grid.Width; i++ {
		for j := 0; j <= s.grid.Height; j++ {
			if cellgrid.IsReflex(s.remaining, i, j) {
				return false
			}
		}
	}
	return true
}

// FindMatchingPoint lists every viable partner of the reflex corner
// candidate, best first. A partner q is viable when the box spanned by
// candidate and q lies in the remaining region and carving it lowers the
// number of reflex corners. The result is empty when candidate is not a
// reflex corner of the remaining region.
func (s *State) FindMatchingPoint(candidate geometry.Point) []Match {
	ci, cj, ok := s.grid.NodeOf(candidate)
	if !ok || !cellgrid.IsReflex(s.remaining, ci, cj) {
		return nil
	}
	out, _ := s.scan(ci, cj)

	return out
}

// scan lists the viable partners of reflex node (ci, cj), best first, and
// the cells it read to decide.
func (s *State) scan(ci, cj int) ([]Match, reach) {
	var (
		out  []Match
		seen reach
	)
	candidate := s.grid.Point(ci, cj)
	for _, sx := range [2]int{-1, 1} {
		for _, sy := range [2]int{-1, 1} {
			for qi := ci + sx; qi >= 0 && qi <= s.grid.Width; qi += sx {
				i0, i1 := min(ci, qi), max(ci, qi)
				seen.add(i0, min(cj, cj+sy), i1, max(cj, cj+sy))
				if !s.prefix.Full(i0, min(cj, cj+sy), i1, max(cj, cj+sy)) {
					break
				}
				for qj := cj + sy; qj >= 0 && qj <= s.grid.Height; qj += sy {
					j0, j1 := min(cj, qj), max(cj, qj)
					seen.add(i0, j0, i1, j1)
					if !s.prefix.Full(i0, j0, i1, j1) {
						break
					}
					resolved := s.resolved(i0, j0, i1, j1)
					if resolved <= 0 {
						continue
					}
					kind := PartnerBoundary
					if cellgrid.IsReflex(s.remaining, qi, qj) {
						kind = PartnerConcave
					}
					out = append(out, Match{
						From:      candidate,
						Point:     s.grid.Point(qi, qj),
						Rect:      s.grid.BlockRect(i0, j0, i1, j1),
						Kind:      kind,
						CutLength: s.cutLength(i0, j0, i1, j1),
						Resolved:  resolved,
					})
				}
			}
		}
	}
	sort.Slice(out, func(a, b int) bool { return better(out[a], out[b]) })

	return out, seen
}

// bestOf returns the top match of reflex node (i, j), scanning only when no
// remembered match survives.
func (s *State) bestOf(i, j int) (Match, bool) {
	k := node{i, j}
	if b, hit := s.best[k]; hit {
		return b.match, b.ok
	}
	ms, seen := s.scan(i, j)
	b := bestMatch{reach: seen}
	if len(ms) > 0 {
		b.match, b.ok = ms[0], true
	}
	s.best[k] = b

	return b.match, b.ok
}

// better orders matches: concave partner, more corners resolved, shorter
// cut, then the partner point.
func better(a, b Match) bool {
	if a.Kind != b.Kind {
		return a.Kind == PartnerConcave
	}
	if a.Resolved != b.Resolved {
		return a.Resolved > b.Resolved
	}
	if a.CutLength != b.CutLength {
		return a.CutLength < b.CutLength
	}
	return a.Point.Less(b.Point)
}

// resolved returns reflex corners before minus after carving cells
// [i0,i1)×[j0,j1). Only nodes on the block's perimeter can change; interior
// nodes go from four occupied cells to none.
func (s *State) resolved(i0, j0, i1, j1 int) int {
	delta := 0
	visit := func(i, j int) {
		before, q := cellgrid.Occupancy(s.remaining, i, j)
		after := before
		if q&cellgrid.QuadNE != 0 && inBlock(i, j, i0, j0, i1, j1) {
			after--
		}
		if q&cellgrid.QuadNW != 0 && inBlock(i-1, j, i0, j0, i1, j1) {
			after--
		}
		if q&cellgrid.QuadSW != 0 && inBlock(i-1, j-1, i0, j0, i1, j1) {
			after--
		}
		if q&cellgrid.QuadSE != 0 && inBlock(i, j-1, i0, j0, i1, j1) {
			after--
		}
		if before == 3 {
			delta++
		}
		if after == 3 {
			delta--
		}
	}
	for i := i0; i <= i1; i++ {
		visit(i, j0)
		visit(i, j1)
	}
	for j := j0 + 1; j < j1; j++ {
		visit(i0, j)
		visit(i1, j)
	}

	return delta
}

func inBlock(i, j, i0, j0, i1, j1 int) bool {
	return i >= i0 && i < i1 && j >= j0 && j < j1
}

// cutLength sums the perimeter of block [i0,i1)×[j0,j1) that borders
// remaining cells outside it.
func (s *State) cutLength(i0, j0, i1, j1 int) int {
	n := 0
	for _, seg := range s.exposed(i0, j0, i1, j1) {
		n += seg.Length()
	}
	return n
}

// exposed returns the maximal perimeter runs of the block that border
// remaining cells, ordered bottom, right, top, left.
func (s *State) exposed(i0, j0, i1, j1 int) []geometry.Segment {
	g := s.grid
	var out []geometry.Segment

	// run merges consecutive exposed unit edges along one side.
	run := func(n int, open func(k int) bool, at func(k int) geometry.Point) {
		start := -1
		for k := 0; k <= n; k++ {
			if k < n && open(k) {
				if start < 0 {
					start = k
				}
				continue
			}
			if start >= 0 {
				out = append(out, geometry.Seg(at(start), at(k)))
				start = -1
			}
		}
	}

	run(i1-i0,
		func(k int) bool { return s.remaining.Has(i0+k, j0-1) },
		func(k int) geometry.Point { return g.Point(i0+k, j0) })
	run(j1-j0,
		func(k int) bool { return s.remaining.Has(i1, j0+k) },
		func(k int) geometry.Point { return g.Point(i1, j0+k) })
	run(i1-i0,
		func(k int) bool { return s.remaining.Has(i0+k, j1) },
		func(k int) geometry.Point { return g.Point(i0+k, j1) })
	run(j1-j0,
		func(k int) bool { return s.remaining.Has(i0-1, j0+k) },
		func(k int) geometry.Point { return g.Point(i0, j0+k) })

	return out
}

// NewInternalEdges returns the cuts that carving blocked would add: the
// maximal runs of its perimeter that border cells still to be partitioned,
// ordered bottom, right, top, left. Boundary edges and earlier cuts are never
// reported. It returns nil when blocked is not lattice-aligned or is empty.
func (s *State) NewInternalEdges(blocked geometry.Rect) []geometry.Segment {
	i0, j0, i1, j1, ok := s.grid.Block(blocked)
	if !ok || i1 <= i0 || j1 <= j0 {
		return nil
	}
	return s.exposed(i0, j0, i1, j1)
}

// Commit carves m.Rect off the remaining region and records its new cuts,
// which it also returns. It fails with ErrStaleMatch when m no longer fits.
func (s *State) Commit(m Match) ([]geometry.Segment, error) {
	i0, j0, i1, j1, ok := s.grid.Block(m.Rect)
	if !ok || !s.prefix.Full(i0, j0, i1, j1) || s.resolved(i0, j0, i1, j1) <= 0 {
		return nil, fmt.Errorf("Commit %v: %w", m.Rect, ErrStaleMatch)
	}

	cuts := s.exposed(i0, j0, i1, j1)
	s.edges = append(s.edges, cuts...)
	s.remaining.ClearBlock(i0, j0, i1, j1)
	s.prefix = cellgrid.NewPrefixSum(s.remaining)
	s.blocked = append(s.blocked, m.Rect)
	for k, b := range s.best {
		if b.reach.touches(i0, j0, i1, j1) {
			delete(s.best, k)
		}
	}

	return cuts, nil
}

// Edges returns a copy of the committed cuts in commit order.
func (s *State) Edges() []geometry.Segment {
	out := make([]geometry.Segment, len(s.edges))
	copy(out, s.edges)
	return out
}

// Blocked returns a copy of the carved rectangles in commit order.
func (s *State) Blocked() []geometry.Rect {
	out := make([]geometry.Rect, len(s.blocked))
	copy(out, s.blocked)
	return out
}

// Remaining returns the bounding boxes of the remaining components. Once Done
// holds, each component fills its box.
func (s *State) Remaining() []geometry.Rect {
	comps := s.grid.Components(s.remaining)
	out := make([]geometry.Rect, 0, len(comps))
	for _, c := range comps {
		r, _ := s.grid.ComponentRect(c)
		out = append(out, r)
	}
	return out
}
