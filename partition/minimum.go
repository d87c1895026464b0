// SPDX-License-Identifier: MIT

package partition

import (
	"fmt"
	"sort"

	"github.com/dvirbo/shapely/cellgrid"
	"github.com/dvirbo/shapely/geometry"
	"github.com/dvirbo/shapely/matching"
)

// minimum finds a partition into the fewest rectangles.
//
// Steps:
//  1. Enumerate chords: segments between consecutive concave vertices on a
//     lattice line whose open part runs through the interior.
//  2. Build the bipartite conflict graph horizontal × vertical, two chords
//     conflicting when they share any point.
//  3. Cut along a maximum independent set of chords (König).
//  4. Resolve every concave vertex no cut touches yet with one ray to the
//     first boundary node or cut; the shorter of its two fill directions
//     wins, horizontal on ties.
//
// The rectangle count is concave − chords + 1.
func minimum(p *geometry.Polygon, cfg config) (*Result, error) {
	g, err := cellgrid.New(p)
	if err != nil {
		return nil, fmt.Errorf("minimum: %w", err)
	}

	hs, vs := chords(g, p.ConcavePoints())
	cg := matching.Graph{Left: len(hs), Right: len(vs), Adj: make([][]int, len(hs))}
	for u, h := range hs {
		for v, w := range vs {
			if h.Touches(w) {
				cg.Adj[u] = append(cg.Adj[u], v)
			}
		}
	}
	inH, inV, err := matching.MaxIndependentSet(cg, matching.Options{Logger: cfg.logger, Verbose: cfg.verbose})
	if err != nil {
		return nil, fmt.Errorf("minimum: %w", err)
	}

	var edges []geometry.Segment
	add := func(s geometry.Segment) error {
		if err := g.AddWall(s); err != nil {
			return fmt.Errorf("minimum: %w", err)
		}
		edges = append(edges, s)
		return nil
	}
	for u, h := range hs {
		if inH[u] {
			if err = add(h); err != nil {
				return nil, err
			}
		}
	}
	for v, w := range vs {
		if inV[v] {
			if err = add(w); err != nil {
				return nil, err
			}
		}
	}
	nChords := len(edges)

	idx := p.ConcaveIndices()
	sort.Slice(idx, func(a, b int) bool { return p.Vertex(idx[a]).Less(p.Vertex(idx[b])) })
	inside := g.InsideMask()
	for _, k := range idx {
		c := p.Vertex(k)
		ci, cj, _ := g.NodeOf(c)
		if g.WallTouches(ci, cj) {
			continue
		}
		d1, d2 := fillDirections(p, k)
		if !d1.Horizontal() {
			d1, d2 = d2, d1
		}
		s1, s2 := extend(g, inside, ci, cj, d1), extend(g, inside, ci, cj, d2)
		ray := s1
		if s2.Length() < s1.Length() {
			ray = s2
		}
		if err = add(ray); err != nil {
			return nil, err
		}
	}

	if cfg.verbose {
		cfg.logger.Debug("minimum partition",
			"chords", len(hs)+len(vs),
			"chosen", nChords,
			"rays", len(edges)-nChords)
	}

	return &Result{Edges: edges, Iterations: len(edges), Chords: nChords}, nil
}

// chords returns the horizontal and vertical chords between the given
// concave vertices, each with A ≤ B, in Point.Less order of A.
func chords(g *cellgrid.Grid, concave []geometry.Point) (hs, vs []geometry.Segment) {
	pts := make([]geometry.Point, len(concave))
	copy(pts, concave)

	// Horizontal: same Y, consecutive X.
	sort.Slice(pts, func(a, b int) bool {
		if pts[a].Y != pts[b].Y {
			return pts[a].Y < pts[b].Y
		}
		return pts[a].X < pts[b].X
	})
	for k := 1; k < len(pts); k++ {
		a, b := pts[k-1], pts[k]
		if a.Y == b.Y && interior(g, geometry.Seg(a, b)) {
			hs = append(hs, geometry.Seg(a, b))
		}
	}

	// Vertical: same X, consecutive Y.
	sort.Slice(pts, func(a, b int) bool { return pts[a].Less(pts[b]) })
	for k := 1; k < len(pts); k++ {
		a, b := pts[k-1], pts[k]
		if a.X == b.X && interior(g, geometry.Seg(a, b)) {
			vs = append(vs, geometry.Seg(a, b))
		}
	}

	sort.Slice(hs, func(a, b int) bool { return hs[a].A.Less(hs[b].A) })
	return hs, vs
}

// extend walks from node (i, j) in direction d until it reaches a node on the
// polygon boundary or on an existing cut.
func extend(g *cellgrid.Grid, inside cellgrid.Mask, i, j int, d geometry.Direction) geometry.Segment {
	dx, dy := d.Delta()
	ni, nj := i+dx, j+dy
	for {
		if c, _ := cellgrid.Occupancy(inside, ni, nj); c < 4 || g.WallTouches(ni, nj) {
			break
		}
		ni, nj = ni+dx, nj+dy
	}
	return geometry.Seg(g.Point(i, j), g.Point(ni, nj))
}
