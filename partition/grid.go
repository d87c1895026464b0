// SPDX-License-Identifier: MIT

package partition

import (
	"sort"

	"github.com/dvirbo/shapely/geometry"
)

// fillDirections returns the two directions that extend the boundary edges at
// concave vertex i into the interior: the continuation of the incoming edge
// and the reverse of the outgoing one. The pair does not depend on winding.
func fillDirections(p *geometry.Polygon, i int) (geometry.Direction, geometry.Direction) {
	in, _ := geometry.DirectionOf(p.Vertex(i-1), p.Vertex(i))
	out, _ := geometry.DirectionOf(p.Vertex(i), p.Vertex(i+1))
	return in, out.Opposite()
}

// fillRays casts both fill rays of every concave vertex and returns them as
// segments from the vertex to the first boundary point.
func fillRays(p *geometry.Polygon) (rays []geometry.Segment, owner []int) {
	for _, i := range p.ConcaveIndices() {
		a, b := fillDirections(p, i)
		for _, d := range [2]geometry.Direction{a, b} {
			hit, _, ok := p.CastRay(geometry.Ray{Origin: p.Vertex(i), Dir: d})
			if !ok {
				continue
			}
			rays = append(rays, geometry.Seg(p.Vertex(i), hit))
			owner = append(owner, i)
		}
	}
	return rays, owner
}

// GridPoints returns the candidate cut lattice of p: where every fill ray of a
// concave vertex meets the boundary, plus every point where rays of two
// different concave vertices meet. The result is deduplicated and sorted by
// Point.Less. A rectangle yields nil.
func GridPoints(p *geometry.Polygon) ([]geometry.Point, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	rays, owner := fillRays(p)

	set := make(map[geometry.Point]struct{})
	for _, r := range rays {
		set[r.B] = struct{}{}
	}
	for a := range rays {
		for b := a + 1; b < len(rays); b++ {
			if owner[a] == owner[b] {
				continue
			}
			if q, ok := meet(rays[a], rays[b]); ok {
				set[q] = struct{}{}
			}
		}
	}
	if len(set) == 0 {
		return nil, nil
	}

	out := make([]geometry.Point, 0, len(set))
	for q := range set {
		out = append(out, q)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })

	return out, nil
}

// meet returns the common point of a horizontal and a vertical segment.
func meet(s, t geometry.Segment) (geometry.Point, bool) {
	h, v := s, t
	if s.Vertical() {
		h, v = t, s
	}
	if !h.Horizontal() || !v.Vertical() || !h.Touches(v) {
		return geometry.Point{}, false
	}
	return geometry.Point{X: v.A.X, Y: h.A.Y}, true
}
