// SPDX-License-Identifier: MIT

package geometry

// Ray is a half-line on the lattice starting at Origin.
type Ray struct {
	Origin Point
	Dir    Direction
}

// At returns the point t units along the ray.
func (r Ray) At(t int) Point {
	dx, dy := r.Dir.Delta()
	return r.Origin.Add(dx*t, dy*t)
}

// Span returns the segment covered by the ray for t in [0, t].
func (r Ray) Span(t int) Segment { return Segment{A: r.Origin, B: r.At(t)} }

// param returns the interval of ray parameters whose points lie on s.
func (r Ray) param(s Segment) (lo, hi int, ok bool) {
	b := s.Bounds()
	o := r.Origin
	switch r.Dir {
	case East:
		if o.Y < b.MinY || o.Y > b.MaxY {
			return 0, 0, false
		}
		return b.MinX - o.X, b.MaxX - o.X, true
	case West:
		if o.Y < b.MinY || o.Y > b.MaxY {
			return 0, 0, false
		}
		return o.X - b.MaxX, o.X - b.MinX, true
	case North:
		if o.X < b.MinX || o.X > b.MaxX {
			return 0, 0, false
		}
		return b.MinY - o.Y, b.MaxY - o.Y, true
	default:
		if o.X < b.MinX || o.X > b.MaxX {
			return 0, 0, false
		}
		return o.Y - b.MaxY, o.Y - b.MinY, true
	}
}

// CastRay returns the first boundary lattice point strictly after the ray's
// origin, together with the id of the edge it lies on (the lowest id when the
// point is a vertex). ok is false when the ray leaves the polygon's bounds
// without meeting the boundary.
func (p *Polygon) CastRay(r Ray) (hit Point, edge int, ok bool) {
	if len(p.pts) == 0 {
		return Point{}, -1, false
	}
	b := p.Bounds()
	var reach int
	switch r.Dir {
	case East:
		reach = b.MaxX - r.Origin.X
	case West:
		reach = r.Origin.X - b.MinX
	case North:
		reach = b.MaxY - r.Origin.Y
	default:
		reach = r.Origin.Y - b.MinY
	}
	if reach < 1 {
		return Point{}, -1, false
	}

	idx := p.EdgeIndex()
	best, bestEdge := -1, -1
	for _, id := range idx.Query(r.Span(reach).Bounds()) {
		lo, hi, hitLine := r.param(idx.Edge(id))
		if !hitLine {
			continue
		}
		t := max(lo, 1)
		if t > hi {
			continue
		}
		if best < 0 || t < best {
			best, bestEdge = t, id
		}
	}
	if best < 0 {
		return Point{}, -1, false
	}

	return r.At(best), bestEdge, true
}
