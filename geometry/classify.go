// SPDX-License-Identifier: MIT

package geometry

// turn returns the cross product of the edge into vertex i and the edge out
// of it, scaled by the winding sign: positive for a left (convex) turn when
// traversed counter-clockwise.
func turn(pts []Point, sign, i int) int64 {
	n := len(pts)
	prev := pts[(i-1+n)%n]
	cur := pts[i]
	next := pts[(i+1)%n]

	return cross(prev, cur, next) * int64(sign)
}

// Kind classifies vertex i (cyclic).
func (p *Polygon) Kind(i int) VertexKind {
	n := p.Len()
	if n < 3 {
		return Straight
	}
	switch t := turn(p.pts, p.sign, ((i%n)+n)%n); {
	case t > 0:
		return Convex
	case t < 0:
		return Concave
	}
	return Straight
}

// IsConcaveVertex reports whether vertex i has a 270° interior angle.
func (p *Polygon) IsConcaveVertex(i int) bool { return p.Kind(i) == Concave }

// IsConcaveAt classifies index i of an arbitrary coordinate list. The list may
// start anywhere on the ring, run in either direction and repeat its first
// point at the end; the winding is derived from the list itself.
func IsConcaveAt(coords []Point, i int) bool {
	n := len(coords)
	if n > 1 && coords[0] == coords[n-1] {
		n--
	}
	if n < 3 || i < 0 || i >= n {
		return false
	}
	pts := coords[:n]

	return turn(pts, int(windingOf(pts)), i) < 0
}

// ConvexIndices returns the indices of convex vertices in boundary order.
func (p *Polygon) ConvexIndices() []int { return p.indicesOf(Convex) }

// ConcaveIndices returns the indices of concave vertices in boundary order.
func (p *Polygon) ConcaveIndices() []int { return p.indicesOf(Concave) }

// ConvexPoints returns the convex vertices in boundary order.
func (p *Polygon) ConvexPoints() []Point { return p.pointsOf(Convex) }

// ConcavePoints returns the concave vertices in boundary order.
func (p *Polygon) ConcavePoints() []Point { return p.pointsOf(Concave) }

func (p *Polygon) indicesOf(k VertexKind) []int {
	var out []int
	for i := range p.pts {
		if p.Kind(i) == k {
			out = append(out, i)
		}
	}
	return out
}

func (p *Polygon) pointsOf(k VertexKind) []Point {
	var out []Point
	for i, q := range p.pts {
		if p.Kind(i) == k {
			out = append(out, q)
		}
	}
	return out
}

// FindConvexPoint returns a representative convex vertex: the
// lowest-leftmost one, which is convex on every simple polygon. The zero
// Point is returned for an empty polygon.
func (p *Polygon) FindConvexPoint() Point {
	if len(p.pts) == 0 {
		return Point{}
	}
	best := p.pts[0]
	for _, q := range p.pts[1:] {
		if q.Less(best) {
			best = q
		}
	}

	return best
}

// FindConcavePoint returns the leftmost-then-bottommost concave vertex.
// ok is false when the polygon has none.
func (p *Polygon) FindConcavePoint() (pt Point, ok bool) {
	for i, q := range p.pts {
		if p.Kind(i) != Concave {
			continue
		}
		if !ok || q.Less(pt) {
			pt, ok = q, true
		}
	}

	return pt, ok
}

// CheckTurnIdentity verifies convex − concave == 4.
func (p *Polygon) CheckTurnIdentity() error {
	var convex, concave int
	for i := range p.pts {
		switch p.Kind(i) {
		case Convex:
			convex++
		case Concave:
			concave++
		}
	}
	if convex-concave != 4 {
		return ErrTurnIdentity
	}

	return nil
}
