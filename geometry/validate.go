// SPDX-License-Identifier: MIT

package geometry

// Validate reports why the polygon is not a simple orthogonal polygon, or nil.
// Checks run in order: vertex count, duplicates, axis alignment, parity,
// alternation, then pairwise edge contact.
func (p *Polygon) Validate() error {
	n := p.Len()
	if n < 4 {
		return ErrTooFewVertices
	}

	seen := make(map[Point]struct{}, n)
	for _, q := range p.pts {
		if _, dup := seen[q]; dup {
			return ErrDuplicateVertex
		}
		seen[q] = struct{}{}
	}

	for i := 0; i < n; i++ {
		if !p.Edge(i).AxisAligned() {
			return ErrNotRectilinear
		}
	}
	if n%2 != 0 {
		return ErrOddVertexCount
	}
	for i := 0; i < n; i++ {
		if p.Edge(i).Horizontal() == p.Edge(i+1).Horizontal() {
			return ErrNotRectilinear
		}
	}

	idx := p.EdgeIndex()
	for i := 0; i < n; i++ {
		e := idx.Edge(i)
		for _, j := range idx.Query(e.Bounds()) {
			if j <= i {
				continue
			}
			if adjacent(i, j, n) {
				// Consecutive edges are perpendicular here, so they meet only
				// at the shared vertex.
				continue
			}
			if e.Touches(idx.Edge(j)) {
				return ErrSelfIntersecting
			}
		}
	}

	return nil
}

// IsRectilinear reports whether Validate succeeds.
func (p *Polygon) IsRectilinear() bool { return p.Validate() == nil }

// IsRectangle reports whether p is a valid axis-aligned rectangle.
func (p *Polygon) IsRectangle() bool {
	if p.Len() != 4 || !p.IsRectilinear() {
		return false
	}
	for i := range p.pts {
		if p.Kind(i) != Convex {
			return false
		}
	}

	return true
}

func adjacent(i, j, n int) bool {
	return (i+1)%n == j || (j+1)%n == i
}
