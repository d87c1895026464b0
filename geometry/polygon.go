// SPDX-License-Identifier: MIT

package geometry

import (
	"strconv"
	"strings"
	"sync"
)

// Polygon is a closed boundary given as an ordered vertex list, the last
// vertex implicitly joined back to the first. It is immutable after New.
type Polygon struct {
	pts  []Point
	sign int // +1 for CCW, −1 for CW, 0 for degenerate

	indexOnce sync.Once
	index     *EdgeIndex
}

// New copies pts into a polygon. A trailing point equal to the first one
// (an explicitly closed ring) is dropped.
func New(pts []Point) *Polygon {
	n := len(pts)
	if n > 1 && pts[0] == pts[n-1] {
		n--
	}
	cp := make([]Point, n)
	copy(cp, pts[:n])

	p := &Polygon{pts: cp}
	p.sign = int(windingOf(cp))

	return p
}

// FromXY is New over flattened x,y pairs. It returns nil on odd input length.
func FromXY(xy ...int) *Polygon {
	pts := Points(xy...)
	if pts == nil {
		return nil
	}
	return New(pts)
}

// Len returns the number of vertices. A nil polygon has none.
func (p *Polygon) Len() int {
	if p == nil {
		return 0
	}
	return len(p.pts)
}

// Vertex returns vertex i with cyclic indexing (negative i allowed). An empty
// polygon yields the zero Point.
func (p *Polygon) Vertex(i int) Point {
	n := p.Len()
	if n == 0 {
		return Point{}
	}
	return p.pts[((i%n)+n)%n]
}

// Vertices returns a copy of the vertex list.
func (p *Polygon) Vertices() []Point {
	out := make([]Point, len(p.pts))
	copy(out, p.pts)
	return out
}

// Edges returns the boundary edges; edge i runs from vertex i to vertex i+1.
func (p *Polygon) Edges() []Segment {
	n := len(p.pts)
	out := make([]Segment, n)
	for i := 0; i < n; i++ {
		out[i] = Segment{A: p.pts[i], B: p.pts[(i+1)%n]}
	}

	return out
}

// Edge returns edge i (cyclic).
func (p *Polygon) Edge(i int) Segment {
	return Segment{A: p.Vertex(i), B: p.Vertex(i + 1)}
}

// Bounds returns the bounding box of the vertices. Empty polygons yield the
// zero Rect.
func (p *Polygon) Bounds() Rect {
	if len(p.pts) == 0 {
		return Rect{}
	}
	r := Rect{MinX: p.pts[0].X, MinY: p.pts[0].Y, MaxX: p.pts[0].X, MaxY: p.pts[0].Y}
	for _, q := range p.pts[1:] {
		r.MinX = min(r.MinX, q.X)
		r.MaxX = max(r.MaxX, q.X)
		r.MinY = min(r.MinY, q.Y)
		r.MaxY = max(r.MaxY, q.Y)
	}

	return r
}

// SignedArea2 returns twice the signed shoelace area (positive for CCW).
func (p *Polygon) SignedArea2() int64 { return signedArea2(p.pts) }

// Area returns the enclosed area. Orthogonal polygons on an integer lattice
// always have an integral area.
func (p *Polygon) Area() int64 {
	a := p.SignedArea2()
	if a < 0 {
		a = -a
	}
	return a / 2
}

// Winding reports the boundary orientation.
func (p *Polygon) Winding() Winding { return Winding(p.sign) }

// CCW returns the same boundary in counter-clockwise order, rotated to start
// at the lowest-leftmost vertex. The receiver is not modified.
func (p *Polygon) CCW() *Polygon {
	n := len(p.pts)
	out := make([]Point, n)
	if n == 0 {
		return New(out)
	}
	src := p.pts
	if p.sign < 0 {
		src = make([]Point, n)
		for i, q := range p.pts {
			src[n-1-i] = q
		}
	}
	start := 0
	for i := 1; i < n; i++ {
		if src[i].Less(src[start]) {
			start = i
		}
	}
	for i := 0; i < n; i++ {
		out[i] = src[(start+i)%n]
	}

	return New(out)
}

// Contains reports whether q lies inside the polygon or on its boundary.
func (p *Polygon) Contains(q Point) bool {
	n := len(p.pts)
	if n < 3 {
		return false
	}
	for i := 0; i < n; i++ {
		if onSegment(Segment{A: p.pts[i], B: p.pts[(i+1)%n]}, q) {
			return true
		}
	}

	// Crossing number with the half-open rule on edge endpoints.
	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := p.pts[i], p.pts[j]
		if (a.Y > q.Y) == (b.Y > q.Y) {
			continue
		}
		// q.X < a.X + (q.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y), kept integral.
		lhs := int64(q.X-a.X) * int64(b.Y-a.Y)
		rhs := int64(q.Y-a.Y) * int64(b.X-a.X)
		if b.Y-a.Y > 0 {
			if lhs < rhs {
				inside = !inside
			}
		} else if lhs > rhs {
			inside = !inside
		}
	}

	return inside
}

// String renders the polygon in WKT form.
func (p *Polygon) String() string {
	var sb strings.Builder
	sb.WriteString("POLYGON ((")
	for i, q := range p.pts {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Itoa(q.X))
		sb.WriteByte(' ')
		sb.WriteString(strconv.Itoa(q.Y))
	}
	if len(p.pts) > 0 {
		sb.WriteString(", ")
		sb.WriteString(strconv.Itoa(p.pts[0].X))
		sb.WriteByte(' ')
		sb.WriteString(strconv.Itoa(p.pts[0].Y))
	}
	sb.WriteString("))")

	return sb.String()
}

func signedArea2(pts []Point) int64 {
	n := len(pts)
	var s int64
	for i := 0; i < n; i++ {
		a, b := pts[i], pts[(i+1)%n]
		s += int64(a.X)*int64(b.Y) - int64(b.X)*int64(a.Y)
	}

	return s
}

func windingOf(pts []Point) Winding {
	switch a := signedArea2(pts); {
	case a > 0:
		return CounterClockwise
	case a < 0:
		return Clockwise
	}
	return Degenerate
}

func cross(o, a, b Point) int64 {
	return int64(a.X-o.X)*int64(b.Y-o.Y) - int64(a.Y-o.Y)*int64(b.X-o.X)
}

// onSegment handles arbitrary (possibly oblique) segments.
func onSegment(s Segment, q Point) bool {
	if cross(s.A, s.B, q) != 0 {
		return false
	}
	return s.Bounds().ContainsPoint(q)
}
