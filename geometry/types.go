// SPDX-License-Identifier: MIT

package geometry

import (
	"errors"
	"fmt"
)

// Sentinel errors for polygon validation. Every specific cause wraps
// ErrInvalidPolygon so callers can branch on the class or on the cause.
var (
	// ErrInvalidPolygon is the umbrella for all validation failures.
	ErrInvalidPolygon = errors.New("geometry: invalid polygon")
	// ErrTooFewVertices indicates fewer than four distinct boundary points.
	ErrTooFewVertices = fmt.Errorf("%w: fewer than four vertices", ErrInvalidPolygon)
	// ErrDuplicateVertex indicates a boundary point that appears twice.
	ErrDuplicateVertex = fmt.Errorf("%w: duplicate vertex", ErrInvalidPolygon)
	// ErrNotRectilinear indicates a diagonal edge or two consecutive edges on the same axis.
	ErrNotRectilinear = fmt.Errorf("%w: not rectilinear", ErrInvalidPolygon)
	// ErrOddVertexCount indicates an odd number of vertices, which no orthogonal polygon has.
	ErrOddVertexCount = fmt.Errorf("%w: odd vertex count", ErrInvalidPolygon)
	// ErrSelfIntersecting indicates two non-adjacent edges sharing a point.
	ErrSelfIntersecting = fmt.Errorf("%w: self-intersecting boundary", ErrInvalidPolygon)
)

// ErrTurnIdentity is returned by CheckTurnIdentity when convex − concave ≠ 4.
var ErrTurnIdentity = errors.New("geometry: convex minus concave vertex count is not 4")

// Point is an exact integer point. Points order by X, then Y.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point { return Point{X: x, Y: y} }

// Points builds a point slice from flattened x,y pairs.
// It returns nil when given an odd number of coordinates.
func Points(xy ...int) []Point {
	if len(xy)%2 != 0 {
		return nil
	}
	pts := make([]Point, 0, len(xy)/2)
	for i := 0; i < len(xy); i += 2 {
		pts = append(pts, Point{X: xy[i], Y: xy[i+1]})
	}

	return pts
}

// Less reports whether p sorts before q (leftmost, then bottommost).
func (p Point) Less(q Point) bool {
	if p.X != q.X {
		return p.X < q.X
	}
	return p.Y < q.Y
}

// Add translates p by (dx, dy).
func (p Point) Add(dx, dy int) Point { return Point{X: p.X + dx, Y: p.Y + dy} }

// String renders p as "(x,y)".
func (p Point) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

// Direction is one of the four axis directions.
type Direction uint8

const (
	// East is +X.
	East Direction = iota
	// North is +Y.
	North
	// West is −X.
	West
	// South is −Y.
	South
)

// Directions lists the four axis directions in counter-clockwise order.
var Directions = [4]Direction{East, North, West, South}

// Delta returns the unit step of d.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case East:
		return 1, 0
	case North:
		return 0, 1
	case West:
		return -1, 0
	default:
		return 0, -1
	}
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction { return (d + 2) % 4 }

// Horizontal reports whether d is East or West.
func (d Direction) Horizontal() bool { return d == East || d == West }

// String returns the compass name of d.
func (d Direction) String() string {
	switch d {
	case East:
		return "east"
	case North:
		return "north"
	case West:
		return "west"
	case South:
		return "south"
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// DirectionOf returns the axis direction from a to b.
// ok is false when a == b or the two points are not axis-aligned.
func DirectionOf(a, b Point) (d Direction, ok bool) {
	switch {
	case a == b:
		return 0, false
	case a.Y == b.Y && b.X > a.X:
		return East, true
	case a.Y == b.Y:
		return West, true
	case a.X == b.X && b.Y > a.Y:
		return North, true
	case a.X == b.X:
		return South, true
	}
	return 0, false
}

// Segment is a closed segment between A and B. Cuts and boundary edges are
// always axis-aligned; the predicates below assume so.
type Segment struct {
	A, B Point
}

// Seg is shorthand for Segment{A: a, B: b}.
func Seg(a, b Point) Segment { return Segment{A: a, B: b} }

// Horizontal reports whether s is a non-degenerate horizontal segment.
func (s Segment) Horizontal() bool { return s.A.Y == s.B.Y && s.A.X != s.B.X }

// Vertical reports whether s is a non-degenerate vertical segment.
func (s Segment) Vertical() bool { return s.A.X == s.B.X && s.A.Y != s.B.Y }

// AxisAligned reports whether s is horizontal or vertical.
func (s Segment) AxisAligned() bool { return s.Horizontal() || s.Vertical() }

// Length returns the Manhattan length of s (the Euclidean length for
// axis-aligned segments).
func (s Segment) Length() int { return abs(s.B.X-s.A.X) + abs(s.B.Y-s.A.Y) }

// Canonical returns s with A ≤ B.
func (s Segment) Canonical() Segment {
	if s.B.Less(s.A) {
		return Segment{A: s.B, B: s.A}
	}
	return s
}

// Bounds returns the (possibly degenerate) bounding box of s.
func (s Segment) Bounds() Rect { return RectFromCorners(s.A, s.B) }

// Contains reports whether p lies on the axis-aligned segment s.
func (s Segment) Contains(p Point) bool { return s.Bounds().ContainsPoint(p) }

// Touches reports whether two axis-aligned segments share at least one point.
// For axis-aligned segments the common points are exactly the intersection of
// their bounding boxes.
func (s Segment) Touches(o Segment) bool { return s.Bounds().Intersects(o.Bounds()) }

// Crosses reports whether a horizontal and a vertical segment cross at a point
// interior to both.
func (s Segment) Crosses(o Segment) bool {
	h, v := s, o
	if s.Vertical() {
		h, v = o, s
	}
	if !h.Horizontal() || !v.Vertical() {
		return false
	}
	hb, vb := h.Bounds(), v.Bounds()
	return hb.MinX < vb.MinX && vb.MinX < hb.MaxX && vb.MinY < hb.MinY && hb.MinY < vb.MaxY
}

// String renders s as "(x1,y1)-(x2,y2)".
func (s Segment) String() string { return s.A.String() + "-" + s.B.String() }

// Rect is a closed axis-aligned box.
type Rect struct {
	MinX, MinY, MaxX, MaxY int
}

// RectFromCorners returns the box spanned by two opposite corners.
func RectFromCorners(a, b Point) Rect {
	r := Rect{MinX: a.X, MinY: a.Y, MaxX: b.X, MaxY: b.Y}
	if r.MinX > r.MaxX {
		r.MinX, r.MaxX = r.MaxX, r.MinX
	}
	if r.MinY > r.MaxY {
		r.MinY, r.MaxY = r.MaxY, r.MinY
	}

	return r
}

// Width returns MaxX − MinX.
func (r Rect) Width() int { return r.MaxX - r.MinX }

// Height returns MaxY − MinY.
func (r Rect) Height() int { return r.MaxY - r.MinY }

// Area returns the area of r.
func (r Rect) Area() int64 { return int64(r.Width()) * int64(r.Height()) }

// Empty reports whether r has zero area.
func (r Rect) Empty() bool { return r.Width() <= 0 || r.Height() <= 0 }

// Min returns the lower-left corner.
func (r Rect) Min() Point { return Point{X: r.MinX, Y: r.MinY} }

// Max returns the upper-right corner.
func (r Rect) Max() Point { return Point{X: r.MaxX, Y: r.MaxY} }

// Corners returns the four corners counter-clockwise from (MinX, MinY).
func (r Rect) Corners() [4]Point {
	return [4]Point{
		{X: r.MinX, Y: r.MinY},
		{X: r.MaxX, Y: r.MinY},
		{X: r.MaxX, Y: r.MaxY},
		{X: r.MinX, Y: r.MaxY},
	}
}

// Sides returns bottom, right, top and left sides, each with A ≤ B.
func (r Rect) Sides() [4]Segment {
	c := r.Corners()
	return [4]Segment{
		{A: c[0], B: c[1]},
		{A: c[1], B: c[2]},
		{A: c[3], B: c[2]},
		{A: c[0], B: c[3]},
	}
}

// ContainsPoint reports whether p lies in the closed box.
func (r Rect) ContainsPoint(p Point) bool {
	return r.MinX <= p.X && p.X <= r.MaxX && r.MinY <= p.Y && p.Y <= r.MaxY
}

// ContainsRect reports whether o lies entirely in r.
func (r Rect) ContainsRect(o Rect) bool {
	return r.MinX <= o.MinX && o.MaxX <= r.MaxX && r.MinY <= o.MinY && o.MaxY <= r.MaxY
}

// Intersects reports whether the closed boxes share a point.
func (r Rect) Intersects(o Rect) bool {
	return r.MinX <= o.MaxX && o.MinX <= r.MaxX && r.MinY <= o.MaxY && o.MinY <= r.MaxY
}

// Overlaps reports whether the boxes share positive area.
func (r Rect) Overlaps(o Rect) bool {
	return r.MinX < o.MaxX && o.MinX < r.MaxX && r.MinY < o.MaxY && o.MinY < r.MaxY
}

// Polygon returns r as a counter-clockwise four-vertex polygon.
func (r Rect) Polygon() *Polygon {
	c := r.Corners()
	return New(c[:])
}

// String renders r as "[minX,maxX]x[minY,maxY]".
func (r Rect) String() string {
	return fmt.Sprintf("[%d,%d]x[%d,%d]", r.MinX, r.MaxX, r.MinY, r.MaxY)
}

// Winding is the orientation of a closed boundary.
type Winding int8

const (
	// Clockwise boundaries have negative signed area.
	Clockwise Winding = -1
	// Degenerate boundaries have zero signed area.
	Degenerate Winding = 0
	// CounterClockwise boundaries have positive signed area.
	CounterClockwise Winding = 1
)

// String names the winding.
func (w Winding) String() string {
	switch w {
	case Clockwise:
		return "clockwise"
	case CounterClockwise:
		return "counter-clockwise"
	}
	return "degenerate"
}

// VertexKind classifies a boundary vertex by its interior angle.
type VertexKind uint8

const (
	// Straight is a 180° (or 0°) vertex; only invalid polygons have one.
	Straight VertexKind = iota
	// Convex is a 90° interior angle.
	Convex
	// Concave is a 270° interior angle (reflex vertex).
	Concave
)

// String names the kind.
func (k VertexKind) String() string {
	switch k {
	case Convex:
		return "convex"
	case Concave:
		return "concave"
	}
	return "straight"
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
