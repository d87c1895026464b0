// SPDX-License-Identifier: MIT

package partition

import (
	"errors"
	"fmt"

	"github.com/dvirbo/shapely/geometry"
)

// Sentinel errors for the partition package. Invalid input is reported with
// geometry.ErrInvalidPolygon (ErrInvalidPolygon is the same value).
var (
	// ErrInvalidPolygon indicates the input is not a simple orthogonal polygon.
	ErrInvalidPolygon = geometry.ErrInvalidPolygon
	// ErrUnresolvableConcavity indicates a reflex corner with no viable partner.
	ErrUnresolvableConcavity = errors.New("partition: unresolvable concavity")
	// ErrIterationLimit indicates the driver exceeded its iteration bound.
	ErrIterationLimit = errors.New("partition: iteration limit exceeded")
	// ErrStaleMatch indicates a match that no longer fits the remaining region.
	ErrStaleMatch = errors.New("partition: stale match")
	// ErrEdgeOutside indicates a cut that leaves the polygon interior or the lattice.
	ErrEdgeOutside = errors.New("partition: edge is not inside the polygon")
	// ErrNotRectangular indicates a face of the cut polygon that is not a rectangle.
	ErrNotRectangular = errors.New("partition: face is not a rectangle")
	// ErrDanglingEdge indicates a cut with the same face on both sides.
	ErrDanglingEdge = errors.New("partition: cut does not separate two faces")
)

// ConcavityError carries the first reflex corner the driver could not resolve.
type ConcavityError struct {
	Point geometry.Point
}

func (e *ConcavityError) Error() string {
	return fmt.Sprintf("partition: unresolvable concavity at %v", e.Point)
}

// Unwrap lets errors.Is match ErrUnresolvableConcavity.
func (e *ConcavityError) Unwrap() error { return ErrUnresolvableConcavity }

// Strategy selects the partition algorithm.
type Strategy uint8

const (
	// Greedy carves one rectangle per step, preferring concave partners.
	Greedy Strategy = iota
	// Minimum cuts along a maximum set of non-intersecting chords first and
	// yields the fewest rectangles possible.
	Minimum
)

// String names the strategy.
func (s Strategy) String() string {
	switch s {
	case Greedy:
		return "greedy"
	case Minimum:
		return "minimum"
	}
	return fmt.Sprintf("Strategy(%d)", uint8(s))
}

// PartnerKind tells whether a match pairs two reflex corners.
type PartnerKind uint8

const (
	// PartnerConcave is a partner that is itself a reflex corner of the remaining region.
	PartnerConcave PartnerKind = iota
	// PartnerBoundary is any other lattice node.
	PartnerBoundary
)

// String names the kind.
func (k PartnerKind) String() string {
	if k == PartnerConcave {
		return "concave"
	}
	return "boundary"
}

// Match is one viable way to resolve a reflex corner: carve Rect, the box
// spanned by From and Point.
type Match struct {
	From      geometry.Point
	Point     geometry.Point
	Rect      geometry.Rect
	Kind      PartnerKind
	CutLength int // total length of the cuts the carve adds
	Resolved  int // net decrease in reflex corners, always > 0
}

// Result is the outcome of Solve.
type Result struct {
	Edges      []geometry.Segment
	Rectangles []geometry.Rect
	Strategy   Strategy
	Iterations int
	Chords     int // chords joining two concave vertices, Minimum only
}
