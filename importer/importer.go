// SPDX-License-Identifier: MIT

package importer

import (
	"math"

	"github.com/pkg/errors"

	"github.com/dvirbo/shapely/geometry"
)

var (
	// ErrNonIntegral indicates a coordinate too far from an integer.
	ErrNonIntegral = errors.New("importer: coordinate is not integral")
	// ErrCurvedEdge indicates a polyline vertex with a non-zero bulge.
	ErrCurvedEdge = errors.New("importer: curved edge")
	// ErrNoShapes indicates a file without any closed outline.
	ErrNoShapes = errors.New("importer: no closed shapes")
	// ErrNoSheet indicates a workbook without the requested sheet.
	ErrNoSheet = errors.New("importer: sheet not found")
	// ErrBadRow indicates a spreadsheet row that is not an X, Y pair.
	ErrBadRow = errors.New("importer: malformed row")
)

// Options tunes coordinate snapping.
type Options struct {
	// Tolerance is the largest distance from an integer accepted when
	// snapping a coordinate.
	Tolerance float64
}

// DefaultOptions returns Tolerance 1e-6.
func DefaultOptions() Options {
	return Options{Tolerance: 1e-6}
}

// snap rounds v to the nearest integer within the tolerance.
func (o Options) snap(v float64) (int, error) {
	r := math.Round(v)
	if math.IsNaN(v) || math.Abs(v-r) > o.Tolerance {
		return 0, errors.Wrapf(ErrNonIntegral, "%g", v)
	}
	return int(r), nil
}

func (o Options) point(x, y float64) (geometry.Point, error) {
	px, err := o.snap(x)
	if err != nil {
		return geometry.Point{}, err
	}
	py, err := o.snap(y)
	if err != nil {
		return geometry.Point{}, err
	}
	return geometry.Pt(px, py), nil
}

// outline drops repeated and collinear points of a closed ring and validates
// the result.
func outline(pts []geometry.Point) (*geometry.Polygon, error) {
	ring := make([]geometry.Point, 0, len(pts))
	for _, q := range pts {
		if len(ring) == 0 || ring[len(ring)-1] != q {
			ring = append(ring, q)
		}
	}
	for len(ring) > 1 && ring[0] == ring[len(ring)-1] {
		ring = ring[:len(ring)-1]
	}

	for changed := true; changed && len(ring) > 2; {
		changed = false
		n := len(ring)
		for i := 0; i < n; i++ {
			a, q, b := ring[(i+n-1)%n], ring[i], ring[(i+1)%n]
			if (a.X == q.X && q.X == b.X) || (a.Y == q.Y && q.Y == b.Y) {
				ring = append(ring[:i], ring[i+1:]...)
				changed = true
				break
			}
		}
	}

	p := geometry.New(ring)
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}
