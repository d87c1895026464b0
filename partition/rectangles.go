// SPDX-License-Identifier: MIT

package partition

import (
	"errors"
	"fmt"

	"github.com/dvirbo/shapely/cellgrid"
	"github.com/dvirbo/shapely/geometry"
)

// Rectangles applies edges as cuts to p and returns the resulting faces in
// row-major discovery order. Every edge must be an axis-aligned segment lying
// in the interior of p apart from its endpoints (ErrEdgeOutside), every face
// must be a rectangle (ErrNotRectangular) and every cut must separate two
// different faces (ErrDanglingEdge). With no edges the polygon itself must be
// a rectangle.
func Rectangles(p *geometry.Polygon, edges []geometry.Segment) ([]geometry.Rect, error) {
	extra := make([]geometry.Point, 0, 2*len(edges))
	for _, e := range edges {
		extra = append(extra, e.A, e.B)
	}
	g, err := cellgrid.New(p, extra...)
	if err != nil {
		return nil, fmt.Errorf("Rectangles: %w", err)
	}

	for _, e := range edges {
		if !e.AxisAligned() || !interior(g, e) {
			return nil, fmt.Errorf("Rectangles: cut %v: %w", e, ErrEdgeOutside)
		}
		if err = g.AddWall(e); err != nil {
			return nil, fmt.Errorf("Rectangles: cut %v: %w", e, ErrEdgeOutside)
		}
	}

	faces, err := g.Faces()
	if errors.Is(err, cellgrid.ErrNotRectangular) {
		return nil, fmt.Errorf("Rectangles: %w", ErrNotRectangular)
	}
	if err != nil {
		return nil, fmt.Errorf("Rectangles: %w", err)
	}
	if err = checkDangling(g, faces); err != nil {
		return nil, err
	}

	return faces, nil
}

// interior reports whether every unit lattice edge of e has inside cells on
// both sides.
func interior(g *cellgrid.Grid, e geometry.Segment) bool {
	c := e.Canonical()
	i0, j0, ok0 := g.NodeOf(c.A)
	i1, j1, ok1 := g.NodeOf(c.B)
	if !ok0 || !ok1 {
		return false
	}
	if e.Horizontal() {
		for i := i0; i < i1; i++ {
			if !g.Inside(i, j0-1) || !g.Inside(i, j0) {
				return false
			}
		}
		return true
	}
	for j := j0; j < j1; j++ {
		if !g.Inside(i0-1, j) || !g.Inside(i0, j) {
			return false
		}
	}
	return true
}

// checkDangling rejects walls strictly inside a face.
func checkDangling(g *cellgrid.Grid, faces []geometry.Rect) error {
	for _, f := range faces {
		i0, j0, i1, j1, _ := g.Block(f)
		for j := j0 + 1; j < j1; j++ {
			for i := i0; i < i1; i++ {
				if g.HWall(i, j) {
					return fmt.Errorf("Rectangles: inside %v: %w", f, ErrDanglingEdge)
				}
			}
		}
		for i := i0 + 1; i < i1; i++ {
			for j := j0; j < j1; j++ {
				if g.VWall(i, j) {
					return fmt.Errorf("Rectangles: inside %v: %w", f, ErrDanglingEdge)
				}
			}
		}
	}
	return nil
}
