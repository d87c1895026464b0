// SPDX-License-Identifier: MIT
// Package: shapely/builder
//
// cells.go - FromCells: trace the outline of a picture of unit cells.
//
// Algorithm:
//   1. Parse rows into a cell set; row 0 is the top row, so cell (c, r)
//      covers [c,c+1]×[H-1-r,H-r].
//   2. Check 4-connectivity with a BFS over filled cells.
//   3. Emit one directed unit edge per exposed cell side, interior on the
//      left. A lattice node with two outgoing edges is a pinch.
//   4. Walk the edges from the smallest start node. A connected, pinch-free
//      set whose walk leaves edges unvisited has a hole.
//   5. Keep only the nodes where the walk turns.
//
// Complexity: O(C) time and space for C filled cells.

package builder

import (
	"github.com/dvirbo/shapely/geometry"
)

type cell struct{ x, y int }

// FromCells traces the filled cells of rows into a counter-clockwise polygon.
func FromCells(rows []string, opts ...Option) (*geometry.Polygon, error) {
	cfg := newConfig(opts...)

	filled, err := parseCells(rows)
	if err != nil {
		return nil, err
	}
	if len(filled) == 0 {
		return nil, builderErrorf(MethodFromCells, ErrEmptyShape, "%d rows", len(rows))
	}
	if !connected(filled) {
		return nil, builderErrorf(MethodFromCells, ErrDisconnected, "%d cells", len(filled))
	}

	next, start, err := outlineEdges(filled)
	if err != nil {
		return nil, err
	}
	pts := trace(next, start)
	if len(pts) < len(next) {
		return nil, builderErrorf(MethodFromCells, ErrHasHole, "outline covers %d of %d edges", len(pts), len(next))
	}

	return cfg.apply(corners(pts)), nil
}

func parseCells(rows []string) (map[cell]bool, error) {
	h := len(rows)
	filled := make(map[cell]bool)
	for r, row := range rows {
		for c, ch := range row {
			switch ch {
			case '#':
				filled[cell{x: c, y: h - 1 - r}] = true
			case '.', ' ':
			default:
				return nil, builderErrorf(MethodFromCells, ErrBadCell, "%q at row %d col %d", ch, r, c)
			}
		}
	}
	return filled, nil
}

var neighbours = [4]cell{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}

func connected(filled map[cell]bool) bool {
	var start cell
	for c := range filled {
		start = c
		break
	}
	seen := map[cell]bool{start: true}
	queue := []cell{start}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		for _, d := range neighbours {
			n := cell{c.x + d.x, c.y + d.y}
			if filled[n] && !seen[n] {
				seen[n] = true
				queue = append(queue, n)
			}
		}
	}
	return len(seen) == len(filled)
}

// outlineEdges maps each boundary node to the node its outgoing unit edge
// reaches, and returns the smallest node by geometry.Point.Less.
func outlineEdges(filled map[cell]bool) (map[geometry.Point]geometry.Point, geometry.Point, error) {
	next := make(map[geometry.Point]geometry.Point)
	var start geometry.Point
	first := true
	add := func(a, b geometry.Point) error {
		if _, dup := next[a]; dup {
			return builderErrorf(MethodFromCells, ErrPinched, "at %v", a)
		}
		next[a] = b
		if first || a.Less(start) {
			start, first = a, false
		}
		return nil
	}

	for c := range filled {
		x, y := c.x, c.y
		sides := [4]struct {
			open bool
			a, b geometry.Point
		}{
			{!filled[cell{x, y - 1}], geometry.Pt(x, y), geometry.Pt(x+1, y)},
			{!filled[cell{x + 1, y}], geometry.Pt(x+1, y), geometry.Pt(x+1, y+1)},
			{!filled[cell{x, y + 1}], geometry.Pt(x+1, y+1), geometry.Pt(x, y+1)},
			{!filled[cell{x - 1, y}], geometry.Pt(x, y+1), geometry.Pt(x, y)},
		}
		for _, s := range sides {
			if !s.open {
				continue
			}
			if err := add(s.a, s.b); err != nil {
				return nil, geometry.Point{}, err
			}
		}
	}
	return next, start, nil
}

// trace walks the unit edges from start back to start.
func trace(next map[geometry.Point]geometry.Point, start geometry.Point) []geometry.Point {
	pts := []geometry.Point{start}
	for q := next[start]; q != start; q = next[q] {
		pts = append(pts, q)
	}
	return pts
}

// corners drops the nodes where the walk goes straight on.
func corners(pts []geometry.Point) []geometry.Point {
	n := len(pts)
	out := make([]geometry.Point, 0, n)
	for i, q := range pts {
		a, b := pts[(i+n-1)%n], pts[(i+1)%n]
		if (a.X == q.X && q.X == b.X) || (a.Y == q.Y && q.Y == b.Y) {
			continue
		}
		out = append(out, q)
	}
	return out
}
