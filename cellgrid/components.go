// SPDX-License-Identifier: MIT

package cellgrid

import (
	"fmt"

	"github.com/dvirbo/shapely/geometry"
)

// Components finds the 4-connected regions of m, never stepping across a
// wall. Each component lists row-major cell indices in BFS order; components
// appear in the order their first cell is met scanning row by row.
//
// Time:   O(W·H).
// Memory: O(W·H) for visited flags and output.
func (g *Grid) Components(m Mask) [][]int {
	seen := make([]bool, g.Width*g.Height)
	var comps [][]int

	for j := 0; j < g.Height; j++ {
		for i := 0; i < g.Width; i++ {
			if !m.Has(i, j) {
				continue
			}
			i0 := g.Index(i, j)
			if seen[i0] {
				continue
			}
			queue := []int{i0}
			seen[i0] = true
			var comp []int

			for qi := 0; qi < len(queue); qi++ {
				u := queue[qi]
				comp = append(comp, u)
				ux, uy := g.Coordinate(u)
				for _, v := range g.open(m, ux, uy) {
					if !seen[v] {
						seen[v] = true
						queue = append(queue, v)
					}
				}
			}
			comps = append(comps, comp)
		}
	}

	return comps
}

// open lists the neighbours of cell (i, j) in m reachable without crossing a wall.
func (g *Grid) open(m Mask, i, j int) []int {
	out := make([]int, 0, 4)
	if m.Has(i, j-1) && !g.HWall(i, j) {
		out = append(out, g.Index(i, j-1))
	}
	if m.Has(i+1, j) && !g.VWall(i+1, j) {
		out = append(out, g.Index(i+1, j))
	}
	if m.Has(i, j+1) && !g.HWall(i, j+1) {
		out = append(out, g.Index(i, j+1))
	}
	if m.Has(i-1, j) && !g.VWall(i, j) {
		out = append(out, g.Index(i-1, j))
	}
	return out
}

// ComponentRect returns the plane bounding box of a component and whether the
// component fills it.
func (g *Grid) ComponentRect(comp []int) (geometry.Rect, bool) {
	if len(comp) == 0 {
		return geometry.Rect{}, false
	}
	i0, j0 := g.Coordinate(comp[0])
	i1, j1 := i0+1, j0+1
	for _, c := range comp[1:] {
		i, j := g.Coordinate(c)
		i0, i1 = min(i0, i), max(i1, i+1)
		j0, j1 = min(j0, j), max(j1, j+1)
	}
	return g.BlockRect(i0, j0, i1, j1), len(comp) == (i1-i0)*(j1-j0)
}

// Faces splits the inside cells along the walls and returns each face as a
// rectangle, in component order.
func (g *Grid) Faces() ([]geometry.Rect, error) {
	comps := g.Components(g.inside)
	out := make([]geometry.Rect, 0, len(comps))
	for _, comp := range comps {
		r, full := g.ComponentRect(comp)
		if !full {
			return nil, fmt.Errorf("Faces: component at %v: %w", r, ErrNotRectangular)
		}
		out = append(out, r)
	}

	return out, nil
}
