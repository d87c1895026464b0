// SPDX-License-Identifier: MIT

package cellgrid

import (
	"fmt"

	"github.com/dvirbo/shapely/geometry"
)

// AddWall marks every unit lattice edge along s.
func (g *Grid) AddWall(s geometry.Segment) error {
	i0, j0, ok0 := g.NodeOf(s.A)
	i1, j1, ok1 := g.NodeOf(s.B)
	if !ok0 || !ok1 || !s.AxisAligned() {
		return fmt.Errorf("AddWall %v: %w", s, ErrOffLattice)
	}
	if i0 > i1 {
		i0, i1 = i1, i0
	}
	if j0 > j1 {
		j0, j1 = j1, j0
	}
	if s.Horizontal() {
		for i := i0; i < i1; i++ {
			g.hwall[j0*g.Width+i] = true
		}
		return nil
	}
	for j := j0; j < j1; j++ {
		g.vwall[j*(g.Width+1)+i0] = true
	}

	return nil
}

// ClearWalls removes every wall.
func (g *Grid) ClearWalls() {
	for k := range g.hwall {
		g.hwall[k] = false
	}
	for k := range g.vwall {
		g.vwall[k] = false
	}
}

// HWall reports whether the unit edge from node (i, j) to (i+1, j) is walled.
func (g *Grid) HWall(i, j int) bool {
	if i < 0 || i >= g.Width || j < 0 || j > g.Height {
		return false
	}
	return g.hwall[j*g.Width+i]
}

// VWall reports whether the unit edge from node (i, j) to (i, j+1) is walled.
func (g *Grid) VWall(i, j int) bool {
	if i < 0 || i > g.Width || j < 0 || j >= g.Height {
		return false
	}
	return g.vwall[j*(g.Width+1)+i]
}

// WallTouches reports whether any wall ends at or passes through node (i, j).
func (g *Grid) WallTouches(i, j int) bool {
	return g.HWall(i, j) || g.HWall(i-1, j) || g.VWall(i, j) || g.VWall(i, j-1)
}

// WallDegree counts the walled unit edges incident to node (i, j).
func (g *Grid) WallDegree(i, j int) int {
	d := 0
	for _, w := range [4]bool{g.HWall(i, j), g.HWall(i-1, j), g.VWall(i, j), g.VWall(i, j-1)} {
		if w {
			d++
		}
	}
	return d
}
