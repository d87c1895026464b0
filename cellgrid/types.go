// SPDX-License-Identifier: MIT

package cellgrid

import "errors"

// Sentinel errors for cellgrid operations.
var (
	// ErrInvalidPolygon indicates the source polygon is not a simple orthogonal polygon.
	ErrInvalidPolygon = errors.New("cellgrid: invalid polygon")
	// ErrOffLattice indicates a wall that does not run between lattice nodes.
	ErrOffLattice = errors.New("cellgrid: segment is not on the lattice")
	// ErrNotRectangular indicates a face that does not fill its bounding box.
	ErrNotRectangular = errors.New("cellgrid: face is not a rectangle")
)

// Quadrant bits reported by Occupancy, one per cell around a node.
const (
	QuadNE uint8 = 1 << iota // cell (i, j)
	QuadNW                   // cell (i-1, j)
	QuadSW                   // cell (i-1, j-1)
	QuadSE                   // cell (i, j-1)
)

// Grid is the compressed lattice of a polygon. Width and Height count cells.
type Grid struct {
	Width, Height int
	Xs, Ys        []int

	inside Mask
	hwall  []bool // unit edge (i,j)-(i+1,j) at j*Width+i
	vwall  []bool // unit edge (i,j)-(i,j+1) at j*(Width+1)+i
}

// Mask is a set of cells of a Grid, stored as a row-major bitset.
type Mask struct {
	w, h int
	bits []uint64
}
