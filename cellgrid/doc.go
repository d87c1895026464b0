// SPDX-License-Identifier: MIT

// Package cellgrid compresses a rectilinear polygon onto the lattice spanned
// by its vertex coordinates and answers region questions on that lattice.
//
// What:
//
//   - Grid: sorted distinct vertex abscissae Xs and ordinates Ys. Cell (i,j)
//     spans [Xs[i],Xs[i+1]]×[Ys[j],Ys[j+1]]; node (i,j) is (Xs[i],Ys[j]).
//     Each cell is either wholly inside or wholly outside the polygon.
//   - Mask: a bitset of cells describing a region (e.g. "not yet carved").
//   - Occupancy: which of the four cells around a node a mask covers. Three
//     covered quadrants make the node a reflex corner of the region.
//   - PrefixSum: O(1) "is this block entirely in the mask" queries.
//   - Walls: unit lattice edges marked along cut segments. Components and
//     Faces never cross a wall.
//
// Why:
//
//   - Every cut the partitioner may add runs along a lattice line between two
//     lattice nodes, so the whole search stays on an integer grid of at most
//     (n/2)² cells.
//
// Complexity:
//
//   - New:         O(n·H + W·H) time, O(W·H) memory.
//   - Occupancy:   O(1).
//   - PrefixSum:   O(W·H) to build, O(1) per query.
//   - Components:  O(W·H).
//
// Errors:
//
//   - ErrInvalidPolygon: New was given a polygon that fails validation.
//   - ErrOffLattice: a wall endpoint is not a lattice node or the segment is
//     not axis-aligned.
//   - ErrNotRectangular: a face of the walled region is not a rectangle.
//
// Concurrency:
//
//	Queries are read-only. AddWall mutates the grid; a Grid with walls must
//	not be shared between goroutines.
package cellgrid
