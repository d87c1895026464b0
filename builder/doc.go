// SPDX-License-Identifier: MIT
// Package: shapely/builder
//
// Package builder constructs deterministic rectilinear polygons for tests,
// examples and benchmarks.
//
// Two families are offered:
//
//   - Cell pictures: FromCells traces the outline of a set of unit cells
//     drawn as strings ('#' filled, '.' or ' ' empty, row 0 on top). The set
//     must be 4-connected and free of holes and diagonal pinches.
//   - Parametric shapes: Rectangle, LShape, TShape, Plus, Staircase, Comb
//     and the block letters of Glyph.
//
// Every constructor returns a counter-clockwise *geometry.Polygon starting at
// its lowest-leftmost vertex, so results compare equal across calls.
// Functional options (WithUnit, WithOrigin) scale and translate the result;
// option constructors panic on meaningless values, constructors never do.
//
// Errors are sentinels prefixed with the constructor name:
//
//	_, err := builder.FromCells([]string{"#.", ".#"})
//	errors.Is(err, builder.ErrDisconnected) // true
package builder
