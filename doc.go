// Package shapely cuts rectilinear (orthogonal) polygons into rectangles
// with few internal cuts.
//
// What is inside?
//
//	geometry/  - integer points, segments, boxes and the Polygon model:
//	             validation, concave/convex classification, R-tree edge
//	             index and ray casting
//	cellgrid/  - the lattice spanned by the vertex coordinates: inside
//	             cells, region masks, walls and face reconstruction
//	partition/ - Partition/Solve with the Greedy and Minimum strategies,
//	             the step-by-step State, GridPoints and Rectangles
//	matching/  - bipartite maximum matching (Dinic phases) and König
//	             covers used by the Minimum strategy
//	builder/   - deterministic fixtures: cell pictures, L/T/plus shapes,
//	             staircases, combs and block letters
//	importer/  - outlines from DXF drawings and XLSX sheets
//	export/    - DXF drawings of outline plus cuts, XLSX cut lists
//
// Quick start:
//
//	p := geometry.FromXY(0, 0, 2, 0, 2, 1, 1, 1, 1, 2, 0, 2)
//	cuts, err := partition.Partition(p) // [(0,1)-(1,1)]
//
// Conventions:
//
//   - Coordinates are ints; no predicate uses floating point.
//   - Invalid input is an error wrapping geometry.ErrInvalidPolygon, never a
//     panic. Option constructors panic on meaningless values.
//   - Every call is synchronous and self-contained; polygons are immutable
//     and safe to share between goroutines.
//
// See examples/floorplan for an end-to-end run from glyph to DXF and XLSX.
package shapely
