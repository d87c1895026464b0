// SPDX-License-Identifier: MIT

// Package partition cuts a simple rectilinear polygon into rectangles with
// internal edges (cuts) and checks such cuts by reconstruction.
//
// # Strategies
//
//   - Greedy (default): repeatedly pick a reflex corner of the region still
//     to be partitioned, pair it with a lattice node so that the box between
//     them lies in the region and carving it removes reflex corners, and cut
//     that box off. Partners that are themselves reflex corners win, then the
//     carve that removes the most corners, then the shortest cut. Every step
//     strictly lowers the number of reflex corners, so a polygon with n
//     vertices needs at most n steps.
//   - Minimum: cut along a maximum set of pairwise disjoint chords between
//     concave vertices (maximum bipartite matching plus König's theorem, see
//     package matching), then give every concave vertex still unresolved a
//     single ray. The result has concave − chords + 1 rectangles, the fewest
//     possible.
//
// # API
//
//   - Partition(p, opts...) returns the cuts; nil for a rectangle.
//   - PartitionPolygon(p) is the same with every failure reported as nil.
//   - Solve(p, opts...) also returns the faces and run statistics.
//   - Rectangles(p, edges) applies arbitrary cuts and returns the faces, or
//     why they do not form a rectangle partition.
//   - GridPoints(p) lists where the fill rays of concave vertices end or meet.
//   - State exposes one greedy run step by step (ConcaveVertices,
//     FindMatchingPoint, NewInternalEdges, Commit).
//
// # Errors
//
//   - ErrInvalidPolygon (geometry.ErrInvalidPolygon): the input is not a simple
//     orthogonal polygon.
//   - ErrUnresolvableConcavity via *ConcavityError: a reflex corner has no
//     partner.
//   - ErrIterationLimit: WithMaxIterations was exceeded.
//   - ErrStaleMatch, ErrEdgeOutside, ErrNotRectangular, ErrDanglingEdge:
//     misuse of State or cuts that do not partition the polygon.
//
// # Concurrency
//
// All state lives in one call. A *geometry.Polygon may be partitioned from
// many goroutines at once; a *State must not be shared.
package partition
