// SPDX-License-Identifier: MIT

// Package geometry holds the integer plane primitives and the rectilinear
// polygon model used by every other package of the module.
//
// What:
//
//   - Point, Segment and Rect: exact integer primitives with axis-aligned
//     predicates (touch, cross, overlap).
//   - Polygon: an immutable cyclic boundary. Its winding is measured once at
//     construction and applied as a sign, so vertex classification never
//     branches on orientation.
//   - Vertex classification: convex (90°) versus concave (270°) corners,
//     representative convex/concave points and the turn identity
//     convex − concave = 4 that every simple orthogonal polygon satisfies.
//   - EdgeIndex: an R-tree (github.com/dhconnelly/rtreego) over boundary edges
//     used for self-intersection checks and ray casting.
//
// Why:
//
//   - Integer coordinates keep every predicate exact; there is no epsilon
//     anywhere in the module.
//   - Validation is explicit (Validate / IsRectilinear). Nothing downstream
//     assumes rectilinearity without asking.
//
// Complexity:
//
//   - New:              O(n) time and memory.
//   - Validate:         O(n log n) expected (R-tree candidate search per edge).
//   - IsConcaveVertex:  O(1).
//   - CastRay:          O(log n + k) where k is the number of candidate edges.
//
// Errors:
//
//   - ErrInvalidPolygon: umbrella sentinel; every validation error wraps it.
//   - ErrTooFewVertices, ErrDuplicateVertex, ErrNotRectilinear,
//     ErrOddVertexCount, ErrSelfIntersecting: the specific causes.
//   - ErrTurnIdentity: CheckTurnIdentity found convex − concave ≠ 4.
//
// Concurrency:
//
//	A *Polygon is read-only after New; the lazily built edge index is guarded
//	by sync.Once, so one polygon may be shared by any number of goroutines.
package geometry
