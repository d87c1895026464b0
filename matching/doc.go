// SPDX-License-Identifier: MIT

// Package matching solves maximum bipartite matching and the problems that
// follow from it by König's theorem: minimum vertex cover and maximum
// independent set.
//
// What:
//
//   - MaxMatching: Dinic's algorithm specialised to the unit network
//     source→Left→Right→sink. Each phase builds a level graph by BFS from the
//     free left vertices, then sends a blocking flow of vertex-disjoint
//     augmenting paths by DFS with per-vertex edge iterators.
//   - MinVertexCover: König's construction from the alternating-path search
//     rooted at free left vertices.
//   - MaxIndependentSet: the complement of the minimum vertex cover.
//
// Why:
//
//   - In a rectilinear polygon the horizontal and vertical chords between
//     concave vertices form a bipartite conflict graph. The largest set of
//     pairwise non-intersecting chords is a maximum independent set there.
//
// Complexity:
//
//   - MaxMatching:       O(E·√V) time, O(V + E) memory.
//   - MinVertexCover:    O(V + E).
//   - MaxIndependentSet: O(E·√V).
//
// Options:
//
//   - Ctx: cancellation, checked between phases (default context.Background()).
//   - Verbose: log every phase through Logger.
//   - Logger: a *slog.Logger; nil discards.
//
// Errors:
//
//   - ErrBadVertex: an adjacency entry names a right vertex out of range.
//   - ErrSizeMismatch: len(Adj) differs from Left.
//   - context errors from Ctx.
package matching
