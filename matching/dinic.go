// SPDX-License-Identifier: MIT

package matching

// unreached is the level of a left vertex not yet reached by the phase BFS.
const unreached = -1

// MaxMatching computes a maximum matching of g.
//
// Steps:
//  1. Validate g and normalise options.
//  2. Repeat until no augmenting path exists:
//     a. Check for cancellation.
//     b. BFS from every free left vertex over alternating paths to assign
//     levels; stop when a free right vertex is reachable.
//     c. DFS from every free left vertex along strictly increasing levels,
//     advancing a per-vertex iterator so every edge is tried once per phase.
//  3. Return the pairs.
//
// Complexity:
//
//	Time:   O(E·√V).
//	Memory: O(V).
func MaxMatching(g Graph, opts Options) (Matching, error) {
	if err := g.Validate(); err != nil {
		return Matching{}, err
	}
	opts.normalize()
	ctx := opts.Ctx

	m := Matching{
		PairLeft:  make([]int, g.Left),
		PairRight: make([]int, g.Right),
	}
	for u := range m.PairLeft {
		m.PairLeft[u] = Free
	}
	for v := range m.PairRight {
		m.PairRight[v] = Free
	}

	level := make([]int, g.Left)
	iter := make([]int, g.Left)
	phase := 0
	for {
		if err := ctx.Err(); err != nil {
			return m, err
		}
		if !buildLevels(g, m, level) {
			break
		}
		for u := range iter {
			iter[u] = 0
		}
		pushed := 0
		for u := 0; u < g.Left; u++ {
			if m.PairLeft[u] == Free && augment(g, &m, level, iter, u) {
				pushed++
			}
		}
		m.Size += pushed
		phase++
		if opts.Verbose {
			opts.Logger.Debug("matching phase", "phase", phase, "augmented", pushed, "size", m.Size)
		}
		if pushed == 0 {
			break
		}
	}

	return m, nil
}

// buildLevels runs the phase BFS and reports whether a free right vertex is
// reachable by an alternating path.
func buildLevels(g Graph, m Matching, level []int) bool {
	queue := make([]int, 0, g.Left)
	for u := range level {
		if m.PairLeft[u] == Free {
			level[u] = 0
			queue = append(queue, u)
		} else {
			level[u] = unreached
		}
	}

	found := false
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for _, v := range g.Adj[u] {
			w := m.PairRight[v]
			if w == Free {
				found = true
				continue
			}
			if level[w] == unreached {
				level[w] = level[u] + 1
				queue = append(queue, w)
			}
		}
	}

	return found
}

// augment searches one augmenting path from left vertex u in the level graph
// and flips it on success.
func augment(g Graph, m *Matching, level, iter []int, u int) bool {
	for ; iter[u] < len(g.Adj[u]); iter[u]++ {
		v := g.Adj[u][iter[u]]
		w := m.PairRight[v]
		if w == Free || (level[w] == level[u]+1 && augment(g, m, level, iter, w)) {
			m.PairLeft[u] = v
			m.PairRight[v] = u
			iter[u]++
			return true
		}
	}
	level[u] = unreached

	return false
}
