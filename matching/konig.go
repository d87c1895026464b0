// SPDX-License-Identifier: MIT

package matching

// MinVertexCover derives a minimum vertex cover from a maximum matching m of
// g. With Z the vertices reachable from free left vertices by alternating
// paths, the cover is (Left \ Z) ∪ (Right ∩ Z); its size equals m.Size.
func MinVertexCover(g Graph, m Matching) (left, right []bool) {
	zl, zr := alternatingReach(g, m)
	left = make([]bool, g.Left)
	right = make([]bool, g.Right)
	for u := range left {
		left[u] = !zl[u]
	}
	copy(right, zr)

	return left, right
}

// MaxIndependentSet returns a maximum independent set of g as membership
// flags: the complement of a minimum vertex cover.
func MaxIndependentSet(g Graph, opts Options) (left, right []bool, err error) {
	m, err := MaxMatching(g, opts)
	if err != nil {
		return nil, nil, err
	}
	cl, cr := MinVertexCover(g, m)
	left = make([]bool, g.Left)
	right = make([]bool, g.Right)
	for u := range left {
		left[u] = !cl[u]
	}
	for v := range right {
		right[v] = !cr[v]
	}

	return left, right, nil
}

func alternatingReach(g Graph, m Matching) (zl, zr []bool) {
	zl = make([]bool, g.Left)
	zr = make([]bool, g.Right)
	queue := make([]int, 0, g.Left)
	for u := 0; u < g.Left; u++ {
		if m.PairLeft[u] == Free {
			zl[u] = true
			queue = append(queue, u)
		}
	}
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for _, v := range g.Adj[u] {
			if zr[v] || m.PairLeft[u] == v {
				continue
			}
			zr[v] = true
			if w := m.PairRight[v]; w != Free && !zl[w] {
				zl[w] = true
				queue = append(queue, w)
			}
		}
	}

	return zl, zr
}
