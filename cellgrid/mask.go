// SPDX-License-Identifier: MIT

package cellgrid

import "math/bits"

// NewMask returns an empty mask sized to g.
func (g *Grid) NewMask() Mask {
	n := g.Width * g.Height
	return Mask{w: g.Width, h: g.Height, bits: make([]uint64, (n+63)/64)}
}

// Clone returns an independent copy of m.
func (m Mask) Clone() Mask {
	cp := make([]uint64, len(m.bits))
	copy(cp, m.bits)
	return Mask{w: m.w, h: m.h, bits: cp}
}

// Has reports whether cell (i, j) is in m. Cells outside the grid never are.
func (m Mask) Has(i, j int) bool {
	if i < 0 || i >= m.w || j < 0 || j >= m.h {
		return false
	}
	k := j*m.w + i
	return m.bits[k>>6]&(1<<(k&63)) != 0
}

// Set adds cell (i, j).
func (m Mask) Set(i, j int) {
	k := j*m.w + i
	m.bits[k>>6] |= 1 << (k & 63)
}

// Clear removes cell (i, j).
func (m Mask) Clear(i, j int) {
	k := j*m.w + i
	m.bits[k>>6] &^= 1 << (k & 63)
}

// ClearBlock removes cells [i0,i1)×[j0,j1).
func (m Mask) ClearBlock(i0, j0, i1, j1 int) {
	for j := j0; j < j1; j++ {
		for i := i0; i < i1; i++ {
			m.Clear(i, j)
		}
	}
}

// Count returns the number of cells in m.
func (m Mask) Count() int {
	c := 0
	for _, w := range m.bits {
		c += bits.OnesCount64(w)
	}
	return c
}

// Empty reports whether m has no cells.
func (m Mask) Empty() bool {
	for _, w := range m.bits {
		if w != 0 {
			return false
		}
	}
	return true
}

// Occupancy reports which of the four cells around node (i, j) are in m.
func Occupancy(m Mask, i, j int) (count int, quadrants uint8) {
	if m.Has(i, j) {
		quadrants |= QuadNE
	}
	if m.Has(i-1, j) {
		quadrants |= QuadNW
	}
	if m.Has(i-1, j-1) {
		quadrants |= QuadSW
	}
	if m.Has(i, j-1) {
		quadrants |= QuadSE
	}
	return bits.OnesCount8(quadrants), quadrants
}

// IsReflex reports whether node (i, j) is a reflex corner of the region m.
func IsReflex(m Mask, i, j int) bool {
	c, _ := Occupancy(m, i, j)
	return c == 3
}

// MissingQuadrant returns the signs (sx, sy) pointing into the one cell
// around a reflex node that is not in the region: (+1,+1) for NE, (−1,+1)
// for NW, (−1,−1) for SW, (+1,−1) for SE. ok is false for non-reflex nodes.
func MissingQuadrant(m Mask, i, j int) (sx, sy int, ok bool) {
	c, q := Occupancy(m, i, j)
	if c != 3 {
		return 0, 0, false
	}
	switch {
	case q&QuadNE == 0:
		return 1, 1, true
	case q&QuadNW == 0:
		return -1, 1, true
	case q&QuadSW == 0:
		return -1, -1, true
	default:
		return 1, -1, true
	}
}

// PrefixSum holds 2D prefix sums of a mask.
type PrefixSum struct {
	w   int
	sum []int // (w+1)×(h+1), sum[j*(w+1)+i] counts cells [0,i)×[0,j)
}

// NewPrefixSum builds prefix sums over m.
func NewPrefixSum(m Mask) *PrefixSum {
	w1 := m.w + 1
	ps := &PrefixSum{w: m.w, sum: make([]int, w1*(m.h+1))}
	for j := 0; j < m.h; j++ {
		for i := 0; i < m.w; i++ {
			v := 0
			if m.Has(i, j) {
				v = 1
			}
			ps.sum[(j+1)*w1+i+1] = v + ps.sum[j*w1+i+1] + ps.sum[(j+1)*w1+i] - ps.sum[j*w1+i]
		}
	}
	return ps
}

// Count returns how many cells of [i0,i1)×[j0,j1) are in the mask.
func (ps *PrefixSum) Count(i0, j0, i1, j1 int) int {
	w1 := ps.w + 1
	return ps.sum[j1*w1+i1] - ps.sum[j0*w1+i1] - ps.sum[j1*w1+i0] + ps.sum[j0*w1+i0]
}

// Full reports whether every cell of [i0,i1)×[j0,j1) is in the mask.
// Empty blocks are never full.
func (ps *PrefixSum) Full(i0, j0, i1, j1 int) bool {
	if i1 <= i0 || j1 <= j0 {
		return false
	}
	return ps.Count(i0, j0, i1, j1) == (i1-i0)*(j1-j0)
}
