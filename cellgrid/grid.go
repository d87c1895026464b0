// SPDX-License-Identifier: MIT

package cellgrid

import (
	"fmt"
	"sort"

	"github.com/dvirbo/shapely/geometry"
)

// New builds the lattice of p and marks the cells inside it. Extra points
// contribute their coordinates to the lattice lines.
// Inside cells are found with one scanline per cell row: walking left to
// right, each vertical boundary edge spanning the row toggles the state.
func New(p *geometry.Polygon, extra ...geometry.Point) (*Grid, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPolygon, err)
	}

	xs := make([]int, 0, p.Len()+len(extra))
	ys := make([]int, 0, p.Len()+len(extra))
	for _, q := range append(p.Vertices(), extra...) {
		xs = append(xs, q.X)
		ys = append(ys, q.Y)
	}
	xs, ys = uniqueSorted(xs), uniqueSorted(ys)

	g := &Grid{
		Width:  len(xs) - 1,
		Height: len(ys) - 1,
		Xs:     xs,
		Ys:     ys,
	}
	g.inside = g.NewMask()
	g.hwall = make([]bool, g.Width*(g.Height+1))
	g.vwall = make([]bool, (g.Width+1)*g.Height)

	flip := make([]bool, g.Width+1)
	for j := 0; j < g.Height; j++ {
		for k := range flip {
			flip[k] = false
		}
		lo, hi := ys[j], ys[j+1]
		for _, e := range p.Edges() {
			if !e.Vertical() {
				continue
			}
			b := e.Bounds()
			if b.MinY <= lo && hi <= b.MaxY {
				i, _ := g.column(b.MinX)
				flip[i] = !flip[i]
			}
		}
		in := false
		for i := 0; i < g.Width; i++ {
			if flip[i] {
				in = !in
			}
			if in {
				g.inside.Set(i, j)
			}
		}
	}

	return g, nil
}

// InBounds reports whether cell (i, j) exists.
func (g *Grid) InBounds(i, j int) bool {
	return i >= 0 && i < g.Width && j >= 0 && j < g.Height
}

// Inside reports whether cell (i, j) lies inside the polygon.
func (g *Grid) Inside(i, j int) bool { return g.inside.Has(i, j) }

// InsideMask returns a fresh copy of the inside cells.
func (g *Grid) InsideMask() Mask { return g.inside.Clone() }

// Index maps cell (i, j) to its row-major index j*Width + i.
func (g *Grid) Index(i, j int) int { return j*g.Width + i }

// Coordinate converts a row-major cell index back to (i, j).
func (g *Grid) Coordinate(idx int) (i, j int) { return idx % g.Width, idx / g.Width }

// Point returns the plane coordinates of node (i, j).
func (g *Grid) Point(i, j int) geometry.Point {
	return geometry.Point{X: g.Xs[i], Y: g.Ys[j]}
}

// NodeOf returns the node indices of q; ok is false when q is not a lattice node.
func (g *Grid) NodeOf(q geometry.Point) (i, j int, ok bool) {
	i, okx := g.column(q.X)
	j, oky := g.row(q.Y)
	return i, j, okx && oky
}

// CellRect returns the plane rectangle covered by cell (i, j).
func (g *Grid) CellRect(i, j int) geometry.Rect {
	return geometry.Rect{MinX: g.Xs[i], MinY: g.Ys[j], MaxX: g.Xs[i+1], MaxY: g.Ys[j+1]}
}

// BlockRect returns the plane rectangle covered by cells [i0,i1)×[j0,j1).
func (g *Grid) BlockRect(i0, j0, i1, j1 int) geometry.Rect {
	return geometry.Rect{MinX: g.Xs[i0], MinY: g.Ys[j0], MaxX: g.Xs[i1], MaxY: g.Ys[j1]}
}

// Block converts a lattice-aligned rectangle to its cell range [i0,i1)×[j0,j1).
// ok is false when a corner is not a lattice node.
func (g *Grid) Block(r geometry.Rect) (i0, j0, i1, j1 int, ok bool) {
	i0, j0, ok0 := g.NodeOf(r.Min())
	i1, j1, ok1 := g.NodeOf(r.Max())
	return i0, j0, i1, j1, ok0 && ok1
}

// Nodes returns every lattice node, ordered by Point.Less.
func (g *Grid) Nodes() []geometry.Point {
	out := make([]geometry.Point, 0, len(g.Xs)*len(g.Ys))
	for _, x := range g.Xs {
		for _, y := range g.Ys {
			out = append(out, geometry.Point{X: x, Y: y})
		}
	}
	return out
}

func (g *Grid) column(x int) (int, bool) {
	i := sort.SearchInts(g.Xs, x)
	return i, i < len(g.Xs) && g.Xs[i] == x
}

func (g *Grid) row(y int) (int, bool) {
	j := sort.SearchInts(g.Ys, y)
	return j, j < len(g.Ys) && g.Ys[j] == y
}

func uniqueSorted(v []int) []int {
	sort.Ints(v)
	out := v[:0]
	for _, x := range v {
		if len(out) == 0 || x != out[len(out)-1] {
			out = append(out, x)
		}
	}
	return out
}
