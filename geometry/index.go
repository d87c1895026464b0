// SPDX-License-Identifier: MIT

package geometry

import (
	"sort"

	"github.com/dhconnelly/rtreego"
)

// R-tree fan-out, the same bounds the arena index uses.
const (
	indexMinChildren = 25
	indexMaxChildren = 50
)

// pad widens integer boxes so that the tree's strict overlap test behaves as
// a closed-box test on the lattice.
const pad = 0.25

// indexedEdge is the rtreego.Spatial stored per boundary edge.
type indexedEdge struct {
	id  int
	seg Segment
	box rtreego.Rect
}

func (e *indexedEdge) Bounds() rtreego.Rect { return e.box }

// EdgeIndex is an R-tree over the boundary edges of a polygon.
type EdgeIndex struct {
	tree  *rtreego.Rtree
	edges []Segment
}

// NewEdgeIndex indexes segs; the position in segs is the edge id.
func NewEdgeIndex(segs []Segment) *EdgeIndex {
	objs := make([]rtreego.Spatial, 0, len(segs))
	for i, s := range segs {
		objs = append(objs, &indexedEdge{id: i, seg: s, box: paddedRect(s.Bounds())})
	}
	cp := make([]Segment, len(segs))
	copy(cp, segs)

	return &EdgeIndex{
		tree:  rtreego.NewTree(2, indexMinChildren, indexMaxChildren, objs...),
		edges: cp,
	}
}

// Len returns the number of indexed edges.
func (x *EdgeIndex) Len() int { return len(x.edges) }

// Edge returns the segment with the given id.
func (x *EdgeIndex) Edge(id int) Segment { return x.edges[id] }

// Query returns the ids of edges whose closed bounds intersect box, ascending.
func (x *EdgeIndex) Query(box Rect) []int {
	hits := x.tree.SearchIntersect(paddedRect(box))
	ids := make([]int, 0, len(hits))
	for _, h := range hits {
		ids = append(ids, h.(*indexedEdge).id)
	}
	sort.Ints(ids)

	return ids
}

// EdgeIndex returns the polygon's edge index, built on first use.
func (p *Polygon) EdgeIndex() *EdgeIndex {
	p.indexOnce.Do(func() {
		p.index = NewEdgeIndex(p.Edges())
	})
	return p.index
}

func paddedRect(r Rect) rtreego.Rect {
	lo := rtreego.Point{float64(r.MinX) - pad, float64(r.MinY) - pad}
	hi := rtreego.Point{float64(r.MaxX) + pad, float64(r.MaxY) + pad}
	box, _ := rtreego.NewRectFromPoints(lo, hi) // dimensions always match

	return box
}
