// SPDX-License-Identifier: MIT

package importer

import (
	"math"
	"sort"

	"github.com/pkg/errors"
	"github.com/yofu/dxf"
	"github.com/yofu/dxf/entity"

	"github.com/dvirbo/shapely/geometry"
)

// ReadDXF reads every closed rectilinear outline of a DXF file with the
// default options, largest area first.
func ReadDXF(path string) ([]*geometry.Polygon, error) {
	return DefaultOptions().ReadDXF(path)
}

// ReadDXF reads every closed rectilinear outline of a DXF file, largest area
// first. Entities other than LWPOLYLINE and LINE are ignored.
func (o Options) ReadDXF(path string) ([]*geometry.Polygon, error) {
	drawing, err := dxf.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot open DXF file (%s)", path)
	}

	var (
		rings [][]geometry.Point
		segs  []geometry.Segment
	)
	for _, ent := range drawing.Entities() {
		switch e := ent.(type) {
		case *entity.LwPolyline:
			pts, err := o.lwPolyline(e)
			if err != nil {
				return nil, errors.Wrapf(err, "%s: LWPOLYLINE", path)
			}
			if e.Closed {
				rings = append(rings, pts)
				continue
			}
			for i := 1; i < len(pts); i++ {
				segs = append(segs, geometry.Seg(pts[i-1], pts[i]))
			}

		case *entity.Line:
			a, err := o.point(e.Start[0], e.Start[1])
			if err != nil {
				return nil, errors.Wrapf(err, "%s: LINE", path)
			}
			b, err := o.point(e.End[0], e.End[1])
			if err != nil {
				return nil, errors.Wrapf(err, "%s: LINE", path)
			}
			if a != b {
				segs = append(segs, geometry.Seg(a, b))
			}
		}
	}
	rings = append(rings, chain(segs)...)
	if len(rings) == 0 {
		return nil, errors.Wrapf(ErrNoShapes, "%s", path)
	}

	out := make([]*geometry.Polygon, 0, len(rings))
	for i, r := range rings {
		p, err := outline(r)
		if err != nil {
			return nil, errors.Wrapf(err, "%s: outline %d", path, i)
		}
		out = append(out, p)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Area() > out[j].Area() })

	return out, nil
}

func (o Options) lwPolyline(lw *entity.LwPolyline) ([]geometry.Point, error) {
	pts := make([]geometry.Point, 0, len(lw.Vertices))
	for i, v := range lw.Vertices {
		if i < len(lw.Bulges) && math.Abs(lw.Bulges[i]) > 1e-9 {
			return nil, errors.Wrapf(ErrCurvedEdge, "vertex %d", i)
		}
		q, err := o.point(v[0], v[1])
		if err != nil {
			return nil, errors.Wrapf(err, "vertex %d", i)
		}
		pts = append(pts, q)
	}
	return pts, nil
}

// chain joins segments sharing endpoints into closed rings, in input order.
// Chains that do not close are dropped.
func chain(segs []geometry.Segment) [][]geometry.Point {
	at := make(map[geometry.Point][]int)
	for i, s := range segs {
		at[s.A] = append(at[s.A], i)
		at[s.B] = append(at[s.B], i)
	}
	used := make([]bool, len(segs))

	var rings [][]geometry.Point
	for i := range segs {
		if used[i] {
			continue
		}
		used[i] = true
		start, tail := segs[i].A, segs[i].B
		ring := []geometry.Point{start}
		for tail != start {
			ring = append(ring, tail)
			next := -1
			for _, k := range at[tail] {
				if !used[k] {
					next = k
					break
				}
			}
			if next < 0 {
				break
			}
			used[next] = true
			if segs[next].A == tail {
				tail = segs[next].B
			} else {
				tail = segs[next].A
			}
		}
		if tail == start && len(ring) >= 3 {
			rings = append(rings, ring)
		}
	}
	return rings
}
