package partition_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dvirbo/shapely/geometry"
	"github.com/dvirbo/shapely/partition"
)

func TestRectangles_Valid(t *testing.T) {
	p := geometry.New(lShape)
	rects, err := partition.Rectangles(p, []geometry.Segment{geometry.Seg(geometry.Pt(0, 1), geometry.Pt(1, 1))})
	require.NoError(t, err)
	assert.ElementsMatch(t, []geometry.Rect{
		{MinX: 0, MinY: 0, MaxX: 2, MaxY: 1},
		{MinX: 0, MinY: 1, MaxX: 1, MaxY: 2},
	}, rects)

	// A cut may end anywhere on an integer point, not only on vertex lines.
	sq := geometry.New(polygon5)
	rects, err = partition.Rectangles(sq, []geometry.Segment{geometry.Seg(geometry.Pt(4, 1), geometry.Pt(4, 9))})
	require.NoError(t, err)
	assert.Len(t, rects, 2)
	requirePartition(t, sq, rects)
}

func TestRectangles_RectangleWithoutCuts(t *testing.T) {
	rects, err := partition.Rectangles(geometry.New(polygon5), nil)
	require.NoError(t, err)
	assert.Equal(t, []geometry.Rect{{MinX: 1, MinY: 1, MaxX: 9, MaxY: 9}}, rects)
}

func TestRectangles_Errors(t *testing.T) {
	cases := []struct {
		name  string
		pts   []geometry.Point
		edges []geometry.Segment
		want  error
	}{
		{"NoCuts", lShape, nil, partition.ErrNotRectangular},
		{"AlongBoundary", lShape, []geometry.Segment{geometry.Seg(geometry.Pt(1, 1), geometry.Pt(2, 1))}, partition.ErrEdgeOutside},
		{"Diagonal", lShape, []geometry.Segment{geometry.Seg(geometry.Pt(0, 0), geometry.Pt(1, 1))}, partition.ErrEdgeOutside},
		{"FarAway", lShape, []geometry.Segment{geometry.Seg(geometry.Pt(5, 5), geometry.Pt(6, 5))}, partition.ErrEdgeOutside},
		{"Dangling", polygon5, []geometry.Segment{geometry.Seg(geometry.Pt(1, 4), geometry.Pt(5, 4))}, partition.ErrDanglingEdge},
		{"Invalid", polygon6, nil, partition.ErrInvalidPolygon},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rects, err := partition.Rectangles(geometry.New(tc.pts), tc.edges)
			assert.Nil(t, rects)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestRectangles_OfPartitionEdges(t *testing.T) {
	for i, pts := range [][]geometry.Point{polygon1, polygon2, polygon3, polygon4} {
		p := geometry.New(pts)
		edges, err := partition.Partition(p)
		require.NoError(t, err)
		rects, err := partition.Rectangles(p, edges)
		require.NoError(t, err, "polygon%d", i+1)
		requirePartition(t, p, rects)
	}
}
