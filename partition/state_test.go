package partition_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dvirbo/shapely/geometry"
	"github.com/dvirbo/shapely/partition"
)

func TestGridPoints(t *testing.T) {
	pts, err := partition.GridPoints(geometry.New(polygon1))
	require.NoError(t, err)
	assert.Equal(t, geometry.Points(2, 4, 2, 6, 6, 4, 6, 6), pts)

	pts, err = partition.GridPoints(geometry.New(lShape))
	require.NoError(t, err)
	assert.Equal(t, geometry.Points(0, 1, 1, 0), pts)

	pts, err = partition.GridPoints(geometry.New(polygon5))
	require.NoError(t, err)
	assert.Empty(t, pts)

	_, err = partition.GridPoints(geometry.New(polygon6))
	assert.ErrorIs(t, err, partition.ErrInvalidPolygon)
}

func TestGridPoints_NonEmptyWithConcavity(t *testing.T) {
	for i, pts := range [][]geometry.Point{polygon1, polygon2, polygon3, polygon4} {
		got, err := partition.GridPoints(geometry.New(pts))
		require.NoError(t, err)
		assert.NotEmpty(t, got, "polygon%d", i+1)
	}
}

func TestState_TeeStepByStep(t *testing.T) {
	st, err := partition.NewState(geometry.New(polygon1))
	require.NoError(t, err)
	require.False(t, st.Done())
	assert.Equal(t, geometry.Points(2, 4, 6, 4), st.ConcaveVertices())

	ms := st.FindMatchingPoint(geometry.Pt(2, 4))
	require.NotEmpty(t, ms)
	best := ms[0]
	assert.Equal(t, partition.Match{
		From:      geometry.Pt(2, 4),
		Point:     geometry.Pt(6, 0),
		Rect:      geometry.Rect{MinX: 2, MinY: 0, MaxX: 6, MaxY: 4},
		Kind:      partition.PartnerBoundary,
		CutLength: 4,
		Resolved:  2,
	}, best)
	for _, m := range ms {
		assert.Positive(t, m.Resolved)
		assert.NotEqual(t, m.From.X, m.Point.X)
		assert.NotEqual(t, m.From.Y, m.Point.Y)
	}

	want := []geometry.Segment{geometry.Seg(geometry.Pt(2, 4), geometry.Pt(6, 4))}
	assert.Equal(t, want, st.NewInternalEdges(best.Rect))

	cuts, err := st.Commit(best)
	require.NoError(t, err)
	assert.Equal(t, want, cuts)
	assert.True(t, st.Done())
	assert.Empty(t, st.ConcaveVertices())
	assert.Equal(t, want, st.Edges())
	assert.Equal(t, []geometry.Rect{best.Rect}, st.Blocked())
	assert.Equal(t, []geometry.Rect{{MinX: 0, MinY: 4, MaxX: 8, MaxY: 6}}, st.Remaining())

	_, err = st.Commit(best)
	assert.ErrorIs(t, err, partition.ErrStaleMatch)
}

func TestState_NewInternalEdgesOfStem(t *testing.T) {
	st, err := partition.NewState(geometry.New(polygon1))
	require.NoError(t, err)

	edges := st.NewInternalEdges(geometry.Rect{MinX: 2, MinY: 0, MaxX: 6, MaxY: 4})
	assert.NotEmpty(t, edges)

	// Off the lattice and degenerate boxes yield nothing.
	assert.Nil(t, st.NewInternalEdges(geometry.Rect{MinX: 1, MinY: 0, MaxX: 6, MaxY: 4}))
	assert.Nil(t, st.NewInternalEdges(geometry.Rect{MinX: 2, MinY: 4, MaxX: 6, MaxY: 4}))

	// The bar touches the stem only along y=4 and the rest is boundary.
	assert.Equal(t,
		[]geometry.Segment{geometry.Seg(geometry.Pt(2, 4), geometry.Pt(6, 4))},
		st.NewInternalEdges(geometry.Rect{MinX: 0, MinY: 4, MaxX: 8, MaxY: 6}))
}

func TestState_FindMatchingPointRejectsNonReflex(t *testing.T) {
	st, err := partition.NewState(geometry.New(polygon1))
	require.NoError(t, err)
	assert.Empty(t, st.FindMatchingPoint(geometry.Pt(2, 0)))
	assert.Empty(t, st.FindMatchingPoint(geometry.Pt(3, 3)))
	assert.Empty(t, st.FindMatchingPoint(geometry.Pt(100, 100)))
}

func TestState_PlusPrefersConcavePartner(t *testing.T) {
	st, err := partition.NewState(mustPlus(t))
	require.NoError(t, err)
	ms := st.FindMatchingPoint(geometry.Pt(1, 1))
	require.NotEmpty(t, ms)
	assert.Equal(t, partition.PartnerConcave, ms[0].Kind)
	assert.Equal(t, geometry.Pt(2, 2), ms[0].Point)
	assert.Equal(t, 4, ms[0].Resolved)
	for _, m := range ms[1:] {
		assert.Equal(t, partition.PartnerBoundary, m.Kind)
	}
}

func TestState_StaleAfterOverlappingCommit(t *testing.T) {
	st, err := partition.NewState(mustPlus(t))
	require.NoError(t, err)
	a := st.FindMatchingPoint(geometry.Pt(1, 1))[0]
	b := st.FindMatchingPoint(geometry.Pt(2, 2))[0]
	assert.Equal(t, a.Rect, b.Rect)

	_, err = st.Commit(a)
	require.NoError(t, err)
	_, err = st.Commit(b)
	assert.ErrorIs(t, err, partition.ErrStaleMatch)
	assert.Len(t, st.Remaining(), 4)
}

func TestNewState_Invalid(t *testing.T) {
	_, err := partition.NewState(geometry.New(polygon6))
	assert.ErrorIs(t, err, partition.ErrInvalidPolygon)
}
