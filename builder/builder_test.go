package builder_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dvirbo/shapely/builder"
	"github.com/dvirbo/shapely/geometry"
)

func TestFromCells_TracesCounterClockwise(t *testing.T) {
	p, err := builder.FromCells([]string{
		"#.",
		"##",
	})
	require.NoError(t, err)
	assert.Equal(t, geometry.Points(0, 0, 2, 0, 2, 1, 1, 1, 1, 2, 0, 2), p.Vertices())
	assert.Equal(t, geometry.CounterClockwise, p.Winding())
	assert.NoError(t, p.Validate())
}

func TestFromCells_DropsCollinearNodes(t *testing.T) {
	p, err := builder.FromCells([]string{"###", "###"})
	require.NoError(t, err)
	assert.Equal(t, geometry.Points(0, 0, 3, 0, 3, 2, 0, 2), p.Vertices())
	assert.True(t, p.IsRectangle())
}

func TestFromCells_Errors(t *testing.T) {
	cases := []struct {
		name string
		rows []string
		want error
	}{
		{"Nil", nil, builder.ErrEmptyShape},
		{"Blank", []string{"..", "  "}, builder.ErrEmptyShape},
		{"BadChar", []string{"#x"}, builder.ErrBadCell},
		{"Disconnected", []string{"#.", ".#"}, builder.ErrDisconnected},
		{"Hole", []string{"###", "#.#", "###"}, builder.ErrHasHole},
		{"Pinched", []string{"##.", "#.#", "###"}, builder.ErrPinched},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := builder.FromCells(tc.rows)
			require.ErrorIs(t, err, tc.want)
			assert.Nil(t, p)
			assert.True(t, strings.HasPrefix(err.Error(), builder.MethodFromCells+": "), err.Error())
		})
	}
}

func TestShapes_AreValid(t *testing.T) {
	cases := []struct {
		name    string
		build   func() (*geometry.Polygon, error)
		n       int
		area    int64
		concave int
	}{
		{"Rectangle", func() (*geometry.Polygon, error) { return builder.Rectangle(3, 2) }, 4, 6, 0},
		{"LShape", func() (*geometry.Polygon, error) { return builder.LShape(4, 3, 1) }, 6, 6, 1},
		{"TShape", func() (*geometry.Polygon, error) { return builder.TShape(8, 6, 4, 2) }, 8, 32, 2},
		{"Plus", func() (*geometry.Polygon, error) { return builder.Plus(1, 1) }, 12, 5, 4},
		{"Staircase", func() (*geometry.Polygon, error) { return builder.Staircase(3, 1) }, 8, 6, 2},
		{"StaircaseOne", func() (*geometry.Polygon, error) { return builder.Staircase(1, 2) }, 4, 4, 0},
		{"Comb", func() (*geometry.Polygon, error) { return builder.Comb(3, 1, 2) }, 12, 11, 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := tc.build()
			require.NoError(t, err)
			require.NoError(t, p.Validate())
			assert.Equal(t, tc.n, p.Len())
			assert.Equal(t, tc.area, p.Area())
			assert.Len(t, p.ConcavePoints(), tc.concave)
			assert.Equal(t, geometry.CounterClockwise, p.Winding())
			assert.Equal(t, geometry.Pt(0, 0), p.Bounds().Min())
		})
	}
}

func TestTShape_MatchesHandDrawnTee(t *testing.T) {
	p, err := builder.TShape(8, 6, 4, 2)
	require.NoError(t, err)
	want := geometry.New(geometry.Points(2, 0, 6, 0, 6, 4, 8, 4, 8, 6, 0, 6, 0, 4, 2, 4)).CCW()
	assert.Equal(t, want.Vertices(), p.Vertices())
}

func TestShapes_TooSmall(t *testing.T) {
	cases := map[string]func() (*geometry.Polygon, error){
		"Rectangle": func() (*geometry.Polygon, error) { return builder.Rectangle(0, 2) },
		"LShape":    func() (*geometry.Polygon, error) { return builder.LShape(2, 5, 2) },
		"TShape":    func() (*geometry.Polygon, error) { return builder.TShape(5, 6, 4, 2) },
		"Plus":      func() (*geometry.Polygon, error) { return builder.Plus(0, 1) },
		"Staircase": func() (*geometry.Polygon, error) { return builder.Staircase(2, 0) },
		"Comb":      func() (*geometry.Polygon, error) { return builder.Comb(0, 1, 1) },
	}
	for name, build := range cases {
		t.Run(name, func(t *testing.T) {
			p, err := build()
			require.ErrorIs(t, err, builder.ErrTooSmall)
			assert.Nil(t, p)
			assert.Contains(t, err.Error(), name+": ")
		})
	}
}

func TestGlyph_AllLettersValid(t *testing.T) {
	areas := map[rune]int64{'E': 18, 'F': 14, 'H': 17, 'L': 11, 'T': 11, 'U': 17, 'Z': 19}
	for _, r := range builder.Glyphs() {
		t.Run(string(r), func(t *testing.T) {
			p, err := builder.Glyph(r)
			require.NoError(t, err)
			require.NoError(t, p.Validate())
			assert.Equal(t, areas[r], p.Area())
			assert.Equal(t, geometry.Rect{MaxX: 5, MaxY: 7}, p.Bounds())
		})
	}
}

func TestGlyph_CaseAndUnknown(t *testing.T) {
	lower, err := builder.Glyph('e')
	require.NoError(t, err)
	upper, err := builder.Glyph('E')
	require.NoError(t, err)
	assert.Equal(t, upper.Vertices(), lower.Vertices())
	assert.Len(t, upper.ConcavePoints(), 4)

	_, err = builder.Glyph('Q')
	assert.ErrorIs(t, err, builder.ErrUnknownGlyph)
}

func TestOptions_UnitAndOrigin(t *testing.T) {
	p, err := builder.Rectangle(1, 2, builder.WithUnit(3), builder.WithOrigin(geometry.Pt(5, -1)))
	require.NoError(t, err)
	assert.Equal(t, geometry.Rect{MinX: 5, MinY: -1, MaxX: 8, MaxY: 5}, p.Bounds())

	q, err := builder.FromCells([]string{"#.", "##"}, builder.WithUnit(2))
	require.NoError(t, err)
	assert.Equal(t, int64(12), q.Area())
}

func TestScale(t *testing.T) {
	p, err := builder.LShape(2, 2, 1)
	require.NoError(t, err)
	s := builder.Scale(p, 4)
	assert.Equal(t, 16*p.Area(), s.Area())
	assert.Equal(t, p.Len(), s.Len())
}

func TestOptions_PanicOnNonsense(t *testing.T) {
	assert.Panics(t, func() { builder.WithUnit(0) })
	p, _ := builder.Rectangle(1, 1)
	assert.Panics(t, func() { builder.Scale(p, 0) })
}
