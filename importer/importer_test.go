package importer_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"github.com/yofu/dxf"
	"github.com/yofu/dxf/drawing"

	"github.com/dvirbo/shapely/geometry"
	"github.com/dvirbo/shapely/importer"
)

//----------------------------------------------------------------------------//
// DXF
//----------------------------------------------------------------------------//

// saveDXF writes a drawing built by draw into a temporary file.
func saveDXF(t *testing.T, draw func(d *drawing.Drawing)) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "shape.dxf")
	d := dxf.NewDrawing()
	draw(d)
	require.NoError(t, d.SaveAs(path))
	return path
}

func TestReadDXF_ClosedPolyline(t *testing.T) {
	path := saveDXF(t, func(d *drawing.Drawing) {
		_, err := d.LwPolyline(true,
			[]float64{0, 0}, []float64{2, 0}, []float64{2, 1},
			[]float64{1, 1}, []float64{1, 2}, []float64{0, 2})
		require.NoError(t, err)
	})

	ps, err := importer.ReadDXF(path)
	require.NoError(t, err)
	require.Len(t, ps, 1)
	assert.Equal(t, int64(3), ps[0].Area())
	assert.Equal(t, 6, ps[0].Len())
}

func TestReadDXF_ChainedLinesWithCollinearSplit(t *testing.T) {
	// A 4×2 rectangle drawn as five lines in scrambled order and direction;
	// the bottom edge is split at x=2.
	path := saveDXF(t, func(d *drawing.Drawing) {
		for _, l := range [][4]float64{
			{4, 2, 0, 2}, {2, 0, 0, 0}, {0, 0, 0, 2}, {2, 0, 4, 0}, {4, 0, 4, 2},
		} {
			_, err := d.Line(l[0], l[1], 0, l[2], l[3], 0)
			require.NoError(t, err)
		}
		// An open stroke is ignored.
		_, err := d.Line(10, 10, 0, 12, 10, 0)
		require.NoError(t, err)
	})

	ps, err := importer.ReadDXF(path)
	require.NoError(t, err)
	require.Len(t, ps, 1)
	assert.True(t, ps[0].IsRectangle())
	assert.Equal(t, geometry.Rect{MaxX: 4, MaxY: 2}, ps[0].Bounds())
}

func TestReadDXF_LargestFirst(t *testing.T) {
	path := saveDXF(t, func(d *drawing.Drawing) {
		_, err := d.LwPolyline(true, []float64{0, 0}, []float64{1, 0}, []float64{1, 1}, []float64{0, 1})
		require.NoError(t, err)
		_, err = d.LwPolyline(true, []float64{5, 5}, []float64{9, 5}, []float64{9, 8}, []float64{5, 8})
		require.NoError(t, err)
	})

	ps, err := importer.ReadDXF(path)
	require.NoError(t, err)
	require.Len(t, ps, 2)
	assert.Equal(t, int64(12), ps[0].Area())
	assert.Equal(t, int64(1), ps[1].Area())
}

func TestReadDXF_Errors(t *testing.T) {
	nonIntegral := saveDXF(t, func(d *drawing.Drawing) {
		_, err := d.LwPolyline(true, []float64{0, 0}, []float64{1.5, 0}, []float64{1.5, 1}, []float64{0, 1})
		require.NoError(t, err)
	})
	_, err := importer.ReadDXF(nonIntegral)
	assert.ErrorIs(t, err, importer.ErrNonIntegral)

	// A looser tolerance accepts the same drawing after rounding 1.5 → 2.
	_, err = importer.Options{Tolerance: 0.5}.ReadDXF(nonIntegral)
	assert.NoError(t, err)

	slanted := saveDXF(t, func(d *drawing.Drawing) {
		_, err := d.LwPolyline(true, []float64{1, 1}, []float64{1, 9}, []float64{9, 9}, []float64{9, 7})
		require.NoError(t, err)
	})
	_, err = importer.ReadDXF(slanted)
	assert.ErrorIs(t, err, geometry.ErrNotRectilinear)
	assert.ErrorIs(t, err, geometry.ErrInvalidPolygon)

	empty := saveDXF(t, func(d *drawing.Drawing) {
		_, err := d.Line(0, 0, 0, 3, 0, 0)
		require.NoError(t, err)
	})
	_, err = importer.ReadDXF(empty)
	assert.ErrorIs(t, err, importer.ErrNoShapes)

	_, err = importer.ReadDXF(filepath.Join(t.TempDir(), "missing.dxf"))
	assert.Error(t, err)
}

//----------------------------------------------------------------------------//
// XLSX
//----------------------------------------------------------------------------//

// saveXLSX writes rows to the first sheet of a fresh workbook.
func saveXLSX(t *testing.T, rows [][]interface{}) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "shape.xlsx")
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		for j, v := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, cell, v))
		}
	}
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestReadXLSX_WithHeader(t *testing.T) {
	path := saveXLSX(t, [][]interface{}{
		{"Label", "Y", "X"},
		{"a", 0, 2},
		{"b", 0, 6},
		{"c", 4, 6},
		{"d", 4, 8},
		{"e", 6, 8},
		{"f", 6, 0},
		{"g", 4, 0},
		{"h", 4, 2},
		{"closing", 0, 2},
	})

	p, err := importer.ReadXLSX(path, "")
	require.NoError(t, err)
	assert.Equal(t, 8, p.Len())
	assert.Equal(t, int64(32), p.Area())
	assert.Equal(t, geometry.Pt(2, 0), p.Vertex(0))
}

func TestReadXLSX_Positional(t *testing.T) {
	path := saveXLSX(t, [][]interface{}{
		{0, 0},
		{3, 0},
		{},
		{3, 3},
		{0, 3},
	})

	p, err := importer.ReadXLSX(path, "Sheet1")
	require.NoError(t, err)
	assert.True(t, p.IsRectangle())
	assert.Equal(t, int64(9), p.Area())
}

func TestReadXLSX_Errors(t *testing.T) {
	ok := saveXLSX(t, [][]interface{}{{0, 0}, {1, 0}, {1, 1}, {0, 1}})
	_, err := importer.ReadXLSX(ok, "Nope")
	assert.ErrorIs(t, err, importer.ErrNoSheet)

	cases := []struct {
		name string
		rows [][]interface{}
		want error
	}{
		{"NoXYHeader", [][]interface{}{{"a", "b"}, {0, 0}}, importer.ErrBadRow},
		{"Text", [][]interface{}{{0, 0}, {1, "one"}}, importer.ErrBadRow},
		{"Fraction", [][]interface{}{{0, 0}, {1.25, 0}, {1.25, 1}, {0, 1}}, importer.ErrNonIntegral},
		{"Empty", [][]interface{}{}, importer.ErrNoShapes},
		{"Triangle", [][]interface{}{{0, 0}, {2, 0}, {0, 2}}, geometry.ErrInvalidPolygon},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := importer.ReadXLSX(saveXLSX(t, tc.rows), "")
			assert.ErrorIs(t, err, tc.want)
		})
	}
}
