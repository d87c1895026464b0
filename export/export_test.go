package export_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/dvirbo/shapely/builder"
	"github.com/dvirbo/shapely/export"
	"github.com/dvirbo/shapely/geometry"
	"github.com/dvirbo/shapely/importer"
	"github.com/dvirbo/shapely/partition"
)

var tee = geometry.FromXY(2, 0, 6, 0, 6, 4, 8, 4, 8, 6, 0, 6, 0, 4, 2, 4)

func TestWriteDXF_RoundTrip(t *testing.T) {
	edges, err := partition.Partition(tee)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "tee.dxf")
	require.NoError(t, export.WriteDXF(path, tee, edges, export.DefaultOptions()))

	// The single open cut does not form an outline of its own.
	ps, err := importer.ReadDXF(path)
	require.NoError(t, err)
	require.Len(t, ps, 1)
	assert.Equal(t, tee.Area(), ps[0].Area())
	assert.ElementsMatch(t, tee.Vertices(), ps[0].Vertices())
}

func TestWriteDXF_ClosedCutsReadBackAsOutline(t *testing.T) {
	plus, err := builder.Plus(1, 1)
	require.NoError(t, err)
	edges, err := partition.Partition(plus)
	require.NoError(t, err)
	require.Len(t, edges, 4)

	path := filepath.Join(t.TempDir(), "plus.dxf")
	require.NoError(t, export.WriteDXF(path, plus, edges, export.Options{}))

	ps, err := importer.ReadDXF(path)
	require.NoError(t, err)
	require.Len(t, ps, 2)
	assert.Equal(t, int64(5), ps[0].Area())
	assert.Equal(t, geometry.Rect{MinX: 1, MinY: 1, MaxX: 2, MaxY: 2}, ps[1].Bounds())
}

func TestWriteDXF_BadPath(t *testing.T) {
	err := export.WriteDXF(filepath.Join(t.TempDir(), "no", "such", "dir.dxf"), tee, nil, export.DefaultOptions())
	assert.Error(t, err)
}

func TestWriteCutList(t *testing.T) {
	res, err := partition.Solve(tee)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "cuts.xlsx")
	require.NoError(t, export.WriteCutList(path, res))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{export.SheetRectangles, export.SheetCuts}, f.GetSheetList())

	rects, err := f.GetRows(export.SheetRectangles)
	require.NoError(t, err)
	require.Len(t, rects, 1+len(res.Rectangles))
	assert.Equal(t, []string{"Index", "X", "Y", "Width", "Height", "Area"}, rects[0])
	var total int
	for _, row := range rects[1:] {
		require.Len(t, row, 6)
		switch row[1] + "," + row[2] {
		case "2,0":
			assert.Equal(t, []string{"4", "4", "16"}, row[3:])
		case "0,4":
			assert.Equal(t, []string{"8", "2", "16"}, row[3:])
		default:
			t.Fatalf("unexpected rectangle row %v", row)
		}
		total++
	}
	assert.Equal(t, 2, total)

	cuts, err := f.GetRows(export.SheetCuts)
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"Index", "X1", "Y1", "X2", "Y2", "Length", "Orientation"},
		{"1", "2", "4", "6", "4", "4", "H"},
	}, cuts)
}

func TestWriteCutList_Nil(t *testing.T) {
	err := export.WriteCutList(filepath.Join(t.TempDir(), "x.xlsx"), nil)
	assert.ErrorIs(t, err, export.ErrNilResult)
}
