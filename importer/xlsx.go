// SPDX-License-Identifier: MIT

package importer

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"github.com/dvirbo/shapely/geometry"
)

// ReadXLSX reads one outline from a workbook sheet with the default options.
func ReadXLSX(path, sheet string) (*geometry.Polygon, error) {
	return DefaultOptions().ReadXLSX(path, sheet)
}

// ReadXLSX reads one outline from a workbook sheet, one vertex per row. An
// empty sheet name selects the first sheet. When the first row is not
// numeric it is a header and the columns titled X and Y (any case) are used;
// otherwise the first two columns are. Blank rows are skipped.
func (o Options) ReadXLSX(path, sheet string) (*geometry.Polygon, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot open workbook (%s)", path)
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, errors.Wrapf(ErrNoSheet, "%s", path)
		}
		sheet = sheets[0]
	}
	if idx, err := f.GetSheetIndex(sheet); err != nil || idx < 0 {
		return nil, errors.Wrapf(ErrNoSheet, "%s: %q", path, sheet)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot read sheet %q (%s)", sheet, path)
	}

	xc, yc, start, err := columns(rows)
	if err != nil {
		return nil, errors.Wrapf(err, "%s: %q", path, sheet)
	}

	var pts []geometry.Point
	for r := start; r < len(rows); r++ {
		row := rows[r]
		if blank(row) {
			continue
		}
		if xc >= len(row) || yc >= len(row) {
			return nil, errors.Wrapf(ErrBadRow, "%s: %q row %d", path, sheet, r+1)
		}
		x, errX := strconv.ParseFloat(strings.TrimSpace(row[xc]), 64)
		y, errY := strconv.ParseFloat(strings.TrimSpace(row[yc]), 64)
		if errX != nil || errY != nil {
			return nil, errors.Wrapf(ErrBadRow, "%s: %q row %d", path, sheet, r+1)
		}
		q, err := o.point(x, y)
		if err != nil {
			return nil, errors.Wrapf(err, "%s: %q row %d", path, sheet, r+1)
		}
		pts = append(pts, q)
	}
	if len(pts) == 0 {
		return nil, errors.Wrapf(ErrNoShapes, "%s: %q", path, sheet)
	}

	p, err := outline(pts)
	if err != nil {
		return nil, errors.Wrapf(err, "%s: %q", path, sheet)
	}
	return p, nil
}

// columns locates the X and Y columns and the first data row.
func columns(rows [][]string) (xc, yc, start int, err error) {
	for start < len(rows) && blank(rows[start]) {
		start++
	}
	if start == len(rows) {
		return 0, 0, 0, ErrNoShapes
	}
	head := rows[start]
	if len(head) >= 2 {
		if _, err := strconv.ParseFloat(strings.TrimSpace(head[0]), 64); err == nil {
			return 0, 1, start, nil
		}
	}

	xc, yc = -1, -1
	for i, name := range head {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "x":
			xc = i
		case "y":
			yc = i
		}
	}
	if xc < 0 || yc < 0 {
		return 0, 0, 0, errors.Wrap(ErrBadRow, "header has no X and Y columns")
	}
	return xc, yc, start + 1, nil
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
