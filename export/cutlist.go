// SPDX-License-Identifier: MIT

package export

import (
	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"github.com/dvirbo/shapely/partition"
)

// Sheet names of the cut list workbook.
const (
	SheetRectangles = "Rectangles"
	SheetCuts       = "Cuts"
)

var (
	rectHeader = []interface{}{"Index", "X", "Y", "Width", "Height", "Area"}
	cutHeader  = []interface{}{"Index", "X1", "Y1", "X2", "Y2", "Length", "Orientation"}
)

// WriteCutList saves res as a workbook with one row per rectangle on sheet
// Rectangles and one row per cut on sheet Cuts, each under a header row.
// Rectangles are listed by their lower-left corner; orientation is H or V.
func WriteCutList(path string, res *partition.Result) (err error) {
	if res == nil {
		return ErrNilResult
	}

	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = errors.Wrap(cerr, "close workbook")
		}
	}()

	if err = f.SetSheetName("Sheet1", SheetRectangles); err != nil {
		return errors.Wrap(err, "rename sheet")
	}
	if _, err = f.NewSheet(SheetCuts); err != nil {
		return errors.Wrap(err, "add sheet")
	}

	if err = writeRow(f, SheetRectangles, 1, rectHeader); err != nil {
		return err
	}
	for i, r := range res.Rectangles {
		row := []interface{}{i + 1, r.MinX, r.MinY, r.Width(), r.Height(), r.Area()}
		if err = writeRow(f, SheetRectangles, i+2, row); err != nil {
			return err
		}
	}

	if err = writeRow(f, SheetCuts, 1, cutHeader); err != nil {
		return err
	}
	for i, e := range res.Edges {
		orientation := "V"
		if e.Horizontal() {
			orientation = "H"
		}
		row := []interface{}{i + 1, e.A.X, e.A.Y, e.B.X, e.B.Y, e.Length(), orientation}
		if err = writeRow(f, SheetCuts, i+2, row); err != nil {
			return err
		}
	}

	if err = f.SaveAs(path); err != nil {
		return errors.Wrapf(err, "cannot write workbook (%s)", path)
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return errors.Wrapf(err, "%s row %d", sheet, row)
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return errors.Wrapf(err, "%s row %d", sheet, row)
	}
	return nil
}
