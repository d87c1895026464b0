// SPDX-License-Identifier: MIT

// Package importer reads rectilinear outlines from CAD and spreadsheet files.
//
//   - DXF (github.com/yofu/dxf): closed LWPOLYLINEs become polygons; LINE
//     entities and open polylines are chained end to end and every closed
//     chain becomes a polygon too.
//   - XLSX (github.com/xuri/excelize/v2): one vertex per row in an X and a Y
//     column, with an optional header naming them.
//
// Coordinates are snapped to integers; a value further than
// Options.Tolerance from an integer is rejected with ErrNonIntegral, and a
// bulged (arc) polyline vertex with ErrCurvedEdge. Collinear runs are merged
// and every polygon is validated before it is returned, so the result can go
// straight to the partitioner. I/O failures are wrapped with
// github.com/pkg/errors; errors.Is keeps working on the sentinels.
package importer
