// SPDX-License-Identifier: MIT

// Package export writes partition results for downstream tools: a DXF drawing
// for CAD and CNC software (github.com/yofu/dxf) and an XLSX cut list
// (github.com/xuri/excelize/v2).
package export

import (
	"github.com/pkg/errors"
	"github.com/yofu/dxf"
	"github.com/yofu/dxf/color"

	"github.com/dvirbo/shapely/geometry"
)

// ErrNilResult is returned by WriteCutList for a nil result.
var ErrNilResult = errors.New("export: nil result")

// Options names the DXF layers.
type Options struct {
	BoundaryLayer string
	CutLayer      string
}

// DefaultOptions returns layers BOUNDARY and CUTS.
func DefaultOptions() Options {
	return Options{BoundaryLayer: "BOUNDARY", CutLayer: "CUTS"}
}

// WriteDXF draws p as a closed LWPOLYLINE on the boundary layer and every
// edge as a LINE on the cut layer. Empty layer names fall back to the
// defaults.
func WriteDXF(path string, p *geometry.Polygon, edges []geometry.Segment, opts Options) error {
	def := DefaultOptions()
	if opts.BoundaryLayer == "" {
		opts.BoundaryLayer = def.BoundaryLayer
	}
	if opts.CutLayer == "" {
		opts.CutLayer = def.CutLayer
	}

	d := dxf.NewDrawing()
	if _, err := d.AddLayer(opts.BoundaryLayer, color.White, dxf.DefaultLineType, true); err != nil {
		return errors.Wrapf(err, "add layer %s", opts.BoundaryLayer)
	}
	verts := make([][]float64, 0, p.Len())
	for _, q := range p.Vertices() {
		verts = append(verts, []float64{float64(q.X), float64(q.Y)})
	}
	if _, err := d.LwPolyline(true, verts...); err != nil {
		return errors.Wrap(err, "draw boundary")
	}

	if opts.CutLayer != opts.BoundaryLayer {
		if _, err := d.AddLayer(opts.CutLayer, color.Red, dxf.DefaultLineType, true); err != nil {
			return errors.Wrapf(err, "add layer %s", opts.CutLayer)
		}
	}
	for _, e := range edges {
		if _, err := d.Line(float64(e.A.X), float64(e.A.Y), 0, float64(e.B.X), float64(e.B.Y), 0); err != nil {
			return errors.Wrapf(err, "draw cut %v", e)
		}
	}

	if err := d.SaveAs(path); err != nil {
		return errors.Wrapf(err, "cannot write DXF file (%s)", path)
	}
	return nil
}
