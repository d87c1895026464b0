// SPDX-License-Identifier: MIT
// Package: shapely/builder
//
// shapes.go - parametric rectilinear shapes.
//
// Every shape is drawn counter-clockwise in local coordinates with its
// bounding box anchored at (0,0), then scaled and translated by the options.

package builder

import (
	"github.com/dvirbo/shapely/geometry"
)

func validateMin(method, name string, got, min int) error {
	if got < min {
		return builderErrorf(method, ErrTooSmall, "%s must be ≥ %d, got %d", name, min, got)
	}
	return nil
}

// Rectangle returns the w×h rectangle.
func Rectangle(w, h int, opts ...Option) (*geometry.Polygon, error) {
	if err := validateMin(MethodRectangle, "w", w, 1); err != nil {
		return nil, err
	}
	if err := validateMin(MethodRectangle, "h", h, 1); err != nil {
		return nil, err
	}
	return newConfig(opts...).apply(geometry.Points(0, 0, w, 0, w, h, 0, h)), nil
}

// LShape returns a w×h L with both legs t thick, the corner at the origin.
// Requires 1 ≤ t < min(w, h).
func LShape(w, h, t int, opts ...Option) (*geometry.Polygon, error) {
	if err := validateMin(MethodLShape, "t", t, 1); err != nil {
		return nil, err
	}
	if err := validateMin(MethodLShape, "w", w, t+1); err != nil {
		return nil, err
	}
	if err := validateMin(MethodLShape, "h", h, t+1); err != nil {
		return nil, err
	}
	return newConfig(opts...).apply(geometry.Points(
		0, 0, w, 0, w, t, t, t, t, h, 0, h,
	)), nil
}

// TShape returns a w×h T: a bar of height bar across the top and a centred
// stem of width stem. Requires the stem to leave at least one unit of bar on
// each side and bar < h.
func TShape(w, h, stem, bar int, opts ...Option) (*geometry.Polygon, error) {
	if err := validateMin(MethodTShape, "stem", stem, 1); err != nil {
		return nil, err
	}
	if err := validateMin(MethodTShape, "bar", bar, 1); err != nil {
		return nil, err
	}
	if err := validateMin(MethodTShape, "w", w, stem+2); err != nil {
		return nil, err
	}
	if err := validateMin(MethodTShape, "h", h, bar+1); err != nil {
		return nil, err
	}
	l := (w - stem) / 2
	r := l + stem
	m := h - bar
	return newConfig(opts...).apply(geometry.Points(
		l, 0, r, 0, r, m, w, m, w, h, 0, h, 0, m, l, m,
	)), nil
}

// Plus returns a cross with a core×core centre and four arms of length arm.
func Plus(arm, core int, opts ...Option) (*geometry.Polygon, error) {
	if err := validateMin(MethodPlus, "arm", arm, 1); err != nil {
		return nil, err
	}
	if err := validateMin(MethodPlus, "core", core, 1); err != nil {
		return nil, err
	}
	a, b, c := arm, arm+core, 2*arm+core
	return newConfig(opts...).apply(geometry.Points(
		a, 0, b, 0, b, a, c, a, c, b, b, b, b, c, a, c, a, b, 0, b, 0, a, a, a,
	)), nil
}

// Staircase returns a staircase of steps square steps of the given size,
// descending from the top-left. One step is a square.
func Staircase(steps, size int, opts ...Option) (*geometry.Polygon, error) {
	if err := validateMin(MethodStaircase, "steps", steps, 1); err != nil {
		return nil, err
	}
	if err := validateMin(MethodStaircase, "size", size, 1); err != nil {
		return nil, err
	}
	n, s := steps, size
	pts := []geometry.Point{geometry.Pt(0, 0), geometry.Pt(n*s, 0)}
	for k := n; k >= 1; k-- {
		y := (n - k + 1) * s
		pts = append(pts, geometry.Pt(k*s, y), geometry.Pt((k-1)*s, y))
	}
	return newConfig(opts...).apply(pts), nil
}

// Comb returns a spine of height width carrying teeth teeth, each width wide
// and depth tall, separated by gaps as wide as a tooth.
func Comb(teeth, width, depth int, opts ...Option) (*geometry.Polygon, error) {
	if err := validateMin(MethodComb, "teeth", teeth, 1); err != nil {
		return nil, err
	}
	if err := validateMin(MethodComb, "width", width, 1); err != nil {
		return nil, err
	}
	if err := validateMin(MethodComb, "depth", depth, 1); err != nil {
		return nil, err
	}
	w, top := width, width+depth
	total := (2*teeth - 1) * w
	pts := []geometry.Point{geometry.Pt(0, 0), geometry.Pt(total, 0)}
	for k := teeth - 1; k >= 0; k-- {
		x0 := 2 * k * w
		pts = append(pts, geometry.Pt(x0+w, top), geometry.Pt(x0, top))
		if k > 0 {
			pts = append(pts, geometry.Pt(x0, w), geometry.Pt(x0-w, w))
		}
	}
	return newConfig(opts...).apply(pts), nil
}
