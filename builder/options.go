// SPDX-License-Identifier: MIT
// Package: shapely/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Options are functional (type Option func(*config)).
//   • Option constructors validate and panic on meaningless input.
//   • Options apply after the shape is traced: scale first, then translate.

package builder

import "github.com/dvirbo/shapely/geometry"

// Method names used as error prefixes.
const (
	MethodFromCells = "FromCells"
	MethodRectangle = "Rectangle"
	MethodLShape    = "LShape"
	MethodTShape    = "TShape"
	MethodPlus      = "Plus"
	MethodStaircase = "Staircase"
	MethodComb      = "Comb"
	MethodGlyph     = "Glyph"
)

// Option customizes a constructor by mutating its config.
type Option func(*config)

type config struct {
	unit   int
	origin geometry.Point
}

func newConfig(opts ...Option) config {
	c := config{unit: 1}
	for _, o := range opts {
		o(&c)
	}
	return c
}

// WithUnit multiplies every coordinate by u. Panics if u < 1.
func WithUnit(u int) Option {
	if u < 1 {
		panic("builder: WithUnit(u<1)")
	}
	return func(c *config) { c.unit = u }
}

// WithOrigin translates the shape so that its local (0,0) lands on o.
func WithOrigin(o geometry.Point) Option {
	return func(c *config) { c.origin = o }
}

// apply scales and translates pts in place and returns the CCW polygon.
func (c config) apply(pts []geometry.Point) *geometry.Polygon {
	for i, q := range pts {
		pts[i] = geometry.Point{X: c.origin.X + q.X*c.unit, Y: c.origin.Y + q.Y*c.unit}
	}
	return geometry.New(pts).CCW()
}

// Scale returns p with every coordinate multiplied by k. Panics if k < 1.
func Scale(p *geometry.Polygon, k int) *geometry.Polygon {
	if k < 1 {
		panic("builder: Scale(k<1)")
	}
	pts := p.Vertices()
	for i := range pts {
		pts[i] = geometry.Point{X: pts[i].X * k, Y: pts[i].Y * k}
	}
	return geometry.New(pts)
}
