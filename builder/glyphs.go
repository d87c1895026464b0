// SPDX-License-Identifier: MIT
// Package: shapely/builder
//
// glyphs.go - block letters on a 5×7 cell grid.
//
// Only letters whose strokes form a single hole-free, pinch-free region are
// listed. Lower-case input is folded to upper case.

package builder

import (
	"unicode"

	"github.com/dvirbo/shapely/geometry"
)

var glyphs = map[rune][]string{
	'E': {"#####", "#....", "#....", "####.", "#....", "#....", "#####"},
	'F': {"#####", "#....", "#....", "####.", "#....", "#....", "#...."},
	'H': {"#...#", "#...#", "#...#", "#####", "#...#", "#...#", "#...#"},
	'L': {"#....", "#....", "#....", "#....", "#....", "#....", "#####"},
	'T': {"#####", "..#..", "..#..", "..#..", "..#..", "..#..", "..#.."},
	'U': {"#...#", "#...#", "#...#", "#...#", "#...#", "#...#", "#####"},
	'Z': {"#####", "....#", "...##", "..##.", ".##..", "##...", "#####"},
}

// Glyphs lists the supported letters in alphabetical order.
func Glyphs() []rune {
	return []rune{'E', 'F', 'H', 'L', 'T', 'U', 'Z'}
}

// Glyph returns the block letter r, one unit per cell.
func Glyph(r rune, opts ...Option) (*geometry.Polygon, error) {
	rows, ok := glyphs[unicode.ToUpper(r)]
	if !ok {
		return nil, builderErrorf(MethodGlyph, ErrUnknownGlyph, "%q", r)
	}
	return FromCells(rows, opts...)
}
