// SPDX-License-Identifier: MIT
// Package: shapely/builder
//
// errors.go - sentinel errors and the uniform method-prefixed wrapper.
//
// Contract:
//   • Constructors return errors built with builderErrorf so that
//     errors.Is(err, ErrX) keeps working and the message starts with the
//     constructor name ("FromCells: ...").
//   • Priority when several checks fail: ErrEmptyShape / ErrTooSmall first,
//     then ErrBadCell, ErrDisconnected, ErrPinched, ErrHasHole.

package builder

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyShape is returned when a cell picture has no filled cell.
	ErrEmptyShape = errors.New("builder: empty shape")

	// ErrBadCell is returned for a picture character other than '#', '.' or ' '.
	ErrBadCell = errors.New("builder: invalid cell character")

	// ErrDisconnected is returned when the filled cells are not 4-connected.
	ErrDisconnected = errors.New("builder: cells are not connected")

	// ErrHasHole is returned when the filled cells enclose empty ones.
	ErrHasHole = errors.New("builder: shape has a hole")

	// ErrPinched is returned when two filled cells meet only at a corner.
	ErrPinched = errors.New("builder: cells touch at a single corner")

	// ErrTooSmall is returned for a dimension that cannot produce the shape.
	ErrTooSmall = errors.New("builder: dimension too small")

	// ErrUnknownGlyph is returned by Glyph for a letter without a bitmap.
	ErrUnknownGlyph = errors.New("builder: unknown glyph")
)

// builderErrorf prefixes a sentinel with the method name and formatted detail.
func builderErrorf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
