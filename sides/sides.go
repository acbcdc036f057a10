// Copyright (c) 2025, Mosaic Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sides provides a flexible representation of box sides, with
// either a single value for all four, or different values for subsets,
// following the CSS multi-value shorthand convention.
package sides

import "log/slog"

// Sides contains values for each side of a box.
// The field names correspond directly to the side values.
type Sides[T any] struct {

	// top value
	Top T

	// right value
	Right T

	// bottom value
	Bottom T

	// left value
	Left T
}

// New creates new sides of the given type and calls [Sides.Set]
// on them with the given values.
func New[T any](vals ...T) Sides[T] {
	s := Sides[T]{}
	s.Set(vals...)
	return s
}

// Set sets the values of the sides from the given list of 0 to 4 values.
// If 0 values are provided, all sides are set to the zero value of the type.
// If 1 value is provided, all sides are set to that value.
// If 2 values are provided, the top and bottom are set to the first value
// and the right and left are set to the second value.
// If 3 values are provided, the top is set to the first value, the right
// and left are set to the second value, and the bottom is set to the third
// value.
// If 4 values are provided, they are set in top, right, bottom, left order.
// If more than 4 values are provided, the behavior is the same as with 4
// values, but Set also logs a programmer error.
// This behavior is based on the CSS multi-side setting syntax, like that
// of padding (see https://www.w3schools.com/css/css_padding.asp).
func (s *Sides[T]) Set(vals ...T) *Sides[T] {
	switch len(vals) {
	case 0:
		var zval T
		s.SetAll(zval)
	case 1:
		s.SetAll(vals[0])
	case 2:
		s.SetVertical(vals[0])
		s.SetHorizontal(vals[1])
	case 3:
		s.Top = vals[0]
		s.SetHorizontal(vals[1])
		s.Bottom = vals[2]
	case 4:
		s.Top = vals[0]
		s.Right = vals[1]
		s.Bottom = vals[2]
		s.Left = vals[3]
	default:
		s.Top = vals[0]
		s.Right = vals[1]
		s.Bottom = vals[2]
		s.Left = vals[3]
		slog.Error("programmer error: sides.Set: expected 0 to 4 values, but got", "numValues", len(vals))
	}
	return s
}

// Zero sets the values of all of the sides to zero.
func (s *Sides[T]) Zero() *Sides[T] {
	s.Set()
	return s
}

// SetAll sets all of the sides to the given value.
func (s *Sides[T]) SetAll(val T) *Sides[T] {
	s.Top = val
	s.Right = val
	s.Bottom = val
	s.Left = val
	return s
}

// SetVertical sets the top and bottom sides to the given value.
func (s *Sides[T]) SetVertical(val T) *Sides[T] {
	s.Top = val
	s.Bottom = val
	return s
}

// SetHorizontal sets the right and left sides to the given value.
func (s *Sides[T]) SetHorizontal(val T) *Sides[T] {
	s.Right = val
	s.Left = val
	return s
}

// Floats is a [Sides] of float32 values, used for padding.
type Floats = Sides[float32]

// Horizontal returns the sum of the left and right values.
func Horizontal(s Floats) float32 {
	return s.Left + s.Right
}

// Vertical returns the sum of the top and bottom values.
func Vertical(s Floats) float32 {
	return s.Top + s.Bottom
}
