// Copyright (c) 2025, Mosaic Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layouts

import "github.com/chewxy/math32"

// ViewportBounds describes the space a layout may fill: an origin
// offset, the current scroll position, and explicit/min/max size
// constraints. An unset explicit dimension (NaN) means "measure from
// content"; the measured value is then clamped to [min, max]. An
// explicit dimension, when set, is honored exactly and bypasses min/max
// clamping of the viewport (but not of content).
type ViewportBounds struct {

	// X and Y are the origin offset of the viewport.
	X float32
	Y float32

	// ScrollX and ScrollY are the current scroll position, used by
	// paging, sticky header, and windowing computations.
	ScrollX float32
	ScrollY float32

	// ExplicitWidth and ExplicitHeight are the exact viewport size, or
	// NaN to measure from content.
	ExplicitWidth  float32
	ExplicitHeight float32

	// MinWidth, MinHeight, MaxWidth, and MaxHeight clamp measured
	// dimensions. Invariant: min <= max when both are finite.
	MinWidth  float32
	MinHeight float32
	MaxWidth  float32
	MaxHeight float32
}

// NewViewportBounds returns bounds with unset explicit dimensions and
// unbounded maximums.
func NewViewportBounds() *ViewportBounds {
	return &ViewportBounds{
		ExplicitWidth:  math32.NaN(),
		ExplicitHeight: math32.NaN(),
		MaxWidth:       math32.Inf(1),
		MaxHeight:      math32.Inf(1),
	}
}

// SetExplicit sets both explicit dimensions.
func (vb *ViewportBounds) SetExplicit(w, h float32) *ViewportBounds {
	vb.ExplicitWidth = w
	vb.ExplicitHeight = h
	return vb
}

// SetScroll sets the scroll position.
func (vb *ViewportBounds) SetScroll(x, y float32) *ViewportBounds {
	vb.ScrollX = x
	vb.ScrollY = y
	return vb
}

// Result is the output of a Layout call: the bounding box of all
// positioned content (including padding) and the size the container
// should use for its scrollable viewport. Content may exceed or be
// exceeded by the viewport.
type Result struct {
	ContentX      float32
	ContentY      float32
	ContentWidth  float32
	ContentHeight float32

	ViewportWidth  float32
	ViewportHeight float32
}
