// Copyright (c) 2025, Mosaic Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layouts

import "github.com/chewxy/math32"

// Box is a concrete [Item]: a plain rectangle with optional pivot,
// layout data, size constraints, and a re-measure hook. Containers with
// richer item types implement [Item] themselves; Box serves simple
// containers and tests.
type Box struct {
	x, y          float32
	width, height float32
	pivotX        float32
	pivotY        float32

	excluded bool
	data     *Data

	minWidth, minHeight float32
	maxWidth, maxHeight float32

	// Measure, if set, is invoked by ValidateNow to recompute size,
	// e.g. to model text that re-wraps when its width changes.
	Measure func(b *Box)
}

// NewBox returns a Box of the given size with unconstrained min/max.
func NewBox(width, height float32) *Box {
	return &Box{
		width:     width,
		height:    height,
		minWidth:  math32.NaN(),
		minHeight: math32.NaN(),
		maxWidth:  math32.NaN(),
		maxHeight: math32.NaN(),
	}
}

func (b *Box) X() float32       { return b.x }
func (b *Box) Y() float32       { return b.y }
func (b *Box) SetX(x float32)   { b.x = x }
func (b *Box) SetY(y float32)   { b.y = y }
func (b *Box) Width() float32   { return b.width }
func (b *Box) Height() float32  { return b.height }
func (b *Box) SetWidth(w float32)  { b.width = w }
func (b *Box) SetHeight(h float32) { b.height = h }
func (b *Box) PivotX() float32  { return b.pivotX }
func (b *Box) PivotY() float32  { return b.pivotY }

// SetPivot sets the pivot offset applied when positioning.
func (b *Box) SetPivot(px, py float32) *Box {
	b.pivotX = px
	b.pivotY = py
	return b
}

// IncludeInLayout implements [Includer].
func (b *Box) IncludeInLayout() bool {
	return !b.excluded
}

// SetIncludeInLayout controls whether layouts measure and position
// this box.
func (b *Box) SetIncludeInLayout(on bool) *Box {
	b.excluded = !on
	return b
}

// LayoutData implements [DataHolder].
func (b *Box) LayoutData() *Data {
	return b.data
}

// SetLayoutData attaches per-item layout hints.
func (b *Box) SetLayoutData(d *Data) *Box {
	b.data = d
	return b
}

// ValidateNow implements [Validator] by running the Measure hook.
func (b *Box) ValidateNow() {
	if b.Measure != nil {
		b.Measure(b)
	}
}

// MinWidth implements [Sizer].
func (b *Box) MinWidth() float32 { return b.minWidth }

// MinHeight implements [Sizer].
func (b *Box) MinHeight() float32 { return b.minHeight }

// MaxWidth implements [Sizer].
func (b *Box) MaxWidth() float32 { return b.maxWidth }

// MaxHeight implements [Sizer].
func (b *Box) MaxHeight() float32 { return b.maxHeight }

// SetMinSize sets the minimum size constraints.
func (b *Box) SetMinSize(w, h float32) *Box {
	b.minWidth = w
	b.minHeight = h
	return b
}

// SetMaxSize sets the maximum size constraints.
func (b *Box) SetMaxSize(w, h float32) *Box {
	b.maxWidth = w
	b.maxHeight = h
	return b
}
