// Copyright (c) 2025, Mosaic Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layouts

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mosaicui/mosaic/align"
)

func TestFlowWrapsWhenRowOverflows(t *testing.T) {
	l := NewFlowLayout()
	items := []Item{NewBox(60, 20), NewBox(60, 20)}
	bounds := NewViewportBounds().SetExplicit(100, 200)
	l.Layout(items, bounds, nil)
	assert.Equal(t, float32(0), items[0].X())
	assert.Equal(t, float32(0), items[0].Y())
	// 60 + 60 > 100: second item wraps to the next row
	assert.Equal(t, float32(0), items[1].X())
	assert.Equal(t, float32(20), items[1].Y())
}

func TestFlowKeepsRowWhenItFits(t *testing.T) {
	l := NewFlowLayout()
	l.SetGap(10)
	items := []Item{NewBox(40, 20), NewBox(40, 20), NewBox(40, 20)}
	bounds := NewViewportBounds().SetExplicit(100, 200)
	res := l.Layout(items, bounds, nil)
	// 40 + 10 + 40 fits; the third overflows
	assert.Equal(t, float32(0), items[0].X())
	assert.Equal(t, float32(50), items[1].X())
	assert.Equal(t, float32(0), items[2].X())
	assert.Equal(t, float32(30), items[2].Y())
	assert.Equal(t, float32(50), res.ContentHeight)
}

func TestFlowRowHeightIsTallestItem(t *testing.T) {
	l := NewFlowLayout()
	items := []Item{NewBox(40, 10), NewBox(40, 30), NewBox(40, 20)}
	bounds := NewViewportBounds().SetExplicit(100, 200)
	l.Layout(items, bounds, nil)
	// first row holds items 0 and 1, so row height is 30
	assert.Equal(t, float32(30), items[2].Y())
}

func TestFlowRowVerticalAlign(t *testing.T) {
	l := NewFlowLayout()
	l.SetRowVerticalAlign(align.Middle)
	items := []Item{NewBox(40, 10), NewBox(40, 30)}
	bounds := NewViewportBounds().SetExplicit(100, 200)
	l.Layout(items, bounds, nil)
	// the short item centers within the 30-tall row
	assert.Equal(t, float32(10), items[0].Y())
	assert.Equal(t, float32(0), items[1].Y())

	l.SetRowVerticalAlign(align.VJustify)
	l.Layout(items, bounds, nil)
	assert.Equal(t, float32(30), items[0].Height())
}

func TestFlowRowHorizontalAlign(t *testing.T) {
	l := NewFlowLayout()
	l.SetHorizontalAlign(align.HCenter)
	items := []Item{NewBox(40, 10), NewBox(40, 10), NewBox(40, 10)}
	bounds := NewViewportBounds().SetExplicit(100, 200)
	l.Layout(items, bounds, nil)
	// row 0 holds two items (width 80): centered offset 10
	assert.Equal(t, float32(10), items[0].X())
	assert.Equal(t, float32(50), items[1].X())
	// row 1 holds one item: centered offset 30
	assert.Equal(t, float32(30), items[2].X())
}

func TestFlowSkipExcluded(t *testing.T) {
	l := NewFlowLayout()
	skipped := NewBox(60, 20).SetIncludeInLayout(false)
	skipped.SetX(7)
	skipped.SetY(7)
	items := []Item{NewBox(60, 20), skipped, NewBox(60, 20)}
	bounds := NewViewportBounds().SetExplicit(100, 200)
	l.Layout(items, bounds, nil)
	assert.Equal(t, float32(7), skipped.X())
	assert.Equal(t, float32(7), skipped.Y())
	// the excluded item occupies no row slot
	assert.Equal(t, float32(20), items[2].Y())
}

func TestFlowUnboundedWidthSingleRow(t *testing.T) {
	l := NewFlowLayout()
	l.SetGap(5)
	items := []Item{NewBox(60, 20), NewBox(60, 20), NewBox(60, 20)}
	res := l.Layout(items, nil, nil)
	assert.Equal(t, float32(0), items[0].Y())
	assert.Equal(t, float32(0), items[1].Y())
	assert.Equal(t, float32(0), items[2].Y())
	assert.Equal(t, float32(190), res.ContentWidth)
}

func TestFlowVirtualQueries(t *testing.T) {
	l := NewFlowLayout()
	l.SetUseVirtualLayout(true)
	l.SetTypicalItem(NewBox(40, 20))
	// 100px wide: two typical items per row
	w, h := l.MeasureViewport(5, NewViewportBounds().SetExplicit(100, nanf()))
	assert.Equal(t, float32(100), w)
	assert.Equal(t, float32(60), h)

	got := l.VisibleIndices(0, 0, 100, 40, 6, nil)
	// rows 0-2 (two visible plus one pad), two items each
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, got)

	got = l.VisibleIndices(0, 45, 100, 20, 10, got)
	// row window starts at floor(45/20)=2
	assert.Equal(t, []int{4, 5, 6, 7}, got)
}

func TestFlowQueriesPanicWithoutVirtual(t *testing.T) {
	l := NewFlowLayout()
	assert.Panics(t, func() { l.MeasureViewport(5, nil) })
	assert.Panics(t, func() { l.VisibleIndices(0, 0, 100, 100, 5, nil) })
}
