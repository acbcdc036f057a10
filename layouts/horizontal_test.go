// Copyright (c) 2025, Mosaic Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layouts

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mosaicui/mosaic/align"
)

func TestHorizontalBasicRow(t *testing.T) {
	l := NewHorizontalLayout()
	l.SetGap(5)
	items := []Item{NewBox(10, 50), NewBox(20, 50), NewBox(30, 50)}
	res := l.Layout(items, nil, nil)
	assert.Equal(t, float32(0), items[0].X())
	assert.Equal(t, float32(15), items[1].X())
	assert.Equal(t, float32(40), items[2].X())
	assert.Equal(t, float32(70), res.ContentWidth)
	assert.Equal(t, float32(50), res.ContentHeight)
}

func TestHorizontalFirstLastGapOverrides(t *testing.T) {
	l := NewHorizontalLayout()
	l.SetGap(10)
	l.SetFirstGap(2)
	l.SetLastGap(3)
	items := []Item{NewBox(10, 10), NewBox(10, 10), NewBox(10, 10), NewBox(10, 10)}
	res := l.Layout(items, nil, nil)
	assert.Equal(t, float32(0), items[0].X())
	assert.Equal(t, float32(12), items[1].X())
	assert.Equal(t, float32(32), items[2].X())
	assert.Equal(t, float32(45), items[3].X())
	assert.Equal(t, float32(55), res.ContentWidth)
}

func TestHorizontalJustifyStretchesHeight(t *testing.T) {
	l := NewHorizontalLayout()
	l.SetVerticalAlign(align.VJustify)
	l.SetPadding(10, 0)
	items := []Item{NewBox(30, 20), NewBox(40, 60)}
	bounds := NewViewportBounds().SetExplicit(200, 100)
	l.Layout(items, bounds, nil)
	for _, it := range items {
		assert.Equal(t, float32(80), it.Height())
		assert.Equal(t, float32(10), it.Y())
	}
}

func TestHorizontalDistributeWidths(t *testing.T) {
	l := NewHorizontalLayout()
	l.SetDistributeWidths(true)
	items := []Item{NewBox(10, 50), NewBox(70, 50)}
	bounds := NewViewportBounds().SetExplicit(100, 100)
	l.Layout(items, bounds, nil)
	assert.Equal(t, float32(50), items[0].Width())
	assert.Equal(t, float32(50), items[1].Width())
	assert.Equal(t, float32(50), items[1].X())
}

func TestHorizontalPercentWidths(t *testing.T) {
	l := NewHorizontalLayout()
	a := NewBox(10, 50).SetLayoutData(NewPercentData(30, nanf()))
	b := NewBox(10, 50).SetLayoutData(NewPercentData(70, nanf()))
	bounds := NewViewportBounds().SetExplicit(100, 100)
	l.Layout([]Item{a, b}, bounds, nil)
	assert.Equal(t, float32(30), a.Width())
	assert.Equal(t, float32(70), b.Width())
}

func TestHorizontalContentAlignment(t *testing.T) {
	l := NewHorizontalLayout()
	l.SetHorizontalAlign(align.HCenter)
	l.SetVerticalAlign(align.Bottom)
	items := []Item{NewBox(20, 30)}
	bounds := NewViewportBounds().SetExplicit(100, 100)
	l.Layout(items, bounds, nil)
	assert.Equal(t, float32(40), items[0].X())
	assert.Equal(t, float32(70), items[0].Y())
}

func TestHorizontalVirtualQueries(t *testing.T) {
	l := NewHorizontalLayout()
	l.SetUseVirtualLayout(true)
	l.SetTypicalItem(NewBox(20, 100))
	w, h := l.MeasureViewport(10, nil)
	assert.Equal(t, float32(200), w)
	assert.Equal(t, float32(100), h)

	got := l.VisibleIndices(0, 0, 60, 100, 10, nil)
	assert.Equal(t, []int{0, 1, 2, 3}, got)
	got = l.VisibleIndices(50, 0, 60, 100, 10, got)
	assert.Equal(t, []int{2, 3, 4, 5}, got)
}

func TestHorizontalScrollPositionForIndex(t *testing.T) {
	l := NewHorizontalLayout()
	l.SetUseVirtualLayout(true)
	l.SetTypicalItem(NewBox(20, 100))
	items := make([]Item, 10)

	// center alignment (the default) centers the item in the viewport
	sx, _ := l.ScrollPositionForIndex(5, items, 0, 0, 60, 100)
	assert.Equal(t, float32(80), sx)

	l.SetScrollAlign(align.Left)
	sx, _ = l.ScrollPositionForIndex(5, items, 0, 0, 60, 100)
	assert.Equal(t, float32(100), sx)
}

func TestHorizontalDropIndex(t *testing.T) {
	l := NewHorizontalLayout()
	items := []Item{NewBox(20, 50), NewBox(20, 50), NewBox(20, 50)}
	l.Layout(items, nil, nil)
	assert.Equal(t, 0, l.DropIndex(5, 10, items, 0, 0, 100, 100))
	assert.Equal(t, 1, l.DropIndex(25, 10, items, 0, 0, 100, 100))
	assert.Equal(t, 3, l.DropIndex(100, 10, items, 0, 0, 100, 100))
}

func TestHorizontalTrimmedBeforeAfter(t *testing.T) {
	l := NewHorizontalLayout()
	l.SetUseVirtualLayout(true)
	l.SetTypicalItem(NewBox(20, 100))
	l.SetGap(5)
	l.SetBeforeVirtualizedItemCount(2)
	l.SetAfterVirtualizedItemCount(3)
	items := []Item{NewBox(20, 100), NewBox(20, 100)}
	res := l.Layout(items, NewViewportBounds().SetExplicit(100, 100), nil)
	assert.Equal(t, float32(50), items[0].X())
	assert.Equal(t, float32(170), res.ContentWidth)
}

func TestHorizontalQueriesPanicWithoutVirtual(t *testing.T) {
	l := NewHorizontalLayout()
	assert.Panics(t, func() { l.MeasureViewport(5, nil) })
	assert.Panics(t, func() { l.VisibleIndices(0, 0, 100, 100, 5, nil) })
}
