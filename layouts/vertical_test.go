// Copyright (c) 2025, Mosaic Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layouts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mosaicui/mosaic/align"
)

func TestVerticalBasicStack(t *testing.T) {
	l := NewVerticalLayout()
	l.SetGap(5)
	items := []Item{NewBox(50, 10), NewBox(50, 20), NewBox(50, 30)}
	res := l.Layout(items, nil, nil)
	assert.Equal(t, float32(0), items[0].Y())
	assert.Equal(t, float32(15), items[1].Y())
	assert.Equal(t, float32(40), items[2].Y())
	assert.Equal(t, float32(70), res.ContentHeight)
	assert.Equal(t, float32(50), res.ContentWidth)
	assert.Equal(t, float32(70), res.ViewportHeight)
}

func TestVerticalGapInvariant(t *testing.T) {
	l := NewVerticalLayout()
	l.SetGap(8)
	items := []Item{NewBox(10, 10), NewBox(10, 10), NewBox(10, 10), NewBox(10, 10)}
	l.Layout(items, nil, nil)
	for i := 1; i < len(items); i++ {
		prevBottom := items[i-1].Y() + items[i-1].Height()
		assert.Equal(t, float32(8), items[i].Y()-prevBottom)
	}
}

func TestVerticalFirstLastGapOverrides(t *testing.T) {
	l := NewVerticalLayout()
	l.SetGap(10)
	l.SetFirstGap(2)
	l.SetLastGap(3)
	items := []Item{NewBox(10, 10), NewBox(10, 10), NewBox(10, 10), NewBox(10, 10)}
	res := l.Layout(items, nil, nil)
	assert.Equal(t, float32(0), items[0].Y())
	assert.Equal(t, float32(12), items[1].Y())
	assert.Equal(t, float32(32), items[2].Y())
	assert.Equal(t, float32(45), items[3].Y())
	assert.Equal(t, float32(55), res.ContentHeight)
}

func TestVerticalJustifyStretchesToFill(t *testing.T) {
	l := NewVerticalLayout()
	l.SetHorizontalAlign(align.HJustify)
	l.SetPadding(0, 10)
	items := []Item{NewBox(50, 10), NewBox(80, 20)}
	bounds := NewViewportBounds().SetExplicit(200, 100)
	res := l.Layout(items, bounds, nil)
	for _, it := range items {
		assert.Equal(t, float32(180), it.Width())
		assert.Equal(t, float32(10), it.X())
	}
	assert.Equal(t, float32(200), res.ContentWidth)
}

func TestVerticalCenterAlignment(t *testing.T) {
	l := NewVerticalLayout()
	l.SetHorizontalAlign(align.HCenter)
	l.SetVerticalAlign(align.Middle)
	items := []Item{NewBox(50, 20)}
	bounds := NewViewportBounds().SetExplicit(100, 100)
	l.Layout(items, bounds, nil)
	assert.Equal(t, float32(25), items[0].X())
	assert.Equal(t, float32(40), items[0].Y())
}

func TestVerticalSkipExcluded(t *testing.T) {
	l := NewVerticalLayout()
	l.SetGap(5)
	skipped := NewBox(50, 20).SetIncludeInLayout(false)
	skipped.SetX(7)
	skipped.SetY(7)
	items := []Item{NewBox(50, 10), skipped, NewBox(50, 30)}
	res := l.Layout(items, nil, nil)
	assert.Equal(t, float32(7), skipped.X())
	assert.Equal(t, float32(7), skipped.Y())
	assert.Equal(t, float32(15), items[2].Y())
	assert.Equal(t, float32(45), res.ContentHeight)
}

func TestVerticalDistributeHeights(t *testing.T) {
	l := NewVerticalLayout()
	l.SetDistributeHeights(true)
	items := []Item{NewBox(50, 10), NewBox(50, 70)}
	bounds := NewViewportBounds().SetExplicit(100, 100)
	l.Layout(items, bounds, nil)
	assert.Equal(t, float32(50), items[0].Height())
	assert.Equal(t, float32(50), items[1].Height())
	assert.Equal(t, float32(0), items[0].Y())
	assert.Equal(t, float32(50), items[1].Y())
}

func TestVerticalPercentHeights(t *testing.T) {
	l := NewVerticalLayout()
	a := NewBox(50, 10).SetLayoutData(NewPercentData(nanf(), 25))
	b := NewBox(50, 10).SetLayoutData(NewPercentData(nanf(), 75))
	bounds := NewViewportBounds().SetExplicit(100, 100)
	l.Layout([]Item{a, b}, bounds, nil)
	assert.Equal(t, float32(25), a.Height())
	assert.Equal(t, float32(75), b.Height())
}

func TestVerticalPercentRespectsMinimum(t *testing.T) {
	l := NewVerticalLayout()
	a := NewBox(50, 10).SetLayoutData(NewPercentData(nanf(), 10)).SetMinSize(0, 30)
	b := NewBox(50, 10).SetLayoutData(NewPercentData(nanf(), 90))
	bounds := NewViewportBounds().SetExplicit(100, 100)
	l.Layout([]Item{a, b}, bounds, nil)
	assert.Equal(t, float32(30), a.Height())
	assert.Equal(t, float32(70), b.Height())
}

func TestVerticalIdempotence(t *testing.T) {
	l := NewVerticalLayout()
	l.SetGap(3)
	l.SetHorizontalAlign(align.HCenter)
	items := []Item{NewBox(40, 10), NewBox(60, 20), NewBox(20, 5)}
	bounds := NewViewportBounds().SetExplicit(100, 200)
	first := l.Layout(items, bounds, nil)
	var pos [][2]float32
	for _, it := range items {
		pos = append(pos, [2]float32{it.X(), it.Y()})
	}
	second := l.Layout(items, bounds, nil)
	for i, it := range items {
		assert.Equal(t, pos[i][0], it.X())
		assert.Equal(t, pos[i][1], it.Y())
	}
	assert.Equal(t, *first, *second)
}

func TestVerticalVirtualMeasure(t *testing.T) {
	l := NewVerticalLayout()
	l.SetUseVirtualLayout(true)
	l.SetTypicalItem(NewBox(100, 20))
	w, h := l.MeasureViewport(10, nil)
	assert.Equal(t, float32(100), w)
	assert.Equal(t, float32(200), h)

	l.SetRequestedRowCount(5)
	_, h = l.MeasureViewport(10, nil)
	assert.Equal(t, float32(100), h)
}

func TestVerticalVisibleIndices(t *testing.T) {
	l := NewVerticalLayout()
	l.SetUseVirtualLayout(true)
	l.SetTypicalItem(NewBox(100, 20))
	got := l.VisibleIndices(0, 0, 100, 60, 10, nil)
	assert.Equal(t, []int{0, 1, 2, 3}, got)

	got = l.VisibleIndices(0, 50, 100, 60, 10, got)
	assert.Equal(t, []int{2, 3, 4, 5}, got)

	// near the end the window shifts instead of shrinking
	got = l.VisibleIndices(0, 1000, 100, 60, 10, got)
	assert.Equal(t, []int{6, 7, 8, 9}, got)
}

func TestVerticalVisibleIndicesVariable(t *testing.T) {
	l := NewVerticalLayout()
	l.SetUseVirtualLayout(true)
	l.SetHasVariableItemDimensions(true)
	l.SetTypicalItem(NewBox(100, 20))
	// index 1 measured much taller than typical
	items := []Item{nil, NewBox(100, 100), nil, nil, nil}
	l.Layout(items, NewViewportBounds().SetExplicit(100, 120), nil)
	got := l.VisibleIndices(0, 0, 100, 120, 5, nil)
	// rows 0 and 1 fill the window, plus one extra row each side of the
	// walk to absorb estimate error
	assert.Equal(t, []int{0, 1, 2, 3}, got)
}

func TestVerticalQueriesPanicWithoutVirtual(t *testing.T) {
	l := NewVerticalLayout()
	assert.Panics(t, func() { l.MeasureViewport(5, nil) })
	assert.Panics(t, func() { l.VisibleIndices(0, 0, 100, 100, 5, nil) })
}

func TestVerticalSetterPanics(t *testing.T) {
	l := NewVerticalLayout()
	assert.Panics(t, func() { l.SetRequestedRowCount(-1) })
	assert.Panics(t, func() { l.SetBeforeVirtualizedItemCount(-1) })
	assert.Panics(t, func() { l.SetAfterVirtualizedItemCount(-1) })
}

func TestVerticalScrollPositionForIndex(t *testing.T) {
	l := NewVerticalLayout()
	l.SetUseVirtualLayout(true)
	l.SetTypicalItem(NewBox(100, 20))
	items := make([]Item, 10)

	// middle alignment (the default) centers the item in the viewport
	_, sy := l.ScrollPositionForIndex(5, items, 0, 0, 100, 60)
	assert.Equal(t, float32(80), sy)

	l.SetScrollAlign(align.Top)
	_, sy = l.ScrollPositionForIndex(5, items, 0, 0, 100, 60)
	assert.Equal(t, float32(100), sy)
}

func TestVerticalNearestScrollPosition(t *testing.T) {
	l := NewVerticalLayout()
	l.SetUseVirtualLayout(true)
	l.SetTypicalItem(NewBox(100, 20))
	items := make([]Item, 10)

	// already visible: unchanged
	_, sy := l.NearestScrollPositionForIndex(5, 0, 90, items, 0, 0, 100, 60)
	assert.Equal(t, float32(90), sy)

	// below the window: flush with the bottom edge
	_, sy = l.NearestScrollPositionForIndex(5, 0, 0, items, 0, 0, 100, 60)
	assert.Equal(t, float32(60), sy)

	// above the window: flush with the top edge
	_, sy = l.NearestScrollPositionForIndex(5, 0, 150, items, 0, 0, 100, 60)
	assert.Equal(t, float32(100), sy)

	// an item taller than the window always aligns to its top edge
	_, sy = l.NearestScrollPositionForIndex(5, 0, 0, items, 0, 0, 100, 10)
	assert.Equal(t, float32(100), sy)
}

func TestVerticalNavigationSkipsHeaders(t *testing.T) {
	l := NewVerticalLayout()
	l.SetTypicalItem(NewBox(100, 20))
	l.SetHeaderIndices([]int{0, 3})
	items := []Item{NewBox(100, 20), NewBox(100, 20), NewBox(100, 20), NewBox(100, 20), NewBox(100, 20)}

	assert.Equal(t, 2, l.NavigationDestination(items, 1, NavDown, 100, 100))
	assert.Equal(t, 4, l.NavigationDestination(items, 2, NavDown, 100, 100))
	assert.Equal(t, 2, l.NavigationDestination(items, 4, NavUp, 100, 100))
	assert.Equal(t, 1, l.NavigationDestination(items, 4, NavHome, 100, 100))
	assert.Equal(t, 4, l.NavigationDestination(items, 1, NavEnd, 100, 100))
}

func TestVerticalNavigationPaging(t *testing.T) {
	l := NewVerticalLayout()
	l.SetTypicalItem(NewBox(100, 20))
	items := make([]Item, 0, 20)
	for i := 0; i < 20; i++ {
		items = append(items, NewBox(100, 20))
	}
	// 100px window over 20px rows: page moves by 5 rows
	assert.Equal(t, 5, l.NavigationDestination(items, 0, NavPageDown, 100, 100))
	assert.Equal(t, 5, l.NavigationDestination(items, 10, NavPageUp, 100, 100))
}

func TestVerticalStickyHeaderPins(t *testing.T) {
	l := NewVerticalLayout()
	l.SetHeaderIndices([]int{0, 3})
	l.SetStickyHeader(true)
	items := []Item{NewBox(100, 20), NewBox(100, 20), NewBox(100, 20), NewBox(100, 20), NewBox(100, 20)}
	bounds := NewViewportBounds().SetExplicit(100, 60)
	bounds.SetScroll(0, 30)
	l.Layout(items, bounds, nil)
	// header 0 pinned to the scroll offset, clamped below header 3
	assert.Equal(t, float32(30), items[0].Y())
	assert.Equal(t, 0, l.PinnedHeaderIndex())

	bounds.SetScroll(0, 50)
	l.Layout(items, bounds, nil)
	// header 3 sits at y=60; header 0 clamps to 60-20=40
	assert.Equal(t, float32(40), items[0].Y())
}

func TestVerticalCacheCorrectionNotifies(t *testing.T) {
	l := NewVerticalLayout()
	l.SetUseVirtualLayout(true)
	l.SetHasVariableItemDimensions(true)
	l.SetTypicalItem(NewBox(100, 20))
	changes := 0
	l.OnChange(func() { changes++ })
	items := []Item{NewBox(100, 35), nil, nil}
	l.Layout(items, NewViewportBounds().SetExplicit(100, 100), nil)
	require.Equal(t, 1, changes)

	// unchanged measurement: no further notification
	l.Layout(items, NewViewportBounds().SetExplicit(100, 100), nil)
	assert.Equal(t, 1, changes)
}

func TestVerticalTrimmedBeforeAfter(t *testing.T) {
	l := NewVerticalLayout()
	l.SetUseVirtualLayout(true)
	l.SetTypicalItem(NewBox(100, 20))
	l.SetGap(5)
	l.SetBeforeVirtualizedItemCount(2)
	l.SetAfterVirtualizedItemCount(3)
	items := []Item{NewBox(100, 20), NewBox(100, 20)}
	res := l.Layout(items, NewViewportBounds().SetExplicit(100, 100), nil)
	// first real item sits after two trimmed rows
	assert.Equal(t, float32(50), items[0].Y())
	// 7 rows total: 7*20 + 6*5 = 170
	assert.Equal(t, float32(170), res.ContentHeight)
}

func TestVerticalDropIndex(t *testing.T) {
	l := NewVerticalLayout()
	items := []Item{NewBox(100, 20), NewBox(100, 20), NewBox(100, 20)}
	l.Layout(items, nil, nil)
	assert.Equal(t, 0, l.DropIndex(10, 5, items, 0, 0, 100, 100))
	assert.Equal(t, 1, l.DropIndex(10, 25, items, 0, 0, 100, 100))
	assert.Equal(t, 3, l.DropIndex(10, 100, items, 0, 0, 100, 100))
}

func TestVerticalDropIndicatorRect(t *testing.T) {
	l := NewVerticalLayout()
	l.SetGap(10)
	items := []Item{NewBox(100, 20), NewBox(100, 20)}
	l.Layout(items, nil, nil)
	// boundary between items 0 and 1 is centered in the gap at y=25
	_, iy, iw, ih := l.DropIndicatorRect(1, items, 0, 0, 100, 2)
	assert.Equal(t, float32(24), iy)
	assert.Equal(t, float32(100), iw)
	assert.Equal(t, float32(2), ih)
}

func TestVerticalChangeNotification(t *testing.T) {
	l := NewVerticalLayout()
	changes := 0
	l.OnChange(func() { changes++ })
	l.SetGap(5)
	l.SetGap(5) // unchanged: no notification
	l.SetPadding(1, 2, 3, 4)
	assert.Equal(t, 2, changes)
}
