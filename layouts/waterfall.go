// Copyright (c) 2025, Mosaic Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layouts

import (
	"fmt"

	"github.com/chewxy/math32"
)

// WaterfallLayout positions items in a fixed number of equal-width
// columns, appending each item to whichever column is currently the
// shortest. Item widths are coerced to the column width and heights
// re-measured before placement, so items keep their own heights while
// columns stay balanced.
type WaterfallLayout struct {
	LayoutBase

	horizontalGap float32
	verticalGap   float32

	requestedColumnCount int

	hasVariableItemDimensions bool
	heights                   VariableDimensions

	colHeights []float32 // scratch, reset on every placement walk
}

// NewWaterfallLayout returns a waterfall layout with zero gaps, no
// padding, and a column count derived from the available width.
func NewWaterfallLayout() *WaterfallLayout {
	return &WaterfallLayout{}
}

// Caps implements [Layouter].
func (l *WaterfallLayout) Caps() Capabilities {
	return Capabilities{Virtualization: true, VariableItemSizes: true}
}

// HorizontalGap returns the gap between columns.
func (l *WaterfallLayout) HorizontalGap() float32 { return l.horizontalGap }

// SetHorizontalGap sets the gap between columns.
func (l *WaterfallLayout) SetHorizontalGap(gap float32) {
	if l.horizontalGap == gap {
		return
	}
	l.horizontalGap = gap
	l.SendChange()
}

// VerticalGap returns the gap between consecutive items in a column.
func (l *WaterfallLayout) VerticalGap() float32 { return l.verticalGap }

// SetVerticalGap sets the gap between consecutive items in a column.
func (l *WaterfallLayout) SetVerticalGap(gap float32) {
	if l.verticalGap == gap {
		return
	}
	l.verticalGap = gap
	l.SendChange()
}

// SetGap sets both the horizontal and vertical gaps.
func (l *WaterfallLayout) SetGap(gap float32) {
	if l.horizontalGap == gap && l.verticalGap == gap {
		return
	}
	l.horizontalGap = gap
	l.verticalGap = gap
	l.SendChange()
}

// RequestedColumnCount returns the requested number of columns; 0
// derives the count from the available width and the typical item.
func (l *WaterfallLayout) RequestedColumnCount() int { return l.requestedColumnCount }

// SetRequestedColumnCount fixes the number of columns. A negative
// count is programmer error.
func (l *WaterfallLayout) SetRequestedColumnCount(n int) {
	if n < 0 {
		panic(fmt.Sprintf("layouts: RequestedColumnCount must be non-negative, not %d", n))
	}
	if l.requestedColumnCount == n {
		return
	}
	l.requestedColumnCount = n
	l.SendChange()
}

// HasVariableItemDimensions reports whether per-item heights are
// cached for virtualization.
func (l *WaterfallLayout) HasVariableItemDimensions() bool { return l.hasVariableItemDimensions }

// SetHasVariableItemDimensions enables the per-item height cache used
// to estimate placement of virtualized placeholders.
func (l *WaterfallLayout) SetHasVariableItemDimensions(on bool) {
	if l.hasVariableItemDimensions == on {
		return
	}
	l.hasVariableItemDimensions = on
	l.SendChange()
}

// ResetCache clears all cached item heights.
func (l *WaterfallLayout) ResetCache() {
	l.heights.Reset()
	l.SendChange()
}

// ResetCacheAt clears the cached height for one item.
func (l *WaterfallLayout) ResetCacheAt(index int) {
	l.heights.ResetAt(index)
	l.SendChange()
}

// InsertCacheAt opens a hole in the height cache for a newly inserted
// item.
func (l *WaterfallLayout) InsertCacheAt(index int) {
	l.heights.Insert(index)
	l.SendChange()
}

// RemoveCacheAt drops the cached height of a removed item.
func (l *WaterfallLayout) RemoveCacheAt(index int) {
	l.heights.Remove(index)
	l.SendChange()
}

// columnCount derives the number of columns from the available width
// and the typical item width.
func (l *WaterfallLayout) columnCount(availableW float32, itemCount int) int {
	if l.requestedColumnCount > 0 {
		return l.requestedColumnCount
	}
	typW, _ := l.typicalSize()
	cols := 1
	if !math32.IsNaN(availableW) && !math32.IsInf(availableW, 1) && typW+l.horizontalGap > 0 {
		cols = int(math32.Floor((availableW - l.padding.Left - l.padding.Right + l.horizontalGap) / (typW + l.horizontalGap)))
		if cols < 1 {
			cols = 1
		}
	} else if itemCount > 0 {
		cols = itemCount
	}
	return cols
}

// shortestColumn returns the index of the shortest column, first seen
// on ties.
func shortestColumn(heights []float32) int {
	best := 0
	for i := 1; i < len(heights); i++ {
		if heights[i] < heights[best] {
			best = i
		}
	}
	return best
}

// estimatedHeight returns the height to use for a virtualized
// placeholder at index: the cached measurement when present, else the
// typical item's height.
func (l *WaterfallLayout) estimatedHeight(index int) float32 {
	if l.hasVariableItemDimensions {
		if h := l.heights.At(index); !math32.IsNaN(h) {
			return h
		}
	}
	_, typH := l.typicalSize()
	return typH
}

// Layout implements [Layouter].
func (l *WaterfallLayout) Layout(items []Item, bounds *ViewportBounds, result *Result) *Result {
	if bounds == nil {
		bounds = NewViewportBounds()
	}
	if result == nil {
		result = &Result{}
	}
	boundsX, boundsY := bounds.X, bounds.Y
	explicitW, explicitH := bounds.ExplicitWidth, bounds.ExplicitHeight
	needsW := math32.IsNaN(explicitW)
	needsH := math32.IsNaN(explicitH)

	widthForColumns := explicitW
	if needsW {
		widthForColumns = bounds.MaxWidth
	}
	cols := l.columnCount(widthForColumns, len(items))

	definiteW := explicitW
	if math32.IsNaN(definiteW) && !math32.IsInf(bounds.MaxWidth, 1) {
		definiteW = bounds.MaxWidth
	}
	var colW float32
	if !math32.IsNaN(definiteW) {
		colW = (definiteW - l.padding.Left - l.padding.Right - float32(cols-1)*l.horizontalGap) / float32(cols)
	} else {
		colW, _ = l.typicalSize()
	}

	if cap(l.colHeights) < cols {
		l.colHeights = make([]float32, cols)
	}
	l.colHeights = l.colHeights[:cols]
	for i := range l.colHeights {
		l.colHeights[i] = 0
	}

	index := 0
	for _, it := range items {
		if it == nil {
			if !l.useVirtualLayout {
				continue
			}
			h := l.estimatedHeight(index)
			col := shortestColumn(l.colHeights)
			l.colHeights[col] += h + l.verticalGap
			index++
			continue
		}
		if !includeInLayout(it) {
			continue
		}
		// coerce to the column width, then re-measure: items that
		// preserve aspect ratio report a new height here
		if it.Width() != colW {
			it.SetWidth(colW)
		}
		validateItem(it)
		h := it.Height()
		if l.hasVariableItemDimensions {
			cached := l.heights.At(index)
			if math32.IsNaN(cached) || cached != h {
				l.heights.Set(index, h)
				l.SendChange()
			}
		}
		col := shortestColumn(l.colHeights)
		x := boundsX + l.padding.Left + float32(col)*(colW+l.horizontalGap)
		y := boundsY + l.padding.Top + l.colHeights[col]
		setPosition(it, x, y)
		l.colHeights[col] += h + l.verticalGap
		index++
	}

	tallest := float32(0)
	placed := false
	for _, ch := range l.colHeights {
		if ch > 0 {
			placed = true
		}
		if ch > tallest {
			tallest = ch
		}
	}
	contentH := l.padding.Top + l.padding.Bottom
	if placed {
		contentH += tallest - l.verticalGap
	}
	contentW := l.padding.Left + l.padding.Right + float32(cols)*(colW+l.horizontalGap) - l.horizontalGap

	availableW := explicitW
	if needsW {
		availableW = clamp(contentW, bounds.MinWidth, bounds.MaxWidth)
	}
	availableH := explicitH
	if needsH {
		availableH = clamp(contentH, bounds.MinHeight, bounds.MaxHeight)
	}

	if LayoutTrace {
		fmt.Println("WaterfallLayout: items:", len(items), "cols:", cols, "colW:", colW, "contentH:", contentH)
	}

	result.ContentX = boundsX
	result.ContentY = boundsY
	result.ContentWidth = contentW
	result.ContentHeight = contentH
	result.ViewportWidth = availableW
	result.ViewportHeight = availableH
	return result
}

// simulate walks the greedy placement for the first itemCount items
// using cached or typical heights, calling visit with each item's
// column, y position, and height. visit returning false stops the
// walk.
func (l *WaterfallLayout) simulate(itemCount, cols int, visit func(index, col int, y, h float32) bool) {
	if cap(l.colHeights) < cols {
		l.colHeights = make([]float32, cols)
	}
	l.colHeights = l.colHeights[:cols]
	for i := range l.colHeights {
		l.colHeights[i] = 0
	}
	for i := 0; i < itemCount; i++ {
		h := l.estimatedHeight(i)
		col := shortestColumn(l.colHeights)
		y := l.padding.Top + l.colHeights[col]
		if !visit(i, col, y, h) {
			return
		}
		l.colHeights[col] += h + l.verticalGap
	}
}

// MeasureViewport estimates the viewport size by simulating placement
// with cached or typical heights. Requires UseVirtualLayout.
func (l *WaterfallLayout) MeasureViewport(itemCount int, bounds *ViewportBounds) (w, h float32) {
	l.requireVirtual("MeasureViewport")
	if bounds == nil {
		bounds = NewViewportBounds()
	}
	widthForColumns := bounds.ExplicitWidth
	if math32.IsNaN(widthForColumns) {
		widthForColumns = bounds.MaxWidth
	}
	cols := l.columnCount(widthForColumns, itemCount)
	typW, _ := l.typicalSize()
	colW := typW
	if !math32.IsNaN(widthForColumns) && !math32.IsInf(widthForColumns, 1) {
		colW = (widthForColumns - l.padding.Left - l.padding.Right - float32(cols-1)*l.horizontalGap) / float32(cols)
	}
	w = bounds.ExplicitWidth
	if math32.IsNaN(w) {
		measured := l.padding.Left + l.padding.Right + float32(cols)*(colW+l.horizontalGap) - l.horizontalGap
		w = clamp(measured, bounds.MinWidth, bounds.MaxWidth)
	}
	h = bounds.ExplicitHeight
	if math32.IsNaN(h) {
		tallest := float32(0)
		l.simulate(itemCount, cols, func(index, col int, y, ih float32) bool {
			if bottom := y + ih; bottom > tallest {
				tallest = bottom
			}
			return true
		})
		h = clamp(tallest+l.padding.Bottom, bounds.MinHeight, bounds.MaxHeight)
	}
	return w, h
}

// VisibleIndices returns every item whose simulated placement
// intersects the scroll window, plus one extra item per column on each
// side to absorb estimate error. Requires UseVirtualLayout.
func (l *WaterfallLayout) VisibleIndices(scrollX, scrollY, width, height float32, itemCount int, buf []int) []int {
	l.requireVirtual("VisibleIndices")
	buf = buf[:0]
	if itemCount == 0 {
		return buf
	}
	cols := l.columnCount(width, itemCount)
	top := scrollY
	bottom := scrollY + height
	lastAbove := -1
	firstBelow := itemCount
	l.simulate(itemCount, cols, func(index, col int, y, h float32) bool {
		if y+h < top {
			lastAbove = index
			return true
		}
		if y > bottom {
			if index < firstBelow {
				firstBelow = index
			}
			// later items in other columns may still start above
			// bottom, keep walking until a full column round passes
			return index < firstBelow+cols
		}
		return true
	})
	first := lastAbove - cols + 1
	if first < 0 {
		first = 0
	}
	last := firstBelow + cols - 1
	if last >= itemCount {
		last = itemCount - 1
	}
	for i := first; i <= last; i++ {
		buf = append(buf, i)
	}
	return buf
}

// ScrollPositionForIndex returns the scroll offset that puts the item
// at index at the top of the viewport.
func (l *WaterfallLayout) ScrollPositionForIndex(index int, itemCount int, x, y, width, height float32) (sx, sy float32) {
	cols := l.columnCount(width, maxInt(itemCount, index+1))
	var itemY float32
	l.simulate(index+1, cols, func(i, col int, iy, h float32) bool {
		if i == index {
			itemY = iy
			return false
		}
		return true
	})
	return 0, itemY
}

// NearestScrollPositionForIndex returns the current scroll position
// unchanged if the item at index is already fully visible, else the
// smallest scroll adjustment that reveals it. Equal distances resolve
// to the top edge.
func (l *WaterfallLayout) NearestScrollPositionForIndex(index int, scrollX, scrollY float32, itemCount int, x, y, width, height float32) (sx, sy float32) {
	cols := l.columnCount(width, maxInt(itemCount, index+1))
	var itemY, itemH float32
	l.simulate(index+1, cols, func(i, col int, iy, h float32) bool {
		if i == index {
			itemY, itemH = iy, h
			return false
		}
		return true
	})
	topPos := itemY
	bottomPos := itemY + itemH - height
	if bottomPos > topPos {
		bottomPos = topPos
	}
	if scrollY >= bottomPos && scrollY <= topPos {
		return scrollX, scrollY
	}
	if math32.Abs(scrollY-topPos) <= math32.Abs(scrollY-bottomPos) {
		return scrollX, topPos
	}
	return scrollX, bottomPos
}

// NavigationDestination maps a navigation key to a target item index.
// Horizontal moves step by one item, vertical moves step by one column
// round, pages step by the number of estimated rows that fit.
func (l *WaterfallLayout) NavigationDestination(itemCount, index int, key NavKey, width, height float32) int {
	if itemCount == 0 {
		return -1
	}
	cols := l.columnCount(width, itemCount)
	target := index
	switch key {
	case NavHome:
		return 0
	case NavEnd:
		return itemCount - 1
	case NavLeft:
		target = index - 1
	case NavRight:
		target = index + 1
	case NavUp:
		target = index - cols
	case NavDown:
		target = index + cols
	case NavPageUp, NavPageDown:
		_, typH := l.typicalSize()
		step := cols
		if typH+l.verticalGap > 0 {
			rows := int(math32.Floor(height / (typH + l.verticalGap)))
			if rows < 1 {
				rows = 1
			}
			step = rows * cols
		}
		if key == NavPageUp {
			target = index - step
		} else {
			target = index + step
		}
	}
	if target < 0 {
		target = 0
	}
	if target >= itemCount {
		target = itemCount - 1
	}
	return target
}
