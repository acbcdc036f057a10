// Copyright (c) 2025, Mosaic Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layouts

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/mosaicui/mosaic/align"
)

// SpinnerLayout stacks items into uniform full-width rows, one row per
// item, for picker-style controls. When repeat is enabled and there
// are enough items to fill the visible window with distinct rows, the
// rows wrap around: scrolling past the last item continues seamlessly
// at the first, and content bounds are reported as unbounded so the
// container never clamps the scroll position.
type SpinnerLayout struct {
	LayoutBase

	gap float32

	horizontalAlign align.Horizontal

	requestedRowCount int
	repeatEnabled     bool

	// repeatActive is recomputed on every Layout call
	repeatActive bool
}

// NewSpinnerLayout returns a spinner layout with zero gap, justified
// rows, three visible rows, and repeat enabled.
func NewSpinnerLayout() *SpinnerLayout {
	return &SpinnerLayout{
		horizontalAlign:   align.HJustify,
		requestedRowCount: 3,
		repeatEnabled:     true,
	}
}

// Caps implements [Layouter].
func (l *SpinnerLayout) Caps() Capabilities {
	return Capabilities{Virtualization: true}
}

// Gap returns the space between rows.
func (l *SpinnerLayout) Gap() float32 { return l.gap }

// SetGap sets the space between rows.
func (l *SpinnerLayout) SetGap(gap float32) {
	if l.gap == gap {
		return
	}
	l.gap = gap
	l.SendChange()
}

// HorizontalAlign returns the alignment of each item within its row.
func (l *SpinnerLayout) HorizontalAlign() align.Horizontal { return l.horizontalAlign }

// SetHorizontalAlign sets the alignment of each item within its row.
// [align.HJustify] stretches the item to the row width.
func (l *SpinnerLayout) SetHorizontalAlign(h align.Horizontal) {
	if l.horizontalAlign == h {
		return
	}
	l.horizontalAlign = h
	l.SendChange()
}

// RequestedRowCount returns the number of rows the viewport shows.
func (l *SpinnerLayout) RequestedRowCount() int { return l.requestedRowCount }

// SetRequestedRowCount sets how many rows the viewport shows when no
// explicit height is given. A count below 1 is programmer error.
func (l *SpinnerLayout) SetRequestedRowCount(n int) {
	if n < 1 {
		panic(fmt.Sprintf("layouts: RequestedRowCount must be at least 1, not %d", n))
	}
	if l.requestedRowCount == n {
		return
	}
	l.requestedRowCount = n
	l.SendChange()
}

// RepeatEnabled reports whether wraparound is requested.
func (l *SpinnerLayout) RepeatEnabled() bool { return l.repeatEnabled }

// SetRepeatEnabled requests wraparound addressing. Wraparound only
// activates when the items can fill the visible window with distinct
// rows.
func (l *SpinnerLayout) SetRepeatEnabled(on bool) {
	if l.repeatEnabled == on {
		return
	}
	l.repeatEnabled = on
	l.SendChange()
}

// RepeatActive reports whether the last Layout call used wraparound
// addressing.
func (l *SpinnerLayout) RepeatActive() bool { return l.repeatActive }

// rowHeight returns the uniform row height: the typical item's height
// when virtualized, else the maximum across all items.
func (l *SpinnerLayout) rowHeight(items []Item) float32 {
	if l.useVirtualLayout {
		_, h := l.typicalSize()
		return h
	}
	var h float32
	for _, it := range items {
		if it == nil || !includeInLayout(it) {
			continue
		}
		validateItem(it)
		if ih := it.Height(); ih > h {
			h = ih
		}
	}
	return h
}

// Layout implements [Layouter].
func (l *SpinnerLayout) Layout(items []Item, bounds *ViewportBounds, result *Result) *Result {
	if bounds == nil {
		bounds = NewViewportBounds()
	}
	if result == nil {
		result = &Result{}
	}
	boundsX, boundsY := bounds.X, bounds.Y

	rowH := l.rowHeight(items)

	itemCount := 0
	var maxW float32
	for _, it := range items {
		if it == nil {
			if l.useVirtualLayout {
				itemCount++
			}
			continue
		}
		if !includeInLayout(it) {
			continue
		}
		validateItem(it)
		itemCount++
		if w := it.Width(); w > maxW {
			maxW = w
		}
	}
	if l.useVirtualLayout {
		if typW, _ := l.typicalSize(); typW > maxW {
			maxW = typW
		}
	}

	availableW := bounds.ExplicitWidth
	if math32.IsNaN(availableW) {
		availableW = clamp(maxW+l.padding.Left+l.padding.Right, bounds.MinWidth, bounds.MaxWidth)
	}
	availableH := bounds.ExplicitHeight
	if math32.IsNaN(availableH) {
		measured := float32(l.requestedRowCount)*(rowH+l.gap) - l.gap + l.padding.Top + l.padding.Bottom
		if l.requestedRowCount == 0 || rowH == 0 {
			measured = l.padding.Top + l.padding.Bottom
		}
		availableH = clamp(measured, bounds.MinHeight, bounds.MaxHeight)
	}

	totalH := float32(itemCount) * (rowH + l.gap)
	// wraparound needs enough distinct rows to cover the window plus
	// the row entering at each edge
	l.repeatActive = l.repeatEnabled && itemCount > 0 && totalH >= availableH+2*(rowH+l.gap)

	rowW := availableW - l.padding.Left - l.padding.Right

	index := 0
	for _, it := range items {
		if it == nil {
			if l.useVirtualLayout {
				index++
			}
			continue
		}
		if !includeInLayout(it) {
			continue
		}
		validateItem(it)
		y := boundsY + l.padding.Top + float32(index)*(rowH+l.gap)
		if l.repeatActive {
			// wrap the row nearest to the current scroll window
			y = l.wrappedRowY(boundsY, float32(index), bounds.ScrollY, totalH, rowH)
		}
		x := boundsX + l.padding.Left
		switch l.horizontalAlign {
		case align.HJustify:
			it.SetWidth(rowW)
			validateItem(it)
		case align.HCenter:
			x += math32.Round((rowW - it.Width()) / 2)
		case align.Right:
			x += rowW - it.Width()
		}
		setPosition(it, x, y)
		index++
	}

	if LayoutTrace {
		fmt.Println("SpinnerLayout: items:", itemCount, "rowH:", rowH, "repeat:", l.repeatActive)
	}

	result.ContentX = boundsX
	result.ContentY = boundsY
	result.ContentWidth = availableW
	if l.repeatActive {
		result.ContentY = math32.Inf(-1)
		result.ContentHeight = math32.Inf(1)
	} else {
		contentH := l.padding.Top + l.padding.Bottom
		if itemCount > 0 {
			contentH += totalH - l.gap
		}
		result.ContentHeight = contentH
	}
	result.ViewportWidth = availableW
	result.ViewportHeight = availableH
	return result
}

// wrappedRowY places a row at the copy of its modular position nearest
// to the scroll window.
func (l *SpinnerLayout) wrappedRowY(boundsY, row, scrollY, totalH, rowH float32) float32 {
	base := l.padding.Top + row*(rowH+l.gap)
	offset := math32.Mod(base-scrollY, totalH)
	if offset < 0 {
		offset += totalH
	}
	// shift rows that would trail far below the window to the copy
	// just above it instead
	if offset > totalH-(rowH+l.gap) {
		offset -= totalH
	}
	return boundsY + scrollY + offset
}

// MeasureViewport estimates the viewport size from the typical item
// and the requested row count. Requires UseVirtualLayout.
func (l *SpinnerLayout) MeasureViewport(itemCount int, bounds *ViewportBounds) (w, h float32) {
	l.requireVirtual("MeasureViewport")
	if bounds == nil {
		bounds = NewViewportBounds()
	}
	typW, typH := l.typicalSize()
	w = bounds.ExplicitWidth
	if math32.IsNaN(w) {
		w = clamp(typW+l.padding.Left+l.padding.Right, bounds.MinWidth, bounds.MaxWidth)
	}
	h = bounds.ExplicitHeight
	if math32.IsNaN(h) {
		rows := l.requestedRowCount
		if rows > itemCount && itemCount > 0 && !l.repeatEnabled {
			rows = itemCount
		}
		measured := l.padding.Top + l.padding.Bottom
		if rows > 0 && typH > 0 {
			measured += float32(rows)*(typH+l.gap) - l.gap
		}
		h = clamp(measured, bounds.MinHeight, bounds.MaxHeight)
	}
	return w, h
}

// VisibleIndices returns the rows within the scroll window, using
// modular addressing when wraparound is active. Requires
// UseVirtualLayout.
func (l *SpinnerLayout) VisibleIndices(scrollX, scrollY, width, height float32, itemCount int, buf []int) []int {
	l.requireVirtual("VisibleIndices")
	buf = buf[:0]
	if itemCount == 0 {
		return buf
	}
	_, typH := l.typicalSize()
	rowH := typH + l.gap
	if rowH <= 0 {
		for i := 0; i < itemCount; i++ {
			buf = append(buf, i)
		}
		return buf
	}
	totalH := float32(itemCount) * rowH
	repeat := l.repeatEnabled && totalH >= height+2*rowH
	firstRow := int(math32.Floor((scrollY - l.padding.Top) / rowH))
	visibleRows := int(math32.Ceil(height/rowH)) + 1
	if repeat {
		for r := firstRow; r < firstRow+visibleRows; r++ {
			i := r % itemCount
			if i < 0 {
				i += itemCount
			}
			buf = append(buf, i)
		}
		return buf
	}
	if visibleRows > itemCount {
		visibleRows = itemCount
	}
	if firstRow < 0 {
		firstRow = 0
	}
	if firstRow+visibleRows > itemCount {
		firstRow = itemCount - visibleRows
	}
	for r := firstRow; r < firstRow+visibleRows; r++ {
		buf = append(buf, r)
	}
	return buf
}

// ScrollPositionForIndex returns the scroll offset that puts the row
// at index at the top of the viewport.
func (l *SpinnerLayout) ScrollPositionForIndex(index int, itemCount int, height float32) (sx, sy float32) {
	_, typH := l.typicalSize()
	return 0, l.padding.Top + float32(index)*(typH+l.gap)
}

// NearestScrollPositionForIndex returns the scroll position for the
// copy of the row at index nearest to the current scroll position.
// Without wraparound this is the plain row position clamped to
// visibility.
func (l *SpinnerLayout) NearestScrollPositionForIndex(index int, scrollX, scrollY float32, itemCount int, height float32) (sx, sy float32) {
	_, typH := l.typicalSize()
	rowH := typH + l.gap
	base := l.padding.Top + float32(index)*rowH
	totalH := float32(itemCount) * rowH
	if l.repeatEnabled && totalH >= height+2*rowH && totalH > 0 {
		// candidates: the modular copies adjacent to the current
		// position
		k := math32.Round((scrollY - base) / totalH)
		best := base + k*totalH
		for _, cand := range []float32{base + (k-1)*totalH, base + (k+1)*totalH} {
			if math32.Abs(cand-scrollY) < math32.Abs(best-scrollY) {
				best = cand
			}
		}
		return scrollX, best
	}
	topPos := base
	bottomPos := base + typH - height
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

// NavigationDestination maps a navigation key to a target row index,
// wrapping when repeat is enabled.
func (l *SpinnerLayout) NavigationDestination(itemCount, index int, key NavKey, height float32) int {
	if itemCount == 0 {
		return -1
	}
	_, typH := l.typicalSize()
	step := 1
	switch key {
	case NavHome:
		return 0
	case NavEnd:
		return itemCount - 1
	case NavUp, NavLeft:
		step = -1
	case NavDown, NavRight:
		step = 1
	case NavPageUp, NavPageDown:
		if typH+l.gap > 0 {
			step = int(math32.Floor(height / (typH + l.gap)))
			if step < 1 {
				step = 1
			}
		}
		if key == NavPageUp {
			step = -step
		}
	}
	target := index + step
	if l.repeatEnabled {
		target = target % itemCount
		if target < 0 {
			target += itemCount
		}
		return target
	}
	if target < 0 {
		target = 0
	}
	if target >= itemCount {
		target = itemCount - 1
	}
	return target
}
