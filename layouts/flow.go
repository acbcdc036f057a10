// Copyright (c) 2025, Mosaic Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layouts

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/mosaicui/mosaic/align"
)

// flowRow is one wrapped row: a half-open range of item indices plus
// the row's packed width and height.
type flowRow struct {
	start, end    int
	width, height float32
}

// FlowLayout packs items left to right, wrapping to a new row whenever
// the next item would overflow the available width. Each row is as tall
// as its tallest item. Rows are aligned independently; the whole block
// is then aligned vertically within the viewport.
type FlowLayout struct {
	LayoutBase

	horizontalGap float32
	verticalGap   float32

	horizontalAlign  align.Horizontal
	verticalAlign    align.Vertical
	rowVerticalAlign align.Vertical

	rows       []flowRow // scratch, reset on every Layout call
	itemWidths []float32 // scratch
	itemHeight []float32 // scratch
}

// NewFlowLayout returns a flow layout with zero gaps, no padding, and
// top-left alignment.
func NewFlowLayout() *FlowLayout {
	return &FlowLayout{}
}

// Caps implements [Layouter].
func (l *FlowLayout) Caps() Capabilities {
	return Capabilities{Virtualization: true}
}

// HorizontalGap returns the gap between items within a row.
func (l *FlowLayout) HorizontalGap() float32 { return l.horizontalGap }

// SetHorizontalGap sets the gap between items within a row.
func (l *FlowLayout) SetHorizontalGap(gap float32) {
	if l.horizontalGap == gap {
		return
	}
	l.horizontalGap = gap
	l.SendChange()
}

// VerticalGap returns the gap between rows.
func (l *FlowLayout) VerticalGap() float32 { return l.verticalGap }

// SetVerticalGap sets the gap between rows.
func (l *FlowLayout) SetVerticalGap(gap float32) {
	if l.verticalGap == gap {
		return
	}
	l.verticalGap = gap
	l.SendChange()
}

// SetGap sets both the horizontal and vertical gaps.
func (l *FlowLayout) SetGap(gap float32) {
	if l.horizontalGap == gap && l.verticalGap == gap {
		return
	}
	l.horizontalGap = gap
	l.verticalGap = gap
	l.SendChange()
}

// HorizontalAlign returns the alignment of each row within the content
// width.
func (l *FlowLayout) HorizontalAlign() align.Horizontal { return l.horizontalAlign }

// SetHorizontalAlign sets the alignment of each row within the content
// width.
func (l *FlowLayout) SetHorizontalAlign(h align.Horizontal) {
	if l.horizontalAlign == h {
		return
	}
	l.horizontalAlign = h
	l.SendChange()
}

// VerticalAlign returns the alignment of the whole block when it is
// smaller than the viewport.
func (l *FlowLayout) VerticalAlign() align.Vertical { return l.verticalAlign }

// SetVerticalAlign sets the alignment of the whole block when it is
// smaller than the viewport.
func (l *FlowLayout) SetVerticalAlign(v align.Vertical) {
	if l.verticalAlign == v {
		return
	}
	l.verticalAlign = v
	l.SendChange()
}

// RowVerticalAlign returns the alignment of each item within its row.
func (l *FlowLayout) RowVerticalAlign() align.Vertical { return l.rowVerticalAlign }

// SetRowVerticalAlign sets the alignment of each item within its row.
// [align.VJustify] stretches items to the row height.
func (l *FlowLayout) SetRowVerticalAlign(v align.Vertical) {
	if l.rowVerticalAlign == v {
		return
	}
	l.rowVerticalAlign = v
	l.SendChange()
}

// Layout implements [Layouter].
func (l *FlowLayout) Layout(items []Item, bounds *ViewportBounds, result *Result) *Result {
	if bounds == nil {
		bounds = NewViewportBounds()
	}
	if result == nil {
		result = &Result{}
	}
	boundsX, boundsY := bounds.X, bounds.Y
	explicitW, explicitH := bounds.ExplicitWidth, bounds.ExplicitHeight
	minW, minH := bounds.MinWidth, bounds.MinHeight
	maxW, maxH := bounds.MaxWidth, bounds.MaxHeight
	needsW := math32.IsNaN(explicitW)
	needsH := math32.IsNaN(explicitH)

	var typW, typH float32
	if l.useVirtualLayout {
		typW, typH = l.typicalSize()
	}

	// The wrap limit: explicit width when given, else the max width
	// constraint, else unbounded (a single row).
	wrapW := explicitW
	if needsW {
		wrapW = maxW
	}

	itemCount := len(items)
	l.rows = l.rows[:0]
	l.itemWidths = resizeScratch(l.itemWidths, itemCount)
	l.itemHeight = resizeScratch(l.itemHeight, itemCount)

	// Pass 1: measure and greedily partition into rows. An excluded
	// item is marked NaN and occupies no row slot.
	rowStart := 0
	rowW, rowH := float32(0), float32(0)
	rowCount := 0
	maxRowW := float32(0)
	for i, it := range items {
		var w, h float32
		switch {
		case it == nil:
			if !l.useVirtualLayout {
				l.itemWidths[i] = math32.NaN()
				l.itemHeight[i] = math32.NaN()
				continue
			}
			w, h = typW, typH
		case !includeInLayout(it):
			l.itemWidths[i] = math32.NaN()
			l.itemHeight[i] = math32.NaN()
			continue
		default:
			validateItem(it)
			w, h = it.Width(), it.Height()
		}
		l.itemWidths[i] = w
		l.itemHeight[i] = h
		next := rowW
		if rowCount > 0 {
			next += l.horizontalGap
		}
		if rowCount > 0 && l.padding.Left+next+w > wrapW-l.padding.Right {
			l.rows = append(l.rows, flowRow{rowStart, i, rowW, rowH})
			if rowW > maxRowW {
				maxRowW = rowW
			}
			rowStart = i
			rowW, rowH = w, h
			rowCount = 1
			continue
		}
		rowW = next + w
		if h > rowH {
			rowH = h
		}
		rowCount++
	}
	if rowCount > 0 {
		l.rows = append(l.rows, flowRow{rowStart, itemCount, rowW, rowH})
		if rowW > maxRowW {
			maxRowW = rowW
		}
	}

	availableW := explicitW
	if needsW {
		availableW = clamp(maxRowW+l.padding.Left+l.padding.Right, minW, maxW)
	}

	// Pass 2: position rows using the final available width, so row
	// alignment never works from a provisional width.
	y := boundsY + l.padding.Top
	for _, row := range l.rows {
		var rowOffset float32
		switch l.horizontalAlign {
		case align.HCenter:
			rowOffset = math32.Round((availableW - l.padding.Left - l.padding.Right - row.width) / 2)
		case align.Right:
			rowOffset = availableW - l.padding.Left - l.padding.Right - row.width
		}
		x := boundsX + l.padding.Left + rowOffset
		for i := row.start; i < row.end; i++ {
			w := l.itemWidths[i]
			if math32.IsNaN(w) {
				continue
			}
			h := l.itemHeight[i]
			it := items[i]
			if it != nil {
				itemY := y
				switch l.rowVerticalAlign {
				case align.Middle:
					itemY += math32.Round((row.height - h) / 2)
				case align.Bottom:
					itemY += row.height - h
				case align.VJustify:
					it.SetHeight(row.height)
					validateItem(it)
				}
				setPosition(it, x, itemY)
			}
			x += w + l.horizontalGap
		}
		y += row.height + l.verticalGap
	}

	totalHeight := y - boundsY + l.padding.Bottom
	if len(l.rows) > 0 {
		totalHeight -= l.verticalGap
	}
	availableH := explicitH
	if needsH {
		availableH = clamp(totalHeight, minH, maxH)
	}

	// Whole-block vertical alignment.
	if totalHeight < availableH {
		var offset float32
		switch l.verticalAlign {
		case align.Bottom:
			offset = availableH - totalHeight
		case align.Middle:
			offset = math32.Round((availableH - totalHeight) / 2)
		}
		if offset != 0 {
			for _, it := range items {
				if it == nil || !includeInLayout(it) {
					continue
				}
				it.SetY(it.Y() + offset)
			}
		}
	}

	if LayoutTrace {
		fmt.Println("FlowLayout: items:", itemCount, "rows:", len(l.rows), "totalHeight:", totalHeight)
	}

	result.ContentX = boundsX
	result.ContentY = boundsY
	result.ContentWidth = maxRowW + l.padding.Left + l.padding.Right
	result.ContentHeight = totalHeight
	result.ViewportWidth = availableW
	result.ViewportHeight = availableH
	return result
}

// itemsPerRow estimates how many typical items fit in one row of the
// given width, at least 1.
func (l *FlowLayout) itemsPerRow(width, typW float32) int {
	if typW+l.horizontalGap <= 0 {
		return 1
	}
	n := int(math32.Floor((width - l.padding.Left - l.padding.Right + l.horizontalGap) / (typW + l.horizontalGap)))
	if n < 1 {
		n = 1
	}
	return n
}

// MeasureViewport estimates the viewport size from the typical item.
// Requires UseVirtualLayout.
func (l *FlowLayout) MeasureViewport(itemCount int, bounds *ViewportBounds) (w, h float32) {
	l.requireVirtual("MeasureViewport")
	if bounds == nil {
		bounds = NewViewportBounds()
	}
	typW, typH := l.typicalSize()
	w, h = bounds.ExplicitWidth, bounds.ExplicitHeight
	if math32.IsNaN(w) {
		w = clamp(typW+l.padding.Left+l.padding.Right, bounds.MinWidth, bounds.MaxWidth)
	}
	if math32.IsNaN(h) {
		perRow := l.itemsPerRow(w, typW)
		rowCount := (itemCount + perRow - 1) / perRow
		measured := l.padding.Top + l.padding.Bottom
		if rowCount > 0 {
			measured += float32(rowCount)*typH + float32(rowCount-1)*l.verticalGap
		}
		h = clamp(measured, bounds.MinHeight, bounds.MaxHeight)
	}
	return w, h
}

// VisibleIndices returns the indices of the rows intersecting the
// scroll window, expanded to whole rows and padded by one extra row.
// Requires UseVirtualLayout.
func (l *FlowLayout) VisibleIndices(scrollX, scrollY, width, height float32, itemCount int, buf []int) []int {
	l.requireVirtual("VisibleIndices")
	buf = buf[:0]
	if itemCount == 0 {
		return buf
	}
	typW, typH := l.typicalSize()
	rowH := typH + l.verticalGap
	perRow := l.itemsPerRow(width, typW)
	if rowH <= 0 {
		for i := 0; i < itemCount; i++ {
			buf = append(buf, i)
		}
		return buf
	}
	rowCount := (itemCount + perRow - 1) / perRow
	firstRow := int(math32.Floor((scrollY - l.padding.Top) / rowH))
	if firstRow < 0 {
		firstRow = 0
	}
	visibleRows := int(math32.Ceil(height/rowH)) + 1
	if visibleRows > rowCount {
		visibleRows = rowCount
	}
	if firstRow+visibleRows > rowCount {
		firstRow = rowCount - visibleRows
	}
	for r := firstRow; r < firstRow+visibleRows; r++ {
		for c := 0; c < perRow; c++ {
			i := r*perRow + c
			if i >= itemCount {
				break
			}
			buf = append(buf, i)
		}
	}
	return buf
}

// ScrollPositionForIndex returns the scroll offset of the row holding
// the item at index.
func (l *FlowLayout) ScrollPositionForIndex(index int, items []Item, x, y, width, height float32) (sx, sy float32) {
	typW, typH := l.typicalSize()
	perRow := l.itemsPerRow(width, typW)
	row := index / perRow
	return 0, l.padding.Top + float32(row)*(typH+l.verticalGap)
}

// NearestScrollPositionForIndex returns the current scroll position
// unchanged if the row holding index is fully visible, else the nearer
// of the positions aligning it with the top or bottom edge.
func (l *FlowLayout) NearestScrollPositionForIndex(index int, scrollX, scrollY float32, items []Item, x, y, width, height float32) (sx, sy float32) {
	typW, typH := l.typicalSize()
	perRow := l.itemsPerRow(width, typW)
	row := index / perRow
	topPos := l.padding.Top + float32(row)*(typH+l.verticalGap)
	bottomPos := topPos + typH - height
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

// NavigationDestination maps a navigation key to a target item index,
// moving by one item horizontally and one row vertically.
func (l *FlowLayout) NavigationDestination(items []Item, index int, key NavKey, width, height float32) int {
	itemCount := len(items)
	if itemCount == 0 {
		return -1
	}
	typW, typH := l.typicalSize()
	perRow := l.itemsPerRow(width, typW)
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
		target = index - perRow
	case NavDown:
		target = index + perRow
	case NavPageUp:
		rows := int(height / (typH + l.verticalGap))
		if rows < 1 {
			rows = 1
		}
		target = index - rows*perRow
	case NavPageDown:
		rows := int(height / (typH + l.verticalGap))
		if rows < 1 {
			rows = 1
		}
		target = index + rows*perRow
	}
	if target < 0 {
		target = 0
	}
	if target >= itemCount {
		target = itemCount - 1
	}
	return target
}

// resizeScratch returns a scratch slice of exactly n entries.
func resizeScratch(s []float32, n int) []float32 {
	if cap(s) < n {
		return make([]float32, n)
	}
	return s[:n]
}
