// Copyright (c) 2025, Mosaic Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layouts

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/mosaicui/mosaic/align"
)

// TiledRowsLayout positions items in a grid of uniformly sized tiles,
// filling each row from left to right before starting the next row.
// All items share one tile size per layout pass: the typical item's
// size when virtualized, else the maximum size observed across all
// items. Content may optionally be split into discrete pages along one
// axis.
type TiledRowsLayout struct {
	LayoutBase

	horizontalGap float32
	verticalGap   float32

	horizontalAlign align.Horizontal
	verticalAlign   align.Vertical

	tileHorizontalAlign align.Horizontal
	tileVerticalAlign   align.Vertical

	paging Direction

	requestedColumnCount int
	useSquareTiles       bool
	distributeWidths     bool
	distributeHeights    bool

	discovered []Item // scratch, reset on every Layout call
	slots      []int  // scratch, grid slot per discovered item
}

// NewTiledRowsLayout returns a tiled rows layout with zero gaps, no
// padding, top-left alignment, and no paging.
func NewTiledRowsLayout() *TiledRowsLayout {
	return &TiledRowsLayout{}
}

// Caps implements [Layouter].
func (l *TiledRowsLayout) Caps() Capabilities {
	return Capabilities{Virtualization: true, DragDrop: true}
}

// HorizontalGap returns the gap between tile columns.
func (l *TiledRowsLayout) HorizontalGap() float32 { return l.horizontalGap }

// SetHorizontalGap sets the gap between tile columns.
func (l *TiledRowsLayout) SetHorizontalGap(gap float32) {
	if l.horizontalGap == gap {
		return
	}
	l.horizontalGap = gap
	l.SendChange()
}

// VerticalGap returns the gap between tile rows.
func (l *TiledRowsLayout) VerticalGap() float32 { return l.verticalGap }

// SetVerticalGap sets the gap between tile rows.
func (l *TiledRowsLayout) SetVerticalGap(gap float32) {
	if l.verticalGap == gap {
		return
	}
	l.verticalGap = gap
	l.SendChange()
}

// SetGap sets both the horizontal and vertical gaps.
func (l *TiledRowsLayout) SetGap(gap float32) {
	if l.horizontalGap == gap && l.verticalGap == gap {
		return
	}
	l.horizontalGap = gap
	l.verticalGap = gap
	l.SendChange()
}

// HorizontalAlign returns the alignment of the tile grid within each
// page (or the viewport when unpaged).
func (l *TiledRowsLayout) HorizontalAlign() align.Horizontal { return l.horizontalAlign }

// SetHorizontalAlign sets the alignment of the tile grid within each
// page (or the viewport when unpaged).
func (l *TiledRowsLayout) SetHorizontalAlign(h align.Horizontal) {
	if l.horizontalAlign == h {
		return
	}
	l.horizontalAlign = h
	l.SendChange()
}

// VerticalAlign returns the vertical alignment of the tile grid within
// each page (or the viewport when unpaged).
func (l *TiledRowsLayout) VerticalAlign() align.Vertical { return l.verticalAlign }

// SetVerticalAlign sets the vertical alignment of the tile grid within
// each page (or the viewport when unpaged).
func (l *TiledRowsLayout) SetVerticalAlign(v align.Vertical) {
	if l.verticalAlign == v {
		return
	}
	l.verticalAlign = v
	l.SendChange()
}

// TileHorizontalAlign returns the alignment of each item within its
// tile.
func (l *TiledRowsLayout) TileHorizontalAlign() align.Horizontal { return l.tileHorizontalAlign }

// SetTileHorizontalAlign sets the alignment of each item within its
// tile. [align.HJustify] stretches the item to the tile width.
func (l *TiledRowsLayout) SetTileHorizontalAlign(h align.Horizontal) {
	if l.tileHorizontalAlign == h {
		return
	}
	l.tileHorizontalAlign = h
	l.SendChange()
}

// TileVerticalAlign returns the vertical alignment of each item within
// its tile.
func (l *TiledRowsLayout) TileVerticalAlign() align.Vertical { return l.tileVerticalAlign }

// SetTileVerticalAlign sets the vertical alignment of each item within
// its tile. [align.VJustify] stretches the item to the tile height.
func (l *TiledRowsLayout) SetTileVerticalAlign(v align.Vertical) {
	if l.tileVerticalAlign == v {
		return
	}
	l.tileVerticalAlign = v
	l.SendChange()
}

// Paging returns the axis along which content is split into pages.
func (l *TiledRowsLayout) Paging() Direction { return l.paging }

// SetPaging splits content into discrete pages along the given axis.
func (l *TiledRowsLayout) SetPaging(d Direction) {
	if l.paging == d {
		return
	}
	l.paging = d
	l.SendChange()
}

// RequestedColumnCount returns the requested number of tile columns;
// 0 derives the count from the available width.
func (l *TiledRowsLayout) RequestedColumnCount() int { return l.requestedColumnCount }

// SetRequestedColumnCount caps the number of tile columns. A negative
// count is programmer error.
func (l *TiledRowsLayout) SetRequestedColumnCount(n int) {
	if n < 0 {
		panic(fmt.Sprintf("layouts: RequestedColumnCount must be non-negative, not %d", n))
	}
	if l.requestedColumnCount == n {
		return
	}
	l.requestedColumnCount = n
	l.SendChange()
}

// UseSquareTiles reports whether tiles are coerced to squares.
func (l *TiledRowsLayout) UseSquareTiles() bool { return l.useSquareTiles }

// SetUseSquareTiles forces tile width and height to the larger of the
// two measured dimensions.
func (l *TiledRowsLayout) SetUseSquareTiles(on bool) {
	if l.useSquareTiles == on {
		return
	}
	l.useSquareTiles = on
	l.SendChange()
}

// DistributeWidths reports whether tile widths are stretched so the
// columns exactly fill the available width.
func (l *TiledRowsLayout) DistributeWidths() bool { return l.distributeWidths }

// SetDistributeWidths stretches tile widths so the columns exactly
// fill the available width.
func (l *TiledRowsLayout) SetDistributeWidths(on bool) {
	if l.distributeWidths == on {
		return
	}
	l.distributeWidths = on
	l.SendChange()
}

// DistributeHeights reports whether tile heights are stretched so the
// rows exactly fill the available height.
func (l *TiledRowsLayout) DistributeHeights() bool { return l.distributeHeights }

// SetDistributeHeights stretches tile heights so the rows of one page
// exactly fill the available height. Only effective when a definite
// height is available.
func (l *TiledRowsLayout) SetDistributeHeights(on bool) {
	if l.distributeHeights == on {
		return
	}
	l.distributeHeights = on
	l.SendChange()
}

// tileSize computes the shared tile dimensions from the typical item
// (virtualized) or the maximum observed item size.
func (l *TiledRowsLayout) tileSize(items []Item) (tileW, tileH float32) {
	if l.useVirtualLayout {
		tileW, tileH = l.typicalSize()
	} else {
		for _, it := range items {
			if it == nil || !includeInLayout(it) {
				continue
			}
			validateItem(it)
			if w := it.Width(); w > tileW {
				tileW = w
			}
			if h := it.Height(); h > tileH {
				tileH = h
			}
		}
	}
	if l.useSquareTiles {
		if tileW > tileH {
			tileH = tileW
		} else {
			tileW = tileH
		}
	}
	return tileW, tileH
}

// columnCount derives the number of tile columns from the available
// width, honoring the requested count and never exceeding the item
// count when distributing widths.
func (l *TiledRowsLayout) columnCount(availableW, tileW float32, itemCount int) int {
	cols := 1
	if !math32.IsNaN(availableW) && !math32.IsInf(availableW, 1) && tileW+l.horizontalGap > 0 {
		cols = int(math32.Floor((availableW - l.padding.Left - l.padding.Right + l.horizontalGap) / (tileW + l.horizontalGap)))
		if cols < 1 {
			cols = 1
		}
	} else if l.requestedColumnCount > 0 {
		cols = l.requestedColumnCount
	} else if itemCount > 0 {
		cols = itemCount
	}
	if l.requestedColumnCount > 0 && cols > l.requestedColumnCount {
		cols = l.requestedColumnCount
	}
	if l.distributeWidths && itemCount > 0 && cols > itemCount {
		cols = itemCount
	}
	return cols
}

// Layout implements [Layouter].
func (l *TiledRowsLayout) Layout(items []Item, bounds *ViewportBounds, result *Result) *Result {
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

	tileW, tileH := l.tileSize(items)

	// count contributing items (nil placeholders occupy slots when
	// virtualized; excluded items occupy none)
	contributing := 0
	for _, it := range items {
		if it == nil {
			if l.useVirtualLayout {
				contributing++
			}
			continue
		}
		if includeInLayout(it) {
			contributing++
		}
	}

	widthForColumns := explicitW
	if needsW {
		widthForColumns = maxW
	}
	cols := l.columnCount(widthForColumns, tileW, contributing)

	if l.distributeWidths {
		definiteW := explicitW
		if math32.IsNaN(definiteW) && !math32.IsInf(maxW, 1) {
			definiteW = maxW
		}
		if !math32.IsNaN(definiteW) {
			tileW = (definiteW - l.padding.Left - l.padding.Right - float32(cols-1)*l.horizontalGap) / float32(cols)
		}
	}

	availableW := explicitW
	if needsW {
		availableW = clamp(float32(cols)*(tileW+l.horizontalGap)-l.horizontalGap+l.padding.Left+l.padding.Right, minW, maxW)
	}

	rowCount := 0
	if contributing > 0 {
		rowCount = (contributing + cols - 1) / cols
	}

	// rows per page along the vertical axis, from a definite height
	definiteH := explicitH
	if math32.IsNaN(definiteH) && !math32.IsInf(maxH, 1) {
		definiteH = maxH
	}
	rowsPerPage := rowCount
	if l.paging != DirectionNone && !math32.IsNaN(definiteH) && tileH+l.verticalGap > 0 {
		rowsPerPage = int(math32.Floor((definiteH - l.padding.Top - l.padding.Bottom + l.verticalGap) / (tileH + l.verticalGap)))
		if rowsPerPage < 1 {
			rowsPerPage = 1
		}
	}

	if l.distributeHeights && !math32.IsNaN(definiteH) && rowsPerPage > 0 {
		tileH = (definiteH - l.padding.Top - l.padding.Bottom - float32(rowsPerPage-1)*l.verticalGap) / float32(rowsPerPage)
	}

	availableH := explicitH
	if needsH {
		availableH = clamp(float32(rowCount)*(tileH+l.verticalGap)-l.verticalGap+l.padding.Top+l.padding.Bottom, minH, maxH)
	}

	perPage := cols * rowsPerPage
	pageCount := 1
	if l.paging != DirectionNone && perPage > 0 && contributing > 0 {
		pageCount = (contributing + perPage - 1) / perPage
	}

	// Position pass: assign each contributing item a grid slot and
	// place it within its tile.
	l.discovered = l.discovered[:0]
	l.slots = l.slots[:0]
	slot := 0
	for _, it := range items {
		if it == nil {
			if l.useVirtualLayout {
				slot++
			}
			continue
		}
		if !includeInLayout(it) {
			continue
		}
		validateItem(it)
		page, col, row := l.slotCell(slot, cols, perPage)
		var pageX, pageY float32
		switch l.paging {
		case DirectionHorizontal:
			pageX = float32(page) * availableW
		case DirectionVertical:
			pageY = float32(page) * availableH
		}
		tileX := boundsX + pageX + l.padding.Left + float32(col)*(tileW+l.horizontalGap)
		tileY := boundsY + pageY + l.padding.Top + float32(row)*(tileH+l.verticalGap)
		l.positionInTile(it, tileX, tileY, tileW, tileH)
		l.discovered = append(l.discovered, it)
		l.slots = append(l.slots, slot)
		slot++
	}

	l.alignPages(availableW, availableH, tileW, tileH, cols, rowsPerPage, perPage, contributing)

	if LayoutTrace {
		fmt.Println("TiledRowsLayout: items:", len(items), "cols:", cols, "rows:", rowCount, "pages:", pageCount)
	}

	result.ContentX = boundsX
	result.ContentY = boundsY
	switch l.paging {
	case DirectionHorizontal:
		result.ContentWidth = float32(pageCount) * availableW
		result.ContentHeight = availableH
	case DirectionVertical:
		result.ContentWidth = availableW
		result.ContentHeight = float32(pageCount) * availableH
	default:
		result.ContentWidth = float32(cols)*(tileW+l.horizontalGap) - l.horizontalGap + l.padding.Left + l.padding.Right
		result.ContentHeight = float32(rowCount)*(tileH+l.verticalGap) - l.verticalGap + l.padding.Top + l.padding.Bottom
		if contributing == 0 {
			result.ContentWidth = l.padding.Left + l.padding.Right
			result.ContentHeight = l.padding.Top + l.padding.Bottom
		}
	}
	result.ViewportWidth = availableW
	result.ViewportHeight = availableH
	return result
}

// slotCell maps a grid slot to its page, column, and row.
func (l *TiledRowsLayout) slotCell(slot, cols, perPage int) (page, col, row int) {
	if l.paging != DirectionNone && perPage > 0 {
		page = slot / perPage
		slot = slot % perPage
	}
	return page, slot % cols, slot / cols
}

// positionInTile places an item within its tile cell per the tile
// alignment, stretching it for justify.
func (l *TiledRowsLayout) positionInTile(it Item, tileX, tileY, tileW, tileH float32) {
	x, y := tileX, tileY
	switch l.tileHorizontalAlign {
	case align.HJustify:
		it.SetWidth(tileW)
		validateItem(it)
	case align.HCenter:
		x += math32.Round((tileW - it.Width()) / 2)
	case align.Right:
		x += tileW - it.Width()
	}
	switch l.tileVerticalAlign {
	case align.VJustify:
		it.SetHeight(tileH)
		validateItem(it)
	case align.Middle:
		y += math32.Round((tileH - it.Height()) / 2)
	case align.Bottom:
		y += tileH - it.Height()
	}
	setPosition(it, x, y)
}

// alignPages applies the page-level alignment as a uniform offset per
// page, computed from each page's own tile subset.
func (l *TiledRowsLayout) alignPages(availableW, availableH, tileW, tileH float32, cols, rowsPerPage, perPage, contributing int) {
	if l.horizontalAlign == align.Left && l.verticalAlign == align.Top {
		return
	}
	if contributing == 0 {
		return
	}
	for i, it := range l.discovered {
		slot := l.slots[i]
		page := 0
		tilesInPage := contributing
		if l.paging != DirectionNone && perPage > 0 {
			page = slot / perPage
			tilesInPage = contributing - page*perPage
			if tilesInPage > perPage {
				tilesInPage = perPage
			}
		}
		usedCols := cols
		if tilesInPage < cols {
			usedCols = tilesInPage
		}
		usedRows := (tilesInPage + cols - 1) / cols
		gridW := float32(usedCols)*(tileW+l.horizontalGap) - l.horizontalGap + l.padding.Left + l.padding.Right
		gridH := float32(usedRows)*(tileH+l.verticalGap) - l.verticalGap + l.padding.Top + l.padding.Bottom
		var dx, dy float32
		switch l.horizontalAlign {
		case align.HCenter:
			dx = math32.Round((availableW - gridW) / 2)
		case align.Right:
			dx = availableW - gridW
		}
		switch l.verticalAlign {
		case align.Middle:
			dy = math32.Round((availableH - gridH) / 2)
		case align.Bottom:
			dy = availableH - gridH
		}
		if dx > 0 {
			it.SetX(it.X() + dx)
		}
		if dy > 0 {
			it.SetY(it.Y() + dy)
		}
	}
}

// MeasureViewport estimates the viewport size from the typical item.
// Requires UseVirtualLayout.
func (l *TiledRowsLayout) MeasureViewport(itemCount int, bounds *ViewportBounds) (w, h float32) {
	l.requireVirtual("MeasureViewport")
	if bounds == nil {
		bounds = NewViewportBounds()
	}
	tileW, tileH := l.tileSize(nil)
	w, h = bounds.ExplicitWidth, bounds.ExplicitHeight
	widthForColumns := w
	if math32.IsNaN(widthForColumns) {
		widthForColumns = bounds.MaxWidth
	}
	cols := l.columnCount(widthForColumns, tileW, itemCount)
	if math32.IsNaN(w) {
		measured := l.padding.Left + l.padding.Right
		if cols > 0 {
			measured += float32(cols)*(tileW+l.horizontalGap) - l.horizontalGap
		}
		w = clamp(measured, bounds.MinWidth, bounds.MaxWidth)
	}
	if math32.IsNaN(h) {
		rows := 0
		if itemCount > 0 {
			rows = (itemCount + cols - 1) / cols
		}
		measured := l.padding.Top + l.padding.Bottom
		if rows > 0 {
			measured += float32(rows)*(tileH+l.verticalGap) - l.verticalGap
		}
		h = clamp(measured, bounds.MinHeight, bounds.MaxHeight)
	}
	return w, h
}

// VisibleIndices returns the item indices within the scroll window.
// Three distinct windows are used: horizontally paged, vertically
// paged, and unpaged, because the scroll-to-index mapping differs.
// Requires UseVirtualLayout.
func (l *TiledRowsLayout) VisibleIndices(scrollX, scrollY, width, height float32, itemCount int, buf []int) []int {
	l.requireVirtual("VisibleIndices")
	buf = buf[:0]
	if itemCount == 0 {
		return buf
	}
	tileW, tileH := l.tileSize(nil)
	cols := l.columnCount(width, tileW, itemCount)
	switch l.paging {
	case DirectionHorizontal, DirectionVertical:
		rowsPerPage := rowsThatFit(height, tileH, l.verticalGap, l.padding.Top+l.padding.Bottom)
		perPage := cols * rowsPerPage
		if perPage < 1 {
			perPage = 1
		}
		var firstPage, lastPage int
		if l.paging == DirectionHorizontal && width > 0 {
			firstPage = int(math32.Floor(scrollX / width))
			lastPage = int(math32.Ceil((scrollX+width)/width)) - 1
		} else if height > 0 {
			firstPage = int(math32.Floor(scrollY / height))
			lastPage = int(math32.Ceil((scrollY+height)/height)) - 1
		}
		if firstPage < 0 {
			firstPage = 0
		}
		for p := firstPage; p <= lastPage; p++ {
			for s := 0; s < perPage; s++ {
				i := p*perPage + s
				if i >= itemCount {
					return buf
				}
				buf = append(buf, i)
			}
		}
		return buf
	}
	rowH := tileH + l.verticalGap
	if rowH <= 0 {
		for i := 0; i < itemCount; i++ {
			buf = append(buf, i)
		}
		return buf
	}
	rowCount := (itemCount + cols - 1) / cols
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
		for c := 0; c < cols; c++ {
			i := r*cols + c
			if i >= itemCount {
				break
			}
			buf = append(buf, i)
		}
	}
	return buf
}

// rowsThatFit returns how many tile rows fit in the given extent, at
// least 1.
func rowsThatFit(extent, tile, gap, padding float32) int {
	if tile+gap <= 0 {
		return 1
	}
	n := int(math32.Floor((extent - padding + gap) / (tile + gap)))
	if n < 1 {
		n = 1
	}
	return n
}

// ScrollPositionForIndex returns the scroll offset of the page or row
// holding the item at index.
func (l *TiledRowsLayout) ScrollPositionForIndex(index int, items []Item, x, y, width, height float32) (sx, sy float32) {
	tileW, tileH := l.tileSize(items)
	cols := l.columnCount(width, tileW, maxInt(len(items), index+1))
	switch l.paging {
	case DirectionHorizontal:
		rowsPerPage := rowsThatFit(height, tileH, l.verticalGap, l.padding.Top+l.padding.Bottom)
		perPage := cols * rowsPerPage
		if perPage < 1 {
			perPage = 1
		}
		return float32(index/perPage) * width, 0
	case DirectionVertical:
		rowsPerPage := rowsThatFit(height, tileH, l.verticalGap, l.padding.Top+l.padding.Bottom)
		perPage := cols * rowsPerPage
		if perPage < 1 {
			perPage = 1
		}
		return 0, float32(index/perPage) * height
	}
	row := index / cols
	return 0, l.padding.Top + float32(row)*(tileH+l.verticalGap)
}

// NearestScrollPositionForIndex returns the current scroll position
// unchanged if the item at index is already fully visible, else the
// scroll position that brings its page or row to the nearer edge.
func (l *TiledRowsLayout) NearestScrollPositionForIndex(index int, scrollX, scrollY float32, items []Item, x, y, width, height float32) (sx, sy float32) {
	tileW, tileH := l.tileSize(items)
	cols := l.columnCount(width, tileW, maxInt(len(items), index+1))
	switch l.paging {
	case DirectionHorizontal, DirectionVertical:
		px, py := l.ScrollPositionForIndex(index, items, x, y, width, height)
		if l.paging == DirectionHorizontal {
			if scrollX == px {
				return scrollX, scrollY
			}
			return px, scrollY
		}
		if scrollY == py {
			return scrollX, scrollY
		}
		return scrollX, py
	}
	row := index / cols
	topPos := l.padding.Top + float32(row)*(tileH+l.verticalGap)
	bottomPos := topPos + tileH - height
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
// moving by one column horizontally and one row vertically.
func (l *TiledRowsLayout) NavigationDestination(items []Item, index int, key NavKey, width, height float32) int {
	itemCount := len(items)
	if itemCount == 0 {
		return -1
	}
	tileW, tileH := l.tileSize(items)
	cols := l.columnCount(width, tileW, itemCount)
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
	case NavPageUp:
		rows := rowsThatFit(height, tileH, l.verticalGap, l.padding.Top+l.padding.Bottom)
		target = index - rows*cols
	case NavPageDown:
		rows := rowsThatFit(height, tileH, l.verticalGap, l.padding.Top+l.padding.Bottom)
		target = index + rows*cols
	}
	if target < 0 {
		target = 0
	}
	if target >= itemCount {
		target = itemCount - 1
	}
	return target
}

// DropIndex returns the insertion index for a pointer location. A
// pointer past the last column of a row targets the end of that row
// rather than the next row.
func (l *TiledRowsLayout) DropIndex(x, y float32, items []Item, boundsX, boundsY, width, height float32) int {
	itemCount := len(items)
	if itemCount == 0 {
		return 0
	}
	tileW, tileH := l.tileSize(items)
	cols := l.columnCount(width, tileW, itemCount)
	localX := x - boundsX
	localY := y - boundsY
	baseSlot := 0
	if l.paging != DirectionNone {
		rowsPerPage := rowsThatFit(height, tileH, l.verticalGap, l.padding.Top+l.padding.Bottom)
		perPage := cols * rowsPerPage
		var page int
		if l.paging == DirectionHorizontal && width > 0 {
			page = int(math32.Floor(localX / width))
			localX -= float32(page) * width
		} else if height > 0 {
			page = int(math32.Floor(localY / height))
			localY -= float32(page) * height
		}
		if page < 0 {
			page = 0
		}
		baseSlot = page * perPage
	}
	row := int(math32.Floor((localY - l.padding.Top) / (tileH + l.verticalGap)))
	if row < 0 {
		row = 0
	}
	col := int(math32.Round((localX - l.padding.Left) / (tileW + l.horizontalGap)))
	if col < 0 {
		col = 0
	}
	if col > cols {
		col = cols
	}
	index := baseSlot + row*cols + col
	if index > itemCount {
		index = itemCount
	}
	return index
}

// DropIndicatorRect returns the rectangle for a drop indicator of the
// given thickness at the insertion boundary before index, spanning the
// tile height of the target row.
func (l *TiledRowsLayout) DropIndicatorRect(index int, items []Item, boundsX, boundsY, width, thickness float32) (ix, iy, iw, ih float32) {
	itemCount := len(items)
	tileW, tileH := l.tileSize(items)
	cols := l.columnCount(width, tileW, maxInt(itemCount, 1))
	if index > itemCount {
		index = itemCount
	}
	row := index / cols
	col := index % cols
	if index == itemCount && itemCount > 0 && col == 0 {
		// past the end: indicate after the last item of the last row
		row = (itemCount - 1) / cols
		col = (itemCount-1)%cols + 1
	}
	x := boundsX + l.padding.Left + float32(col)*(tileW+l.horizontalGap)
	if col > 0 {
		x -= l.horizontalGap / 2
	}
	ix = x - thickness/2
	iy = boundsY + l.padding.Top + float32(row)*(tileH+l.verticalGap)
	iw = thickness
	ih = tileH
	return ix, iy, iw, ih
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
