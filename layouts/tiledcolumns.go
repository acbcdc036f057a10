// Copyright (c) 2025, Mosaic Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layouts

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/mosaicui/mosaic/align"
)

// TiledColumnsLayout positions items in a grid of uniformly sized
// tiles, filling each column from top to bottom before starting the
// next column. The column-major counterpart of [TiledRowsLayout].
type TiledColumnsLayout struct {
	LayoutBase

	horizontalGap float32
	verticalGap   float32

	horizontalAlign align.Horizontal
	verticalAlign   align.Vertical

	tileHorizontalAlign align.Horizontal
	tileVerticalAlign   align.Vertical

	paging Direction

	requestedRowCount int
	useSquareTiles    bool
	distributeWidths  bool
	distributeHeights bool

	discovered []Item
	slots      []int
}

// NewTiledColumnsLayout returns a tiled columns layout with zero gaps,
// no padding, top-left alignment, and no paging.
func NewTiledColumnsLayout() *TiledColumnsLayout {
	return &TiledColumnsLayout{}
}

// Caps implements [Layouter].
func (l *TiledColumnsLayout) Caps() Capabilities {
	return Capabilities{Virtualization: true, DragDrop: true}
}

// HorizontalGap returns the gap between tile columns.
func (l *TiledColumnsLayout) HorizontalGap() float32 { return l.horizontalGap }

// SetHorizontalGap sets the gap between tile columns.
func (l *TiledColumnsLayout) SetHorizontalGap(gap float32) {
	if l.horizontalGap == gap {
		return
	}
	l.horizontalGap = gap
	l.SendChange()
}

// VerticalGap returns the gap between tile rows.
func (l *TiledColumnsLayout) VerticalGap() float32 { return l.verticalGap }

// SetVerticalGap sets the gap between tile rows.
func (l *TiledColumnsLayout) SetVerticalGap(gap float32) {
	if l.verticalGap == gap {
		return
	}
	l.verticalGap = gap
	l.SendChange()
}

// SetGap sets both the horizontal and vertical gaps.
func (l *TiledColumnsLayout) SetGap(gap float32) {
	if l.horizontalGap == gap && l.verticalGap == gap {
		return
	}
	l.horizontalGap = gap
	l.verticalGap = gap
	l.SendChange()
}

// HorizontalAlign returns the alignment of the tile grid within each
// page (or the viewport when unpaged).
func (l *TiledColumnsLayout) HorizontalAlign() align.Horizontal { return l.horizontalAlign }

// SetHorizontalAlign sets the alignment of the tile grid within each
// page (or the viewport when unpaged).
func (l *TiledColumnsLayout) SetHorizontalAlign(h align.Horizontal) {
	if l.horizontalAlign == h {
		return
	}
	l.horizontalAlign = h
	l.SendChange()
}

// VerticalAlign returns the vertical alignment of the tile grid within
// each page (or the viewport when unpaged).
func (l *TiledColumnsLayout) VerticalAlign() align.Vertical { return l.verticalAlign }

// SetVerticalAlign sets the vertical alignment of the tile grid within
// each page (or the viewport when unpaged).
func (l *TiledColumnsLayout) SetVerticalAlign(v align.Vertical) {
	if l.verticalAlign == v {
		return
	}
	l.verticalAlign = v
	l.SendChange()
}

// TileHorizontalAlign returns the alignment of each item within its
// tile.
func (l *TiledColumnsLayout) TileHorizontalAlign() align.Horizontal { return l.tileHorizontalAlign }

// SetTileHorizontalAlign sets the alignment of each item within its
// tile. [align.HJustify] stretches the item to the tile width.
func (l *TiledColumnsLayout) SetTileHorizontalAlign(h align.Horizontal) {
	if l.tileHorizontalAlign == h {
		return
	}
	l.tileHorizontalAlign = h
	l.SendChange()
}

// TileVerticalAlign returns the vertical alignment of each item within
// its tile.
func (l *TiledColumnsLayout) TileVerticalAlign() align.Vertical { return l.tileVerticalAlign }

// SetTileVerticalAlign sets the vertical alignment of each item within
// its tile. [align.VJustify] stretches the item to the tile height.
func (l *TiledColumnsLayout) SetTileVerticalAlign(v align.Vertical) {
	if l.tileVerticalAlign == v {
		return
	}
	l.tileVerticalAlign = v
	l.SendChange()
}

// Paging returns the axis along which content is split into pages.
func (l *TiledColumnsLayout) Paging() Direction { return l.paging }

// SetPaging splits content into discrete pages along the given axis.
func (l *TiledColumnsLayout) SetPaging(d Direction) {
	if l.paging == d {
		return
	}
	l.paging = d
	l.SendChange()
}

// RequestedRowCount returns the requested number of tile rows; 0
// derives the count from the available height.
func (l *TiledColumnsLayout) RequestedRowCount() int { return l.requestedRowCount }

// SetRequestedRowCount caps the number of tile rows. A negative count
// is programmer error.
func (l *TiledColumnsLayout) SetRequestedRowCount(n int) {
	if n < 0 {
		panic(fmt.Sprintf("layouts: RequestedRowCount must be non-negative, not %d", n))
	}
	if l.requestedRowCount == n {
		return
	}
	l.requestedRowCount = n
	l.SendChange()
}

// UseSquareTiles reports whether tiles are coerced to squares.
func (l *TiledColumnsLayout) UseSquareTiles() bool { return l.useSquareTiles }

// SetUseSquareTiles forces tile width and height to the larger of the
// two measured dimensions.
func (l *TiledColumnsLayout) SetUseSquareTiles(on bool) {
	if l.useSquareTiles == on {
		return
	}
	l.useSquareTiles = on
	l.SendChange()
}

// DistributeWidths reports whether tile widths are stretched so the
// columns exactly fill the available width.
func (l *TiledColumnsLayout) DistributeWidths() bool { return l.distributeWidths }

// SetDistributeWidths stretches tile widths so the columns of one page
// exactly fill the available width. Only effective when a definite
// width is available.
func (l *TiledColumnsLayout) SetDistributeWidths(on bool) {
	if l.distributeWidths == on {
		return
	}
	l.distributeWidths = on
	l.SendChange()
}

// DistributeHeights reports whether tile heights are stretched so the
// rows exactly fill the available height.
func (l *TiledColumnsLayout) DistributeHeights() bool { return l.distributeHeights }

// SetDistributeHeights stretches tile heights so the rows exactly fill
// the available height.
func (l *TiledColumnsLayout) SetDistributeHeights(on bool) {
	if l.distributeHeights == on {
		return
	}
	l.distributeHeights = on
	l.SendChange()
}

func (l *TiledColumnsLayout) tileSize(items []Item) (tileW, tileH float32) {
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

// rowCount derives the number of tile rows from the available height,
// honoring the requested count and never exceeding the item count when
// distributing heights.
func (l *TiledColumnsLayout) rowCount(availableH, tileH float32, itemCount int) int {
	rows := 1
	if !math32.IsNaN(availableH) && !math32.IsInf(availableH, 1) && tileH+l.verticalGap > 0 {
		rows = int(math32.Floor((availableH - l.padding.Top - l.padding.Bottom + l.verticalGap) / (tileH + l.verticalGap)))
		if rows < 1 {
			rows = 1
		}
	} else if l.requestedRowCount > 0 {
		rows = l.requestedRowCount
	} else if itemCount > 0 {
		rows = itemCount
	}
	if l.requestedRowCount > 0 && rows > l.requestedRowCount {
		rows = l.requestedRowCount
	}
	if l.distributeHeights && itemCount > 0 && rows > itemCount {
		rows = itemCount
	}
	return rows
}

// Layout implements [Layouter].
func (l *TiledColumnsLayout) Layout(items []Item, bounds *ViewportBounds, result *Result) *Result {
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

	heightForRows := explicitH
	if needsH {
		heightForRows = maxH
	}
	rows := l.rowCount(heightForRows, tileH, contributing)

	if l.distributeHeights {
		definiteH := explicitH
		if math32.IsNaN(definiteH) && !math32.IsInf(maxH, 1) {
			definiteH = maxH
		}
		if !math32.IsNaN(definiteH) {
			tileH = (definiteH - l.padding.Top - l.padding.Bottom - float32(rows-1)*l.verticalGap) / float32(rows)
		}
	}

	availableH := explicitH
	if needsH {
		availableH = clamp(float32(rows)*(tileH+l.verticalGap)-l.verticalGap+l.padding.Top+l.padding.Bottom, minH, maxH)
	}

	colCount := 0
	if contributing > 0 {
		colCount = (contributing + rows - 1) / rows
	}

	definiteW := explicitW
	if math32.IsNaN(definiteW) && !math32.IsInf(maxW, 1) {
		definiteW = maxW
	}
	colsPerPage := colCount
	if l.paging != DirectionNone && !math32.IsNaN(definiteW) && tileW+l.horizontalGap > 0 {
		colsPerPage = int(math32.Floor((definiteW - l.padding.Left - l.padding.Right + l.horizontalGap) / (tileW + l.horizontalGap)))
		if colsPerPage < 1 {
			colsPerPage = 1
		}
	}

	if l.distributeWidths && !math32.IsNaN(definiteW) && colsPerPage > 0 {
		tileW = (definiteW - l.padding.Left - l.padding.Right - float32(colsPerPage-1)*l.horizontalGap) / float32(colsPerPage)
	}

	availableW := explicitW
	if needsW {
		availableW = clamp(float32(colCount)*(tileW+l.horizontalGap)-l.horizontalGap+l.padding.Left+l.padding.Right, minW, maxW)
	}

	perPage := rows * colsPerPage
	pageCount := 1
	if l.paging != DirectionNone && perPage > 0 && contributing > 0 {
		pageCount = (contributing + perPage - 1) / perPage
	}

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
		page, row, col := l.slotCell(slot, rows, perPage)
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

	l.alignPages(availableW, availableH, tileW, tileH, rows, perPage, contributing)

	if LayoutTrace {
		fmt.Println("TiledColumnsLayout: items:", len(items), "rows:", rows, "cols:", colCount, "pages:", pageCount)
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
		result.ContentWidth = float32(colCount)*(tileW+l.horizontalGap) - l.horizontalGap + l.padding.Left + l.padding.Right
		result.ContentHeight = float32(rows)*(tileH+l.verticalGap) - l.verticalGap + l.padding.Top + l.padding.Bottom
		if contributing == 0 {
			result.ContentWidth = l.padding.Left + l.padding.Right
			result.ContentHeight = l.padding.Top + l.padding.Bottom
		}
	}
	result.ViewportWidth = availableW
	result.ViewportHeight = availableH
	return result
}

// slotCell maps a grid slot to its page, row, and column (column
// major).
func (l *TiledColumnsLayout) slotCell(slot, rows, perPage int) (page, row, col int) {
	if l.paging != DirectionNone && perPage > 0 {
		page = slot / perPage
		slot = slot % perPage
	}
	return page, slot % rows, slot / rows
}

func (l *TiledColumnsLayout) positionInTile(it Item, tileX, tileY, tileW, tileH float32) {
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

func (l *TiledColumnsLayout) alignPages(availableW, availableH, tileW, tileH float32, rows, perPage, contributing int) {
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
		usedRows := rows
		if tilesInPage < rows {
			usedRows = tilesInPage
		}
		usedCols := (tilesInPage + rows - 1) / rows
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
func (l *TiledColumnsLayout) MeasureViewport(itemCount int, bounds *ViewportBounds) (w, h float32) {
	l.requireVirtual("MeasureViewport")
	if bounds == nil {
		bounds = NewViewportBounds()
	}
	tileW, tileH := l.tileSize(nil)
	w, h = bounds.ExplicitWidth, bounds.ExplicitHeight
	heightForRows := h
	if math32.IsNaN(heightForRows) {
		heightForRows = bounds.MaxHeight
	}
	rows := l.rowCount(heightForRows, tileH, itemCount)
	if math32.IsNaN(h) {
		measured := l.padding.Top + l.padding.Bottom
		if rows > 0 {
			measured += float32(rows)*(tileH+l.verticalGap) - l.verticalGap
		}
		h = clamp(measured, bounds.MinHeight, bounds.MaxHeight)
	}
	if math32.IsNaN(w) {
		cols := 0
		if itemCount > 0 {
			cols = (itemCount + rows - 1) / rows
		}
		measured := l.padding.Left + l.padding.Right
		if cols > 0 {
			measured += float32(cols)*(tileW+l.horizontalGap) - l.horizontalGap
		}
		w = clamp(measured, bounds.MinWidth, bounds.MaxWidth)
	}
	return w, h
}

// VisibleIndices returns the item indices within the scroll window.
// Requires UseVirtualLayout.
func (l *TiledColumnsLayout) VisibleIndices(scrollX, scrollY, width, height float32, itemCount int, buf []int) []int {
	l.requireVirtual("VisibleIndices")
	buf = buf[:0]
	if itemCount == 0 {
		return buf
	}
	tileW, tileH := l.tileSize(nil)
	rows := l.rowCount(height, tileH, itemCount)
	switch l.paging {
	case DirectionHorizontal, DirectionVertical:
		colsPerPage := rowsThatFit(width, tileW, l.horizontalGap, l.padding.Left+l.padding.Right)
		perPage := rows * colsPerPage
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
	colW := tileW + l.horizontalGap
	if colW <= 0 {
		for i := 0; i < itemCount; i++ {
			buf = append(buf, i)
		}
		return buf
	}
	colCount := (itemCount + rows - 1) / rows
	firstCol := int(math32.Floor((scrollX - l.padding.Left) / colW))
	if firstCol < 0 {
		firstCol = 0
	}
	visibleCols := int(math32.Ceil(width/colW)) + 1
	if visibleCols > colCount {
		visibleCols = colCount
	}
	if firstCol+visibleCols > colCount {
		firstCol = colCount - visibleCols
	}
	for c := firstCol; c < firstCol+visibleCols; c++ {
		for r := 0; r < rows; r++ {
			i := c*rows + r
			if i >= itemCount {
				break
			}
			buf = append(buf, i)
		}
	}
	return buf
}

// ScrollPositionForIndex returns the scroll offset of the page or
// column holding the item at index.
func (l *TiledColumnsLayout) ScrollPositionForIndex(index int, items []Item, x, y, width, height float32) (sx, sy float32) {
	tileW, tileH := l.tileSize(items)
	rows := l.rowCount(height, tileH, maxInt(len(items), index+1))
	switch l.paging {
	case DirectionHorizontal:
		colsPerPage := rowsThatFit(width, tileW, l.horizontalGap, l.padding.Left+l.padding.Right)
		perPage := rows * colsPerPage
		if perPage < 1 {
			perPage = 1
		}
		return float32(index/perPage) * width, 0
	case DirectionVertical:
		colsPerPage := rowsThatFit(width, tileW, l.horizontalGap, l.padding.Left+l.padding.Right)
		perPage := rows * colsPerPage
		if perPage < 1 {
			perPage = 1
		}
		return 0, float32(index/perPage) * height
	}
	col := index / rows
	return l.padding.Left + float32(col)*(tileW+l.horizontalGap), 0
}

// NearestScrollPositionForIndex returns the current scroll position
// unchanged if the item at index is already fully visible, else the
// scroll position that brings its page or column to the nearer edge.
func (l *TiledColumnsLayout) NearestScrollPositionForIndex(index int, scrollX, scrollY float32, items []Item, x, y, width, height float32) (sx, sy float32) {
	tileW, tileH := l.tileSize(items)
	rows := l.rowCount(height, tileH, maxInt(len(items), index+1))
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
	col := index / rows
	leftPos := l.padding.Left + float32(col)*(tileW+l.horizontalGap)
	rightPos := leftPos + tileW - width
	if rightPos > leftPos {
		rightPos = leftPos
	}
	if scrollX >= rightPos && scrollX <= leftPos {
		return scrollX, scrollY
	}
	if math32.Abs(scrollX-leftPos) <= math32.Abs(scrollX-rightPos) {
		return leftPos, scrollY
	}
	return rightPos, scrollY
}

// NavigationDestination maps a navigation key to a target item index,
// moving by one row vertically and one column horizontally.
func (l *TiledColumnsLayout) NavigationDestination(items []Item, index int, key NavKey, width, height float32) int {
	itemCount := len(items)
	if itemCount == 0 {
		return -1
	}
	tileW, tileH := l.tileSize(items)
	rows := l.rowCount(height, tileH, itemCount)
	target := index
	switch key {
	case NavHome:
		return 0
	case NavEnd:
		return itemCount - 1
	case NavUp:
		target = index - 1
	case NavDown:
		target = index + 1
	case NavLeft:
		target = index - rows
	case NavRight:
		target = index + rows
	case NavPageUp:
		cols := rowsThatFit(width, tileW, l.horizontalGap, l.padding.Left+l.padding.Right)
		target = index - cols*rows
	case NavPageDown:
		cols := rowsThatFit(width, tileW, l.horizontalGap, l.padding.Left+l.padding.Right)
		target = index + cols*rows
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
// pointer past the last row of a column targets the end of that column
// rather than the next column.
func (l *TiledColumnsLayout) DropIndex(x, y float32, items []Item, boundsX, boundsY, width, height float32) int {
	itemCount := len(items)
	if itemCount == 0 {
		return 0
	}
	tileW, tileH := l.tileSize(items)
	rows := l.rowCount(height, tileH, itemCount)
	localX := x - boundsX
	localY := y - boundsY
	baseSlot := 0
	if l.paging != DirectionNone {
		colsPerPage := rowsThatFit(width, tileW, l.horizontalGap, l.padding.Left+l.padding.Right)
		perPage := rows * colsPerPage
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
	col := int(math32.Floor((localX - l.padding.Left) / (tileW + l.horizontalGap)))
	if col < 0 {
		col = 0
	}
	row := int(math32.Round((localY - l.padding.Top) / (tileH + l.verticalGap)))
	if row < 0 {
		row = 0
	}
	if row > rows {
		row = rows
	}
	index := baseSlot + col*rows + row
	if index > itemCount {
		index = itemCount
	}
	return index
}

// DropIndicatorRect returns the rectangle for a drop indicator of the
// given thickness at the insertion boundary before index, spanning the
// tile width of the target column.
func (l *TiledColumnsLayout) DropIndicatorRect(index int, items []Item, boundsX, boundsY, height, thickness float32) (ix, iy, iw, ih float32) {
	itemCount := len(items)
	tileW, tileH := l.tileSize(items)
	rows := l.rowCount(height, tileH, maxInt(itemCount, 1))
	if index > itemCount {
		index = itemCount
	}
	col := index / rows
	row := index % rows
	if index == itemCount && itemCount > 0 && row == 0 {
		col = (itemCount - 1) / rows
		row = (itemCount-1)%rows + 1
	}
	y := boundsY + l.padding.Top + float32(row)*(tileH+l.verticalGap)
	if row > 0 {
		y -= l.verticalGap / 2
	}
	ix = boundsX + l.padding.Left + float32(col)*(tileW+l.horizontalGap)
	iy = y - thickness/2
	iw = tileW
	ih = thickness
	return ix, iy, iw, ih
}
