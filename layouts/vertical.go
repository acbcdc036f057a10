// Copyright (c) 2025, Mosaic Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layouts

import (
	"fmt"
	"slices"

	"github.com/chewxy/math32"

	"github.com/mosaicui/mosaic/align"
)

// VerticalLayout positions items from top to bottom in a single column,
// with a configurable gap between items, four-sided padding, horizontal
// and vertical alignment, optional percent sizing, optional even height
// distribution, optional sticky headers, and full virtualization
// support.
type VerticalLayout struct {
	LayoutBase

	gap      float32
	firstGap float32 // NaN = use gap
	lastGap  float32 // NaN = use gap

	horizontalAlign align.Horizontal
	verticalAlign   align.Vertical

	distributeHeights bool
	requestedRowCount int

	hasVariableItemDimensions  bool
	beforeVirtualizedItemCount int
	afterVirtualizedItemCount  int

	headerIndices []int
	stickyHeader  bool

	scrollAlign align.Vertical

	dims              VariableDimensions
	discovered        []Item // scratch, reset on every Layout call
	pinnedHeaderIndex int
}

// NewVerticalLayout returns a vertical layout with a zero gap, no
// padding, top-left alignment, and middle scroll alignment.
func NewVerticalLayout() *VerticalLayout {
	return &VerticalLayout{
		firstGap:          math32.NaN(),
		lastGap:           math32.NaN(),
		scrollAlign:       align.Middle,
		pinnedHeaderIndex: -1,
	}
}

// Caps implements [Layouter].
func (l *VerticalLayout) Caps() Capabilities {
	return Capabilities{
		Virtualization:    true,
		VariableItemSizes: true,
		Trimming:          true,
		DragDrop:          true,
	}
}

// Gap returns the space between items.
func (l *VerticalLayout) Gap() float32 { return l.gap }

// SetGap sets the space between items.
func (l *VerticalLayout) SetGap(gap float32) {
	if l.gap == gap {
		return
	}
	l.gap = gap
	l.SendChange()
}

// FirstGap returns the override for the gap between the first and
// second items; NaN means the default gap applies.
func (l *VerticalLayout) FirstGap() float32 { return l.firstGap }

// SetFirstGap overrides the gap between the first and second items.
// Set NaN to restore the default gap.
func (l *VerticalLayout) SetFirstGap(gap float32) {
	if l.firstGap == gap || (math32.IsNaN(l.firstGap) && math32.IsNaN(gap)) {
		return
	}
	l.firstGap = gap
	l.SendChange()
}

// LastGap returns the override for the gap between the second-to-last
// and last items; NaN means the default gap applies.
func (l *VerticalLayout) LastGap() float32 { return l.lastGap }

// SetLastGap overrides the gap between the second-to-last and last
// items. Set NaN to restore the default gap.
func (l *VerticalLayout) SetLastGap(gap float32) {
	if l.lastGap == gap || (math32.IsNaN(l.lastGap) && math32.IsNaN(gap)) {
		return
	}
	l.lastGap = gap
	l.SendChange()
}

// HorizontalAlign returns the cross-axis alignment of items.
func (l *VerticalLayout) HorizontalAlign() align.Horizontal { return l.horizontalAlign }

// SetHorizontalAlign sets the cross-axis alignment of items.
// [align.HJustify] stretches every item to the available width.
func (l *VerticalLayout) SetHorizontalAlign(h align.Horizontal) {
	if l.horizontalAlign == h {
		return
	}
	l.horizontalAlign = h
	l.SendChange()
}

// VerticalAlign returns the alignment of the whole content when it is
// smaller than the viewport.
func (l *VerticalLayout) VerticalAlign() align.Vertical { return l.verticalAlign }

// SetVerticalAlign sets the alignment of the whole content when it is
// smaller than the viewport.
func (l *VerticalLayout) SetVerticalAlign(v align.Vertical) {
	if l.verticalAlign == v {
		return
	}
	l.verticalAlign = v
	l.SendChange()
}

// DistributeHeights reports whether the available height is divided
// evenly among all items.
func (l *VerticalLayout) DistributeHeights() bool { return l.distributeHeights }

// SetDistributeHeights divides the available height evenly among all
// items, overriding percent sizing.
func (l *VerticalLayout) SetDistributeHeights(on bool) {
	if l.distributeHeights == on {
		return
	}
	l.distributeHeights = on
	l.SendChange()
}

// RequestedRowCount returns the number of rows used to measure the
// viewport when virtualized; 0 means measure from all items.
func (l *VerticalLayout) RequestedRowCount() int { return l.requestedRowCount }

// SetRequestedRowCount sets the number of rows used to measure the
// viewport when virtualized. A negative count is programmer error.
func (l *VerticalLayout) SetRequestedRowCount(n int) {
	if n < 0 {
		panic(fmt.Sprintf("layouts: RequestedRowCount must be non-negative, not %d", n))
	}
	if l.requestedRowCount == n {
		return
	}
	l.requestedRowCount = n
	l.SendChange()
}

// HasVariableItemDimensions reports whether virtualized items may have
// different heights, backed by the variable-dimension cache.
func (l *VerticalLayout) HasVariableItemDimensions() bool { return l.hasVariableItemDimensions }

// SetHasVariableItemDimensions enables the variable-dimension cache for
// virtualized items of differing heights.
func (l *VerticalLayout) SetHasVariableItemDimensions(on bool) {
	if l.hasVariableItemDimensions == on {
		return
	}
	l.hasVariableItemDimensions = on
	l.SendChange()
}

// BeforeVirtualizedItemCount returns the number of off-screen items
// preceding the passed window.
func (l *VerticalLayout) BeforeVirtualizedItemCount() int { return l.beforeVirtualizedItemCount }

// SetBeforeVirtualizedItemCount tells the layout how many items
// precede the passed window, so it can advance the starting position
// without measuring them.
func (l *VerticalLayout) SetBeforeVirtualizedItemCount(n int) {
	if n < 0 {
		panic(fmt.Sprintf("layouts: BeforeVirtualizedItemCount must be non-negative, not %d", n))
	}
	if l.beforeVirtualizedItemCount == n {
		return
	}
	l.beforeVirtualizedItemCount = n
	l.SendChange()
}

// AfterVirtualizedItemCount returns the number of off-screen items
// following the passed window.
func (l *VerticalLayout) AfterVirtualizedItemCount() int { return l.afterVirtualizedItemCount }

// SetAfterVirtualizedItemCount tells the layout how many items follow
// the passed window.
func (l *VerticalLayout) SetAfterVirtualizedItemCount(n int) {
	if n < 0 {
		panic(fmt.Sprintf("layouts: AfterVirtualizedItemCount must be non-negative, not %d", n))
	}
	if l.afterVirtualizedItemCount == n {
		return
	}
	l.afterVirtualizedItemCount = n
	l.SendChange()
}

// HeaderIndices returns the sorted item indices treated as headers.
func (l *VerticalLayout) HeaderIndices() []int { return l.headerIndices }

// SetHeaderIndices sets the item indices treated as headers. The slice
// must be sorted ascending.
func (l *VerticalLayout) SetHeaderIndices(indices []int) {
	if slices.Equal(l.headerIndices, indices) {
		return
	}
	l.headerIndices = indices
	l.SendChange()
}

// StickyHeader reports whether the current header is pinned to the top
// of the viewport while its group scrolls.
func (l *VerticalLayout) StickyHeader() bool { return l.stickyHeader }

// SetStickyHeader pins the current header to the top of the viewport
// while its group scrolls.
func (l *VerticalLayout) SetStickyHeader(on bool) {
	if l.stickyHeader == on {
		return
	}
	l.stickyHeader = on
	l.SendChange()
}

// ScrollAlign returns where ScrollPositionForIndex places the requested
// item within the viewport.
func (l *VerticalLayout) ScrollAlign() align.Vertical { return l.scrollAlign }

// SetScrollAlign sets where ScrollPositionForIndex places the requested
// item within the viewport.
func (l *VerticalLayout) SetScrollAlign(v align.Vertical) {
	if l.scrollAlign == v {
		return
	}
	l.scrollAlign = v
	l.SendChange()
}

// PinnedHeaderIndex returns the header index pinned by the most recent
// Layout call, or -1. The container should re-parent the pinned header
// so it renders on top of the items it overlaps.
func (l *VerticalLayout) PinnedHeaderIndex() int { return l.pinnedHeaderIndex }

// ResetCache forgets all cached item heights.
func (l *VerticalLayout) ResetCache() {
	l.dims.Reset()
	l.SendChange()
}

// ResetCacheAt forgets the cached height of one item.
func (l *VerticalLayout) ResetCacheAt(index int) {
	l.dims.ResetAt(index)
	l.SendChange()
}

// InsertCacheAt opens a cache slot when an item is inserted into the
// container's data.
func (l *VerticalLayout) InsertCacheAt(index int) {
	l.dims.Insert(index)
	l.SendChange()
}

// RemoveCacheAt drops a cache slot when an item is removed from the
// container's data.
func (l *VerticalLayout) RemoveCacheAt(index int) {
	l.dims.Remove(index)
	l.SendChange()
}

// gapAfter returns the gap following the item at raw index i of
// itemCount total items, honoring the first/last gap overrides.
func (l *VerticalLayout) gapAfter(i, itemCount int) float32 {
	if i == 0 && itemCount >= 2 && !math32.IsNaN(l.firstGap) {
		return l.firstGap
	}
	if i == itemCount-2 && itemCount >= 3 && !math32.IsNaN(l.lastGap) {
		return l.lastGap
	}
	return l.gap
}

// isHeader reports whether raw index i is a header index.
func (l *VerticalLayout) isHeader(i int) bool {
	_, ok := slices.BinarySearch(l.headerIndices, i)
	return ok
}

// Layout implements [Layouter].
func (l *VerticalLayout) Layout(items []Item, bounds *ViewportBounds, result *Result) *Result {
	if bounds == nil {
		bounds = NewViewportBounds()
	}
	if result == nil {
		result = &Result{}
	}
	boundsX, boundsY := bounds.X, bounds.Y
	scrollY := bounds.ScrollY
	explicitW, explicitH := bounds.ExplicitWidth, bounds.ExplicitHeight
	minW, minH := bounds.MinWidth, bounds.MinHeight
	maxW, maxH := bounds.MaxWidth, bounds.MaxHeight
	needsW := math32.IsNaN(explicitW)
	needsH := math32.IsNaN(explicitH)

	var typW, typH float32
	if l.useVirtualLayout {
		typW, typH = l.typicalSize()
	}

	l.discovered = l.discovered[:0]
	l.pinnedHeaderIndex = -1

	itemCount := len(items)
	totalCount := itemCount
	before, after := 0, 0
	if l.useVirtualLayout {
		before, after = l.beforeVirtualizedItemCount, l.afterVirtualizedItemCount
		totalCount = before + itemCount + after
	}

	// First measurement pass: find the widest item so the available
	// width can be computed before justify/percent widths are applied.
	maxItemWidth := float32(0)
	if l.useVirtualLayout {
		maxItemWidth = typW
	}
	for _, it := range items {
		if it == nil || !includeInLayout(it) {
			continue
		}
		validateItem(it)
		if w := it.Width(); w > maxItemWidth {
			maxItemWidth = w
		}
	}

	availableW := explicitW
	if needsW {
		availableW = clamp(maxItemWidth+l.padding.Left+l.padding.Right, minW, maxW)
	}

	// Justify and percent widths change one dimension, which may change
	// the other (word wrap), so they are applied and re-validated
	// before any height is read.
	justifyW := availableW - l.padding.Left - l.padding.Right
	for _, it := range items {
		if it == nil || !includeInLayout(it) {
			continue
		}
		if l.horizontalAlign == align.HJustify {
			it.SetWidth(justifyW)
			validateItem(it)
			continue
		}
		if pctW, _ := itemData(it).Percent(); !math32.IsNaN(pctW) {
			w := pctW / 100 * justifyW
			minIW, _ := sizerMin(it)
			maxIW, _ := sizerMax(it)
			it.SetWidth(clamp(w, minIW, maxIW))
			validateItem(it)
		}
	}

	distributedH := math32.NaN()
	if l.distributeHeights {
		distributedH = l.calculateDistributedHeight(items, totalCount, explicitH, maxH)
	}
	hasDistributedH := !math32.IsNaN(distributedH)

	if !needsH && !hasDistributedH {
		l.applyPercentHeights(items, totalCount, explicitH)
	}

	// Main pass: stack along the primary axis. Every contributing item
	// advances the position by its height plus the gap that follows it;
	// the final trailing gap is subtracted afterwards.
	positionY := boundsY + l.padding.Top
	if before > 0 {
		positionY += float32(before) * (typH + l.gap)
		if !math32.IsNaN(l.firstGap) && totalCount >= 2 {
			positionY += l.firstGap - l.gap
		}
	}
	lastTrailingGap := float32(0)
	contributed := before > 0
	for i, it := range items {
		raw := before + i
		if it == nil {
			if !l.useVirtualLayout {
				continue
			}
			h := typH
			if l.hasVariableItemDimensions {
				if c := l.dims.At(raw); !math32.IsNaN(c) {
					h = c
				}
			}
			g := l.gapAfter(raw, totalCount)
			positionY += h + g
			lastTrailingGap = g
			contributed = true
			continue
		}
		if !includeInLayout(it) {
			continue
		}
		if hasDistributedH {
			it.SetHeight(distributedH)
			validateItem(it)
		}
		h := it.Height()
		if l.useVirtualLayout && l.hasVariableItemDimensions {
			if c := l.dims.At(raw); math32.IsNaN(c) || c != h {
				l.dims.Set(raw, h)
				l.SendChange()
			}
		}
		setPosition(it, boundsX+l.padding.Left, positionY)
		g := l.gapAfter(raw, totalCount)
		positionY += h + g
		lastTrailingGap = g
		contributed = true
		l.discovered = append(l.discovered, it)
	}
	if after > 0 {
		positionY += float32(after) * (typH + l.gap)
		if !math32.IsNaN(l.lastGap) && totalCount >= 3 {
			positionY += l.lastGap - l.gap
		}
		lastTrailingGap = l.gap
		contributed = true
	}

	totalHeight := positionY + l.padding.Bottom - boundsY
	if contributed {
		totalHeight -= lastTrailingGap
	}

	availableH := explicitH
	if needsH {
		measured := totalHeight
		if l.useVirtualLayout && l.requestedRowCount > 0 {
			rows := l.requestedRowCount
			measured = float32(rows)*(typH+l.gap) - l.gap + l.padding.Top + l.padding.Bottom
		}
		availableH = clamp(measured, minH, maxH)
	}

	// Whole-content vertical alignment: a uniform offset when content
	// is smaller than the viewport. Top applies no offset.
	if totalHeight < availableH {
		var offset float32
		switch l.verticalAlign {
		case align.Bottom:
			offset = availableH - totalHeight
		case align.Middle:
			offset = math32.Round((availableH - totalHeight) / 2)
		}
		if offset != 0 {
			for _, it := range l.discovered {
				it.SetY(it.Y() + offset)
			}
		}
	}

	// Cross-axis alignment of each item within the available width.
	for _, it := range l.discovered {
		var x float32
		switch l.horizontalAlign {
		case align.Right:
			x = boundsX + availableW - l.padding.Right - it.Width()
		case align.HCenter:
			x = boundsX + l.padding.Left + math32.Round((availableW-l.padding.Left-l.padding.Right-it.Width())/2)
		default:
			x = boundsX + l.padding.Left
		}
		it.SetX(x + it.PivotX())
	}

	if l.stickyHeader && len(l.headerIndices) > 0 {
		l.positionStickyHeader(items, before, boundsY, scrollY)
	}

	if LayoutTrace {
		fmt.Println("VerticalLayout: items:", itemCount, "totalHeight:", totalHeight, "available:", availableW, availableH)
	}

	result.ContentX = boundsX
	result.ContentY = boundsY
	if l.horizontalAlign == align.HJustify {
		result.ContentWidth = availableW
	} else {
		result.ContentWidth = maxItemWidth + l.padding.Left + l.padding.Right
	}
	result.ContentHeight = totalHeight
	result.ViewportWidth = availableW
	result.ViewportHeight = availableH
	return result
}

// positionStickyHeader pins the header whose group is currently
// scrolled into view to the top of the viewport, clamped so it never
// overlaps the next header.
func (l *VerticalLayout) positionStickyHeader(items []Item, before int, boundsY, scrollY float32) {
	pinY := boundsY + scrollY
	current, next := -1, -1
	for _, hi := range l.headerIndices {
		wi := hi - before
		if wi < 0 || wi >= len(items) || items[wi] == nil {
			continue
		}
		if positionY(items[wi]) <= pinY {
			current = hi
		} else {
			next = hi
			break
		}
	}
	if current < 0 {
		return
	}
	header := items[current-before]
	y := pinY
	if next >= 0 {
		nextY := positionY(items[next-before])
		if y > nextY-header.Height() {
			y = nextY - header.Height()
		}
	}
	if y > positionY(header) {
		header.SetY(y + header.PivotY())
		l.pinnedHeaderIndex = current
	}
}

// calculateDistributedHeight returns the uniform item height that
// divides the definite available height evenly, or NaN when no definite
// height exists (items then keep their measured heights).
func (l *VerticalLayout) calculateDistributedHeight(items []Item, totalCount int, explicitH, maxH float32) float32 {
	availableH := explicitH
	if math32.IsNaN(availableH) {
		if math32.IsInf(maxH, 1) {
			return math32.NaN()
		}
		availableH = maxH
	}
	count := 0
	for _, it := range items {
		if it == nil {
			if l.useVirtualLayout {
				count++
			}
			continue
		}
		if includeInLayout(it) {
			count++
		}
	}
	count += totalCount - len(items)
	if count == 0 {
		return math32.NaN()
	}
	gaps := float32(count-1) * l.gap
	if count >= 2 && !math32.IsNaN(l.firstGap) {
		gaps += l.firstGap - l.gap
	}
	if count >= 3 && !math32.IsNaN(l.lastGap) {
		gaps += l.lastGap - l.gap
	}
	return (availableH - l.padding.Top - l.padding.Bottom - gaps) / float32(count)
}

// applyPercentHeights distributes the remaining primary-axis space
// among items carrying percent heights. Items whose share falls below
// their own minimum are fixed at that minimum and excluded from the
// next pass; the loop is capped at one iteration per percent item.
func (l *VerticalLayout) applyPercentHeights(items []Item, totalCount int, explicitH float32) {
	type pctItem struct {
		it  Item
		pct float32
	}
	var pool []pctItem
	remaining := explicitH - l.padding.Top - l.padding.Bottom
	totalPercent := float32(0)
	contributing := 0
	for _, it := range items {
		if it == nil {
			if l.useVirtualLayout {
				contributing++
				_, typH := l.typicalSize()
				remaining -= typH
			}
			continue
		}
		if !includeInLayout(it) {
			continue
		}
		contributing++
		if _, pctH := itemData(it).Percent(); !math32.IsNaN(pctH) {
			if pctH < 0 {
				pctH = 0
			}
			pool = append(pool, pctItem{it, pctH})
			totalPercent += pctH
		} else {
			remaining -= it.Height()
		}
	}
	if len(pool) == 0 {
		return
	}
	contributing += totalCount - len(items)
	if contributing > 1 {
		gaps := float32(contributing-1) * l.gap
		if contributing >= 2 && !math32.IsNaN(l.firstGap) {
			gaps += l.firstGap - l.gap
		}
		if contributing >= 3 && !math32.IsNaN(l.lastGap) {
			gaps += l.lastGap - l.gap
		}
		remaining -= gaps
	}
	if totalPercent < 100 {
		totalPercent = 100
	}
	if remaining < 0 {
		remaining = 0
	}
	for pass := 0; pass <= len(pool); pass++ {
		needsAnother := false
		if totalPercent <= 0 {
			totalPercent = 100
		}
		percentToPixels := remaining / totalPercent
		for i := 0; i < len(pool); i++ {
			p := pool[i]
			h := percentToPixels * p.pct
			_, minIH := sizerMin(p.it)
			_, maxIH := sizerMax(p.it)
			if h < minIH {
				h = minIH
			} else if h > maxIH {
				h = maxIH
			} else {
				continue
			}
			// fixed at a bound: assign and drop from the pool
			p.it.SetHeight(h)
			validateItem(p.it)
			remaining -= h
			totalPercent -= p.pct
			if remaining < 0 {
				remaining = 0
			}
			pool = slices.Delete(pool, i, i+1)
			i--
			needsAnother = true
		}
		if !needsAnother {
			for _, p := range pool {
				p.it.SetHeight(percentToPixels * p.pct)
				validateItem(p.it)
			}
			return
		}
	}
}

// itemHeightAt returns the height contribution of raw index i, using
// the live item when present, else the cache, else the typical item.
func (l *VerticalLayout) itemHeightAt(items []Item, i int, typH float32) float32 {
	if i >= 0 && i < len(items) && items[i] != nil {
		return items[i].Height()
	}
	if l.hasVariableItemDimensions {
		if c := l.dims.At(i); !math32.IsNaN(c) {
			return c
		}
	}
	return typH
}

// positionOfIndex returns the content-relative y position of raw index
// i, accumulating heights and gaps of everything before it.
func (l *VerticalLayout) positionOfIndex(items []Item, index int, typH float32) float32 {
	y := l.padding.Top
	n := len(items)
	for i := 0; i < index && i < n; i++ {
		y += l.itemHeightAt(items, i, typH) + l.gapAfter(i, n)
	}
	return y
}

// MeasureViewport estimates the viewport size from the typical item
// without materializing any items. Requires UseVirtualLayout.
func (l *VerticalLayout) MeasureViewport(itemCount int, bounds *ViewportBounds) (w, h float32) {
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
		rows := itemCount
		if l.requestedRowCount > 0 && l.requestedRowCount < rows {
			rows = l.requestedRowCount
		}
		measured := l.padding.Top + l.padding.Bottom
		if rows > 0 {
			measured += float32(rows)*typH + float32(rows-1)*l.gap
			if rows >= 2 && !math32.IsNaN(l.firstGap) {
				measured += l.firstGap - l.gap
			}
			if rows >= 3 && !math32.IsNaN(l.lastGap) {
				measured += l.lastGap - l.gap
			}
		}
		h = clamp(measured, bounds.MinHeight, bounds.MaxHeight)
	}
	return w, h
}

// VisibleIndices returns the item indices within the scroll window,
// padded with extra indices near the array boundaries so that small
// scrolls do not churn items. Requires UseVirtualLayout.
func (l *VerticalLayout) VisibleIndices(scrollX, scrollY, width, height float32, itemCount int, buf []int) []int {
	l.requireVirtual("VisibleIndices")
	buf = buf[:0]
	if itemCount == 0 {
		return buf
	}
	_, typH := l.typicalSize()
	if l.hasVariableItemDimensions {
		return l.visibleIndicesVariable(scrollY, height, itemCount, typH, buf)
	}
	itemH := typH + l.gap
	if itemH <= 0 {
		for i := 0; i < itemCount; i++ {
			buf = append(buf, i)
		}
		return buf
	}
	indexOffset := 0
	totalItemHeight := float32(itemCount)*itemH - l.gap + l.padding.Top + l.padding.Bottom
	if totalItemHeight < height {
		switch l.verticalAlign {
		case align.Bottom:
			indexOffset = int(math32.Ceil((height - totalItemHeight) / itemH))
		case align.Middle:
			indexOffset = int(math32.Ceil((height - totalItemHeight) / itemH / 2))
		}
	}
	visible := int(math32.Ceil(height/itemH)) + 1
	if visible > itemCount {
		visible = itemCount
	}
	minimum := int(math32.Floor((scrollY-l.padding.Top)/itemH)) - indexOffset
	if minimum < 0 {
		minimum = 0
	}
	if minimum+visible > itemCount {
		minimum = itemCount - visible
	}
	for i := 0; i < visible; i++ {
		buf = append(buf, minimum+i)
	}
	return buf
}

func (l *VerticalLayout) visibleIndicesVariable(scrollY, height float32, itemCount int, typH float32, buf []int) []int {
	maxY := scrollY + height
	y := l.padding.Top
	for i := 0; i < itemCount; i++ {
		h := l.dims.At(i)
		if math32.IsNaN(h) {
			h = typH
		}
		endY := y + h
		if endY >= scrollY && y <= maxY {
			buf = append(buf, i)
		}
		y = endY + l.gapAfter(i, itemCount)
		if y > maxY && len(buf) > 0 {
			break
		}
	}
	// one extra on each side to avoid churn at the window edges
	if len(buf) > 0 {
		if first := buf[0]; first > 0 {
			buf = append(buf, 0)
			copy(buf[1:], buf)
			buf[0] = first - 1
		}
		if last := buf[len(buf)-1]; last < itemCount-1 {
			buf = append(buf, last+1)
		}
	}
	return buf
}

// ScrollPositionForIndex returns the scroll offset that places the item
// at index within the viewport per the scroll alignment (top, middle,
// or bottom).
func (l *VerticalLayout) ScrollPositionForIndex(index int, items []Item, x, y, width, height float32) (sx, sy float32) {
	_, typH := l.typicalSize()
	itemY := l.positionOfIndex(items, index, typH)
	itemH := l.itemHeightAt(items, index, typH)
	switch l.scrollAlign {
	case align.Middle:
		itemY -= math32.Round((height - itemH) / 2)
	case align.Bottom:
		itemY -= height - itemH
	}
	return 0, itemY
}

// NearestScrollPositionForIndex returns the current scroll position
// unchanged if the item at index is already fully visible, else the
// nearer of the positions that place it flush with the top or bottom
// edge. An exact tie chooses the top edge.
func (l *VerticalLayout) NearestScrollPositionForIndex(index int, scrollX, scrollY float32, items []Item, x, y, width, height float32) (sx, sy float32) {
	_, typH := l.typicalSize()
	topPos := l.positionOfIndex(items, index, typH)
	itemH := l.itemHeightAt(items, index, typH)
	bottomPos := topPos + itemH - height
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
// skipping header indices.
func (l *VerticalLayout) NavigationDestination(items []Item, index int, key NavKey, width, height float32) int {
	itemCount := len(items)
	if itemCount == 0 {
		return -1
	}
	_, typH := l.typicalSize()
	switch key {
	case NavHome:
		return l.nextNavigable(0, +1, itemCount, index)
	case NavEnd:
		return l.nextNavigable(itemCount-1, -1, itemCount, index)
	case NavUp:
		return l.nextNavigable(index-1, -1, itemCount, index)
	case NavDown:
		return l.nextNavigable(index+1, +1, itemCount, index)
	case NavPageUp:
		target := index
		budget := height
		for i := index - 1; i >= 0; i-- {
			budget -= l.itemHeightAt(items, i, typH) + l.gapAfter(i, itemCount)
			if budget < 0 {
				break
			}
			if !l.isHeader(i) {
				target = i
			}
		}
		return target
	case NavPageDown:
		target := index
		budget := height
		for i := index + 1; i < itemCount; i++ {
			budget -= l.itemHeightAt(items, i, typH) + l.gapAfter(i-1, itemCount)
			if budget < 0 {
				break
			}
			if !l.isHeader(i) {
				target = i
			}
		}
		return target
	}
	return index
}

// nextNavigable walks from start in the given direction to the first
// non-header index, falling back to the current index.
func (l *VerticalLayout) nextNavigable(start, dir, itemCount, fallback int) int {
	for i := start; i >= 0 && i < itemCount; i += dir {
		if !l.isHeader(i) {
			return i
		}
	}
	return fallback
}

// DropIndex returns the insertion index corresponding to a pointer
// location: the first item whose vertical midpoint lies below the
// pointer, or the item count for a drop past the end.
func (l *VerticalLayout) DropIndex(x, y float32, items []Item, boundsX, boundsY, width, height float32) int {
	_, typH := l.typicalSize()
	itemCount := len(items)
	posY := boundsY + l.padding.Top
	for i := 0; i < itemCount; i++ {
		h := l.itemHeightAt(items, i, typH)
		if y < posY+h/2 {
			return i
		}
		posY += h + l.gapAfter(i, itemCount)
	}
	return itemCount
}

// DropIndicatorRect returns the rectangle for a drop indicator of the
// given thickness at the insertion boundary before index, centered
// within the gap.
func (l *VerticalLayout) DropIndicatorRect(index int, items []Item, boundsX, boundsY, width, thickness float32) (ix, iy, iw, ih float32) {
	_, typH := l.typicalSize()
	itemCount := len(items)
	var boundary float32
	switch {
	case index <= 0:
		boundary = boundsY + l.padding.Top
	case index >= itemCount:
		boundary = boundsY + l.positionOfIndex(items, itemCount-1, typH) +
			l.itemHeightAt(items, itemCount-1, typH)
	default:
		g := l.gapAfter(index-1, itemCount)
		boundary = boundsY + l.positionOfIndex(items, index, typH) - g/2
	}
	ix = boundsX + l.padding.Left
	iy = boundary - thickness/2
	iw = width - l.padding.Left - l.padding.Right
	ih = thickness
	return ix, iy, iw, ih
}
