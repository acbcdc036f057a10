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

// HorizontalLayout positions items from left to right in a single row.
// It is the horizontal mirror of [VerticalLayout]: gap with first/last
// overrides, four-sided padding, alignment, percent sizing, even width
// distribution, and full virtualization support.
type HorizontalLayout struct {
	LayoutBase

	gap      float32
	firstGap float32 // NaN = use gap
	lastGap  float32 // NaN = use gap

	horizontalAlign align.Horizontal
	verticalAlign   align.Vertical

	distributeWidths     bool
	requestedColumnCount int

	hasVariableItemDimensions  bool
	beforeVirtualizedItemCount int
	afterVirtualizedItemCount  int

	scrollAlign align.Horizontal

	dims       VariableDimensions
	discovered []Item // scratch, reset on every Layout call
}

// NewHorizontalLayout returns a horizontal layout with a zero gap, no
// padding, top-left alignment, and center scroll alignment.
func NewHorizontalLayout() *HorizontalLayout {
	return &HorizontalLayout{
		firstGap:    math32.NaN(),
		lastGap:     math32.NaN(),
		scrollAlign: align.HCenter,
	}
}

// Caps implements [Layouter].
func (l *HorizontalLayout) Caps() Capabilities {
	return Capabilities{
		Virtualization:    true,
		VariableItemSizes: true,
		Trimming:          true,
		DragDrop:          true,
	}
}

// Gap returns the space between items.
func (l *HorizontalLayout) Gap() float32 { return l.gap }

// SetGap sets the space between items.
func (l *HorizontalLayout) SetGap(gap float32) {
	if l.gap == gap {
		return
	}
	l.gap = gap
	l.SendChange()
}

// FirstGap returns the override for the gap between the first and
// second items; NaN means the default gap applies.
func (l *HorizontalLayout) FirstGap() float32 { return l.firstGap }

// SetFirstGap overrides the gap between the first and second items.
func (l *HorizontalLayout) SetFirstGap(gap float32) {
	if l.firstGap == gap || (math32.IsNaN(l.firstGap) && math32.IsNaN(gap)) {
		return
	}
	l.firstGap = gap
	l.SendChange()
}

// LastGap returns the override for the gap between the second-to-last
// and last items; NaN means the default gap applies.
func (l *HorizontalLayout) LastGap() float32 { return l.lastGap }

// SetLastGap overrides the gap between the second-to-last and last
// items.
func (l *HorizontalLayout) SetLastGap(gap float32) {
	if l.lastGap == gap || (math32.IsNaN(l.lastGap) && math32.IsNaN(gap)) {
		return
	}
	l.lastGap = gap
	l.SendChange()
}

// HorizontalAlign returns the alignment of the whole content when it is
// smaller than the viewport.
func (l *HorizontalLayout) HorizontalAlign() align.Horizontal { return l.horizontalAlign }

// SetHorizontalAlign sets the alignment of the whole content when it is
// smaller than the viewport.
func (l *HorizontalLayout) SetHorizontalAlign(h align.Horizontal) {
	if l.horizontalAlign == h {
		return
	}
	l.horizontalAlign = h
	l.SendChange()
}

// VerticalAlign returns the cross-axis alignment of items.
func (l *HorizontalLayout) VerticalAlign() align.Vertical { return l.verticalAlign }

// SetVerticalAlign sets the cross-axis alignment of items.
// [align.VJustify] stretches every item to the available height.
func (l *HorizontalLayout) SetVerticalAlign(v align.Vertical) {
	if l.verticalAlign == v {
		return
	}
	l.verticalAlign = v
	l.SendChange()
}

// DistributeWidths reports whether the available width is divided
// evenly among all items.
func (l *HorizontalLayout) DistributeWidths() bool { return l.distributeWidths }

// SetDistributeWidths divides the available width evenly among all
// items, overriding percent sizing.
func (l *HorizontalLayout) SetDistributeWidths(on bool) {
	if l.distributeWidths == on {
		return
	}
	l.distributeWidths = on
	l.SendChange()
}

// RequestedColumnCount returns the number of columns used to measure
// the viewport when virtualized; 0 means measure from all items.
func (l *HorizontalLayout) RequestedColumnCount() int { return l.requestedColumnCount }

// SetRequestedColumnCount sets the number of columns used to measure
// the viewport when virtualized. A negative count is programmer error.
func (l *HorizontalLayout) SetRequestedColumnCount(n int) {
	if n < 0 {
		panic(fmt.Sprintf("layouts: RequestedColumnCount must be non-negative, not %d", n))
	}
	if l.requestedColumnCount == n {
		return
	}
	l.requestedColumnCount = n
	l.SendChange()
}

// HasVariableItemDimensions reports whether virtualized items may have
// different widths, backed by the variable-dimension cache.
func (l *HorizontalLayout) HasVariableItemDimensions() bool { return l.hasVariableItemDimensions }

// SetHasVariableItemDimensions enables the variable-dimension cache for
// virtualized items of differing widths.
func (l *HorizontalLayout) SetHasVariableItemDimensions(on bool) {
	if l.hasVariableItemDimensions == on {
		return
	}
	l.hasVariableItemDimensions = on
	l.SendChange()
}

// BeforeVirtualizedItemCount returns the number of off-screen items
// preceding the passed window.
func (l *HorizontalLayout) BeforeVirtualizedItemCount() int { return l.beforeVirtualizedItemCount }

// SetBeforeVirtualizedItemCount tells the layout how many items
// precede the passed window.
func (l *HorizontalLayout) SetBeforeVirtualizedItemCount(n int) {
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
func (l *HorizontalLayout) AfterVirtualizedItemCount() int { return l.afterVirtualizedItemCount }

// SetAfterVirtualizedItemCount tells the layout how many items follow
// the passed window.
func (l *HorizontalLayout) SetAfterVirtualizedItemCount(n int) {
	if n < 0 {
		panic(fmt.Sprintf("layouts: AfterVirtualizedItemCount must be non-negative, not %d", n))
	}
	if l.afterVirtualizedItemCount == n {
		return
	}
	l.afterVirtualizedItemCount = n
	l.SendChange()
}

// ScrollAlign returns where ScrollPositionForIndex places the requested
// item within the viewport.
func (l *HorizontalLayout) ScrollAlign() align.Horizontal { return l.scrollAlign }

// SetScrollAlign sets where ScrollPositionForIndex places the requested
// item within the viewport.
func (l *HorizontalLayout) SetScrollAlign(h align.Horizontal) {
	if l.scrollAlign == h {
		return
	}
	l.scrollAlign = h
	l.SendChange()
}

// ResetCache forgets all cached item widths.
func (l *HorizontalLayout) ResetCache() {
	l.dims.Reset()
	l.SendChange()
}

// ResetCacheAt forgets the cached width of one item.
func (l *HorizontalLayout) ResetCacheAt(index int) {
	l.dims.ResetAt(index)
	l.SendChange()
}

// InsertCacheAt opens a cache slot when an item is inserted into the
// container's data.
func (l *HorizontalLayout) InsertCacheAt(index int) {
	l.dims.Insert(index)
	l.SendChange()
}

// RemoveCacheAt drops a cache slot when an item is removed from the
// container's data.
func (l *HorizontalLayout) RemoveCacheAt(index int) {
	l.dims.Remove(index)
	l.SendChange()
}

// gapAfter returns the gap following the item at raw index i of
// itemCount total items, honoring the first/last gap overrides.
func (l *HorizontalLayout) gapAfter(i, itemCount int) float32 {
	if i == 0 && itemCount >= 2 && !math32.IsNaN(l.firstGap) {
		return l.firstGap
	}
	if i == itemCount-2 && itemCount >= 3 && !math32.IsNaN(l.lastGap) {
		return l.lastGap
	}
	return l.gap
}

// Layout implements [Layouter].
func (l *HorizontalLayout) Layout(items []Item, bounds *ViewportBounds, result *Result) *Result {
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

	l.discovered = l.discovered[:0]

	itemCount := len(items)
	totalCount := itemCount
	before, after := 0, 0
	if l.useVirtualLayout {
		before, after = l.beforeVirtualizedItemCount, l.afterVirtualizedItemCount
		totalCount = before + itemCount + after
	}

	// First measurement pass: find the tallest item so the available
	// height is known before justify/percent heights are applied.
	maxItemHeight := float32(0)
	if l.useVirtualLayout {
		maxItemHeight = typH
	}
	for _, it := range items {
		if it == nil || !includeInLayout(it) {
			continue
		}
		validateItem(it)
		if h := it.Height(); h > maxItemHeight {
			maxItemHeight = h
		}
	}

	availableH := explicitH
	if needsH {
		availableH = clamp(maxItemHeight+l.padding.Top+l.padding.Bottom, minH, maxH)
	}

	// Cross-axis sizing happens before widths are read, since changing
	// an item's height may change its width.
	justifyH := availableH - l.padding.Top - l.padding.Bottom
	for _, it := range items {
		if it == nil || !includeInLayout(it) {
			continue
		}
		if l.verticalAlign == align.VJustify {
			it.SetHeight(justifyH)
			validateItem(it)
			continue
		}
		if _, pctH := itemData(it).Percent(); !math32.IsNaN(pctH) {
			h := pctH / 100 * justifyH
			_, minIH := sizerMin(it)
			_, maxIH := sizerMax(it)
			it.SetHeight(clamp(h, minIH, maxIH))
			validateItem(it)
		}
	}

	distributedW := math32.NaN()
	if l.distributeWidths {
		distributedW = l.calculateDistributedWidth(items, totalCount, explicitW, maxW)
	}
	hasDistributedW := !math32.IsNaN(distributedW)

	if !needsW && !hasDistributedW {
		l.applyPercentWidths(items, totalCount, explicitW)
	}

	positionX := boundsX + l.padding.Left
	if before > 0 {
		positionX += float32(before) * (typW + l.gap)
		if !math32.IsNaN(l.firstGap) && totalCount >= 2 {
			positionX += l.firstGap - l.gap
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
			w := typW
			if l.hasVariableItemDimensions {
				if c := l.dims.At(raw); !math32.IsNaN(c) {
					w = c
				}
			}
			g := l.gapAfter(raw, totalCount)
			positionX += w + g
			lastTrailingGap = g
			contributed = true
			continue
		}
		if !includeInLayout(it) {
			continue
		}
		if hasDistributedW {
			it.SetWidth(distributedW)
			validateItem(it)
		}
		w := it.Width()
		if l.useVirtualLayout && l.hasVariableItemDimensions {
			if c := l.dims.At(raw); math32.IsNaN(c) || c != w {
				l.dims.Set(raw, w)
				l.SendChange()
			}
		}
		setPosition(it, positionX, boundsY+l.padding.Top)
		g := l.gapAfter(raw, totalCount)
		positionX += w + g
		lastTrailingGap = g
		contributed = true
		l.discovered = append(l.discovered, it)
	}
	if after > 0 {
		positionX += float32(after) * (typW + l.gap)
		if !math32.IsNaN(l.lastGap) && totalCount >= 3 {
			positionX += l.lastGap - l.gap
		}
		lastTrailingGap = l.gap
		contributed = true
	}

	totalWidth := positionX + l.padding.Right - boundsX
	if contributed {
		totalWidth -= lastTrailingGap
	}

	availableW := explicitW
	if needsW {
		measured := totalWidth
		if l.useVirtualLayout && l.requestedColumnCount > 0 {
			cols := l.requestedColumnCount
			measured = float32(cols)*(typW+l.gap) - l.gap + l.padding.Left + l.padding.Right
		}
		availableW = clamp(measured, minW, maxW)
	}

	// Whole-content horizontal alignment when content is smaller than
	// the viewport. Left applies no offset.
	if totalWidth < availableW {
		var offset float32
		switch l.horizontalAlign {
		case align.Right:
			offset = availableW - totalWidth
		case align.HCenter:
			offset = math32.Round((availableW - totalWidth) / 2)
		}
		if offset != 0 {
			for _, it := range l.discovered {
				it.SetX(it.X() + offset)
			}
		}
	}

	// Cross-axis alignment of each item within the available height.
	for _, it := range l.discovered {
		var y float32
		switch l.verticalAlign {
		case align.Bottom:
			y = boundsY + availableH - l.padding.Bottom - it.Height()
		case align.Middle:
			y = boundsY + l.padding.Top + math32.Round((availableH-l.padding.Top-l.padding.Bottom-it.Height())/2)
		default:
			y = boundsY + l.padding.Top
		}
		it.SetY(y + it.PivotY())
	}

	if LayoutTrace {
		fmt.Println("HorizontalLayout: items:", itemCount, "totalWidth:", totalWidth, "available:", availableW, availableH)
	}

	result.ContentX = boundsX
	result.ContentY = boundsY
	result.ContentWidth = totalWidth
	if l.verticalAlign == align.VJustify {
		result.ContentHeight = availableH
	} else {
		result.ContentHeight = maxItemHeight + l.padding.Top + l.padding.Bottom
	}
	result.ViewportWidth = availableW
	result.ViewportHeight = availableH
	return result
}

// calculateDistributedWidth returns the uniform item width that divides
// the definite available width evenly, or NaN when no definite width
// exists.
func (l *HorizontalLayout) calculateDistributedWidth(items []Item, totalCount int, explicitW, maxW float32) float32 {
	availableW := explicitW
	if math32.IsNaN(availableW) {
		if math32.IsInf(maxW, 1) {
			return math32.NaN()
		}
		availableW = maxW
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
	return (availableW - l.padding.Left - l.padding.Right - gaps) / float32(count)
}

// applyPercentWidths distributes the remaining primary-axis space among
// items carrying percent widths, with the same shrink-to-fit loop as
// [VerticalLayout].
func (l *HorizontalLayout) applyPercentWidths(items []Item, totalCount int, explicitW float32) {
	type pctItem struct {
		it  Item
		pct float32
	}
	var pool []pctItem
	remaining := explicitW - l.padding.Left - l.padding.Right
	totalPercent := float32(0)
	contributing := 0
	for _, it := range items {
		if it == nil {
			if l.useVirtualLayout {
				contributing++
				typW, _ := l.typicalSize()
				remaining -= typW
			}
			continue
		}
		if !includeInLayout(it) {
			continue
		}
		contributing++
		if pctW, _ := itemData(it).Percent(); !math32.IsNaN(pctW) {
			if pctW < 0 {
				pctW = 0
			}
			pool = append(pool, pctItem{it, pctW})
			totalPercent += pctW
		} else {
			remaining -= it.Width()
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
			w := percentToPixels * p.pct
			minIW, _ := sizerMin(p.it)
			maxIW, _ := sizerMax(p.it)
			if w < minIW {
				w = minIW
			} else if w > maxIW {
				w = maxIW
			} else {
				continue
			}
			p.it.SetWidth(w)
			validateItem(p.it)
			remaining -= w
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
				p.it.SetWidth(percentToPixels * p.pct)
				validateItem(p.it)
			}
			return
		}
	}
}

// itemWidthAt returns the width contribution of raw index i, using the
// live item when present, else the cache, else the typical item.
func (l *HorizontalLayout) itemWidthAt(items []Item, i int, typW float32) float32 {
	if i >= 0 && i < len(items) && items[i] != nil {
		return items[i].Width()
	}
	if l.hasVariableItemDimensions {
		if c := l.dims.At(i); !math32.IsNaN(c) {
			return c
		}
	}
	return typW
}

// positionOfIndex returns the content-relative x position of raw index
// i.
func (l *HorizontalLayout) positionOfIndex(items []Item, index int, typW float32) float32 {
	x := l.padding.Left
	n := len(items)
	for i := 0; i < index && i < n; i++ {
		x += l.itemWidthAt(items, i, typW) + l.gapAfter(i, n)
	}
	return x
}

// MeasureViewport estimates the viewport size from the typical item
// without materializing any items. Requires UseVirtualLayout.
func (l *HorizontalLayout) MeasureViewport(itemCount int, bounds *ViewportBounds) (w, h float32) {
	l.requireVirtual("MeasureViewport")
	if bounds == nil {
		bounds = NewViewportBounds()
	}
	typW, typH := l.typicalSize()
	w, h = bounds.ExplicitWidth, bounds.ExplicitHeight
	if math32.IsNaN(h) {
		h = clamp(typH+l.padding.Top+l.padding.Bottom, bounds.MinHeight, bounds.MaxHeight)
	}
	if math32.IsNaN(w) {
		cols := itemCount
		if l.requestedColumnCount > 0 && l.requestedColumnCount < cols {
			cols = l.requestedColumnCount
		}
		measured := l.padding.Left + l.padding.Right
		if cols > 0 {
			measured += float32(cols)*typW + float32(cols-1)*l.gap
			if cols >= 2 && !math32.IsNaN(l.firstGap) {
				measured += l.firstGap - l.gap
			}
			if cols >= 3 && !math32.IsNaN(l.lastGap) {
				measured += l.lastGap - l.gap
			}
		}
		w = clamp(measured, bounds.MinWidth, bounds.MaxWidth)
	}
	return w, h
}

// VisibleIndices returns the item indices within the scroll window,
// padded with extra indices near the array boundaries so that small
// scrolls do not churn items. Requires UseVirtualLayout.
func (l *HorizontalLayout) VisibleIndices(scrollX, scrollY, width, height float32, itemCount int, buf []int) []int {
	l.requireVirtual("VisibleIndices")
	buf = buf[:0]
	if itemCount == 0 {
		return buf
	}
	typW, _ := l.typicalSize()
	if l.hasVariableItemDimensions {
		return l.visibleIndicesVariable(scrollX, width, itemCount, typW, buf)
	}
	itemW := typW + l.gap
	if itemW <= 0 {
		for i := 0; i < itemCount; i++ {
			buf = append(buf, i)
		}
		return buf
	}
	indexOffset := 0
	totalItemWidth := float32(itemCount)*itemW - l.gap + l.padding.Left + l.padding.Right
	if totalItemWidth < width {
		switch l.horizontalAlign {
		case align.Right:
			indexOffset = int(math32.Ceil((width - totalItemWidth) / itemW))
		case align.HCenter:
			indexOffset = int(math32.Ceil((width - totalItemWidth) / itemW / 2))
		}
	}
	visible := int(math32.Ceil(width/itemW)) + 1
	if visible > itemCount {
		visible = itemCount
	}
	minimum := int(math32.Floor((scrollX-l.padding.Left)/itemW)) - indexOffset
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

func (l *HorizontalLayout) visibleIndicesVariable(scrollX, width float32, itemCount int, typW float32, buf []int) []int {
	maxX := scrollX + width
	x := l.padding.Left
	for i := 0; i < itemCount; i++ {
		w := l.dims.At(i)
		if math32.IsNaN(w) {
			w = typW
		}
		endX := x + w
		if endX >= scrollX && x <= maxX {
			buf = append(buf, i)
		}
		x = endX + l.gapAfter(i, itemCount)
		if x > maxX && len(buf) > 0 {
			break
		}
	}
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
// at index within the viewport per the scroll alignment.
func (l *HorizontalLayout) ScrollPositionForIndex(index int, items []Item, x, y, width, height float32) (sx, sy float32) {
	typW, _ := l.typicalSize()
	itemX := l.positionOfIndex(items, index, typW)
	itemW := l.itemWidthAt(items, index, typW)
	switch l.scrollAlign {
	case align.HCenter:
		itemX -= math32.Round((width - itemW) / 2)
	case align.Right:
		itemX -= width - itemW
	}
	return itemX, 0
}

// NearestScrollPositionForIndex returns the current scroll position
// unchanged if the item at index is already fully visible, else the
// nearer of the positions that place it flush with the left or right
// edge. An exact tie chooses the left edge.
func (l *HorizontalLayout) NearestScrollPositionForIndex(index int, scrollX, scrollY float32, items []Item, x, y, width, height float32) (sx, sy float32) {
	typW, _ := l.typicalSize()
	leftPos := l.positionOfIndex(items, index, typW)
	itemW := l.itemWidthAt(items, index, typW)
	rightPos := leftPos + itemW - width
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

// NavigationDestination maps a navigation key to a target item index.
func (l *HorizontalLayout) NavigationDestination(items []Item, index int, key NavKey, width, height float32) int {
	itemCount := len(items)
	if itemCount == 0 {
		return -1
	}
	typW, _ := l.typicalSize()
	switch key {
	case NavHome:
		return 0
	case NavEnd:
		return itemCount - 1
	case NavLeft:
		if index > 0 {
			return index - 1
		}
		return index
	case NavRight:
		if index < itemCount-1 {
			return index + 1
		}
		return index
	case NavPageUp:
		target := index
		budget := width
		for i := index - 1; i >= 0; i-- {
			budget -= l.itemWidthAt(items, i, typW) + l.gapAfter(i, itemCount)
			if budget < 0 {
				break
			}
			target = i
		}
		return target
	case NavPageDown:
		target := index
		budget := width
		for i := index + 1; i < itemCount; i++ {
			budget -= l.itemWidthAt(items, i, typW) + l.gapAfter(i-1, itemCount)
			if budget < 0 {
				break
			}
			target = i
		}
		return target
	}
	return index
}

// DropIndex returns the insertion index for a pointer location: the
// first item whose horizontal midpoint lies to the right of the
// pointer, or the item count for a drop past the end.
func (l *HorizontalLayout) DropIndex(x, y float32, items []Item, boundsX, boundsY, width, height float32) int {
	typW, _ := l.typicalSize()
	itemCount := len(items)
	posX := boundsX + l.padding.Left
	for i := 0; i < itemCount; i++ {
		w := l.itemWidthAt(items, i, typW)
		if x < posX+w/2 {
			return i
		}
		posX += w + l.gapAfter(i, itemCount)
	}
	return itemCount
}

// DropIndicatorRect returns the rectangle for a drop indicator of the
// given thickness at the insertion boundary before index.
func (l *HorizontalLayout) DropIndicatorRect(index int, items []Item, boundsX, boundsY, height, thickness float32) (ix, iy, iw, ih float32) {
	typW, _ := l.typicalSize()
	itemCount := len(items)
	var boundary float32
	switch {
	case index <= 0:
		boundary = boundsX + l.padding.Left
	case index >= itemCount:
		boundary = boundsX + l.positionOfIndex(items, itemCount-1, typW) +
			l.itemWidthAt(items, itemCount-1, typW)
	default:
		g := l.gapAfter(index-1, itemCount)
		boundary = boundsX + l.positionOfIndex(items, index, typW) - g/2
	}
	ix = boundary - thickness/2
	iy = boundsY + l.padding.Top
	iw = thickness
	ih = height - l.padding.Top - l.padding.Bottom
	return ix, iy, iw, ih
}
