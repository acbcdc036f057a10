// Copyright (c) 2025, Mosaic Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layouts

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/mosaicui/mosaic/align"
)

// SlideShowLayout gives each item its own full-viewport page, arranged
// left to right. The container is expected to snap scrolling to page
// boundaries.
type SlideShowLayout struct {
	LayoutBase

	horizontalAlign align.Horizontal
	verticalAlign   align.Vertical
}

// NewSlideShowLayout returns a slide show layout with items centered
// on their pages.
func NewSlideShowLayout() *SlideShowLayout {
	return &SlideShowLayout{
		horizontalAlign: align.HCenter,
		verticalAlign:   align.Middle,
	}
}

// Caps implements [Layouter].
func (l *SlideShowLayout) Caps() Capabilities {
	return Capabilities{Virtualization: true}
}

// HorizontalAlign returns the alignment of each item within its page.
func (l *SlideShowLayout) HorizontalAlign() align.Horizontal { return l.horizontalAlign }

// SetHorizontalAlign sets the alignment of each item within its page.
// [align.HJustify] stretches the item to the page width.
func (l *SlideShowLayout) SetHorizontalAlign(h align.Horizontal) {
	if l.horizontalAlign == h {
		return
	}
	l.horizontalAlign = h
	l.SendChange()
}

// VerticalAlign returns the vertical alignment of each item within its
// page.
func (l *SlideShowLayout) VerticalAlign() align.Vertical { return l.verticalAlign }

// SetVerticalAlign sets the vertical alignment of each item within its
// page. [align.VJustify] stretches the item to the page height.
func (l *SlideShowLayout) SetVerticalAlign(v align.Vertical) {
	if l.verticalAlign == v {
		return
	}
	l.verticalAlign = v
	l.SendChange()
}

// Layout implements [Layouter].
func (l *SlideShowLayout) Layout(items []Item, bounds *ViewportBounds, result *Result) *Result {
	if bounds == nil {
		bounds = NewViewportBounds()
	}
	if result == nil {
		result = &Result{}
	}
	boundsX, boundsY := bounds.X, bounds.Y

	availableW := bounds.ExplicitWidth
	availableH := bounds.ExplicitHeight
	if math32.IsNaN(availableW) || math32.IsNaN(availableH) {
		// pages adopt the largest item when no explicit size is given
		var maxW, maxH float32
		if l.useVirtualLayout {
			maxW, maxH = l.typicalSize()
		}
		for _, it := range items {
			if it == nil || !includeInLayout(it) {
				continue
			}
			validateItem(it)
			if w := it.Width(); w > maxW {
				maxW = w
			}
			if h := it.Height(); h > maxH {
				maxH = h
			}
		}
		if math32.IsNaN(availableW) {
			availableW = clamp(maxW+l.padding.Left+l.padding.Right, bounds.MinWidth, bounds.MaxWidth)
		}
		if math32.IsNaN(availableH) {
			availableH = clamp(maxH+l.padding.Top+l.padding.Bottom, bounds.MinHeight, bounds.MaxHeight)
		}
	}

	pageW := availableW - l.padding.Left - l.padding.Right
	pageH := availableH - l.padding.Top - l.padding.Bottom

	pageCount := 0
	page := 0
	for _, it := range items {
		if it == nil {
			if l.useVirtualLayout {
				page++
				pageCount++
			}
			continue
		}
		if !includeInLayout(it) {
			continue
		}
		validateItem(it)
		pageX := boundsX + float32(page)*availableW + l.padding.Left
		pageY := boundsY + l.padding.Top
		x, y := pageX, pageY
		switch l.horizontalAlign {
		case align.HJustify:
			it.SetWidth(pageW)
			validateItem(it)
		case align.HCenter:
			x += math32.Round((pageW - it.Width()) / 2)
		case align.Right:
			x += pageW - it.Width()
		}
		switch l.verticalAlign {
		case align.VJustify:
			it.SetHeight(pageH)
			validateItem(it)
		case align.Middle:
			y += math32.Round((pageH - it.Height()) / 2)
		case align.Bottom:
			y += pageH - it.Height()
		}
		setPosition(it, x, y)
		page++
		pageCount++
	}

	if LayoutTrace {
		fmt.Println("SlideShowLayout: pages:", pageCount, "pageW:", availableW)
	}

	result.ContentX = boundsX
	result.ContentY = boundsY
	result.ContentWidth = float32(pageCount) * availableW
	if pageCount == 0 {
		result.ContentWidth = availableW
	}
	result.ContentHeight = availableH
	result.ViewportWidth = availableW
	result.ViewportHeight = availableH
	return result
}

// MeasureViewport estimates the viewport size from the typical item.
// Requires UseVirtualLayout.
func (l *SlideShowLayout) MeasureViewport(itemCount int, bounds *ViewportBounds) (w, h float32) {
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
		h = clamp(typH+l.padding.Top+l.padding.Bottom, bounds.MinHeight, bounds.MaxHeight)
	}
	return w, h
}

// VisibleIndices returns the page under the scroll position plus one
// neighboring page on each side, so page transitions never show a
// blank page. Requires UseVirtualLayout.
func (l *SlideShowLayout) VisibleIndices(scrollX, scrollY, width, height float32, itemCount int, buf []int) []int {
	l.requireVirtual("VisibleIndices")
	buf = buf[:0]
	if itemCount == 0 || width <= 0 {
		return buf
	}
	page := int(math32.Round(scrollX / width))
	first := page - 1
	last := page + 1
	if first < 0 {
		first = 0
	}
	if last >= itemCount {
		last = itemCount - 1
	}
	for i := first; i <= last; i++ {
		buf = append(buf, i)
	}
	return buf
}

// ScrollPositionForIndex returns the scroll offset of the page holding
// the item at index.
func (l *SlideShowLayout) ScrollPositionForIndex(index int, width float32) (sx, sy float32) {
	return float32(index) * width, 0
}

// NearestScrollPositionForIndex is identical to ScrollPositionForIndex
// for a slide show: a page is either fully visible or not.
func (l *SlideShowLayout) NearestScrollPositionForIndex(index int, scrollX, scrollY, width float32) (sx, sy float32) {
	px := float32(index) * width
	if scrollX == px {
		return scrollX, scrollY
	}
	return px, scrollY
}

// NavigationDestination maps a navigation key to a target page index.
func (l *SlideShowLayout) NavigationDestination(itemCount, index int, key NavKey) int {
	if itemCount == 0 {
		return -1
	}
	target := index
	switch key {
	case NavHome:
		return 0
	case NavEnd:
		return itemCount - 1
	case NavLeft, NavUp, NavPageUp:
		target = index - 1
	case NavRight, NavDown, NavPageDown:
		target = index + 1
	}
	if target < 0 {
		target = 0
	}
	if target >= itemCount {
		target = itemCount - 1
	}
	return target
}
