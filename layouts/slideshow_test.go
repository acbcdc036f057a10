// Copyright (c) 2025, Mosaic Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layouts

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mosaicui/mosaic/align"
)

func TestSlideShowOnePagePerItem(t *testing.T) {
	l := NewSlideShowLayout()
	items := []Item{NewBox(50, 50), NewBox(50, 50), NewBox(50, 50)}
	bounds := NewViewportBounds().SetExplicit(100, 100)
	res := l.Layout(items, bounds, nil)
	// items center on their own pages
	assert.Equal(t, float32(25), items[0].X())
	assert.Equal(t, float32(25), items[0].Y())
	assert.Equal(t, float32(125), items[1].X())
	assert.Equal(t, float32(225), items[2].X())
	assert.Equal(t, float32(300), res.ContentWidth)
	assert.Equal(t, float32(100), res.ContentHeight)
}

func TestSlideShowJustifyFillsPage(t *testing.T) {
	l := NewSlideShowLayout()
	l.SetHorizontalAlign(align.HJustify)
	l.SetVerticalAlign(align.VJustify)
	l.SetPadding(10)
	items := []Item{NewBox(50, 50)}
	bounds := NewViewportBounds().SetExplicit(100, 100)
	l.Layout(items, bounds, nil)
	assert.Equal(t, float32(80), items[0].Width())
	assert.Equal(t, float32(80), items[0].Height())
	assert.Equal(t, float32(10), items[0].X())
	assert.Equal(t, float32(10), items[0].Y())
}

func TestSlideShowVisibleIndices(t *testing.T) {
	l := NewSlideShowLayout()
	l.SetUseVirtualLayout(true)
	l.SetTypicalItem(NewBox(100, 100))
	got := l.VisibleIndices(0, 0, 100, 100, 5, nil)
	assert.Equal(t, []int{0, 1}, got)
	got = l.VisibleIndices(200, 0, 100, 100, 5, got)
	assert.Equal(t, []int{1, 2, 3}, got)
	got = l.VisibleIndices(400, 0, 100, 100, 5, got)
	assert.Equal(t, []int{3, 4}, got)
}

func TestSlideShowScrollPosition(t *testing.T) {
	l := NewSlideShowLayout()
	sx, sy := l.ScrollPositionForIndex(3, 100)
	assert.Equal(t, float32(300), sx)
	assert.Equal(t, float32(0), sy)

	sx, _ = l.NearestScrollPositionForIndex(3, 300, 0, 100)
	assert.Equal(t, float32(300), sx)
	sx, _ = l.NearestScrollPositionForIndex(2, 300, 0, 100)
	assert.Equal(t, float32(200), sx)
}

func TestSlideShowNavigation(t *testing.T) {
	l := NewSlideShowLayout()
	assert.Equal(t, 2, l.NavigationDestination(5, 1, NavRight))
	assert.Equal(t, 0, l.NavigationDestination(5, 1, NavLeft))
	assert.Equal(t, 0, l.NavigationDestination(5, 0, NavLeft))
	assert.Equal(t, 4, l.NavigationDestination(5, 4, NavPageDown))
	assert.Equal(t, 4, l.NavigationDestination(5, 0, NavEnd))
}
