// Copyright (c) 2025, Mosaic Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layouts

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"

	"github.com/mosaicui/mosaic/align"
)

func spinnerItems(n int) []Item {
	items := make([]Item, 0, n)
	for i := 0; i < n; i++ {
		items = append(items, NewBox(80, 20))
	}
	return items
}

func TestSpinnerRowsAndViewport(t *testing.T) {
	l := NewSpinnerLayout()
	l.SetRepeatEnabled(false)
	items := spinnerItems(5)
	res := l.Layout(items, nil, nil)
	// three visible rows of the 20-tall items
	assert.Equal(t, float32(60), res.ViewportHeight)
	assert.Equal(t, float32(100), res.ContentHeight)
	assert.Equal(t, float32(0), items[0].Y())
	assert.Equal(t, float32(20), items[1].Y())
	// the default justify alignment stretches rows to the full width
	assert.Equal(t, float32(80), items[0].Width())
}

func TestSpinnerRepeatReportsUnboundedContent(t *testing.T) {
	l := NewSpinnerLayout()
	items := spinnerItems(5)
	res := l.Layout(items, nil, nil)
	// 5 rows x 20 = 100 >= 60 + 2*20: wraparound activates
	assert.True(t, l.RepeatActive())
	assert.True(t, math32.IsInf(res.ContentHeight, 1))
	assert.True(t, math32.IsInf(res.ContentY, -1))
}

func TestSpinnerRepeatNeedsEnoughItems(t *testing.T) {
	l := NewSpinnerLayout()
	items := spinnerItems(3)
	res := l.Layout(items, nil, nil)
	// 3 rows x 20 = 60 < 60 + 40: too few distinct rows to wrap
	assert.False(t, l.RepeatActive())
	assert.Equal(t, float32(60), res.ContentHeight)
}

func TestSpinnerRepeatWrapsPositions(t *testing.T) {
	l := NewSpinnerLayout()
	items := spinnerItems(6)
	bounds := NewViewportBounds()
	bounds.SetScroll(0, 100)
	l.Layout(items, bounds, nil)
	assert.True(t, l.RepeatActive())
	// scrolled one full cycle short of row 5: row 0 reappears below it
	assert.Equal(t, float32(100), items[5].Y())
	assert.Equal(t, float32(120), items[0].Y())
}

func TestSpinnerCenterAlignment(t *testing.T) {
	l := NewSpinnerLayout()
	l.SetRepeatEnabled(false)
	l.SetHorizontalAlign(align.HCenter)
	items := []Item{NewBox(40, 20)}
	bounds := NewViewportBounds().SetExplicit(100, 60)
	l.Layout(items, bounds, nil)
	assert.Equal(t, float32(30), items[0].X())
	assert.Equal(t, float32(40), items[0].Width())
}

func TestSpinnerVisibleIndicesWrap(t *testing.T) {
	l := NewSpinnerLayout()
	l.SetUseVirtualLayout(true)
	l.SetTypicalItem(NewBox(80, 20))
	got := l.VisibleIndices(0, 90, 80, 60, 6, nil)
	// rows 4-7 wrap to 4, 5, 0, 1
	assert.Equal(t, []int{4, 5, 0, 1}, got)

	// negative scroll wraps backwards
	got = l.VisibleIndices(0, -30, 80, 60, 6, got)
	assert.Equal(t, []int{4, 5, 0, 1}, got)
}

func TestSpinnerNavigationWraps(t *testing.T) {
	l := NewSpinnerLayout()
	assert.Equal(t, 4, l.NavigationDestination(5, 0, NavUp, 60))
	assert.Equal(t, 0, l.NavigationDestination(5, 4, NavDown, 60))

	l.SetRepeatEnabled(false)
	assert.Equal(t, 0, l.NavigationDestination(5, 0, NavUp, 60))
	assert.Equal(t, 4, l.NavigationDestination(5, 4, NavDown, 60))
}

func TestSpinnerNearestScrollWithRepeat(t *testing.T) {
	l := NewSpinnerLayout()
	l.SetUseVirtualLayout(true)
	l.SetTypicalItem(NewBox(80, 20))
	// row 1 base position is 20; from scroll 110 the nearest copy is
	// one cycle up at 140 (total cycle = 6 * 20 = 120)
	_, sy := l.NearestScrollPositionForIndex(1, 0, 110, 6, 60)
	assert.Equal(t, float32(140), sy)
}

func TestSpinnerRowCountPanics(t *testing.T) {
	l := NewSpinnerLayout()
	assert.Panics(t, func() { l.SetRequestedRowCount(0) })
}
