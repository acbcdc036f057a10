// Copyright (c) 2025, Mosaic Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layouts

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mosaicui/mosaic/align"
)

func tiles(n int, w, h float32) []Item {
	items := make([]Item, 0, n)
	for i := 0; i < n; i++ {
		items = append(items, NewBox(w, h))
	}
	return items
}

func TestTiledRowsGrid(t *testing.T) {
	l := NewTiledRowsLayout()
	items := tiles(3, 50, 50)
	bounds := NewViewportBounds().SetExplicit(120, nanf())
	l.Layout(items, bounds, nil)
	// floor(120/50) = 2 columns; item 2 starts a new row
	assert.Equal(t, float32(0), items[0].X())
	assert.Equal(t, float32(50), items[1].X())
	assert.Equal(t, float32(0), items[2].X())
	assert.Equal(t, float32(50), items[2].Y())
}

func TestTiledRowsSquareTiles(t *testing.T) {
	l := NewTiledRowsLayout()
	l.SetUseSquareTiles(true)
	items := []Item{NewBox(30, 50), NewBox(50, 20)}
	bounds := NewViewportBounds().SetExplicit(200, nanf())
	l.Layout(items, bounds, nil)
	// tile is 50x50: max measured width and height
	assert.Equal(t, float32(50), items[1].X())
}

func TestTiledRowsTileAlignment(t *testing.T) {
	l := NewTiledRowsLayout()
	l.SetTileVerticalAlign(align.Middle)
	l.SetTileHorizontalAlign(align.HCenter)
	items := []Item{NewBox(50, 50), NewBox(30, 20)}
	bounds := NewViewportBounds().SetExplicit(200, nanf())
	l.Layout(items, bounds, nil)
	// the small item centers within its 50x50 tile
	assert.Equal(t, float32(60), items[1].X())
	assert.Equal(t, float32(15), items[1].Y())
}

func TestTiledRowsTileJustify(t *testing.T) {
	l := NewTiledRowsLayout()
	l.SetTileHorizontalAlign(align.HJustify)
	l.SetTileVerticalAlign(align.VJustify)
	items := []Item{NewBox(50, 50), NewBox(30, 20)}
	bounds := NewViewportBounds().SetExplicit(200, nanf())
	l.Layout(items, bounds, nil)
	assert.Equal(t, float32(50), items[1].Width())
	assert.Equal(t, float32(50), items[1].Height())
}

func TestTiledRowsDistributeWidths(t *testing.T) {
	l := NewTiledRowsLayout()
	l.SetDistributeWidths(true)
	items := tiles(4, 50, 50)
	bounds := NewViewportBounds().SetExplicit(120, nanf())
	l.Layout(items, bounds, nil)
	// 2 columns stretched to 60 wide each
	assert.Equal(t, float32(60), items[1].X())
	assert.Equal(t, float32(0), items[2].X())
}

func TestTiledRowsHorizontalPaging(t *testing.T) {
	l := NewTiledRowsLayout()
	l.SetPaging(DirectionHorizontal)
	items := tiles(6, 50, 50)
	bounds := NewViewportBounds().SetExplicit(100, 100)
	res := l.Layout(items, bounds, nil)
	// 2x2 tiles per page: item 4 starts page 1
	assert.Equal(t, float32(100), items[4].X())
	assert.Equal(t, float32(0), items[4].Y())
	assert.Equal(t, float32(200), res.ContentWidth)
	assert.Equal(t, float32(100), res.ContentHeight)
}

func TestTiledRowsVerticalPaging(t *testing.T) {
	l := NewTiledRowsLayout()
	l.SetPaging(DirectionVertical)
	items := tiles(6, 50, 50)
	bounds := NewViewportBounds().SetExplicit(100, 100)
	res := l.Layout(items, bounds, nil)
	assert.Equal(t, float32(0), items[4].X())
	assert.Equal(t, float32(100), items[4].Y())
	assert.Equal(t, float32(200), res.ContentHeight)
}

func TestTiledRowsExcludedConsumesNoSlot(t *testing.T) {
	l := NewTiledRowsLayout()
	skipped := NewBox(50, 50).SetIncludeInLayout(false)
	items := []Item{NewBox(50, 50), skipped, NewBox(50, 50)}
	bounds := NewViewportBounds().SetExplicit(120, nanf())
	l.Layout(items, bounds, nil)
	// item 2 takes the grid slot the excluded item would have used
	assert.Equal(t, float32(50), items[2].X())
	assert.Equal(t, float32(0), items[2].Y())
}

func TestTiledRowsVisibleIndices(t *testing.T) {
	l := NewTiledRowsLayout()
	l.SetUseVirtualLayout(true)
	l.SetTypicalItem(NewBox(50, 50))
	got := l.VisibleIndices(0, 0, 120, 100, 10, nil)
	// 2 columns, rows 0-2 (two visible plus one pad)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, got)

	l.SetPaging(DirectionHorizontal)
	got = l.VisibleIndices(100, 0, 100, 100, 10, got)
	// page 1 holds slots 4-7
	assert.Equal(t, []int{4, 5, 6, 7}, got)
}

func TestTiledRowsNavigation(t *testing.T) {
	l := NewTiledRowsLayout()
	l.SetTypicalItem(NewBox(50, 50))
	items := tiles(10, 50, 50)
	// 2 columns in a 120-wide viewport
	assert.Equal(t, 3, l.NavigationDestination(items, 1, NavDown, 120, 100))
	assert.Equal(t, 1, l.NavigationDestination(items, 3, NavUp, 120, 100))
	assert.Equal(t, 2, l.NavigationDestination(items, 1, NavRight, 120, 100))
	assert.Equal(t, 0, l.NavigationDestination(items, 0, NavUp, 120, 100))
	assert.Equal(t, 9, l.NavigationDestination(items, 4, NavEnd, 120, 100))
}

func TestTiledRowsDropIndex(t *testing.T) {
	l := NewTiledRowsLayout()
	items := tiles(4, 50, 50)
	bounds := NewViewportBounds().SetExplicit(120, nanf())
	l.Layout(items, bounds, nil)
	// pointer on the left half of tile 1
	assert.Equal(t, 1, l.DropIndex(60, 25, items, 0, 0, 120, 200))
	// pointer past the right edge of row 0 targets end of that row
	assert.Equal(t, 2, l.DropIndex(118, 25, items, 0, 0, 120, 200))
	// second row
	assert.Equal(t, 2, l.DropIndex(10, 75, items, 0, 0, 120, 200))
}
