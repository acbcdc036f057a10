// Copyright (c) 2025, Mosaic Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layouts

import (
	"log/slog"
	"slices"

	"github.com/chewxy/math32"
)

// VariableDimensions caches the last measured primary-axis size of each
// item index, used by virtualized layouts whose items vary in size.
// Unknown entries hold NaN. The cache is mutated by Layout whenever a
// live item's measured size disagrees with the cached value; it is
// resized only through the explicit Insert/Remove/Reset operations,
// which the container must call when its data changes shape, since the
// layout has no visibility into collection mutations.
type VariableDimensions struct {
	sizes []float32
}

// Len returns the number of cached slots.
func (c *VariableDimensions) Len() int {
	return len(c.sizes)
}

// At returns the cached size at index, or NaN if none is known.
func (c *VariableDimensions) At(index int) float32 {
	if index < 0 || index >= len(c.sizes) {
		return math32.NaN()
	}
	return c.sizes[index]
}

// Set records a measured size at index, growing the cache as needed.
func (c *VariableDimensions) Set(index int, size float32) {
	if index < 0 {
		slog.Error("programmer error: VariableDimensions.Set: negative index", "index", index)
		return
	}
	for len(c.sizes) <= index {
		c.sizes = append(c.sizes, math32.NaN())
	}
	c.sizes[index] = size
}

// Insert opens an unknown slot at index, shifting later entries up.
func (c *VariableDimensions) Insert(index int) {
	if index < 0 || index > len(c.sizes) {
		slog.Error("programmer error: VariableDimensions.Insert: index out of range", "index", index, "len", len(c.sizes))
		return
	}
	c.sizes = slices.Insert(c.sizes, index, math32.NaN())
}

// Remove deletes the slot at index, shifting later entries down.
func (c *VariableDimensions) Remove(index int) {
	if index < 0 || index >= len(c.sizes) {
		slog.Error("programmer error: VariableDimensions.Remove: index out of range", "index", index, "len", len(c.sizes))
		return
	}
	c.sizes = slices.Delete(c.sizes, index, index+1)
}

// ResetAt forgets the cached size at index, keeping the slot.
func (c *VariableDimensions) ResetAt(index int) {
	if index < 0 || index >= len(c.sizes) {
		return
	}
	c.sizes[index] = math32.NaN()
}

// Reset forgets all cached sizes.
func (c *VariableDimensions) Reset() {
	c.sizes = c.sizes[:0]
}
