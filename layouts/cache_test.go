// Copyright (c) 2025, Mosaic Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layouts

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
)

func TestVariableDimensionsSetGrows(t *testing.T) {
	var c VariableDimensions
	assert.True(t, math32.IsNaN(c.At(0)))
	c.Set(3, 42)
	assert.Equal(t, 4, c.Len())
	assert.Equal(t, float32(42), c.At(3))
	// intermediate slots are unknown
	assert.True(t, math32.IsNaN(c.At(1)))
}

func TestVariableDimensionsInsertRemove(t *testing.T) {
	var c VariableDimensions
	c.Set(0, 10)
	c.Set(1, 20)
	c.Insert(1)
	assert.Equal(t, 3, c.Len())
	assert.Equal(t, float32(10), c.At(0))
	assert.True(t, math32.IsNaN(c.At(1)))
	assert.Equal(t, float32(20), c.At(2))

	c.Remove(1)
	assert.Equal(t, 2, c.Len())
	assert.Equal(t, float32(20), c.At(1))
}

func TestVariableDimensionsReset(t *testing.T) {
	var c VariableDimensions
	c.Set(0, 10)
	c.Set(1, 20)
	c.ResetAt(0)
	assert.True(t, math32.IsNaN(c.At(0)))
	assert.Equal(t, float32(20), c.At(1))
	c.Reset()
	assert.Equal(t, 0, c.Len())
}

func TestVariableDimensionsBadIndexIsNoop(t *testing.T) {
	var c VariableDimensions
	c.Set(-1, 10)
	assert.Equal(t, 0, c.Len())
	c.Insert(5)
	assert.Equal(t, 0, c.Len())
	c.Remove(0)
	assert.Equal(t, 0, c.Len())
}

func TestLayoutCacheOperationsNotify(t *testing.T) {
	l := NewVerticalLayout()
	changes := 0
	l.OnChange(func() { changes++ })
	l.InsertCacheAt(0)
	l.ResetCacheAt(0)
	l.RemoveCacheAt(0)
	l.ResetCache()
	assert.Equal(t, 4, changes)
}
