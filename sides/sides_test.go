// Copyright (c) 2025, Mosaic Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sides

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSet(t *testing.T) {
	tests := []struct {
		vals []float32
		want Floats
	}{
		{nil, Floats{}},
		{[]float32{4}, Floats{Top: 4, Right: 4, Bottom: 4, Left: 4}},
		{[]float32{2, 8}, Floats{Top: 2, Right: 8, Bottom: 2, Left: 8}},
		{[]float32{1, 2, 3}, Floats{Top: 1, Right: 2, Bottom: 3, Left: 2}},
		{[]float32{1, 2, 3, 4}, Floats{Top: 1, Right: 2, Bottom: 3, Left: 4}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, New(tt.vals...))
	}
}

func TestSums(t *testing.T) {
	s := New[float32](1, 2, 3, 4)
	assert.Equal(t, float32(6), Horizontal(s)) // 2 + 4
	assert.Equal(t, float32(4), Vertical(s))   // 1 + 3
}

func TestZero(t *testing.T) {
	s := New[float32](5)
	s.Zero()
	assert.Equal(t, Floats{}, s)
}
