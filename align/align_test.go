// Copyright (c) 2025, Mosaic Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package align

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHorizontalStrings(t *testing.T) {
	for _, h := range []Horizontal{Left, HCenter, Right, HJustify} {
		back, err := HorizontalFromString(h.String())
		assert.NoError(t, err)
		assert.Equal(t, h, back)
	}
	_, err := HorizontalFromString("sideways")
	assert.Error(t, err)
}

func TestVerticalStrings(t *testing.T) {
	for _, v := range []Vertical{Top, Middle, Bottom, VJustify} {
		back, err := VerticalFromString(v.String())
		assert.NoError(t, err)
		assert.Equal(t, v, back)
	}
	_, err := VerticalFromString("upside-down")
	assert.Error(t, err)
}
