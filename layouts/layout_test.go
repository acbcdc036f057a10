// Copyright (c) 2025, Mosaic Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layouts

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
)

func nanf() float32 { return math32.NaN() }

func TestPercentData(t *testing.T) {
	d := NewPercentData(40, 60)
	w, h := d.Percent()
	assert.Equal(t, float32(40), w)
	assert.Equal(t, float32(60), h)

	// querying the wrong variant yields unset, not an error
	var none *Data
	w, h = none.Percent()
	assert.True(t, math32.IsNaN(w))
	assert.True(t, math32.IsNaN(h))

	plain := &Data{Kind: DataNone}
	w, h = plain.Percent()
	assert.True(t, math32.IsNaN(w))
	assert.True(t, math32.IsNaN(h))
}

func TestBoxCapabilities(t *testing.T) {
	b := NewBox(10, 20)
	// Box provides every optional capability
	_, ok := any(b).(Includer)
	assert.True(t, ok)
	_, ok = any(b).(Validator)
	assert.True(t, ok)
	_, ok = any(b).(DataHolder)
	assert.True(t, ok)
	_, ok = any(b).(Sizer)
	assert.True(t, ok)
}

func TestBoxMeasureHook(t *testing.T) {
	b := NewBox(100, 20)
	// models text that grows taller as it narrows
	b.Measure = func(b *Box) {
		b.SetHeight(2000 / b.Width())
	}
	b.SetWidth(50)
	b.ValidateNow()
	assert.Equal(t, float32(40), b.Height())
}

func TestPivotOffsetsPosition(t *testing.T) {
	l := NewVerticalLayout()
	b := NewBox(50, 20).SetPivot(5, 10)
	l.Layout([]Item{b}, nil, nil)
	assert.Equal(t, float32(5), b.X())
	assert.Equal(t, float32(10), b.Y())
}

func TestTypicalSizeWithoutItem(t *testing.T) {
	l := NewVerticalLayout()
	l.SetUseVirtualLayout(true)
	w, h := l.MeasureViewport(5, nil)
	assert.Equal(t, float32(0), w)
	assert.Equal(t, float32(0), h)
}

func TestEventBaseDispatch(t *testing.T) {
	var eb EventBase
	a, b := 0, 0
	eb.OnChange(func() { a++ })
	eb.OnChange(func() { b++ })
	eb.SendChange()
	eb.SendChange()
	assert.Equal(t, 2, a)
	assert.Equal(t, 2, b)
}

func TestDirectionString(t *testing.T) {
	assert.Equal(t, "none", DirectionNone.String())
	assert.Equal(t, "horizontal", DirectionHorizontal.String())
	assert.Equal(t, "vertical", DirectionVertical.String())
}

func TestClamp(t *testing.T) {
	assert.Equal(t, float32(5), clamp(5, 0, 10))
	assert.Equal(t, float32(0), clamp(-5, 0, 10))
	assert.Equal(t, float32(10), clamp(50, 0, 10))
	// unset bounds leave the value untouched
	assert.Equal(t, float32(50), clamp(50, math32.NaN(), math32.NaN()))
}
