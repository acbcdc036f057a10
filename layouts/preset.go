// Copyright (c) 2025, Mosaic Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layouts

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"

	"github.com/mosaicui/mosaic/align"
)

// Preset is the TOML-loadable description of a layout configuration.
// Only Kind is required; every other field applies when set and only
// to kinds that support it.
type Preset struct {
	Kind string `toml:"kind"`

	Gap           *float32 `toml:"gap"`
	FirstGap      *float32 `toml:"first-gap"`
	LastGap       *float32 `toml:"last-gap"`
	HorizontalGap *float32 `toml:"horizontal-gap"`
	VerticalGap   *float32 `toml:"vertical-gap"`

	Padding       []float32 `toml:"padding"`
	PaddingTop    *float32  `toml:"padding-top"`
	PaddingRight  *float32  `toml:"padding-right"`
	PaddingBottom *float32  `toml:"padding-bottom"`
	PaddingLeft   *float32  `toml:"padding-left"`

	HorizontalAlign     string `toml:"horizontal-align"`
	VerticalAlign       string `toml:"vertical-align"`
	RowVerticalAlign    string `toml:"row-vertical-align"`
	TileHorizontalAlign string `toml:"tile-horizontal-align"`
	TileVerticalAlign   string `toml:"tile-vertical-align"`

	Paging string `toml:"paging"`

	RequestedRowCount    *int `toml:"requested-row-count"`
	RequestedColumnCount *int `toml:"requested-column-count"`

	UseSquareTiles    *bool `toml:"use-square-tiles"`
	DistributeWidths  *bool `toml:"distribute-widths"`
	DistributeHeights *bool `toml:"distribute-heights"`

	UseVirtualLayout          *bool `toml:"use-virtual-layout"`
	HasVariableItemDimensions *bool `toml:"has-variable-item-dimensions"`

	StickyHeader  *bool `toml:"sticky-header"`
	RepeatEnabled *bool `toml:"repeat-enabled"`
}

// Layout kinds accepted by [OpenPreset].
const (
	KindVertical     = "vertical"
	KindHorizontal   = "horizontal"
	KindFlow         = "flow"
	KindTiledRows    = "tiled-rows"
	KindTiledColumns = "tiled-columns"
	KindWaterfall    = "waterfall"
	KindSlideShow    = "slide-show"
	KindSpinner      = "spinner"
)

// OpenPreset decodes a TOML preset and returns the configured layout.
// Unlike the setters, which panic on programmer misuse, preset input
// is external data: all problems come back as errors.
func OpenPreset(data []byte) (Layouter, error) {
	var p Preset
	if err := toml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("layouts: decoding preset: %w", err)
	}
	return p.Build()
}

// Build constructs and configures the layout the preset describes.
func (p *Preset) Build() (Layouter, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	switch p.Kind {
	case KindVertical:
		return p.buildVertical()
	case KindHorizontal:
		return p.buildHorizontal()
	case KindFlow:
		return p.buildFlow()
	case KindTiledRows:
		return p.buildTiledRows()
	case KindTiledColumns:
		return p.buildTiledColumns()
	case KindWaterfall:
		return p.buildWaterfall()
	case KindSlideShow:
		return p.buildSlideShow()
	case KindSpinner:
		return p.buildSpinner()
	}
	return nil, fmt.Errorf("layouts: unknown preset kind %q", p.Kind)
}

func (p *Preset) validate() error {
	if p.Kind == "" {
		return fmt.Errorf("layouts: preset is missing kind")
	}
	if len(p.Padding) > 4 {
		return fmt.Errorf("layouts: preset padding takes at most 4 values, got %d", len(p.Padding))
	}
	if p.RequestedRowCount != nil && *p.RequestedRowCount < 0 {
		return fmt.Errorf("layouts: preset requested-row-count must be non-negative, got %d", *p.RequestedRowCount)
	}
	if p.RequestedColumnCount != nil && *p.RequestedColumnCount < 0 {
		return fmt.Errorf("layouts: preset requested-column-count must be non-negative, got %d", *p.RequestedColumnCount)
	}
	if p.Kind == KindSpinner && p.RequestedRowCount != nil && *p.RequestedRowCount < 1 {
		return fmt.Errorf("layouts: spinner preset requested-row-count must be at least 1, got %d", *p.RequestedRowCount)
	}
	return nil
}

func (p *Preset) horizontalAlign() (align.Horizontal, bool, error) {
	if p.HorizontalAlign == "" {
		return 0, false, nil
	}
	h, err := align.HorizontalFromString(p.HorizontalAlign)
	if err != nil {
		return 0, false, fmt.Errorf("layouts: preset horizontal-align: %w", err)
	}
	return h, true, nil
}

func (p *Preset) verticalAlign() (align.Vertical, bool, error) {
	if p.VerticalAlign == "" {
		return 0, false, nil
	}
	v, err := align.VerticalFromString(p.VerticalAlign)
	if err != nil {
		return 0, false, fmt.Errorf("layouts: preset vertical-align: %w", err)
	}
	return v, true, nil
}

func (p *Preset) paging() (Direction, error) {
	switch p.Paging {
	case "":
		return DirectionNone, nil
	case "none":
		return DirectionNone, nil
	case "horizontal":
		return DirectionHorizontal, nil
	case "vertical":
		return DirectionVertical, nil
	}
	return DirectionNone, fmt.Errorf("layouts: preset paging must be none, horizontal, or vertical, got %q", p.Paging)
}

// applyBase configures the fields every layout shares.
func (p *Preset) applyBase(lb *LayoutBase) {
	if len(p.Padding) > 0 {
		lb.SetPadding(p.Padding...)
	}
	if p.PaddingTop != nil {
		lb.SetPaddingTop(*p.PaddingTop)
	}
	if p.PaddingRight != nil {
		lb.SetPaddingRight(*p.PaddingRight)
	}
	if p.PaddingBottom != nil {
		lb.SetPaddingBottom(*p.PaddingBottom)
	}
	if p.PaddingLeft != nil {
		lb.SetPaddingLeft(*p.PaddingLeft)
	}
	if p.UseVirtualLayout != nil {
		lb.SetUseVirtualLayout(*p.UseVirtualLayout)
	}
}

func (p *Preset) buildVertical() (Layouter, error) {
	l := NewVerticalLayout()
	p.applyBase(&l.LayoutBase)
	if p.Gap != nil {
		l.SetGap(*p.Gap)
	}
	if p.FirstGap != nil {
		l.SetFirstGap(*p.FirstGap)
	}
	if p.LastGap != nil {
		l.SetLastGap(*p.LastGap)
	}
	if h, ok, err := p.horizontalAlign(); err != nil {
		return nil, err
	} else if ok {
		l.SetHorizontalAlign(h)
	}
	if v, ok, err := p.verticalAlign(); err != nil {
		return nil, err
	} else if ok {
		l.SetVerticalAlign(v)
	}
	if p.DistributeHeights != nil {
		l.SetDistributeHeights(*p.DistributeHeights)
	}
	if p.RequestedRowCount != nil {
		l.SetRequestedRowCount(*p.RequestedRowCount)
	}
	if p.HasVariableItemDimensions != nil {
		l.SetHasVariableItemDimensions(*p.HasVariableItemDimensions)
	}
	if p.StickyHeader != nil {
		l.SetStickyHeader(*p.StickyHeader)
	}
	return l, nil
}

func (p *Preset) buildHorizontal() (Layouter, error) {
	l := NewHorizontalLayout()
	p.applyBase(&l.LayoutBase)
	if p.Gap != nil {
		l.SetGap(*p.Gap)
	}
	if p.FirstGap != nil {
		l.SetFirstGap(*p.FirstGap)
	}
	if p.LastGap != nil {
		l.SetLastGap(*p.LastGap)
	}
	if h, ok, err := p.horizontalAlign(); err != nil {
		return nil, err
	} else if ok {
		l.SetHorizontalAlign(h)
	}
	if v, ok, err := p.verticalAlign(); err != nil {
		return nil, err
	} else if ok {
		l.SetVerticalAlign(v)
	}
	if p.DistributeWidths != nil {
		l.SetDistributeWidths(*p.DistributeWidths)
	}
	if p.RequestedColumnCount != nil {
		l.SetRequestedColumnCount(*p.RequestedColumnCount)
	}
	if p.HasVariableItemDimensions != nil {
		l.SetHasVariableItemDimensions(*p.HasVariableItemDimensions)
	}
	return l, nil
}

func (p *Preset) buildFlow() (Layouter, error) {
	l := NewFlowLayout()
	p.applyBase(&l.LayoutBase)
	if p.Gap != nil {
		l.SetGap(*p.Gap)
	}
	if p.HorizontalGap != nil {
		l.SetHorizontalGap(*p.HorizontalGap)
	}
	if p.VerticalGap != nil {
		l.SetVerticalGap(*p.VerticalGap)
	}
	if h, ok, err := p.horizontalAlign(); err != nil {
		return nil, err
	} else if ok {
		l.SetHorizontalAlign(h)
	}
	if v, ok, err := p.verticalAlign(); err != nil {
		return nil, err
	} else if ok {
		l.SetVerticalAlign(v)
	}
	if p.RowVerticalAlign != "" {
		v, err := align.VerticalFromString(p.RowVerticalAlign)
		if err != nil {
			return nil, fmt.Errorf("layouts: preset row-vertical-align: %w", err)
		}
		l.SetRowVerticalAlign(v)
	}
	return l, nil
}

func (p *Preset) applyTileAligns(setH func(align.Horizontal), setV func(align.Vertical)) error {
	if p.TileHorizontalAlign != "" {
		h, err := align.HorizontalFromString(p.TileHorizontalAlign)
		if err != nil {
			return fmt.Errorf("layouts: preset tile-horizontal-align: %w", err)
		}
		setH(h)
	}
	if p.TileVerticalAlign != "" {
		v, err := align.VerticalFromString(p.TileVerticalAlign)
		if err != nil {
			return fmt.Errorf("layouts: preset tile-vertical-align: %w", err)
		}
		setV(v)
	}
	return nil
}

func (p *Preset) buildTiledRows() (Layouter, error) {
	l := NewTiledRowsLayout()
	p.applyBase(&l.LayoutBase)
	if p.Gap != nil {
		l.SetGap(*p.Gap)
	}
	if p.HorizontalGap != nil {
		l.SetHorizontalGap(*p.HorizontalGap)
	}
	if p.VerticalGap != nil {
		l.SetVerticalGap(*p.VerticalGap)
	}
	if h, ok, err := p.horizontalAlign(); err != nil {
		return nil, err
	} else if ok {
		l.SetHorizontalAlign(h)
	}
	if v, ok, err := p.verticalAlign(); err != nil {
		return nil, err
	} else if ok {
		l.SetVerticalAlign(v)
	}
	if err := p.applyTileAligns(l.SetTileHorizontalAlign, l.SetTileVerticalAlign); err != nil {
		return nil, err
	}
	d, err := p.paging()
	if err != nil {
		return nil, err
	}
	l.SetPaging(d)
	if p.RequestedColumnCount != nil {
		l.SetRequestedColumnCount(*p.RequestedColumnCount)
	}
	if p.UseSquareTiles != nil {
		l.SetUseSquareTiles(*p.UseSquareTiles)
	}
	if p.DistributeWidths != nil {
		l.SetDistributeWidths(*p.DistributeWidths)
	}
	if p.DistributeHeights != nil {
		l.SetDistributeHeights(*p.DistributeHeights)
	}
	return l, nil
}

func (p *Preset) buildTiledColumns() (Layouter, error) {
	l := NewTiledColumnsLayout()
	p.applyBase(&l.LayoutBase)
	if p.Gap != nil {
		l.SetGap(*p.Gap)
	}
	if p.HorizontalGap != nil {
		l.SetHorizontalGap(*p.HorizontalGap)
	}
	if p.VerticalGap != nil {
		l.SetVerticalGap(*p.VerticalGap)
	}
	if h, ok, err := p.horizontalAlign(); err != nil {
		return nil, err
	} else if ok {
		l.SetHorizontalAlign(h)
	}
	if v, ok, err := p.verticalAlign(); err != nil {
		return nil, err
	} else if ok {
		l.SetVerticalAlign(v)
	}
	if err := p.applyTileAligns(l.SetTileHorizontalAlign, l.SetTileVerticalAlign); err != nil {
		return nil, err
	}
	d, err := p.paging()
	if err != nil {
		return nil, err
	}
	l.SetPaging(d)
	if p.RequestedRowCount != nil {
		l.SetRequestedRowCount(*p.RequestedRowCount)
	}
	if p.UseSquareTiles != nil {
		l.SetUseSquareTiles(*p.UseSquareTiles)
	}
	if p.DistributeWidths != nil {
		l.SetDistributeWidths(*p.DistributeWidths)
	}
	if p.DistributeHeights != nil {
		l.SetDistributeHeights(*p.DistributeHeights)
	}
	return l, nil
}

func (p *Preset) buildWaterfall() (Layouter, error) {
	l := NewWaterfallLayout()
	p.applyBase(&l.LayoutBase)
	if p.Gap != nil {
		l.SetGap(*p.Gap)
	}
	if p.HorizontalGap != nil {
		l.SetHorizontalGap(*p.HorizontalGap)
	}
	if p.VerticalGap != nil {
		l.SetVerticalGap(*p.VerticalGap)
	}
	if p.RequestedColumnCount != nil {
		l.SetRequestedColumnCount(*p.RequestedColumnCount)
	}
	if p.HasVariableItemDimensions != nil {
		l.SetHasVariableItemDimensions(*p.HasVariableItemDimensions)
	}
	return l, nil
}

func (p *Preset) buildSlideShow() (Layouter, error) {
	l := NewSlideShowLayout()
	p.applyBase(&l.LayoutBase)
	if h, ok, err := p.horizontalAlign(); err != nil {
		return nil, err
	} else if ok {
		l.SetHorizontalAlign(h)
	}
	if v, ok, err := p.verticalAlign(); err != nil {
		return nil, err
	} else if ok {
		l.SetVerticalAlign(v)
	}
	return l, nil
}

func (p *Preset) buildSpinner() (Layouter, error) {
	l := NewSpinnerLayout()
	p.applyBase(&l.LayoutBase)
	if p.Gap != nil {
		l.SetGap(*p.Gap)
	}
	if h, ok, err := p.horizontalAlign(); err != nil {
		return nil, err
	} else if ok {
		l.SetHorizontalAlign(h)
	}
	if p.RequestedRowCount != nil {
		l.SetRequestedRowCount(*p.RequestedRowCount)
	}
	if p.RepeatEnabled != nil {
		l.SetRepeatEnabled(*p.RepeatEnabled)
	}
	return l, nil
}
