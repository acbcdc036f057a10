// Copyright (c) 2025, Mosaic Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package layouts implements a family of measurement and positioning
// algorithms for retained-mode user interfaces: linear stacking, greedy
// row wrapping, fixed-size tile grids (with optional paging), masonry
// columns, and one-item-per-page slide shows and spinners.
//
// A layout never creates or destroys items. Given an ordered sequence of
// [Item] values and a [ViewportBounds], Layout writes positions (and,
// for justify modes, sizes) onto the items and fills a [Result] with the
// aggregate content and viewport dimensions.
//
// Layouts are synchronous and single threaded: Layout mutates shared
// scratch buffers on the receiver and must not be called concurrently on
// the same instance. Positions written during one Layout call are
// visible to the caller immediately upon return.
//
// When virtualization is enabled, off-screen items appear as nil
// placeholders in the item sequence, and their sizes are estimated from
// the typical item and, for variable-size layouts, a per-index cache of
// previously observed sizes (see [VariableDimensions]).
package layouts

import (
	"github.com/chewxy/math32"

	"github.com/mosaicui/mosaic/sides"
)

// LayoutTrace reports details of layout passes to stdout for debugging.
var LayoutTrace = false

// Item is a positionable, measurable unit passed into a layout.
// Beyond geometry, items may optionally implement [Includer],
// [DataHolder], [Validator], and [Sizer]; layouts probe for these
// capabilities and fall back gracefully when they are absent.
type Item interface {

	// X and Y return the current position, including any pivot offset.
	X() float32
	Y() float32

	// SetX and SetY set the position, including any pivot offset.
	SetX(x float32)
	SetY(y float32)

	// Width and Height return the current measured size.
	Width() float32
	Height() float32

	// SetWidth and SetHeight set the size. Setting one dimension may
	// change the other (e.g., word-wrapped text), which is why justify
	// sizing must happen before final measurement.
	SetWidth(w float32)
	SetHeight(h float32)

	// PivotX and PivotY return the pivot offset applied when positioning.
	PivotX() float32
	PivotY() float32
}

// Includer is an optional [Item] capability: items reporting false are
// fully skipped by layouts (not measured, not positioned, not counted
// toward content size).
type Includer interface {
	IncludeInLayout() bool
}

// Validator is an optional [Item] capability: ValidateNow forces an
// immediate re-measurement, used after a layout changes one dimension
// of an item so the other dimension is current before it is read.
type Validator interface {
	ValidateNow()
}

// DataHolder is an optional [Item] capability carrying per-item layout
// hints; see [Data].
type DataHolder interface {
	LayoutData() *Data
}

// Sizer is an optional [Item] capability exposing the item's own size
// constraints, consulted by percent sizing. NaN values mean
// unconstrained.
type Sizer interface {
	MinWidth() float32
	MinHeight() float32
	MaxWidth() float32
	MaxHeight() float32
}

// DataKind is the variant tag of [Data].
type DataKind int32

const (
	// DataNone carries no hints.
	DataNone DataKind = iota

	// DataPercent carries percentage-of-available-space sizes.
	DataPercent

	// DataAnchor carries edge anchor offsets.
	DataAnchor
)

// Data is the tagged union of per-item layout hints. Reading a field
// of the wrong variant yields "no data" (NaN), never an error.
type Data struct {

	// Kind selects which fields are meaningful.
	Kind DataKind

	// PercentWidth and PercentHeight are sizes expressed as a
	// percentage (0-100) of the available space. NaN = unset.
	PercentWidth  float32
	PercentHeight float32

	// AnchorTop, AnchorRight, AnchorBottom, and AnchorLeft are offsets
	// from the corresponding container edges. NaN = unset.
	AnchorTop    float32
	AnchorRight  float32
	AnchorBottom float32
	AnchorLeft   float32
}

// NewPercentData returns percent-variant layout data with the given
// percentage sizes; pass NaN to leave a dimension unset.
func NewPercentData(pctWidth, pctHeight float32) *Data {
	return &Data{
		Kind:          DataPercent,
		PercentWidth:  pctWidth,
		PercentHeight: pctHeight,
		AnchorTop:     math32.NaN(),
		AnchorRight:   math32.NaN(),
		AnchorBottom:  math32.NaN(),
		AnchorLeft:    math32.NaN(),
	}
}

// Percent returns the percent sizes if this is percent-variant data,
// else NaN, NaN.
func (d *Data) Percent() (pctWidth, pctHeight float32) {
	if d == nil || d.Kind != DataPercent {
		return math32.NaN(), math32.NaN()
	}
	return d.PercentWidth, d.PercentHeight
}

// Capabilities reports which optional operation families a layout
// supports. Calling an operation outside the advertised set is
// programmer error.
type Capabilities struct {

	// Virtualization: the layout supports nil placeholder items and the
	// MeasureViewport / VisibleIndices / scroll position queries.
	Virtualization bool

	// VariableItemSizes: virtualized items may differ in size, backed
	// by a [VariableDimensions] cache.
	VariableItemSizes bool

	// Trimming: the layout honors before/after virtualized item counts,
	// letting callers pass only the visible window of items.
	Trimming bool

	// DragDrop: the layout supports DropIndex and DropIndicatorRect.
	DragDrop bool
}

// Layouter is the contract between a container and a layout.
type Layouter interface {

	// Layout positions the given items within the given bounds and
	// fills result (allocating one if nil) with the content and
	// viewport dimensions. It is not reentrant for a given instance.
	Layout(items []Item, bounds *ViewportBounds, result *Result) *Result

	// Caps reports which optional operations this layout supports.
	Caps() Capabilities

	// OnChange registers a listener invoked synchronously whenever a
	// configuration field changes or a cached size estimate is
	// corrected during Layout.
	OnChange(fn func())
}

// Direction selects the axis along which tiled content is split into
// discrete pages, or none for continuous scrolling.
type Direction int32

const (
	// DirectionNone disables paging; content scrolls continuously.
	DirectionNone Direction = iota

	// DirectionHorizontal splits content into pages along the x axis.
	DirectionHorizontal

	// DirectionVertical splits content into pages along the y axis.
	DirectionVertical
)

func (d Direction) String() string {
	switch d {
	case DirectionNone:
		return "none"
	case DirectionHorizontal:
		return "horizontal"
	case DirectionVertical:
		return "vertical"
	}
	return "invalid"
}

// NavKey identifies a navigation request for NavigationDestination.
type NavKey int32

const (
	NavUp NavKey = iota
	NavDown
	NavLeft
	NavRight
	NavPageUp
	NavPageDown
	NavHome
	NavEnd
)

// EventBase provides change-notification plumbing, embedded by every
// layout. Dispatch is synchronous and carries no payload.
type EventBase struct {
	listeners []func()
}

// OnChange registers a change listener.
func (eb *EventBase) OnChange(fn func()) {
	eb.listeners = append(eb.listeners, fn)
}

// SendChange invokes all registered change listeners.
func (eb *EventBase) SendChange() {
	for _, fn := range eb.listeners {
		fn()
	}
}

// LayoutBase has the configuration shared by all layout types.
type LayoutBase struct {
	EventBase

	padding          sides.Floats
	useVirtualLayout bool
	typicalItem      Item
}

// Padding returns the four padding values.
func (lb *LayoutBase) Padding() sides.Floats {
	return lb.padding
}

// SetPadding sets the padding from 0 to 4 values, following the
// [sides.Sides.Set] convention.
func (lb *LayoutBase) SetPadding(vals ...float32) {
	p := sides.New(vals...)
	if p == lb.padding {
		return
	}
	lb.padding = p
	lb.SendChange()
}

// SetPaddingTop sets the top padding.
func (lb *LayoutBase) SetPaddingTop(v float32) {
	if lb.padding.Top == v {
		return
	}
	lb.padding.Top = v
	lb.SendChange()
}

// SetPaddingRight sets the right padding.
func (lb *LayoutBase) SetPaddingRight(v float32) {
	if lb.padding.Right == v {
		return
	}
	lb.padding.Right = v
	lb.SendChange()
}

// SetPaddingBottom sets the bottom padding.
func (lb *LayoutBase) SetPaddingBottom(v float32) {
	if lb.padding.Bottom == v {
		return
	}
	lb.padding.Bottom = v
	lb.SendChange()
}

// SetPaddingLeft sets the left padding.
func (lb *LayoutBase) SetPaddingLeft(v float32) {
	if lb.padding.Left == v {
		return
	}
	lb.padding.Left = v
	lb.SendChange()
}

// UseVirtualLayout reports whether virtualization is enabled.
func (lb *LayoutBase) UseVirtualLayout() bool {
	return lb.useVirtualLayout
}

// SetUseVirtualLayout enables or disables virtualization.
func (lb *LayoutBase) SetUseVirtualLayout(on bool) {
	if lb.useVirtualLayout == on {
		return
	}
	lb.useVirtualLayout = on
	lb.SendChange()
}

// TypicalItem returns the item used to estimate the size of virtualized
// placeholders.
func (lb *LayoutBase) TypicalItem() Item {
	return lb.typicalItem
}

// SetTypicalItem sets the item used to estimate the size of virtualized
// placeholders.
func (lb *LayoutBase) SetTypicalItem(it Item) {
	if lb.typicalItem == it {
		return
	}
	lb.typicalItem = it
	lb.SendChange()
}

// requireVirtual guards virtualization-only queries; calling one
// without UseVirtualLayout is programmer error, not a recoverable
// condition.
func (lb *LayoutBase) requireVirtual(op string) {
	if !lb.useVirtualLayout {
		panic("layouts: " + op + " requires UseVirtualLayout")
	}
}

// typicalSize measures the typical item, returning 0, 0 if there is none.
func (lb *LayoutBase) typicalSize() (w, h float32) {
	if lb.typicalItem == nil {
		return 0, 0
	}
	validateItem(lb.typicalItem)
	return lb.typicalItem.Width(), lb.typicalItem.Height()
}

// includeInLayout probes the [Includer] capability, defaulting to true.
func includeInLayout(it Item) bool {
	if inc, ok := it.(Includer); ok {
		return inc.IncludeInLayout()
	}
	return true
}

// itemData probes the [DataHolder] capability, returning nil when absent.
func itemData(it Item) *Data {
	if dh, ok := it.(DataHolder); ok {
		return dh.LayoutData()
	}
	return nil
}

// validateItem probes the [Validator] capability and forces a
// re-measurement if supported.
func validateItem(it Item) {
	if v, ok := it.(Validator); ok {
		v.ValidateNow()
	}
}

// setPosition positions an item, applying its pivot offset.
func setPosition(it Item, x, y float32) {
	it.SetX(x + it.PivotX())
	it.SetY(y + it.PivotY())
}

// positionX returns the item's layout x position, excluding its pivot.
func positionX(it Item) float32 {
	return it.X() - it.PivotX()
}

// positionY returns the item's layout y position, excluding its pivot.
func positionY(it Item) float32 {
	return it.Y() - it.PivotY()
}

// sizerMin returns the item's minimum size constraints, or 0, 0 when it
// has none.
func sizerMin(it Item) (minW, minH float32) {
	sz, ok := it.(Sizer)
	if !ok {
		return 0, 0
	}
	minW, minH = sz.MinWidth(), sz.MinHeight()
	if math32.IsNaN(minW) {
		minW = 0
	}
	if math32.IsNaN(minH) {
		minH = 0
	}
	return minW, minH
}

// sizerMax returns the item's maximum size constraints, or +Inf when it
// has none.
func sizerMax(it Item) (maxW, maxH float32) {
	sz, ok := it.(Sizer)
	if !ok {
		return math32.Inf(1), math32.Inf(1)
	}
	maxW, maxH = sz.MaxWidth(), sz.MaxHeight()
	if math32.IsNaN(maxW) {
		maxW = math32.Inf(1)
	}
	if math32.IsNaN(maxH) {
		maxH = math32.Inf(1)
	}
	return maxW, maxH
}

// clamp constrains v to [lo, hi].
func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
