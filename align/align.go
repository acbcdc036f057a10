// Copyright (c) 2025, Mosaic Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package align defines the closed sets of alignment tokens used by the
// layout engines. Horizontal and Vertical each have three edge/center
// positions plus a justify mode that stretches content to fill the
// available space instead of positioning it.
package align

import "fmt"

// Horizontal is the horizontal alignment of content within available space.
type Horizontal int32

const (
	// Left aligns content to the left edge.
	Left Horizontal = iota

	// HCenter centers content horizontally.
	HCenter

	// Right aligns content to the right edge.
	Right

	// HJustify stretches content to fill the available width.
	HJustify
)

func (h Horizontal) String() string {
	switch h {
	case Left:
		return "left"
	case HCenter:
		return "center"
	case Right:
		return "right"
	case HJustify:
		return "justify"
	}
	return fmt.Sprintf("align.Horizontal(%d)", int32(h))
}

// HorizontalFromString returns the Horizontal value named by s,
// using the same names that String returns.
func HorizontalFromString(s string) (Horizontal, error) {
	switch s {
	case "left":
		return Left, nil
	case "center":
		return HCenter, nil
	case "right":
		return Right, nil
	case "justify":
		return HJustify, nil
	}
	return Left, fmt.Errorf("align: unknown horizontal alignment %q", s)
}

// Vertical is the vertical alignment of content within available space.
type Vertical int32

const (
	// Top aligns content to the top edge.
	Top Vertical = iota

	// Middle centers content vertically.
	Middle

	// Bottom aligns content to the bottom edge.
	Bottom

	// VJustify stretches content to fill the available height.
	VJustify
)

func (v Vertical) String() string {
	switch v {
	case Top:
		return "top"
	case Middle:
		return "middle"
	case Bottom:
		return "bottom"
	case VJustify:
		return "justify"
	}
	return fmt.Sprintf("align.Vertical(%d)", int32(v))
}

// VerticalFromString returns the Vertical value named by s,
// using the same names that String returns.
func VerticalFromString(s string) (Vertical, error) {
	switch s {
	case "top":
		return Top, nil
	case "middle":
		return Middle, nil
	case "bottom":
		return Bottom, nil
	case "justify":
		return VJustify, nil
	}
	return Top, fmt.Errorf("align: unknown vertical alignment %q", s)
}
