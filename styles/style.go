// Copyright (c) 2025, Tessera Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package styles holds the sizing and placement parameters of
// components: the Style block, box sides, layout directions, and
// component state flags.
package styles

//go:generate core generate

import "tessera.dev/tessera/math32"

// Style contains the sizing and placement parameters of a component.
// Dimension values of zero mean unset: an unset Size shrink-wraps to
// content, and an unset Min or Max leaves that bound unconstrained.
type Style struct { //types:add

	// Size is the requested size of the component.
	// A zero component means shrink-wrap to content in that dimension.
	Size math32.Vector2

	// Min is the minimum size the component can be shrunk to.
	Min math32.Vector2

	// Max is the maximum size the component can be grown to.
	// A zero component means unconstrained.
	Max math32.Vector2

	// Grow is the proportion of extra space in the owner that the
	// component absorbs, per dimension. Zero means fixed size.
	Grow math32.Vector2

	// Direction is the axis along which a container lays out its items.
	Direction Directions

	// Gap is the spacing between adjacent items in a box layout.
	Gap float32

	// Dock is the side of the owner this component is docked to.
	// It only has an effect when Docked is set.
	Dock Side

	// Docked indicates that this component belongs to its owner's
	// docked set and is carved from the Dock side of the owner's box.
	Docked bool

	// Display indicates that the component participates in display
	// and layout. It is the styled intent; the component's Invisible
	// state flag is the effective resolution.
	Display bool
}

// Defaults sets the initial values for a style, before any stylers run.
func (s *Style) Defaults() {
	s.Display = true
	s.Direction = Row
}

// NewStyle returns a new [Style] with default values.
func NewStyle() *Style {
	s := &Style{}
	s.Defaults()
	return s
}

// SetDock marks the component as docked to the given side of its owner.
func (s *Style) SetDock(side Side) *Style {
	s.Dock = side
	s.Docked = true
	return s
}

// IsFixed returns whether the given dimension has an explicit
// (nonzero) requested size.
func (s *Style) IsFixed(dim math32.Dims) bool {
	return s.Size.Dim(dim) > 0
}
