// Copyright (c) 2025, Tessera Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package styles

import "tessera.dev/tessera/math32"

// Side is a side of a box (a container region edge). It is used for
// dock edge assignment and for panel collapse directions.
type Side int32 //enums:enum

const (
	Top Side = iota
	Right
	Bottom
	Left
)

// Dim returns the dimension along which the side varies:
// [math32.Y] for Top and Bottom, [math32.X] for Left and Right.
func (s Side) Dim() math32.Dims {
	switch s {
	case Top, Bottom:
		return math32.Y
	default:
		return math32.X
	}
}

// IsHorizontal returns whether the side is oriented horizontally
// (Top or Bottom), such that content attached to it spans the X axis.
func (s Side) IsHorizontal() bool {
	return s == Top || s == Bottom
}

// Opposite returns the opposite side (Top ↔ Bottom, Left ↔ Right).
func (s Side) Opposite() Side {
	switch s {
	case Top:
		return Bottom
	case Bottom:
		return Top
	case Left:
		return Right
	default:
		return Left
	}
}

// IsLeading returns whether the side comes before the body content
// in layout order (Top or Left).
func (s Side) IsLeading() bool {
	return s == Top || s == Left
}

// Directions is the direction along which a box layout stacks
// its child components.
type Directions int32 //enums:enum

const (
	// Row indicates that components are laid out horizontally.
	Row Directions = iota

	// Column indicates that components are laid out vertically.
	Column
)

// Dim returns the layout dimension corresponding to the direction:
// [math32.X] for Row, [math32.Y] for Column.
func (d Directions) Dim() math32.Dims {
	return math32.Dims(d)
}
