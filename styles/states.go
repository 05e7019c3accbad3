// Copyright (c) 2025, Tessera Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package styles

// States are bit flags for the lifecycle and interaction states of a
// component. They are stored on the component as an atomic bit field,
// so they can be read and written from event and animation callbacks.
type States int64 //enums:bitflag

const (
	// Invisible indicates that the component is hidden from display
	// and excluded from layout.
	Invisible States = iota

	// Disabled indicates that the component does not respond to
	// interaction events.
	Disabled

	// Destroyed indicates that the component has been destroyed and
	// must not be used again. Structural mutation of a destroyed
	// component is a fatal programming error.
	Destroyed

	// Floating indicates that the component is positioned outside the
	// normal layout flow of its owner; it belongs to the owner's
	// floating set rather than its items.
	Floating

	// Collapsed indicates that the component is a panel currently
	// collapsed toward one of its sides.
	Collapsed

	// Detached indicates that the component was removed from its owner
	// without being destroyed and is parked in the scene's holding area.
	Detached

	// Focused indicates that the component has input focus.
	Focused

	// Hovered indicates that the pointer is over the component.
	Hovered
)
