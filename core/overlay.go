// Copyright (c) 2025, Tessera Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

// OverlayStack enforces that at most one floating overlay is active at
// a time within a scene. Floated panels and popup-style components
// share one stack for mutual exclusivity: showing an overlay hides
// whatever was active before it. The stack is an explicitly
// constructed object owned by the [Scene], not package state, so
// scenes remain independent and testable in isolation.
type OverlayStack struct {

	// OnFocus, if non-nil, is called with the newly active overlay
	// whenever one is shown, for focus transfer.
	OnFocus func(c Component)

	// active is the currently active overlay, if any.
	active Component
}

// NewOverlayStack returns a new [OverlayStack].
func NewOverlayStack() *OverlayStack {
	return &OverlayStack{}
}

// Active returns the currently active overlay, or nil if none is
// active.
func (os *OverlayStack) Active() Component {
	return os.active
}

// Show makes the given overlay the active one, hiding any previously
// active overlay first. It is a no-op if the overlay is already
// active or nil.
func (os *OverlayStack) Show(c Component) {
	if c == nil || os.active == c {
		return
	}
	os.HideAll()
	os.active = c
	if os.OnFocus != nil {
		os.OnFocus(c)
	}
}

// Overlay is an optional capability for components shown on an
// [OverlayStack]. When the stack deactivates a component that
// implements it, HideOverlay is called instead of a plain
// [ComponentBase.Hide], so the component can run its own dismissal
// transition (a floated panel slides back to its collapsed state, for
// example).
type Overlay interface {
	HideOverlay()
}

// Hide deactivates the given overlay if it is the active one, calling
// its [Overlay.HideOverlay] if it implements that, and hiding it
// otherwise. Hiding an overlay that is not active is a no-op.
func (os *OverlayStack) Hide(c Component) {
	if c == nil || os.active != c {
		return
	}
	os.active = nil
	if o, ok := c.(Overlay); ok {
		o.HideOverlay()
		return
	}
	c.AsComponent().Hide()
}

// HideAll deactivates the active overlay, if any.
func (os *OverlayStack) HideAll() {
	if os.active == nil {
		return
	}
	os.Hide(os.active)
}

// deactivate drops the given component from the stack without hiding
// it, for components on their way to being destroyed.
func (os *OverlayStack) deactivate(cb *ComponentBase) {
	if os.active != nil && os.active.AsComponent() == cb {
		os.active = nil
	}
}
