// Copyright (c) 2025, Tessera Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

//go:generate core generate

// Types determines the type of component event, and also the level at
// which one can select which events to listen to. Structural mutations
// send a cancellable Before* event prior to any change, and the plain
// event after the change (and after any synchronous layout pass the
// change triggered). Canceling a Before* event aborts the operation
// with no partial mutation.
type Types int64 //enums:enum

const (
	// zero value is an unknown type
	UnknownType Types = iota

	// BeforeAdd is sent to a container before a component is added to
	// it. Canceling it skips that component.
	BeforeAdd

	// Add is sent to a container after a component has been added and
	// any resulting layout has run. The component is in place.
	Add

	// BeforeRemove is sent to a container before a component is
	// removed from it. Canceling it keeps the component.
	BeforeRemove

	// Remove is sent to a container after a component has been removed.
	Remove

	// Move is sent to a container after a child changed position
	// within its items.
	Move

	// BeforeCollapse is sent to a panel before it collapses.
	// Canceling it keeps the panel expanded.
	BeforeCollapse

	// Collapse is sent to a panel after its collapse transition has
	// settled.
	Collapse

	// BeforeExpand is sent to a collapsed panel before it expands.
	// Canceling it keeps the panel collapsed.
	BeforeExpand

	// Expand is sent to a panel after its expand transition has settled.
	Expand

	// BeforeFloat is sent to a placeholder-collapsed panel before it
	// floats out over its placeholder. Canceling it keeps the panel
	// collapsed.
	BeforeFloat

	// Float is sent to a panel after it has floated out over its
	// placeholder.
	Float

	// SlideOut is sent to a floated panel after it has slid back to
	// the collapsed state.
	SlideOut

	// Show is sent to a component when it becomes visible.
	Show

	// Hide is sent to a component when it becomes hidden.
	Hide

	// Resize is sent to a component when a layout pass changed its
	// actual geometry.
	Resize

	// Destroy is sent to a component just before it is destroyed.
	Destroy

	// MouseEnter is when the pointer enters the bounding box of a
	// component. It sets the Hovered state.
	MouseEnter

	// MouseLeave is when the pointer leaves the bounding box of a
	// component that previously had a MouseEnter.
	MouseLeave

	// Click represents a pointer press and release in sequence on the
	// same component.
	Click

	// FocusChange is sent when input focus moves to a component.
	FocusChange

	// SettingsChanged is sent to a scene when its settings have been
	// reloaded, for example by a settings file watcher.
	SettingsChanged

	// Custom is a user-defined event with a data any field.
	Custom
)

// EventFlags encode boolean event properties.
type EventFlags int64 //enums:bitflag

const (
	// Handled indicates that the event has been handled; listener
	// propagation stops.
	Handled EventFlags = iota

	// Canceled indicates that a Before* event was canceled; the
	// pending operation is aborted with no partial mutation.
	Canceled

	// EventUnique indicates that the event is unique and not to be
	// compressed with like events.
	EventUnique
)
