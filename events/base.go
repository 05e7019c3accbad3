// Copyright (c) 2025, Tessera Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package events provides the event types and dispatch machinery for
// component trees: the Event interface, the shared Base implementation,
// and per-object Listeners.
package events

import (
	"fmt"
	"image"
	"time"
)

// Event is the interface for all events.
type Event interface {

	// Type returns the type of event associated with this event.
	Type() Types

	// AsBase returns this event as a [Base] event type,
	// which is used for most events.
	AsBase() *Base

	// IsUnique returns whether this event must always be sent,
	// as opposed to being compressed with like events.
	IsUnique() bool

	// IsHandled returns whether this event has been handled;
	// a handled event stops listener propagation.
	IsHandled() bool

	// SetHandled marks the event as handled.
	SetHandled()

	// IsCanceled returns whether a listener canceled this event.
	// Canceling a Before* event aborts the pending operation.
	IsCanceled() bool

	// Cancel marks the event as canceled.
	Cancel()

	// Init sets the time to now, and any other initialization.
	// Done just prior to event delivery.
	Init()

	// Time returns the time at which the event was generated.
	Time() time.Time

	// HasPos returns whether this event has a position.
	HasPos() bool

	// Pos returns the position of the event.
	Pos() image.Point

	fmt.Stringer
}

// Base is the base type for events, carrying the type, flags, time,
// an optional position, and an optional data payload. Most events use
// Base directly and only need to set relevant fields and the type.
type Base struct {

	// Typ is the type of event.
	Typ Types

	// Flags records event boolean state.
	Flags EventFlags

	// Where is the position of the event, when it has one.
	Where image.Point

	// Data is an optional arbitrary payload.
	Data any

	// GenTime is when the event was generated.
	GenTime time.Time
}

// NewBase returns a new [Base] event of the given type.
func NewBase(typ Types) *Base {
	ev := &Base{Typ: typ}
	ev.SetUnique()
	return ev
}

func (ev *Base) Type() Types {
	return ev.Typ
}

func (ev *Base) AsBase() *Base {
	return ev
}

func (ev *Base) IsUnique() bool {
	return ev.Flags.HasFlag(EventUnique)
}

// SetUnique marks the event as unique, not subject to compression.
func (ev *Base) SetUnique() {
	ev.Flags.SetFlag(true, EventUnique)
}

func (ev *Base) IsHandled() bool {
	return ev.Flags.HasFlag(Handled)
}

func (ev *Base) SetHandled() {
	ev.Flags.SetFlag(true, Handled)
}

func (ev *Base) IsCanceled() bool {
	return ev.Flags.HasFlag(Canceled)
}

func (ev *Base) Cancel() {
	ev.Flags.SetFlag(true, Canceled)
}

func (ev *Base) Init() {
	ev.GenTime = time.Now()
}

func (ev *Base) Time() time.Time {
	return ev.GenTime
}

func (ev *Base) HasPos() bool {
	return false
}

func (ev *Base) Pos() image.Point {
	return ev.Where
}

func (ev *Base) String() string {
	return fmt.Sprintf("%v{Time: %v}", ev.Type(), ev.Time().Format("04:05"))
}

// Pointer is an event with a position: MouseEnter, MouseLeave, Click.
type Pointer struct {
	Base
}

// NewPointer returns a new pointer event of the given type at the
// given position.
func NewPointer(typ Types, where image.Point) *Pointer {
	ev := &Pointer{}
	ev.Typ = typ
	ev.SetUnique()
	ev.Where = where
	return ev
}

func (ev *Pointer) HasPos() bool {
	return true
}

func (ev *Pointer) String() string {
	return fmt.Sprintf("%v{Pos: %v, Time: %v}", ev.Type(), ev.Where, ev.Time().Format("04:05"))
}
