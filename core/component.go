// Copyright (c) 2025, Tessera Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package core provides the retained-mode component framework of
// Tessera: components composed into trees, containers that mediate all
// structural mutation of their items and docked items, pluggable layout
// strategies with a suspend/resume batching protocol, and panels with a
// collapse/expand/placeholder/float state machine. A [Scene] roots a
// component tree and carries the shared machinery: the layout
// suspension counter, the [Renderer] boundary, the [OverlayStack], and
// the [Animator].
package core

import (
	"fmt"
	"image"

	"tessera.dev/tessera/base/tiered"
	"tessera.dev/tessera/enums"
	"tessera.dev/tessera/events"
	"tessera.dev/tessera/math32"
	"tessera.dev/tessera/styles"
	"tessera.dev/tessera/tree"
)

// Component is the interface that all Tessera components satisfy.
// The core component functionality is defined on [ComponentBase],
// and all components embed it (directly or through [Container]).
type Component interface {
	tree.Node

	// AsComponent returns the [ComponentBase] of this component.
	// Most methods are defined on this type.
	AsComponent() *ComponentBase

	// Style recomputes the styling parameters of the component by
	// running its stylers. It is called by the layout pass before
	// sizing; see [ComponentBase.Style].
	Style()

	// SizeUp is the bottom-up pass of the layout protocol: the
	// component determines its own size from its styles and, for
	// containers, from the sizes of its items. It is called on
	// children before their parents.
	SizeUp()

	// Position is the top-down pass of the layout protocol: the
	// component assigns the geometry of anything it owns. Containers
	// run their layout strategy here; leaf components do nothing.
	// It is called on parents before their children.
	Position()

	// Render notifies the scene's renderer of the component's current
	// state, after layout has settled. It also reports geometry
	// changes via [events.Resize].
	Render()
}

// Geom holds the geometry of a component as computed by the most
// recent layout pass: its position relative to the scene origin and
// its allocated size.
type Geom struct {

	// Pos is the position of the top-left corner of the component,
	// relative to the scene origin.
	Pos math32.Vector2

	// Size is the size allocated to the component.
	Size math32.Vector2
}

// Box returns the bounding box of the geometry as an integer
// rectangle, flooring the position and ceiling the far corner.
func (g Geom) Box() image.Rectangle {
	return image.Rectangle{Min: g.Pos.ToPointFloor(), Max: g.Pos.Add(g.Size).ToPointCeil()}
}

// Contains returns whether the given point is inside the geometry box.
func (g Geom) Contains(p image.Point) bool {
	return p.In(g.Box())
}

// ComponentBase implements the [Component] interface and provides the
// core functionality shared by all components. You must use
// ComponentBase as an embedded struct in all higher-level component
// types. It holds visibility, enabled, and geometry state, but does
// not manage any items; see [Container] for that.
type ComponentBase struct {
	tree.NodeBase

	// Styles are the sizing and placement parameters for this
	// component. They are set by [ComponentBase.Stylers] in
	// [Component.Style], and may also be set directly for values
	// no styler touches.
	Styles styles.Style `json:"-" xml:"-" set:"-"`

	// Stylers is a tiered set of functions that are called in
	// sequential ascending order (so the last added styler is called
	// last and thus can override all other stylers) to style the
	// component. These should be set using the [ComponentBase.Styler],
	// [ComponentBase.FirstStyler], and [ComponentBase.FinalStyler]
	// functions.
	Stylers tiered.Tiered[[]func(s *styles.Style)] `copier:"-" json:"-" xml:"-" set:"-"`

	// Listeners is a tiered set of event listener functions for
	// processing events on this component. They are called in
	// sequential descending order (so the last added listener is
	// called first), stopping when an event is marked as handled.
	// They should be added using the [ComponentBase.On],
	// [ComponentBase.OnFirst], and [ComponentBase.OnFinal] functions.
	Listeners tiered.Tiered[events.Listeners] `copier:"-" json:"-" xml:"-" set:"-"`

	// Geom is the position and size of the component as computed by
	// the most recent layout pass.
	Geom Geom `copier:"-" json:"-" xml:"-" set:"-"`

	// Deferred is a slice of functions to call after the next layout
	// pass of the scene. In each function, event sending etc will work
	// as expected. Use [ComponentBase.Defer] to add a function.
	Deferred []func() `copier:"-" json:"-" xml:"-" set:"-"`

	// Scene is the overall [Scene] to which we belong. It is set
	// automatically whenever a component is added to a parent that
	// has a scene.
	Scene *Scene `copier:"-" json:"-" xml:"-" set:"-"`

	// prevGeom is the geometry reported by the last [Component.Render],
	// for detecting changes worth an [events.Resize].
	prevGeom Geom

	// laidOut is whether a layout pass has assigned geometry at least once.
	laidOut bool

	// flags are atomic bit flags for component state.
	// They must be atomic to prevent race conditions with
	// deferred continuations.
	flags styles.States
}

// AsComponent satisfies the [Component] interface.
func (cb *ComponentBase) AsComponent() *ComponentBase {
	return cb
}

// AsComponent returns the given [tree.Node] as a [ComponentBase] or
// nil if it is not a component.
func AsComponent(n tree.Node) *ComponentBase {
	if c, ok := n.(Component); ok {
		return c.AsComponent()
	}
	return nil
}

// Is returns whether the given state flag is currently set.
// It is safe to call from deferred continuations.
func (cb *ComponentBase) Is(f styles.States) bool {
	return cb.flags.HasFlag(f)
}

// SetState sets the given state flags to the given value.
func (cb *ComponentBase) SetState(on bool, f ...enums.BitFlag) {
	cb.flags.SetFlag(on, f...)
}

// Init should be called by every [Component] type in its custom Init
// if it has one, to establish the default styling and event handling
// that applies to all components.
func (cb *ComponentBase) Init() {
	cb.Styles.Defaults()
	cb.On(events.MouseEnter, func(e events.Event) {
		cb.SetState(true, styles.Hovered)
	})
	cb.On(events.MouseLeave, func(e events.Event) {
		cb.SetState(false, styles.Hovered)
	})
}

// OnAdd is called when components are added to a parent.
// It sets the scene of the component to that of its parent.
// It should be called by all other OnAdd functions defined
// by component types.
func (cb *ComponentBase) OnAdd() {
	if pcb := cb.parentComponent(); pcb != nil && pcb.Scene != nil {
		cb.setScene(pcb.Scene)
	}
	if cb.Scene != nil && cb.Scene.ComponentInit != nil {
		cb.Scene.ComponentInit(cb.This.(Component))
	}
}

// setScene sets the Scene pointer for this component and everything
// below it, including docked and floating items reached through
// [tree.Node.NodeWalkDown].
func (cb *ComponentBase) setScene(sc *Scene) {
	cb.WalkDown(func(n tree.Node) bool {
		cwb := AsComponent(n)
		if cwb == nil {
			return tree.Break
		}
		cwb.Scene = sc
		return tree.Continue
	})
}

// parentComponent returns the parent as a [ComponentBase], or nil
// if this is the root or the parent is not a component.
func (cb *ComponentBase) parentComponent() *ComponentBase {
	if cb.Parent == nil {
		return nil
	}
	if pc, ok := cb.Parent.(Component); ok {
		return pc.AsComponent()
	}
	return nil
}

// Owner returns the container presently holding this component: its
// parent as a [Container]. It is nil for a root component and for
// components whose parent is not a container. The reference is
// non-owning; ownership lives in the container's sequences.
func (cb *ComponentBase) Owner() *Container {
	if cb.Parent == nil {
		return nil
	}
	return AsContainer(cb.Parent)
}

// checkDestroyed panics if the component has been destroyed.
// Structural mutation of a destroyed component is a fatal
// programming error.
func (cb *ComponentBase) checkDestroyed() {
	if cb.Is(styles.Destroyed) {
		panic("core: structural mutation of destroyed component: " + cb.String())
	}
}

// Destroy sends an [events.Destroy] event, marks the component and
// everything below it as Destroyed, and then destroys the tree nodes.
// Destroyed is terminal: any subsequent structural mutation panics.
// Deferred continuations that find their target destroyed abandon
// silently instead.
func (cb *ComponentBase) Destroy() {
	if cb.This == nil || cb.Is(styles.Destroyed) {
		return
	}
	cb.Send(events.Destroy)
	cb.SetState(true, styles.Destroyed)
	if cb.Scene != nil {
		if cb.Scene.Overlays != nil {
			cb.Scene.Overlays.deactivate(cb)
		}
		if cb.Scene.focus != nil && cb.Scene.focus.AsComponent() == cb {
			cb.Scene.focus = nil
		}
		if c, ok := cb.This.(Component); ok && cb.Is(styles.Detached) {
			cb.Scene.dropDetached(c)
		}
	}
	cb.NodeBase.Destroy()
}

// Event handling:

// On adds the given event handler to the component's Normal tier
// listeners for the given event type. Listeners are called in
// sequential descending order, so this handler is called before all
// handlers added previously to the tier. On is one of the main ways
// to add an event handler, in addition to [ComponentBase.OnFirst] and
// [ComponentBase.OnFinal], which add handlers called before and after
// those added by this function, respectively.
func (cb *ComponentBase) On(typ events.Types, fun func(e events.Event)) *ComponentBase {
	cb.Listeners.Normal.Add(typ, fun)
	return cb
}

// OnFirst adds the given event handler to the component's First tier
// listeners for the given event type, called before the Normal and
// Final tiers.
func (cb *ComponentBase) OnFirst(typ events.Types, fun func(e events.Event)) *ComponentBase {
	cb.Listeners.First.Add(typ, fun)
	return cb
}

// OnFinal adds the given event handler to the component's Final tier
// listeners for the given event type, called after the First and
// Normal tiers.
func (cb *ComponentBase) OnFinal(typ events.Types, fun func(e events.Event)) *ComponentBase {
	cb.Listeners.Final.Add(typ, fun)
	return cb
}

// HandleEvent calls all of the component's listeners for the type of
// the given event. The tiers run in ascending order (First, Normal,
// Final); within each tier, listeners run in reverse order of
// addition, stopping once the event is marked as handled. Disabled
// components drop interaction events but still receive structural
// notifications.
func (cb *ComponentBase) HandleEvent(e events.Event) {
	if cb == nil || cb.This == nil {
		return
	}
	if DebugSettings.EventTrace {
		fmt.Println("\tDebugSettings.EventTrace event:", cb, e.Type())
	}
	if cb.Is(styles.Disabled) && isInteractionEvent(e.Type()) {
		return
	}
	cb.Listeners.Do(func(l *events.Listeners) {
		l.Call(e)
	})
}

// isInteractionEvent returns whether the given event type represents
// direct user interaction, which disabled components do not receive.
func isInteractionEvent(typ events.Types) bool {
	switch typ {
	case events.MouseEnter, events.MouseLeave, events.Click, events.FocusChange:
		return true
	}
	return false
}

// Send sends a new event of the given type to this component,
// optionally starting from values in the given original event
// (recommended to include where possible). It returns the delivered
// event; for the cancellable Before* types, callers consult its
// [events.Event.IsCanceled] status to decide whether to proceed.
func (cb *ComponentBase) Send(typ events.Types, original ...events.Event) events.Event {
	var e events.Event
	if len(original) > 0 && original[0] != nil {
		eb := *original[0].AsBase()
		eb.Typ = typ
		eb.Flags.SetFlag(false, events.Handled, events.Canceled)
		e = &eb
	} else {
		e = events.NewBase(typ)
	}
	e.Init()
	cb.HandleEvent(e)
	return e
}

// SendCustom sends a new [events.Custom] event with the given data
// payload to this component.
func (cb *ComponentBase) SendCustom(data any) {
	e := events.NewCustom(data)
	e.Init()
	cb.HandleEvent(e)
}

// sendData sends a new event of the given type carrying the given
// payload in [events.Base.Data]. Like [ComponentBase.Send], it returns
// the delivered event for cancellation checks on Before* types.
func (cb *ComponentBase) sendData(typ events.Types, data any) events.Event {
	if cb.This == nil {
		return nil
	}
	e := events.NewBase(typ)
	e.Data = data
	e.Init()
	cb.HandleEvent(e)
	return e
}

// Styling:

// Styler adds the given function for setting the style parameters of
// the component to the Normal tier of [ComponentBase.Stylers]. It is
// one of the main ways to specify the styles of a component, in
// addition to [ComponentBase.FirstStyler] and
// [ComponentBase.FinalStyler], which add stylers that are called
// before and after those added by this function, respectively.
func (cb *ComponentBase) Styler(s func(s *styles.Style)) *ComponentBase {
	cb.Stylers.Normal = append(cb.Stylers.Normal, s)
	return cb
}

// FirstStyler adds the given function to the First tier of
// [ComponentBase.Stylers], called before the Normal and Final tiers.
func (cb *ComponentBase) FirstStyler(s func(s *styles.Style)) *ComponentBase {
	cb.Stylers.First = append(cb.Stylers.First, s)
	return cb
}

// FinalStyler adds the given function to the Final tier of
// [ComponentBase.Stylers], called after the First and Normal tiers.
func (cb *ComponentBase) FinalStyler(s func(s *styles.Style)) *ComponentBase {
	cb.Stylers.Final = append(cb.Stylers.Final, s)
	return cb
}

// Style updates the style parameters of the component by running
// [ComponentBase.Stylers] in sequential ascending order, so that
// later stylers override earlier ones. Style values set directly on
// [ComponentBase.Styles] persist unless a styler overwrites them.
// An unset Display intent resolves to the Invisible state; note that
// this never clears Invisible, because other things can also hide a
// component.
func (cb *ComponentBase) Style() {
	if cb.This == nil {
		return
	}
	cb.Stylers.Do(func(ss *[]func(s *styles.Style)) {
		for _, s := range *ss {
			s(&cb.Styles)
		}
	})
	if !cb.Styles.Display {
		cb.SetState(true, styles.Invisible)
	}
}

// Update restyles the component and requests a new layout of its
// owner. Call it after changing [ComponentBase.Styles] or other
// fields directly, so the changes take effect.
func (cb *ComponentBase) Update() {
	if cb.This == nil {
		return
	}
	if DebugSettings.UpdateTrace {
		fmt.Println("\tDebugSettings.UpdateTrace Update:", cb)
	}
	cb.This.(Component).Style()
	cb.NeedsLayout()
}

// Layout hooks:

// SizeUp determines the component's own size from its styles: the
// requested Size raised to at least Min and capped by any nonzero Max.
// Container types override this to also aggregate their items when
// shrink-wrapping.
func (cb *ComponentBase) SizeUp() {
	s := &cb.Styles
	sz := s.Size
	sz.SetMax(s.Min)
	for d := math32.X; d <= math32.Y; d++ {
		if mx := s.Max.Dim(d); mx > 0 {
			sz.SetDim(d, math32.Min(sz.Dim(d), mx))
		}
	}
	cb.Geom.Size = sz
}

// Position assigns the geometry of anything the component owns.
// The base component owns nothing and does nothing; [Container]
// runs its layout strategy here.
func (cb *ComponentBase) Position() {}

// Render reports the outcome of the layout pass: it sends an
// [events.Resize] if the geometry changed since the last report, and
// notifies the scene's renderer that the component should be updated.
func (cb *ComponentBase) Render() {
	if cb.This == nil || cb.Scene == nil {
		return
	}
	if !cb.laidOut || cb.Geom != cb.prevGeom {
		cb.prevGeom = cb.Geom
		cb.laidOut = true
		cb.Send(events.Resize)
	}
	if cb.Scene.Renderer != nil {
		cb.Scene.Renderer.Update(cb.This.(Component))
	}
}

// Visibility and interactivity:

// Show makes the component displayable again after
// [ComponentBase.Hide]: it clears the Invisible state, restores the
// styled Display intent, sends an [events.Show] event, and requests a
// layout pass from its owner. It is a no-op if the component is not
// hidden.
func (cb *ComponentBase) Show() {
	if cb.This == nil || !cb.Is(styles.Invisible) {
		return
	}
	cb.SetState(false, styles.Invisible)
	cb.Styles.Display = true
	cb.Send(events.Show)
	cb.NeedsLayout()
}

// Hide removes the component from display and excludes it from
// layout: it sets the Invisible state, clears the styled Display
// intent, sends an [events.Hide] event, and requests a layout pass
// from its owner. It is a no-op if the component is already hidden.
func (cb *ComponentBase) Hide() {
	if cb.This == nil || cb.Is(styles.Invisible) {
		return
	}
	cb.SetState(true, styles.Invisible)
	cb.Styles.Display = false
	cb.Send(events.Hide)
	cb.NeedsLayout()
}

// SetDisabled sets whether the component responds to interaction
// events. Disabled components still display and participate in layout.
func (cb *ComponentBase) SetDisabled(disabled bool) *ComponentBase {
	cb.SetState(disabled, styles.Disabled)
	return cb
}

// IsDisplayable returns whether the component has the potential of
// being displayed: it is in a scene and neither it nor any of its
// parents is destroyed or [styles.Invisible].
//
// This does not check whether the component currently has a laid-out
// box, for which you can use [ComponentBase.IsVisible].
func (cb *ComponentBase) IsDisplayable() bool {
	if cb == nil || cb.This == nil || cb.Scene == nil {
		return false
	}
	if cb.Is(styles.Invisible) || cb.Is(styles.Destroyed) {
		return false
	}
	if cb.Parent == nil {
		return true
	}
	pcb := cb.parentComponent()
	if pcb == nil {
		return true
	}
	return pcb.IsDisplayable()
}

// IsVisible returns whether the component is actually currently
// visible: it is [ComponentBase.IsDisplayable] and its last laid-out
// box is non-empty.
func (cb *ComponentBase) IsVisible() bool {
	return cb.IsDisplayable() && !cb.Geom.Box().Empty()
}

// SetFloating sets whether the component is positioned outside the
// normal layout flow of its owner. A floating component belongs to
// its owner's floating set rather than its items: it skips layout
// participation and renders after the structural children. Setting
// this on a component that has an owner moves it between the owner's
// sequences.
func (cb *ComponentBase) SetFloating(floating bool) {
	if cb.This == nil || cb.Is(styles.Floating) == floating {
		return
	}
	cb.checkDestroyed()
	cb.SetState(floating, styles.Floating)
	ow := cb.Owner()
	if ow == nil {
		return
	}
	c, ok := cb.This.(Component)
	if !ok {
		return
	}
	if floating {
		ow.moveToFloating(c)
	} else {
		ow.moveFromFloating(c)
	}
	ow.requestLayout()
}

// Defer adds a function to [ComponentBase.Deferred] that will be
// called after the next layout pass of the scene. After the function
// is called, it is removed and not called again. Defer nudges the
// scene so that a pass runs even if nothing else requests one.
func (cb *ComponentBase) Defer(fun func()) {
	cb.Deferred = append(cb.Deferred, fun)
	if cb.Scene != nil {
		cb.Scene.NeedsLayout()
	}
}

// NeedsLayout requests a layout recomputation of the component's
// owner, or of the component itself if it is a container with no
// owner (the root case). The request routes through the scene's
// suspension protocol, so it may be deferred and batched.
func (cb *ComponentBase) NeedsLayout() {
	if cb.This == nil {
		return
	}
	if ow := cb.Owner(); ow != nil {
		ow.requestLayout()
		return
	}
	if ct := AsContainer(cb.This); ct != nil {
		ct.requestLayout()
	}
}

func (cb *ComponentBase) CopyFieldsFrom(from tree.Node) {
	cb.NodeBase.CopyFieldsFrom(from)
	frm := AsComponent(from)
	if frm == nil {
		return
	}

	cb.Styles = frm.Styles

	cb.Stylers.DoWith(&frm.Stylers, func(to, from *[]func(s *styles.Style)) {
		n := len(*to)
		if len(*from) > n {
			*to = append(*to, (*from)[n:]...)
		}
	})

	cb.Listeners.DoWith(&frm.Listeners, func(to, from *events.Listeners) {
		to.CopyFromExtra(*from)
	})
}
