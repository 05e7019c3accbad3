// Copyright (c) 2025, Tessera Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"fmt"
	"log/slog"
	"slices"

	"tessera.dev/tessera/base/keylist"
	"tessera.dev/tessera/styles"
	"tessera.dev/tessera/tree"
)

// Scene is the root [Container] of a component tree. It carries the
// shared machinery that every component in the tree reaches through
// its Scene pointer: the layout suspension counter with its pending
// set, the [Renderer] boundary, the [OverlayStack] for floated
// overlays, the [Animator] that drives geometry transitions, and the
// holding area for detached components.
type Scene struct {
	Container

	// Renderer materializes components into the presentation layer.
	// It defaults to [NopRenderer], which does nothing.
	Renderer Renderer `copier:"-" json:"-" xml:"-" set:"-"`

	// Animator drives the geometry transitions of collapse, expand,
	// and float. It defaults to [ImmediateAnimator], which settles
	// every transition synchronously; see [SceneAnimator] for one that
	// animates over [Scene.StepAnimations] ticks.
	Animator Animator `copier:"-" json:"-" xml:"-" set:"-"`

	// Overlays manages the mutually exclusive overlays of this scene,
	// such as floated panels: showing one hides the current one.
	Overlays *OverlayStack `copier:"-" json:"-" xml:"-" set:"-"`

	// ComponentInit is a function called on every component added
	// anywhere in the scene. It can be used to set things like
	// scene-wide defaults and event handlers.
	ComponentInit func(c Component) `copier:"-" json:"-" xml:"-" set:"-"`

	// Animations are the currently active animations on this scene,
	// ticked by [Scene.StepAnimations].
	Animations []*Animation `copier:"-" json:"-" xml:"-" set:"-"`

	// focus is the component currently holding input focus.
	focus Component

	// suspend is the depth of layout suspension. While it is above
	// zero, layout requests from containers in the scene are parked in
	// pending instead of running.
	suspend int

	// pending are the containers whose layout requests arrived while
	// suspension was active: unique, in request order.
	pending []*Container

	// detached is the holding area for components detached from their
	// owners with their materialized state preserved, keyed by their
	// path at detach time.
	detached keylist.List[string, Component]
}

// NewScene returns a new [Scene] with the given optional name.
func NewScene(name ...string) *Scene {
	sc := tree.New[*Scene]()
	if len(name) > 0 {
		sc.SetName(name[0])
	}
	return sc
}

func (sc *Scene) Init() {
	sc.Container.Init()
	sc.Scene = sc
	sc.Renderer = NopRenderer{}
	sc.Animator = ImmediateAnimator{}
	sc.Overlays = NewOverlayStack()
	sc.Overlays.OnFocus = func(c Component) {
		c.AsComponent().SetFocus()
	}
}

// Layout suspension:

// SuspendLayouts increments the scene's layout suspension depth.
// While suspended, layout requests from containers in the scene are
// parked in a pending set (unique, in request order) instead of
// running. Every call must be matched by a [Scene.ResumeLayouts];
// see [Scene.BatchLayouts] for the common paired form.
func (sc *Scene) SuspendLayouts() {
	sc.suspend++
}

// ResumeLayouts decrements the layout suspension depth. When the depth
// reaches zero and flush is true, the parked layout requests run in
// request order; with flush false they stay parked until the next
// flushing resume or the next unsuspended layout request. Resuming
// below zero is a programming error: the depth stays clamped at zero
// and an error is logged.
func (sc *Scene) ResumeLayouts(flush bool) {
	if sc.suspend == 0 {
		slog.Error("core.Scene.ResumeLayouts: resume without matching suspend", "scene", sc.String())
		return
	}
	sc.suspend--
	if sc.suspend == 0 && flush {
		sc.flushPending()
	}
}

// BatchLayouts runs the given function with layouts suspended and
// flushes the batched requests at the end, so any number of
// structural changes inside produce at most one layout recomputation
// per affected container. Batches nest: inner ones defer to the
// outermost.
func (sc *Scene) BatchLayouts(fun func()) {
	sc.SuspendLayouts()
	defer sc.ResumeLayouts(true)
	fun()
}

// LayoutsSuspended reports whether layout requests are currently
// suspended on this scene.
func (sc *Scene) LayoutsSuspended() bool {
	return sc.suspend > 0
}

// requestLayoutFor runs a layout pass for the given container now, or
// parks the request while suspension is active. An unsuspended request
// also flushes anything still parked from a non-flushing resume.
func (sc *Scene) requestLayoutFor(ct *Container) {
	if sc.suspend > 0 {
		sc.addPending(ct)
		return
	}
	if len(sc.pending) > 0 {
		sc.addPending(ct)
		sc.flushPending()
		return
	}
	ct.layoutPass()
	sc.runDeferred()
}

// addPending parks a layout request for the container in the pending
// set, keeping the set unique and in first-request order.
func (sc *Scene) addPending(ct *Container) {
	if ct.suspended {
		return
	}
	ct.suspended = true
	sc.pending = append(sc.pending, ct)
	if DebugSettings.LayoutTrace {
		fmt.Println("\tDebugSettings.LayoutTrace layout request parked:", ct)
	}
}

// cancelPending drops any parked layout request for the given
// container, so a removed or destroyed container is not laid out by a
// later flush.
func (sc *Scene) cancelPending(ct *Container) {
	if !ct.suspended {
		return
	}
	ct.suspended = false
	if i := slices.Index(sc.pending, ct); i >= 0 {
		sc.pending = slices.Delete(sc.pending, i, i+1)
	}
}

// flushPending runs the parked layout requests in request order,
// looping until none are left (a pass can park more), then runs the
// deferred functions.
func (sc *Scene) flushPending() {
	for len(sc.pending) > 0 {
		pend := sc.pending
		sc.pending = nil
		for _, ct := range pend {
			ct.suspended = false
			if ct.This == nil || ct.Is(styles.Destroyed) {
				continue
			}
			ct.layoutPass()
		}
	}
	sc.runDeferred()
}

// runDeferred runs and clears the deferred functions registered
// through [ComponentBase.Defer] on every component still in the scene.
// Components destroyed or detached since registering are no longer in
// the tree, so their continuations are abandoned.
func (sc *Scene) runDeferred() {
	var funs []func()
	sc.WalkDown(func(n tree.Node) bool {
		cb := AsComponent(n)
		if cb == nil {
			return tree.Continue
		}
		funs = append(funs, cb.Deferred...)
		cb.Deferred = nil
		return tree.Continue
	})
	for _, f := range funs {
		f()
	}
}

// Detached component holding area:

// addDetached parks the given detached component in the holding area
// under the given key (its path at detach time). A component already
// parked under the same key is destroyed and replaced.
func (sc *Scene) addDetached(path string, c Component) {
	if old, ok := sc.detached.AtTry(path); ok && old != c {
		old.Destroy()
	}
	sc.detached.Set(path, c)
}

// dropDetached removes the given component from the holding area,
// for when a new owner takes it.
func (sc *Scene) dropDetached(c Component) {
	for i, v := range sc.detached.Values {
		if v == c {
			sc.detached.DeleteByIndex(i, i+1)
			return
		}
	}
}

// DetachedComponent returns the component parked in the scene's
// holding area under the given path (its path at detach time), or nil
// if there is none. Detached components keep their materialized state
// and can be added to a new owner directly.
func (sc *Scene) DetachedComponent(path string) Component {
	c, _ := sc.detached.AtTry(path)
	return c
}

// NumDetached returns the number of components parked in the scene's
// holding area.
func (sc *Scene) NumDetached() int {
	return sc.detached.Len()
}

// Destroy destroys the scene and everything in it, including the
// components parked in the detached holding area and any active
// animations.
func (sc *Scene) Destroy() {
	if sc.This == nil || sc.Is(styles.Destroyed) {
		return
	}
	held := slices.Clone(sc.detached.Values)
	sc.detached.Reset()
	for _, c := range held {
		c.Destroy()
	}
	sc.Animations = nil
	sc.pending = nil
	sc.focus = nil
	sc.Container.Destroy()
}

// Layout pipeline:

// layoutPass recomputes the geometry of the container's subtree and
// pushes the result to the renderer, in four phases: styling (top
// down), sizing (bottom up), positioning (top down, running each
// container's layout strategy), and rendering, which sends
// [events.Resize] to components whose geometry changed and notifies
// the renderer in paint order.
func (ct *Container) layoutPass() {
	if ct.This == nil || ct.Is(styles.Destroyed) {
		return
	}
	if DebugSettings.LayoutTrace {
		fmt.Println("\tDebugSettings.LayoutTrace layout pass:", ct)
	}
	c := ct.This.(Component)
	ct.WalkDown(func(n tree.Node) bool {
		cb := AsComponent(n)
		if cb == nil || cb.This == nil {
			return tree.Break
		}
		cb.This.(Component).Style()
		return tree.Continue
	})
	sizeUpTree(c)
	ct.WalkDown(func(n tree.Node) bool {
		cb := AsComponent(n)
		if cb == nil || cb.This == nil {
			return tree.Break
		}
		cb.This.(Component).Position()
		return tree.Continue
	})
	renderPass(c)
}

// sizeUpTree runs the sizing phase bottom up over the given
// component's subtree, so children have their sizes before parents
// aggregate them. Docked and floating components are not part of
// Children and are sized by [Container.SizeUp] itself.
func sizeUpTree(c Component) {
	c.AsTree().WalkDownPost(func(n tree.Node) bool {
		return AsComponent(n) != nil
	}, func(n tree.Node) bool {
		if cb := AsComponent(n); cb != nil && cb.This != nil {
			cb.This.(Component).SizeUp()
		}
		return tree.Continue
	})
}

// renderPass notifies components and the renderer in paint order: the
// component itself, docked items on leading sides, the main items,
// docked items on trailing sides, and floating components last, on
// top of everything. Invisible subtrees are skipped.
func renderPass(c Component) {
	cb := c.AsComponent()
	if cb == nil || cb.This == nil || cb.Is(styles.Invisible) || cb.Is(styles.Destroyed) {
		return
	}
	c.Render()
	ct := AsContainer(cb.This)
	if ct == nil {
		return
	}
	leading, trailing := ct.dockedPartition()
	for _, d := range leading {
		renderPass(d)
	}
	for _, k := range ct.Children {
		if kc, ok := k.(Component); ok {
			renderPass(kc)
		}
	}
	for _, d := range trailing {
		renderPass(d)
	}
	for _, f := range ct.floating {
		renderPass(f)
	}
}
