// Copyright (c) 2025, Tessera Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"slices"
	"time"

	"tessera.dev/tessera/styles"
)

// Animation represents the data for a component animation.
// You can call [ComponentBase.Animate] to create a component animation.
// Animations are stored on the [Scene].
type Animation struct {

	// Func is the animation function, which is run on every animation
	// step of the [Scene] (see [Scene.StepAnimations]). It receives the
	// [Animation] object so that it can reference things such as
	// [Animation.Delta] and set things such as [Animation.Done].
	Func func(a *Animation)

	// Component is the component associated with the animation.
	// The animation ends if the component is destroyed.
	Component Component

	// Delta is the amount of time that has passed since the last
	// animation step.
	Delta time.Duration

	// Done can be set to true to permanently stop the animation; the
	// [Animation] object will be removed from the [Scene] at the next
	// step.
	Done bool
}

// Animate adds a new [Animation] to the [Scene] for the component.
// The given function is run at every animation step, and it receives
// the [Animation] object so that it can reference and modify things on
// it; see the [Animation] docs for more information on things such as
// [Animation.Delta] and [Animation.Done]. It returns the animation so
// that callers holding a reference can stop it early.
func (cb *ComponentBase) Animate(f func(a *Animation)) *Animation {
	a := &Animation{
		Func:      f,
		Component: cb.This.(Component),
	}
	if cb.Scene != nil {
		cb.Scene.Animations = append(cb.Scene.Animations, a)
	}
	return a
}

// StepAnimations advances all of the scene's animations by the given
// time step, removing those that are done or whose component has been
// destroyed. A frame loop calls this at the display refresh rate;
// tests call it directly with deterministic steps. It reports whether
// any animation function ran.
func (sc *Scene) StepAnimations(delta time.Duration) bool {
	if len(sc.Animations) == 0 {
		return false
	}
	ran := false
	for _, a := range sc.Animations {
		if a.Done {
			continue
		}
		acb := a.Component.AsComponent()
		if acb.This == nil || acb.Is(styles.Destroyed) {
			a.Done = true
			continue
		}
		a.Delta = delta
		a.Func(a)
		ran = true
	}
	sc.Animations = slices.DeleteFunc(sc.Animations, func(a *Animation) bool {
		return a.Done
	})
	return ran
}

// Animator performs property transitions for components: the boundary
// to the tween layer. The framework hands it a geometry delta, a
// duration, and a completion callback; how values move in between is
// the animator's business. Collapse and expand transitions treat the
// animator as opaque and only depend on the completion signal.
type Animator interface {

	// Animate transitions the given component's geometry by the given
	// delta over the given duration, invoking done exactly once when
	// the transition settles. The returned cancel function stops the
	// transition without invoking done; canceling a transition that
	// has already settled is a no-op.
	Animate(c Component, delta Geom, duration time.Duration, done func()) (cancel func())
}

// ImmediateAnimator is an [Animator] that skips transitions entirely:
// the geometry is already final when Animate is called, so it invokes
// done synchronously. It is the default animator of a [Scene].
type ImmediateAnimator struct{}

func (ImmediateAnimator) Animate(c Component, delta Geom, duration time.Duration, done func()) func() {
	done()
	return func() {}
}

// SceneAnimator is an [Animator] that drives transitions through the
// scene's [Animation] list, interpolating the component's geometry
// from its pre-transition state to its final state on every animation
// step. Something must advance the scene clock with
// [Scene.StepAnimations] for transitions to settle.
type SceneAnimator struct {

	// Scene is the scene whose animation list carries the transitions.
	Scene *Scene
}

func (sa *SceneAnimator) Animate(c Component, delta Geom, duration time.Duration, done func()) func() {
	cb := c.AsComponent()
	if sa.Scene == nil || duration <= 0 {
		done()
		return func() {}
	}
	final := cb.Geom
	start := Geom{Pos: final.Pos.Sub(delta.Pos), Size: final.Size.Sub(delta.Size)}
	settled := false
	var elapsed time.Duration
	anim := cb.Animate(func(a *Animation) {
		if settled {
			a.Done = true
			return
		}
		elapsed += a.Delta
		if elapsed >= duration {
			cb.Geom = final
			settled = true
			a.Done = true
			done()
			return
		}
		amount := float32(elapsed) / float32(duration)
		cb.Geom.Pos = start.Pos.Lerp(final.Pos, amount)
		cb.Geom.Size = start.Size.Lerp(final.Size, amount)
	})
	return func() {
		if settled {
			return
		}
		settled = true
		anim.Done = true
	}
}

// transitionTimer is a cancelable handle for a deferred continuation,
// such as the hover delay before a floated panel slides back. The zero
// value is ready to use. Continuations run on a timer goroutine; a
// conflicting transition must call stop before starting.
type transitionTimer struct {
	timer *time.Timer
}

// start schedules fun to run after d, canceling any continuation
// already pending on this handle first.
func (tt *transitionTimer) start(d time.Duration, fun func()) {
	tt.stop()
	tt.timer = time.AfterFunc(d, fun)
}

// stop cancels the pending continuation, if any.
func (tt *transitionTimer) stop() {
	if tt.timer != nil {
		tt.timer.Stop()
		tt.timer = nil
	}
}
