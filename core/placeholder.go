// Copyright (c) 2025, Tessera Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"time"

	"tessera.dev/tessera/events"
	"tessera.dev/tessera/styles"
	"tessera.dev/tessera/tree"
)

// Placeholder stands in for a [Panel] collapsed in
// [CollapsePlaceholder] mode: a slim strip at the panel's former index
// in its owner. Clicking it floats the panel back over the body when
// [Panel.Floatable] is set, and expands it otherwise.
type Placeholder struct {
	ComponentBase

	// Panel is the collapsed panel this placeholder stands in for.
	Panel *Panel `json:"-" xml:"-" set:"-"`
}

func (ph *Placeholder) Init() {
	ph.ComponentBase.Init()
	ph.Styler(func(s *styles.Style) {
		p := ph.Panel
		if p == nil {
			return
		}
		dim := p.collapsedToward.Dim()
		if s.Size.Dim(dim) == 0 {
			s.Size.SetDim(dim, TextLineHeight)
		}
		if s.Grow.Dim(dim.Other()) == 0 {
			s.Grow.SetDim(dim.Other(), 1)
		}
	})
	ph.OnFinal(events.Click, func(e events.Event) {
		p := ph.Panel
		if p == nil || p.This == nil || p.Is(styles.Destroyed) {
			return
		}
		if p.Floatable {
			p.FloatCollapsed()
		} else {
			p.Expand()
		}
	})
}

// Destroy also destroys a panel left parked behind this placeholder,
// so that destroying the owner does not leak the detached panel.
func (ph *Placeholder) Destroy() {
	if ph.This == nil || ph.Is(styles.Destroyed) {
		return
	}
	p := ph.Panel
	ph.Panel = nil
	ph.ComponentBase.Destroy()
	if p != nil && p.placeholder == ph && p.Parent == nil && !p.Is(styles.Destroyed) {
		p.placeholder = nil
		p.Destroy()
	}
}

// swapInPlaceholder replaces the panel with a [Placeholder] at its
// position in its owner. The panel detaches with its state preserved
// and stays reachable through the placeholder.
func (p *Panel) swapInPlaceholder() {
	ow := p.Owner()
	if ow == nil {
		return
	}
	idx := tree.IndexOf(ow.Children, p.This)
	ph := NewPlaceholder()
	ph.SetName(p.Name + "-placeholder")
	ph.Panel = p
	p.placeholder = ph
	ow.detachKeep(p.This.(Component))
	if idx < 0 {
		idx = ow.NumChildren()
	}
	ow.AddAt(idx, ph)
}

// swapOutPlaceholder removes the placeholder and returns the panel to
// its former position in the placeholder's owner.
func (p *Panel) swapOutPlaceholder() {
	ph := p.placeholder
	if ph == nil {
		return
	}
	p.placeholder = nil
	ow := ph.Owner()
	if ow == nil {
		ph.Destroy()
		return
	}
	idx := tree.IndexOf(ow.Children, ph.This)
	detachFromOwner(p.This.(Component))
	p.SetState(false, styles.Floating)
	ow.detachChild(ph)
	ph.Destroy()
	if idx < 0 {
		idx = ow.NumChildren()
	}
	ow.AddAt(idx, p.This.(Component))
}

// FloatCollapsed shows a placeholder-collapsed panel floating over the
// body, restored to its remembered dimensions, without changing its
// collapsed state. Floating is transient: the panel slides back out
// (see [Panel.SlideOutFloated]) when the pointer leaves it for the
// [AppSettings] hover delay, when another overlay becomes active, or
// when the panel expands for real. It requires [Panel.Floatable] and a
// standing placeholder. Canceling the [events.BeforeFloat] event
// aborts the float with no state changed.
func (p *Panel) FloatCollapsed() {
	if p.This == nil {
		return
	}
	p.checkDestroyed()
	if !p.Floatable || !p.Is(styles.Collapsed) || p.Is(styles.Floating) || p.phase != TransitionIdle {
		return
	}
	ph := p.placeholder
	if ph == nil || ph.Owner() == nil {
		return
	}
	dur := p.collapseDuration()
	info := &CollapseInfo{Panel: p, Direction: p.collapsedToward, Animate: dur > 0}
	if e := p.sendData(events.BeforeFloat, info); e.IsCanceled() {
		return
	}
	p.stopTransition()
	ow := ph.Owner()
	start := p.Geom
	p.SetState(true, styles.Floating)
	p.batch(func() {
		if p.memento != nil {
			p.memento.Restore()
		}
		p.showContent()
		ow.Add(p.This.(Component))
	})
	p.floatPosition(ph)
	if p.Scene != nil && p.Scene.Overlays != nil {
		p.Scene.Overlays.Show(p.This.(Component))
	}
	p.settle(deltaGeom(start, p.Geom), dur, func() {
		p.sendData(events.Float, info)
	})
}

// SlideOutFloated slides a floated panel back out to its placeholder,
// reversing [Panel.FloatCollapsed]: the panel leaves the overlay
// stack, detaches again behind its placeholder, and an
// [events.SlideOut] notification fires once the transition settles.
// It is a no-op on a panel that is not floated.
func (p *Panel) SlideOutFloated() {
	if p.This == nil || p.Is(styles.Destroyed) || !p.Is(styles.Floating) || !p.Is(styles.Collapsed) {
		return
	}
	p.floatTimer.stop()
	p.stopTransition()
	dur := p.collapseDuration()
	info := &CollapseInfo{Panel: p, Direction: p.collapsedToward, Animate: dur > 0}
	delta := deltaGeom(p.Geom, p.slideOutTarget())
	if p.Scene != nil && p.Scene.Overlays != nil {
		p.Scene.Overlays.deactivate(&p.ComponentBase)
	}
	p.settle(delta, dur, func() {
		p.batch(func() {
			if ow := p.Owner(); ow != nil {
				ow.detachKeep(p.This.(Component))
				ow.requestLayout()
			}
			p.SetState(false, styles.Floating)
			p.hideContent(nil)
			p.applyCollapsedStyles(nil, p.Geom, p.collapsedToward)
		})
		p.sendData(events.SlideOut, info)
	})
}

// floatPosition anchors the floating panel against its placeholder,
// spilling over the body away from the collapse side.
func (p *Panel) floatPosition(ph *Placeholder) {
	side := p.collapsedToward
	dim := side.Dim()
	pos := ph.Geom.Pos
	if side.IsLeading() {
		pos.SetDim(dim, ph.Geom.Pos.Dim(dim)+ph.Geom.Size.Dim(dim))
	} else {
		pos.SetDim(dim, ph.Geom.Pos.Dim(dim)-p.Geom.Size.Dim(dim))
	}
	p.Geom.Pos = pos
	p.This.(Component).Render()
}

// slideOutTarget is the geometry the floated panel slides back to: its
// current box pushed behind the collapse side of its placeholder.
func (p *Panel) slideOutTarget() Geom {
	ph := p.placeholder
	if ph == nil {
		return p.Geom
	}
	side := p.collapsedToward
	dim := side.Dim()
	tg := p.Geom
	if side.IsLeading() {
		tg.Pos.SetDim(dim, ph.Geom.Pos.Dim(dim)-tg.Size.Dim(dim))
	} else {
		tg.Pos.SetDim(dim, ph.Geom.Pos.Dim(dim)+ph.Geom.Size.Dim(dim))
	}
	return tg
}

// floatHoverDelay is the pointer-leave delay before a floated panel
// slides back out.
func floatHoverDelay() time.Duration {
	if d := AppSettings.FloatHoverDelay; d > 0 {
		return d
	}
	return 500 * time.Millisecond
}
