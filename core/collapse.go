// Copyright (c) 2025, Tessera Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"log/slog"
	"time"

	"tessera.dev/tessera/events"
	"tessera.dev/tessera/math32"
	"tessera.dev/tessera/styles"
	"tessera.dev/tessera/tree"
)

// TransitionPhases are the phases of a panel geometry transition.
type TransitionPhases int32 //enums:enum

const (
	// TransitionIdle indicates that no transition is in flight.
	TransitionIdle TransitionPhases = iota

	// TransitionCollapsing indicates that a collapse transition is in
	// flight.
	TransitionCollapsing

	// TransitionExpanding indicates that an expand transition is in
	// flight.
	TransitionExpanding
)

// CollapseInfo is the payload carried in [events.Base.Data] by the
// [events.BeforeCollapse], [events.Collapse], [events.BeforeExpand],
// [events.Expand], [events.BeforeFloat], [events.Float], and
// [events.SlideOut] notifications of a [Panel]. Canceling a Before*
// event aborts the operation before any state changes.
type CollapseInfo struct {

	// Panel is the panel transitioning.
	Panel *Panel

	// Direction is the side the panel collapses toward.
	Direction styles.Side

	// Animate is whether the transition animates over time.
	Animate bool
}

// Collapse collapses the panel toward the given side, or toward
// [Panel.CollapseDirection] when none is given. The styled dimensions
// are remembered so that [Panel.Expand] restores them exactly. While a
// transition is already in flight, or the panel is already collapsed,
// Collapse is a no-op; conflicting requests are dropped, not queued.
// Canceling the [events.BeforeCollapse] event aborts the collapse with
// no state changed.
func (p *Panel) Collapse(dir ...styles.Side) {
	d := p.CollapseDirection
	if len(dir) > 0 {
		d = dir[0]
	}
	p.collapse(d, p.collapseDuration())
}

// CollapseAnim is [Panel.Collapse] with an explicit transition
// duration for this one call, overriding [Panel.CollapseDuration] and
// the [AppSettings] default. A non-positive duration collapses without
// animation.
func (p *Panel) CollapseAnim(dir styles.Side, duration time.Duration) {
	p.collapse(dir, max(duration, 0))
}

func (p *Panel) collapse(d styles.Side, dur time.Duration) {
	if p.This == nil {
		return
	}
	p.checkDestroyed()
	if !p.Collapsible {
		slog.Warn("core.Panel.Collapse: panel is not collapsible", "panel", p.String())
		return
	}
	if p.phase != TransitionIdle || p.Is(styles.Collapsed) {
		return
	}
	info := &CollapseInfo{Panel: p, Direction: d, Animate: dur > 0}
	if e := p.sendData(events.BeforeCollapse, info); e.IsCanceled() {
		return
	}
	p.stopTransition()
	start := p.Geom
	p.memento = NewMemento(p)
	p.memento.Capture("Styles.Size.X", "Styles.Size.Y", "Styles.Min.X", "Styles.Min.Y")
	p.collapsedToward = d
	p.SetState(true, styles.Collapsed)
	p.Layout().BeginCollapse(p, d)
	p.phase = TransitionCollapsing
	p.batch(func() {
		re := p.reExpanderFor(d)
		p.hideContent(re)
		p.applyCollapsedStyles(re, start, d)
		if p.CollapseMode == CollapsePlaceholder {
			p.swapInPlaceholder()
		}
		p.NeedsLayout()
	})
	p.settle(deltaGeom(start, p.Geom), dur, func() {
		p.sendData(events.Collapse, info)
	})
}

// Expand restores a collapsed panel to its remembered expanded state:
// the styled dimensions captured at collapse time come back exactly,
// the content the collapse hid is shown again, and in
// [CollapsePlaceholder] mode the panel returns to its former position
// in place of the placeholder. A floated panel expands directly
// without sliding back out first. Canceling the [events.BeforeExpand]
// event aborts the expand with no state changed.
func (p *Panel) Expand() {
	p.expand(p.collapseDuration())
}

// ExpandAnim is [Panel.Expand] with an explicit transition duration
// for this one call, overriding [Panel.CollapseDuration] and the
// [AppSettings] default. A non-positive duration expands without
// animation.
func (p *Panel) ExpandAnim(duration time.Duration) {
	p.expand(max(duration, 0))
}

func (p *Panel) expand(dur time.Duration) {
	if p.This == nil {
		return
	}
	p.checkDestroyed()
	if p.phase != TransitionIdle || !p.Is(styles.Collapsed) {
		return
	}
	info := &CollapseInfo{Panel: p, Direction: p.collapsedToward, Animate: dur > 0}
	if e := p.sendData(events.BeforeExpand, info); e.IsCanceled() {
		return
	}
	p.floatTimer.stop()
	p.stopTransition()
	if p.Is(styles.Floating) && p.Scene != nil && p.Scene.Overlays != nil {
		p.Scene.Overlays.deactivate(&p.ComponentBase)
	}
	start := p.Geom
	p.Layout().BeginExpand(p)
	p.phase = TransitionExpanding
	p.batch(func() {
		if p.placeholder != nil {
			p.swapOutPlaceholder()
		}
		if p.memento != nil {
			p.memento.RestoreAndForget()
		}
		p.SetState(false, styles.Collapsed)
		p.showContent()
		if p.reExpander != nil {
			p.reExpander.Hide()
		}
		p.NeedsLayout()
	})
	p.settle(deltaGeom(start, p.Geom), dur, func() {
		p.sendData(events.Expand, info)
	})
}

// ToggleCollapse collapses or expands the panel depending on its
// current collapsed state.
func (p *Panel) ToggleCollapse() {
	if p.Is(styles.Collapsed) {
		p.Expand()
	} else {
		p.Collapse()
	}
}

// reExpanderFor returns the strip that stays visible while collapsed
// toward the given side: nothing in placeholder mode, the panel's own
// header when its docked orientation matches the collapse dimension,
// and an owned re-expander header docked to that side otherwise.
func (p *Panel) reExpanderFor(d styles.Side) Component {
	if p.CollapseMode == CollapsePlaceholder {
		return nil
	}
	if p.CollapseMode == CollapseDefault && p.Header != nil &&
		!p.Header.Is(styles.Invisible) && p.Header.Styles.Dock.Dim() == d.Dim() {
		return p.Header
	}
	if p.reExpander == nil {
		re := tree.New[*Header]()
		re.SetName("re-expander")
		if p.CollapseMode != CollapseMini {
			re.TitleText.SetText(p.Title)
		}
		re.OnFinal(events.Click, func(e events.Event) {
			p.Expand()
		})
		re.Styles.SetDock(d)
		p.reExpander = re
		p.AddDocked(re)
	} else {
		p.reExpander.Styles.SetDock(d)
		p.reExpander.Show()
	}
	return p.reExpander
}

// hideContent hides every item and docked item except the given
// re-expander, remembering which ones were visible so that only those
// come back on expand.
func (p *Panel) hideContent(except Component) {
	p.hiddenByCollapse = nil
	hide := func(c Component) {
		cb := c.AsComponent()
		if c == except || cb.Is(styles.Invisible) {
			return
		}
		p.hiddenByCollapse = append(p.hiddenByCollapse, c)
		cb.Hide()
	}
	for _, c := range p.Items() {
		hide(c)
	}
	for _, d := range p.DockedItems() {
		hide(d)
	}
}

// showContent shows the items that [Panel.hideContent] hid, skipping
// any that have since been destroyed.
func (p *Panel) showContent() {
	for _, c := range p.hiddenByCollapse {
		cb := c.AsComponent()
		if cb.This == nil || cb.Is(styles.Destroyed) {
			continue
		}
		cb.Show()
	}
	p.hiddenByCollapse = nil
}

// applyCollapsedStyles sets the collapsed geometry styling: no minimum
// along the collapse dimension, the re-expander extent as the size
// along it, and the cross dimension pinned to its laid-out extent when
// it was shrink-wrapped.
func (p *Panel) applyCollapsedStyles(re Component, start Geom, d styles.Side) {
	dim := d.Dim()
	cross := dim.Other()
	p.Styles.Min.SetDim(dim, 0)
	p.Styles.Size.SetDim(dim, collapsedExtent(re, dim))
	if !p.Styles.IsFixed(cross) && start.Size.Dim(cross) > 0 {
		p.Styles.Size.SetDim(cross, start.Size.Dim(cross))
	}
}

// collapsedExtent returns the thickness of the collapsed panel along
// the collapse dimension: the re-expander extent, or zero when
// everything hides behind a placeholder.
func collapsedExtent(re Component, dim math32.Dims) float32 {
	if re == nil {
		return 0
	}
	rb := re.AsComponent()
	if v := rb.Geom.Size.Dim(dim); v > 0 {
		return v
	}
	if v := rb.Styles.Size.Dim(dim); v > 0 {
		return v
	}
	if v := rb.Styles.Min.Dim(dim); v > 0 {
		return v
	}
	return TextLineHeight
}

// settle runs the animator over the given geometry delta and finishes
// the transition: the phase returns to idle and then fun runs. A panel
// destroyed mid-transition abandons the continuation silently.
func (p *Panel) settle(delta Geom, duration time.Duration, fun func()) {
	done := func() {
		if p.This == nil || p.Is(styles.Destroyed) {
			return
		}
		p.phase = TransitionIdle
		p.cancelTransition = nil
		fun()
	}
	p.cancelTransition = p.animator().Animate(p.This.(Component), delta, duration, done)
}

// stopTransition cancels any in-flight geometry transition without
// running its continuation.
func (p *Panel) stopTransition() {
	if p.cancelTransition != nil {
		p.cancelTransition()
		p.cancelTransition = nil
	}
}

// animator returns the scene's [Animator], or an [ImmediateAnimator]
// outside any scene.
func (p *Panel) animator() Animator {
	if p.Scene != nil && p.Scene.Animator != nil {
		return p.Scene.Animator
	}
	return ImmediateAnimator{}
}

// collapseDuration resolves the transition duration for this panel:
// its own [Panel.CollapseDuration] when positive, the [AppSettings]
// default when zero, and no animation when negative.
func (p *Panel) collapseDuration() time.Duration {
	d := p.CollapseDuration
	if d == 0 {
		d = AppSettings.CollapseDuration
	}
	if d < 0 {
		d = 0
	}
	return d
}

// deltaGeom returns the geometry change from one box to another.
func deltaGeom(from, to Geom) Geom {
	return Geom{Pos: to.Pos.Sub(from.Pos), Size: to.Size.Sub(from.Size)}
}
