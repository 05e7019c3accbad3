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

// CollapseModes are the ways a [Panel] can present itself while
// collapsed.
type CollapseModes int32 //enums:enum

const (
	// CollapseDefault keeps the collapsed panel in place, shrunk along
	// the collapse dimension to its re-expander strip.
	CollapseDefault CollapseModes = iota

	// CollapseMini keeps the collapsed panel in place like
	// CollapseDefault, but the re-expander is a minimal strip without
	// the title.
	CollapseMini

	// CollapsePlaceholder removes the collapsed panel from its owner
	// entirely and swaps a [Placeholder] in at its former position.
	CollapsePlaceholder
)

// Panel is a [Container] with a docked [Header] and a collapse state
// machine. A collapsible panel can shrink toward one of its sides,
// remembering its expanded dimensions so that [Panel.Expand] restores
// them exactly; in [CollapsePlaceholder] mode it leaves its owner
// entirely and a [Placeholder] stands in for it, from which it can
// float back over the body transiently (see [Panel.FloatCollapsed]).
// All transitions run through the scene's [Animator] and notify
// through the Before/after event pairs with a [CollapseInfo] payload.
type Panel struct {
	Container

	// Title is the panel title displayed in the header.
	// Use [Panel.SetTitle] so the header text stays in sync.
	Title string `set:"-"`

	// Collapsible is whether the panel can collapse. It defaults to
	// false; [Panel.Collapse] on a non-collapsible panel is a warning
	// no-op.
	Collapsible bool

	// CollapseMode is how the panel presents itself while collapsed.
	CollapseMode CollapseModes

	// CollapseDirection is the side the panel collapses toward when
	// [Panel.Collapse] is called without an explicit side. It defaults
	// to [styles.Top].
	CollapseDirection styles.Side

	// Floatable is whether the panel, while collapsed in
	// [CollapsePlaceholder] mode, can float over the body when its
	// placeholder is clicked. It defaults to true.
	Floatable bool

	// TitleCollapse is whether clicking anywhere on the header toggles
	// the collapsed state, in addition to the collapse [Tool]. It
	// defaults to false.
	TitleCollapse bool

	// CollapseDuration is the duration of collapse, expand, and float
	// transitions. Zero means the [AppSettings] default; a negative
	// value disables animation for this panel.
	CollapseDuration time.Duration

	// Header is the docked title strip of the panel, created in Init.
	// It doubles as the collapsed re-expander when its docked
	// orientation matches the collapse side.
	Header *Header `json:"-" xml:"-" set:"-"`

	// CollapseTool is the collapse toggle in the header.
	CollapseTool *Tool `json:"-" xml:"-" set:"-"`

	// reExpander is the owned strip synthesized for collapse sides the
	// header cannot serve, and for [CollapseMini].
	reExpander *Header

	// placeholder stands in for the panel while it is collapsed in
	// [CollapsePlaceholder] mode.
	placeholder *Placeholder

	// phase is the transition currently in flight.
	phase TransitionPhases

	// collapsedToward is the side of the current collapsed state.
	collapsedToward styles.Side

	// memento preserves the styled dimensions across a collapse so
	// that expand restores them exactly.
	memento *Memento

	// hiddenByCollapse are the items the collapse hid, so that expand
	// reveals only those and not items the user had hidden already.
	hiddenByCollapse []Component

	// cancelTransition stops the in-flight geometry transition.
	cancelTransition func()

	// floatTimer schedules the slide-out of a floated panel after the
	// pointer leaves it.
	floatTimer transitionTimer
}

func (p *Panel) Init() {
	p.Container.Init()
	p.CollapseDirection = styles.Top
	p.Floatable = true
	p.SetLayout(&DockLayout{})
	p.Styler(func(s *styles.Style) {
		s.Direction = styles.Column
	})
	p.On(events.MouseLeave, func(e events.Event) {
		if p.Is(styles.Floating) && p.Is(styles.Collapsed) {
			p.floatTimer.start(floatHoverDelay(), p.SlideOutFloated)
		}
	})
	p.On(events.MouseEnter, func(e events.Event) {
		p.floatTimer.stop()
	})
	p.makeHeader()
}

// makeHeader builds the docked header with the title text and the
// collapse tool.
func (p *Panel) makeHeader() {
	hd := tree.New[*Header]()
	hd.SetName("header")
	hd.TitleText.SetText(p.Title)
	hd.OnFinal(events.Click, func(e events.Event) {
		if p.TitleCollapse && p.Collapsible {
			p.ToggleCollapse()
		}
	})
	p.Header = hd
	tl := NewTool(hd)
	tl.SetName("collapse-tool")
	tl.OnFinal(events.Click, func(e events.Event) {
		if p.Collapsible {
			p.ToggleCollapse()
		}
		e.SetHandled()
	})
	p.CollapseTool = tl
	p.AddDocked(hd)
}

// SetTitle sets [Panel.Title] and updates the header text.
func (p *Panel) SetTitle(title string) *Panel {
	p.Title = title
	if p.Header != nil && p.Header.TitleText != nil {
		p.Header.TitleText.SetText(title)
	}
	return p
}

// IsCollapsed returns whether the panel is currently collapsed,
// including while floated over the body.
func (p *Panel) IsCollapsed() bool {
	return p.Is(styles.Collapsed)
}

// CollapsedToward returns the side the panel is collapsed toward. It
// is meaningful only while [Panel.IsCollapsed].
func (p *Panel) CollapsedToward() styles.Side {
	return p.collapsedToward
}

// Phase returns the transition phase currently in flight.
func (p *Panel) Phase() TransitionPhases {
	return p.phase
}

// Placeholder returns the [Placeholder] currently standing in for the
// panel, or nil when the panel is not placeholder-collapsed.
func (p *Panel) Placeholder() *Placeholder {
	return p.placeholder
}

// HideOverlay implements [Overlay]: a floated panel displaced from the
// overlay stack slides back out to its placeholder instead of plain
// hiding.
func (p *Panel) HideOverlay() {
	p.SlideOutFloated()
}

func (p *Panel) Destroy() {
	if p.This == nil || p.Is(styles.Destroyed) {
		return
	}
	p.floatTimer.stop()
	p.stopTransition()
	if ph := p.placeholder; ph != nil {
		p.placeholder = nil
		if ow := ph.Owner(); ow != nil {
			ow.Remove(ph, true)
		} else {
			ph.Destroy()
		}
	}
	p.Container.Destroy()
}

// Header is the docked title strip of a [Panel]: the title text plus
// any tools, laid out along its docked edge. It doubles as the
// collapsed re-expander when its orientation matches the collapse
// side.
type Header struct {
	Container

	// TitleText is the text component displaying the title.
	TitleText *Text `json:"-" xml:"-" set:"-"`
}

func (hd *Header) Init() {
	hd.Container.Init()
	hd.SetLayout(&BoxLayout{})
	hd.Styles.SetDock(styles.Top)
	hd.Styler(func(s *styles.Style) {
		dim := s.Dock.Dim()
		if s.Min.Dim(dim) == 0 {
			s.Min.SetDim(dim, TextLineHeight)
		}
		if s.Dock.IsHorizontal() {
			s.Direction = styles.Row
		} else {
			s.Direction = styles.Column
		}
	})
	hd.TitleText = NewText(hd)
	hd.TitleText.SetName("title")
	hd.TitleText.Styler(func(s *styles.Style) {
		s.Grow.Set(1, 0)
	})
}

// Tool is a small interactive leaf for header strips, such as the
// collapse tool of a [Panel].
type Tool struct {
	ComponentBase
}

func (tl *Tool) Init() {
	tl.ComponentBase.Init()
	tl.Styler(func(s *styles.Style) {
		if s.Min.X == 0 {
			s.Min.X = TextLineHeight
		}
		if s.Min.Y == 0 {
			s.Min.Y = TextLineHeight
		}
	})
}
