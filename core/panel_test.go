// Copyright (c) 2025, Tessera Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"tessera.dev/tessera/events"
	"tessera.dev/tessera/math32"
	"tessera.dev/tessera/styles"
)

// collapseFixture builds a fixed-size collapsible panel with one body
// item inside a column container.
func collapseFixture(mode CollapseModes) (sc *Scene, col *Container, p *Panel, body *Text) {
	sc = newTestScene("panel", 300, 400)
	col = NewContainer(sc)
	col.Styles.Size.Set(300, 400)
	col.Styles.Direction = styles.Column
	col.SetLayout(&BoxLayout{})

	p = NewPanel()
	p.SetTitle("Files")
	p.SetCollapsible(true).SetCollapseMode(mode)
	p.Styles.Size.Set(200, 150)
	body = sizedText(50, 20)
	body.SetName("body")
	p.Add(body)
	col.Add(p)
	return sc, col, p, body
}

func TestPanelInitHeader(t *testing.T) {
	p := NewPanel()
	assert.NotNil(t, p.Header)
	assert.Equal(t, "header", p.Header.Name)
	assert.Equal(t, []Component{p.Header}, p.DockedItems())
	assert.True(t, p.Header.Styles.Docked)

	assert.NotNil(t, p.Header.TitleText)
	assert.NotNil(t, p.CollapseTool)
	assert.Equal(t, "collapse-tool", p.CollapseTool.Name)
	assert.Equal(t, []Component{p.Header.TitleText, p.CollapseTool}, p.Header.Items())

	assert.False(t, p.Collapsible)
	assert.True(t, p.Floatable)
	assert.Equal(t, styles.Top, p.CollapseDirection)
	assert.Equal(t, TransitionIdle, p.Phase())
}

func TestPanelSetTitle(t *testing.T) {
	p := NewPanel()
	p.SetTitle("Files")
	assert.Equal(t, "Files", p.Title)
	assert.Equal(t, "Files", p.Header.TitleText.Text)
}

func TestPanelCollapseReusesHeader(t *testing.T) {
	_, _, p, body := collapseFixture(CollapseDefault)
	assert.Equal(t, math32.Vec2(200, 150), p.Geom.Size)

	p.Collapse() // toward Top: the header already runs along that edge
	assert.True(t, p.IsCollapsed())
	assert.Equal(t, styles.Top, p.CollapsedToward())
	assert.Equal(t, TransitionIdle, p.Phase())

	assert.Nil(t, p.reExpander)
	assert.False(t, p.Header.Is(styles.Invisible))
	assert.True(t, body.Is(styles.Invisible))
	assert.Equal(t, math32.Vec2(200, 16), p.Geom.Size)
	assert.Equal(t, math32.Vec2(200, 16), p.Header.Geom.Size)

	p.Expand()
	assert.False(t, p.IsCollapsed())
	assert.False(t, body.Is(styles.Invisible))
	assert.Equal(t, math32.Vec2(200, 150), p.Geom.Size)
}

func TestPanelCollapseSynthesizesReExpander(t *testing.T) {
	_, _, p, body := collapseFixture(CollapseDefault)

	p.Collapse(styles.Left) // the header runs across this edge: synthesize
	assert.True(t, p.IsCollapsed())
	assert.Equal(t, styles.Left, p.CollapsedToward())

	re := p.reExpander
	assert.NotNil(t, re)
	assert.Equal(t, "re-expander", re.Name)
	assert.Equal(t, styles.Left, re.Styles.Dock)
	assert.Equal(t, "Files", re.TitleText.Text)
	assert.False(t, re.Is(styles.Invisible))
	assert.True(t, p.Header.Is(styles.Invisible))
	assert.True(t, body.Is(styles.Invisible))
	assert.Equal(t, math32.Vec2(16, 150), p.Geom.Size)

	p.Expand()
	assert.True(t, re.Is(styles.Invisible))
	assert.False(t, p.Header.Is(styles.Invisible))
	assert.Equal(t, math32.Vec2(200, 150), p.Geom.Size)

	// a second collapse to the same side reuses the strip
	p.Collapse(styles.Left)
	assert.Same(t, re, p.reExpander)
	assert.False(t, re.Is(styles.Invisible))

	// the strip clicks back open
	p.Expand()
	p.Collapse(styles.Left)
	re.Send(events.Click)
	assert.False(t, p.IsCollapsed())
}

func TestPanelCollapseLeftWidthRoundTrip(t *testing.T) {
	_, _, p, _ := collapseFixture(CollapseDefault)
	p.SetCollapseDirection(styles.Left)
	p.Styles.Size.X = 300
	p.Styles.Min.X = 120
	p.Update()
	assert.Equal(t, float32(300), p.Geom.Size.X)

	p.Collapse()
	assert.Equal(t, float32(0), p.Styles.Min.X)
	assert.Equal(t, math32.Vec2(16, 150), p.Geom.Size)

	p.Expand()
	assert.Equal(t, float32(300), p.Styles.Size.X)
	assert.Equal(t, float32(120), p.Styles.Min.X)
	assert.Equal(t, float32(300), p.Geom.Size.X)
}

func TestPanelCollapseMini(t *testing.T) {
	_, _, p, _ := collapseFixture(CollapseMini)

	p.Collapse() // Mini never reuses the header, even toward Top
	re := p.reExpander
	assert.NotNil(t, re)
	assert.Equal(t, "", re.TitleText.Text)
	assert.True(t, p.Header.Is(styles.Invisible))
}

func TestPanelCollapseHiddenHeaderSynthesizes(t *testing.T) {
	_, _, p, _ := collapseFixture(CollapseDefault)
	p.Header.Hide()

	p.Collapse()
	assert.NotNil(t, p.reExpander)
	assert.False(t, p.reExpander.Is(styles.Invisible))

	// the header was hidden by the user, not the collapse: it stays put
	p.Expand()
	assert.True(t, p.Header.Is(styles.Invisible))
}

func TestPanelExpandKeepsUserHiddenItems(t *testing.T) {
	_, _, p, body := collapseFixture(CollapseDefault)
	other := sizedText(50, 20)
	p.Add(other)
	other.Hide()

	p.Collapse()
	p.Expand()
	assert.False(t, body.Is(styles.Invisible))
	assert.True(t, other.Is(styles.Invisible))
}

func TestPanelMementoRestoresExactly(t *testing.T) {
	_, _, p, _ := collapseFixture(CollapseDefault)
	p.Styles.Size.Set(222, 111)
	p.Styles.Min.Set(60, 40)
	p.Update()

	for _, side := range []styles.Side{styles.Top, styles.Right, styles.Bottom, styles.Left} {
		p.Collapse(side)
		assert.True(t, p.IsCollapsed(), side.String())
		assert.Equal(t, side, p.CollapsedToward())

		p.Expand()
		assert.False(t, p.IsCollapsed(), side.String())
		assert.Equal(t, math32.Vec2(222, 111), p.Styles.Size, side.String())
		assert.Equal(t, math32.Vec2(60, 40), p.Styles.Min, side.String())
	}
}

func TestPanelCollapseEvents(t *testing.T) {
	_, _, p, _ := collapseFixture(CollapseDefault)
	rec := recordEvents(&p.ComponentBase,
		events.BeforeCollapse, events.Collapse, events.BeforeExpand, events.Expand)

	var collapsedAtBefore bool
	var info *CollapseInfo
	p.On(events.BeforeCollapse, func(e events.Event) {
		collapsedAtBefore = p.IsCollapsed()
	})
	p.On(events.Collapse, func(e events.Event) {
		info, _ = e.AsBase().Data.(*CollapseInfo)
	})

	p.Collapse(styles.Left)
	assert.False(t, collapsedAtBefore) // before fires before any state change
	assert.Equal(t, []events.Types{events.BeforeCollapse, events.Collapse}, *rec)
	if assert.NotNil(t, info) {
		assert.Same(t, p, info.Panel)
		assert.Equal(t, styles.Left, info.Direction)
		assert.True(t, info.Animate)
	}

	p.Collapse() // already collapsed: nothing fires
	assert.Equal(t, []events.Types{events.BeforeCollapse, events.Collapse}, *rec)

	p.Expand()
	assert.Equal(t, []events.Types{
		events.BeforeCollapse, events.Collapse,
		events.BeforeExpand, events.Expand,
	}, *rec)
}

func TestPanelBeforeCollapseCancel(t *testing.T) {
	_, _, p, body := collapseFixture(CollapseDefault)
	p.On(events.BeforeCollapse, func(e events.Event) { e.Cancel() })
	rec := recordEvents(&p.ComponentBase, events.Collapse)

	p.Collapse()
	assert.False(t, p.IsCollapsed())
	assert.Equal(t, TransitionIdle, p.Phase())
	assert.Equal(t, math32.Vec2(200, 150), p.Styles.Size)
	assert.False(t, body.Is(styles.Invisible))
	assert.Empty(t, *rec)
}

func TestPanelBeforeExpandCancel(t *testing.T) {
	_, _, p, body := collapseFixture(CollapseDefault)
	p.Collapse()
	p.On(events.BeforeExpand, func(e events.Event) { e.Cancel() })

	p.Expand()
	assert.True(t, p.IsCollapsed())
	assert.True(t, body.Is(styles.Invisible))
	assert.Equal(t, float32(16), p.Styles.Size.Y)
}

func TestPanelNotCollapsible(t *testing.T) {
	_, _, p, _ := collapseFixture(CollapseDefault)
	p.SetCollapsible(false)
	rec := recordEvents(&p.ComponentBase, events.BeforeCollapse, events.Collapse)

	p.Collapse()
	assert.False(t, p.IsCollapsed())
	assert.Empty(t, *rec)
}

func TestPanelCollapseToolClick(t *testing.T) {
	_, _, p, _ := collapseFixture(CollapseDefault)

	p.CollapseTool.Send(events.Click)
	assert.True(t, p.IsCollapsed())
	p.CollapseTool.Send(events.Click)
	assert.False(t, p.IsCollapsed())
}

func TestPanelTitleCollapse(t *testing.T) {
	_, _, p, _ := collapseFixture(CollapseDefault)

	p.Header.Send(events.Click)
	assert.False(t, p.IsCollapsed()) // off by default

	p.SetTitleCollapse(true)
	p.Header.Send(events.Click)
	assert.True(t, p.IsCollapsed())
}

func TestPanelTransitionConflictsDropped(t *testing.T) {
	sc, _, p, _ := collapseFixture(CollapseDefault)
	sc.Animator = &SceneAnimator{Scene: sc}
	p.SetCollapseDuration(100 * time.Millisecond)
	rec := recordEvents(&p.ComponentBase, events.Collapse, events.Expand)

	p.Collapse()
	assert.Equal(t, TransitionCollapsing, p.Phase())
	assert.True(t, p.IsCollapsed()) // the state flips eagerly

	p.Expand()   // conflicting request mid-flight: dropped, not queued
	p.Collapse() // duplicate request mid-flight: dropped
	assert.Equal(t, TransitionCollapsing, p.Phase())
	assert.Empty(t, *rec)

	sc.StepAnimations(50 * time.Millisecond)
	assert.Equal(t, float32(83), p.Geom.Size.Y) // halfway from 150 to 16
	assert.Equal(t, TransitionCollapsing, p.Phase())

	sc.StepAnimations(60 * time.Millisecond)
	assert.Equal(t, TransitionIdle, p.Phase())
	assert.Equal(t, float32(16), p.Geom.Size.Y)
	assert.Equal(t, []events.Types{events.Collapse}, *rec)

	// once settled, the next request is accepted
	p.Expand()
	assert.Equal(t, TransitionExpanding, p.Phase())
	sc.StepAnimations(200 * time.Millisecond)
	assert.Equal(t, TransitionIdle, p.Phase())
	assert.Equal(t, float32(150), p.Geom.Size.Y)
	assert.Equal(t, []events.Types{events.Collapse, events.Expand}, *rec)
}

func TestPanelDestroyMidTransition(t *testing.T) {
	sc, _, p, _ := collapseFixture(CollapseDefault)
	sc.Animator = &SceneAnimator{Scene: sc}
	p.SetCollapseDuration(100 * time.Millisecond)
	rec := recordEvents(&p.ComponentBase, events.Collapse)

	p.Collapse()
	p.Destroy()
	assert.NotPanics(t, func() {
		sc.StepAnimations(50 * time.Millisecond)
		sc.StepAnimations(100 * time.Millisecond)
	})
	assert.Empty(t, *rec) // the continuation is abandoned
	assert.Empty(t, sc.Animations)
}

func TestPanelCollapseDurationResolution(t *testing.T) {
	p := NewPanel()
	assert.Equal(t, AppSettings.CollapseDuration, p.collapseDuration())

	p.SetCollapseDuration(50 * time.Millisecond)
	assert.Equal(t, 50*time.Millisecond, p.collapseDuration())

	p.SetCollapseDuration(-1) // negative disables animation
	assert.Equal(t, time.Duration(0), p.collapseDuration())
}

func TestPanelNoAnimateFlag(t *testing.T) {
	_, _, p, _ := collapseFixture(CollapseDefault)
	p.SetCollapseDuration(-1)
	var info *CollapseInfo
	p.On(events.Collapse, func(e events.Event) {
		info, _ = e.AsBase().Data.(*CollapseInfo)
	})

	p.Collapse()
	if assert.NotNil(t, info) {
		assert.False(t, info.Animate)
	}
}

func TestPanelCollapseExpandAnimOverride(t *testing.T) {
	_, _, p, _ := collapseFixture(CollapseDefault)
	var infos []*CollapseInfo
	for _, typ := range []events.Types{events.Collapse, events.Expand} {
		p.On(typ, func(e events.Event) {
			ci, _ := e.AsBase().Data.(*CollapseInfo)
			infos = append(infos, ci)
		})
	}

	// the per-call duration wins over the settings default
	p.CollapseAnim(styles.Left, 0)
	assert.True(t, p.Is(styles.Collapsed))
	if assert.Len(t, infos, 1) {
		assert.Equal(t, styles.Left, infos[0].Direction)
		assert.False(t, infos[0].Animate)
	}

	p.ExpandAnim(40 * time.Millisecond)
	assert.False(t, p.Is(styles.Collapsed))
	if assert.Len(t, infos, 2) {
		assert.True(t, infos[1].Animate)
	}
}

func TestPanelHoverTimerWiring(t *testing.T) {
	prev := AppSettings.FloatHoverDelay
	AppSettings.FloatHoverDelay = time.Hour // never fires during the test
	defer func() { AppSettings.FloatHoverDelay = prev }()

	_, _, p, _ := collapseFixture(CollapsePlaceholder)
	p.Collapse()
	p.FloatCollapsed()
	assert.True(t, p.Is(styles.Floating))

	p.Send(events.MouseLeave)
	assert.NotNil(t, p.floatTimer.timer)

	p.Send(events.MouseEnter)
	assert.Nil(t, p.floatTimer.timer)
}
