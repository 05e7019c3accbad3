// Copyright (c) 2025, Tessera Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"tessera.dev/tessera/math32"
	"tessera.dev/tessera/styles"
	"tessera.dev/tessera/tree"
)

// Layouter is the interface for layout strategies: the pluggable
// algorithms that compute child geometry for a [Container]. A strategy
// is bound to exactly one container at a time; the binding is managed
// by [Container.SetLayout] and never self-assigned.
type Layouter interface {

	// Container returns the container this strategy is bound to, or
	// nil when the strategy is unbound.
	Container() *Container

	// SetContainer binds the strategy to the given container,
	// or unbinds it when given nil. Only [Container.SetLayout]
	// should call this.
	SetContainer(ct *Container)

	// OnAdd is called after a component has been inserted into the
	// container's items, before the add notification fires.
	OnAdd(c Component)

	// OnRemove is called after a component has been removed from the
	// container's items, before the remove notification fires.
	OnRemove(c Component)

	// BeginCollapse is called when a [Panel] using this strategy
	// starts collapsing toward the given side, before any geometry
	// changes.
	BeginCollapse(p *Panel, dir styles.Side)

	// BeginExpand is called when a [Panel] using this strategy starts
	// expanding, before any geometry changes.
	BeginExpand(p *Panel)

	// Run computes and assigns the geometry of the container's items
	// (and docked items, for strategies that understand docking)
	// within the container's current box.
	Run()
}

// LayoutBase provides the binding state and no-op lifecycle hooks
// shared by all layout strategies. Concrete strategies embed it and
// implement [Layouter.Run].
type LayoutBase struct {

	// Initialized is whether the strategy has ever been bound to a
	// container and prepared.
	Initialized bool

	// ct is the container this strategy computes geometry for.
	ct *Container
}

func (lb *LayoutBase) Container() *Container {
	return lb.ct
}

func (lb *LayoutBase) SetContainer(ct *Container) {
	lb.ct = ct
	if ct != nil {
		lb.Initialized = true
	}
}

func (lb *LayoutBase) OnAdd(c Component) {}

func (lb *LayoutBase) OnRemove(c Component) {}

func (lb *LayoutBase) BeginCollapse(p *Panel, dir styles.Side) {}

func (lb *LayoutBase) BeginExpand(p *Panel) {}

// AutoLayout is the default layout strategy: it stacks every visible
// item at the container's origin, honoring only order (later items
// paint over earlier ones). A container that is never given another
// strategy materializes an AutoLayout lazily on the first access to
// [Container.Layout].
type AutoLayout struct {
	LayoutBase
}

func (al *AutoLayout) Run() {
	ct := al.Container()
	if ct == nil {
		return
	}
	ct.forVisibleItems(func(i int, c Component, cb *ComponentBase) bool {
		cb.Geom.Pos = ct.Geom.Pos
		return tree.Continue
	})
}

// BoxLayout stacks visible items sequentially along the container's
// [styles.Style.Direction], separated by [styles.Style.Gap]. Extra
// space along that dimension is distributed to items in proportion to
// their [styles.Style.Grow]; in the cross dimension, items with a
// nonzero Grow stretch to the container's extent.
type BoxLayout struct {
	LayoutBase
}

func (bl *BoxLayout) Run() {
	ct := bl.Container()
	if ct == nil {
		return
	}
	bl.run(ct.Geom)
}

// run stacks the container's visible items within the given box.
func (bl *BoxLayout) run(box Geom) {
	ct := bl.Container()
	s := &ct.Styles
	dim := s.Direction.Dim()
	cross := dim.Other()
	gap := s.Gap

	var total, grow float32
	n := 0
	ct.forVisibleItems(func(i int, c Component, cb *ComponentBase) bool {
		total += cb.Geom.Size.Dim(dim)
		grow += cb.Styles.Grow.Dim(dim)
		n++
		return tree.Continue
	})
	if n == 0 {
		return
	}
	total += gap * float32(n-1)
	extra := box.Size.Dim(dim) - total
	if extra < 0 || grow == 0 {
		extra = 0
	}

	pos := box.Pos
	ct.forVisibleItems(func(i int, c Component, cb *ComponentBase) bool {
		sz := cb.Geom.Size
		if extra > 0 {
			if g := cb.Styles.Grow.Dim(dim); g > 0 {
				sz.SetDim(dim, sz.Dim(dim)+extra*g/grow)
			}
		}
		if cb.Styles.Grow.Dim(cross) > 0 {
			sz.SetDim(cross, box.Size.Dim(cross))
		}
		cb.Geom.Size = sz
		cb.Geom.Pos = pos
		pos.SetDim(dim, pos.Dim(dim)+sz.Dim(dim)+gap)
		return tree.Continue
	})
}

// DockLayout first carves the container's visible docked items from
// the edges of its box, in docked sequence order: each takes its own
// extent from its [styles.Style.Dock] side and spans the full
// remaining cross extent, shrinking the box accordingly. The items
// then stack in the remaining body box exactly like [BoxLayout].
// [Panel] uses DockLayout so that its header occupies the docked edge
// and its items fill the body.
type DockLayout struct {
	BoxLayout
}

func (dl *DockLayout) Run() {
	ct := dl.Container()
	if ct == nil {
		return
	}
	body := ct.Geom
	for _, c := range ct.docked {
		cb := c.AsComponent()
		if cb.Is(styles.Invisible) {
			continue
		}
		side := cb.Styles.Dock
		dim := side.Dim()
		ext := cb.Geom.Size.Dim(dim)
		cb.Geom.Size.SetDim(dim.Other(), body.Size.Dim(dim.Other()))
		if side.IsLeading() {
			cb.Geom.Pos = body.Pos
			body.Pos.SetDim(dim, body.Pos.Dim(dim)+ext)
		} else {
			pos := body.Pos
			pos.SetDim(dim, pos.Dim(dim)+body.Size.Dim(dim)-ext)
			cb.Geom.Pos = pos
		}
		body.Size.SetDim(dim, math32.Max(0, body.Size.Dim(dim)-ext))
	}
	dl.run(body)
}

// Container geometry hooks, driven by the layout pipeline:

// SizeUp for a container first sizes its docked items and floating
// components (which are not part of Children and so are missed by the
// bottom-up walk), then resolves its own size: styled dimensions are
// taken as given, and unset (zero) dimensions shrink-wrap the content
// extent, capped by Max.
func (ct *Container) SizeUp() {
	for _, d := range ct.docked {
		sizeUpTree(d)
	}
	for _, f := range ct.floating {
		sizeUpTree(f)
	}
	ct.ComponentBase.SizeUp()
	content := ct.contentSize()
	sz := &ct.Geom.Size
	for d := math32.X; d <= math32.Y; d++ {
		if ct.Styles.IsFixed(d) {
			continue
		}
		v := math32.Max(sz.Dim(d), content.Dim(d))
		if mx := ct.Styles.Max.Dim(d); mx > 0 {
			v = math32.Min(v, mx)
		}
		sz.SetDim(d, v)
	}
}

// contentSize returns the extent of the container's visible content:
// items stacked along the layout direction separated by Gap, plus the
// edges carved by visible docked items.
func (ct *Container) contentSize() math32.Vector2 {
	dim := ct.Styles.Direction.Dim()
	cross := dim.Other()
	var main, crossMax float32
	n := 0
	ct.forVisibleItems(func(i int, c Component, cb *ComponentBase) bool {
		main += cb.Geom.Size.Dim(dim)
		crossMax = math32.Max(crossMax, cb.Geom.Size.Dim(cross))
		n++
		return tree.Continue
	})
	if n > 1 {
		main += ct.Styles.Gap * float32(n-1)
	}
	var sz math32.Vector2
	sz.SetDim(dim, main)
	sz.SetDim(cross, crossMax)
	for _, d := range ct.docked {
		db := d.AsComponent()
		if db.Is(styles.Invisible) {
			continue
		}
		sd := db.Styles.Dock.Dim()
		sz.SetDim(sd, sz.Dim(sd)+db.Geom.Size.Dim(sd))
		od := sd.Other()
		sz.SetDim(od, math32.Max(sz.Dim(od), db.Geom.Size.Dim(od)))
	}
	return sz
}

// Position computes the geometry of the container's contents by
// running the layout strategy within the container's current box.
func (ct *Container) Position() {
	if ct.This == nil {
		return
	}
	ct.Layout().Run()
}
