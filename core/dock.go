// Copyright (c) 2025, Tessera Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"log/slog"
	"slices"

	"tessera.dev/tessera/events"
	"tessera.dev/tessera/styles"
	"tessera.dev/tessera/tree"
)

// Dockable is an interface for containers that expose the docked items
// sub-collection: components pinned to the container's edges, outside
// the main items sequence. [Container] and everything embedding it
// (notably [Panel], whose header is a docked item) implement it.
type Dockable interface {
	Containerer

	// DockedItems returns the docked items, in docking order.
	DockedItems() []Component

	// AddDocked adds the given items as docked items.
	AddDocked(items ...any) []Component

	// RemoveDocked removes the given docked item, accepting a
	// [Component] or its name.
	RemoveDocked(item any, autoDestroy ...bool) bool
}

// DockedItems returns the container's docked items, in docking order.
// The returned slice is a copy; use [Container.AddDocked] and
// [Container.RemoveDocked] to change the collection.
func (ct *Container) DockedItems() []Component {
	return slices.Clone(ct.docked)
}

// AddDocked adds the given items as docked items pinned to the
// container's edges, accepting [Component] and [Config] values like
// [Container.Add]. The edge each item docks to comes from its
// [styles.Style.Dock] side (Top by default). Docked items are not part
// of the items sequence: their extent is carved from the container's
// edges in docking order before the main items are placed, leading
// sides (Top, Left) ahead of the content and trailing sides after it.
// A container still on the default [AutoLayout] strategy is upgraded
// to a [DockLayout] on the first docked add; other strategies must be
// dock-aware themselves. Like Add, it fires the cancellable
// [events.BeforeAdd] per item and returns the items actually added.
func (ct *Container) AddDocked(items ...any) []Component {
	ct.checkDestroyed()
	added := make([]Component, 0, len(items))
	ct.batch(func() {
		for _, it := range items {
			c := ct.normalize(it)
			cb := c.AsComponent()
			cb.checkDestroyed()
			if be := ct.sendData(events.BeforeAdd, c); be.IsCanceled() {
				continue
			}
			detachFromOwner(c)
			if cb.Is(styles.Detached) {
				cb.SetState(false, styles.Detached)
				if cb.Scene != nil {
					cb.Scene.dropDetached(c)
				}
			}
			cb.Styles.Docked = true
			// docking needs a dock-aware strategy; upgrade the default
			if _, auto := ct.Layout().(*AutoLayout); auto {
				ct.SetLayout(&DockLayout{})
			}
			ct.docked = append(ct.docked, c)
			tree.InitNode(c)
			tree.SetParent(c, ct)
			if ct.Scene != nil && ct.Scene.Renderer != nil {
				ct.Scene.Renderer.Mount(c)
			}
			ct.Layout().OnAdd(c)
			ct.requestLayout()
			ct.sendData(events.Add, c)
			added = append(added, c)
		}
	})
	return added
}

// RemoveDocked removes the given docked item, accepting a [Component]
// or its name, resolving only among the docked items. It reports
// whether the removal happened, with the same destroy-or-detach and
// notification behavior as [Container.Remove].
func (ct *Container) RemoveDocked(item any, autoDestroy ...bool) bool {
	ct.checkDestroyed()
	c := ct.resolveDocked(item)
	if c == nil {
		slog.Warn("core.Container.RemoveDocked: item is not docked in this container", "container", ct.String(), "item", item)
		return false
	}
	return ct.Remove(c, autoDestroy...)
}

// resolveDocked resolves a [Container.RemoveDocked] argument among the
// docked items only, returning nil if it is not one of them.
func (ct *Container) resolveDocked(item any) Component {
	switch x := item.(type) {
	case string:
		for _, d := range ct.docked {
			if d.AsTree().Name == x {
				return d
			}
		}
	case Component:
		if slices.Index(ct.docked, x) >= 0 {
			return x
		}
	}
	return nil
}

// dockedPartition splits the docked items into those on leading sides
// (Top, Left), which come before the main content, and those on
// trailing sides, which come after it, preserving docking order within
// each group.
func (ct *Container) dockedPartition() (leading, trailing []Component) {
	for _, d := range ct.docked {
		if d.AsComponent().Styles.Dock.IsLeading() {
			leading = append(leading, d)
		} else {
			trailing = append(trailing, d)
		}
	}
	return leading, trailing
}
