// Copyright (c) 2025, Tessera Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"fmt"
	"log/slog"
	"reflect"
	"slices"

	"tessera.dev/tessera/events"
	"tessera.dev/tessera/styles"
	"tessera.dev/tessera/tree"
)

// Containerer is an interface for types that can act as a [Container],
// directly or through embedding, giving access to the child management
// API (Add, Remove, Move, docked items, and the layout strategy).
type Containerer interface {
	AsContainer() *Container
}

// AsContainer returns the given [tree.Node] as a [Container].
// It returns nil if it is not one or if it is nil.
func AsContainer(n tree.Node) *Container {
	if c, ok := n.(Containerer); ok {
		return c.AsContainer()
	}
	return nil
}

// Container is the component type that owns other components and
// mediates all structural mutation of them. It manages three disjoint
// sequences: the main items (stored in Children), the docked items
// pinned to its edges, and the floating components positioned outside
// normal flow. Geometry is computed by a pluggable [Layouter] strategy,
// which is bound to exactly one container at a time and is created
// lazily as an [AutoLayout] on first use.
//
// All structural changes go through the container methods ([Container.Add],
// [Container.Remove], [Container.Move], and friends), which enforce
// exclusive ownership, fire the cancellable Before* notifications, and
// route layout recomputation through the scene's suspension protocol.
type Container struct {
	ComponentBase

	// Defaults are configuration properties shallow-merged into every
	// [Config] this container resolves, without overwriting keys the
	// config already sets itself.
	Defaults map[string]any

	// AutoDestroy is whether removed items are destroyed (true, the
	// default) or detached with their state preserved. An explicit
	// argument to [Container.Remove] overrides it for that call.
	AutoDestroy bool

	// DetachOnRemove is whether detached items are parked in the
	// scene's holding area so they keep their materialized state and
	// can be added somewhere else cheaply. It is on by default; when
	// off, a detached item is simply unmounted and forgotten.
	DetachOnRemove bool

	// layout is the bound layout strategy; access through
	// [Container.Layout], which materializes the default lazily.
	layout Layouter

	// docked items pinned to the container's edges, in docking order.
	// Disjoint from Children; managed by [Container.AddDocked] and
	// [Container.RemoveDocked].
	docked []Component

	// floating components owned by this container but positioned
	// outside its normal flow. Disjoint from Children and docked.
	floating []Component

	// suspended is whether a layout request for this container is
	// currently parked in the scene's pending set.
	suspended bool
}

func (ct *Container) Init() {
	ct.ComponentBase.Init()
	ct.AutoDestroy = true
	ct.DetachOnRemove = true
}

// AsContainer satisfies [Containerer]; it returns the receiver.
func (ct *Container) AsContainer() *Container { return ct }

// Layout returns the container's layout strategy, creating the default
// [AutoLayout] on first access if none has been set.
func (ct *Container) Layout() Layouter {
	if ct.layout == nil {
		ct.SetLayout(&AutoLayout{})
	}
	return ct.layout
}

// SetLayout binds the given layout strategy to this container.
// A strategy belongs to exactly one container: any previous strategy
// of this container is unbound, and if the given strategy is currently
// bound to another container, it is taken from it. Passing nil just
// unbinds the current strategy.
func (ct *Container) SetLayout(l Layouter) *Container {
	if ct.layout == l {
		return ct
	}
	if ct.layout != nil {
		ct.layout.SetContainer(nil)
	}
	if l != nil {
		if prev := l.Container(); prev != nil && prev != ct {
			prev.layout = nil
		}
		l.SetContainer(ct)
	}
	ct.layout = l
	return ct
}

// Items returns the container's current items as components.
// The returned slice is a copy; all structural changes go through
// [Container.Add], [Container.Remove], and related methods.
func (ct *Container) Items() []Component {
	res := make([]Component, 0, len(ct.Children))
	for _, k := range ct.Children {
		if c, ok := k.(Component); ok {
			res = append(res, c)
		}
	}
	return res
}

// FloatingItems returns the container's floating components, in the
// order they started floating. The returned slice is a copy.
func (ct *Container) FloatingItems() []Component {
	return slices.Clone(ct.floating)
}

// Add adds the given items to the end of the container's items,
// accepting both [Component] and [Config] values. It returns the
// components actually added; items whose [events.BeforeAdd] was
// canceled are skipped. Adding a nil item panics. Bulk adds are
// batched through the scene's suspension protocol, so they trigger at
// most one layout recomputation.
func (ct *Container) Add(items ...any) []Component {
	return ct.AddAt(ct.NumChildren(), items...)
}

// AddAt adds the given items to the container's items starting at the
// given index, which is clamped into range. See [Container.Add].
func (ct *Container) AddAt(index int, items ...any) []Component {
	ct.checkDestroyed()
	if index < 0 {
		index = 0
	}
	if n := ct.NumChildren(); index > n {
		index = n
	}
	added := make([]Component, 0, len(items))
	ct.batch(func() {
		for _, it := range items {
			c := ct.normalize(it)
			floating := c.AsComponent().Is(styles.Floating)
			if !ct.addOne(index, c) {
				continue
			}
			added = append(added, c)
			if !floating {
				index++
			}
		}
	})
	return added
}

// Insert adds the given component to the container's items at the
// given index. It returns the component, or nil if its
// [events.BeforeAdd] was canceled.
func (ct *Container) Insert(index int, c Component) Component {
	res := ct.AddAt(index, c)
	if len(res) == 0 {
		return nil
	}
	return res[0]
}

// addOne adds one normalized component: the cancellable before-event,
// detach from any previous owner, insertion into the items sequence or
// the floating set, renderer mount, the layout hook and request, and
// the after-event, in that order. It reports whether the add happened.
func (ct *Container) addOne(index int, c Component) bool {
	cb := c.AsComponent()
	cb.checkDestroyed()
	if be := ct.sendData(events.BeforeAdd, c); be.IsCanceled() {
		return false
	}
	detachFromOwner(c)
	if cb.Is(styles.Detached) {
		cb.SetState(false, styles.Detached)
		if cb.Scene != nil {
			cb.Scene.dropDetached(c)
		}
	}
	if cb.Is(styles.Floating) {
		ct.floating = append(ct.floating, c)
		tree.InitNode(c)
		tree.SetParent(c, ct)
	} else {
		cb.Styles.Docked = false // may have been docked elsewhere before
		ct.InsertChild(c, min(index, ct.NumChildren()))
	}
	if ct.Scene != nil && ct.Scene.Renderer != nil {
		ct.Scene.Renderer.Mount(c)
	}
	ct.Layout().OnAdd(c)
	ct.requestLayout()
	ct.sendData(events.Add, c)
	return true
}

// normalize resolves an item passed to [Container.Add] to a concrete
// component: [Component] values pass through, [Config] values are
// constructed through the types registry with the container's Defaults
// merged in. A nil item is a fatal configuration error and panics.
func (ct *Container) normalize(item any) Component {
	if item == nil {
		panic("core: nil item added to container: " + ct.String())
	}
	switch x := item.(type) {
	case Component:
		if rv := reflect.ValueOf(x); rv.Kind() == reflect.Pointer && rv.IsNil() {
			panic("core: nil item added to container: " + ct.String())
		}
		return x
	case Config:
		return ct.resolveConfig(x)
	case *Config:
		if x == nil {
			panic("core: nil item added to container: " + ct.String())
		}
		return ct.resolveConfig(*x)
	}
	panic(fmt.Sprintf("core: invalid item type %T added to container %s", item, ct.String()))
}

// detachFromOwner removes the component from its current owner so a
// new owner can take it, keeping exclusive ownership. The previous
// owner gets an [events.Remove] notification and a layout request, but
// no cancellable before-event: the detach happens on behalf of the
// add that is already underway.
func detachFromOwner(c Component) {
	cb := c.AsComponent()
	prev := cb.Owner()
	if prev == nil {
		cb.Parent = nil
		return
	}
	prev.detachChild(c)
	prev.requestLayout()
	prev.sendData(events.Remove, c)
}

// Move moves the item at the given index to the given new index
// without destroying it, triggering one layout recomputation and an
// [events.Move] notification. It returns the moved component. An out
// of range fromIndex is a silent no-op returning nil; toIndex is
// clamped into range, and nothing happens if the two resolve to the
// same position.
func (ct *Container) Move(fromIndex, toIndex int) Component {
	ct.checkDestroyed()
	n := ct.NumChildren()
	if fromIndex < 0 || fromIndex >= n {
		return nil
	}
	if toIndex < 0 {
		toIndex = 0
	}
	if toIndex >= n {
		toIndex = n - 1
	}
	if fromIndex == toIndex {
		return nil
	}
	ct.Children = tree.Move(ct.Children, fromIndex, toIndex)
	c, _ := ct.Children[toIndex].(Component)
	ct.requestLayout()
	ct.sendData(events.Move, c)
	return c
}

// Remove removes the given item, accepting either a [Component] or its
// name. The item is destroyed when [Container.AutoDestroy] is set (or
// per the explicit autoDestroy argument when given); otherwise it is
// detached, keeping its state for later reuse. Remove reports whether
// the removal happened: removing an item the container does not own
// logs a warning and returns false, and a canceled
// [events.BeforeRemove] returns false with nothing changed.
func (ct *Container) Remove(item any, autoDestroy ...bool) bool {
	ct.checkDestroyed()
	c := ct.resolveItem(item)
	if c == nil {
		slog.Warn("core.Container.Remove: item is not owned by this container", "container", ct.String(), "item", item)
		return false
	}
	if be := ct.sendData(events.BeforeRemove, c); be.IsCanceled() {
		return false
	}
	if cct := AsContainer(c); cct != nil && ct.Scene != nil {
		ct.Scene.cancelPending(cct)
	}
	destroy := ct.AutoDestroy
	if len(autoDestroy) > 0 {
		destroy = autoDestroy[0]
	}
	if destroy {
		ct.detachChild(c)
		c.Destroy()
	} else {
		ct.detachKeep(c)
	}
	ct.requestLayout()
	ct.sendData(events.Remove, c)
	return true
}

// RemoveAll removes every item from the container, batching through
// the suspension protocol so that one layout recomputation runs
// regardless of the number of items. Items whose [events.BeforeRemove]
// was canceled stay.
func (ct *Container) RemoveAll(autoDestroy ...bool) {
	ct.checkDestroyed()
	ct.batch(func() {
		for i := ct.NumChildren() - 1; i >= 0; i-- {
			if c, ok := ct.Children[i].(Component); ok {
				ct.Remove(c, autoDestroy...)
			}
		}
	})
}

// resolveItem resolves a [Container.Remove] argument to a component
// the container actually owns, searching its items, docked items, and
// floating components. It returns nil if the item is not found.
func (ct *Container) resolveItem(item any) Component {
	switch x := item.(type) {
	case string:
		if c := ct.GetComponent(x); c != nil {
			return c
		}
		for _, f := range ct.floating {
			if f.AsTree().Name == x {
				return f
			}
		}
	case Component:
		if ct.owns(x) {
			return x
		}
	}
	return nil
}

// owns reports whether the given component is currently one of the
// container's items, docked items, or floating components.
func (ct *Container) owns(c Component) bool {
	if tree.IndexOf(ct.Children, c) >= 0 {
		return true
	}
	return slices.Index(ct.docked, c) >= 0 || slices.Index(ct.floating, c) >= 0
}

// detachChild removes the component from whichever of the container's
// sequences holds it, clears its parent, unmounts it from the
// renderer, and notifies the layout strategy. No events are sent and
// the component is not destroyed; it reports whether the component was
// found.
func (ct *Container) detachChild(c Component) bool {
	cb := c.AsComponent()
	found := false
	if i := tree.IndexOf(ct.Children, c); i >= 0 {
		ct.Children = slices.Delete(ct.Children, i, i+1)
		found = true
	} else if i := slices.Index(ct.docked, c); i >= 0 {
		ct.docked = slices.Delete(ct.docked, i, i+1)
		found = true
	} else if i := slices.Index(ct.floating, c); i >= 0 {
		ct.floating = slices.Delete(ct.floating, i, i+1)
		found = true
	}
	if !found {
		return false
	}
	cb.Parent = nil
	if ct.Scene != nil && ct.Scene.Renderer != nil {
		ct.Scene.Renderer.Unmount(c)
	}
	if ct.layout != nil {
		ct.layout.OnRemove(c)
	}
	return true
}

// detachKeep detaches the component without destroying it, marking it
// [styles.Detached] and parking it in the scene's holding area, keyed
// by its path at detach time, when [Container.DetachOnRemove] is set.
func (ct *Container) detachKeep(c Component) {
	cb := c.AsComponent()
	path := cb.Path()
	sc := ct.Scene
	ct.detachChild(c)
	cb.SetState(true, styles.Detached)
	if sc != nil && ct.DetachOnRemove {
		sc.addDetached(path, c)
	}
}

// detachAll detaches every item, docked item, and floating component,
// keeping their state. Used by [Container.Destroy] when
// [Container.AutoDestroy] is off.
func (ct *Container) detachAll() {
	for ct.NumChildren() > 0 {
		c, ok := ct.Children[0].(Component)
		if !ok {
			ct.Children = slices.Delete(ct.Children, 0, 1)
			continue
		}
		ct.detachKeep(c)
	}
	for len(ct.docked) > 0 {
		ct.detachKeep(ct.docked[0])
	}
	for len(ct.floating) > 0 {
		ct.detachKeep(ct.floating[0])
	}
}

// GetComponent returns the component with the given name among the
// container's items and docked items, or nil if there is none. It does
// not descend into children; see [Container.Down] for deep search.
func (ct *Container) GetComponent(name string) Component {
	if i := tree.IndexByName(ct.Children, name); i >= 0 {
		if c, ok := ct.Children[i].(Component); ok {
			return c
		}
	}
	for _, d := range ct.docked {
		if d.AsTree().Name == name {
			return d
		}
	}
	return nil
}

// NextChild returns the first item after the given one in the items
// sequence that matches the given selector (empty matches anything;
// see [Container.Query] for the grammar), or nil if there is none or
// the given component is not an item.
func (ct *Container) NextChild(c Component, selector string) Component {
	idx := tree.IndexOf(ct.Children, c)
	if idx < 0 {
		return nil
	}
	for i := idx + 1; i < len(ct.Children); i++ {
		if k, ok := ct.Children[i].(Component); ok && matchesSelector(k, selector) {
			return k
		}
	}
	return nil
}

// PrevChild returns the first item before the given one in the items
// sequence that matches the given selector, searching backward from
// the position just before the given component, or nil if there is
// none.
func (ct *Container) PrevChild(c Component, selector string) Component {
	idx := tree.IndexOf(ct.Children, c)
	if idx < 0 {
		return nil
	}
	for i := idx - 1; i >= 0; i-- {
		if k, ok := ct.Children[i].(Component); ok && matchesSelector(k, selector) {
			return k
		}
	}
	return nil
}

// forVisibleItems calls the given function for each item that
// participates in layout (everything not Invisible), with the item's
// index in the items sequence. The function returns [tree.Continue] to
// keep iterating.
func (ct *Container) forVisibleItems(fun func(i int, c Component, cb *ComponentBase) bool) {
	for i, k := range ct.Children {
		c, ok := k.(Component)
		if !ok {
			continue
		}
		cb := c.AsComponent()
		if cb.Is(styles.Invisible) || cb.Is(styles.Destroyed) {
			continue
		}
		if !fun(i, c, cb) {
			break
		}
	}
}

// moveToFloating moves the given item from the items sequence to the
// floating set, keeping it parented. Layout is the caller's concern.
func (ct *Container) moveToFloating(c Component) {
	if i := tree.IndexOf(ct.Children, c); i >= 0 {
		ct.Children = slices.Delete(ct.Children, i, i+1)
	}
	if slices.Index(ct.floating, c) < 0 {
		ct.floating = append(ct.floating, c)
	}
}

// moveFromFloating moves the given item from the floating set back to
// the end of the items sequence.
func (ct *Container) moveFromFloating(c Component) {
	if i := slices.Index(ct.floating, c); i >= 0 {
		ct.floating = slices.Delete(ct.floating, i, i+1)
	}
	if tree.IndexOf(ct.Children, c) < 0 {
		ct.Children = append(ct.Children, c)
	}
}

// requestLayout asks for a recomputation of this container's geometry:
// run synchronously when layouts are not suspended, otherwise parked
// in the scene's pending set (deduplicated, in request order) until
// the matching resume flushes. A container outside any scene lays
// itself out directly.
func (ct *Container) requestLayout() {
	if ct.This == nil || ct.Is(styles.Destroyed) {
		return
	}
	if ct.Scene == nil {
		ct.layoutPass()
		return
	}
	ct.Scene.requestLayoutFor(ct)
}

// batch runs the given mutation through the scene's layout suspension
// protocol, so a bulk operation produces one recomputation. Without a
// scene it just runs the function.
func (ct *Container) batch(fun func()) {
	if sc := ct.Scene; sc != nil {
		sc.BatchLayouts(fun)
		return
	}
	fun()
}

// NodeWalkDown extends [tree.NodeBase.WalkDown] to the container's
// docked items and floating components, which are not in Children.
func (ct *Container) NodeWalkDown(fun func(n tree.Node) bool) {
	for _, d := range ct.docked {
		d.AsTree().WalkDown(fun)
	}
	for _, f := range ct.floating {
		f.AsTree().WalkDown(fun)
	}
}

// Destroy destroys the container and everything it owns. Its items,
// docked items, and floating components are destroyed recursively when
// [Container.AutoDestroy] is set; otherwise they are detached with
// their state preserved. The layout strategy is unbound either way.
func (ct *Container) Destroy() {
	if ct.This == nil || ct.Is(styles.Destroyed) {
		return
	}
	if ct.Scene != nil {
		ct.Scene.cancelPending(ct)
	}
	if ct.AutoDestroy {
		for _, d := range ct.docked {
			d.Destroy()
		}
		for _, f := range ct.floating {
			f.Destroy()
		}
	} else {
		ct.detachAll()
	}
	ct.docked = nil
	ct.floating = nil
	ct.SetLayout(nil)
	ct.ComponentBase.Destroy()
}
