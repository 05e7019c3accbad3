// Copyright (c) 2025, Tessera Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"tessera.dev/tessera/events"
	"tessera.dev/tessera/styles"
)

func TestContainerAdd(t *testing.T) {
	sc := newTestScene("add", 300, 100)
	ct := NewContainer(sc)
	a := NewText()
	a.SetName("a")
	b := NewText()
	b.SetName("b")

	added := ct.Add(a, b)
	assert.Len(t, added, 2)
	assert.Equal(t, []Component{a, b}, ct.Items())
	assert.Same(t, ct, a.Owner())
	assert.Same(t, ct, b.Owner())
	assert.Same(t, sc, a.Scene)
}

func TestContainerAddEvents(t *testing.T) {
	ct := NewContainer(newTestScene("add-events", 100, 100))
	rec := recordEvents(&ct.ComponentBase, events.BeforeAdd, events.Add)
	ct.Add(NewText())
	assert.Equal(t, []events.Types{events.BeforeAdd, events.Add}, *rec)
}

func TestContainerAddAt(t *testing.T) {
	ct := NewContainer(newTestScene("add-at", 100, 100))
	a, b, c, d, e := NewText(), NewText(), NewText(), NewText(), NewText()
	ct.Add(a, b)

	ct.AddAt(1, c)
	assert.Equal(t, []Component{a, c, b}, ct.Items())

	ct.AddAt(-3, d) // clamps to the start
	assert.Equal(t, []Component{d, a, c, b}, ct.Items())

	ct.AddAt(42, e) // clamps to the end
	assert.Equal(t, []Component{d, a, c, b, e}, ct.Items())
}

func TestContainerInsert(t *testing.T) {
	ct := NewContainer(newTestScene("insert", 100, 100))
	a, b := NewText(), NewText()
	ct.Add(a, b)

	c := NewText()
	got := ct.Insert(1, c)
	assert.Same(t, c, got)
	assert.Equal(t, []Component{a, c, b}, ct.Items())

	blocked := NewText()
	ct.OnFirst(events.BeforeAdd, func(e events.Event) {
		if e.AsBase().Data == any(blocked) {
			e.Cancel()
		}
	})
	assert.Nil(t, ct.Insert(0, blocked))
	assert.Equal(t, []Component{a, c, b}, ct.Items())
	assert.Nil(t, blocked.Parent)
}

func TestContainerAddCancelSkipsItem(t *testing.T) {
	ct := NewContainer(newTestScene("add-cancel", 100, 100))
	a, b, c := NewText(), NewText(), NewText()
	ct.On(events.BeforeAdd, func(e events.Event) {
		if e.AsBase().Data == any(b) {
			e.Cancel()
		}
	})
	added := ct.Add(a, b, c)
	assert.Equal(t, []Component{a, c}, added)
	assert.Equal(t, []Component{a, c}, ct.Items())
	assert.Nil(t, b.Parent)
}

func TestContainerAddTakesOwnership(t *testing.T) {
	sc := newTestScene("ownership", 100, 100)
	ct1 := NewContainer(sc)
	ct2 := NewContainer(sc)
	a := NewText()
	ct1.Add(a)
	removed := recordEvents(&ct1.ComponentBase, events.Remove)

	ct2.Add(a)
	assert.Empty(t, ct1.Items())
	assert.Equal(t, []Component{a}, ct2.Items())
	assert.Same(t, ct2, a.Owner())
	assert.Equal(t, []events.Types{events.Remove}, *removed)
}

func TestContainerAddFloating(t *testing.T) {
	ct := NewContainer(newTestScene("floating", 100, 100))
	a := NewText()
	f := NewText()
	f.SetState(true, styles.Floating)
	b := NewText()

	added := ct.Add(a, f, b)
	assert.Len(t, added, 3)
	assert.Equal(t, []Component{a, b}, ct.Items())
	assert.Equal(t, []Component{f}, ct.FloatingItems())
	assert.Same(t, ct, f.Owner())
}

func TestContainerAddBatchesLayout(t *testing.T) {
	ct := NewContainer(newTestScene("add-batch", 300, 100))
	cl := &countingLayout{Layouter: &BoxLayout{}}
	ct.SetLayout(cl)
	ct.Add(NewText(), NewText(), NewText())
	assert.Equal(t, 1, cl.runs)
}

func TestContainerRemoveDestroysByDefault(t *testing.T) {
	sc := newTestScene("remove", 100, 100)
	ct := NewContainer(sc)
	a := NewText()
	ct.Add(a)
	rec := recordEvents(&ct.ComponentBase, events.BeforeRemove, events.Remove)

	assert.True(t, ct.Remove(a))
	assert.Empty(t, ct.Items())
	assert.True(t, a.Is(styles.Destroyed))
	assert.Nil(t, a.This)
	assert.Equal(t, 0, sc.NumDetached())
	assert.Equal(t, []events.Types{events.BeforeRemove, events.Remove}, *rec)
}

func TestContainerRemoveDetachKeepsState(t *testing.T) {
	sc := newTestScene("detach", 100, 100)
	ct := NewContainer(sc)
	a := NewText()
	a.SetName("a")
	a.SetText("hello")
	ct.Add(a)
	path := a.Path()

	assert.True(t, ct.Remove(a, false))
	assert.True(t, a.Is(styles.Detached))
	assert.False(t, a.Is(styles.Destroyed))
	assert.Nil(t, a.Parent)
	assert.Equal(t, 1, sc.NumDetached())
	assert.Same(t, a, sc.DetachedComponent(path))

	// adding it somewhere else reclaims it from the holding area with
	// its materialized state intact
	ct2 := NewContainer(sc)
	ct2.Add(a)
	assert.False(t, a.Is(styles.Detached))
	assert.Equal(t, 0, sc.NumDetached())
	assert.Equal(t, "hello", a.Text)
	assert.Same(t, ct2, a.Owner())
}

func TestContainerRemoveByName(t *testing.T) {
	ct := NewContainer(newTestScene("remove-name", 100, 100))
	a, b := NewText(), NewText()
	a.SetName("a")
	b.SetName("b")
	ct.Add(a, b)

	assert.True(t, ct.Remove("b"))
	assert.Equal(t, []Component{a}, ct.Items())
	assert.False(t, ct.Remove("nope"))
}

func TestContainerRemoveNotOwned(t *testing.T) {
	sc := newTestScene("not-owned", 100, 100)
	ct1, ct2 := NewContainer(sc), NewContainer(sc)
	a := NewText()
	ct1.Add(a)
	rec := recordEvents(&ct2.ComponentBase, events.Remove)

	assert.False(t, ct2.Remove(a))
	assert.Same(t, ct1, a.Owner())
	assert.Empty(t, *rec)
}

func TestContainerRemoveCancel(t *testing.T) {
	ct := NewContainer(newTestScene("remove-cancel", 100, 100))
	a := NewText()
	ct.Add(a)
	ct.On(events.BeforeRemove, func(e events.Event) { e.Cancel() })

	assert.False(t, ct.Remove(a))
	assert.Equal(t, []Component{a}, ct.Items())
	assert.False(t, a.Is(styles.Destroyed))
}

func TestContainerRemoveExplicitOverride(t *testing.T) {
	sc := newTestScene("override", 100, 100)
	ct := NewContainer(sc)
	ct.SetAutoDestroy(false)
	a, b := NewText(), NewText()
	ct.Add(a, b)

	ct.Remove(a, true) // overrides AutoDestroy for this call
	assert.True(t, a.Is(styles.Destroyed))

	ct.Remove(b)
	assert.False(t, b.Is(styles.Destroyed))
	assert.True(t, b.Is(styles.Detached))
}

func TestContainerRemoveAllBatchesLayout(t *testing.T) {
	ct := NewContainer(newTestScene("remove-all", 300, 100))
	ct.Add(NewText(), NewText(), NewText())

	cl := &countingLayout{Layouter: &BoxLayout{}}
	ct.SetLayout(cl)
	ct.RemoveAll()
	assert.Empty(t, ct.Items())
	assert.Equal(t, 1, cl.runs)
}

func TestContainerMove(t *testing.T) {
	ct := NewContainer(newTestScene("move", 100, 100))
	a, b, c := NewText(), NewText(), NewText()
	ct.Add(a, b, c)
	rec := recordEvents(&ct.ComponentBase, events.Move)

	got := ct.Move(0, 2)
	assert.Same(t, a, got)
	assert.Equal(t, []Component{b, c, a}, ct.Items())
	assert.Equal(t, []events.Types{events.Move}, *rec)

	assert.Nil(t, ct.Move(7, 0)) // out of range
	assert.Nil(t, ct.Move(1, 1)) // same position

	moved := ct.Move(0, 99) // clamps to the end
	assert.Same(t, b, moved)
	assert.Equal(t, []Component{c, a, b}, ct.Items())
}

func TestContainerGetComponent(t *testing.T) {
	ct := NewContainer(newTestScene("get", 100, 100))
	a := NewText()
	a.SetName("a")
	north := NewText()
	north.SetName("north")
	sub := NewContainer()
	sub.SetName("sub")
	inner := NewText()
	inner.SetName("inner")
	sub.Add(inner)
	ct.Add(a, sub)
	ct.AddDocked(north)

	assert.Same(t, a, ct.GetComponent("a"))
	assert.Same(t, north, ct.GetComponent("north"))
	assert.Nil(t, ct.GetComponent("inner")) // no deep search
}

func TestContainerNextPrevChild(t *testing.T) {
	ct := NewContainer(newTestScene("next-prev", 100, 100))
	a := NewText()
	b := NewContainer()
	c := NewText()
	ct.Add(a, b, c)

	assert.Same(t, b, ct.NextChild(a, ""))
	assert.Same(t, c, ct.NextChild(a, "text"))
	assert.Nil(t, ct.NextChild(c, ""))
	assert.Same(t, b, ct.PrevChild(c, ""))
	assert.Same(t, a, ct.PrevChild(c, "text"))
	assert.Nil(t, ct.NextChild(NewText(), ""))
}

func TestContainerAddInvalidPanics(t *testing.T) {
	ct := NewContainer(newTestScene("invalid", 100, 100))
	assert.Panics(t, func() { ct.Add(nil) })
	assert.Panics(t, func() {
		var tx *Text
		ct.Add(tx)
	})
	assert.Panics(t, func() { ct.Add(42) })
}

func TestContainerDestroyDestroysItems(t *testing.T) {
	ct := NewContainer(newTestScene("destroy", 100, 100))
	a := NewText()
	north := NewText()
	f := NewText()
	f.SetState(true, styles.Floating)
	ct.Add(a, f)
	ct.AddDocked(north)

	ct.Destroy()
	assert.True(t, a.Is(styles.Destroyed))
	assert.True(t, north.Is(styles.Destroyed))
	assert.True(t, f.Is(styles.Destroyed))
}

func TestContainerDestroyDetachesWhenNotAutoDestroy(t *testing.T) {
	sc := newTestScene("destroy-detach", 100, 100)
	ct := NewContainer(sc)
	ct.SetAutoDestroy(false)
	a, b := NewText(), NewText()
	a.SetName("a")
	b.SetName("b")
	ct.Add(a, b)

	ct.Destroy()
	assert.True(t, ct.Is(styles.Destroyed))
	assert.False(t, a.Is(styles.Destroyed))
	assert.True(t, a.Is(styles.Detached))
	assert.Equal(t, 2, sc.NumDetached())
}
