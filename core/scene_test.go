// Copyright (c) 2025, Tessera Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"tessera.dev/tessera/styles"
)

func TestSceneSuspendResume(t *testing.T) {
	sc := newTestScene("suspend", 300, 100)
	ct1 := NewContainer(sc)
	ct2 := NewContainer(sc)
	cl1 := &countingLayout{Layouter: &BoxLayout{}}
	cl2 := &countingLayout{Layouter: &BoxLayout{}}
	ct1.SetLayout(cl1)
	ct2.SetLayout(cl2)

	sc.SuspendLayouts()
	assert.True(t, sc.LayoutsSuspended())
	ct1.Add(NewText(), NewText())
	ct2.Add(NewText())
	ct1.Add(NewText())
	assert.Equal(t, 0, cl1.runs)
	assert.Equal(t, 0, cl2.runs)

	sc.SuspendLayouts() // nests
	sc.ResumeLayouts(true)
	assert.True(t, sc.LayoutsSuspended())
	assert.Equal(t, 0, cl1.runs)

	sc.ResumeLayouts(true)
	assert.False(t, sc.LayoutsSuspended())
	assert.Equal(t, 1, cl1.runs)
	assert.Equal(t, 1, cl2.runs)
}

func TestSceneResumeWithoutSuspend(t *testing.T) {
	sc := newTestScene("resume-extra", 100, 100)
	assert.NotPanics(t, func() { sc.ResumeLayouts(true) })
	assert.False(t, sc.LayoutsSuspended())

	// the protocol still works after the underflow
	sc.SuspendLayouts()
	assert.True(t, sc.LayoutsSuspended())
	sc.ResumeLayouts(true)
	assert.False(t, sc.LayoutsSuspended())
}

func TestSceneResumeWithoutFlush(t *testing.T) {
	sc := newTestScene("no-flush", 300, 100)
	ct := NewContainer(sc)
	cl := &countingLayout{Layouter: &BoxLayout{}}
	ct.SetLayout(cl)
	other := NewContainer(sc)
	ocl := &countingLayout{Layouter: &BoxLayout{}}
	other.SetLayout(ocl)

	sc.SuspendLayouts()
	ct.Add(NewText())
	sc.ResumeLayouts(false)
	assert.False(t, sc.LayoutsSuspended())
	assert.Equal(t, 0, cl.runs) // stays parked

	// the next unsuspended request flushes the leftovers too
	other.Add(NewText())
	assert.Equal(t, 1, cl.runs)
	assert.Equal(t, 1, ocl.runs)
}

func TestSceneBatchLayouts(t *testing.T) {
	sc := newTestScene("batch", 300, 100)
	ct := NewContainer(sc)
	cl := &countingLayout{Layouter: &BoxLayout{}}
	ct.SetLayout(cl)

	sc.BatchLayouts(func() {
		ct.Add(NewText())
		sc.BatchLayouts(func() {
			ct.Add(NewText())
		})
		assert.Equal(t, 0, cl.runs) // inner batch defers to the outer
	})
	assert.Equal(t, 1, cl.runs)
}

func TestSceneHoldingArea(t *testing.T) {
	sc := newTestScene("holding", 100, 100)
	ct := NewContainer(sc)
	a := NewText()
	a.SetName("a")
	ct.Add(a)
	path := a.Path()

	ct.Remove(a, false)
	assert.Equal(t, 1, sc.NumDetached())
	assert.Same(t, a, sc.DetachedComponent(path))
	assert.Nil(t, sc.DetachedComponent("/nope"))

	// a new detach under the same key destroys the old occupant
	b := NewText()
	b.SetName("a")
	ct.Add(b)
	ct.Remove(b, false)
	assert.Equal(t, 1, sc.NumDetached())
	assert.Same(t, b, sc.DetachedComponent(path))
	assert.True(t, a.Is(styles.Destroyed))
}

func TestSceneDetachOnRemoveOff(t *testing.T) {
	sc := newTestScene("no-park", 100, 100)
	ct := NewContainer(sc)
	ct.SetDetachOnRemove(false)
	a := NewText()
	ct.Add(a)

	ct.Remove(a, false)
	assert.True(t, a.Is(styles.Detached))
	assert.False(t, a.Is(styles.Destroyed))
	assert.Equal(t, 0, sc.NumDetached())
}

func TestSceneDestroyDestroysDetached(t *testing.T) {
	sc := newTestScene("destroy", 100, 100)
	ct := NewContainer(sc)
	a := NewText()
	ct.Add(a)
	ct.Remove(a, false)
	assert.Equal(t, 1, sc.NumDetached())

	sc.Destroy()
	assert.True(t, sc.Is(styles.Destroyed))
	assert.True(t, ct.Is(styles.Destroyed))
	assert.True(t, a.Is(styles.Destroyed))
	assert.Equal(t, 0, sc.NumDetached())
}

func TestSceneRunsDeferred(t *testing.T) {
	sc := newTestScene("deferred", 300, 100)
	ct := NewContainer(sc)
	a := NewText()
	ct.Add(a)

	order := []string{}
	sc.BatchLayouts(func() {
		a.Defer(func() { order = append(order, "deferred") })
		ct.Add(NewText())
		order = append(order, "batch")
	})
	assert.Equal(t, []string{"batch", "deferred"}, order)
	assert.Empty(t, a.Deferred)
}

func TestSceneDeferAbandonedOnDestroy(t *testing.T) {
	sc := newTestScene("defer-destroy", 300, 100)
	ct := NewContainer(sc)
	a := NewText()
	ct.Add(a)

	ran := false
	sc.BatchLayouts(func() {
		a.Defer(func() { ran = true })
		ct.Remove(a)
	})
	assert.False(t, ran)
}

func TestSceneComponentInit(t *testing.T) {
	sc := newTestScene("init", 100, 100)
	var names []string
	sc.ComponentInit = func(c Component) {
		names = append(names, c.AsTree().Name)
	}
	ct := NewContainer(sc)
	a := NewText()
	a.SetName("a")
	ct.Add(a)
	assert.Equal(t, []string{"container-0", "a"}, names)
}

func TestSceneRenderPassOrder(t *testing.T) {
	sc := newTestScene("paint", 300, 200)
	rr := sc.Renderer.(*RecordingRenderer)
	ct := NewContainer(sc)
	north := NewText()
	north.SetName("north")
	south := NewText()
	south.SetName("south")
	south.Styles.Dock = styles.Bottom
	i1 := NewText()
	i1.SetName("i1")
	i2 := NewText()
	i2.SetName("i2")
	f := NewText()
	f.SetName("f")
	f.SetState(true, styles.Floating)

	sc.BatchLayouts(func() {
		ct.Add(i1, i2, f)
		ct.AddDocked(north, south)
	})

	updates := func() []string {
		var got []string
		for _, op := range rr.Ops {
			if op.Op == "update" {
				got = append(got, op.Path)
			}
		}
		return got
	}

	rr.Reset()
	sc.NeedsLayout()
	want := []string{sc.Path(), ct.Path(), north.Path(), i1.Path(), i2.Path(), south.Path(), f.Path()}
	assert.Equal(t, want, updates())

	// invisible subtrees are skipped
	i1.Hide()
	rr.Reset()
	sc.NeedsLayout()
	want = []string{sc.Path(), ct.Path(), north.Path(), i2.Path(), south.Path(), f.Path()}
	assert.Equal(t, want, updates())
}

func TestSceneRendererMountUnmount(t *testing.T) {
	sc := newTestScene("mount", 100, 100)
	rr := sc.Renderer.(*RecordingRenderer)
	ct := NewContainer(sc)
	a := NewText()
	a.SetName("a")
	rr.Reset()

	ct.Add(a)
	assert.Equal(t, 1, rr.Count("mount"))

	ct.Remove(a)
	assert.Equal(t, 1, rr.Count("unmount"))
}
