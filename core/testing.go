// Copyright (c) 2025, Tessera Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"tessera.dev/tessera/events"
)

// RenderOp is one recorded renderer call; see [RecordingRenderer].
type RenderOp struct {

	// Op is the renderer method that was called: "mount", "unmount",
	// or "update".
	Op string

	// Path is the tree path of the component at call time.
	Path string
}

// RecordingRenderer is a [Renderer] that records every call it
// receives, in order, so tests can assert the renderer traffic a
// structural mutation or layout pass produces. The zero value is ready
// to use.
type RecordingRenderer struct {

	// Ops are the recorded calls, oldest first.
	Ops []RenderOp
}

func (rr *RecordingRenderer) Mount(c Component)        { rr.record("mount", c) }
func (rr *RecordingRenderer) Unmount(c Component)      { rr.record("unmount", c) }
func (rr *RecordingRenderer) Update(c Component)       { rr.record("update", c) }
func (rr *RecordingRenderer) Target(ct *Container) any { return ct }

func (rr *RecordingRenderer) record(op string, c Component) {
	rr.Ops = append(rr.Ops, RenderOp{Op: op, Path: c.AsTree().Path()})
}

// Count returns how many calls of the given kind were recorded,
// or the total for an empty kind.
func (rr *RecordingRenderer) Count(op string) int {
	n := 0
	for _, r := range rr.Ops {
		if op == "" || r.Op == op {
			n++
		}
	}
	return n
}

// Reset clears the recorded calls.
func (rr *RecordingRenderer) Reset() {
	rr.Ops = nil
}

// countingLayout wraps another layout strategy and counts how many
// times it runs, so tests can assert how many layout passes reached a
// container.
type countingLayout struct {
	Layouter
	runs int
}

func (cl *countingLayout) Run() {
	cl.runs++
	cl.Layouter.Run()
}

// newTestScene returns a scene with a [RecordingRenderer] and a fixed
// root size for layout-sensitive tests.
func newTestScene(name string, width, height float32) *Scene {
	sc := NewScene(name)
	sc.Renderer = &RecordingRenderer{}
	sc.Styles.Size.Set(width, height)
	return sc
}

// recordEvents registers a Final-tier listener for each given event
// type on the component, appending to the returned record as events
// arrive, so tests can assert notification order.
func recordEvents(cb *ComponentBase, types ...events.Types) *[]events.Types {
	rec := &[]events.Types{}
	for _, typ := range types {
		cb.OnFinal(typ, func(e events.Event) {
			*rec = append(*rec, e.Type())
		})
	}
	return rec
}
