// Copyright (c) 2025, Tessera Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"tessera.dev/tessera/styles"
)

func TestOverlayShow(t *testing.T) {
	sc := newTestScene("overlay", 200, 200)
	ct := NewContainer(sc)
	a := NewText()
	a.SetName("a")
	b := NewText()
	b.SetName("b")
	ct.Add(a, b)

	os := sc.Overlays
	assert.Nil(t, os.Active())

	os.Show(a)
	assert.Same(t, a, os.Active())
	assert.Same(t, a, sc.Focus()) // scene wires overlay focus

	// showing another overlay hides the current one first
	os.Show(b)
	assert.Same(t, b, os.Active())
	assert.True(t, a.Is(styles.Invisible))
	assert.Same(t, b, sc.Focus())

	os.Show(b) // already active: no-op
	assert.Same(t, b, os.Active())
	os.Show(nil)
	assert.Same(t, b, os.Active())
}

func TestOverlayHide(t *testing.T) {
	sc := newTestScene("overlay-hide", 200, 200)
	ct := NewContainer(sc)
	a := NewText()
	b := NewText()
	b.SetName("b")
	ct.Add(a, b)
	os := sc.Overlays

	os.Show(b)
	os.Hide(a) // not the active one: no-op
	assert.Same(t, b, os.Active())
	assert.False(t, b.Is(styles.Invisible))

	os.Hide(b)
	assert.Nil(t, os.Active())
	assert.True(t, b.Is(styles.Invisible))

	os.Hide(b) // nothing active anymore: no-op
	assert.Nil(t, os.Active())
}

func TestOverlayHideAll(t *testing.T) {
	sc := newTestScene("overlay-hideall", 200, 200)
	ct := NewContainer(sc)
	a := NewText()
	ct.Add(a)
	os := sc.Overlays

	os.HideAll() // empty stack: no-op
	os.Show(a)
	os.HideAll()
	assert.Nil(t, os.Active())
	assert.True(t, a.Is(styles.Invisible))
}

func TestOverlayPrefersHideOverlay(t *testing.T) {
	sc := newTestScene("overlay-dismiss", 200, 200)
	ct := NewContainer(sc)
	p := NewPanel() // implements Overlay: dismissal slides out instead of hiding
	txt := NewText()
	ct.Add(p, txt)
	os := sc.Overlays

	os.Show(p)
	os.Show(txt)
	assert.Same(t, txt, os.Active())
	// a non-floating panel's overlay dismissal is a no-op, so it stays
	// visible where a plain Hide would not
	assert.False(t, p.Is(styles.Invisible))
}

func TestOverlayDeactivate(t *testing.T) {
	sc := newTestScene("overlay-deactivate", 200, 200)
	ct := NewContainer(sc)
	a := NewText()
	b := NewText()
	b.SetName("b")
	ct.Add(a, b)
	os := sc.Overlays

	os.Show(b)
	os.deactivate(&a.ComponentBase) // not the active one: no-op
	assert.Same(t, b, os.Active())

	// deactivating drops the overlay without hiding it
	os.deactivate(&b.ComponentBase)
	assert.Nil(t, os.Active())
	assert.False(t, b.Is(styles.Invisible))
}
