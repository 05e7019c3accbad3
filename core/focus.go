// Copyright (c) 2025, Tessera Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"tessera.dev/tessera/events"
	"tessera.dev/tessera/styles"
	"tessera.dev/tessera/tree"
)

// SetFocus makes this component the scene's focused component: the
// previous holder loses the [styles.Focused] state, both ends receive
// an [events.FocusChange], and the scene records the new holder. It is
// a no-op outside a scene.
func (cb *ComponentBase) SetFocus() {
	sc := cb.Scene
	if sc == nil || cb.This == nil || cb.Is(styles.Destroyed) {
		return
	}
	c, ok := cb.This.(Component)
	if !ok || sc.focus == c {
		return
	}
	if old := sc.focus; old != nil {
		ob := old.AsComponent()
		if ob.This != nil && !ob.Is(styles.Destroyed) {
			ob.SetState(false, styles.Focused)
			ob.Send(events.FocusChange)
		}
	}
	sc.focus = c
	cb.SetState(true, styles.Focused)
	cb.Send(events.FocusChange)
}

// canFocus reports whether the component can receive focus: it is
// displayable and not disabled.
func (cb *ComponentBase) canFocus() bool {
	return cb.IsDisplayable() && !cb.Is(styles.Disabled)
}

// Focus returns the component currently holding input focus in this
// scene, or nil if none does.
func (sc *Scene) Focus() Component {
	return sc.focus
}

// ClearFocus removes input focus from the scene's focused component,
// if any, sending it an [events.FocusChange].
func (sc *Scene) ClearFocus() {
	old := sc.focus
	if old == nil {
		return
	}
	sc.focus = nil
	ob := old.AsComponent()
	if ob.This != nil && !ob.Is(styles.Destroyed) {
		ob.SetState(false, styles.Focused)
		ob.Send(events.FocusChange)
	}
}

// FocusNext moves focus to the next focusable component after the
// current focus in presentation order (the order [Container.Query]
// uses, which includes docked and floating components), wrapping
// around once. It returns the newly focused component, or nil when
// nothing is focusable.
func (sc *Scene) FocusNext() Component {
	return sc.moveFocus(1)
}

// FocusPrevious moves focus to the previous focusable component before
// the current focus in presentation order, wrapping around once. It
// returns the newly focused component, or nil when nothing is
// focusable.
func (sc *Scene) FocusPrevious() Component {
	return sc.moveFocus(-1)
}

// moveFocus advances focus by the given direction through the scene's
// focusable components.
func (sc *Scene) moveFocus(dir int) Component {
	var list []Component
	sc.walkQuery(func(c Component) bool {
		list = append(list, c)
		return tree.Continue
	})
	n := len(list)
	if n == 0 {
		return nil
	}
	start := -1
	if sc.focus != nil {
		for i, c := range list {
			if c == sc.focus {
				start = i
				break
			}
		}
	}
	if start < 0 && dir < 0 {
		start = 0
	}
	for k := 1; k <= n; k++ {
		i := start + dir*k
		i = ((i % n) + n) % n
		cb := list[i].AsComponent()
		if cb.canFocus() {
			cb.SetFocus()
			return list[i]
		}
	}
	return nil
}
