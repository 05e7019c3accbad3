// Copyright (c) 2025, Tessera Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

// Listeners registers lists of event listener functions to receive
// different event types. Listeners are closure methods with all
// context captured, registered on specific objects.
type Listeners map[Types][]func(e Event)

// Init ensures that the map is constructed.
func (ls *Listeners) Init() {
	if *ls != nil {
		return
	}
	*ls = make(map[Types][]func(Event))
}

// Add adds a listener for the given type to the end of the current stack.
func (ls *Listeners) Add(typ Types, fun func(e Event)) {
	ls.Init()
	ets := (*ls)[typ]
	ets = append(ets, fun)
	(*ls)[typ] = ets
}

// Call calls all functions for the given event. It goes in reverse
// order so that the last functions added are the first called, and it
// stops when the event is marked as Handled. This allows for a natural
// and optional override behavior, as compared to requiring more
// complex priority-based mechanisms.
func (ls *Listeners) Call(ev Event) {
	if ev.IsHandled() {
		return
	}
	typ := ev.Type()
	ets := (*ls)[typ]
	n := len(ets)
	if n == 0 {
		return
	}
	for i := n - 1; i >= 0; i-- {
		fun := ets[i]
		fun(ev)
		if ev.IsHandled() {
			break
		}
	}
}

// CopyFromExtra copies additional listeners from the other given
// listeners beyond those present in this set of listeners.
// This is used for copying event listeners in component copies.
func (ls *Listeners) CopyFromExtra(other Listeners) {
	for typ, l := range other {
		sl := (*ls)[typ]
		if len(l) > len(sl) {
			ls.Init()
			(*ls)[typ] = append(sl, l[len(sl):]...)
		}
	}
}
