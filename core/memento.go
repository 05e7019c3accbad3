// Copyright (c) 2025, Tessera Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"log/slog"
	"reflect"

	"tessera.dev/tessera/base/reflectx"
)

// Memento captures a named subset of the fields of a struct around a
// state transition, so that the reverse transition can restore them
// exactly. Names are dot-separated field paths resolved with
// reflection, such as "Styles.Min.X". The collapse and expand
// transitions of [Panel] use a memento for dimension fidelity.
type Memento struct {

	// Target is the struct pointer the values were captured from and
	// will be restored to.
	Target any

	// values are the captured values, keyed by field path.
	values map[string]any
}

// NewMemento returns a new [Memento] capturing from and restoring to
// the given struct pointer.
func NewMemento(target any) *Memento {
	return &Memento{Target: target, values: map[string]any{}}
}

// init ensures that the values map is constructed, so that the zero
// value plus a Target is usable.
func (m *Memento) init() {
	if m.values == nil {
		m.values = map[string]any{}
	}
}

// Capture records the current values of the given field paths on the
// target, overwriting anything previously captured for those paths.
// Invalid paths are reported through slog and skipped.
func (m *Memento) Capture(names ...string) {
	m.init()
	for _, name := range names {
		f, err := reflectx.FieldByPath(reflect.ValueOf(m.Target), name)
		if err != nil {
			slog.Error("core.Memento.Capture: invalid field path", "path", name, "err", err)
			continue
		}
		m.values[name] = f.Interface()
	}
}

// CaptureValue records the given value for the given name without
// reading it from the target. Restore still writes it to the field
// path of that name, so the name must be a valid path if the memento
// will be restored.
func (m *Memento) CaptureValue(name string, value any) {
	m.init()
	m.values[name] = value
}

// Has returns whether a value has been captured for the given name.
func (m *Memento) Has(name string) bool {
	_, has := m.values[name]
	return has
}

// Value returns the captured value for the given name, or nil if none
// has been captured.
func (m *Memento) Value(name string) any {
	return m.values[name]
}

// Restore writes every captured value back to its field path on the
// target, leaving the captured set intact so that Restore can run
// again. Paths that can no longer be resolved are reported through
// slog and skipped.
func (m *Memento) Restore() {
	for name, value := range m.values {
		f, err := reflectx.FieldByPath(reflect.ValueOf(m.Target), name)
		if err != nil {
			slog.Error("core.Memento.Restore: invalid field path", "path", name, "err", err)
			continue
		}
		if err := reflectx.SetFieldValue(f, value); err != nil {
			slog.Error("core.Memento.Restore: could not set field", "path", name, "err", err)
		}
	}
}

// RestoreAndForget restores every captured value and then clears the
// captured set, returning the memento to its empty state.
func (m *Memento) RestoreAndForget() {
	m.Restore()
	m.values = map[string]any{}
}
