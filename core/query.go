// Copyright (c) 2025, Tessera Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"fmt"
	"log/slog"
	"reflect"
	"strconv"
	"strings"

	"tessera.dev/tessera/base/reflectx"
	"tessera.dev/tessera/styles"
	"tessera.dev/tessera/tree"
)

// Selectors are a small, read-only query grammar over component
// subtrees:
//
//   - a bare word matches by type: the registry IDName or full name of
//     the component's type, or of any type it embeds ("panel" matches
//     Panel and anything deriving from it).
//   - #name matches the component's name exactly.
//   - [prop] matches components where prop is a set state flag or a
//     non-zero field; [prop=value] compares the flag or field against
//     the value's string form. Fields resolve on the component first
//     and then on its [styles.Style].
//   - whitespace separates descendant steps: "panel #header" matches
//     components named header anywhere below a panel.
//   - the empty selector matches everything.

// Query returns every component in the container's subtree matching
// the given selector, in presentation order: docked items first, then
// the items in order, each followed by its own subtree, then floating
// components. The container itself is excluded.
func (ct *Container) Query(selector string) []Component {
	steps := strings.Fields(selector)
	var out []Component
	ct.walkQuery(func(c Component) bool {
		if ct.matchesChain(c, steps) {
			out = append(out, c)
		}
		return tree.Continue
	})
	return out
}

// Down returns the first component in the container's subtree matching
// the given selector, in the same order [Container.Query] uses, or nil
// when nothing matches.
func (ct *Container) Down(selector string) Component {
	steps := strings.Fields(selector)
	var found Component
	ct.walkQuery(func(c Component) bool {
		if ct.matchesChain(c, steps) {
			found = c
			return tree.Break
		}
		return tree.Continue
	})
	return found
}

// Child returns a direct item of the container by position or by
// selector: an int indexes the items, counting from the end when
// negative, and a string returns the first item matching it as a
// selector. It returns nil when nothing matches.
func (ct *Container) Child(arg any) Component {
	switch a := arg.(type) {
	case int:
		n := ct.NumChildren()
		if a < 0 {
			a += n
		}
		if a < 0 || a >= n {
			return nil
		}
		c, _ := ct.Children[a].(Component)
		return c
	case string:
		for _, k := range ct.Children {
			if c, ok := k.(Component); ok && matchesSelector(c, a) {
				return c
			}
		}
		return nil
	default:
		slog.Warn("core.Container.Child: invalid argument type", "type", fmt.Sprintf("%T", arg))
		return nil
	}
}

// walkQuery visits the subtree in presentation order (docked items,
// then items each followed by their own subtree, then floating
// components), excluding the container itself. The walk stops when fun
// returns [tree.Break].
func (ct *Container) walkQuery(fun func(c Component) bool) bool {
	visit := func(c Component) bool {
		if !fun(c) {
			return tree.Break
		}
		if cct := AsContainer(c); cct != nil {
			if !cct.walkQuery(fun) {
				return tree.Break
			}
		}
		return tree.Continue
	}
	for _, d := range ct.docked {
		if !visit(d) {
			return tree.Break
		}
	}
	for _, k := range ct.Children {
		if c, ok := k.(Component); ok {
			if !visit(c) {
				return tree.Break
			}
		}
	}
	for _, f := range ct.floating {
		if !visit(f) {
			return tree.Break
		}
	}
	return tree.Continue
}

// matchesChain reports whether the component matches a parsed
// descendant chain within this container: it must match the last step,
// and its ancestors up to (not including) the container must match the
// remaining steps in order.
func (ct *Container) matchesChain(c Component, steps []string) bool {
	n := len(steps)
	if n == 0 {
		return true
	}
	if !matchesSelector(c, steps[n-1]) {
		return false
	}
	i := n - 2
	an := c.AsComponent().parentComponent()
	for i >= 0 && an != nil && an != &ct.ComponentBase {
		if matchesSelector(an.This.(Component), steps[i]) {
			i--
		}
		an = an.parentComponent()
	}
	return i < 0
}

// matchesSelector reports whether the component matches one simple
// selector step; see the grammar at the top of this file.
func matchesSelector(c Component, selector string) bool {
	if selector == "" {
		return true
	}
	cb := c.AsComponent()
	if name, ok := strings.CutPrefix(selector, "#"); ok {
		return cb.Name == name
	}
	if body, ok := strings.CutPrefix(selector, "["); ok {
		body, ok = strings.CutSuffix(body, "]")
		if !ok {
			return false
		}
		return matchesProperty(cb, body)
	}
	return matchesType(c, selector)
}

// matchesProperty matches the body of a [prop] or [prop=value]
// selector: state flags by constant name first, then fields by path on
// the component and on its styles.
func matchesProperty(cb *ComponentBase, body string) bool {
	field, want, hasValue := strings.Cut(body, "=")
	field = strings.TrimSpace(field)
	want = strings.TrimSpace(want)
	for _, st := range styles.StatesValues() {
		if st.BitIndexString() != field {
			continue
		}
		has := cb.Is(st)
		if !hasValue {
			return has
		}
		return strconv.FormatBool(has) == want
	}
	fv, err := reflectx.FieldByPath(reflect.ValueOf(cb.This), field)
	if err != nil {
		fv, err = reflectx.FieldByPath(reflect.ValueOf(&cb.Styles), field)
		if err != nil {
			return false
		}
	}
	if !hasValue {
		return !fv.IsZero()
	}
	return fmt.Sprintf("%v", fv.Interface()) == want
}

// matchesType matches a type selector: the registry IDName or full
// name of the component's type, or of any type embedding it.
func matchesType(c Component, selector string) bool {
	typ := c.AsTree().NodeType()
	if typ == nil {
		return false
	}
	if typ.IDName == selector || typ.Name == selector {
		return true
	}
	want := configType(selector)
	return want != nil && typ.HasEmbed(want)
}
