// Copyright (c) 2025, Tessera Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"reflect"
	"strings"
)

// Type represents a registered type.
type Type struct {
	// Name is the fully package-path-qualified name of the type
	// (eg: tessera.dev/tessera/core.Panel).
	Name string

	// IDName is the short, package-unqualified, kebab-case name of
	// the type that is suitable for use in an ID (eg: panel).
	IDName string

	// Doc has the comment documentation for the type.
	Doc string

	// Embeds are the embedded fields for struct types.
	Embeds []Field

	// Fields are the fields for struct types.
	Fields []Field

	// Instance is an optional instance of the type.
	Instance any

	// ID is the unique type ID number.
	ID uint64

	// AllEmbeds has all embedded fields (including nested ones) for
	// struct types. It is not set during registration; HasEmbed
	// automatically compiles it as needed. The key is the type ID.
	AllEmbeds map[uint64]*Type
}

// Field represents a field or embed in a struct type.
type Field struct {
	// Name is the name of the field (eg: Collapsible).
	Name string

	// Doc has the comment documentation for the field.
	Doc string
}

func (tp *Type) String() string {
	return tp.Name
}

// ShortName returns the short name of the type (package.Type).
func (tp *Type) ShortName() string {
	li := strings.LastIndex(tp.Name, "/")
	return tp.Name[li+1:]
}

// ReflectType returns the [reflect.Type] for this type, using the Instance.
func (tp *Type) ReflectType() reflect.Type {
	if tp.Instance == nil {
		return nil
	}
	return reflect.TypeOf(tp.Instance).Elem()
}

// HasEmbed returns whether this type has the given type at any level
// of embedding depth, including whether this type is the given type.
// The first time it is called it compiles a map of all embedded types,
// so subsequent calls are fast.
func (tp *Type) HasEmbed(typ *Type) bool {
	if tp.AllEmbeds == nil {
		tp.compileEmbeds()
		if tp.AllEmbeds == nil {
			return typ == tp
		}
	}
	if tp == typ {
		return true
	}
	_, has := tp.AllEmbeds[typ.ID]
	return has
}

func (tp *Type) compileEmbeds() {
	if len(tp.Embeds) == 0 {
		return
	}
	rt := tp.ReflectType()
	if rt == nil {
		return
	}
	tp.AllEmbeds = make(map[uint64]*Type)
	for _, em := range tp.Embeds {
		enm := em.Name
		if idx := strings.LastIndex(enm, "."); idx >= 0 {
			enm = enm[idx+1:]
		}
		etf, has := rt.FieldByName(enm)
		if !has {
			continue
		}
		etft := TypeName(etf.Type)
		et := TypeByName(etft)
		if et == nil {
			continue
		}
		tp.AllEmbeds[et.ID] = et
		et.compileEmbeds()
		if et.AllEmbeds == nil {
			continue
		}
		for id, ct := range et.AllEmbeds {
			tp.AllEmbeds[id] = ct
		}
	}
}
