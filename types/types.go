// Copyright (c) 2025, Tessera Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package types provides a runtime registry of types, supporting
// config-driven instantiation of components by type name and
// capability (embedding) queries.
package types

import (
	"reflect"
	"sync/atomic"
)

var (
	// Types records all registered types (i.e., a type registry).
	// The key is the long type name: package/path.Type,
	// e.g., tessera.dev/tessera/core.Panel.
	Types = map[string]*Type{}

	// idNames is the index from [Type.IDName] to type. IDNames are
	// only guaranteed unique within a package, so later registrations
	// of an already-present IDName keep the first entry.
	idNames = map[string]*Type{}

	// typeIDCounter is an atomically incremented uint64 used
	// for assigning new [Type.ID] numbers.
	typeIDCounter uint64
)

// AddType adds a constructed [Type] to the registry and returns it.
// This sets the ID.
func AddType(typ *Type) *Type {
	if et, has := Types[typ.Name]; has {
		return et
	}
	typ.ID = atomic.AddUint64(&typeIDCounter, 1)
	Types[typ.Name] = typ
	if _, has := idNames[typ.IDName]; !has {
		idNames[typ.IDName] = typ
	}
	return typ
}

// TypeByName returns a [Type] by its long name
// (package/path.Type, e.g., tessera.dev/tessera/core.Panel).
// It returns nil if the type is not found.
func TypeByName(nm string) *Type {
	return Types[nm]
}

// TypeByIDName returns a [Type] by its short ID name (e.g., panel).
// It returns nil if the type is not found.
func TypeByIDName(nm string) *Type {
	return idNames[nm]
}

// TypeByValue returns the [Type] of the given value.
// It returns nil if the value's type is not registered.
func TypeByValue(val any) *Type {
	return TypeByName(TypeNameValue(val))
}

// TypeByReflectType returns the [Type] of the given reflect type.
// It returns nil if the type is not registered.
func TypeByReflectType(typ reflect.Type) *Type {
	return TypeByName(TypeName(typ))
}

// TypeName returns the long, package-path-qualified type name of the
// given reflect type, ignoring any pointer indirections.
func TypeName(typ reflect.Type) string {
	for typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	return typ.PkgPath() + "." + typ.Name()
}

// TypeNameValue returns the long, package-path-qualified type name of
// the given value, ignoring any pointer indirections.
func TypeNameValue(v any) string {
	typ := reflect.TypeOf(v)
	return TypeName(typ)
}

// NewInstance returns a newly allocated value of the given type,
// as an interface. It returns nil if the type has no Instance to
// derive the concrete type from.
func NewInstance(typ *Type) any {
	if typ == nil {
		return nil
	}
	rt := typ.ReflectType()
	if rt == nil {
		return nil
	}
	return reflect.New(rt).Interface()
}
