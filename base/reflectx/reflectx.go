// Copyright (c) 2025, Tessera Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package reflectx provides reflection helpers for working with values,
// fields, and property maps. The component configuration layer uses it to
// apply declarative property maps to typed component fields, and the
// dimension memento uses it to capture and restore named fields.
package reflectx

import (
	"encoding"
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// Underlying returns the actual underlying version of the given value,
// going through any pointers and interfaces.
func Underlying(v reflect.Value) reflect.Value {
	for v.IsValid() && (v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface) {
		if v.IsNil() {
			return v
		}
		v = v.Elem()
	}
	return v
}

// UnderlyingPointer returns a pointer to the actual underlying version
// of the given value, going through any interfaces and pointer chains.
func UnderlyingPointer(v reflect.Value) reflect.Value {
	u := Underlying(v)
	if !u.IsValid() {
		return u
	}
	if u.CanAddr() {
		return u.Addr()
	}
	return v
}

// FieldByPath returns the (addressable) field of the given struct value
// at the given dot-separated path (e.g., "Size.X"). It returns an error
// if no such field exists or the value is not a struct.
func FieldByPath(v reflect.Value, path string) (reflect.Value, error) {
	cur := Underlying(v)
	for _, name := range strings.Split(path, ".") {
		if cur.Kind() != reflect.Struct {
			return reflect.Value{}, fmt.Errorf("reflectx.FieldByPath: %q: %v is not a struct", path, cur.Type())
		}
		f := cur.FieldByName(name)
		if !f.IsValid() {
			return reflect.Value{}, fmt.Errorf("reflectx.FieldByPath: no field %q in %v", name, cur.Type())
		}
		cur = Underlying(f)
		if !cur.IsValid() {
			cur = f
		}
	}
	return cur, nil
}

// SetRobust robustly sets the to value from the from value, handling
// pointers, interfaces, basic kind conversions, and types implementing
// [encoding.TextUnmarshaler]. It returns an error if the set is not
// possible.
func SetRobust(to, from any) error {
	tv := reflect.ValueOf(to)
	if tv.Kind() != reflect.Pointer || tv.IsNil() {
		return fmt.Errorf("reflectx.SetRobust: destination must be a non-nil pointer, got %T", to)
	}
	return setValue(tv.Elem(), reflect.ValueOf(from))
}

// SetFieldValue sets the given addressable field value from the given
// arbitrary value, with the same conversions as [SetRobust].
func SetFieldValue(field reflect.Value, from any) error {
	if !field.CanSet() {
		return fmt.Errorf("reflectx.SetFieldValue: field of type %v is not settable", field.Type())
	}
	return setValue(field, reflect.ValueOf(from))
}

func setValue(to, from reflect.Value) error {
	if !from.IsValid() {
		to.SetZero()
		return nil
	}
	from = Underlying(from)
	if from.Type().AssignableTo(to.Type()) {
		to.Set(from)
		return nil
	}
	if from.Type().ConvertibleTo(to.Type()) && compatibleKinds(to.Kind(), from.Kind()) {
		to.Set(from.Convert(to.Type()))
		return nil
	}
	// strings can target anything implementing TextUnmarshaler
	if from.Kind() == reflect.String && to.CanAddr() {
		if tu, ok := to.Addr().Interface().(encoding.TextUnmarshaler); ok {
			return tu.UnmarshalText([]byte(from.String()))
		}
	}
	switch to.Kind() {
	case reflect.Bool:
		b, err := strconv.ParseBool(fmt.Sprintf("%v", from.Interface()))
		if err != nil {
			return fmt.Errorf("reflectx.SetRobust: cannot set bool from %v", from.Type())
		}
		to.SetBool(b)
		return nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := strconv.ParseInt(fmt.Sprintf("%v", from.Interface()), 10, 64)
		if err != nil {
			return fmt.Errorf("reflectx.SetRobust: cannot set %v from %v", to.Type(), from.Type())
		}
		to.SetInt(i)
		return nil
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(fmt.Sprintf("%v", from.Interface()), 64)
		if err != nil {
			return fmt.Errorf("reflectx.SetRobust: cannot set %v from %v", to.Type(), from.Type())
		}
		to.SetFloat(f)
		return nil
	case reflect.String:
		to.SetString(fmt.Sprintf("%v", from.Interface()))
		return nil
	}
	return fmt.Errorf("reflectx.SetRobust: cannot set %v from %v", to.Type(), from.Type())
}

// compatibleKinds reports whether a direct Convert between the two kinds
// preserves meaning (numeric to numeric; not numeric to string, which Go
// converts via code points).
func compatibleKinds(to, from reflect.Kind) bool {
	if to == reflect.String || from == reflect.String {
		return to == from
	}
	return true
}
