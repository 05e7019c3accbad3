// Copyright (c) 2025, Tessera Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package enums

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync/atomic"

	"gopkg.in/yaml.v3"
)

// String returns the string representation of the given enum value
// using the given value-to-string map. If there is no entry for the
// value, it returns the formatted int64 value instead.
func String[T interface {
	Enum
	comparable
}](i T, m map[T]string) string {
	if str, ok := m[i]; ok {
		return str
	}
	return strconv.FormatInt(i.Int64(), 10)
}

// Desc returns the description of the given enum value using the
// given value-to-description map, falling back on its string
// representation if there is no entry for it.
func Desc[T interface {
	Enum
	comparable
}](i T, m map[T]string) string {
	if desc, ok := m[i]; ok {
		return desc
	}
	return i.String()
}

// Values returns the given slice of concrete enum values
// as a slice of [Enum] interface values.
func Values[T Enum](values []T) []Enum {
	res := make([]Enum, len(values))
	for i, v := range values {
		res[i] = v
	}
	return res
}

// SetString sets the given enum value from its string representation
// using the given string-to-value map. It returns an error with the
// given type name if the string does not correspond to a value.
func SetString[T comparable](i *T, s string, valueMap map[string]T, typeName string) error {
	if v, ok := valueMap[s]; ok {
		*i = v
		return nil
	}
	return fmt.Errorf("%s is not a valid value for type %s", s, typeName)
}

// SetStringLower is like [SetString], but it also tries
// the lowercase version of the given string.
func SetStringLower[T comparable](i *T, s string, valueMap map[string]T, typeName string) error {
	if v, ok := valueMap[s]; ok {
		*i = v
		return nil
	}
	if v, ok := valueMap[strings.ToLower(s)]; ok {
		*i = v
		return nil
	}
	return fmt.Errorf("%s is not a valid value for type %s", s, typeName)
}

// UnmarshalText loads the given enum value from its text
// representation. Invalid values are logged with the given type name
// and otherwise ignored, so that loading stored data with outdated
// enum values does not fail.
func UnmarshalText[T EnumSetter](i T, text []byte, typeName string) error {
	if err := i.SetString(string(text)); err != nil {
		slog.Error(typeName + ".UnmarshalText: " + err.Error())
	}
	return nil
}

// UnmarshalJSON loads the given enum value from its JSON string
// representation, with the same tolerance for invalid values
// as [UnmarshalText].
func UnmarshalJSON[T EnumSetter](i T, data []byte, typeName string) error {
	s, err := strconv.Unquote(string(data))
	if err != nil {
		return fmt.Errorf("%s.UnmarshalJSON: %w", typeName, err)
	}
	return UnmarshalText(i, []byte(s), typeName)
}

// UnmarshalYAML loads the given enum value from the given YAML node,
// with the same tolerance for invalid values as [UnmarshalText].
func UnmarshalYAML[T EnumSetter](i T, n *yaml.Node, typeName string) error {
	return UnmarshalText(i, []byte(n.Value), typeName)
}

// Scan loads the given enum value from the given database value,
// which must be a string, []byte, or nil (which does nothing).
func Scan[T EnumSetter](i T, value any, typeName string) error {
	if value == nil {
		return nil
	}
	str, ok := value.(string)
	if !ok {
		bytes, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("%s.Scan: value is not a string or []byte", typeName)
		}
		str = string(bytes)
	}
	return i.SetString(str)
}

// HasFlag returns whether the given flags have the given flag set.
// It is the generic implementation of [BitFlag.HasFlag] methods,
// and it is atomic.
func HasFlag(i *int64, f BitFlag) bool {
	return atomic.LoadInt64(i)&(1<<uint32(f.Int64())) != 0
}

// SetFlag sets the value of the given flags in the given flags to
// the given value. It is the generic implementation of
// [BitFlagSetter.SetFlag] methods, and it is atomic.
func SetFlag(i *int64, on bool, f ...BitFlag) {
	var mask int64
	for _, v := range f {
		mask |= 1 << uint32(v.Int64())
	}
	for {
		old := atomic.LoadInt64(i)
		var in int64
		if on {
			in = old | mask
		} else {
			in = old &^ mask
		}
		if atomic.CompareAndSwapInt64(i, old, in) {
			return
		}
	}
}

// BitFlagString returns the string representation of the given bit
// flag value as a |-separated list of the string representations of
// all of the set flags, using the given list of all possible values
// for the type.
func BitFlagString[T BitFlag](i T, values []T) string {
	str := ""
	for _, ie := range values {
		if i.HasFlag(ie) {
			ies := ie.BitIndexString()
			if str == "" {
				str = ies
			} else {
				str += "|" + ies
			}
		}
	}
	return str
}

// SetStringOr sets the given bit flags from their |-separated string
// representation using the given string-to-value map, without
// clearing any flags that are already set.
func SetStringOr[T interface {
	BitFlag
	comparable
}](i BitFlagSetter, s string, valueMap map[string]T, typeName string) error {
	flags := strings.Split(s, "|")
	for _, flag := range flags {
		if flag == "" {
			continue
		}
		if v, ok := valueMap[flag]; ok {
			i.SetFlag(true, v)
		} else {
			return fmt.Errorf("%s is not a valid value for type %s", flag, typeName)
		}
	}
	return nil
}

// SetStringOrLower is like [SetStringOr], but it also tries
// the lowercase version of each flag string.
func SetStringOrLower[T interface {
	BitFlag
	comparable
}](i BitFlagSetter, s string, valueMap map[string]T, typeName string) error {
	flags := strings.Split(s, "|")
	for _, flag := range flags {
		if flag == "" {
			continue
		}
		if v, ok := valueMap[flag]; ok {
			i.SetFlag(true, v)
		} else if v, ok := valueMap[strings.ToLower(flag)]; ok {
			i.SetFlag(true, v)
		} else {
			return fmt.Errorf("%s is not a valid value for type %s", flag, typeName)
		}
	}
	return nil
}
