// Copyright (c) 2025, Tessera Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package enums provides common interfaces for enums and bit flag enums,
// and the generic method implementations that the checked-in generated
// code for each enum type calls.
package enums

// Enum is the interface that all enum types satisfy.
// Enum types must be convertible to strings and int64s,
// and must be able to return all possible enum values
// and descriptions of their values.
type Enum interface {

	// String returns the string representation of this enum value.
	String() string

	// Int64 returns the enum value as an int64.
	Int64() int64

	// Desc returns the description of the enum value.
	Desc() string

	// Values returns all possible values this enum type has.
	Values() []Enum
}

// EnumSetter is an expanded interface that all pointers
// to enum types satisfy. They must also be settable from
// strings and int64s.
type EnumSetter interface {
	Enum

	// SetString sets the enum value from its string representation,
	// and returns an error if the string is invalid.
	SetString(s string) error

	// SetInt64 sets the enum value from an int64.
	SetInt64(i int64)
}

// BitFlag is the interface that all bit flag enum types satisfy.
// Bit flags are enums whose values are bit indices, so that multiple
// values can be set at the same time in one int64 container.
type BitFlag interface {
	Enum

	// BitIndexString returns the string representation of this enum
	// value as a bit index, not a bit mask.
	BitIndexString() string

	// HasFlag returns whether these flags have the given flag set.
	HasFlag(f BitFlag) bool
}

// BitFlagSetter is an expanded interface that all pointers
// to bit flag types satisfy.
type BitFlagSetter interface {
	BitFlag
	EnumSetter

	// SetFlag sets the value of the given flags in these flags
	// to the given value.
	SetFlag(on bool, f ...BitFlag)

	// SetStringOr sets the bit flags from their string representation
	// while preserving any flags already set.
	SetStringOr(s string) error
}
