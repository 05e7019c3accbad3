// Copyright (c) 2025, Tessera Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tiered provides a type for a tiered set of objects
// of the same type: a first, normal, and final tier.
package tiered

// Tiered represents a tiered set of objects of the same type.
// The tiers are called in the order First, Normal, Final when run
// in ascending order, and in the reverse order when run descending.
type Tiered[T any] struct {

	// First is the first tier.
	First T

	// Normal is the normal tier.
	Normal T

	// Final is the final tier.
	Final T
}

// Do calls the given function on each tier of the Tiered object,
// going through the tiers in ascending order: First, Normal, Final.
func (t *Tiered[T]) Do(f func(*T)) {
	f(&t.First)
	f(&t.Normal)
	f(&t.Final)
}

// DoWith calls the given function on each tier of this Tiered object
// and the other given Tiered object, pairing corresponding tiers in
// ascending order.
func (t *Tiered[T]) DoWith(other *Tiered[T], f func(self, other *T)) {
	f(&t.First, &other.First)
	f(&t.Normal, &other.Normal)
	f(&t.Final, &other.Final)
}
