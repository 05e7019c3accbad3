// Copyright (c) 2025, Tessera Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

//go:generate core generate

// Dims is a list of vector dimension (component) names.
type Dims int32 //enums:enum

const (
	// X is the horizontal axis.
	X Dims = iota

	// Y is the vertical axis.
	Y
)

// Other returns the other dimension.
func (d Dims) Other() Dims {
	if d == X {
		return Y
	}
	return X
}
