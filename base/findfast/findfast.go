// Copyright (c) 2025, Tessera Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package findfast implements bidirectional slice searching that expands
// outward from a starting guess. Container child lists are mutated near
// previously known positions far more often than not, so seeding the
// search with a cached index turns most lookups into one or two probes.
package findfast

// FindFunc returns the index of the first item in the slice for which
// match returns true, searching bidirectionally outward from the optional
// startIndex. If startIndex is not given (or negative), the search starts
// from the middle of the slice. Returns -1 if no item matches.
func FindFunc[T any](s []T, match func(e T) bool, startIndex ...int) int {
	n := len(s)
	if n == 0 {
		return -1
	}
	start := n / 2
	if len(startIndex) > 0 && startIndex[0] >= 0 {
		start = min(startIndex[0], n-1)
	}
	if start == 0 { // plain forward scan; nothing below to search
		for i, e := range s {
			if match(e) {
				return i
			}
		}
		return -1
	}
	for down, up := start, start+1; down >= 0 || up < n; {
		if down >= 0 {
			if match(s[down]) {
				return down
			}
			down--
		}
		if up < n {
			if match(s[up]) {
				return up
			}
			up++
		}
	}
	return -1
}
