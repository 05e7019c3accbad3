// Copyright (c) 2025, Tessera Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLog(t *testing.T) {
	err := New("oops")
	assert.Equal(t, err, Log(err))
	assert.NoError(t, Log(nil))
}

func TestLog1(t *testing.T) {
	assert.Equal(t, 3, Log1(3, New("oops")))
	assert.Equal(t, "ok", Log1("ok", nil))
}

func TestMust(t *testing.T) {
	assert.NotPanics(t, func() { Must(nil) })
	assert.Panics(t, func() { Must(New("oops")) })
	assert.Equal(t, 7, Must1(7, nil))
	assert.Panics(t, func() { Must1(0, New("oops")) })
}

func TestIgnore1(t *testing.T) {
	assert.Equal(t, 5, Ignore1(5, New("oops")))
}

func TestIsJoin(t *testing.T) {
	base := New("base")
	joined := Join(nil, base, New("other"))
	assert.True(t, Is(joined, base))

	wrapped := fmt.Errorf("loading: %w", base)
	assert.Equal(t, base, Unwrap(wrapped))
	assert.True(t, Is(wrapped, base))
}
