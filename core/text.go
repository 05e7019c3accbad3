// Copyright (c) 2025, Tessera Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"tessera.dev/tessera/math32"
	"tessera.dev/tessera/styles"
)

// Nominal text metrics. The renderer owns real text shaping; these
// give text a deterministic extent for layout purposes.
const (
	// TextCharWidth is the nominal advance of one character.
	TextCharWidth float32 = 8

	// TextLineHeight is the nominal height of one line of text.
	TextLineHeight float32 = 16
)

// Text is a leaf component that displays a string. Its default size
// comes from the nominal text metrics, so layout is deterministic
// without a text shaper; explicit style sizes override it.
type Text struct {
	ComponentBase

	// Text is the text to display.
	Text string

	// nominal is the extent last applied by the default styler, to
	// tell it apart from an explicitly styled Min.
	nominal math32.Vector2
}

func (tx *Text) Init() {
	tx.ComponentBase.Init()
	tx.Styler(func(s *styles.Style) {
		w := TextCharWidth * float32(len([]rune(tx.Text)))
		if s.Min.X == 0 || s.Min.X == tx.nominal.X {
			s.Min.X = w
			tx.nominal.X = w
		}
		if s.Min.Y == 0 || s.Min.Y == tx.nominal.Y {
			s.Min.Y = TextLineHeight
			tx.nominal.Y = TextLineHeight
		}
	})
}

// SetText sets the text and updates the component so the change takes
// effect, including any size change from the nominal metrics.
func (tx *Text) SetText(text string) *Text {
	tx.Text = text
	tx.Update()
	return tx
}
