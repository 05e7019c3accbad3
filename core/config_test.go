// Copyright (c) 2025, Tessera Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"tessera.dev/tessera/styles"
)

func TestConfigAdd(t *testing.T) {
	ct := NewContainer(newTestScene("config", 300, 300))
	added := ct.Add(Config{
		Type:  "text",
		Name:  "greet",
		Props: map[string]any{"Text": "hello"},
	})
	if !assert.Len(t, added, 1) {
		return
	}
	txt, ok := added[0].(*Text)
	if !assert.True(t, ok) {
		return
	}
	assert.Equal(t, "greet", txt.Name)
	assert.Equal(t, "hello", txt.Text)
	assert.Same(t, ct, txt.Owner())
	assert.Equal(t, []Component{txt}, ct.Items())
}

func TestConfigLongTypeName(t *testing.T) {
	ct := NewContainer(newTestScene("config-long", 300, 300))
	added := ct.Add(Config{Type: "tessera.dev/tessera/core.Panel"})
	if !assert.Len(t, added, 1) {
		return
	}
	p, ok := added[0].(*Panel)
	if !assert.True(t, ok) {
		return
	}
	assert.NotNil(t, p.Header) // Init ran through the registry path
}

func TestConfigPropConversions(t *testing.T) {
	ct := NewContainer(newTestScene("config-props", 300, 300))
	added := ct.Add(Config{
		Type: "text",
		Props: map[string]any{
			"Styles.Size.X":    120, // int into float32
			"Styles.Size.Y":    "40",
			"Styles.Grow.Y":    1.0,
			"Styles.Direction": "Column",
		},
	})
	txt := added[0].(*Text)
	assert.Equal(t, float32(120), txt.Styles.Size.X)
	assert.Equal(t, float32(40), txt.Styles.Size.Y)
	assert.Equal(t, float32(1), txt.Styles.Grow.Y)
	assert.Equal(t, styles.Column, txt.Styles.Direction)
}

func TestConfigDefaultsMerge(t *testing.T) {
	ct := NewContainer(newTestScene("config-defaults", 300, 300))
	ct.Defaults = map[string]any{
		"Styles.Size.X": 50,
		"Styles.Size.Y": 25,
	}
	added := ct.Add(Config{
		Type:  "text",
		Props: map[string]any{"Styles.Size.X": 80},
	})
	txt := added[0].(*Text)
	assert.Equal(t, float32(80), txt.Styles.Size.X) // config wins
	assert.Equal(t, float32(25), txt.Styles.Size.Y) // default fills in
	assert.Len(t, ct.Defaults, 2)                   // merge does not mutate Defaults
}

func TestConfigNestedItems(t *testing.T) {
	ct := NewContainer(newTestScene("config-nested", 300, 300))
	added := ct.Add(Config{
		Type: "container",
		Name: "box",
		Items: []Config{
			{Type: "text", Name: "first"},
			{Type: "text"}, // gets automatic naming
		},
	})
	box, ok := added[0].(*Container)
	if !assert.True(t, ok) {
		return
	}
	assert.Equal(t, "box", box.Name)
	items := box.Items()
	if !assert.Len(t, items, 2) {
		return
	}
	assert.Equal(t, "first", items[0].AsComponent().Name)
	assert.Equal(t, "text-1", items[1].AsComponent().Name)
	assert.Same(t, box.Scene, items[1].AsComponent().Scene)
}

func TestConfigBadPropsSkipped(t *testing.T) {
	ct := NewContainer(newTestScene("config-bad", 300, 300))
	added := ct.Add(Config{
		Type: "text",
		Props: map[string]any{
			"Nope.Nope":     1,     // no such path
			"Styles.Size.X": "abc", // unparseable value
			"Text":          "ok",
		},
	})
	txt := added[0].(*Text)
	assert.Equal(t, "ok", txt.Text)
	assert.Equal(t, float32(0), txt.Styles.Size.X)
}

func TestConfigDocked(t *testing.T) {
	ct := NewContainer(newTestScene("config-dock", 300, 300))
	added := ct.AddDocked(Config{Type: "text", Name: "north"})
	if !assert.Len(t, added, 1) {
		return
	}
	assert.Equal(t, added, ct.DockedItems())
	assert.True(t, added[0].AsComponent().Styles.Docked)
}

func TestConfigUnregisteredTypePanics(t *testing.T) {
	ct := NewContainer(newTestScene("config-panic", 300, 300))
	assert.Panics(t, func() {
		ct.Add(Config{Type: "no-such-type"})
	})
}

func TestConfigItemsOnLeafPanics(t *testing.T) {
	ct := NewContainer(newTestScene("config-leaf", 300, 300))
	assert.Panics(t, func() {
		ct.Add(Config{Type: "text", Items: []Config{{Type: "text"}}})
	})
}
