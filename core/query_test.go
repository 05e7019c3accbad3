// Copyright (c) 2025, Tessera Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"tessera.dev/tessera/styles"
)

// queryFixture builds a tree exercising all three sequences:
//
//	ct
//	  docked:   north
//	  items:    row > [a, b("beta")]
//	  floating: f
func queryFixture() (ct, row *Container, north, a, b, f *Text) {
	sc := newTestScene("query", 300, 300)
	ct = NewContainer(sc)
	row = NewContainer()
	row.SetName("row")
	ct.Add(row)
	a = NewText()
	a.SetName("a")
	b = NewText()
	b.SetName("b")
	b.SetText("beta")
	row.Add(a, b)
	north = NewText()
	north.SetName("north")
	ct.AddDocked(north)
	f = NewText()
	f.SetName("f")
	f.SetState(true, styles.Floating)
	ct.Add(f)
	return ct, row, north, a, b, f
}

func TestQueryAll(t *testing.T) {
	ct, row, north, a, b, f := queryFixture()
	// presentation order: docked, items each with their subtree, floating
	assert.Equal(t, []Component{north, row, a, b, f}, ct.Query(""))
}

func TestQueryByType(t *testing.T) {
	ct, row, north, a, b, f := queryFixture()
	assert.Equal(t, []Component{north, a, b, f}, ct.Query("text"))
	assert.Equal(t, []Component{north, a, b, f}, ct.Query("tessera.dev/tessera/core.Text"))
	assert.Equal(t, []Component{row}, ct.Query("container"))
}

func TestQueryTypeMatchesEmbedders(t *testing.T) {
	ct := NewContainer(newTestScene("query-embed", 300, 300))
	p := NewPanel()
	ct.Add(p)
	assert.Equal(t, []Component{p, p.Header}, ct.Query("container"))
	assert.Same(t, p.Header.TitleText, ct.Down("text"))
}

func TestQueryByName(t *testing.T) {
	ct, _, _, _, b, _ := queryFixture()
	assert.Equal(t, []Component{b}, ct.Query("#b"))
	assert.Empty(t, ct.Query("#missing"))
}

func TestQueryByProperty(t *testing.T) {
	ct, row, north, a, b, f := queryFixture()
	assert.Equal(t, []Component{b}, ct.Query("[Text]"))
	assert.Equal(t, []Component{b}, ct.Query("[Text=beta]"))
	assert.Empty(t, ct.Query("[Text=gamma]"))

	b.Styles.Size.Set(50, 20)
	assert.Equal(t, []Component{b}, ct.Query("[Size.X]"))
	assert.Equal(t, []Component{b}, ct.Query("[Size.X=50]"))

	assert.Equal(t, []Component{f}, ct.Query("[Floating]"))
	a.Hide()
	assert.Equal(t, []Component{a}, ct.Query("[Invisible]"))
	assert.Equal(t, []Component{north, row, b, f}, ct.Query("[Invisible=false]"))

	assert.Empty(t, ct.Query("[Bogus]"))
	assert.Empty(t, ct.Query("[Text")) // unterminated
}

func TestQueryDescendantChain(t *testing.T) {
	ct, row, _, a, b, _ := queryFixture()
	assert.Equal(t, []Component{a, b}, ct.Query("#row text"))
	assert.Equal(t, []Component{a}, ct.Query("container #a"))
	assert.Empty(t, ct.Query("#row #north"))

	// chains resolve within the queried container, not above it
	assert.Empty(t, ct.Query("scene #a"))
	assert.Empty(t, row.Query("container #a"))
	assert.Equal(t, []Component{a}, row.Query("#a"))
}

func TestQueryDown(t *testing.T) {
	ct, _, north, _, _, _ := queryFixture()
	assert.Same(t, north, ct.Down("")) // docked comes first
	assert.Same(t, north, ct.Down("text"))
	assert.Nil(t, ct.Down("#missing"))
}

func TestContainerChild(t *testing.T) {
	_, row, _, a, b, _ := queryFixture()
	assert.Same(t, a, row.Child(0))
	assert.Same(t, b, row.Child(1))
	assert.Same(t, b, row.Child(-1))
	assert.Same(t, a, row.Child(-2))
	assert.Nil(t, row.Child(2))
	assert.Nil(t, row.Child(-3))

	assert.Same(t, b, row.Child("#b"))
	assert.Same(t, a, row.Child("text"))
	assert.Same(t, b, row.Child("[Text=beta]"))
	assert.Nil(t, row.Child(3.14))
}

func TestChildExcludesDockedAndFloating(t *testing.T) {
	ct, row, _, _, _, _ := queryFixture()
	assert.Same(t, row, ct.Child(0))
	assert.Same(t, row, ct.Child(-1))
	assert.Nil(t, ct.Child(1))
	assert.Nil(t, ct.Child("#north"))
	assert.Nil(t, ct.Child("#f"))
}
