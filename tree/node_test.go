// Copyright (c) 2025, Tessera Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// testNode is a basic node type with a data field for testing.
type testNode struct {
	NodeBase
	Value string
}

// lifeNode records lifecycle calls for testing.
type lifeNode struct {
	NodeBase
	inits int
	adds  int
}

func (n *lifeNode) Init() {
	n.inits++
}

func (n *lifeNode) OnAdd() {
	n.adds++
}

// partsNode owns additional nodes that are not part of its children,
// which it traverses through NodeWalkDown.
type partsNode struct {
	NodeBase
	parts []Node
}

func (n *partsNode) NodeWalkDown(fun func(k Node) bool) {
	for _, p := range n.parts {
		p.AsTree().WalkDown(fun)
	}
}

func TestNodeAddChild(t *testing.T) {
	parent := NewNodeBase()
	child := &NodeBase{}
	parent.AddChild(child)
	child.SetName("child1")
	assert.Len(t, parent.Children, 1)
	assert.Equal(t, parent.This, child.Parent)
	assert.Equal(t, "/node-base/child1", child.Path())
}

func TestNodeNewAutoName(t *testing.T) {
	parent := New[*testNode]()
	assert.Equal(t, "test-node", parent.Name)
	child1 := New[*testNode](parent)
	child2 := New[*testNode](parent)
	assert.Len(t, parent.Children, 2)
	assert.Equal(t, "test-node-0", child1.Name)
	assert.Equal(t, "test-node-1", child2.Name)
	assert.Equal(t, parent.NodeType(), child1.NodeType())
	assert.Equal(t, "test-node", parent.NodeType().IDName)
}

func TestNodeNewChild(t *testing.T) {
	parent := New[*testNode]()
	child := parent.NewChild(parent.NodeType())
	assert.Len(t, parent.Children, 1)
	assert.Equal(t, "/test-node/test-node-0", child.AsTree().Path())
	assert.IsType(t, &testNode{}, child)
}

func TestNodePath(t *testing.T) {
	parent := New[*testNode]()
	child1 := New[*testNode](parent)
	child2 := New[*testNode](parent)
	sub := New[*testNode](child2)
	assert.Equal(t, "/test-node/test-node-0", child1.Path())
	assert.Equal(t, "/test-node/test-node-1", child2.Path())
	assert.Equal(t, "/test-node/test-node-1/test-node-0", sub.Path())
	assert.Equal(t, "test-node-1/test-node-0", sub.PathFrom(parent))
	assert.Equal(t, "", parent.PathFrom(parent))
}

func TestNodeEscapePaths(t *testing.T) {
	parent := New[*testNode]()
	parent.SetName("par1")
	child := New[*testNode](parent)
	child.SetName("child1.go")
	child2 := New[*testNode](parent)
	child2.SetName("child1/child1")
	child3 := New[*testNode](parent)
	child3.SetName("child1/child1.go")
	schild2 := New[*testNode](child2)
	schild2.SetName("subchild1")

	assert.Equal(t, `/par1/child1.go`, child.Path())
	assert.Equal(t, `/par1/child1\\child1`, child2.Path())
	assert.Equal(t, `/par1/child1\\child1.go`, child3.Path())
	assert.Equal(t, `/par1/child1\\child1/subchild1`, schild2.Path())
	assert.Equal(t, `child1\\child1/subchild1`, schild2.PathFrom(parent))

	assert.Same(t, child2, parent.FindPath(child2.PathFrom(parent)))
	assert.Same(t, child3, parent.FindPath(`child1\\child1.go`))
	assert.Same(t, schild2, parent.FindPath(`child1\\child1/subchild1`))
	assert.Nil(t, parent.FindPath(`nonexistent`))
}

func TestNodeFindPathIndex(t *testing.T) {
	parent := New[*testNode]()
	child1 := New[*testNode](parent)
	child2 := New[*testNode](parent)
	sub := New[*testNode](child2)
	assert.Same(t, child1, parent.FindPath("[0]"))
	assert.Same(t, child2, parent.FindPath("[1]"))
	assert.Same(t, child2, parent.FindPath("[-1]"))
	assert.Same(t, sub, parent.FindPath("[1]/[0]"))
	assert.Nil(t, parent.FindPath("[2]"))
}

func TestNodeChildByName(t *testing.T) {
	parent := New[*testNode]()
	names := []string{"name0", "name1", "name2", "name3", "name4", "name5"}
	for _, nm := range names {
		New[*testNode](parent).SetName(nm)
	}
	assert.Len(t, parent.Children, len(names))
	for i, nm := range names {
		for st := range names { // all starting indexes find the same child
			idx := IndexByName(parent.Children, nm, st)
			assert.Equal(t, i, idx)
		}
	}
	assert.Equal(t, -1, IndexByName(parent.Children, "nonexistent"))
	assert.Same(t, parent.Children[2], parent.ChildByName("name2"))
	assert.Nil(t, parent.ChildByName("nonexistent"))
}

func TestNodeChildByType(t *testing.T) {
	parent := New[*testNode]()
	plain := NewNodeBase(parent)
	custom := New[*testNode](parent)
	assert.Equal(t, 0, IndexByType(parent.Children, plain.NodeType(), false))
	assert.Equal(t, 1, IndexByType(parent.Children, custom.NodeType(), false))
	assert.Equal(t, 1, IndexByType(parent.Children, custom.NodeType(), true, 0))
	assert.Equal(t, -1, IndexByType(nil, custom.NodeType(), false))
}

func TestNodeDeleteChild(t *testing.T) {
	parent := New[*testNode]()
	child := New[*testNode](parent)
	assert.True(t, parent.DeleteChild(child))
	assert.Len(t, parent.Children, 0)
	assert.Nil(t, child.This)
	assert.False(t, parent.DeleteChild(nil))
}

func TestNodeDeleteChildByName(t *testing.T) {
	parent := New[*testNode]()
	child := New[*testNode](parent)
	child.SetName("child1")
	assert.True(t, parent.DeleteChildByName("child1"))
	assert.False(t, parent.DeleteChildByName("child2"))
	assert.Len(t, parent.Children, 0)
}

func TestNodeDeleteChildAt(t *testing.T) {
	parent := New[*testNode]()
	New[*testNode](parent)
	assert.False(t, parent.DeleteChildAt(3))
	assert.True(t, parent.DeleteChildAt(0))
	assert.Len(t, parent.Children, 0)
}

func TestNodeDeleteChildren(t *testing.T) {
	parent := New[*testNode]()
	child1 := New[*testNode](parent)
	child2 := New[*testNode](parent)
	sub := New[*testNode](child2)
	parent.DeleteChildren()
	assert.Len(t, parent.Children, 0)
	assert.Nil(t, child1.This)
	assert.Nil(t, child2.This)
	assert.Nil(t, sub.This)
	assert.NotNil(t, parent.This)
}

func TestNodeDelete(t *testing.T) {
	parent := New[*testNode]()
	child := New[*testNode](parent)
	child.Delete()
	assert.Len(t, parent.Children, 0)
	assert.Nil(t, child.This)

	root := New[*testNode]()
	root.Delete() // deleting a root node just destroys it
	assert.Nil(t, root.This)
}

func TestNodeDestroy(t *testing.T) {
	parent := New[*testNode]()
	child := New[*testNode](parent)
	sub := New[*testNode](child)
	parent.Destroy()
	assert.Nil(t, parent.This)
	assert.Nil(t, child.This)
	assert.Nil(t, sub.This)
	parent.Destroy() // safe to call again
}

func TestNodeInsertChild(t *testing.T) {
	parent := New[*testNode]()
	New[*testNode](parent).SetName("one")
	New[*testNode](parent).SetName("three")
	two := &testNode{}
	two.SetName("two")
	parent.InsertChild(two, 1)
	assert.Equal(t, []string{"one", "two", "three"}, childNames(parent))
	assert.Equal(t, parent.This, two.Parent)
}

func TestMoveToParent(t *testing.T) {
	parent1 := New[*testNode]()
	parent2 := New[*testNode]()
	child := New[*testNode](parent1)
	child.SetName("child")
	MoveToParent(child, parent2)
	assert.Len(t, parent1.Children, 0)
	assert.Len(t, parent2.Children, 1)
	assert.Equal(t, parent2.This, child.Parent)
	assert.Equal(t, "child", child.Name) // name is preserved on move
	assert.NotNil(t, child.This)
}

func TestMoveChild(t *testing.T) {
	parent := New[*testNode]()
	for _, nm := range []string{"a", "b", "c", "d"} {
		New[*testNode](parent).SetName(nm)
	}
	parent.Children = Move(parent.Children, 3, 1)
	assert.Equal(t, []string{"a", "d", "b", "c"}, childNames(parent))
	Swap(parent.Children, 0, 2)
	assert.Equal(t, []string{"b", "d", "a", "c"}, childNames(parent))
}

func TestNodeIndexInParent(t *testing.T) {
	parent := New[*testNode]()
	for i := 0; i < 5; i++ {
		New[*testNode](parent)
	}
	child := parent.Child(3)
	assert.Equal(t, 3, child.AsTree().IndexInParent())
	parent.Children = Move(parent.Children, 3, 0)
	assert.Equal(t, 0, child.AsTree().IndexInParent())
	root := New[*testNode]()
	assert.Equal(t, -1, root.IndexInParent())
}

func TestNodeProperties(t *testing.T) {
	n := New[*testNode]()
	n.SetProperty("region", "north")
	n.SetProperty("weight", 42)
	assert.Equal(t, "north", n.Property("region"))
	assert.Equal(t, 42, n.Property("weight"))
	assert.Nil(t, n.Property("nonexistent"))
	n.DeleteProperty("region")
	assert.Nil(t, n.Property("region"))
}

func TestNodeParents(t *testing.T) {
	parent := New[*testNode]()
	parent.SetName("root")
	mid := New[*testNode](parent)
	mid.SetName("mid")
	leaf := New[*testNode](mid)

	assert.Equal(t, 1, leaf.ParentLevel(mid.This))
	assert.Equal(t, 2, leaf.ParentLevel(parent.This))
	assert.Equal(t, -1, leaf.ParentLevel(leaf.This))
	assert.Same(t, mid, leaf.ParentByName("mid"))
	assert.Same(t, parent, leaf.ParentByName("root"))
	assert.Nil(t, leaf.ParentByName("nonexistent"))
	assert.Same(t, parent, Root(leaf))
	assert.True(t, IsRoot(parent.AsTree()))
	assert.False(t, IsRoot(leaf.AsTree()))
}

func TestWalkDown(t *testing.T) {
	parent := New[*testNode]()
	parent.SetName("root")
	child1 := New[*testNode](parent)
	child1.SetName("child1")
	New[*testNode](child1).SetName("sub1")
	New[*testNode](parent).SetName("child2")

	var paths []string
	parent.WalkDown(func(n Node) bool {
		paths = append(paths, n.AsTree().Path())
		return Continue
	})
	assert.Equal(t, []string{"/root", "/root/child1", "/root/child1/sub1", "/root/child2"}, paths)
}

func TestWalkDownBreak(t *testing.T) {
	parent := New[*testNode]()
	parent.SetName("root")
	child1 := New[*testNode](parent)
	child1.SetName("child1")
	New[*testNode](child1).SetName("sub1")
	New[*testNode](parent).SetName("child2")

	var names []string
	parent.WalkDown(func(n Node) bool {
		names = append(names, n.AsTree().Name)
		if n.AsTree().Name == "child1" {
			return Break // skips sub1 but not child2
		}
		return Continue
	})
	assert.Equal(t, []string{"root", "child1", "child2"}, names)
}

func TestWalkDownExtraNodes(t *testing.T) {
	parent := New[*partsNode]()
	parent.SetName("root")
	extra := New[*testNode]()
	extra.SetName("extra")
	SetParent(extra, parent)
	parent.parts = []Node{extra}
	New[*partsNode](parent).SetName("child")

	var names []string
	parent.WalkDown(func(n Node) bool {
		names = append(names, n.AsTree().Name)
		return Continue
	})
	// extra nodes come after the node itself and before its children
	assert.Equal(t, []string{"root", "extra", "child"}, names)
}

func TestWalkDownPost(t *testing.T) {
	parent := New[*testNode]()
	parent.SetName("root")
	child1 := New[*testNode](parent)
	child1.SetName("child1")
	New[*testNode](child1).SetName("sub1")
	New[*testNode](parent).SetName("child2")

	var names []string
	parent.WalkDownPost(func(n Node) bool {
		return Continue
	}, func(n Node) bool {
		names = append(names, n.AsTree().Name)
		return Continue
	})
	assert.Equal(t, []string{"sub1", "child1", "child2", "root"}, names)
}

func TestWalkDownBreadth(t *testing.T) {
	parent := New[*testNode]()
	parent.SetName("root")
	child1 := New[*testNode](parent)
	child1.SetName("child1")
	New[*testNode](child1).SetName("sub1")
	New[*testNode](parent).SetName("child2")

	var names []string
	parent.WalkDownBreadth(func(n Node) bool {
		names = append(names, n.AsTree().Name)
		return Continue
	})
	assert.Equal(t, []string{"root", "child1", "child2", "sub1"}, names)
}

func TestWalkUp(t *testing.T) {
	parent := New[*testNode]()
	parent.SetName("root")
	mid := New[*testNode](parent)
	mid.SetName("mid")
	leaf := New[*testNode](mid)
	leaf.SetName("leaf")

	var names []string
	leaf.WalkUp(func(n Node) bool {
		names = append(names, n.AsTree().Name)
		return Continue
	})
	assert.Equal(t, []string{"leaf", "mid", "root"}, names)

	names = nil
	leaf.WalkUpParent(func(n Node) bool {
		names = append(names, n.AsTree().Name)
		return Continue
	})
	assert.Equal(t, []string{"mid", "root"}, names)
}

func TestOnChildAdded(t *testing.T) {
	parent := New[*testNode]()
	var onParent, onChild []string
	parent.OnChildAdded = func(n Node) {
		onParent = append(onParent, n.AsTree().Name)
	}
	child := New[*testNode](parent)
	child.OnChildAdded = func(n Node) {
		onChild = append(onChild, n.AsTree().Name)
	}
	New[*testNode](child)
	// the parent is notified for both direct and nested additions
	assert.Equal(t, []string{"test-node-0", "test-node-0"}, onParent)
	assert.Equal(t, []string{"test-node-0"}, onChild)
}

func TestLifecycle(t *testing.T) {
	parent := New[*lifeNode]()
	assert.Equal(t, 1, parent.inits)
	assert.Equal(t, 0, parent.adds) // root nodes are never added

	child := New[*lifeNode](parent)
	assert.Equal(t, 1, child.inits)
	assert.Equal(t, 1, child.adds)

	other := New[*lifeNode]()
	MoveToParent(child, other)
	assert.Equal(t, 1, child.inits) // init is only ever called once
	assert.Equal(t, 2, child.adds)  // moves re-add
}

func TestNodeCopyFrom(t *testing.T) {
	to := New[*testNode]()
	keep := New[*testNode](to)
	keep.SetName("a")

	from := New[*testNode]()
	from.Value = "root"
	fa := New[*testNode](from)
	fa.SetName("a")
	fa.Value = "x"
	fb := New[*testNode](from)
	fb.SetName("b")
	fb.Value = "y"
	fb.SetProperty("key", "val")

	to.CopyFrom(from)
	assert.Equal(t, "root", to.Value)
	assert.Len(t, to.Children, 2)
	// matching children are preserved in place, not reallocated
	assert.Same(t, keep, to.Children[0])
	assert.Equal(t, "x", to.Children[0].(*testNode).Value)
	assert.Equal(t, "y", to.Children[1].(*testNode).Value)
	assert.Equal(t, "b", to.Children[1].AsTree().Name)
	assert.Equal(t, "val", to.Children[1].AsTree().Property("key"))
	assert.Equal(t, to.This, to.Children[1].AsTree().Parent)
}

func TestNodeClone(t *testing.T) {
	n := New[*testNode]()
	n.SetName("orig")
	n.Value = "v"
	c1 := New[*testNode](n)
	c1.SetName("c1")
	c1.Value = "v1"
	New[*testNode](c1).SetName("c11")

	clone := n.Clone()
	cb := clone.(*testNode)
	assert.NotSame(t, n, cb)
	assert.Equal(t, "orig", cb.Name)
	assert.Equal(t, "v", cb.Value)
	assert.Len(t, cb.Children, 1)
	assert.Equal(t, "c1", cb.Children[0].AsTree().Name)
	assert.Equal(t, "v1", cb.Children[0].(*testNode).Value)
	assert.Len(t, cb.Children[0].AsTree().Children, 1)
	// the clone is fully disjoint from the original
	cb.Children[0].AsTree().SetName("changed")
	assert.Equal(t, "c1", c1.Name)
}

func TestNewOfType(t *testing.T) {
	typ := New[*testNode]().NodeType()
	n := NewOfType(typ)
	assert.IsType(t, &testNode{}, n)
	assert.Nil(t, NewOfType(nil))
}

func TestNodeString(t *testing.T) {
	n := New[*testNode]()
	child := New[*testNode](n)
	child.SetName("c")
	assert.Equal(t, "/test-node/c", child.String())
	var nb *NodeBase
	assert.Equal(t, "nil", nb.String())
}

// childNames returns the names of the children of the given node.
func childNames(n *testNode) []string {
	var names []string
	for _, k := range n.Children {
		names = append(names, k.AsTree().Name)
	}
	return names
}
