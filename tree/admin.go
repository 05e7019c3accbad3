// Copyright (c) 2025, Tessera Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import (
	"reflect"
	"slices"
	"strconv"
	"sync/atomic"

	"tessera.dev/tessera/types"
)

// admin.go has infrastructure code outside of the [Node] interface.

// New returns a new node of the given type. If no parent is given,
// the node is a root node named after the ID (kebab-case) name of
// its type. If a parent is given, the node is added to it, and its
// name defaults to the ID name of the type plus the total number of
// children the parent has ever had.
func New[T Node](parent ...Node) T {
	n := reflect.New(reflect.TypeOf((*T)(nil)).Elem().Elem()).Interface().(T)
	InitNode(n)
	if len(parent) == 0 {
		n.AsTree().SetName(n.AsTree().NodeType().IDName)
		return n
	}
	p := parent[0].AsTree()
	p.Children = append(p.Children, n)
	SetParent(n, p)
	return n
}

// NewOfType returns a new node of the given [types.Type].
// It returns nil if the type is not registered with an instance
// or is not a [Node] type.
func NewOfType(typ *types.Type) Node {
	n, _ := types.NewInstance(typ).(Node)
	return n
}

// InitNode initializes the node: it sets the [NodeBase.This] field to the
// node if it is not already set and calls [Node.Init] if it was not. This
// must be called on every node before it is used, which is done automatically
// by all node creation and child management functions.
func InitNode(n Node) {
	nb := n.AsTree()
	if nb.This != n {
		nb.This = n
		nb.This.Init()
	}
}

// SetParent sets the parent of the given child node to the given parent,
// which must already contain the child in its list of children (this is done
// automatically by the child adding functions; see [MoveToParent] to fully
// move a node from one parent to another). It gives the child its automatic
// name if it does not have one, calls [Node.OnAdd] on the child, and calls
// [NodeBase.OnChildAdded] on the child's new parents.
func SetParent(child Node, parent Node) {
	nb := child.AsTree()
	pb := parent.AsTree()
	if pb.This != nil {
		// store the true underlying type so that the parent can be
		// directly asserted to higher-level interfaces
		nb.Parent = pb.This
	} else {
		nb.Parent = parent
	}
	c := atomic.AddUint64(&pb.numLifetimeChildren, 1)
	if nb.Name == "" {
		nb.SetName(nb.NodeType().IDName + "-" + strconv.FormatUint(c-1, 10)) // must subtract 1 so we start at 0
	}
	child.OnAdd()
	nb.WalkUpParent(func(pn Node) bool {
		if pnb := pn.AsTree(); pnb.OnChildAdded != nil {
			pnb.OnChildAdded(child)
		}
		return Continue
	})
}

// MoveToParent removes the given node from its current parent
// and adds it as a child of the given new parent.
// The old and new parents can be in different trees (or not).
func MoveToParent(child Node, parent Node) {
	oldParent := child.AsTree().Parent
	if oldParent != nil {
		idx := IndexOf(oldParent.AsTree().Children, child)
		if idx >= 0 {
			oldParent.AsTree().Children = slices.Delete(oldParent.AsTree().Children, idx, idx+1)
		}
	}
	parent.AsTree().AddChild(child)
}

// IsRoot reports whether the given node is the root node
// of its tree (i.e., it has no parent).
func IsRoot(n *NodeBase) bool {
	return n.Parent == nil
}

// Root returns the root node of the tree containing the
// given node (the node whose parent is nil).
func Root(n Node) Node {
	root := n
	n.AsTree().WalkUp(func(k Node) bool {
		root = k
		return Continue
	})
	return root
}
