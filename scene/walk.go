// Copyright (c) 2020, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"slices"
	"sort"
)

const (
	// Continue = true can be returned from tree iteration functions to continue
	// processing down the tree, as compared to Break = false which stops this branch.
	Continue = true

	// Break = false can be returned from tree iteration functions to stop processing
	// this branch of the tree.
	Break = false
)

// WalkUp calls the given function on the node and all of its parents.
// It stops walking if the function returns [Break] and keeps walking
// if it returns [Continue]. It returns whether walking was finished.
func (n *NodeBase) WalkUp(fun func(n Node) bool) bool {
	cur := n.This
	for {
		if !fun(cur) {
			return false
		}
		parent := cur.AsNode().Parent
		if parent == nil || parent == cur { // prevent loops
			return true
		}
		cur = parent
	}
}

// WalkDown calls the given function on the node and all of its
// children in a depth-first manner, in the order of [SortedChildren].
// It stops walking the current branch of the tree if the function
// returns [Break]. The children are read after the function is called
// on their parent, so it can safely add or remove them.
func (n *NodeBase) WalkDown(fun func(n Node) bool) {
	if n.This == nil || !fun(n.This) {
		return
	}
	for _, k := range SortedChildren(n.This) {
		k.AsNode().WalkDown(fun)
	}
}

// WalkDownPost calls the given function on the node and all of its
// children, children first, in reverse [SortedChildren] order: this is
// front to back order for hit testing.
func (n *NodeBase) WalkDownPost(fun func(n Node) bool) bool {
	kids := SortedChildren(n.This)
	for i := len(kids) - 1; i >= 0; i-- {
		if !kids[i].AsNode().WalkDownPost(fun) {
			return false
		}
	}
	return fun(n.This)
}

// SortedChildren returns the children of the node in drawing order:
// by increasing ZOrder, then by insertion order.
func SortedChildren(n Node) []Node {
	kids := slices.Clone(n.AsNode().Children)
	sort.SliceStable(kids, func(i, j int) bool {
		return kids[i].AsNode().ZOrder < kids[j].AsNode().ZOrder
	})
	return kids
}
