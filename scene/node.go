// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scene provides a minimal retained-mode scene graph host for
// the scroll subsystem: a tree of transformed nodes with opacity,
// input listeners and per-node actions, and a [Scene] that drives it
// frame by frame. It has no renderer.
package scene

// Node is an interface that all scene nodes satisfy. The core
// functionality is defined on [NodeBase], which all node types must
// embed; this interface only contains the methods that node types
// may need to override. Nodes must be created with [New] or
// initialized with [InitNode] so that [NodeBase.This] is set.
type Node interface {

	// AsNode returns the [NodeBase] of this Node.
	AsNode() *NodeBase

	// Init is called once when the node is initialized, before it is
	// added to a parent.
	Init()

	// OnEnter is called when the node becomes part of a running scene,
	// which is passed explicitly as the node context.
	OnEnter(sc *Scene)

	// OnExit is called when the node leaves its running scene.
	OnExit()

	// Update is called once per frame on every running node, after the
	// actions were stepped and the dirty observers were notified.
	Update(dt float32)

	// OnContentSizeDirty is called at the next frame after the content
	// size of the node changed.
	OnContentSizeDirty()

	// OnTransformDirty is called at the next frame after the transform
	// of the node, or of one of its parents, changed.
	OnTransformDirty()

	// CopyFieldsFrom copies the fields of the node from the given node.
	// By default, it is [NodeBase.CopyFieldsFrom], which automatically
	// does a deep copy of all of the fields of the node that do not have
	// a `copier:"-"` struct tag.
	CopyFieldsFrom(from Node)
}

// New returns a new initialized node of the type of the given
// pointer, like New[*Sprite]().
func New[T Node]() T {
	var n T
	n = newOf(n).(T)
	InitNode(n)
	return n
}

// InitNode initializes the given node: it sets [NodeBase.This] and
// the default field values, and calls [Node.Init]. It does nothing
// if the node was already initialized.
func InitNode(n Node) {
	nb := n.AsNode()
	if nb.This != nil {
		return
	}
	nb.This = n
	nb.Scale = onesVector
	nb.Opacity = 1
	nb.CascadeOpacity = true
	nb.Visible = true
	n.Init()
}
