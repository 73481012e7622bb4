// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"log/slog"
	"reflect"
	"slices"
	"strings"

	"cogentcore.org/scroll/anim"
	"cogentcore.org/scroll/input"
	"cogentcore.org/scroll/math32"
	"github.com/jinzhu/copier"
)

var onesVector = math32.Vec2(1, 1)

// NodeBase implements the [Node] interface and provides the core
// functionality of scene nodes: the tree, the transform, opacity and
// visibility, input listeners and the action runner. It must be used
// as an embedded struct in all node types.
type NodeBase struct {

	// Name is the name of this node, used by paths and the state store.
	Name string `copier:"-"`

	// This is the value of this Node as its true underlying type.
	This Node `copier:"-"`

	// Parent is the parent of this node; it is a plain back pointer,
	// which is valid because parents outlive their children.
	Parent Node `copier:"-"`

	// Children are ordered by insertion; drawing and hit testing use
	// them sorted by ZOrder.
	Children []Node `copier:"-"`

	// Position is the position of the anchor point in parent coordinates.
	Position math32.Vector2

	// Anchor is the point of the node, as a fraction of the content size,
	// that is placed at Position.
	Anchor math32.Vector2

	// ContentSize is the size of the node in its own coordinates.
	ContentSize math32.Vector2

	// Scale is the scale of the node around its anchor.
	Scale math32.Vector2

	// Rotation is the rotation of the node around its anchor, in radians.
	Rotation float32

	// ZOrder orders siblings: higher values are in front.
	ZOrder int

	// Opacity is the opacity of the node, in [0, 1].
	Opacity float32

	// CascadeOpacity multiplies the opacity of the node with the
	// effective opacity of its parent.
	CascadeOpacity bool

	// Visible is whether the node is visible.
	Visible bool

	// Listeners are the input listeners attached to the node.
	Listeners []*input.Listener `copier:"-"`

	runner           anim.Runner
	scene            *Scene
	contentSizeDirty bool
	transformDirty   bool
	sizeObservers    []func(n Node)
}

func (n *NodeBase) AsNode() *NodeBase { return n }

// String returns the path of the node.
func (n *NodeBase) String() string {
	if n == nil || n.This == nil {
		return "nil"
	}
	return n.Path()
}

// Init is a placeholder implementation of [Node.Init] that does nothing.
func (n *NodeBase) Init() {}

// OnEnter is a placeholder implementation of [Node.OnEnter] that does nothing.
func (n *NodeBase) OnEnter(sc *Scene) {}

// OnExit is a placeholder implementation of [Node.OnExit] that does nothing.
func (n *NodeBase) OnExit() {}

// Update is a placeholder implementation of [Node.Update] that does nothing.
func (n *NodeBase) Update(dt float32) {}

// OnContentSizeDirty is a placeholder implementation of
// [Node.OnContentSizeDirty] that does nothing.
func (n *NodeBase) OnContentSizeDirty() {}

// OnTransformDirty is a placeholder implementation of
// [Node.OnTransformDirty] that does nothing.
func (n *NodeBase) OnTransformDirty() {}

// CopyFieldsFrom copies the exported fields of the given node that do
// not have a `copier:"-"` struct tag, with a deep copy.
func (n *NodeBase) CopyFieldsFrom(from Node) {
	err := copier.CopyWithOption(n.This, from.AsNode().This, copier.Option{CaseSensitive: true, DeepCopy: true})
	if err != nil {
		slog.Error("scene.NodeBase.CopyFieldsFrom", "err", err)
	}
}

// Clone returns a new node of the same type with the fields copied
// from this one. Children are not cloned.
func (n *NodeBase) Clone() Node {
	nc := newOf(n.This)
	InitNode(nc)
	nc.AsNode().Name = n.Name
	nc.CopyFieldsFrom(n.This)
	return nc
}

func newOf(n Node) Node {
	return reflect.New(reflect.TypeOf(n).Elem()).Interface().(Node)
}

// Scene returns the running scene of the node, or nil.
func (n *NodeBase) Scene() *Scene { return n.scene }

// IsRunning returns whether the node is part of a running scene.
func (n *NodeBase) IsRunning() bool { return n.scene != nil }

// Tree:

// AddChild adds the given child at the end of the children.
// The child must not have a parent.
func (n *NodeBase) AddChild(kid Node) {
	InitNode(kid)
	kb := kid.AsNode()
	if kb.Parent != nil {
		slog.Error("scene.NodeBase.AddChild: child already has a parent", "child", kb.Name, "parent", n)
		return
	}
	n.Children = append(n.Children, kid)
	kb.Parent = n.This
	kb.transformDirty = true
	if n.scene != nil {
		kb.enter(n.scene)
	}
}

// RemoveChild removes the given child, returning whether it was found.
func (n *NodeBase) RemoveChild(kid Node) bool {
	i := slices.Index(n.Children, kid)
	if i < 0 {
		return false
	}
	n.Children = slices.Delete(n.Children, i, i+1)
	kb := kid.AsNode()
	if kb.scene != nil {
		kb.exit()
	}
	kb.Parent = nil
	return true
}

// RemoveFromParent removes the node from its parent, if any.
func (n *NodeBase) RemoveFromParent() {
	if n.Parent != nil {
		n.Parent.AsNode().RemoveChild(n.This)
	}
}

// RemoveAllChildren removes all of the children of the node.
func (n *NodeBase) RemoveAllChildren() {
	for len(n.Children) > 0 {
		n.RemoveChild(n.Children[len(n.Children)-1])
	}
}

// ChildByName returns the first child with the given name, or nil.
func (n *NodeBase) ChildByName(name string) Node {
	for _, k := range n.Children {
		if k.AsNode().Name == name {
			return k
		}
	}
	return nil
}

// Path returns the path to this node from the tree root,
// using names separated by / delimiters.
func (n *NodeBase) Path() string {
	if n.Parent != nil {
		return n.Parent.AsNode().Path() + "/" + n.Name
	}
	return "/" + n.Name
}

// FindPath returns the node at the given path from this node,
// as returned by [NodeBase.PathFrom], or nil.
func (n *NodeBase) FindPath(path string) Node {
	cur := n.This
	for _, pe := range strings.Split(path, "/") {
		if pe == "" {
			continue
		}
		cur = cur.AsNode().ChildByName(pe)
		if cur == nil {
			return nil
		}
	}
	return cur
}

// PathFrom returns the path to this node from the given parent,
// excluding the name of the parent.
func (n *NodeBase) PathFrom(parent Node) string {
	if n.This == parent {
		return ""
	}
	if n.Parent == nil || n.Parent == parent {
		return n.Name
	}
	return n.Parent.AsNode().PathFrom(parent) + "/" + n.Name
}

func (n *NodeBase) enter(sc *Scene) {
	n.scene = sc
	for _, l := range n.Listeners {
		l.Running = true
	}
	n.This.OnEnter(sc)
	for _, k := range slices.Clone(n.Children) {
		k.AsNode().enter(sc)
	}
}

func (n *NodeBase) exit() {
	for _, k := range slices.Clone(n.Children) {
		k.AsNode().exit()
	}
	n.This.OnExit()
	n.runner.StopAll()
	for _, l := range n.Listeners {
		l.Running = false
		n.scene.Dispatcher.Remove(l)
	}
	n.scene = nil
}

// Listeners and actions:

// AddListener attaches a new [input.Listener] to the node and returns it.
func (n *NodeBase) AddListener() *input.Listener {
	l := input.NewListener(n)
	l.Running = n.scene != nil
	n.Listeners = append(n.Listeners, l)
	return l
}

// RemoveListener detaches the given listener.
func (n *NodeBase) RemoveListener(l *input.Listener) {
	i := slices.Index(n.Listeners, l)
	if i < 0 {
		return
	}
	n.Listeners = slices.Delete(n.Listeners, i, i+1)
	l.Running = false
	if n.scene != nil {
		n.scene.Dispatcher.Remove(l)
	}
}

// RunAction starts the given action on the node. A tagged action stops
// any running action of the node with the same tag.
func (n *NodeBase) RunAction(a anim.Action) anim.Action {
	return n.runner.Run(n.This, a)
}

// ActionByTag returns the running action with the given tag, or nil.
func (n *NodeBase) ActionByTag(tag int) anim.Action {
	return n.runner.ByTag(tag)
}

// StopActionByTag stops the running action with the given tag.
func (n *NodeBase) StopActionByTag(tag int) bool {
	return n.runner.StopByTag(tag)
}

// StopAllActions stops all running actions of the node.
func (n *NodeBase) StopAllActions() {
	n.runner.StopAll()
}

// NumActions returns the number of running actions of the node.
func (n *NodeBase) NumActions() int {
	return n.runner.Len()
}

// Dirty observers:

// OnContentSizeChanged registers a function called at the next frame
// after the content size of the node changed.
func (n *NodeBase) OnContentSizeChanged(f func(n Node)) {
	n.sizeObservers = append(n.sizeObservers, f)
}

// IsContentSizeDirty returns whether the content size changed since
// the observers were last notified.
func (n *NodeBase) IsContentSizeDirty() bool { return n.contentSizeDirty }

// IsTransformDirty returns whether the transform changed since
// the observers were last notified.
func (n *NodeBase) IsTransformDirty() bool { return n.transformDirty }

func (n *NodeBase) notifyDirty() {
	if n.contentSizeDirty {
		n.contentSizeDirty = false
		n.This.OnContentSizeDirty()
		for _, f := range n.sizeObservers {
			f(n.This)
		}
	}
	if n.transformDirty {
		n.transformDirty = false
		n.This.OnTransformDirty()
		for _, k := range n.Children {
			k.AsNode().transformDirty = true
		}
	}
}
