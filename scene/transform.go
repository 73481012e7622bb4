// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"cogentcore.org/scroll/math32"
)

// SetPosition sets the position of the node anchor in parent coordinates.
func (n *NodeBase) SetPosition(pos math32.Vector2) {
	if n.Position == pos {
		return
	}
	n.Position = pos
	n.transformDirty = true
}

// SetAnchor sets the anchor point of the node.
func (n *NodeBase) SetAnchor(anchor math32.Vector2) {
	if n.Anchor == anchor {
		return
	}
	n.Anchor = anchor
	n.transformDirty = true
}

// SetContentSize sets the content size of the node.
func (n *NodeBase) SetContentSize(size math32.Vector2) {
	if n.ContentSize == size {
		return
	}
	n.ContentSize = size
	n.contentSizeDirty = true
	n.transformDirty = true
}

// SetScale sets the scale of the node.
func (n *NodeBase) SetScale(scale math32.Vector2) {
	if n.Scale == scale {
		return
	}
	n.Scale = scale
	n.transformDirty = true
}

// SetRotation sets the rotation of the node in radians.
func (n *NodeBase) SetRotation(rot float32) {
	if n.Rotation == rot {
		return
	}
	n.Rotation = rot
	n.transformDirty = true
}

// SetZOrder sets the order of the node among its siblings.
func (n *NodeBase) SetZOrder(z int) {
	n.ZOrder = z
}

// SetOpacity sets the opacity of the node, clamped to [0, 1].
func (n *NodeBase) SetOpacity(op float32) {
	n.Opacity = math32.Clamp(op, 0, 1)
}

// SetVisible sets whether the node is visible.
func (n *NodeBase) SetVisible(vis bool) {
	n.Visible = vis
}

// NodeToParent returns the transform from node to parent coordinates.
func (n *NodeBase) NodeToParent() math32.Matrix2 {
	m := math32.Translate2D(n.Position.X, n.Position.Y)
	if n.Rotation != 0 {
		m = m.Mul(math32.Rotate2D(n.Rotation))
	}
	if n.Scale != onesVector {
		m = m.Mul(math32.Scale2D(n.Scale.X, n.Scale.Y))
	}
	a := n.Anchor.Mul(n.ContentSize)
	return m.Mul(math32.Translate2D(-a.X, -a.Y))
}

// NodeToWorld returns the transform from node to scene coordinates.
func (n *NodeBase) NodeToWorld() math32.Matrix2 {
	m := n.NodeToParent()
	for p := n.Parent; p != nil; p = p.AsNode().Parent {
		m = p.AsNode().NodeToParent().Mul(m)
	}
	return m
}

// WorldToNode returns the transform from scene to node coordinates.
func (n *NodeBase) WorldToNode() math32.Matrix2 {
	return n.NodeToWorld().Inverse()
}

// ConvertToWorld converts a point in node coordinates to scene coordinates.
func (n *NodeBase) ConvertToWorld(p math32.Vector2) math32.Vector2 {
	return n.NodeToWorld().MulVector2AsPoint(p)
}

// ConvertToNode converts a point in scene coordinates to node coordinates.
func (n *NodeBase) ConvertToNode(p math32.Vector2) math32.Vector2 {
	return n.WorldToNode().MulVector2AsPoint(p)
}

// BoundingBox returns the bounding box of the node in parent coordinates.
func (n *NodeBase) BoundingBox() math32.Box2 {
	return math32.B2FromSize(math32.Vector2{}, n.ContentSize).MulMatrix2(n.NodeToParent())
}

// IsTouched returns whether the given scene location is inside the
// node content, inflated by padding on every side.
func (n *NodeBase) IsTouched(pos math32.Vector2, padding float32) bool {
	p := n.ConvertToNode(pos)
	return p.X >= -padding && p.Y >= -padding && p.X <= n.ContentSize.X+padding && p.Y <= n.ContentSize.Y+padding
}

// EffectiveOpacity returns the opacity of the node multiplied by the
// opacities of its parents, as long as they cascade.
func (n *NodeBase) EffectiveOpacity() float32 {
	op := n.Opacity
	cur := n
	for cur.CascadeOpacity && cur.Parent != nil {
		cur = cur.Parent.AsNode()
		op *= cur.Opacity
	}
	return op
}

// IsVisibleInTree returns whether the node and all of its parents are visible.
func (n *NodeBase) IsVisibleInTree() bool {
	for cur := n; cur != nil; {
		if !cur.Visible {
			return false
		}
		if cur.Parent == nil {
			break
		}
		cur = cur.Parent.AsNode()
	}
	return true
}
