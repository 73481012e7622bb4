// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scroll

import (
	"slices"

	"cogentcore.org/scroll/base/logx"
	"cogentcore.org/scroll/math32"
	"cogentcore.org/scroll/scene"
)

// Item is an entry of the virtual list of a [Controller]. Its node is
// built lazily by NodeFunc when the item gets close to the viewport,
// and released when it goes away.
type Item struct {

	// Position is the position of the item along the scroll axis.
	Position float32

	// Size is the length of the item along the scroll axis.
	Size float32

	// ZIndex is the z order of the item node.
	ZIndex int

	// Name is the optional name of the item node.
	Name string

	// NodeFunc builds the node of the item. It may return nil, in which
	// case the item stays without a node. Setting it to nil disables
	// the item permanently.
	NodeFunc func(it *Item) scene.Node

	// Node is the node of the item while it is materialized.
	Node scene.Node

	// Handle is set by NodeFunc to bind the node to its owner.
	Handle any

	// hiddenSince is the frame at which the live node of the item left
	// the materialization window, or -1.
	hiddenSince int
}

// End returns the position of the end of the item.
func (it *Item) End() float32 {
	return it.Position + it.Size
}

// Controller owns the items of a scroll view and keeps nodes for the
// items within the materialization window around the viewport:
// the viewport extended by the pre and post paddings and, during a
// fling, by the animation padding in the direction of the fling.
// A node leaving the window is released one frame later.
type Controller struct {
	scroll *Base
	items  []*Item

	scrollMin, scrollMax float32

	animationPadding float32
	prePadding       float32
	postPadding      float32
}

// NewController returns a new [Controller] for the given scroll view,
// which it becomes the controller of.
func NewController(b *Base) *Controller {
	c := &Controller{scroll: b, scrollMin: math32.NaN(), scrollMax: math32.NaN()}
	b.Controller = c
	return c
}

// Scroll returns the scroll view of the controller.
func (c *Controller) Scroll() *Base {
	return c.scroll
}

// Items:

// AddItem appends an item of the given size after the last item.
func (c *Controller) AddItem(size float32, f func(it *Item) scene.Node) *Item {
	pos := float32(0)
	if n := len(c.items); n > 0 {
		pos = c.items[n-1].End()
	}
	return c.AddItemAt(pos, size, f)
}

// AddItemAt appends an item at the given position.
func (c *Controller) AddItemAt(pos, size float32, f func(it *Item) scene.Node) *Item {
	it := &Item{Position: pos, Size: size, NodeFunc: f, hiddenSince: -1}
	c.items = append(c.items, it)
	return it
}

// InsertItem inserts an item of the given size at index i, at the
// position of the item it replaces, shifting the following items.
func (c *Controller) InsertItem(i int, size float32, f func(it *Item) scene.Node) *Item {
	if i >= len(c.items) {
		return c.AddItem(size, f)
	}
	i = max(i, 0)
	it := &Item{Position: c.items[i].Position, Size: size, NodeFunc: f, hiddenSince: -1}
	for _, o := range c.items[i:] {
		o.Position += size
		c.place(o)
	}
	c.items = slices.Insert(c.items, i, it)
	return it
}

// Len returns the number of items.
func (c *Controller) Len() int {
	return len(c.items)
}

// Item returns the item at the given index, or nil.
func (c *Controller) Item(i int) *Item {
	if i < 0 || i >= len(c.items) {
		return nil
	}
	return c.items[i]
}

// Items returns the items in scroll order.
func (c *Controller) Items() []*Item {
	return c.items
}

// IndexOf returns the index of the given item, or -1.
func (c *Controller) IndexOf(it *Item) int {
	return slices.Index(c.items, it)
}

// ItemByName returns the first item with the given name, or nil.
func (c *Controller) ItemByName(name string) *Item {
	for _, it := range c.items {
		if it.Name == name {
			return it
		}
	}
	return nil
}

// ItemForNode returns the item whose node is the given node, or nil.
func (c *Controller) ItemForNode(n scene.Node) *Item {
	for _, it := range c.items {
		if it.Node != nil && it.Node == n {
			return it
		}
	}
	return nil
}

// Clear removes all of the items and their nodes.
func (c *Controller) Clear() {
	for _, it := range c.items {
		c.detach(it)
	}
	c.items = nil
}

// Area:

// AreaOffset returns the position of the first item, or NaN if there
// are no items.
func (c *Controller) AreaOffset() float32 {
	if len(c.items) == 0 {
		return math32.NaN()
	}
	off := c.items[0].Position
	for _, it := range c.items[1:] {
		off = min(off, it.Position)
	}
	return off
}

// AreaSize returns the span of all of the items, or NaN if there are
// no items.
func (c *Controller) AreaSize() float32 {
	if len(c.items) == 0 {
		return math32.NaN()
	}
	end := c.items[0].End()
	for _, it := range c.items[1:] {
		end = max(end, it.End())
	}
	return end - c.AreaOffset()
}

// SetScrollRange sets the scroll area used when there are no items.
func (c *Controller) SetScrollRange(mn, mx float32) {
	logx.Assert(!(mn > mx), "scroll: bounds reversed", "min", mn, "max", mx)
	c.scrollMin, c.scrollMax = mn, max(mn, mx)
}

// ScrollMin returns the start of the scroll range, NaN if unset.
func (c *Controller) ScrollMin() float32 { return c.scrollMin }

// ScrollMax returns the end of the scroll range, NaN if unset.
func (c *Controller) ScrollMax() float32 { return c.scrollMax }

// Materialization window:

// AnimationPadding returns the extension of the materialization
// window in the direction of the running fling.
func (c *Controller) AnimationPadding() float32 {
	return c.animationPadding
}

// SetAnimationPadding sets the extension of the materialization window
// to the predicted signed length of a fling.
func (c *Controller) SetAnimationPadding(l float32) {
	c.animationPadding = l
}

// UpdateAnimationPadding shrinks the animation padding by the length
// of the given position delta, until it is exhausted.
func (c *Controller) UpdateAnimationPadding(delta float32) {
	if c.animationPadding == 0 {
		return
	}
	l := max(math32.Abs(c.animationPadding)-math32.Abs(delta), 0)
	c.animationPadding = math32.Sign(c.animationPadding) * l
}

// SetPrePadding extends the materialization window before the viewport.
func (c *Controller) SetPrePadding(p float32) { c.prePadding = p }

// SetPostPadding extends the materialization window after the viewport.
func (c *Controller) SetPostPadding(p float32) { c.postPadding = p }

// Window returns the materialization window in item positions.
func (c *Controller) Window() (lo, hi float32) {
	b := c.scroll
	lo = b.position - b.padStart() - c.prePadding
	hi = b.position - b.padStart() + b.Size() + c.postPadding
	if c.animationPadding > 0 {
		hi += c.animationPadding
	} else {
		lo += c.animationPadding
	}
	return
}

// OnScrollPosition updates the item nodes for the current position:
// items entering the window get a node, and nodes that have been out
// of it since an earlier frame are released. With force, every live
// node is laid out again.
func (c *Controller) OnScrollPosition(force bool) {
	b := c.scroll
	if b == nil || b.Root == nil {
		return
	}
	lo, hi := c.Window()
	frame := -1
	if sc := b.Scene(); sc != nil {
		frame = sc.Frame
	}
	for _, it := range c.items {
		in := it.Size > 0 && it.NodeFunc != nil && it.Position <= hi && it.End() >= lo
		switch {
		case in && it.Node == nil:
			c.materialize(it)
		case in:
			it.hiddenSince = -1
			if force {
				c.place(it)
			}
		case it.Node != nil:
			if it.hiddenSince < 0 && frame >= 0 {
				it.hiddenSince = frame
			} else if frame < 0 || frame > it.hiddenSince {
				c.detach(it)
			}
		}
	}
}

// Rebuild releases all of the item nodes and builds the visible ones again.
func (c *Controller) Rebuild() {
	for _, it := range c.items {
		c.detach(it)
	}
	c.OnScrollPosition(true)
}

func (c *Controller) materialize(it *Item) {
	if !logx.Assert(it.NodeFunc != nil, "scroll: materializing an item without node function", "item", it.Name) {
		return
	}
	n := it.NodeFunc(it)
	if n == nil {
		return
	}
	it.Node = n
	it.hiddenSince = -1
	c.scroll.AddScrollNode(n, it.Position, it.Size, it.ZIndex, it.Name)
}

func (c *Controller) place(it *Item) {
	if it.Node != nil {
		c.scroll.placeScrollNode(it.Node, it.Position, it.Size)
	}
}

func (c *Controller) detach(it *Item) {
	if it.Node != nil {
		it.Node.AsNode().RemoveFromParent()
		it.Node = nil
	}
	it.hiddenSince = -1
}
