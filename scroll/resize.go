// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scroll

import (
	"cogentcore.org/scroll/anim"
)

type itemSnapshot struct {
	item      *Item
	pos, size float32
}

// ResizeItem animates the size of the given item to newSize over dur
// seconds, shifting the following items by the change of size, and
// calls onDone, if not nil, when it is done. The geometry of the items
// is snapshotted when the resize starts, so items added meanwhile are
// not moved. It returns the running action, or nil if the item does
// not belong to the controller.
func (c *Controller) ResizeItem(it *Item, newSize, dur float32, onDone func()) anim.Action {
	idx := c.IndexOf(it)
	if idx < 0 {
		return nil
	}
	snap := make([]itemSnapshot, len(c.items)-idx)
	for i, o := range c.items[idx:] {
		snap[i] = itemSnapshot{o, o.Position, o.Size}
	}
	offset := it.Size - newSize
	pr := anim.NewProgress(dur, func(u float32) {
		for i, s := range snap {
			if i == 0 {
				s.item.Size = s.size + (newSize-s.size)*u
			} else {
				s.item.Position = s.pos - offset*u
			}
			c.place(s.item)
		}
	})
	return c.scroll.RunAction(anim.NewSequence(pr, func() {
		c.scroll.UpdateScrollBounds()
		c.OnScrollPosition(true)
		if onDone != nil {
			onDone()
		}
	}))
}

// RemoveItem animates the size of the given item to zero over dur
// seconds and then releases its node. With disable, the node function
// of the item is cleared so that it never gets a node again.
func (c *Controller) RemoveItem(it *Item, dur float32, disable bool, onDone func()) anim.Action {
	return c.ResizeItem(it, 0, dur, func() {
		c.detach(it)
		if disable {
			it.NodeFunc = nil
		}
		if onDone != nil {
			onDone()
		}
	})
}
