// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scroll

import (
	"fmt"

	"cogentcore.org/scroll/math32"
)

// Layouts are the scroll directions of a view.
type Layouts int32

const (
	// AutoLayout picks Vertical or Horizontal from the aspect ratio
	// of the view when the layout is initialized.
	AutoLayout Layouts = iota

	// Vertical scrolls along Y, forward is down.
	Vertical

	// Horizontal scrolls along X, forward is right.
	Horizontal
)

func (l Layouts) String() string {
	switch l {
	case AutoLayout:
		return "AutoLayout"
	case Vertical:
		return "Vertical"
	case Horizontal:
		return "Horizontal"
	}
	return fmt.Sprintf("Layouts(%d)", int32(l))
}

// Dim returns the dimension the layout scrolls along.
func (l Layouts) Dim() math32.Dims {
	if l == Horizontal {
		return math32.X
	}
	return math32.Y
}

// Movements are the states of the scroll state machine.
type Movements int32

const (
	// NoMovement is the resting state; the position is within bounds.
	NoMovement Movements = iota

	// Manual is the state while the user drags the content,
	// and during a single wheel step.
	Manual

	// Auto is the state of a kinetic fling or an animated adjustment.
	Auto

	// Overscrolling is the state of a bounce back onto a bound.
	Overscrolling
)

func (m Movements) String() string {
	switch m {
	case NoMovement:
		return "NoMovement"
	case Manual:
		return "Manual"
	case Auto:
		return "Auto"
	case Overscrolling:
		return "Overscroll"
	}
	return fmt.Sprintf("Movements(%d)", int32(m))
}

// IsAnimated returns whether the movement is driven by an action.
func (m Movements) IsAnimated() bool {
	return m == Auto || m == Overscrolling
}

// Action tags used on scroll nodes.
const (
	TagScroll = 100 + iota
	TagIndicatorFadeIn
	TagIndicatorFadeOut
)
