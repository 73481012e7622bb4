// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scroll

import (
	"log/slog"

	"cogentcore.org/scroll/math32"
)

// Sides contains a float32 value for each side of a box.
type Sides struct {
	Top    float32
	Right  float32
	Bottom float32
	Left   float32
}

// NewSides returns new [Sides] set from the given list of 0 to 4 values,
// following the CSS padding syntax: one value sets all sides, two values
// set the vertical and horizontal sides, three values set the top, the
// horizontal sides and the bottom, and four values set the top, right,
// bottom and left sides in that order.
func NewSides(vals ...float32) Sides {
	var s Sides
	switch len(vals) {
	case 0:
	case 1:
		s = Sides{vals[0], vals[0], vals[0], vals[0]}
	case 2:
		s = Sides{vals[0], vals[1], vals[0], vals[1]}
	case 3:
		s = Sides{vals[0], vals[1], vals[2], vals[1]}
	default:
		s = Sides{vals[0], vals[1], vals[2], vals[3]}
		if len(vals) > 4 {
			slog.Error("programmer error: scroll.NewSides: expected 0 to 4 values, but got", "numValues", len(vals))
		}
	}
	return s
}

// Start returns the side at the start of the given dimension:
// Left for X and Top for Y.
func (s Sides) Start(d math32.Dims) float32 {
	if d == math32.X {
		return s.Left
	}
	return s.Top
}

// End returns the side at the end of the given dimension:
// Right for X and Bottom for Y.
func (s Sides) End(d math32.Dims) float32 {
	if d == math32.X {
		return s.Right
	}
	return s.Bottom
}
