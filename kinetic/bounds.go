// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kinetic

import (
	"strings"

	"cogentcore.org/scroll/math32"
)

// Edges is a set of edges of a rectangle.
type Edges uint8

const (
	EdgeLeft Edges = 1 << iota
	EdgeTop
	EdgeRight
	EdgeBottom
)

// Has returns whether any of the given edges are set.
func (e Edges) Has(f Edges) bool {
	return e&f != 0
}

func (e Edges) String() string {
	var s []string
	for i, n := range []string{"Left", "Top", "Right", "Bottom"} {
		if e.Has(1 << i) {
			s = append(s, n)
		}
	}
	return strings.Join(s, "|")
}

// NewWithBounds returns the constant velocity flight of a point from
// start at velocity v until it first reaches an edge of the given
// bounds, together with the edges it reaches at that time (two at a
// corner). The curve is nil if the point does not move or already sits
// on an edge it moves out of, in which case the edges are still reported.
func NewWithBounds(start, v math32.Vector2, bounds math32.Box2) (*Linear, Edges) {
	hit := func(p, vel, lo, hi float32) float32 {
		switch {
		case vel > 0:
			return max(hi-p, 0) / vel
		case vel < 0:
			return max(p-lo, 0) / -vel
		}
		return math32.Inf(1)
	}
	tx := hit(start.X, v.X, bounds.Min.X, bounds.Max.X)
	ty := hit(start.Y, v.Y, bounds.Min.Y, bounds.Max.Y)
	t := min(tx, ty)
	if math32.IsInf(t, 1) {
		return nil, 0
	}
	var edges Edges
	if tx-t <= Epsilon {
		if v.X > 0 {
			edges |= EdgeRight
		} else {
			edges |= EdgeLeft
		}
	}
	if ty-t <= Epsilon {
		if v.Y > 0 {
			edges |= EdgeBottom
		} else {
			edges |= EdgeTop
		}
	}
	if t < Epsilon {
		return nil, edges
	}
	return &Linear{Start: start, Velocity: v, T: t}, edges
}

// Reflect returns the velocity after an elastic hit of the given edges.
func Reflect(v math32.Vector2, edges Edges) math32.Vector2 {
	if edges.Has(EdgeLeft | EdgeRight) {
		v.X = -v.X
	}
	if edges.Has(EdgeTop | EdgeBottom) {
		v.Y = -v.Y
	}
	return v
}
