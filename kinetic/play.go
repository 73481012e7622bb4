// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kinetic

import (
	"cogentcore.org/scroll/anim"
	"cogentcore.org/scroll/math32"
)

// Play returns an action that plays the given curve back over its
// duration, calling f with the position and progress on every step.
// When the curve is a [Path] its OnSegment callback is called as
// playback enters each new segment.
func Play(c Curve, f func(pos math32.Vector2, u float32)) *anim.Progress {
	path, _ := c.(*Path)
	seg := 0
	return anim.NewProgress(c.Duration(), func(u float32) {
		if path != nil && path.OnSegment != nil {
			i, _ := path.Segment(u)
			for seg < i {
				seg++
				path.OnSegment(seg)
			}
		}
		f(c.PositionAt(u), u)
	})
}

// Velocity returns the velocity vector of the given curve at progress u.
func Velocity(c Curve, u float32) math32.Vector2 {
	switch c := c.(type) {
	case *Deceleration:
		return c.Normal.MulScalar(c.VelocityAt(u))
	case *Acceleration:
		return c.Normal.MulScalar(c.VelocityAt(u))
	case *landing:
		return c.Normal.MulScalar(c.VelocityAt(u))
	case *Linear:
		return c.Velocity
	case *Path:
		i, su := c.Segment(u)
		return Velocity(c.Segments[i], su)
	}
	return math32.Vector2{}
}
