// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anim

import "cogentcore.org/scroll/math32"

// Curve is an easing curve mapping linear progress in [0, 1]
// to eased progress, with Curve(0) = 0 and Curve(1) = 1.
type Curve func(t float32) float32

// Linear is the identity easing curve.
func Linear(t float32) float32 { return t }

// The standard cubic Bézier easing curves.
var (
	Standard   = CubicBezier(0.4, 0, 0.2, 1)
	Accelerate = CubicBezier(0.4, 0, 1, 1)
	Decelerate = CubicBezier(0, 0, 0.2, 1)
	Emphasized = CubicBezier(0.2, 0, 0, 1)
)

// CubicBezier returns the easing curve of the cubic Bézier from (0, 0)
// to (1, 1) with control points (x1, y1) and (x2, y2), as in CSS.
func CubicBezier(x1, y1, x2, y2 float32) Curve {
	bez := func(t, p1, p2 float32) float32 {
		it := 1 - t
		return 3*it*it*t*p1 + 3*it*t*t*p2 + t*t*t
	}
	dbez := func(t, p1, p2 float32) float32 {
		it := 1 - t
		return 3*it*it*p1 + 6*it*t*(p2-p1) + 3*t*t*(1-p2)
	}
	return func(x float32) float32 {
		if x <= 0 {
			return 0
		}
		if x >= 1 {
			return 1
		}
		// newton first, bisection when the slope is too flat
		t := x
		for range 8 {
			e := bez(t, x1, x2) - x
			if math32.Abs(e) < 1e-6 {
				return bez(t, y1, y2)
			}
			d := dbez(t, x1, x2)
			if math32.Abs(d) < 1e-6 {
				break
			}
			t -= e / d
		}
		lo, hi := float32(0), float32(1)
		t = x
		for range 32 {
			e := bez(t, x1, x2) - x
			if math32.Abs(e) < 1e-6 {
				break
			}
			if e > 0 {
				hi = t
			} else {
				lo = t
			}
			t = (lo + hi) / 2
		}
		return bez(t, y1, y2)
	}
}

// Ease runs an inner action with its progress mapped through a [Curve].
type Ease struct {
	Interval
	Inner Action
	Curve Curve
}

// NewEase returns a new [Ease] of the given action.
func NewEase(curve Curve, inner Action) *Ease {
	return &Ease{Interval: Interval{Dur: inner.Duration()}, Inner: inner, Curve: curve}
}

func (ea *Ease) Start(target any) {
	ea.Interval.Start(target)
	ea.Inner.Start(target)
}

func (ea *Ease) Step(dt float32) float32 {
	return ea.step(dt, ea.Update)
}

func (ea *Ease) Update(u float32) {
	if ea.Curve != nil {
		u = ea.Curve(u)
	}
	ea.Inner.Update(u)
}

func (ea *Ease) Stop() {
	ea.Interval.Stop()
	ea.Inner.Stop()
}
