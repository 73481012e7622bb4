// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package kinetic provides closed form, time parametrised position
// curves for kinetic scrolling: deceleration, acceleration to a
// target, bounce, and constant velocity flight inside a box.
// Curves are played back by the anim package with [Play].
package kinetic

import (
	"cogentcore.org/scroll/math32"
)

const (
	// Epsilon is the smallest duration, in seconds, and distance of a
	// curve. Shorter curves are not built: the caller snaps instead.
	Epsilon = 1e-4

	// MinAcceleration is the floor of kinetic acceleration magnitudes,
	// in units/s², which guarantees finite curve durations.
	MinAcceleration = 5000
)

// Curve is a position curve parametrised by the progress u in [0, 1]
// of its duration.
type Curve interface {

	// Duration returns the duration of the curve in seconds.
	Duration() float32

	// PositionAt returns the position at progress u.
	PositionAt(u float32) math32.Vector2

	// VelocityAt returns the signed speed at progress u along the
	// direction of motion of the curve at its start.
	VelocityAt(u float32) float32
}

// Deceleration is a motion along Normal starting at V0 > 0 and
// slowing down with A < 0 until it stops.
type Deceleration struct {
	Normal math32.Vector2
	Start  math32.Vector2
	V0     float32
	A      float32
	T      float32
}

// NewDeceleration returns a new [Deceleration] along the given unit
// normal, or nil if v0 is not positive, a is not negative or the
// resulting duration is below [Epsilon].
func NewDeceleration(normal, start math32.Vector2, v0, a float32) *Deceleration {
	if !(v0 > 0) || !(a < 0) {
		return nil
	}
	t := v0 / -a
	if t < Epsilon || math32.IsInf(t, 0) {
		return nil
	}
	return &Deceleration{Normal: normal, Start: start, V0: v0, A: a, T: t}
}

func (dc *Deceleration) Duration() float32 { return dc.T }

func (dc *Deceleration) PositionAt(u float32) math32.Vector2 {
	t := u * dc.T
	return dc.Start.Add(dc.Normal.MulScalar(dc.V0*t + 0.5*dc.A*t*t))
}

func (dc *Deceleration) VelocityAt(u float32) float32 {
	return dc.V0 + dc.A*u*dc.T
}

// Length returns the distance travelled by the curve: v₀²/(2|a|).
func (dc *Deceleration) Length() float32 {
	return dc.V0 * dc.V0 / (-2 * dc.A)
}

// End returns the final position of the curve.
func (dc *Deceleration) End() math32.Vector2 {
	return dc.PositionAt(1)
}

// Acceleration is a uniformly accelerated motion from Start that
// reaches End at time T.
type Acceleration struct {
	Start  math32.Vector2
	End    math32.Vector2
	Normal math32.Vector2
	V0     float32
	A      float32
	T      float32
}

// NewAcceleration returns a new [Acceleration] from start to end with
// initial speed v0 towards end and signed acceleration a along the
// motion. It solves |end - start| = v0·T + ½·a·T² for the smallest
// positive T, and returns nil when there is no solution or the motion
// is shorter than [Epsilon].
func NewAcceleration(start, end math32.Vector2, v0, a float32) *Acceleration {
	d := end.Sub(start)
	dist := d.Length()
	if dist < Epsilon {
		return nil
	}
	t := float32(-1)
	if a == 0 {
		if v0 > 0 {
			t = dist / v0
		}
	} else {
		disc := v0*v0 + 2*a*dist
		if disc < 0 {
			return nil
		}
		sq := math32.Sqrt(disc)
		for _, r := range [2]float32{(-v0 - sq) / a, (-v0 + sq) / a} {
			if r > 0 && (t < 0 || r < t) {
				t = r
			}
		}
	}
	if t < Epsilon || math32.IsInf(t, 0) {
		return nil
	}
	return &Acceleration{Start: start, End: end, Normal: d.DivScalar(dist), V0: v0, A: a, T: t}
}

func (ac *Acceleration) Duration() float32 { return ac.T }

func (ac *Acceleration) PositionAt(u float32) math32.Vector2 {
	if u >= 1 {
		return ac.End
	}
	t := u * ac.T
	return ac.Start.Add(ac.Normal.MulScalar(ac.V0*t + 0.5*ac.A*t*t))
}

func (ac *Acceleration) VelocityAt(u float32) float32 {
	return ac.V0 + ac.A*u*ac.T
}

// Linear is a constant velocity motion.
type Linear struct {
	Start    math32.Vector2
	Velocity math32.Vector2
	T        float32
}

func (ln *Linear) Duration() float32 { return ln.T }

func (ln *Linear) PositionAt(u float32) math32.Vector2 {
	return ln.Start.Add(ln.Velocity.MulScalar(u * ln.T))
}

func (ln *Linear) VelocityAt(u float32) float32 {
	return ln.Velocity.Length()
}
