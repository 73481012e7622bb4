// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kinetic

import (
	"cogentcore.org/scroll/base/logx"
	"cogentcore.org/scroll/math32"
)

// Path is a sequence of curves played one after the other.
type Path struct {
	Segments []Curve

	// OnSegment is called by [Play] when playback enters segment i > 0.
	// For a bounce path it reports the rebound.
	OnSegment func(i int)

	dur float32
}

// NewPath returns a new [Path] of the given curves, skipping nils.
// It returns nil if there are no curves left.
func NewPath(curves ...Curve) *Path {
	p := &Path{}
	for _, c := range curves {
		p.Add(c)
	}
	if len(p.Segments) == 0 {
		return nil
	}
	return p
}

// Add appends the given curve, if it is not nil.
func (p *Path) Add(c Curve) {
	if isNil(c) {
		return
	}
	p.Segments = append(p.Segments, c)
	p.dur += c.Duration()
}

func (p *Path) Duration() float32 { return p.dur }

// Segment returns the index of the segment at progress u,
// and the progress within that segment.
func (p *Path) Segment(u float32) (int, float32) {
	if u >= 1 {
		return len(p.Segments) - 1, 1
	}
	t := u * p.dur
	for i, c := range p.Segments {
		d := c.Duration()
		if t < d || i == len(p.Segments)-1 {
			if d <= 0 {
				return i, 1
			}
			return i, math32.Clamp(t/d, 0, 1)
		}
		t -= d
	}
	return 0, 0
}

func (p *Path) PositionAt(u float32) math32.Vector2 {
	i, su := p.Segment(u)
	return p.Segments[i].PositionAt(su)
}

func (p *Path) VelocityAt(u float32) float32 {
	i, su := p.Segment(u)
	return p.Segments[i].VelocityAt(su)
}

// NewBounce returns a bounce [Path] that brings a point at start, past
// the given boundary along the unit outward normal out, back onto the
// boundary where it lands with zero velocity. The velocity v is signed
// along out: positive values keep moving away from the boundary first,
// decelerating at a2, before the rebound. The rebound accelerates and
// then decelerates at a1, symmetrically, unless the point is already
// moving inwards fast enough, in which case it just decelerates onto
// the boundary. It returns nil when there is nothing to animate.
func NewBounce(start, boundary, out math32.Vector2, v, a1, a2 float32) *Path {
	x := start.Sub(boundary).Dot(out)
	logx.Assert(x >= -Epsilon, "kinetic: bounce start inside boundary", "excursion", x)
	x = max(x, 0)
	a1, a2 = FloorAcceleration(math32.Abs(a1)), FloorAcceleration(math32.Abs(a2))

	p := &Path{}
	pos := start
	speed := float32(0) // inwards
	if v > 0 {
		dc := NewDeceleration(out, start, v, -a2)
		if dc != nil {
			p.Add(dc)
			pos = dc.End()
			x += dc.Length()
		}
	} else {
		speed = -v
	}
	in := out.Negate()
	land := pos.Sub(out.MulScalar(x))
	if x < Epsilon {
		if len(p.Segments) == 0 {
			return nil
		}
		return p
	}
	addLanding := func(dc *Deceleration) {
		if dc != nil {
			p.Add(&landing{dc, land})
		}
	}
	if speed*speed >= 2*a1*x {
		addLanding(NewDeceleration(in, pos, speed, -speed*speed/(2*x)))
	} else {
		m := (x - speed*speed/(2*a1)) / 2
		mid := pos.Add(in.MulScalar(m))
		p.Add(NewAcceleration(pos, mid, speed, a1))
		vm := math32.Sqrt(speed*speed + 2*a1*m)
		addLanding(NewDeceleration(in, mid, vm, -a1))
	}
	if len(p.Segments) == 0 {
		return nil
	}
	return p
}

// landing pins the final position of a curve to an exact point,
// so that float error never leaves a bounce off its boundary.
type landing struct {
	*Deceleration
	at math32.Vector2
}

func (ld *landing) PositionAt(u float32) math32.Vector2 {
	if u >= 1 {
		return ld.at
	}
	return ld.Deceleration.PositionAt(u)
}

func isNil(c Curve) bool {
	switch v := c.(type) {
	case nil:
		return true
	case *Deceleration:
		return v == nil
	case *Acceleration:
		return v == nil
	case *Linear:
		return v == nil
	case *Path:
		return v == nil
	}
	return false
}
