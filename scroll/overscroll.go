// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scroll

import (
	"cogentcore.org/scroll/math32"
	"cogentcore.org/scroll/scene"
	"cogentcore.org/scroll/settings"
)

// Sides of an [Overscroll].
const (
	Leading = iota
	Trailing
)

// Overscroll shows the motion past the bounds of a scroll view with a
// visual at each end of the view. Each side has a progress in [0, 1]
// that grows with the overscroll deltas, softly capped near 1, and
// decays linearly after a grace period without overscroll.
type Overscroll struct {
	scene.NodeBase

	// Sprites are the leading and trailing visuals.
	Sprites [2]*scene.NodeBase

	scroll      *Base
	progress    [2]float32
	idle        [2]float32
	frontOffset float32
}

// NewOverscroll adds a new [Overscroll] to the given scroll view.
func NewOverscroll(b *Base) *Overscroll {
	ov := scene.New[*Overscroll]()
	ov.Name = "overscroll"
	ov.scroll = b
	ov.ZOrder = 999
	for i, name := range []string{"leading", "trailing"} {
		sp := scene.New[*scene.NodeBase]()
		sp.Name = name
		sp.Opacity = 0
		sp.Visible = false
		ov.Sprites[i] = sp
		ov.AddChild(sp)
	}
	b.AddChild(ov)
	b.OnOverscroll(ov.onOverscroll)
	return ov
}

// Progress returns the progress of the given side.
func (ov *Overscroll) Progress(side int) float32 {
	return ov.progress[side]
}

// SetFrontOffset shifts the leading visual into the view, below a
// header that covers the start of the view.
func (ov *Overscroll) SetFrontOffset(off float32) {
	ov.frontOffset = off
}

// FrontOffset returns the offset of the leading visual.
func (ov *Overscroll) FrontOffset() float32 {
	return ov.frontOffset
}

func (ov *Overscroll) onOverscroll(delta float32) {
	side := Trailing
	if delta < 0 {
		side = Leading
	}
	s := ov.scroll.knobs()
	p := ov.progress[side]
	p += math32.Abs(delta) / s.OverscrollDivisor * (1 - p) * (1 - p)
	ov.progress[side] = math32.Clamp(p, 0, 1)
	ov.idle[side] = 0
}

// Update decays the progress and lays out the visuals.
func (ov *Overscroll) Update(dt float32) {
	b := ov.scroll
	s := b.knobs()
	grace := settings.Seconds(s.OverscrollGrace)
	for i := range ov.progress {
		before := ov.idle[i]
		ov.idle[i] += dt
		if ov.progress[i] <= 0 || ov.idle[i] <= grace {
			continue
		}
		decay := ov.idle[i] - max(before, grace)
		ov.progress[i] = max(0, ov.progress[i]-s.OverscrollDecay*decay)
	}

	d, od := b.dim(), math32.OtherDim(b.dim())
	cross := b.ContentSize.Dim(od)
	length := min(cross*s.OverscrollCapFraction, s.OverscrollCapMax)
	starts := [2]float32{ov.frontOffset, b.Size() - length}
	for i, sp := range ov.Sprites {
		var pos, size math32.Vector2
		pos.SetDim(d, starts[i])
		size.SetDim(d, length)
		size.SetDim(od, cross)
		if sp.Position != pos {
			sp.SetPosition(pos)
		}
		if sp.ContentSize != size {
			sp.SetContentSize(size)
		}
		sp.SetOpacity(ov.progress[i])
		sp.SetVisible(ov.progress[i] > 0)
	}
}
