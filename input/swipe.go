// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package input

import (
	"slices"
	"time"

	"cogentcore.org/scroll/events"
	"cogentcore.org/scroll/math32"
)

// Swipe recognizes drags. It emits [Began] once the displacement from
// the press exceeds the swipe threshold, [Activated] on every later
// move and [Ended] or [Cancelled] with the terminal velocity when the
// touch ends. With several touches it follows their midpoint.
type Swipe struct {
	Base

	Func func(g *Gesture)

	// Locked restricts the swipe to the Axis dimension: it only begins
	// when the cross axis displacement is at most half of the
	// displacement along Axis, and gives up otherwise.
	Locked bool
	Axis   math32.Dims

	// Threshold overrides the swipe threshold of the settings when > 0.
	Threshold float32

	// Exclusive makes the swipe take exclusive ownership of its touches
	// when it begins.
	Exclusive bool

	ids      []uint32
	pos      map[uint32]math32.Vector2
	start    math32.Vector2
	lastMid  math32.Vector2
	began    bool
	rejected bool
	vel      velocityTracker
	g        Gesture
}

// NewSwipe returns a new [Swipe] for the given buttons.
func NewSwipe(buttons events.ButtonMask, f func(g *Gesture)) *Swipe {
	return &Swipe{Base: Base{Buttons: buttons}, Func: f}
}

// IsActive returns whether a swipe has begun and not yet ended.
func (sw *Swipe) IsActive() bool {
	return sw.began
}

func (sw *Swipe) Tracks(id uint32) bool {
	return slices.Contains(sw.ids, id)
}

func (sw *Swipe) midpoint() math32.Vector2 {
	var m math32.Vector2
	for _, id := range sw.ids {
		m = m.Add(sw.pos[id])
	}
	return m.DivScalar(float32(len(sw.ids)))
}

func (sw *Swipe) threshold() float32 {
	if sw.Threshold > 0 {
		return sw.Threshold
	}
	return sw.knobs().SwipeThreshold
}

func (sw *Swipe) Handle(l *Listener, ev *events.Event) bool {
	switch ev.Type {
	case events.Begin:
		if !sw.accepts(ev) || sw.Tracks(ev.ID) {
			return false
		}
		if sw.pos == nil {
			sw.pos = map[uint32]math32.Vector2{}
		}
		if len(sw.ids) == 0 {
			sw.began = false
			sw.rejected = false
			sw.vel.reset()
			sw.g = Gesture{ID: ev.ID, Button: ev.Button, Start: ev.Pos}
		}
		old := sw.lastMid
		sw.ids = append(sw.ids, ev.ID)
		sw.pos[ev.ID] = ev.Pos
		mid := sw.midpoint()
		if len(sw.ids) == 1 {
			sw.start = mid
		} else {
			// a new finger must not move the swipe
			sw.start = sw.start.Add(mid.Sub(old))
			sw.vel.shift(mid.Sub(old))
		}
		sw.lastMid = mid
		sw.vel.add(ev.Time, mid)
		if sw.began && sw.Exclusive {
			l.SetExclusive(ev.ID)
		}
		return sw.began
	case events.Move:
		if !sw.Tracks(ev.ID) {
			return false
		}
		sw.pos[ev.ID] = ev.Pos
		mid := sw.midpoint()
		sw.vel.add(ev.Time, mid)
		sw.fill(ev, mid)
		if !sw.began {
			if sw.rejected {
				return false
			}
			disp := mid.Sub(sw.start)
			if !sw.shouldBegin(ev, disp) {
				return false
			}
			sw.began = true
			sw.g.Phase = Began
			sw.g.Delta = disp
			sw.lastMid = mid
			g := sw.g
			if sw.Exclusive {
				for _, id := range sw.ids {
					l.SetExclusive(id)
				}
			}
			emit("swipe", sw.Func, &g)
			return true
		}
		sw.g.Phase = Activated
		sw.g.Delta = mid.Sub(sw.lastMid)
		sw.lastMid = mid
		g := sw.g
		emit("swipe", sw.Func, &g)
		return true
	case events.End, events.Cancel:
		if !sw.Tracks(ev.ID) {
			return false
		}
		if ev.Type == events.End {
			sw.pos[ev.ID] = ev.Pos
			sw.vel.add(ev.Time, sw.midpoint())
		}
		began := sw.began
		phase := Ended
		if ev.Type == events.Cancel {
			phase = Cancelled
		}
		sw.remove(ev.ID, phase, ev.Time)
		return began
	}
	return false
}

// shouldBegin decides, on a move, whether the displacement starts the
// swipe, and rejects the touch when it goes along the wrong axis.
func (sw *Swipe) shouldBegin(ev *events.Event, disp math32.Vector2) bool {
	th := sw.threshold()
	if !sw.Locked {
		return ev.Dp(disp.Length()) > th
	}
	active := math32.Abs(disp.Dim(sw.Axis))
	cross := math32.Abs(disp.Dim(math32.OtherDim(sw.Axis)))
	if ev.Dp(active) > th && cross <= active/2 {
		return true
	}
	if ev.Dp(cross) > th && cross > active/2 {
		sw.rejected = true
	}
	return false
}

func (sw *Swipe) fill(ev *events.Event, mid math32.Vector2) {
	sw.g.Mods = ev.Mods
	sw.g.Location = mid
	sw.g.Density = ev.Density
	sw.g.Time = ev.Time
	sw.g.Velocity = sw.vel.velocity(sw.knobs().VelocityWindow)
}

// remove stops tracking the given touch; when it was the last one,
// an active swipe finishes with the given phase.
func (sw *Swipe) remove(id uint32, phase Phases, t time.Time) {
	i := slices.Index(sw.ids, id)
	if i < 0 {
		return
	}
	old := sw.midpoint()
	sw.ids = slices.Delete(sw.ids, i, i+1)
	delete(sw.pos, id)
	if len(sw.ids) > 0 {
		mid := sw.midpoint()
		sw.start = sw.start.Add(mid.Sub(old))
		sw.vel.shift(mid.Sub(old))
		sw.lastMid = mid
		return
	}
	if !sw.began {
		return
	}
	sw.began = false
	sw.g.Phase = phase
	sw.g.Delta = math32.Vector2{}
	sw.g.Location = old
	sw.g.Time = t
	sw.g.Velocity = sw.vel.velocity(sw.knobs().VelocityWindow)
	g := sw.g
	emit("swipe", sw.Func, &g)
}

func (sw *Swipe) Cancel(l *Listener, id uint32) {
	sw.remove(id, Cancelled, sw.g.Time)
}

func (sw *Swipe) Update(l *Listener, now time.Time) {}

var _ Recognizer = (*Swipe)(nil)
