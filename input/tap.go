// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package input

import (
	"time"

	"cogentcore.org/scroll/events"
	"cogentcore.org/scroll/math32"
)

// Tap recognizes taps. It emits [Activated] when a touch is released
// within the tap distance and the tap interval of its press, with
// Count set to the number of consecutive taps. A touch that moves too
// far, is cancelled or loses exclusivity emits [Cancelled] instead.
type Tap struct {
	Base

	Func func(g *Gesture)

	// MaxCount is the count after which the tap count starts over;
	// 0 means unlimited. A MaxCount of 2 recognizes double taps.
	MaxCount int

	touches  map[uint32]*tapState
	lastPos  math32.Vector2
	lastTime time.Time
	count    int
}

type tapState struct {
	g      Gesture
	failed bool
}

// NewTap returns a new [Tap] for the given buttons.
func NewTap(buttons events.ButtonMask, f func(g *Gesture)) *Tap {
	return &Tap{Base: Base{Buttons: buttons}, Func: f}
}

func (tp *Tap) Tracks(id uint32) bool {
	_, ok := tp.touches[id]
	return ok
}

func (tp *Tap) Handle(l *Listener, ev *events.Event) bool {
	switch ev.Type {
	case events.Begin:
		if !tp.accepts(ev) {
			return false
		}
		if tp.touches == nil {
			tp.touches = map[uint32]*tapState{}
		}
		tp.touches[ev.ID] = &tapState{g: Gesture{ID: ev.ID, Button: ev.Button, Mods: ev.Mods, Location: ev.Pos, Start: ev.Pos, Density: ev.Density, Time: ev.Time}}
		return true
	case events.Move:
		st, ok := tp.touches[ev.ID]
		if !ok {
			return false
		}
		st.g.Location = ev.Pos
		if ev.Dp(ev.Pos.DistanceTo(st.g.Start)) > tp.knobs().TapDistance {
			// keep tracking, so that the end reports the cancellation
			st.failed = true
		}
		return true
	case events.End:
		st, ok := tp.touches[ev.ID]
		if !ok {
			return false
		}
		delete(tp.touches, ev.ID)
		ks := tp.knobs()
		st.g.Location = ev.Pos
		if st.failed || ev.Time.Sub(st.g.Time) > ks.TapInterval || ev.Dp(ev.Pos.DistanceTo(st.g.Start)) > ks.TapDistance {
			tp.cancelled(st, ev.Time)
			return true
		}
		if tp.count > 0 && st.g.Time.Sub(tp.lastTime) <= ks.TapInterval && ev.Dp(ev.Pos.DistanceTo(tp.lastPos)) <= ks.TapDistance {
			tp.count++
		} else {
			tp.count = 1
		}
		tp.lastPos = ev.Pos
		tp.lastTime = ev.Time
		g := st.g
		g.Phase = Activated
		g.Count = tp.count
		g.Time = ev.Time
		if tp.MaxCount > 0 && tp.count >= tp.MaxCount {
			tp.count = 0
		}
		emit("tap", tp.Func, &g)
		return true
	case events.Cancel:
		st, ok := tp.touches[ev.ID]
		if !ok {
			return false
		}
		delete(tp.touches, ev.ID)
		tp.cancelled(st, ev.Time)
		return true
	}
	return false
}

func (tp *Tap) cancelled(st *tapState, t time.Time) {
	tp.count = 0
	g := st.g
	g.Phase = Cancelled
	g.Time = t
	emit("tap", tp.Func, &g)
}

func (tp *Tap) Cancel(l *Listener, id uint32) {
	if st, ok := tp.touches[id]; ok {
		delete(tp.touches, id)
		tp.cancelled(st, st.g.Time)
	}
}

func (tp *Tap) Update(l *Listener, now time.Time) {}

var _ Recognizer = (*Tap)(nil)
