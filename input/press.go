// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package input

import (
	"time"

	"cogentcore.org/scroll/events"
)

// Press recognizes presses and long presses. It emits [Began] on
// press, [Activated] every long press interval while the pointer is
// held still, and [Ended] on release. Moving beyond the tap distance,
// a platform cancel or the loss of exclusivity emit [Cancelled].
type Press struct {
	Base

	Func func(g *Gesture)

	touches map[uint32]*pressState
}

type pressState struct {
	g        Gesture
	lastTick time.Time
}

// NewPress returns a new [Press] for the given buttons.
func NewPress(buttons events.ButtonMask, f func(g *Gesture)) *Press {
	return &Press{Base: Base{Buttons: buttons}, Func: f}
}

func (pr *Press) Tracks(id uint32) bool {
	_, ok := pr.touches[id]
	return ok
}

func (pr *Press) Handle(l *Listener, ev *events.Event) bool {
	switch ev.Type {
	case events.Begin:
		if !pr.accepts(ev) {
			return false
		}
		if pr.touches == nil {
			pr.touches = map[uint32]*pressState{}
		}
		st := &pressState{lastTick: ev.Time}
		st.g = Gesture{Phase: Began, ID: ev.ID, Button: ev.Button, Mods: ev.Mods, Location: ev.Pos, Start: ev.Pos, Density: ev.Density, Time: ev.Time}
		pr.touches[ev.ID] = st
		g := st.g
		emit("press", pr.Func, &g)
		return true
	case events.Move:
		st, ok := pr.touches[ev.ID]
		if !ok {
			return false
		}
		st.g.Location = ev.Pos
		if ev.Dp(ev.Pos.DistanceTo(st.g.Start)) > pr.knobs().TapDistance {
			pr.finish(st, Cancelled, ev.Time)
		}
		return true
	case events.End:
		st, ok := pr.touches[ev.ID]
		if !ok {
			return false
		}
		st.g.Location = ev.Pos
		pr.finish(st, Ended, ev.Time)
		return true
	case events.Cancel:
		st, ok := pr.touches[ev.ID]
		if !ok {
			return false
		}
		pr.finish(st, Cancelled, ev.Time)
		return true
	}
	return false
}

func (pr *Press) finish(st *pressState, phase Phases, t time.Time) {
	delete(pr.touches, st.g.ID)
	g := st.g
	g.Phase = phase
	g.Time = t
	emit("press", pr.Func, &g)
}

func (pr *Press) Cancel(l *Listener, id uint32) {
	if st, ok := pr.touches[id]; ok {
		pr.finish(st, Cancelled, st.lastTick)
	}
}

func (pr *Press) Update(l *Listener, now time.Time) {
	iv := pr.knobs().LongPressInterval
	if iv <= 0 {
		return
	}
	for _, st := range pr.touches {
		for now.Sub(st.lastTick) >= iv {
			st.lastTick = st.lastTick.Add(iv)
			st.g.TickCount++
			g := st.g
			g.Phase = Activated
			g.Time = st.lastTick
			emit("press", pr.Func, &g)
			if !pr.Tracks(g.ID) { // cancelled from the callback
				break
			}
		}
	}
}

// Duration returns how long the given touch has been pressed.
func (pr *Press) Duration(id uint32, now time.Time) time.Duration {
	st, ok := pr.touches[id]
	if !ok {
		return 0
	}
	return now.Sub(st.g.Time)
}

var _ Recognizer = (*Press)(nil)
