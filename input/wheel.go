// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package input

import (
	"time"

	"cogentcore.org/scroll/events"
)

// Wheel recognizes scroll wheel steps, emitting [Activated] with the
// wheel amount for each of them.
type Wheel struct {
	Base

	Func func(g *Gesture)
}

// NewWheel returns a new [Wheel] for all wheel buttons.
func NewWheel(f func(g *Gesture)) *Wheel {
	return &Wheel{Base: Base{Buttons: events.WheelMask}, Func: f}
}

func (wh *Wheel) Handle(l *Listener, ev *events.Event) bool {
	if ev.Type != events.Wheel || !wh.accepts(ev) {
		return false
	}
	g := Gesture{Phase: Activated, ID: ev.ID, Button: ev.Button, Mods: ev.Mods, Location: ev.Pos, Start: ev.Pos, Amount: ev.Wheel, Density: ev.Density, Time: ev.Time}
	emit("wheel", wh.Func, &g)
	return true
}

func (wh *Wheel) Tracks(id uint32) bool             { return false }
func (wh *Wheel) Cancel(l *Listener, id uint32)     {}
func (wh *Wheel) Update(l *Listener, now time.Time) {}

var _ Recognizer = (*Wheel)(nil)
