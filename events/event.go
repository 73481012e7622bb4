// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package events defines the raw input events consumed by the
// gesture recognizers, and the queue that carries them from the
// platform goroutine to the scene.
package events

import (
	"fmt"
	"time"

	"cogentcore.org/scroll/math32"
)

// Key is the keyboard payload of [KeyDown], [KeyUp] and [Char] events.
type Key struct {

	// Code is the platform independent key code.
	Code uint32

	// Sym is the keysym, taking the layout into account.
	Sym uint32

	// Char is the rune produced by the key, if any.
	Char rune

	// Compose is the text of an input method composition in progress.
	Compose string
}

// Event is a raw input event.
type Event struct {

	// ID identifies the touch that the event belongs to.
	// The mouse pointer uses a fixed id.
	ID uint32

	Type Types

	Button Buttons

	Mods Modifiers

	// Pos is the location in scene coordinates.
	Pos math32.Vector2

	// Density is the number of pixels per density-independent pixel.
	Density float32

	// Wheel is the wheel step amount, in abstract wheel units.
	Wheel math32.Vector2

	Key Key

	// Time is the monotonic timestamp of the event.
	Time time.Time

	handled bool
}

// NewPointer returns a new pointer event of the given type.
func NewPointer(typ Types, id uint32, but Buttons, pos math32.Vector2, t time.Time) *Event {
	return &Event{ID: id, Type: typ, Button: but, Pos: pos, Density: 1, Time: t}
}

// NewWheel returns a new wheel event with the given amount.
func NewWheel(pos, amount math32.Vector2, t time.Time) *Event {
	but := WheelDown
	switch {
	case amount.Y > 0:
		but = WheelUp
	case amount.X > 0:
		but = WheelLeft
	case amount.X < 0:
		but = WheelRight
	}
	return &Event{Type: Wheel, Button: but, Pos: pos, Density: 1, Wheel: amount, Time: t}
}

// NewValue returns a new synthetic [Focus] or [Background] event.
func NewValue(typ Types, value bool, t time.Time) *Event {
	ev := &Event{Type: typ, Density: 1, Time: t}
	if value {
		ev.Mods = ValueTrue
	} else {
		ev.Mods = ValueFalse
	}
	return ev
}

// Value returns the value carried by a synthetic event.
func (ev *Event) Value() bool {
	return ev.Mods.Has(ValueTrue)
}

// SetHandled marks the event as handled, which stops it from
// propagating to further listeners.
func (ev *Event) SetHandled() {
	ev.handled = true
}

// ClearHandled clears the handled state.
func (ev *Event) ClearHandled() {
	ev.handled = false
}

func (ev *Event) IsHandled() bool {
	return ev.handled
}

// Dp converts a distance in pixels into density-independent pixels.
func (ev *Event) Dp(px float32) float32 {
	if ev.Density <= 0 {
		return px
	}
	return px / ev.Density
}

func (ev *Event) String() string {
	switch {
	case ev.Type == Wheel:
		return fmt.Sprintf("%v{Pos: %v, Amount: %v}", ev.Type, ev.Pos, ev.Wheel)
	case ev.Type.IsBroadcast():
		return fmt.Sprintf("%v{Key: %+v, Mods: %v}", ev.Type, ev.Key, ev.Mods)
	}
	return fmt.Sprintf("%v{ID: %d, Button: %v, Pos: %v}", ev.Type, ev.ID, ev.Button, ev.Pos)
}
