// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package input turns raw [events.Event]s into gestures. Recognizers
// (press, swipe, tap, wheel) are attached to a [Listener] on a scene
// node, and a [Dispatcher] routes events to listeners with hit testing,
// touch tracking, swallowing and exclusivity.
package input

//go:generate mockgen -destination=mocks/mock_target.go -package=mocks cogentcore.org/scroll/input Target

import (
	"fmt"
	"log/slog"
	"time"

	"cogentcore.org/scroll/events"
	"cogentcore.org/scroll/math32"
	"cogentcore.org/scroll/settings"
)

// Phases is the phase of a [Gesture].
type Phases int32

const (
	Began Phases = iota
	Activated
	Ended
	Cancelled
)

func (ph Phases) String() string {
	switch ph {
	case Began:
		return "Began"
	case Activated:
		return "Activated"
	case Ended:
		return "Ended"
	case Cancelled:
		return "Cancelled"
	}
	return fmt.Sprintf("Phases(%d)", int32(ph))
}

// Gesture is a high level event emitted by a recognizer.
type Gesture struct {
	Phase Phases

	// ID is the touch the gesture belongs to.
	ID uint32

	Button events.Buttons
	Mods   events.Modifiers

	// Location is the current location; for a swipe with several
	// touches it is their midpoint.
	Location math32.Vector2

	// Start is the location where the gesture started.
	Start math32.Vector2

	// Delta is the movement since the previous swipe event. When a swipe
	// begins it is the whole displacement since the press.
	Delta math32.Vector2

	// Velocity is the swipe velocity in pixels per second, averaged
	// over the last samples.
	Velocity math32.Vector2

	// Amount is the wheel amount, in abstract wheel units.
	Amount math32.Vector2

	// Density is the number of pixels per density-independent pixel.
	Density float32

	// TickCount is the number of long press intervals elapsed.
	TickCount int

	// Count is the number of consecutive taps.
	Count int

	Time time.Time
}

func (g *Gesture) String() string {
	return fmt.Sprintf("%v{ID: %d, Location: %v, Delta: %v, Velocity: %v}", g.Phase, g.ID, g.Location, g.Delta, g.Velocity)
}

// Recognizer is a state machine over raw pointer events that emits
// [Gesture]s.
type Recognizer interface {

	// Handle processes a raw event received by the given listener.
	// It returns whether the event was handled.
	Handle(l *Listener, ev *events.Event) bool

	// Cancel stops tracking the given touch, emitting [Cancelled]
	// if a gesture was in progress.
	Cancel(l *Listener, id uint32)

	// Update fires time based transitions.
	Update(l *Listener, now time.Time)

	// Tracks returns whether the recognizer is tracking the given touch.
	Tracks(id uint32) bool
}

// Base is the common configuration of recognizers.
type Base struct {

	// Buttons is the set of buttons the recognizer responds to.
	Buttons events.ButtonMask

	// Settings are the settings to use; nil means [settings.Current].
	Settings *settings.Scroll
}

func (rb *Base) knobs() *settings.Scroll {
	if rb.Settings != nil {
		return rb.Settings
	}
	return settings.Current
}

func (rb *Base) accepts(ev *events.Event) bool {
	return rb.Buttons.Has(ev.Button)
}

func emit(name string, f func(g *Gesture), g *Gesture) {
	if settings.Debug.GestureTrace {
		slog.Info("input: "+name, "gesture", g.String())
	}
	if f != nil {
		f(g)
	}
}
