// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package input

import (
	"cogentcore.org/scroll/events"
	"cogentcore.org/scroll/math32"
)

// Target is the node a [Listener] is attached to, as seen by hit testing.
type Target interface {

	// IsTouched returns whether the given scene location is inside the
	// node, inflated by padding on every side.
	IsTouched(pos math32.Vector2, padding float32) bool

	// EffectiveOpacity returns the opacity of the node including the
	// cascade from its parents.
	EffectiveOpacity() float32

	// IsVisibleInTree returns whether the node and all of its
	// parents are visible.
	IsVisibleInTree() bool
}

// Listener attaches an ordered list of recognizers and high level
// handlers to a node.
type Listener struct {

	// Target is the node the listener is attached to; nil disables hit testing.
	Target Target

	// Priority orders the listeners of one node: higher first.
	Priority int

	// Enabled is the user controlled switch of the listener.
	Enabled bool

	// Running is set while the node is in a running scene.
	Running bool

	// SwallowMask is the set of event types that do not propagate
	// past this listener once it processed them.
	SwallowMask events.TypeMask

	// EventMask is the set of event types the listener processes.
	EventMask events.TypeMask

	// TouchPadding inflates the hit test area on every side.
	TouchPadding float32

	// OpacityFilter is the minimal effective opacity of the node for
	// the listener to receive hit tested events; 0 disables the check.
	OpacityFilter float32

	// EventFilter overrides the hit test. It receives the default
	// filter, which it may call.
	EventFilter func(ev *events.Event, def func(ev *events.Event) bool) bool

	// Recognizers all receive every event, in order.
	Recognizers []Recognizer

	// Handlers receive the broadcast events: key, char, focus and background.
	Handlers events.Listeners

	// OnPointerEnter is called when the hovering pointer enters or
	// leaves the node.
	OnPointerEnter func(entered bool)

	dispatcher *Dispatcher
	hovered    bool
}

// NewListener returns a new enabled and running [Listener] for
// the given target, processing all event types.
func NewListener(target Target) *Listener {
	return &Listener{Target: target, Enabled: true, Running: true, EventMask: events.AllTypes}
}

// Add appends the given recognizer and returns it.
func (l *Listener) Add(r Recognizer) Recognizer {
	l.Recognizers = append(l.Recognizers, r)
	return r
}

// AddPress adds a new [Press] recognizer.
func (l *Listener) AddPress(buttons events.ButtonMask, f func(g *Gesture)) *Press {
	pr := NewPress(buttons, f)
	l.Add(pr)
	return pr
}

// AddSwipe adds a new [Swipe] recognizer.
func (l *Listener) AddSwipe(buttons events.ButtonMask, f func(g *Gesture)) *Swipe {
	sw := NewSwipe(buttons, f)
	l.Add(sw)
	return sw
}

// AddTap adds a new [Tap] recognizer.
func (l *Listener) AddTap(buttons events.ButtonMask, f func(g *Gesture)) *Tap {
	tp := NewTap(buttons, f)
	l.Add(tp)
	return tp
}

// AddWheel adds a new [Wheel] recognizer.
func (l *Listener) AddWheel(f func(g *Gesture)) *Wheel {
	wh := NewWheel(f)
	l.Add(wh)
	return wh
}

// OnKey registers a handler for key presses and releases.
func (l *Listener) OnKey(f func(ev *events.Event)) {
	l.Handlers.Add(events.KeyDown, f)
	l.Handlers.Add(events.KeyUp, f)
}

// OnChar registers a handler for text input.
func (l *Listener) OnChar(f func(ev *events.Event)) {
	l.Handlers.Add(events.Char, f)
}

// OnFocus registers a handler for window focus changes.
func (l *Listener) OnFocus(f func(focused bool)) {
	l.Handlers.Add(events.Focus, func(ev *events.Event) { f(ev.Value()) })
}

// OnBackground registers a handler for application background changes.
func (l *Listener) OnBackground(f func(background bool)) {
	l.Handlers.Add(events.Background, func(ev *events.Event) { f(ev.Value()) })
}

// DefaultFilter is the default hit test: the event location must touch
// the target inflated by TouchPadding, and the target must be visible
// with an effective opacity of at least OpacityFilter.
func (l *Listener) DefaultFilter(ev *events.Event) bool {
	if l.Target == nil {
		return true
	}
	if !l.Target.IsVisibleInTree() {
		return false
	}
	if l.OpacityFilter > 0 && l.Target.EffectiveOpacity() < l.OpacityFilter {
		return false
	}
	return l.Target.IsTouched(ev.Pos, l.TouchPadding)
}

// IsActive returns whether the listener is enabled and running.
func (l *Listener) IsActive() bool {
	return l.Enabled && l.Running
}

// ShouldProcessEvent returns whether the listener processes the given
// event: it must be active, accept the event type, and pass the event
// filter for hit tested types.
func (l *Listener) ShouldProcessEvent(ev *events.Event) bool {
	if !l.IsActive() || !l.EventMask.Has(ev.Type) {
		return false
	}
	switch ev.Type {
	case events.Begin, events.Wheel, events.Hover:
		if l.EventFilter != nil {
			return l.EventFilter(ev, l.DefaultFilter)
		}
		return l.DefaultFilter(ev)
	}
	return true
}

// Handle passes the event to every recognizer in order, returning
// whether any of them handled it. A recognizer handling the event does
// not hide it from the next ones: a press and a swipe both need the
// begin of the same touch.
func (l *Listener) Handle(ev *events.Event) bool {
	handled := false
	for _, r := range l.Recognizers {
		if r.Handle(l, ev) {
			handled = true
		}
	}
	return handled
}

// Tracks returns whether any recognizer tracks the given touch.
func (l *Listener) Tracks(id uint32) bool {
	for _, r := range l.Recognizers {
		if r.Tracks(id) {
			return true
		}
	}
	return false
}

// Cancel cancels the given touch in all recognizers.
func (l *Listener) Cancel(id uint32) {
	for _, r := range l.Recognizers {
		r.Cancel(l, id)
	}
}

// SetExclusive gives this listener exclusive ownership of the given
// touch: every other listener tracking it is cancelled.
func (l *Listener) SetExclusive(id uint32) {
	if l.dispatcher != nil {
		l.dispatcher.setExclusive(l, id)
	}
}

// SetExclusiveAll gives this listener exclusive ownership of every
// touch it tracks.
func (l *Listener) SetExclusiveAll() {
	if l.dispatcher != nil {
		l.dispatcher.setExclusiveAll(l)
	}
}
