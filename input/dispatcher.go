// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package input

import (
	"log/slog"
	"slices"
	"time"

	"cogentcore.org/scroll/events"
	"cogentcore.org/scroll/settings"
)

// Dispatcher routes raw events to listeners. A Begin event is hit
// tested against the listeners, front to back, and the listeners whose
// recognizers start tracking the touch receive all of its later
// events. It lives on the scene and is only used from its goroutine.
type Dispatcher struct {
	tracks  map[uint32][]*Listener
	hovered []*Listener
}

// Dispatch dispatches the given event to the given listeners, which
// must be ordered front to back. It returns whether any listener
// handled the event.
func (d *Dispatcher) Dispatch(ev *events.Event, listeners []*Listener) bool {
	if d.tracks == nil {
		d.tracks = map[uint32][]*Listener{}
	}
	for _, l := range listeners {
		l.dispatcher = d
	}
	if settings.Debug.GestureTrace {
		slog.Info("input: dispatch", "event", ev.String())
	}
	switch ev.Type {
	case events.Begin:
		return d.begin(ev, listeners)
	case events.Move, events.End, events.Cancel:
		return d.tracked(ev)
	case events.Wheel:
		return d.hitTested(ev, listeners)
	case events.Hover:
		d.hover(ev, listeners)
		return false
	}
	return d.broadcast(ev, listeners)
}

func (d *Dispatcher) begin(ev *events.Event, listeners []*Listener) bool {
	handled := false
	for _, l := range listeners {
		if !l.ShouldProcessEvent(ev) {
			continue
		}
		if l.Handle(ev) {
			handled = true
		}
		if l.Tracks(ev.ID) && !slices.Contains(d.tracks[ev.ID], l) {
			d.tracks[ev.ID] = append(d.tracks[ev.ID], l)
		}
		if l.SwallowMask.Has(ev.Type) {
			break
		}
	}
	return handled
}

func (d *Dispatcher) tracked(ev *events.Event) bool {
	handled := false
	for _, l := range slices.Clone(d.tracks[ev.ID]) {
		// exclusivity may have removed it while dispatching
		if !slices.Contains(d.tracks[ev.ID], l) {
			continue
		}
		if !l.IsActive() {
			d.forget(l, ev.ID)
			continue
		}
		if l.Handle(ev) {
			handled = true
		}
		if l.SwallowMask.Has(ev.Type) {
			break
		}
	}
	if ev.Type != events.Move {
		delete(d.tracks, ev.ID)
	} else {
		d.tracks[ev.ID] = slices.DeleteFunc(d.tracks[ev.ID], func(l *Listener) bool {
			return !l.Tracks(ev.ID)
		})
	}
	return handled
}

func (d *Dispatcher) hitTested(ev *events.Event, listeners []*Listener) bool {
	handled := false
	for _, l := range listeners {
		if !l.ShouldProcessEvent(ev) {
			continue
		}
		if l.Handle(ev) {
			handled = true
		}
		if l.SwallowMask.Has(ev.Type) {
			break
		}
	}
	return handled
}

func (d *Dispatcher) hover(ev *events.Event, listeners []*Listener) {
	var in []*Listener
	for _, l := range listeners {
		if l.OnPointerEnter == nil || !l.ShouldProcessEvent(ev) {
			continue
		}
		in = append(in, l)
		if l.SwallowMask.Has(ev.Type) {
			break
		}
	}
	for _, l := range d.hovered {
		if l.hovered && !slices.Contains(in, l) {
			l.hovered = false
			l.OnPointerEnter(false)
		}
	}
	for _, l := range in {
		if !l.hovered {
			l.hovered = true
			l.OnPointerEnter(true)
		}
	}
	d.hovered = in
}

func (d *Dispatcher) broadcast(ev *events.Event, listeners []*Listener) bool {
	for _, l := range listeners {
		if !l.ShouldProcessEvent(ev) || !l.Handlers.Has(ev.Type) {
			continue
		}
		l.Handlers.Call(ev)
		if ev.IsHandled() || l.SwallowMask.Has(ev.Type) {
			break
		}
	}
	return ev.IsHandled()
}

// Update fires the time based transitions of the recognizers of all
// listeners that track a touch, such as long presses.
func (d *Dispatcher) Update(now time.Time) {
	var seen []*Listener
	for _, ls := range d.tracks {
		for _, l := range ls {
			if !slices.Contains(seen, l) {
				seen = append(seen, l)
			}
		}
	}
	for _, l := range seen {
		for _, r := range l.Recognizers {
			r.Update(l, now)
		}
	}
}

// Tracking returns the listeners tracking the given touch.
func (d *Dispatcher) Tracking(id uint32) []*Listener {
	return d.tracks[id]
}

func (d *Dispatcher) setExclusive(owner *Listener, id uint32) {
	ls := d.tracks[id]
	if len(ls) == 0 {
		return
	}
	if settings.Debug.GestureTrace {
		slog.Info("input: exclusive", "id", id, "cancelled", len(ls)-1)
	}
	keep := ls[:0:0]
	for _, l := range ls {
		if l == owner {
			keep = append(keep, l)
			continue
		}
		l.Cancel(id)
	}
	d.tracks[id] = keep
}

func (d *Dispatcher) setExclusiveAll(owner *Listener) {
	for id, ls := range d.tracks {
		if slices.Contains(ls, owner) {
			d.setExclusive(owner, id)
		}
	}
}

func (d *Dispatcher) forget(l *Listener, id uint32) {
	l.Cancel(id)
	d.tracks[id] = slices.DeleteFunc(d.tracks[id], func(o *Listener) bool { return o == l })
}

// Remove cancels every touch tracked by the given listener,
// which is used when its node leaves the scene.
func (d *Dispatcher) Remove(l *Listener) {
	for id, ls := range d.tracks {
		if slices.Contains(ls, l) {
			d.forget(l, id)
		}
	}
	if i := slices.Index(d.hovered, l); i >= 0 {
		d.hovered = slices.Delete(d.hovered, i, i+1)
		l.hovered = false
	}
}

// CancelAll cancels every tracked touch.
func (d *Dispatcher) CancelAll() {
	for id, ls := range d.tracks {
		for _, l := range ls {
			l.Cancel(id)
		}
		delete(d.tracks, id)
	}
}
