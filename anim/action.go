// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package anim provides time based actions that run on scene nodes:
// tweens, sequences, parallel spawns, eased actions, calls and delays,
// and a per-node [Runner] that keeps at most one running action per tag.
//
// All times are float32 seconds, which is the unit of the scene frame delta.
package anim

// NoTag is the tag of untagged actions. Running an untagged action
// never stops another action.
const NoTag = 0

// Action is a time based action. An action is started once on a target
// and then stepped every frame until it is done. Actions that represent
// a function of their progress can also be driven directly with Update,
// which is how [Ease] and [Sequence] compose them.
type Action interface {

	// Duration returns the total duration of the action in seconds.
	Duration() float32

	// Start starts the action on the given target, resetting its time.
	Start(target any)

	// Step advances the action by dt seconds. It returns the part of dt
	// that was not consumed because the action finished.
	Step(dt float32) float32

	// Update sets the state of the action at progress u in [0, 1].
	Update(u float32)

	// Stop stops the action; it will not be stepped again.
	Stop()

	// IsDone returns whether the action finished or was stopped.
	IsDone() bool

	// Tag returns the tag of the action, or [NoTag].
	Tag() int

	// SetTag sets the tag of the action.
	SetTag(tag int)
}

// WithTag sets the tag of the given action and returns it.
func WithTag[A Action](a A, tag int) A {
	a.SetTag(tag)
	return a
}

// Interval is the common state of all actions: a duration, the
// elapsed time, a tag and the target. Concrete actions embed it.
type Interval struct {

	// Dur is the duration in seconds.
	Dur float32

	elapsed float32
	tag     int
	done    bool
	target  any
}

func (iv *Interval) Duration() float32 { return iv.Dur }
func (iv *Interval) Tag() int          { return iv.tag }
func (iv *Interval) SetTag(tag int)    { iv.tag = tag }
func (iv *Interval) IsDone() bool      { return iv.done }
func (iv *Interval) Stop()             { iv.done = true }

// Target returns the target the action was started on.
func (iv *Interval) Target() any { return iv.target }

// Elapsed returns the time elapsed since the action started.
func (iv *Interval) Elapsed() float32 { return iv.elapsed }

// Start resets the interval for the given target.
func (iv *Interval) Start(target any) {
	iv.target = target
	iv.elapsed = 0
	iv.done = false
}

// advance moves the elapsed time forward by dt and returns the
// resulting progress and the leftover time past the end.
func (iv *Interval) advance(dt float32) (u, left float32) {
	if iv.Dur <= 0 {
		iv.done = true
		return 1, dt
	}
	iv.elapsed += dt
	if iv.elapsed >= iv.Dur {
		left = iv.elapsed - iv.Dur
		iv.elapsed = iv.Dur
		iv.done = true
		return 1, left
	}
	return iv.elapsed / iv.Dur, 0
}

// step is the Step of leaf actions: it advances time and calls update.
func (iv *Interval) step(dt float32, update func(u float32)) float32 {
	if iv.done {
		return dt
	}
	u, left := iv.advance(dt)
	update(u)
	return left
}

// Delay is an action that does nothing for its duration.
type Delay struct {
	Interval
}

// NewDelay returns a new [Delay] of the given duration.
func NewDelay(dur float32) *Delay {
	return &Delay{Interval{Dur: dur}}
}

func (d *Delay) Step(dt float32) float32 {
	return d.step(dt, d.Update)
}

func (d *Delay) Update(u float32) {}

// Call is a zero duration action that calls a function once.
type Call struct {
	Interval
	Func   func()
	called bool
}

// NewCall returns a new [Call] of the given function.
func NewCall(f func()) *Call {
	return &Call{Func: f}
}

func (c *Call) Start(target any) {
	c.Interval.Start(target)
	c.called = false
}

func (c *Call) Step(dt float32) float32 {
	return c.step(dt, c.Update)
}

func (c *Call) Update(u float32) {
	if c.called || u < 1 {
		return
	}
	c.called = true
	if c.Func != nil {
		c.Func()
	}
}
