// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anim

import "fmt"

// ToAction converts an item of a [Sequence] or [Spawn] into an [Action]:
// a func() becomes a [Call] and a number becomes a [Delay] of that many
// seconds. It panics on any other type.
func ToAction(item any) Action {
	switch v := item.(type) {
	case Action:
		return v
	case func():
		return NewCall(v)
	case float32:
		return NewDelay(v)
	case float64:
		return NewDelay(float32(v))
	case int:
		return NewDelay(float32(v))
	}
	panic(fmt.Sprintf("anim: cannot use %T as an action", item))
}

func toActions(items []any) []Action {
	acts := make([]Action, len(items))
	for i, it := range items {
		acts[i] = ToAction(it)
	}
	return acts
}

// Sequence runs its actions one after the other: the completion of
// one action immediately starts the next one, within the same step.
type Sequence struct {
	Interval
	Actions []Action
	cur     int
}

// NewSequence returns a new [Sequence] of the given items,
// which are converted with [ToAction].
func NewSequence(items ...any) *Sequence {
	sq := &Sequence{Actions: toActions(items)}
	for _, a := range sq.Actions {
		sq.Dur += a.Duration()
	}
	return sq
}

func (sq *Sequence) Start(target any) {
	sq.Interval.Start(target)
	sq.cur = 0
	if len(sq.Actions) > 0 {
		sq.Actions[0].Start(target)
	}
}

func (sq *Sequence) Step(dt float32) float32 {
	if sq.done {
		return dt
	}
	in := dt
	for {
		if sq.cur >= len(sq.Actions) {
			sq.done = true
			sq.elapsed += in - dt
			return dt
		}
		a := sq.Actions[sq.cur]
		dt = a.Step(dt)
		if sq.done { // stopped from within a callback
			return 0
		}
		if !a.IsDone() {
			sq.elapsed += in - dt
			return 0
		}
		sq.cur++
		if sq.cur < len(sq.Actions) {
			sq.Actions[sq.cur].Start(sq.target)
		}
	}
}

// Update moves the sequence forward to progress u.
// A sequence cannot be moved backwards.
func (sq *Sequence) Update(u float32) {
	if d := u*sq.Dur - sq.elapsed; d >= 0 {
		sq.Step(d)
	}
}

func (sq *Sequence) Stop() {
	sq.Interval.Stop()
	for i := sq.cur; i < len(sq.Actions); i++ {
		sq.Actions[i].Stop()
	}
}

// Spawn runs its actions in parallel; it completes when the longest
// one completes.
type Spawn struct {
	Interval
	Actions []Action
}

// NewSpawn returns a new [Spawn] of the given items,
// which are converted with [ToAction].
func NewSpawn(items ...any) *Spawn {
	sp := &Spawn{Actions: toActions(items)}
	for _, a := range sp.Actions {
		sp.Dur = max(sp.Dur, a.Duration())
	}
	return sp
}

func (sp *Spawn) Start(target any) {
	sp.Interval.Start(target)
	for _, a := range sp.Actions {
		a.Start(target)
	}
}

func (sp *Spawn) Step(dt float32) float32 {
	if sp.done {
		return dt
	}
	_, left := sp.advance(dt)
	for _, a := range sp.Actions {
		if !a.IsDone() {
			a.Step(dt)
		}
	}
	if sp.done {
		for _, a := range sp.Actions {
			if !a.IsDone() {
				a.Update(1)
				a.Stop()
			}
		}
	}
	return left
}

func (sp *Spawn) Update(u float32) {
	t := u * sp.Dur
	for _, a := range sp.Actions {
		d := a.Duration()
		if d <= 0 {
			a.Update(1)
			continue
		}
		a.Update(min(t/d, 1))
	}
}

func (sp *Spawn) Stop() {
	sp.Interval.Stop()
	for _, a := range sp.Actions {
		a.Stop()
	}
}
