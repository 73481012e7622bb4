// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anim

import (
	"fmt"
	"log/slog"
	"slices"

	"cogentcore.org/scroll/settings"
)

// Runner runs the actions of one target. Running a tagged action
// stops any running action with the same tag, so there is at most one
// running action per tag. The zero value is ready to use.
type Runner struct {
	actions []Action
}

// Run starts the given action on the given target and returns it.
func (r *Runner) Run(target any, a Action) Action {
	if tag := a.Tag(); tag != NoTag {
		r.StopByTag(tag)
	}
	if settings.Debug.ActionTrace {
		slog.Info("anim: run", "action", fmt.Sprintf("%T", a), "tag", a.Tag(), "duration", a.Duration())
	}
	a.Start(target)
	r.actions = append(r.actions, a)
	return a
}

// ByTag returns the running action with the given tag, or nil.
func (r *Runner) ByTag(tag int) Action {
	for _, a := range r.actions {
		if a.Tag() == tag && !a.IsDone() {
			return a
		}
	}
	return nil
}

// IsRunning returns whether an action with the given tag is running.
func (r *Runner) IsRunning(tag int) bool {
	return r.ByTag(tag) != nil
}

// StopByTag stops the running actions with the given tag,
// returning whether there were any.
func (r *Runner) StopByTag(tag int) bool {
	stopped := false
	for _, a := range r.actions {
		if a.Tag() == tag && !a.IsDone() {
			if settings.Debug.ActionTrace {
				slog.Info("anim: stop", "tag", tag)
			}
			a.Stop()
			stopped = true
		}
	}
	return stopped
}

// StopAll stops all running actions.
func (r *Runner) StopAll() {
	for _, a := range r.actions {
		a.Stop()
	}
	r.actions = nil
}

// Len returns the number of running actions.
func (r *Runner) Len() int {
	n := 0
	for _, a := range r.actions {
		if !a.IsDone() {
			n++
		}
	}
	return n
}

// Step steps all running actions by dt. Actions that are started
// while stepping are stepped from the next call on.
func (r *Runner) Step(dt float32) {
	if len(r.actions) == 0 {
		return
	}
	snap := slices.Clone(r.actions)
	for _, a := range snap {
		if !a.IsDone() {
			a.Step(dt)
		}
	}
	r.actions = slices.DeleteFunc(r.actions, Action.IsDone)
}
