// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"context"
	"log/slog"
)

// Perform runs the given task on a new goroutine with the scene
// context, which is cancelled by [Scene.Close]. When the task
// returns, done is called with its error on the scene goroutine at
// the start of the next frame. Node factories that are too slow for
// a frame post their work here and present a placeholder meanwhile.
func (sc *Scene) Perform(task func(ctx context.Context) error, done func(err error)) {
	sc.mu.Lock()
	sc.pending++
	sc.mu.Unlock()
	sc.tasks.Add(1)
	go func() {
		defer sc.tasks.Done()
		err := task(sc.ctx)
		if err != nil && sc.ctx.Err() == nil {
			slog.Error("scene: task failed", "err", err)
		}
		sc.mu.Lock()
		defer sc.mu.Unlock()
		sc.pending--
		if sc.ctx.Err() != nil || done == nil {
			return
		}
		sc.completions = append(sc.completions, func() { done(err) })
	}()
}

// Post queues f to be called on the scene goroutine at the start of
// the next frame. It may be called from any goroutine; f is dropped
// once the scene is closed.
func (sc *Scene) Post(f func()) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	if sc.ctx.Err() != nil {
		return
	}
	sc.completions = append(sc.completions, f)
}

// PendingTasks returns the number of tasks that have not returned yet.
func (sc *Scene) PendingTasks() int {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.pending
}

func (sc *Scene) runCompletions() {
	sc.mu.Lock()
	cs := sc.completions
	sc.completions = nil
	sc.mu.Unlock()
	for _, f := range cs {
		f()
	}
}
