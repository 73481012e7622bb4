// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"cogentcore.org/scroll/events"
	"cogentcore.org/scroll/input"
	"cogentcore.org/scroll/settings"
)

// Scene is a running tree of nodes. All of its methods except
// [Scene.Send], [Scene.Perform] and [Scene.Post] must be called from the scene
// goroutine, whose only suspension point is the frame boundary.
type Scene struct {

	// Root is the root node of the scene.
	Root Node

	// Events is the queue of raw input events, sent from any goroutine
	// and drained at the start of each frame.
	Events events.Queue

	// Dispatcher routes input events to the listeners of the nodes.
	Dispatcher input.Dispatcher

	// MaxFrameDelta caps the frame time delta to absorb stalls.
	MaxFrameDelta time.Duration

	// Now is the monotonic scene clock, advanced by every [Scene.Update].
	Now time.Time

	// Frame is the number of frames updated.
	Frame int

	ctx    context.Context
	cancel context.CancelFunc
	tasks  sync.WaitGroup

	mu          sync.Mutex
	completions []func()
	pending     int
}

// NewScene returns a new running [Scene] with the given root node.
func NewScene(root Node) *Scene {
	InitNode(root)
	sc := &Scene{Root: root, MaxFrameDelta: settings.Current.MaxFrameDelta, Now: time.Now()}
	sc.Events.Init()
	sc.ctx, sc.cancel = context.WithCancel(context.Background())
	root.AsNode().enter(sc)
	return sc
}

// Send adds a raw input event to the queue. It is safe to call from
// any goroutine. Events with a zero time are stamped with the scene
// clock when they are dispatched.
func (sc *Scene) Send(ev *events.Event) {
	sc.Events.Send(*ev)
}

// Update runs one frame of the scene with the given wall clock delta,
// capped to MaxFrameDelta. In order, it runs task completions, drains
// and dispatches the input events, fires recognizer timers, steps the
// actions of all nodes, notifies dirty observers and calls the
// [Node.Update] hook of all nodes.
func (sc *Scene) Update(dt time.Duration) {
	if sc.MaxFrameDelta > 0 && dt > sc.MaxFrameDelta {
		dt = sc.MaxFrameDelta
	}
	dt = max(dt, 0)
	sc.Now = sc.Now.Add(dt)
	sc.Frame++
	secs := settings.Seconds(dt)

	sc.runCompletions()
	sc.Events.Drain(func(ev *events.Event) {
		if ev.Time.IsZero() {
			ev.Time = sc.Now
		}
		sc.Dispatch(ev)
	})
	sc.Dispatcher.Update(sc.Now)

	nodes := sc.nodes()
	for _, n := range nodes {
		n.AsNode().runner.Step(secs)
	}
	for _, n := range sc.nodes() {
		n.AsNode().notifyDirty()
	}
	for _, n := range sc.nodes() {
		if n.AsNode().scene == sc {
			n.Update(secs)
		}
	}
}

// nodes returns all nodes of the scene in drawing order.
func (sc *Scene) nodes() []Node {
	var ns []Node
	sc.Root.AsNode().WalkDown(func(n Node) bool {
		ns = append(ns, n)
		return Continue
	})
	return ns
}

// Dispatch dispatches the given event to the listeners of the scene,
// front to back.
func (sc *Scene) Dispatch(ev *events.Event) bool {
	if settings.Debug.GestureTrace {
		slog.Info("scene: event", "frame", sc.Frame, "event", ev.String())
	}
	return sc.Dispatcher.Dispatch(ev, sc.Listeners())
}

// Listeners returns the listeners of all nodes front to back: nodes in
// reverse drawing order and, within a node, by decreasing priority.
func (sc *Scene) Listeners() []*input.Listener {
	var ls []*input.Listener
	sc.Root.AsNode().WalkDownPost(func(n Node) bool {
		nb := n.AsNode()
		if len(nb.Listeners) == 0 {
			return Continue
		}
		start := len(ls)
		ls = append(ls, nb.Listeners...)
		own := ls[start:]
		sort.SliceStable(own, func(i, j int) bool {
			return own[i].Priority > own[j].Priority
		})
		return Continue
	})
	return ls
}

// Close cancels the context of the background tasks and waits for
// them to return. Their completions are not run.
func (sc *Scene) Close() {
	sc.cancel()
	sc.tasks.Wait()
}
