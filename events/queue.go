// Copyright 2018 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"sync/atomic"
)

// Queue is a lock-free FIFO event queue. Any number of goroutines may
// [Queue.Send], while a single consumer (the scene) drains it at the
// start of each frame. Nodes are never reused, since a producer may
// still hold a stale tail when the consumer releases it.
// It must be initialized using [Queue.Init] before use.
type Queue struct {
	head atomic.Pointer[queueEvent]
	tail atomic.Pointer[queueEvent]
	len  atomic.Uint64
}

// Init initializes the queue.
func (q *Queue) Init() {
	head := &queueEvent{}
	q.head.Store(head)
	q.tail.Store(head)
}

type queueEvent struct {
	next atomic.Pointer[queueEvent]
	v    Event
}

// Next removes and returns the next event in the queue.
// It returns false if the queue is empty.
func (q *Queue) Next() (Event, bool) {
	var first, last, firstnext *queueEvent
	for {
		first = q.head.Load()
		last = q.tail.Load()
		firstnext = first.next.Load()
		if first == q.head.Load() {
			if first == last {
				if firstnext == nil {
					return Event{}, false
				}
				q.tail.CompareAndSwap(last, firstnext)
			} else {
				v := firstnext.v
				if q.head.CompareAndSwap(first, firstnext) {
					q.len.Add(^uint64(0))
					first.v = Event{}
					return v, true
				}
			}
		}
	}
}

// Send adds an event to the end of the queue.
func (q *Queue) Send(ev Event) {
	i := &queueEvent{v: ev}

	var last, lastnext *queueEvent
	for {
		last = q.tail.Load()
		lastnext = last.next.Load()
		if q.tail.Load() == last {
			if lastnext == nil {
				if last.next.CompareAndSwap(lastnext, i) {
					q.tail.CompareAndSwap(last, i)
					q.len.Add(1)
					return
				}
			} else {
				q.tail.CompareAndSwap(last, lastnext)
			}
		}
	}
}

// Drain calls fun for every event currently in the queue, in
// arrival order. Events sent while draining are delivered too.
func (q *Queue) Drain(fun func(ev *Event)) {
	for {
		ev, ok := q.Next()
		if !ok {
			return
		}
		fun(&ev)
	}
}

// Len returns the length of the queue.
func (q *Queue) Len() uint64 {
	return q.len.Load()
}
