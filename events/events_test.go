// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"sync"
	"testing"
	"time"

	"cogentcore.org/scroll/math32"
	"github.com/stretchr/testify/assert"
)

func TestQueueOrder(t *testing.T) {
	q := &Queue{}
	q.Init()
	now := time.Now()
	for i := 0; i < 5; i++ {
		q.Send(*NewPointer(Move, uint32(i), Touch, math32.Vec2(float32(i), 0), now))
	}
	assert.Equal(t, uint64(5), q.Len())
	var ids []uint32
	q.Drain(func(ev *Event) {
		ids = append(ids, ev.ID)
	})
	assert.Equal(t, []uint32{0, 1, 2, 3, 4}, ids)
	assert.Equal(t, uint64(0), q.Len())
	_, ok := q.Next()
	assert.False(t, ok)
}

func TestQueueConcurrentSend(t *testing.T) {
	q := &Queue{}
	q.Init()
	var wg sync.WaitGroup
	for g := 0; g < 4; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				q.Send(Event{Type: Move})
			}
		}()
	}
	wg.Wait()
	n := 0
	q.Drain(func(ev *Event) { n++ })
	assert.Equal(t, 400, n)
}

func TestQueueSendWhileDraining(t *testing.T) {
	q := &Queue{}
	q.Init()
	const producers, perProducer = 4, 2000
	var wg sync.WaitGroup
	for g := range producers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range perProducer {
				q.Send(Event{Type: Move, ID: uint32(g), Pos: math32.Vec2(float32(i), 0)})
			}
		}()
	}
	next := make([]int, producers)
	got := 0
	drain := func() {
		q.Drain(func(ev *Event) {
			seq := int(ev.Pos.X)
			assert.Equal(t, next[ev.ID], seq, "events of one producer stay in order")
			next[ev.ID] = seq + 1
			got++
		})
	}
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	for running := true; running; {
		select {
		case <-done:
			running = false
		default:
		}
		drain()
	}
	drain()
	assert.Equal(t, producers*perProducer, got)
	assert.Equal(t, uint64(0), q.Len())
}

func TestListenersCallOrder(t *testing.T) {
	var ls Listeners
	var got []int
	ls.Add(KeyDown, func(ev *Event) { got = append(got, 1) })
	ls.Add(KeyDown, func(ev *Event) {
		got = append(got, 2)
		ev.SetHandled()
	})
	assert.True(t, ls.Has(KeyDown))
	assert.False(t, ls.Has(Char))
	ls.Call(&Event{Type: KeyDown})
	assert.Equal(t, []int{2}, got)
}

func TestMasks(t *testing.T) {
	assert.True(t, PointerMask.Has(Touch))
	assert.True(t, PointerMask.Has(MouseLeft))
	assert.False(t, PointerMask.Has(MouseRight))
	assert.True(t, WheelMask.Has(WheelUp))

	m := Mask(Begin, End)
	assert.True(t, m.Has(Begin))
	assert.False(t, m.Has(Move))
	assert.True(t, AllTypes.Has(Background))

	var mods Modifiers
	mods.SetFlag(true, ShiftL)
	assert.True(t, mods.Has(Shift))
	assert.False(t, mods.Has(Ctrl))
	assert.Equal(t, "ShiftL", mods.String())
	mods.SetFlag(false, Shift)
	assert.Equal(t, Modifiers(0), mods)
}

func TestValueEvents(t *testing.T) {
	ev := NewValue(Focus, true, time.Now())
	assert.True(t, ev.Value())
	assert.False(t, NewValue(Background, false, time.Now()).Value())
	assert.Equal(t, "Focus", Focus.String())
	assert.True(t, Focus.IsBroadcast())
	assert.True(t, Cancel.IsPointer())
	assert.False(t, Hover.IsPointer())
}
