// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package input

import (
	"testing"
	"time"

	"cogentcore.org/scroll/base/tolassert"
	"cogentcore.org/scroll/events"
	"cogentcore.org/scroll/input/mocks"
	"cogentcore.org/scroll/math32"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

var t0 = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func at(ms int) time.Time {
	return t0.Add(time.Duration(ms) * time.Millisecond)
}

func ptr(typ events.Types, id uint32, x, y float32, ms int) *events.Event {
	return events.NewPointer(typ, id, events.Touch, math32.Vec2(x, y), at(ms))
}

// box is a rectangular target.
type box struct {
	math32.Box2
	opacity float32
	hidden  bool
}

func newBox(x0, y0, x1, y1 float32) *box {
	return &box{Box2: math32.B2(x0, y0, x1, y1), opacity: 1}
}

func (b *box) IsTouched(pos math32.Vector2, padding float32) bool {
	bb := b.Box2
	bb.ExpandByScalar(padding)
	return bb.ContainsPoint(pos)
}

func (b *box) EffectiveOpacity() float32 { return b.opacity }
func (b *box) IsVisibleInTree() bool     { return !b.hidden }

// spy is a recognizer that records the events of the touches it tracks.
type spy struct {
	tracking map[uint32]bool
	seen     []events.Types
	handles  bool
}

func (s *spy) Handle(l *Listener, ev *events.Event) bool {
	if s.tracking == nil {
		s.tracking = map[uint32]bool{}
	}
	if ev.Type == events.Begin {
		s.tracking[ev.ID] = true
	}
	if !s.tracking[ev.ID] {
		return false
	}
	s.seen = append(s.seen, ev.Type)
	if ev.Type == events.End || ev.Type == events.Cancel {
		delete(s.tracking, ev.ID)
	}
	return s.handles
}

func (s *spy) Cancel(l *Listener, id uint32)     { delete(s.tracking, id) }
func (s *spy) Update(l *Listener, now time.Time) {}
func (s *spy) Tracks(id uint32) bool             { return s.tracking[id] }

func phases(gs []Gesture) []Phases {
	ps := make([]Phases, len(gs))
	for i, g := range gs {
		ps[i] = g.Phase
	}
	return ps
}

func TestPressLongPress(t *testing.T) {
	var got []Gesture
	l := NewListener(newBox(0, 0, 100, 100))
	l.AddPress(events.PointerMask, func(g *Gesture) { got = append(got, *g) })
	d := &Dispatcher{}
	ls := []*Listener{l}

	assert.True(t, d.Dispatch(ptr(events.Begin, 1, 10, 10, 0), ls))
	d.Update(at(400))
	assert.Equal(t, []Phases{Began}, phases(got))
	d.Update(at(500))
	d.Update(at(900))
	d.Dispatch(ptr(events.End, 1, 11, 10, 950), ls)
	assert.Equal(t, []Phases{Began, Activated, Activated, Ended}, phases(got))
	assert.Equal(t, 1, got[1].TickCount)
	assert.Equal(t, 2, got[2].TickCount)
	assert.Equal(t, 2, got[3].TickCount)
	assert.Empty(t, d.Tracking(1))
}

func TestPressShortAndMoved(t *testing.T) {
	var got []Gesture
	l := NewListener(newBox(0, 0, 100, 100))
	l.AddPress(events.PointerMask, func(g *Gesture) { got = append(got, *g) })
	d := &Dispatcher{}
	ls := []*Listener{l}

	d.Dispatch(ptr(events.Begin, 1, 10, 10, 0), ls)
	d.Dispatch(ptr(events.End, 1, 10, 10, 100), ls)
	assert.Equal(t, []Phases{Began, Ended}, phases(got))
	assert.Equal(t, 0, got[1].TickCount)

	got = nil
	d.Dispatch(ptr(events.Begin, 2, 10, 10, 200), ls)
	d.Dispatch(ptr(events.Move, 2, 10, 30, 210), ls)
	d.Dispatch(ptr(events.End, 2, 10, 30, 220), ls)
	assert.Equal(t, []Phases{Began, Cancelled}, phases(got))

	// outside of the target
	got = nil
	assert.False(t, d.Dispatch(ptr(events.Begin, 3, 150, 10, 300), ls))
	assert.Empty(t, got)
}

func TestSwipeThreshold(t *testing.T) {
	var got []Gesture
	l := NewListener(newBox(0, 0, 100, 100))
	l.AddSwipe(events.PointerMask, func(g *Gesture) { got = append(got, *g) })
	d := &Dispatcher{}
	ls := []*Listener{l}

	assert.False(t, d.Dispatch(ptr(events.Begin, 1, 50, 50, 0), ls))
	assert.False(t, d.Dispatch(ptr(events.Move, 1, 50, 53, 10), ls))
	assert.Empty(t, got)
	assert.True(t, d.Dispatch(ptr(events.Move, 1, 50, 57, 20), ls))
	assert.True(t, d.Dispatch(ptr(events.Move, 1, 50, 60, 30), ls))
	assert.True(t, d.Dispatch(ptr(events.End, 1, 50, 60, 40), ls))
	assert.Equal(t, []Phases{Began, Activated, Ended}, phases(got))
	assert.Equal(t, math32.Vec2(0, 7), got[0].Delta)
	assert.Equal(t, math32.Vec2(0, 3), got[1].Delta)
	assert.Equal(t, math32.Vec2(50, 60), got[2].Location)
}

func TestSwipeAxisLock(t *testing.T) {
	var got []Gesture
	l := NewListener(newBox(0, 0, 100, 100))
	sw := l.AddSwipe(events.PointerMask, func(g *Gesture) { got = append(got, *g) })
	sw.Locked = true
	sw.Axis = math32.Y
	d := &Dispatcher{}
	ls := []*Listener{l}

	d.Dispatch(ptr(events.Begin, 1, 50, 50, 0), ls)
	d.Dispatch(ptr(events.Move, 1, 60, 52, 10), ls)
	d.Dispatch(ptr(events.Move, 1, 60, 80, 20), ls)
	d.Dispatch(ptr(events.End, 1, 60, 80, 30), ls)
	assert.Empty(t, got)

	// mostly vertical
	d.Dispatch(ptr(events.Begin, 2, 50, 50, 100), ls)
	d.Dispatch(ptr(events.Move, 2, 53, 60, 110), ls)
	d.Dispatch(ptr(events.End, 2, 53, 60, 120), ls)
	assert.Equal(t, []Phases{Began, Ended}, phases(got))
}

func TestSwipeVelocity(t *testing.T) {
	var end Gesture
	l := NewListener(newBox(0, 0, 1000, 1000))
	l.AddSwipe(events.PointerMask, func(g *Gesture) {
		if g.Phase == Ended {
			end = *g
		}
	})
	d := &Dispatcher{}
	ls := []*Listener{l}

	d.Dispatch(ptr(events.Begin, 1, 500, 600, 0), ls)
	for i := 1; i <= 10; i++ {
		d.Dispatch(ptr(events.Move, 1, 500, 600-30*float32(i), 10*i), ls)
	}
	d.Dispatch(ptr(events.End, 1, 500, 300, 100), ls)
	tolassert.EqualTol(t, -3000, end.Velocity.Y, 1)
	tolassert.EqualTol(t, 0, end.Velocity.X, 1e-3)
}

func TestTapCount(t *testing.T) {
	var got []Gesture
	l := NewListener(newBox(0, 0, 100, 100))
	tp := l.AddTap(events.PointerMask, func(g *Gesture) { got = append(got, *g) })
	tp.MaxCount = 2
	d := &Dispatcher{}
	ls := []*Listener{l}

	d.Dispatch(ptr(events.Begin, 1, 10, 10, 0), ls)
	d.Dispatch(ptr(events.End, 1, 10, 10, 50), ls)
	d.Dispatch(ptr(events.Begin, 1, 12, 10, 200), ls)
	d.Dispatch(ptr(events.End, 1, 12, 10, 250), ls)
	d.Dispatch(ptr(events.Begin, 1, 12, 10, 400), ls)
	d.Dispatch(ptr(events.End, 1, 12, 10, 450), ls)
	assert.Equal(t, []Phases{Activated, Activated, Activated}, phases(got))
	assert.Equal(t, []int{1, 2, 1}, []int{got[0].Count, got[1].Count, got[2].Count})

	got = nil
	d.Dispatch(ptr(events.Begin, 1, 10, 10, 2000), ls)
	d.Dispatch(ptr(events.End, 1, 10, 10, 2500), ls)
	assert.Equal(t, []Phases{Cancelled}, phases(got))
}

func TestExclusivityCapturesChild(t *testing.T) {
	var child, parent []Gesture
	childL := NewListener(newBox(0, 0, 50, 50))
	childL.AddTap(events.PointerMask, func(g *Gesture) { child = append(child, *g) })
	sp := &spy{}
	childL.Add(sp)

	parentL := NewListener(newBox(0, 0, 200, 200))
	sw := parentL.AddSwipe(events.PointerMask, func(g *Gesture) { parent = append(parent, *g) })
	sw.Exclusive = true

	d := &Dispatcher{}
	ls := []*Listener{childL, parentL}
	d.Dispatch(ptr(events.Begin, 7, 10, 10, 0), ls)
	assert.Equal(t, []*Listener{childL, parentL}, d.Tracking(7))
	for i := 1; i <= 5; i++ {
		d.Dispatch(ptr(events.Move, 7, 10, 10+4*float32(i), 10*i), ls)
	}
	d.Dispatch(ptr(events.End, 7, 10, 30, 60), ls)

	assert.Equal(t, []Phases{Cancelled}, phases(child))
	assert.Equal(t, []events.Types{events.Begin, events.Move, events.Move}, sp.seen)
	assert.Equal(t, []Phases{Began, Activated, Activated, Activated, Ended}, phases(parent))
	assert.Empty(t, d.Tracking(7))
}

func TestSwallow(t *testing.T) {
	var front, back int
	fl := NewListener(newBox(0, 0, 100, 100))
	fl.AddPress(events.PointerMask, func(g *Gesture) { front++ })
	fl.SwallowMask = events.Mask(events.Begin)
	bl := NewListener(newBox(0, 0, 100, 100))
	bl.AddPress(events.PointerMask, func(g *Gesture) { back++ })

	d := &Dispatcher{}
	ls := []*Listener{fl, bl}
	d.Dispatch(ptr(events.Begin, 1, 10, 10, 0), ls)
	d.Dispatch(ptr(events.End, 1, 10, 10, 10), ls)
	assert.Equal(t, 2, front)
	assert.Equal(t, 0, back)

	fl.Enabled = false
	d.Dispatch(ptr(events.Begin, 1, 10, 10, 20), ls)
	assert.Equal(t, 2, front)
	assert.Equal(t, 1, back)
}

func TestListenerFilters(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := mocks.NewMockTarget(ctrl)
	m.EXPECT().IsVisibleInTree().Return(true).AnyTimes()
	m.EXPECT().EffectiveOpacity().Return(float32(0.2)).AnyTimes()

	l := NewListener(m)
	l.OpacityFilter = 0.5
	ev := ptr(events.Begin, 1, 5, 5, 0)
	// rejected by opacity before hit testing
	assert.False(t, l.ShouldProcessEvent(ev))

	l.OpacityFilter = 0.1
	l.TouchPadding = 4
	m.EXPECT().IsTouched(math32.Vec2(5, 5), float32(4)).Return(true)
	assert.True(t, l.ShouldProcessEvent(ev))

	l.EventFilter = func(ev *events.Event, def func(*events.Event) bool) bool {
		return ev.Pos.X < 3
	}
	assert.False(t, l.ShouldProcessEvent(ev))

	// not hit tested
	assert.True(t, l.ShouldProcessEvent(ptr(events.Move, 1, 500, 500, 0)))
	l.EventMask = events.Mask(events.Begin)
	assert.False(t, l.ShouldProcessEvent(ptr(events.Move, 1, 500, 500, 0)))
	l.Running = false
	assert.False(t, l.IsActive())
}

func TestListenerHandleAll(t *testing.T) {
	first := &spy{handles: true}
	second := &spy{}
	l := NewListener(newBox(0, 0, 100, 100))
	l.Recognizers = []Recognizer{first, second}
	assert.True(t, l.Handle(ptr(events.Begin, 1, 5, 5, 0)))
	assert.Equal(t, []events.Types{events.Begin}, second.seen, "a handled event still reaches the next recognizer")
	assert.True(t, l.Tracks(1))

	first.handles = false
	assert.False(t, l.Handle(ptr(events.End, 1, 5, 5, 10)))
	assert.Equal(t, []events.Types{events.Begin, events.End}, first.seen)
	assert.False(t, l.Tracks(1))
}

func TestHoverAndBroadcast(t *testing.T) {
	b := newBox(0, 0, 100, 100)
	l := NewListener(b)
	var enter []bool
	l.OnPointerEnter = func(in bool) { enter = append(enter, in) }
	var keys []events.Types
	l.OnKey(func(ev *events.Event) { keys = append(keys, ev.Type) })
	var focus []bool
	l.OnFocus(func(f bool) { focus = append(focus, f) })

	d := &Dispatcher{}
	ls := []*Listener{l}
	hover := func(x float32) {
		d.Dispatch(&events.Event{Type: events.Hover, Pos: math32.Vec2(x, 10)}, ls)
	}
	hover(10)
	hover(20)
	hover(200)
	assert.Equal(t, []bool{true, false}, enter)

	d.Dispatch(&events.Event{Type: events.KeyDown}, ls)
	d.Dispatch(&events.Event{Type: events.KeyUp}, ls)
	d.Dispatch(events.NewValue(events.Focus, false, t0), ls)
	assert.Equal(t, []events.Types{events.KeyDown, events.KeyUp}, keys)
	assert.Equal(t, []bool{false}, focus)
}

func TestWheel(t *testing.T) {
	var amount math32.Vector2
	l := NewListener(newBox(0, 0, 100, 100))
	l.AddWheel(func(g *Gesture) { amount = g.Amount })
	d := &Dispatcher{}
	assert.True(t, d.Dispatch(events.NewWheel(math32.Vec2(10, 10), math32.Vec2(120, 0), t0), []*Listener{l}))
	assert.Equal(t, math32.Vec2(120, 0), amount)
	assert.False(t, d.Dispatch(events.NewWheel(math32.Vec2(500, 10), math32.Vec2(120, 0), t0), []*Listener{l}))
}
