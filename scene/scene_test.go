// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"cogentcore.org/scroll/anim"
	"cogentcore.org/scroll/base/tolassert"
	"cogentcore.org/scroll/events"
	"cogentcore.org/scroll/input"
	"cogentcore.org/scroll/math32"
	"github.com/stretchr/testify/assert"
)

type testNode struct {
	NodeBase
	Value   float64
	log     *[]string
	updates int
	sized   int
}

func (tn *testNode) OnEnter(sc *Scene) {
	if tn.log != nil {
		*tn.log = append(*tn.log, "enter "+tn.Name)
	}
}

func (tn *testNode) OnExit() {
	if tn.log != nil {
		*tn.log = append(*tn.log, "exit "+tn.Name)
	}
}

func (tn *testNode) Update(dt float32)   { tn.updates++ }
func (tn *testNode) OnContentSizeDirty() { tn.sized++ }

func (tn *testNode) Save() any { return map[string]any{"value": tn.Value} }

func (tn *testNode) Load(v any) {
	if m, ok := v.(map[string]any); ok {
		if f, ok := m["value"].(float64); ok {
			tn.Value = f
		}
	}
}

func newTestNode(name string, log *[]string) *testNode {
	tn := New[*testNode]()
	tn.Name = name
	tn.log = log
	return tn
}

func TestTree(t *testing.T) {
	var log []string
	root := newTestNode("root", &log)
	a := newTestNode("a", &log)
	b := newTestNode("b", &log)
	root.AddChild(a)
	a.AddChild(b)

	assert.Equal(t, "/root/a/b", b.Path())
	assert.Equal(t, "a/b", b.PathFrom(root))
	assert.Equal(t, Node(b), root.FindPath("a/b"))
	assert.Nil(t, root.FindPath("a/c"))

	sc := NewScene(root)
	assert.Equal(t, []string{"enter root", "enter a", "enter b"}, log)
	assert.True(t, b.IsRunning())
	assert.Equal(t, sc, b.Scene())

	log = nil
	a.RemoveFromParent()
	assert.Equal(t, []string{"exit b", "exit a"}, log)
	assert.False(t, b.IsRunning())
	assert.Nil(t, a.Parent)
	assert.Empty(t, root.Children)

	log = nil
	root.AddChild(a)
	assert.Equal(t, []string{"enter a", "enter b"}, log)
}

func TestTransform(t *testing.T) {
	root := newTestNode("root", nil)
	kid := newTestNode("kid", nil)
	root.AddChild(kid)
	root.SetPosition(math32.Vec2(100, 50))
	kid.SetContentSize(math32.Vec2(20, 10))
	kid.SetAnchor(math32.Vec2(0.5, 0.5))
	kid.SetPosition(math32.Vec2(10, 10))

	w := kid.ConvertToWorld(math32.Vec2(0, 0))
	tolassert.EqualTol(t, 100, w.X, 1e-4)
	tolassert.EqualTol(t, 55, w.Y, 1e-4)

	assert.True(t, kid.IsTouched(math32.Vec2(105, 58), 0))
	assert.False(t, kid.IsTouched(math32.Vec2(125, 58), 0))
	assert.True(t, kid.IsTouched(math32.Vec2(122, 58), 3))

	kid.SetScale(math32.Vec2(2, 2))
	assert.True(t, kid.IsTouched(math32.Vec2(125, 58), 0))
	bb := kid.BoundingBox()
	tolassert.EqualTol(t, -10, bb.Min.X, 1e-4)
	tolassert.EqualTol(t, 30, bb.Max.X, 1e-4)
}

func TestOpacity(t *testing.T) {
	root := newTestNode("root", nil)
	kid := newTestNode("kid", nil)
	root.AddChild(kid)
	root.SetOpacity(0.5)
	kid.SetOpacity(0.5)
	tolassert.EqualTol(t, 0.25, kid.EffectiveOpacity(), 1e-6)
	kid.CascadeOpacity = false
	tolassert.EqualTol(t, 0.5, kid.EffectiveOpacity(), 1e-6)
	kid.SetOpacity(3)
	assert.Equal(t, float32(1), kid.Opacity)

	assert.True(t, kid.IsVisibleInTree())
	root.SetVisible(false)
	assert.False(t, kid.IsVisibleInTree())
}

func TestSortedChildren(t *testing.T) {
	root := newTestNode("root", nil)
	a, b, c := newTestNode("a", nil), newTestNode("b", nil), newTestNode("c", nil)
	root.AddChild(a)
	root.AddChild(b)
	root.AddChild(c)
	a.SetZOrder(1)
	var names []string
	root.WalkDown(func(n Node) bool {
		names = append(names, n.AsNode().Name)
		return Continue
	})
	assert.Equal(t, []string{"root", "b", "c", "a"}, names)

	names = nil
	root.WalkDownPost(func(n Node) bool {
		names = append(names, n.AsNode().Name)
		return Continue
	})
	assert.Equal(t, []string{"a", "c", "b", "root"}, names)
}

func TestClone(t *testing.T) {
	tn := newTestNode("tn", nil)
	tn.SetPosition(math32.Vec2(3, 4))
	tn.Value = 0.5
	cl := tn.Clone().(*testNode)
	assert.Equal(t, "tn", cl.Name)
	assert.Equal(t, tn.Position, cl.Position)
	assert.Equal(t, 0.5, cl.Value)
	assert.Nil(t, cl.Parent)
}

func TestUpdate(t *testing.T) {
	root := newTestNode("root", nil)
	kid := newTestNode("kid", nil)
	root.AddChild(kid)
	sc := NewScene(root)

	var observed int
	kid.OnContentSizeChanged(func(n Node) { observed++ })
	kid.SetContentSize(math32.Vec2(10, 10))
	assert.True(t, kid.IsContentSizeDirty())

	sc.Update(5 * time.Millisecond)
	assert.Equal(t, 1, kid.sized)
	assert.Equal(t, 1, observed)
	assert.Equal(t, 1, kid.updates)
	assert.False(t, kid.IsContentSizeDirty())
	assert.False(t, kid.IsTransformDirty())

	root.SetPosition(math32.Vec2(1, 1))
	sc.Update(5 * time.Millisecond)
	assert.Equal(t, 1, kid.sized)
	assert.Equal(t, 2, kid.updates)

	start := sc.Now
	sc.Update(time.Second)
	assert.Equal(t, sc.MaxFrameDelta, sc.Now.Sub(start))
}

func TestActionsByTag(t *testing.T) {
	root := newTestNode("root", nil)
	sc := NewScene(root)
	var a, b float32
	first := root.RunAction(anim.WithTag(anim.NewTween(1, 0, 1, func(v float32) { a = v }), 7))
	root.RunAction(anim.WithTag(anim.NewTween(1, 0, 2, func(v float32) { b = v }), 7))
	assert.True(t, first.IsDone())
	assert.Equal(t, 1, root.NumActions())

	sc.MaxFrameDelta = 0
	sc.Update(500 * time.Millisecond)
	assert.Equal(t, float32(0), a)
	tolassert.EqualTol(t, 1, b, 1e-4)

	assert.True(t, root.StopActionByTag(7))
	sc.Update(time.Millisecond)
	assert.Equal(t, 0, root.NumActions())
	assert.Nil(t, root.ActionByTag(7))
}

func TestListenersOrder(t *testing.T) {
	root := newTestNode("root", nil)
	kid := newTestNode("kid", nil)
	root.AddChild(kid)
	sc := NewScene(root)
	lr := root.AddListener()
	low := kid.AddListener()
	high := kid.AddListener()
	high.Priority = 10
	assert.Equal(t, []*input.Listener{high, low, lr}, sc.Listeners())
	assert.True(t, low.Running)

	kid.RemoveFromParent()
	assert.False(t, low.Running)
	assert.Equal(t, []*input.Listener{lr}, sc.Listeners())
}

func TestDispatchThroughScene(t *testing.T) {
	root := newTestNode("root", nil)
	root.SetContentSize(math32.Vec2(100, 100))
	sc := NewScene(root)
	l := root.AddListener()
	var phases []input.Phases
	l.AddPress(events.PointerMask, func(g *input.Gesture) { phases = append(phases, g.Phase) })

	sc.Send(events.NewPointer(events.Begin, 1, events.Touch, math32.Vec2(50, 50), time.Time{}))
	sc.Update(5 * time.Millisecond)
	sc.Send(events.NewPointer(events.End, 1, events.Touch, math32.Vec2(50, 50), time.Time{}))
	sc.Update(5 * time.Millisecond)
	assert.Equal(t, []input.Phases{input.Began, input.Ended}, phases)
}

func TestPerform(t *testing.T) {
	sc := NewScene(newTestNode("root", nil))
	defer sc.Close()
	errBoom := errors.New("boom")
	var got error
	done := false
	sc.Perform(func(ctx context.Context) error { return errBoom }, func(err error) {
		got = err
		done = true
	})
	deadline := time.Now().Add(5 * time.Second)
	for !done && time.Now().Before(deadline) {
		sc.Update(time.Millisecond)
		time.Sleep(time.Millisecond)
	}
	assert.True(t, done)
	assert.ErrorIs(t, got, errBoom)
	assert.Equal(t, 0, sc.PendingTasks())
}

func TestPerformCancelled(t *testing.T) {
	sc := NewScene(newTestNode("root", nil))
	started := make(chan struct{})
	called := false
	sc.Perform(func(ctx context.Context) error {
		close(started)
		<-ctx.Done()
		return ctx.Err()
	}, func(err error) { called = true })
	<-started
	sc.Close()
	sc.Update(time.Millisecond)
	assert.False(t, called)
}

func TestPost(t *testing.T) {
	sc := NewScene(newTestNode("root", nil))
	var order []int
	posted := make(chan struct{})
	go func() {
		sc.Post(func() { order = append(order, 1) })
		sc.Post(func() { order = append(order, 2) })
		close(posted)
	}()
	<-posted
	assert.Empty(t, order, "posted functions wait for a frame")
	sc.Update(time.Millisecond)
	assert.Equal(t, []int{1, 2}, order)

	sc.Close()
	sc.Post(func() { order = append(order, 3) })
	sc.Update(time.Millisecond)
	assert.Equal(t, []int{1, 2}, order)
}

func TestState(t *testing.T) {
	root := newTestNode("root", nil)
	a := newTestNode("a", nil)
	b := newTestNode("b", nil)
	root.AddChild(a)
	a.AddChild(b)
	root.Value, a.Value, b.Value = 0.1, 0.25, 0.75

	state := SaveState(root)
	assert.Len(t, state, 3)

	var buf bytes.Buffer
	assert.NoError(t, WriteState(&buf, state))
	assert.Contains(t, buf.String(), "a/b:")

	root.Value, a.Value, b.Value = 0, 0, 0
	read, err := ReadState(&buf)
	assert.NoError(t, err)
	LoadState(root, read)
	assert.Equal(t, 0.1, root.Value)
	assert.Equal(t, 0.25, a.Value)
	assert.Equal(t, 0.75, b.Value)

	fname := filepath.Join(t.TempDir(), "state.yaml")
	assert.NoError(t, SaveStateFile(root, fname))
	b.Value = 0
	assert.NoError(t, OpenStateFile(root, fname))
	assert.Equal(t, 0.75, b.Value)

	empty, err := ReadState(&bytes.Buffer{})
	assert.NoError(t, err)
	assert.Empty(t, empty)
}
