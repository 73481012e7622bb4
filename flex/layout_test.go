// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flex

import (
	"testing"
	"time"

	"cogentcore.org/scroll/anim"
	"cogentcore.org/scroll/base/tolassert"
	"cogentcore.org/scroll/math32"
	"cogentcore.org/scroll/scene"
	"cogentcore.org/scroll/scroll"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const frame = 5 * time.Millisecond

type fixture struct {
	t  *testing.T
	sc *scene.Scene
	l  *Layout
	b  *scroll.Base
}

// newFixture returns a running layout of 400x800 with a flexible range
// of 56 to 200 over a base node with content of the given length.
func newFixture(t *testing.T, content float32) *fixture {
	size := math32.Vec2(400, 800)
	root := scene.New[*scene.NodeBase]()
	root.SetContentSize(size)
	l := NewLayout(size)
	l.Name = "flex"
	root.AddChild(l)
	l.SetFlexibleMinHeight(56)
	l.SetFlexibleMaxHeight(200)
	b := scroll.NewBase(scroll.Vertical, size)
	c := scroll.NewController(b)
	if content > 0 {
		c.AddItem(content, nil)
	}
	l.SetBaseNode(b)
	f := &fixture{t: t, sc: scene.NewScene(root), l: l, b: b}
	f.step(1)
	return f
}

func (f *fixture) step(n int) {
	for range n {
		f.sc.Update(frame)
		lv := f.l.FlexibleLevel()
		assert.GreaterOrEqual(f.t, lv, float32(0))
		assert.LessOrEqual(f.t, lv, float32(1))
	}
}

func (f *fixture) stepFor(d time.Duration) {
	f.step(int(d / frame))
}

// endScroll finishes a scroll that moved from the given position.
func (f *fixture) endScroll(from float32) {
	f.l.scrolling = true
	f.l.startPos = from
	f.l.onScroll(0, true)
}

func TestLayoutGeometry(t *testing.T) {
	f := newFixture(t, 2000)
	b := f.b
	assert.Equal(t, float32(200), b.Padding().Top)
	assert.Equal(t, float32(0), b.ScrollPosition())
	assert.Equal(t, float32(1400), b.ScrollMaxPosition())
	assert.Equal(t, float32(200), f.l.FlexibleHeight())

	head := scene.New[*scene.NodeBase]()
	f.l.SetFlexibleNode(head)
	f.l.SetFlexibleLevel(0.5)
	f.step(1)
	assert.Equal(t, float32(128), f.l.BaseNodeOffset())
	assert.Equal(t, math32.Vec2(400, 128), head.ContentSize)
	assert.Greater(t, head.ZOrder, b.ZOrder)

	f.l.SetBaseNodePadding(16)
	assert.Equal(t, float32(216), b.Padding().Top)
}

func TestLevelFollowsScroll(t *testing.T) {
	f := newFixture(t, 2000)
	var levels []float32
	f.l.OnFlexibleLevel(func(level float32) { levels = append(levels, level) })

	f.b.OnSwipeBegin(5)
	assert.Equal(t, float32(1), f.l.FlexibleLevel(), "below the safe trigger")
	f.b.OnSwipe(10)
	tolassert.EqualTol(t, (190-56)/144.0, f.l.FlexibleLevel(), 1e-6)
	f.b.OnSwipe(500)
	assert.Equal(t, float32(0), f.l.FlexibleLevel())
	f.b.OnSwipe(-30)
	tolassert.EqualTol(t, 30/144.0, f.l.FlexibleLevel(), 1e-6)
	assert.Len(t, levels, 3)

	// far from the start with a low level: completes collapsed
	f.b.OnSwipeEnd(0)
	assert.NotNil(t, f.l.LevelAnimation())
	f.stepFor(100 * time.Millisecond)
	assert.Equal(t, float32(0), f.l.FlexibleLevel())
}

func TestSafeTrigger(t *testing.T) {
	f := newFixture(t, 2000)
	f.l.SetSafeTrigger(true)
	f.b.OnSwipeBegin(10)
	f.b.OnSwipe(100)
	assert.Equal(t, float32(1), f.l.FlexibleLevel())
	f.b.OnSwipe(40)
	tolassert.EqualTol(t, (200-40-56)/144.0, f.l.FlexibleLevel(), 1e-6)
}

func TestAutoCompleteUp(t *testing.T) {
	f := newFixture(t, 2000)
	f.b.SetScrollPosition(1000)
	f.l.SetFlexibleLevel(0.7)
	f.step(1)
	f.endScroll(1300)

	a := f.l.LevelAnimation()
	require.NotNil(t, a)
	tolassert.EqualTol(t, 0.09, a.Duration(), 1e-5)
	ea, ok := a.(*anim.Ease)
	require.True(t, ok)
	assert.Equal(t, anim.Accelerate(0.3), ea.Curve(0.3))

	f.stepFor(100 * time.Millisecond)
	assert.Equal(t, float32(1), f.l.FlexibleLevel())
	assert.Nil(t, f.l.LevelAnimation())
}

func TestAutoCompleteDown(t *testing.T) {
	f := newFixture(t, 2000)
	f.b.SetScrollPosition(1000)
	f.l.SetFlexibleLevel(0.4)
	f.endScroll(700)

	a := f.l.LevelAnimation()
	require.NotNil(t, a)
	tolassert.EqualTol(t, 0.12, a.Duration(), 1e-5)
	assert.Equal(t, anim.Decelerate(0.3), a.(*anim.Ease).Curve(0.3))
	f.stepFor(150 * time.Millisecond)
	assert.Equal(t, float32(0), f.l.FlexibleLevel())
}

func TestAutoCompleteShortScroll(t *testing.T) {
	f := newFixture(t, 2000)
	f.b.SetScrollPosition(1000)
	f.l.SetFlexibleLevel(0.3)
	f.endScroll(950)
	f.stepFor(150 * time.Millisecond)
	assert.Equal(t, float32(1), f.l.FlexibleLevel())

	f.l.SetFlexibleAutoComplete(false)
	f.l.SetFlexibleLevel(0.3)
	f.endScroll(950)
	assert.Nil(t, f.l.LevelAnimation())
	assert.Equal(t, float32(0.3), f.l.FlexibleLevel())
}

func TestContentFits(t *testing.T) {
	f := newFixture(t, 300)
	f.l.SetFlexibleLevel(0.2)
	f.b.OnSwipeBegin(20)
	assert.Equal(t, float32(1), f.l.FlexibleLevel())

	g := newFixture(t, 0)
	g.l.SetFlexibleLevel(0.2)
	g.step(1)
	assert.Equal(t, float32(1), g.l.FlexibleLevel(), "unknown length shows the full level")
}

func TestLevelClamp(t *testing.T) {
	f := newFixture(t, 5000)
	f.b.OnSwipeBegin(1)
	for i := range 400 {
		f.b.OnSwipe(60 * math32.Sin(float32(i)*0.05))
		f.step(1)
	}
	f.b.OnSwipeEnd(-6000)
	f.stepFor(3 * time.Second)
	assert.Equal(t, scroll.NoMovement, f.b.Movement)
	f.l.SetFlexibleLevel(4)
	assert.Equal(t, float32(1), f.l.FlexibleLevel())
	f.l.SetFlexibleLevelAnimated(-2, 0.1)
	f.stepFor(200 * time.Millisecond)
	assert.Equal(t, float32(0), f.l.FlexibleLevel())
}

func TestDecoration(t *testing.T) {
	f := newFixture(t, 2000)
	f.l.SetStatusBarDecoration(24)
	assert.Equal(t, float32(224), f.l.FlexibleHeight())
	var vis []bool
	f.l.OnDecorationVisible(func(v bool) { vis = append(vis, v) })

	f.l.SetFlexibleLevel(0.5)
	assert.Empty(t, vis, "untracked decoration stays visible")
	f.l.SetViewDecorationTracked(true)
	assert.False(t, f.l.IsDecorationVisible())
	f.l.SetFlexibleLevel(1)
	assert.True(t, f.l.IsDecorationVisible())
	assert.Equal(t, []bool{false, true}, vis)
}

func TestExpandFlexibleNode(t *testing.T) {
	f := newFixture(t, 2000)
	ov := scroll.NewOverscroll(f.b)
	head := scene.New[*scene.NodeBase]()
	f.l.SetFlexibleNode(head)

	f.l.ExpandFlexibleNode(40, 0.1)
	f.stepFor(150 * time.Millisecond)
	assert.Equal(t, float32(40), f.l.ExtraSpace())
	assert.Equal(t, float32(240), head.ContentSize.Y)
	assert.Equal(t, float32(240), ov.FrontOffset())

	f.b.OnSwipeBegin(4)
	assert.NotNil(t, f.l.ActionByTag(TagExpand), "scrolling clears the extra space")
	f.b.OnSwipeEnd(0)
	f.stepFor(300 * time.Millisecond)
	assert.Equal(t, float32(0), f.l.ExtraSpace())
	assert.Equal(t, float32(200), head.ContentSize.Y)

	f.l.ExpandFlexibleNode(10, 0)
	assert.Equal(t, float32(10), f.l.ExtraSpace())
	f.l.ClearFlexibleExpand(0)
	assert.Equal(t, float32(0), f.l.ExtraSpace())
}

func TestScrollClearsRunningExpand(t *testing.T) {
	f := newFixture(t, 2000)
	f.l.ExpandFlexibleNode(100, 1)
	f.stepFor(100 * time.Millisecond)
	grown := f.l.ExtraSpace()
	assert.Greater(t, grown, float32(0))
	assert.Less(t, grown, float32(100))

	f.b.OnSwipeBegin(4)
	assert.True(t, f.l.isClearing())
	for range 60 {
		f.b.OnSwipe(10)
		f.step(1)
		assert.LessOrEqual(t, f.l.ExtraSpace(), grown)
	}
	assert.Equal(t, float32(0), f.l.ExtraSpace())
	assert.Nil(t, f.l.ActionByTag(TagExpand))
	f.b.OnSwipeEnd(0)
}
