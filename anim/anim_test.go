// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anim

import (
	"testing"

	"cogentcore.org/scroll/base/tolassert"
	"github.com/stretchr/testify/assert"
)

func run(a Action, dt float32, n int) {
	a.Start(nil)
	for i := 0; i < n && !a.IsDone(); i++ {
		a.Step(dt)
	}
}

func TestTween(t *testing.T) {
	var v float32
	tw := NewTween(1, 10, 20, func(x float32) { v = x })
	tw.Start(nil)
	assert.Equal(t, float32(0), tw.Step(0.25))
	tolassert.EqualTol(t, 12.5, v, 1e-4)
	left := tw.Step(1)
	assert.True(t, tw.IsDone())
	tolassert.EqualTol(t, 0.25, left, 1e-4)
	assert.Equal(t, float32(20), v)
}

func TestTweenTo(t *testing.T) {
	cur := float32(4)
	tw := NewTweenTo(0.5, func() float32 { return cur }, 0, func(x float32) { cur = x })
	run(tw, 0.1, 100)
	assert.Equal(t, float32(4), tw.From())
	assert.Equal(t, float32(0), cur)
}

func TestSequence(t *testing.T) {
	var log []string
	var v float32
	sq := NewSequence(
		func() { log = append(log, "a") },
		0.5,
		NewTween(0.5, 0, 1, func(x float32) { v = x }),
		func() { log = append(log, "b") },
	)
	assert.Equal(t, float32(1), sq.Duration())
	sq.Start(nil)
	sq.Step(0)
	assert.Equal(t, []string{"a"}, log)
	sq.Step(0.6)
	tolassert.EqualTol(t, 0.2, v, 1e-4)
	assert.False(t, sq.IsDone())
	left := sq.Step(0.5)
	assert.True(t, sq.IsDone())
	assert.Equal(t, []string{"a", "b"}, log)
	assert.Equal(t, float32(1), v)
	tolassert.EqualTol(t, 0.1, left, 1e-4)
}

func TestSequenceStopInsideCall(t *testing.T) {
	var sq *Sequence
	called := false
	sq = NewSequence(func() { sq.Stop() }, func() { called = true })
	run(sq, 0.1, 10)
	assert.True(t, sq.IsDone())
	assert.False(t, called)
}

func TestSpawn(t *testing.T) {
	var a, b float32
	sp := NewSpawn(
		NewTween(0.2, 0, 1, func(x float32) { a = x }),
		NewTween(0.4, 0, 1, func(x float32) { b = x }),
	)
	assert.Equal(t, float32(0.4), sp.Duration())
	sp.Start(nil)
	sp.Step(0.2)
	assert.Equal(t, float32(1), a)
	tolassert.EqualTol(t, 0.5, b, 1e-4)
	sp.Step(0.3)
	assert.True(t, sp.IsDone())
	assert.Equal(t, float32(1), b)
}

func TestCurves(t *testing.T) {
	for _, c := range []Curve{Linear, Standard, Accelerate, Decelerate, Emphasized} {
		assert.Equal(t, float32(0), c(0))
		assert.Equal(t, float32(1), c(1))
		prev := float32(0)
		for i := 1; i <= 20; i++ {
			v := c(float32(i) / 20)
			assert.GreaterOrEqual(t, v+1e-5, prev)
			prev = v
		}
	}
	// accelerate starts slow, decelerate starts fast
	assert.Less(t, Accelerate(0.3), float32(0.3))
	assert.Greater(t, Decelerate(0.3), float32(0.3))
	tolassert.EqualTol(t, 0.5, CubicBezier(0.25, 0.25, 0.75, 0.75)(0.5), 1e-3)
}

func TestEase(t *testing.T) {
	var v float32
	ea := NewEase(Accelerate, NewTween(1, 0, 100, func(x float32) { v = x }))
	ea.Start(nil)
	ea.Step(0.5)
	tolassert.EqualTol(t, 100*Accelerate(0.5), v, 1e-3)
	ea.Step(0.5)
	assert.True(t, ea.IsDone())
	assert.Equal(t, float32(100), v)
}

func TestRunnerTags(t *testing.T) {
	r := &Runner{}
	var v1, v2 float32
	a1 := r.Run(nil, WithTag(NewTween(1, 0, 1, func(x float32) { v1 = x }), 7))
	r.Step(0.5)
	a2 := r.Run(nil, WithTag(NewTween(1, 0, 1, func(x float32) { v2 = x }), 7))
	assert.True(t, a1.IsDone())
	assert.Equal(t, a2, r.ByTag(7))
	assert.Equal(t, 1, r.Len())
	r.Step(0.5)
	tolassert.EqualTol(t, 0.5, v1, 1e-4)
	tolassert.EqualTol(t, 0.5, v2, 1e-4)

	r.Run(nil, NewDelay(1))
	r.Run(nil, NewDelay(1))
	assert.Equal(t, 3, r.Len())
	assert.True(t, r.StopByTag(7))
	assert.False(t, r.IsRunning(7))
	r.StopAll()
	assert.Equal(t, 0, r.Len())
}

func TestRunnerStartDuringStep(t *testing.T) {
	r := &Runner{}
	ran := 0
	r.Run(nil, NewCall(func() {
		r.Run(nil, NewCall(func() { ran++ }))
	}))
	r.Step(0.1)
	assert.Equal(t, 0, ran)
	assert.Equal(t, 1, r.Len())
	r.Step(0.1)
	assert.Equal(t, 1, ran)
	assert.Equal(t, 0, r.Len())
}
