// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anim

// Tween interpolates a value linearly from From to To over its
// duration, calling Func with the current value.
type Tween struct {
	Interval
	From, To float32
	Func     func(v float32)
}

// NewTween returns a new [Tween].
func NewTween(dur, from, to float32, f func(v float32)) *Tween {
	return &Tween{Interval: Interval{Dur: dur}, From: from, To: to, Func: f}
}

func (tw *Tween) Step(dt float32) float32 {
	return tw.step(dt, tw.Update)
}

func (tw *Tween) Update(u float32) {
	tw.Func(tw.From + (tw.To-tw.From)*u)
}

// TweenTo is a [Tween] whose starting value is read with Get
// when the action starts.
type TweenTo struct {
	Interval
	Get  func() float32
	To   float32
	Func func(v float32)
	from float32
}

// NewTweenTo returns a new [TweenTo].
func NewTweenTo(dur float32, get func() float32, to float32, f func(v float32)) *TweenTo {
	return &TweenTo{Interval: Interval{Dur: dur}, Get: get, To: to, Func: f}
}

func (tw *TweenTo) Start(target any) {
	tw.Interval.Start(target)
	tw.from = tw.Get()
}

// From returns the value read at start.
func (tw *TweenTo) From() float32 { return tw.from }

func (tw *TweenTo) Step(dt float32) float32 {
	return tw.step(dt, tw.Update)
}

func (tw *TweenTo) Update(u float32) {
	tw.Func(tw.from + (tw.To-tw.from)*u)
}

// Progress calls Func with its raw progress in [0, 1].
type Progress struct {
	Interval
	Func func(u float32)
}

// NewProgress returns a new [Progress].
func NewProgress(dur float32, f func(u float32)) *Progress {
	return &Progress{Interval: Interval{Dur: dur}, Func: f}
}

func (pr *Progress) Step(dt float32) float32 {
	return pr.step(dt, pr.Update)
}

func (pr *Progress) Update(u float32) {
	pr.Func(u)
}
