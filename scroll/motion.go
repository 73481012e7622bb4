// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scroll

import (
	"log/slog"

	"cogentcore.org/scroll/anim"
	"cogentcore.org/scroll/input"
	"cogentcore.org/scroll/kinetic"
	"cogentcore.org/scroll/math32"
	"cogentcore.org/scroll/settings"
)

func (b *Base) setMovement(m Movements) {
	if m == b.Movement {
		return
	}
	if settings.Debug.ScrollTrace {
		slog.Info("scroll: movement", "view", b.Name, "from", b.Movement, "to", m, "position", b.position)
	}
	b.Movement = m
}

// axisValue converts a scene vector into a change of position: the
// opposite of its projection on the axis, in view coordinates.
func (b *Base) axisValue(v math32.Vector2) float32 {
	return -b.WorldToNode().MulVector2AsVector(v).Dim(b.dim())
}

// moveTo moves the position while the view is moving, notifying the
// controller and the scroll callbacks.
func (b *Base) moveTo(p float32) {
	delta := p - b.position
	if delta == 0 {
		return
	}
	if b.Movement == Auto && b.Controller != nil {
		b.Controller.UpdateAnimationPadding(delta)
	}
	b.doSetScrollPosition(p)
	b.scrolled(delta, false)
}

// Input:

func (b *Base) onPress(g *input.Gesture) {
	switch g.Phase {
	case input.Began:
		b.pressed = true
		b.StopScrollAnimation()
	case input.Ended, input.Cancelled:
		b.pressed = false
	}
}

func (b *Base) onSwipe(g *input.Gesture) {
	switch g.Phase {
	case input.Began:
		b.OnSwipeBegin(b.axisValue(g.Delta))
	case input.Activated:
		b.OnSwipe(b.axisValue(g.Delta))
	case input.Ended:
		b.OnSwipeEnd(b.axisValue(g.Velocity))
	case input.Cancelled:
		b.OnSwipeEnd(0)
	}
}

func (b *Base) onWheel(g *input.Gesture) {
	b.OnWheel(g.Amount)
}

// OnSwipeBegin starts dragging the content by the given delta of the
// position, stopping any running animation.
func (b *Base) OnSwipeBegin(delta float32) {
	b.stopAnimation()
	b.setMovement(Manual)
	b.OnDelta(delta)
}

// OnSwipe drags the content by the given delta of the position.
func (b *Base) OnSwipe(delta float32) {
	if b.Movement != Manual {
		return
	}
	b.OnDelta(delta)
}

// OnSwipeEnd releases the content with the given velocity of the
// position, in units per second.
func (b *Base) OnSwipeEnd(v float32) {
	if b.Movement != Manual {
		return
	}
	b.fling(v)
}

// OnDelta moves the position by delta while dragging. Motion past a
// bound is damped by 1/(1 + overrun/OverrunDivisor) when bouncing,
// and stopped at the bound otherwise; in both cases the overscroll
// callbacks receive the motion past the bound.
func (b *Base) OnDelta(delta float32) {
	if delta == 0 {
		return
	}
	next := b.position + delta
	mn, mx, ok := b.bounds()
	if ok {
		if over := overrun(next, mn, mx); over != 0 {
			if b.Bounce {
				cur := overrun(b.position, mn, mx)
				if math32.Sign(delta) == math32.Sign(over) {
					excess := over
					if math32.Sign(cur) == math32.Sign(over) {
						excess -= cur
					}
					damped := kinetic.Damp(excess, cur, b.knobs().OverrunDivisor)
					next = next - excess + damped
					b.overscrolled(damped)
				}
			} else {
				clamped := math32.Clamp(next, mn, mx)
				b.overscrolled(next - clamped)
				next = clamped
			}
		}
	}
	b.moveTo(next)
}

// OnWheel applies one wheel step of the given amount, in abstract
// wheel units. The step moves the position by minus the amount along
// the axis (or across it if that is zero) times the wheel multiplier,
// stopped at the bounds.
func (b *Base) OnWheel(amount math32.Vector2) {
	d := b.dim()
	a := amount.Dim(d)
	if a == 0 {
		a = amount.Dim(math32.OtherDim(d))
	}
	if a == 0 {
		return
	}
	dragging := b.Movement == Manual
	if !dragging {
		b.StopScrollAnimation()
		b.setMovement(Manual)
	}
	next := b.position - a*b.knobs().WheelMultiplier
	if mn, mx, ok := b.bounds(); ok {
		clamped := math32.Clamp(next, mn, mx)
		b.overscrolled(next - clamped)
		next = clamped
	}
	b.moveTo(next)
	if dragging {
		return
	}
	b.setMovement(NoMovement)
	b.FixPosition()
	b.scrolled(0, true)
}

// Animation:

// run starts the given action as the scroll animation, entering the
// given movement.
func (b *Base) run(a anim.Action, m Movements) {
	if b.animation != nil {
		b.animation.Stop()
	}
	b.animation = b.RunAction(anim.WithTag(a, TagScroll))
	b.setMovement(m)
}

// play runs the given curve as the scroll animation, calling done
// when it ends.
func (b *Base) play(c kinetic.Curve, m Movements, done func()) {
	b.curve, b.curveU = c, 0
	pl := kinetic.Play(c, func(pos math32.Vector2, u float32) {
		b.curveU = u
		b.moveTo(pos.X)
	})
	b.run(anim.NewSequence(pl, done), m)
}

// stopAnimation stops the scroll animation without any callback.
func (b *Base) stopAnimation() {
	if b.animation != nil {
		b.animation.Stop()
		b.animation = nil
	}
	b.curve = nil
	b.adjustTarget = math32.NaN()
}

// StopScrollAnimation stops the running scroll animation, if any:
// the view comes to rest and the animation finished callbacks are called.
func (b *Base) StopScrollAnimation() {
	if b.animation == nil && !b.Movement.IsAnimated() {
		return
	}
	b.stopAnimation()
	b.finish(true)
}

// finish brings the view to rest.
func (b *Base) finish(animated bool) {
	b.animation = nil
	b.curve = nil
	b.adjustTarget = math32.NaN()
	b.setMovement(NoMovement)
	if b.Controller != nil {
		b.Controller.SetAnimationPadding(0)
	}
	b.FixPosition()
	b.scrolled(0, true)
	if animated {
		for _, f := range b.onAnimationFinished {
			f()
		}
	}
}

func (b *Base) finishAnimation() { b.finish(true) }

// fling releases the content with velocity v. The deceleration
// opposes v; the predicted flight length becomes the animation padding
// of the controller. A release past a bound bounces back, a flight
// that would cross a bound accelerates onto it and then bounces (or
// stops there without bounce), and any other flight decelerates to rest.
func (b *Base) fling(v float32) {
	s := b.knobs()
	v = kinetic.ClampVelocity(v, b.maxVelocity)
	da := kinetic.FloorAcceleration(s.DecelerationA)
	a := -math32.Sign(v) * da
	length := kinetic.FlightLength(v, a)
	if b.Controller != nil {
		b.Controller.SetAnimationPadding(length)
	}
	pos := b.position
	mn, mx, ok := b.bounds()
	if ok {
		if over := overrun(pos, mn, mx); over != 0 {
			b.OnOverscrollPerformed(kinetic.Damp(v, over, s.OverrunDivisor), pos, pos-over)
			return
		}
	}
	if v == 0 {
		b.finish(false)
		return
	}
	normal := math32.Vec2(math32.Sign(v), 0)
	target := pos + length
	if ok && (target < mn || target > mx) {
		bound := mx
		if target < mn {
			bound = mn
		}
		ac := kinetic.NewAcceleration(math32.Vec2(pos, 0), math32.Vec2(bound, 0), math32.Abs(v), -da)
		if ac == nil {
			b.hitBound(v, bound)
			return
		}
		b.play(ac, Auto, func() {
			b.hitBound(ac.VelocityAt(1)*normal.X, bound)
		})
		return
	}
	dc := kinetic.NewDeceleration(normal, math32.Vec2(pos, 0), math32.Abs(v), -da)
	if dc == nil {
		b.finish(false)
		return
	}
	b.play(dc, Auto, b.finishAnimation)
}

// hitBound handles a fling reaching the given bound with velocity v.
func (b *Base) hitBound(v, bound float32) {
	if b.Bounce {
		b.OnOverscrollPerformed(v, bound, bound)
		return
	}
	b.moveTo(bound)
	da := kinetic.FloorAcceleration(b.knobs().DecelerationA)
	b.overscrolled(kinetic.FlightLength(v, -math32.Sign(v)*da))
	b.finish(b.animation != nil)
}

// OnOverscrollPerformed bounces the position from pos back onto the
// given boundary, starting with velocity v (of the position). When a
// fling is accelerating onto the boundary its current velocity is used
// instead. The outward part decelerates at max(BounceMinA,
// |v|·BounceVelocityFactor) and the rebound at DecelerationA.
func (b *Base) OnOverscrollPerformed(v, pos, boundary float32) {
	if b.Movement == Auto {
		if _, ok := b.curve.(*kinetic.Acceleration); ok {
			v = kinetic.Velocity(b.curve, b.curveU).X
		}
	}
	wasAnimated := b.animation != nil
	b.stopAnimation()
	s := b.knobs()
	out := float32(1)
	switch {
	case pos < boundary:
		out = -1
	case pos > boundary:
		out = 1
	case v < 0:
		out = -1
	}
	a2 := max(s.BounceMinA, math32.Abs(v)*s.BounceVelocityFactor)
	path := kinetic.NewBounce(math32.Vec2(pos, 0), math32.Vec2(boundary, 0), math32.Vec2(out, 0), v*out, s.DecelerationA, a2)
	if path == nil {
		b.moveTo(boundary)
		b.finish(wasAnimated)
		return
	}
	b.moveTo(pos)
	b.play(path, Overscrolling, b.finishAnimation)
}

// Adjustments:

// ScrollTo moves the position to p, clamped to the bounds. When
// animated, the duration of the motion is interpolated within the
// auto complete duration range by the distance relative to the viewport.
func (b *Base) ScrollTo(p float32, animated bool) {
	if mn, mx, ok := b.bounds(); ok {
		p = math32.Clamp(p, mn, mx)
	}
	wasAnimated := b.animation != nil
	b.stopAnimation()
	dist := math32.Abs(p - b.position)
	if !animated || dist < kinetic.Epsilon || b.Size() <= 0 {
		b.setMovement(Manual)
		b.moveTo(p)
		b.finish(wasAnimated)
		return
	}
	s := b.knobs()
	b.adjustTarget = p
	b.adjustIntensity = math32.Clamp(dist/b.Size(), 0, 1)
	dur := settings.Lerp(s.AutoCompleteDurMin, s.AutoCompleteDurMax, b.adjustIntensity)
	tw := anim.NewTweenTo(dur, b.ScrollPosition, p, b.moveTo)
	b.run(anim.NewSequence(anim.NewEase(anim.Standard, tw), b.finishAnimation), Auto)
}

// AdjustTarget returns the target of the running animated
// [Base.ScrollTo], or NaN.
func (b *Base) AdjustTarget() float32 {
	return b.adjustTarget
}

// AdjustIntensity returns the distance of the last animated
// [Base.ScrollTo] relative to the viewport, in [0, 1].
func (b *Base) AdjustIntensity() float32 {
	return b.adjustIntensity
}

// ScrollToItem scrolls the least needed for the given item to be
// fully visible.
func (b *Base) ScrollToItem(it *Item, animated bool) {
	start := b.padStart() + it.Position
	end := start + it.Size
	p := b.position
	switch {
	case start < p:
		p = start
	case end > p+b.Size():
		p = end - b.Size()
	}
	if p != b.position {
		b.ScrollTo(p, animated)
	}
}

// IsAnimating returns whether a scroll animation is running.
func (b *Base) IsAnimating() bool {
	return b.animation != nil
}
