// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package settings provides the host-tunable knobs of the gesture
// and scroll packages, with TOML persistence and hot reload.
package settings

import (
	"time"

	"cogentcore.org/scroll/base/errors"
	"github.com/jinzhu/copier"
)

// Current is the process-wide default [Scroll] settings. Scroll views
// take a copy of it when they are initialized, so changes only
// affect views created afterwards unless they are applied explicitly.
var Current = New()

// Debug are the currently active debug trace settings.
var Debug = &DebugSettings{}

// Scroll contains every tunable constant of the gesture recognizers,
// the kinetic scroll core, the scroll decorations and the flexible header.
type Scroll struct {

	// LongPressInterval is the time a press must be held before it
	// activates as a long press, and the period of subsequent ticks.
	LongPressInterval time.Duration `default:"425ms"`

	// TapInterval is the maximum time between press and release of a tap,
	// and between consecutive taps of a multi-tap.
	TapInterval time.Duration `default:"350ms"`

	// TapDistance is the maximum movement, in density-independent pixels,
	// of a press or a tap.
	TapDistance float32 `default:"8"`

	// SwipeThreshold is the displacement, in density-independent pixels,
	// after which a swipe begins.
	SwipeThreshold float32 `default:"6"`

	// VelocityWindow is the time window over which the terminal
	// velocity of a swipe is averaged.
	VelocityWindow time.Duration `default:"50ms"`

	// WheelMultiplier converts abstract wheel units into scroll units.
	WheelMultiplier float32 `default:"5"`

	// DecelerationA is the deceleration of a fling, in units/s².
	// It is also the floor of every kinetic acceleration magnitude.
	DecelerationA float32 `default:"5000"`

	// BounceMinA is the minimum deceleration of the outward part of
	// a bounce, in units/s².
	BounceMinA float32 `default:"25000"`

	// BounceVelocityFactor scales the bounce deceleration with the
	// incoming speed: a₂ = max(BounceMinA, |v|·BounceVelocityFactor).
	BounceVelocityFactor float32 `default:"50"`

	// OverrunDivisor damps motion past a bound: deltas are
	// scaled by 1/(1 + overrun/OverrunDivisor).
	OverrunDivisor float32 `default:"5"`

	// OverscrollDivisor converts overscroll deltas into visual progress.
	OverscrollDivisor float32 `default:"50"`

	// OverscrollCapFraction is the size of an overscroll visual
	// relative to the cross axis of the view.
	OverscrollCapFraction float32 `default:"0.16666667"`

	// OverscrollCapMax is the maximal size of an overscroll visual.
	OverscrollCapMax float32 `default:"64"`

	// OverscrollGrace is the time an overscroll visual holds
	// its progress before it starts decaying.
	OverscrollGrace time.Duration `default:"250ms"`

	// OverscrollDecay is the rate, in progress per second, at which
	// an overscroll visual decays after the grace period.
	OverscrollDecay float32 `default:"2.5"`

	// IndicatorFadeIn is the duration of the indicator fade in.
	IndicatorFadeIn time.Duration `default:"100ms"`

	// IndicatorHold is the time the indicator stays visible after
	// the last scroll before it fades out.
	IndicatorHold time.Duration `default:"2s"`

	// IndicatorFadeOut is the duration of the indicator fade out.
	IndicatorFadeOut time.Duration `default:"250ms"`

	// IndicatorMinLen is the minimal length of the indicator.
	IndicatorMinLen float32 `default:"20"`

	// IndicatorThickness is the cross-axis size of the indicator.
	IndicatorThickness float32 `default:"3"`

	// IndicatorMargin is the distance between the indicator and
	// the inner cross-axis edge of the view.
	IndicatorMargin float32 `default:"2"`

	// AutoCompleteDurMin and AutoCompleteDurMax bound the duration
	// of animated scroll adjustments.
	AutoCompleteDurMin time.Duration `default:"150ms"`
	AutoCompleteDurMax time.Duration `default:"450ms"`

	// FlexAutoCompleteDurMin and FlexAutoCompleteDurMax bound the
	// duration of the flexible header auto-complete animation.
	FlexAutoCompleteDurMin time.Duration `default:"0s"`
	FlexAutoCompleteDurMax time.Duration `default:"300ms"`

	// FlexExpandClear is the duration used to clear a flexible extra space
	// expansion when the user starts scrolling.
	FlexExpandClear time.Duration `default:"250ms"`

	// SafeTriggerDefault is the distance a swipe must travel before the
	// flexible header starts collapsing, when safe trigger is off.
	SafeTriggerDefault float32 `default:"8"`

	// MaxFrameDelta caps the frame time delta passed to a scene update
	// to absorb stalls.
	MaxFrameDelta time.Duration
}

// DebugSettings are trace flags that log the inner workings
// of the gesture and scroll packages at [slog.LevelInfo].
type DebugSettings struct {

	// ScrollTrace logs scroll state machine transitions.
	ScrollTrace bool

	// GestureTrace logs recognizer phases and exclusivity.
	GestureTrace bool

	// ActionTrace logs actions started and stopped by tag.
	ActionTrace bool
}

// New returns new [Scroll] settings with default values.
func New() *Scroll {
	s := &Scroll{}
	s.Defaults()
	return s
}

// Defaults sets the default values for all of the settings.
func (s *Scroll) Defaults() {
	s.LongPressInterval = 425 * time.Millisecond
	s.TapInterval = 350 * time.Millisecond
	s.TapDistance = 8
	s.SwipeThreshold = 6
	s.VelocityWindow = 50 * time.Millisecond
	s.WheelMultiplier = 5
	s.DecelerationA = 5000
	s.BounceMinA = 25000
	s.BounceVelocityFactor = 50
	s.OverrunDivisor = 5
	s.OverscrollDivisor = 50
	s.OverscrollCapFraction = 1.0 / 6.0
	s.OverscrollCapMax = 64
	s.OverscrollGrace = 250 * time.Millisecond
	s.OverscrollDecay = 2.5
	s.IndicatorFadeIn = 100 * time.Millisecond
	s.IndicatorHold = 2 * time.Second
	s.IndicatorFadeOut = 250 * time.Millisecond
	s.IndicatorMinLen = 20
	s.IndicatorThickness = 3
	s.IndicatorMargin = 2
	s.AutoCompleteDurMin = 150 * time.Millisecond
	s.AutoCompleteDurMax = 450 * time.Millisecond
	s.FlexAutoCompleteDurMin = 0
	s.FlexAutoCompleteDurMax = 300 * time.Millisecond
	s.FlexExpandClear = 250 * time.Millisecond
	s.SafeTriggerDefault = 8
	s.MaxFrameDelta = defaultMaxFrameDelta
}

// Clone returns a deep copy of the settings.
func (s *Scroll) Clone() *Scroll {
	c := &Scroll{}
	errors.Log(copier.CopyWithOption(c, s, copier.Option{DeepCopy: true}))
	return c
}

// Seconds converts a duration into float32 seconds, which is the
// time unit of actions and kinetic curves.
func Seconds(d time.Duration) float32 {
	return float32(d.Seconds())
}

// Lerp returns the duration in seconds interpolated between
// min and max by t in [0, 1].
func Lerp(min, max time.Duration, t float32) float32 {
	a, b := Seconds(min), Seconds(max)
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return a + (b-a)*t
}
