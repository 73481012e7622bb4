// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package input

import (
	"time"

	"cogentcore.org/scroll/math32"
)

// maxSamples is the capacity of the velocity ring buffer.
const maxSamples = 20

type sample struct {
	t   time.Time
	pos math32.Vector2
}

// velocityTracker estimates the velocity of a pointer from its
// recent positions, averaged over a time window.
type velocityTracker struct {
	samples [maxSamples]sample
	n, last int
}

func (vt *velocityTracker) reset() {
	vt.n = 0
	vt.last = 0
}

func (vt *velocityTracker) add(t time.Time, pos math32.Vector2) {
	if vt.n > 0 {
		vt.last = (vt.last + 1) % maxSamples
	}
	vt.samples[vt.last] = sample{t, pos}
	vt.n = min(vt.n+1, maxSamples)
}

// shift moves all samples by d, used when the tracked point jumps.
func (vt *velocityTracker) shift(d math32.Vector2) {
	for i := range vt.n {
		vt.samples[i].pos = vt.samples[i].pos.Add(d)
	}
}

// velocity returns the average velocity, in pixels per second, over
// the samples within the given window before the last sample.
func (vt *velocityTracker) velocity(window time.Duration) math32.Vector2 {
	if vt.n < 2 {
		return math32.Vector2{}
	}
	newest := vt.samples[vt.last]
	oldest := newest
	for i := 1; i < vt.n; i++ {
		s := vt.samples[(vt.last-i+maxSamples)%maxSamples]
		if newest.t.Sub(s.t) > window {
			break
		}
		oldest = s
	}
	dt := float32(newest.t.Sub(oldest.t).Seconds())
	if dt <= 0 {
		return math32.Vector2{}
	}
	return newest.pos.Sub(oldest.pos).DivScalar(dt)
}
