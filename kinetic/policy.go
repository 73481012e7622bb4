// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kinetic

import "cogentcore.org/scroll/math32"

// ClampVelocity clamps the magnitude of v to maxV, keeping the sign
// of v. A NaN or non-positive maxV means no limit.
func ClampVelocity(v, maxV float32) float32 {
	if math32.IsNaN(maxV) || maxV <= 0 || math32.Abs(v) <= maxV {
		return v
	}
	return math32.Sign(v) * maxV
}

// FloorAcceleration returns a with its magnitude raised to at least
// [MinAcceleration], keeping its sign (zero counts as positive).
func FloorAcceleration(a float32) float32 {
	if math32.Abs(a) >= MinAcceleration {
		return a
	}
	if a < 0 {
		return -MinAcceleration
	}
	return MinAcceleration
}

// FlightLength returns the signed distance travelled by a motion at
// initial velocity v decelerating with a (of opposite sign) until it
// stops: L = v·T + ½·a·T² with T = |v/a|.
func FlightLength(v, a float32) float32 {
	if a == 0 || v == 0 {
		return 0
	}
	t := math32.Abs(v / a)
	return v*t + 0.5*a*t*t
}

// Damp returns v scaled by 1/(1 + overrun/divisor), the damping
// applied to motion that is already past a bound by overrun.
func Damp(v, overrun, divisor float32) float32 {
	if divisor <= 0 {
		return v
	}
	return v / (1 + math32.Abs(overrun)/divisor)
}
