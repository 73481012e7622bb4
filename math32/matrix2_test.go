// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"cogentcore.org/scroll/base/tolassert"
	"github.com/stretchr/testify/assert"
)

func tolAssertEqualVector(t *testing.T, tol float32, vt, va Vector2) {
	tolassert.EqualTol(t, vt.X, va.X, tol)
	tolassert.EqualTol(t, vt.Y, va.Y, tol)
}

const standardTol = float32(1.0e-6)

func TestMatrix2(t *testing.T) {
	v0 := Vec2(0, 0)
	vx := Vec2(1, 0)
	vy := Vec2(0, 1)
	vxy := Vec2(1, 1)

	assert.Equal(t, vx, Identity2().MulVector2AsPoint(vx))
	assert.Equal(t, vy, Identity2().MulVector2AsPoint(vy))
	assert.Equal(t, vxy, Identity2().MulVector2AsPoint(vxy))

	assert.Equal(t, vxy, Translate2D(1, 1).MulVector2AsPoint(v0))

	assert.Equal(t, vxy.MulScalar(2), Scale2D(2, 2).MulVector2AsPoint(vxy))

	tolAssertEqualVector(t, standardTol, vy, Rotate2D(DegToRad(90)).MulVector2AsPoint(vx))  // left
	tolAssertEqualVector(t, standardTol, vx, Rotate2D(DegToRad(-90)).MulVector2AsPoint(vy)) // right

	tolAssertEqualVector(t, standardTol, vy, Rotate2D(DegToRad(-90)).Inverse().MulVector2AsPoint(vx))
	tolAssertEqualVector(t, standardTol, vx, Rotate2D(DegToRad(90)).Inverse().MulVector2AsPoint(vy))

	tolassert.EqualTol(t, DegToRad(-45), Rotate2D(DegToRad(-45)).ExtractRot(), standardTol)
	tolassert.EqualTol(t, DegToRad(90), Rotate2D(DegToRad(90)).ExtractRot(), standardTol)

	// 1,0 -> scale(2) = 2,0 -> rotate 90 = 0,2 -> trans 1,1 -> 1,3
	// multiplication order is *reverse* of "logical" order:
	tolAssertEqualVector(t, standardTol, Vec2(1, 3), Translate2D(1, 1).Mul(Rotate2D(DegToRad(90))).Mul(Scale2D(2, 2)).MulVector2AsPoint(vx))

	m := Translate2D(10, 20).Mul(Scale2D(2, 4))
	tolAssertEqualVector(t, standardTol, Vec2(3, 5), m.Inverse().MulVector2AsPoint(Vec2(16, 40)))
}

func TestBox2(t *testing.T) {
	b := B2(0, 0, 10, 20)
	assert.True(t, b.ContainsPoint(Vec2(5, 5)))
	assert.False(t, b.ContainsPoint(Vec2(11, 5)))
	assert.Equal(t, Vec2(10, 20), b.Size())
	b.ExpandByScalar(2)
	assert.True(t, b.ContainsPoint(Vec2(11, 5)))
	assert.Equal(t, B2(1, 2, 11, 22), B2FromSize(Vec2(1, 2), Vec2(10, 20)))

	// a quarter turn around the origin swaps the extents
	r := B2(0, 0, 10, 20).MulMatrix2(Rotate2D(DegToRad(90)))
	tolAssertEqualVector(t, 1e-4, Vec2(-20, 0), r.Min)
	tolAssertEqualVector(t, 1e-4, Vec2(0, 10), r.Max)
}
