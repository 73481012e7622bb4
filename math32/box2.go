// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Initially copied from G3N: github.com/g3n/engine/math32
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// with modifications needed to suit scroll physics.

package math32

// Box2 is an axis aligned rectangle given by its minimum and maximum
// corners. The bounds of a kinetic flight and the hit areas of nodes
// are boxes.
type Box2 struct {
	Min Vector2
	Max Vector2
}

// B2 returns a new [Box2] from the given minimum and maximum x and y coordinates.
func B2(x0, y0, x1, y1 float32) Box2 {
	return Box2{Vec2(x0, y0), Vec2(x1, y1)}
}

// B2FromSize returns a new [Box2] at origin pos with the given size.
func B2FromSize(pos, size Vector2) Box2 {
	return Box2{pos, pos.Add(size)}
}

// ExpandByScalar grows the box by scalar on every side;
// a negative scalar shrinks it.
func (b *Box2) ExpandByScalar(scalar float32) {
	b.Min = b.Min.AddScalar(-scalar)
	b.Max = b.Max.AddScalar(scalar)
}

// Size returns the extent of the box along each axis.
func (b Box2) Size() Vector2 {
	return b.Max.Sub(b.Min)
}

// ContainsPoint returns whether the point is inside the box,
// edges included.
func (b Box2) ContainsPoint(point Vector2) bool {
	return point.X >= b.Min.X && point.X <= b.Max.X &&
		point.Y >= b.Min.Y && point.Y <= b.Max.Y
}

// MulMatrix2 returns the smallest box holding the four corners of b
// transformed by m.
func (b Box2) MulMatrix2(m Matrix2) Box2 {
	p := m.MulVector2AsPoint(b.Min)
	nb := Box2{p, p}
	for _, c := range []Vector2{b.Max, Vec2(b.Max.X, b.Min.Y), Vec2(b.Min.X, b.Max.Y)} {
		p = m.MulVector2AsPoint(c)
		nb.Min = nb.Min.Min(p)
		nb.Max = nb.Max.Max(p)
	}
	return nb
}
