// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Adapted initially from gonum/matrix/mat64 and
// github.com/srwiley/rasterx:
// Copyright 2018 by the rasterx Authors. All rights reserved.
// Created 2018 by S.R.Wiley

package math32

// Matrix2 is a 3x2 matrix used for 2D affine node transforms.
// [XX YX]
// [XY YY]
// [X0 Y0]
type Matrix2 struct {
	XX, YX, XY, YY, X0, Y0 float32
}

// Identity2 returns a new identity [Matrix2] matrix.
func Identity2() Matrix2 {
	return Matrix2{
		1, 0,
		0, 1,
		0, 0,
	}
}

// Translate2D returns a Matrix2 2D matrix with given translations
func Translate2D(x, y float32) Matrix2 {
	return Matrix2{1, 0, 0, 1, x, y}
}

// Scale2D returns a Matrix2 scaling matrix for given scaling factors
func Scale2D(x, y float32) Matrix2 {
	return Matrix2{x, 0, 0, y, 0, 0}
}

// Rotate2D returns a Matrix2 rotation matrix for given rotation angle in radians.
func Rotate2D(angle float32) Matrix2 {
	c := Cos(angle)
	s := Sin(angle)
	return Matrix2{c, s, -s, c, 0, 0}
}

// IsIdentity returns true if it is an identity matrix
func (a Matrix2) IsIdentity() bool {
	return a == Identity2()
}

// MulVector2AsVector multiplies the Vector2 as a vector without adding translations.
// This is for directional vectors and not points.
func (a Matrix2) MulVector2AsVector(v Vector2) Vector2 {
	tx := a.XX*v.X + a.XY*v.Y
	ty := a.YX*v.X + a.YY*v.Y
	return Vec2(tx, ty)
}

// MulVector2AsPoint multiplies the Vector2 as a point, including adding translations.
func (a Matrix2) MulVector2AsPoint(v Vector2) Vector2 {
	tx := a.XX*v.X + a.XY*v.Y + a.X0
	ty := a.YX*v.X + a.YY*v.Y + a.Y0
	return Vec2(tx, ty)
}

// Mul returns a*b
func (a Matrix2) Mul(b Matrix2) Matrix2 {
	return Matrix2{
		XX: a.XX*b.XX + a.XY*b.YX,
		YX: a.YX*b.XX + a.YY*b.YX,
		XY: a.XX*b.XY + a.XY*b.YY,
		YY: a.YX*b.XY + a.YY*b.YY,
		X0: a.XX*b.X0 + a.XY*b.Y0 + a.X0,
		Y0: a.YX*b.X0 + a.YY*b.Y0 + a.Y0,
	}
}

// ExtractRot extracts the rotation component from a given matrix
func (a Matrix2) ExtractRot() float32 {
	return Atan2(-a.XY, a.XX)
}

// ExtractScale extracts the scaling component from a given matrix
func (a Matrix2) ExtractScale() (scx, scy float32) {
	rot := a.ExtractRot()
	tx := a.Mul(Rotate2D(-rot))
	return tx.XX, tx.YY
}

// Inverse returns inverse of matrix, for inverting transforms
func (a Matrix2) Inverse() Matrix2 {
	// homogeneous rep, rc indexes, mapping into Matrix3 code
	// XX YX X0   n11 n12 n13    a b x
	// XY YY Y0   n21 n22 n23    c d y
	// 0  0  1    n31 n32 n33    0 0 1

	// t11 := a.YY
	// t12 := -a.YX
	// t13 := a.Y0*a.YX - a.YY*a.X0
	det := a.XX*a.YY - a.YX*a.XY // ad - bc
	if det == 0 {
		return Matrix2{}
	}
	detInv := 1 / det

	b := Matrix2{}
	b.XX = a.YY * detInv  // a = d
	b.YX = -a.YX * detInv // b = -b
	b.XY = -a.XY * detInv // c = -c
	b.YY = a.XX * detInv  // d = a
	b.X0 = (a.Y0*a.XY - a.YY*a.X0) * detInv
	b.Y0 = (a.X0*a.YX - a.XX*a.Y0) * detInv
	return b
}
