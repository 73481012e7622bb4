// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Dims is a list of vector dimension (component) names
type Dims int32

const (
	X Dims = iota
	Y
)

// OtherDim returns the other dimension for 2D X,Y
func OtherDim(d Dims) Dims {
	if d == X {
		return Y
	}
	return X
}

func (d Dims) String() string {
	switch d {
	case X:
		return "X"
	case Y:
		return "Y"
	}
	return "Dims(?)"
}
