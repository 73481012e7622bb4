// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import "strings"

// Modifiers is a bitmask of keyboard modifiers and synthetic
// value flags. The bit layout is stable across platforms.
type Modifiers uint32

const (
	ShiftL Modifiers = 1 << iota
	ShiftR
	CtrlL
	CtrlR
	AltL
	AltR
	MetaL
	MetaR
	CapsLock
	NumLock

	// ValueTrue and ValueFalse carry the value of synthetic
	// [Focus] and [Background] events.
	ValueTrue
	ValueFalse

	Shift = ShiftL | ShiftR
	Ctrl  = CtrlL | CtrlR
	Alt   = AltL | AltR
	Meta  = MetaL | MetaR
)

var modifiersNames = []struct {
	m    Modifiers
	name string
}{
	{ShiftL, "ShiftL"}, {ShiftR, "ShiftR"}, {CtrlL, "CtrlL"}, {CtrlR, "CtrlR"},
	{AltL, "AltL"}, {AltR, "AltR"}, {MetaL, "MetaL"}, {MetaR, "MetaR"},
	{CapsLock, "CapsLock"}, {NumLock, "NumLock"}, {ValueTrue, "ValueTrue"}, {ValueFalse, "ValueFalse"},
}

// Has returns whether any of the given modifier bits are set.
// Passing [Shift] thus matches either shift key.
func (m Modifiers) Has(f Modifiers) bool {
	return m&f != 0
}

// SetFlag sets or clears the given bits.
func (m *Modifiers) SetFlag(on bool, f Modifiers) {
	if on {
		*m |= f
	} else {
		*m &^= f
	}
}

func (m Modifiers) String() string {
	var b strings.Builder
	for _, mn := range modifiersNames {
		if m&mn.m == 0 {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('|')
		}
		b.WriteString(mn.name)
	}
	return b.String()
}
