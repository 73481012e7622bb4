// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

// Types determines the type of raw input event, which for pointer
// events is the phase of the touch it belongs to. The set of types
// and their numbering is stable across platforms.
type Types int32

const (
	// zero value is an unknown type
	UnknownType Types = iota

	// Begin happens when a touch starts or a pointer button is pressed.
	// It is the only event that is hit-tested: the listeners it reaches
	// track the touch until it ends.
	Begin

	// Move happens when a tracked touch or a pressed pointer moves.
	Move

	// End happens when a touch ends or a pointer button is released.
	End

	// Cancel happens when the platform cancels a touch.
	Cancel

	// Hover is sent when the pointer moves with no button pressed.
	Hover

	// Wheel is a scroll wheel or trackpad scroll step, with the amount in
	// [Event.Wheel].
	Wheel

	// KeyDown happens when a key is pressed.
	KeyDown

	// KeyUp happens when a key is released.
	KeyUp

	// Char is a text input event, with the rune in [Key.Char].
	Char

	// Focus is sent when the window gains (ValueTrue) or loses
	// (ValueFalse) focus.
	Focus

	// Background is sent when the application enters (ValueTrue) or
	// leaves (ValueFalse) the background.
	Background

	typesN
)

var typesNames = [...]string{"UnknownType", "Begin", "Move", "End", "Cancel", "Hover", "Wheel", "KeyDown", "KeyUp", "Char", "Focus", "Background"}

// String returns the name of the event type.
func (tp Types) String() string {
	if tp < 0 || tp >= typesN {
		return "Types(?)"
	}
	return typesNames[tp]
}

// IsPointer returns whether events of this type are routed
// by touch id to the listeners tracking the touch.
func (tp Types) IsPointer() bool {
	return tp >= Begin && tp <= Cancel
}

// IsBroadcast returns whether events of this type are sent to all
// listeners that process them, without hit testing.
func (tp Types) IsBroadcast() bool {
	return tp >= KeyDown && tp <= Background
}

// TypeMask is a set of event [Types].
type TypeMask uint32

// Mask returns a [TypeMask] with the given types set.
func Mask(types ...Types) TypeMask {
	var m TypeMask
	for _, tp := range types {
		m |= 1 << tp
	}
	return m
}

// Has returns whether the mask contains the given type.
func (m TypeMask) Has(tp Types) bool {
	return m&(1<<tp) != 0
}

// AllTypes is a mask of every event type.
const AllTypes TypeMask = 1<<typesN - 1
