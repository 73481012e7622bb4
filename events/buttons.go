// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

// Buttons is the source of a pointer event.
type Buttons int32

const (
	NoButton Buttons = iota

	// Touch is a finger on a touch screen.
	Touch

	MouseLeft
	MouseMiddle
	MouseRight

	WheelUp
	WheelDown
	WheelLeft
	WheelRight

	buttonsN
)

var buttonsNames = [...]string{"NoButton", "Touch", "MouseLeft", "MouseMiddle", "MouseRight", "WheelUp", "WheelDown", "WheelLeft", "WheelRight"}

func (b Buttons) String() string {
	if b < 0 || b >= buttonsN {
		return "Buttons(?)"
	}
	return buttonsNames[b]
}

// Mask returns the [ButtonMask] containing only this button.
func (b Buttons) Mask() ButtonMask {
	return 1 << b
}

// ButtonMask is a set of [Buttons] that a recognizer responds to.
type ButtonMask uint32

const (
	// PointerMask matches touches and the primary mouse button.
	PointerMask = ButtonMask(1<<Touch | 1<<MouseLeft)

	// MouseMask matches all mouse buttons.
	MouseMask = ButtonMask(1<<MouseLeft | 1<<MouseMiddle | 1<<MouseRight)

	// WheelMask matches all wheel directions.
	WheelMask = ButtonMask(1<<WheelUp | 1<<WheelDown | 1<<WheelLeft | 1<<WheelRight)

	// AllButtons matches every button.
	AllButtons = ButtonMask(1<<buttonsN - 1)
)

// Has returns whether the mask contains the given button.
func (m ButtonMask) Has(b Buttons) bool {
	return m&b.Mask() != 0
}
