// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package watchface

// Radius is the dial radius in pixels. The canvas origin is translated by
// (Radius, Radius) so the dial center sits at (0, 0).
const Radius = 180

// CanvasSize is the default canvas edge length: the dial diameter.
const CanvasSize = 2 * Radius

// Needle is an axis-aligned rectangle in the needle's local frame, before
// rotation. X, Y is the anchor corner and Width, Length may be negative,
// in which case the rectangle extends left/up from the anchor.
type Needle struct {
	X, Y          float64
	Width, Length float64
}

// Circle is a filled disc in a local frame.
type Circle struct {
	X, Y, R float64
}

// Needle shapes. All needles are anchored 36px below the pivot and extend
// towards 12 o'clock; the rotation supplies the actual direction.
var (
	HourNeedle   = Needle{X: -8, Y: 36, Width: 16, Length: 45 - Radius}
	MinuteNeedle = Needle{X: -8, Y: 36, Width: 16, Length: -13 - Radius}
	SecondNeedle = Needle{X: -3, Y: 36, Width: 6, Length: 30 - Radius}
)

// Accent circles, all relative to the dial center.
var (
	// Counterweight rides on the second needle, in its rotated frame.
	Counterweight = Circle{X: 0, Y: -110, R: 15}

	// Pivot marks the common rotation center; Active mode only.
	Pivot = Circle{R: 6}

	// InnerRing and CenterDot are drawn in every mode.
	InnerRing = Circle{R: 2}
	CenterDot = Circle{R: 1}
)

// Tip returns the far end of the needle along its local axis.
func (n Needle) Tip() float64 {
	return n.Y + n.Length
}
