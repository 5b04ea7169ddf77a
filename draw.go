// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package watchface

import "github.com/gogpu/gg"

// rotated runs draw with the canvas rotated by angle about the dial center.
// The previous transform is restored on every exit path, so needles never
// see each other's rotation.
func rotated(dc *gg.Context, angle float64, draw func() error) error {
	dc.Push()
	defer dc.Pop()

	dc.Rotate(angle)
	return draw()
}

func needle(dc *gg.Context, n Needle) func() error {
	return func() error { return fillNeedle(dc, n) }
}

func fillNeedle(dc *gg.Context, n Needle) error {
	dc.DrawRectangle(n.X, n.Y, n.Width, n.Length)
	return dc.Fill()
}

func fillCircle(dc *gg.Context, c Circle) error {
	dc.DrawCircle(c.X, c.Y, c.R)
	return dc.Fill()
}

func setColor(dc *gg.Context, c gg.RGBA) {
	dc.SetRGBA(c.R, c.G, c.B, c.A)
}
