// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package assets

import (
	"image"
	"math"

	"github.com/gogpu/gg"

	"github.com/gogpu/watchface"
)

// dialStyle is the look of the default art for one mode.
type dialStyle struct {
	bezel, face, ticks gg.RGBA
	minuteTicks        bool
}

var dialStyles = map[watchface.RenderMode]dialStyle{
	watchface.Active: {
		bezel:       gg.RGB(0.12, 0.12, 0.12),
		face:        gg.RGB(0.94, 0.94, 0.92),
		ticks:       gg.RGB(0.25, 0.25, 0.25),
		minuteTicks: true,
	},
	watchface.Ambient: {
		bezel: gg.RGB(0, 0, 0),
		face:  gg.RGB(0.04, 0.04, 0.04),
		ticks: gg.RGB(0.45, 0.45, 0.45),
	},
}

// Dial draws the default background art of mode on a size x size image:
// a bezel ring, the face disc and the hour marks. Active art also carries
// minute marks. Unknown modes get the Active look.
func Dial(mode watchface.RenderMode, size int) image.Image {
	st, ok := dialStyles[mode]
	if !ok {
		st = dialStyles[watchface.Active]
	}

	dc := gg.NewContext(size, size)
	defer func() { _ = dc.Close() }()

	c := float64(size) / 2
	r := c

	dc.SetRGBA(st.bezel.R, st.bezel.G, st.bezel.B, st.bezel.A)
	dc.DrawCircle(c, c, r)
	_ = dc.Fill()

	dc.SetRGBA(st.face.R, st.face.G, st.face.B, st.face.A)
	dc.DrawCircle(c, c, r-6)
	_ = dc.Fill()

	dc.Translate(c, c)
	dc.SetRGBA(st.ticks.R, st.ticks.G, st.ticks.B, st.ticks.A)
	for i := 0; i < 60; i++ {
		hour := i%5 == 0
		if !hour && !st.minuteTicks {
			continue
		}
		w, l := 2.0, 8.0
		if hour {
			w, l = 6.0, 20.0
		}
		dc.Push()
		dc.Rotate(float64(i) * math.Pi / 30)
		dc.DrawRectangle(-w/2, -(r - 12), w, l)
		_ = dc.Fill()
		dc.Pop()
	}

	return dc.Image()
}
