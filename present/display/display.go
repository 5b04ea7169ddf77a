// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package display pushes frames to TinyGo display drivers.
package display

import (
	"fmt"
	"image"
	"image/color"

	"tinygo.org/x/drivers"

	"github.com/gogpu/watchface"
	"github.com/gogpu/watchface/present"
)

// Presenter writes frames to a drivers.Displayer.
//
// The frame is centered on the display and clipped to it. Displays are
// opaque, so pixels are composited over black. Only pixels that differ from
// what the display already shows are sent, which keeps SPI traffic low on
// the per-second active cadence.
type Presenter struct {
	d      drivers.Displayer
	shadow []color.RGBA
	dw, dh int
}

var _ present.Presenter = (*Presenter)(nil)

// New returns a presenter for d.
func New(d drivers.Displayer) *Presenter {
	w, h := d.Size()
	return &Presenter{d: d, dw: int(w), dh: int(h)}
}

// Present implements present.Presenter.
func (p *Presenter) Present(f watchface.Frame) error {
	off := image.Pt((p.dw-f.Width)/2, (p.dh-f.Height)/2)
	area := f.Damage.Add(off).Intersect(image.Rect(0, 0, p.dw, p.dh))
	if area.Empty() {
		return nil
	}

	fresh := p.shadow == nil
	if fresh {
		p.shadow = make([]color.RGBA, p.dw*p.dh)
	}

	sent := 0
	for y := area.Min.Y; y < area.Max.Y; y++ {
		row := (y - off.Y) * f.Stride
		for x := area.Min.X; x < area.Max.X; x++ {
			i := row + (x-off.X)*4
			c := color.RGBA{R: f.Pix[i], G: f.Pix[i+1], B: f.Pix[i+2], A: 0xff}
			s := &p.shadow[y*p.dw+x]
			if !fresh && *s == c {
				continue
			}
			*s = c
			p.d.SetPixel(int16(x), int16(y), c)
			sent++
		}
	}

	watchface.Logger().Debug("display: frame pushed", "pixels", sent, "area", area)
	if err := p.d.Display(); err != nil {
		return fmt.Errorf("display: %w", err)
	}
	return nil
}

// Reset forgets what the display shows, so the next frame is sent whole.
func (p *Presenter) Reset() {
	p.shadow = nil
}
