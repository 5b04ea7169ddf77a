// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package display

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/gogpu/watchface"
)

type fakeDisplay struct {
	w, h     int16
	pix      map[image.Point]color.RGBA
	sets     int
	displays int
	err      error
}

func newFakeDisplay(w, h int16) *fakeDisplay {
	return &fakeDisplay{w: w, h: h, pix: map[image.Point]color.RGBA{}}
}

func (d *fakeDisplay) Size() (x, y int16) { return d.w, d.h }

func (d *fakeDisplay) SetPixel(x, y int16, c color.RGBA) {
	if x < 0 || y < 0 || x >= d.w || y >= d.h {
		panic("pixel out of range")
	}
	d.pix[image.Pt(int(x), int(y))] = c
	d.sets++
}

func (d *fakeDisplay) Display() error {
	d.displays++
	return d.err
}

func solidFrame(w, h int, c color.RGBA) watchface.Frame {
	pix := make([]byte, w*h*4)
	for i := 0; i < len(pix); i += 4 {
		pix[i], pix[i+1], pix[i+2], pix[i+3] = c.R, c.G, c.B, c.A
	}
	return watchface.Frame{Pix: pix, Stride: w * 4, Width: w, Height: h, Damage: image.Rect(0, 0, w, h)}
}

func TestPresentFullFrame(t *testing.T) {
	d := newFakeDisplay(4, 4)
	p := New(d)

	if err := p.Present(solidFrame(4, 4, color.RGBA{10, 20, 30, 255})); err != nil {
		t.Fatal(err)
	}
	if d.sets != 16 || d.displays != 1 {
		t.Errorf("sets=%d displays=%d, want 16/1", d.sets, d.displays)
	}
	if got := d.pix[image.Pt(3, 3)]; got != (color.RGBA{10, 20, 30, 255}) {
		t.Errorf("pixel = %v", got)
	}
}

func TestPresentSendsOnlyChanges(t *testing.T) {
	d := newFakeDisplay(4, 4)
	p := New(d)
	f := solidFrame(4, 4, color.RGBA{A: 255})
	_ = p.Present(f)

	f.Pix[0] = 200
	d.sets = 0
	if err := p.Present(f); err != nil {
		t.Fatal(err)
	}
	if d.sets != 1 {
		t.Errorf("sets = %d, want 1 changed pixel", d.sets)
	}

	p.Reset()
	d.sets = 0
	_ = p.Present(f)
	if d.sets != 16 {
		t.Errorf("sets after Reset = %d, want 16", d.sets)
	}
}

func TestPresentCentersAndClips(t *testing.T) {
	d := newFakeDisplay(2, 6)
	p := New(d)

	// 4x4 frame on a 2x6 display: offset (-1, 1).
	if err := p.Present(solidFrame(4, 4, color.RGBA{R: 255, A: 255})); err != nil {
		t.Fatal(err)
	}
	if d.sets != 8 {
		t.Errorf("sets = %d, want 8", d.sets)
	}
	if _, ok := d.pix[image.Pt(0, 0)]; ok {
		t.Error("row above the frame was written")
	}
	if _, ok := d.pix[image.Pt(1, 4)]; !ok {
		t.Error("last frame row missing")
	}
}

func TestPresentEmptyDamage(t *testing.T) {
	d := newFakeDisplay(4, 4)
	p := New(d)
	f := solidFrame(4, 4, color.RGBA{A: 255})
	f.Damage = image.Rectangle{}
	if err := p.Present(f); err != nil {
		t.Fatal(err)
	}
	if d.sets != 0 || d.displays != 0 {
		t.Errorf("no-op frame reached the display: sets=%d displays=%d", d.sets, d.displays)
	}
}

func TestPresentDisplayError(t *testing.T) {
	d := newFakeDisplay(2, 2)
	d.err = errors.New("spi timeout")
	p := New(d)
	if err := p.Present(solidFrame(2, 2, color.RGBA{A: 255})); !errors.Is(err, d.err) {
		t.Errorf("Present() = %v, want wrapped display error", err)
	}
}
