// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package watchface

import (
	"image"

	"github.com/gogpu/gputypes"
)

// Frame is the pixel buffer handed to the presentation layer after a render.
//
// Pix aliases the canvas memory: it is only valid until the next Render on
// the same RenderContext. Pixels are 4 bytes, R G B A, alpha premultiplied.
type Frame struct {
	Pix    []byte
	Stride int
	Width  int
	Height int
	Format gputypes.TextureFormat

	// Damage is the region changed by the render that produced the frame.
	// It covers the whole canvas after a render and is empty after a no-op.
	Damage image.Rectangle
}

// Changed reports whether the render that produced f drew anything.
func (f Frame) Changed() bool {
	return !f.Damage.Empty()
}

// Bounds returns the full frame rectangle.
func (f Frame) Bounds() image.Rectangle {
	return image.Rect(0, 0, f.Width, f.Height)
}

// Image wraps the frame pixels without copying.
func (f Frame) Image() *image.RGBA {
	return &image.RGBA{
		Pix:    f.Pix,
		Stride: f.Stride,
		Rect:   f.Bounds(),
	}
}

// Clone returns a frame backed by its own copy of the pixels.
func (f Frame) Clone() Frame {
	c := f
	c.Pix = append([]byte(nil), f.Pix...)
	return c
}

// BGRA writes the frame to dst in B G R A byte order, the layout of a
// little-endian ARGB32 surface, and returns it. dst is reallocated when
// it is too small.
func (f Frame) BGRA(dst []byte) []byte {
	n := f.Width * f.Height * 4
	if cap(dst) < n {
		dst = make([]byte, n)
	}
	dst = dst[:n]

	row := f.Width * 4
	for y := 0; y < f.Height; y++ {
		src := f.Pix[y*f.Stride : y*f.Stride+row]
		out := dst[y*row : (y+1)*row]
		for i := 0; i < row; i += 4 {
			out[i+0] = src[i+2]
			out[i+1] = src[i+1]
			out[i+2] = src[i+0]
			out[i+3] = src[i+3]
		}
	}
	return dst
}
