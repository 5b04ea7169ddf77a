// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package watchface

import (
	"image"

	"github.com/gogpu/gg"
)

// Option configures a RenderContext during creation.
//
// Example:
//
//	// Default 360x360 canvas, no background art
//	rc := watchface.New()
//
//	// Render into a canvas owned by someone else
//	rc := watchface.New(watchface.WithContext(canvas.Context()))
type Option func(*options)

// Backgrounds maps each mode to its pre-rendered dial art.
// A mode without an entry is rendered without background (degraded).
type Backgrounds map[RenderMode]image.Image

type options struct {
	width, height int
	dc            *gg.Context
	backgrounds   Backgrounds
}

func defaultOptions() options {
	return options{
		width:       CanvasSize,
		height:      CanvasSize,
		backgrounds: Backgrounds{},
	}
}

// WithSize sets the canvas size. The dial stays anchored at
// (Radius, Radius) whatever the size; non-positive values are ignored.
// Background art covers the dial square only: on a larger canvas the area
// right of and below it is cleared to transparent on every render.
func WithSize(width, height int) Option {
	return func(o *options) {
		if width > 0 && height > 0 {
			o.width, o.height = width, height
		}
	}
}

// WithBackground sets the art painted first in every render of mode.
// The image is converted once and shared read-only by all renders.
func WithBackground(mode RenderMode, img image.Image) Option {
	return func(o *options) {
		if img != nil {
			o.backgrounds[mode] = img
		}
	}
}

// WithBackgrounds sets the art of every mode present in b.
func WithBackgrounds(b Backgrounds) Option {
	return func(o *options) {
		for mode, img := range b {
			if img != nil {
				o.backgrounds[mode] = img
			}
		}
	}
}

// WithContext renders into dc instead of a context created by New.
// The caller keeps ownership: Close does not close dc, and the canvas size
// is taken from dc. The dial translation is applied to dc's current
// transform.
func WithContext(dc *gg.Context) Option {
	return func(o *options) {
		o.dc = dc
	}
}
