// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package watchface

import (
	"fmt"
	"image"

	"github.com/gogpu/gg"
	"github.com/gogpu/gputypes"
)

// RenderContext bundles the canvas with the per-mode background art.
// It is created once per display session and passed to every Render.
//
// RenderContext is NOT safe for concurrent use.
type RenderContext struct {
	dc          *gg.Context
	owned       bool
	backgrounds [numModes]*gg.ImageBuf
	closed      bool
}

// New creates a render context. Unless WithContext is given it allocates a
// CanvasSize x CanvasSize canvas. The canvas origin is moved to the dial
// center here, once.
func New(opts ...Option) *RenderContext {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	rc := &RenderContext{dc: o.dc}
	if rc.dc == nil {
		rc.dc = gg.NewContext(o.width, o.height)
		rc.owned = true
	}
	rc.dc.Translate(Radius, Radius)

	for mode, img := range o.backgrounds {
		if !mode.Valid() {
			Logger().Warn("watchface: background for unknown mode ignored", "mode", mode)
			continue
		}
		rc.backgrounds[mode] = gg.ImageBufFromImage(img)
	}
	return rc
}

// Width returns the canvas width in pixels.
func (rc *RenderContext) Width() int { return rc.dc.Width() }

// Height returns the canvas height in pixels.
func (rc *RenderContext) Height() int { return rc.dc.Height() }

// HasBackground reports whether art is available for mode.
func (rc *RenderContext) HasBackground(mode RenderMode) bool {
	return mode.Valid() && rc.backgrounds[mode] != nil
}

// Transform returns the current canvas transform. Between renders it is
// always the dial translation.
func (rc *RenderContext) Transform() gg.Matrix {
	return rc.dc.GetTransform()
}

// Frame returns the current canvas content with an empty damage region.
func (rc *RenderContext) Frame() Frame {
	return rc.frame(image.Rectangle{})
}

// Close releases the canvas if it was created by New.
// Close is idempotent.
func (rc *RenderContext) Close() error {
	if rc.closed {
		return nil
	}
	rc.closed = true
	for i := range rc.backgrounds {
		rc.backgrounds[i] = nil
	}
	if rc.owned {
		return rc.dc.Close()
	}
	return nil
}

// Render paints the watch face for sample in mode and returns the
// resulting frame.
//
// A nil or out-of-range sample is a no-op: the canvas is left untouched and
// the returned frame has an empty Damage. An unknown mode returns
// ErrUnknownMode without drawing.
//
// Drawing order: background, hour needle, minute needle, then (when the
// mode has them) second needle with counterweight and pivot, then the two
// center rings.
func Render(rc *RenderContext, sample *TimeSample, mode RenderMode) (Frame, error) {
	if rc.closed {
		return Frame{}, ErrClosed
	}
	style, err := StyleFor(mode)
	if err != nil {
		return rc.Frame(), err
	}
	if sample == nil {
		Logger().Debug("watchface: render skipped, no sample", "mode", mode)
		return rc.Frame(), nil
	}
	if !sample.Valid() {
		Logger().Debug("watchface: render skipped, sample out of range", "mode", mode, "sample", *sample)
		return rc.Frame(), nil
	}

	if err := rc.paint(style, mode, *sample); err != nil {
		return rc.Frame(), fmt.Errorf("watchface: render %v at %v: %w", mode, *sample, err)
	}

	// Pending accelerator work must land in the pixmap before the hand-off.
	// CPU-rendered content is already there, so a flush error only degrades.
	if err := rc.dc.FlushGPU(); err != nil {
		Logger().Warn("watchface: accelerator flush failed", "err", err)
	}
	return rc.frame(image.Rect(0, 0, rc.dc.Width(), rc.dc.Height())), nil
}

func (rc *RenderContext) paint(st Style, mode RenderMode, s TimeSample) error {
	dc := rc.dc
	a := st.angles(s)
	p := st.Palette

	rc.paintBackground(mode)

	setColor(dc, p.Hour)
	if st.Needles.Has(NeedleHour) {
		if err := rotated(dc, a.Hour, needle(dc, HourNeedle)); err != nil {
			return fmt.Errorf("hour needle: %w", err)
		}
	}
	if st.Needles.Has(NeedleMinute) {
		if err := rotated(dc, a.Minute, needle(dc, MinuteNeedle)); err != nil {
			return fmt.Errorf("minute needle: %w", err)
		}
	}

	setColor(dc, p.Second)
	if st.Needles.Has(NeedleSecond) {
		err := rotated(dc, a.Second, func() error {
			if err := fillNeedle(dc, SecondNeedle); err != nil {
				return err
			}
			return fillCircle(dc, Counterweight)
		})
		if err != nil {
			return fmt.Errorf("second needle: %w", err)
		}
	}
	if st.Needles.Has(NeedlePivot) {
		if err := fillCircle(dc, Pivot); err != nil {
			return fmt.Errorf("pivot: %w", err)
		}
	}

	setColor(dc, p.Ring1)
	if err := fillCircle(dc, InnerRing); err != nil {
		return fmt.Errorf("inner ring: %w", err)
	}
	setColor(dc, p.Ring2)
	if err := fillCircle(dc, CenterDot); err != nil {
		return fmt.Errorf("center dot: %w", err)
	}

	Logger().Debug("watchface: rendered",
		"mode", mode, "sample", s,
		"hour", a.Hour, "minute", a.Minute, "second", a.Second)
	return nil
}

// paintBackground replaces the whole canvas with the mode's art. Without
// art the previous content stays and the needles draw over it.
func (rc *RenderContext) paintBackground(mode RenderMode) {
	bg := rc.backgrounds[mode]
	if bg == nil {
		return
	}
	rc.dc.Clear()
	rc.dc.DrawImage(bg, -Radius, -Radius)
}

func (rc *RenderContext) frame(damage image.Rectangle) Frame {
	pm := rc.dc.ResizeTarget()
	return Frame{
		Pix:    pm.Data(),
		Stride: pm.Width() * 4,
		Width:  pm.Width(),
		Height: pm.Height(),
		Format: gputypes.TextureFormatRGBA8Unorm,
		Damage: damage,
	}
}
