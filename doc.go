// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package watchface renders an analog watch face onto a fixed-size raster.
//
// # Overview
//
// The renderer paints a circular dial with hour, minute and second needles
// on top of pre-rendered background art. Drawing is done with the gg 2D
// graphics library: the canvas is a [gg.Context] whose origin is translated
// to the dial center once, when the [RenderContext] is created.
//
// # Quick Start
//
//	rc := watchface.New(
//	    watchface.WithBackground(watchface.Active, activeArt),
//	    watchface.WithBackground(watchface.Ambient, ambientArt),
//	)
//	defer rc.Close()
//
//	sample := watchface.FromTime(time.Now())
//	frame, err := watchface.Render(rc, &sample, watchface.Active)
//	if err != nil {
//	    return err
//	}
//	_ = png.Encode(w, frame.Image())
//
// # Modes
//
// Two render modes exist. [Active] draws the hour, minute and second
// needles plus the pivot and is expected to be driven once per second.
// [Ambient] is the low-power variant: no second needle, no pivot, and the
// minute needle ignores seconds because ambient ticks arrive once per
// minute. Each mode selects a [Style] (palette and needle set) from a single
// table, see [StyleFor].
//
// # Coordinate System
//
// After construction the canvas origin is the dial center, R pixels from
// the top and left edges (R = [Radius]). Y grows downwards and a positive
// angle turns clockwise, so a needle at angle 0 points at 12 o'clock.
//
// # Concurrency
//
// A RenderContext is not safe for concurrent use. Render calls must be
// serialized by the caller; the returned [Frame] aliases the canvas pixels
// and is only valid until the next call.
package watchface
