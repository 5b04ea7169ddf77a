// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package gpuwin shows the watch face in a gogpu window.
//
// The face is rendered straight into a ggcanvas canvas, so no pixel copy
// happens between the renderer and the GPU upload:
//
//	watchface.Render -> ggcanvas.Canvas -> gogpu.Context -> window
package gpuwin

import (
	"fmt"

	"github.com/gogpu/gg/integration/ggcanvas"
	"github.com/gogpu/gpucontext"

	"github.com/gogpu/watchface"
)

// Surface is a watch face canvas living on a GPU device.
// Surface implements present.Presenter: presenting a frame only schedules
// the upload of the canvas it was rendered into.
type Surface struct {
	canvas *ggcanvas.Canvas
	rc     *watchface.RenderContext
}

// NewSurface creates a CanvasSize x CanvasSize canvas on provider's device
// and a render context drawing into it. opts are passed to watchface.New.
func NewSurface(provider gpucontext.DeviceProvider, opts ...watchface.Option) (*Surface, error) {
	canvas, err := ggcanvas.New(provider, watchface.CanvasSize, watchface.CanvasSize)
	if err != nil {
		return nil, fmt.Errorf("gpuwin: %w", err)
	}
	opts = append(opts, watchface.WithContext(canvas.Context()))
	return &Surface{canvas: canvas, rc: watchface.New(opts...)}, nil
}

// RenderContext returns the render context drawing into the canvas.
func (s *Surface) RenderContext() *watchface.RenderContext { return s.rc }

// Present implements present.Presenter.
func (s *Surface) Present(f watchface.Frame) error {
	if f.Changed() {
		s.canvas.MarkDirty()
	}
	return nil
}

// Dirty reports whether the canvas has changes not yet uploaded.
func (s *Surface) Dirty() bool { return s.canvas.IsDirty() }

// RenderTo uploads the canvas if needed and draws it to dc.
func (s *Surface) RenderTo(dc gpucontext.TextureDrawer) error {
	if err := s.canvas.RenderTo(dc); err != nil {
		return fmt.Errorf("gpuwin: %w", err)
	}
	return nil
}

// Close releases the render context and the canvas.
func (s *Surface) Close() error {
	_ = s.rc.Close()
	return s.canvas.Close()
}
