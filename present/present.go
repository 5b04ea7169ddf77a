// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package present defines the hand-off from the renderer to a display.
//
// Sub-packages implement Presenter for concrete targets:
//
//   - present/png: PNG files
//   - present/window: desktop window (ebiten)
//   - present/gpuwin: GPU window (gogpu via ggcanvas)
//   - present/display: tinygo display drivers
//   - present/term: terminal half-block output (lipgloss)
package present

import (
	"errors"

	"github.com/gogpu/watchface"
)

// Presenter pushes a rendered frame to a display.
//
// The frame aliases the canvas and is only valid during the call; a
// presenter that needs the pixels later must copy them (Frame.Clone).
// Present is called from a single goroutine, never concurrently with a
// render.
type Presenter interface {
	Present(f watchface.Frame) error
}

// Func adapts an ordinary function to a Presenter.
type Func func(f watchface.Frame) error

// Present calls fn(f).
func (fn Func) Present(f watchface.Frame) error { return fn(f) }

// Multi fans a frame out to several presenters. Every presenter sees the
// frame even when an earlier one fails; the errors are joined.
type Multi []Presenter

// Present implements Presenter.
func (m Multi) Present(f watchface.Frame) error {
	var errs []error
	for _, p := range m {
		if err := p.Present(f); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Discard drops every frame.
var Discard Presenter = Func(func(watchface.Frame) error { return nil })
