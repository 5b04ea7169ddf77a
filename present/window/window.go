// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package window shows frames in a desktop window driven by ebiten.
package window

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gogpu/watchface"
	"github.com/gogpu/watchface/present"
)

// Window is a Presenter backed by an ebiten window.
//
// ebiten owns the frame loop: Run blocks on the calling goroutine (which
// must be the main goroutine) and calls Step once per update. Step is the
// place to poll the tick source and render; frames presented from it are
// uploaded on the next Draw.
type Window struct {
	Title string
	Scale int

	// Step runs once per ebiten update, before the next Draw.
	Step func() error

	// Focus, when set, is called with the new window focus state whenever
	// it changes. Hosts map a lost focus to ambient mode.
	Focus func(focused bool)

	latest  present.Latest
	width   int
	height  int
	img     *ebiten.Image
	focused bool
	started bool
	closed  atomic.Bool
}

// New returns a window for width x height frames.
func New(title string, width, height int) *Window {
	return &Window{Title: title, Scale: 1, width: width, height: height}
}

// Present implements present.Presenter. The frame is copied.
func (w *Window) Present(f watchface.Frame) error {
	if w.closed.Load() {
		return errors.New("window: closed")
	}
	return w.latest.Present(f)
}

// Close makes Run return after the current update.
func (w *Window) Close() {
	w.closed.Store(true)
}

// Run opens the window and blocks until it is closed.
func (w *Window) Run() error {
	scale := max(w.Scale, 1)
	ebiten.SetWindowTitle(w.Title)
	ebiten.SetWindowSize(w.width*scale, w.height*scale)
	ebiten.SetTPS(30)
	watchface.Logger().Info("window: opened", "title", w.Title, "width", w.width, "height", w.height)

	err := ebiten.RunGame(&game{w: w})
	w.closed.Store(true)
	if err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}

type game struct {
	w *Window
}

func (g *game) Update() error {
	w := g.w
	if w.closed.Load() {
		return ebiten.Termination
	}

	focused := ebiten.IsFocused()
	if w.started && focused != w.focused && w.Focus != nil {
		w.Focus(focused)
	}
	w.focused, w.started = focused, true

	if w.Step != nil {
		return w.Step()
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	w := g.w
	w.latest.Take(func(f watchface.Frame) {
		if w.img == nil || w.img.Bounds() != f.Bounds() {
			if w.img != nil {
				w.img.Deallocate()
			}
			w.img = ebiten.NewImage(f.Width, f.Height)
		}
		w.img.WritePixels(f.Pix)
	})
	if w.img != nil {
		screen.DrawImage(w.img, nil)
	}
}

func (g *game) Layout(int, int) (int, int) {
	return g.w.width, g.w.height
}
