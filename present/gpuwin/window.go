// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpuwin

import (
	"context"
	"fmt"
	"sync"

	"github.com/gogpu/gg"
	_ "github.com/gogpu/gg/gpu" // Register GPU accelerator
	"github.com/gogpu/gogpu"

	"github.com/gogpu/watchface"
)

// Window runs a gogpu application showing one Surface.
type Window struct {
	Title   string
	Options []watchface.Option

	// Start is called once, on the first frame, when the surface exists.
	// It typically builds the session and draws the initial frame.
	Start func(s *Surface) error

	// Step is called on every frame before the canvas is drawn.
	Step func() error
}

// Run opens the window and blocks until it is closed, ctx is done, or
// Start or Step fails. It must be called from the main goroutine.
func (w *Window) Run(ctx context.Context) error {
	app := gogpu.NewApp(gogpu.DefaultConfig().
		WithTitle(w.Title).
		WithSize(watchface.CanvasSize, watchface.CanvasSize).
		WithContinuousRender(true))

	l := newLoop(app.Quit)
	defer l.watch(ctx)()

	var surface *Surface
	log := watchface.Logger()

	app.OnDraw(func(dc *gogpu.Context) {
		if l.failed() {
			return
		}
		if surface == nil {
			provider := app.GPUContextProvider()
			if provider == nil {
				return
			}
			s, err := NewSurface(provider, w.Options...)
			if err != nil {
				l.fail(err)
				return
			}
			surface = s
			log.Info("gpuwin: surface created", "width", dc.Width(), "height", dc.Height())
			if w.Start != nil {
				if err := w.Start(surface); err != nil {
					l.fail(fmt.Errorf("gpuwin: start: %w", err))
					return
				}
			}
		}

		if w.Step != nil {
			if err := w.Step(); err != nil {
				l.fail(fmt.Errorf("gpuwin: step: %w", err))
				return
			}
		}
		if err := surface.RenderTo(dc.AsTextureDrawer()); err != nil {
			log.Warn("gpuwin: draw failed", "err", err)
		}
	})

	app.OnClose(func() {
		if surface != nil {
			_ = surface.Close()
		}
		if a := gg.Accelerator(); a != nil {
			a.Close()
		}
	})

	if err := app.Run(); err != nil {
		return fmt.Errorf("gpuwin: %w", err)
	}
	return l.result()
}

// loop tracks why the window should close and asks the app to quit.
type loop struct {
	quit func()

	mu  sync.Mutex
	err error
}

func newLoop(quit func()) *loop {
	return &loop{quit: quit}
}

// watch quits the app once ctx is done. The returned function stops
// watching.
func (l *loop) watch(ctx context.Context) (stop func()) {
	cancel := context.AfterFunc(ctx, func() {
		watchface.Logger().Info("gpuwin: closing", "reason", context.Cause(ctx))
		l.quit()
	})
	return func() { cancel() }
}

// fail records the first error and quits the app.
func (l *loop) fail(err error) {
	l.mu.Lock()
	first := l.err == nil
	if first {
		l.err = err
	}
	l.mu.Unlock()

	if first {
		watchface.Logger().Error("gpuwin: closing on error", "err", err)
		l.quit()
	}
}

func (l *loop) failed() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.err != nil
}

func (l *loop) result() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.err
}
