// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gogpu/watchface"
	"github.com/gogpu/watchface/internal/clock"
	"github.com/gogpu/watchface/internal/config"
	"github.com/gogpu/watchface/internal/session"
	"github.com/gogpu/watchface/present"
	"github.com/gogpu/watchface/present/gpuwin"
	"github.com/gogpu/watchface/present/png"
	"github.com/gogpu/watchface/present/term"
	"github.com/gogpu/watchface/present/window"
)

const title = "Watch Face"

// renderOnce renders a single frame at t in the configured mode.
func renderOnce(r *config.Resolved, opts []watchface.Option, t time.Time) error {
	p, err := streamPresenter(r)
	if err != nil {
		return err
	}

	rc := watchface.New(opts...)
	defer rc.Close()

	sample := watchface.FromTime(t)
	frame, err := watchface.Render(rc, &sample, r.Mode)
	if err != nil {
		return err
	}
	watchface.Logger().Info("rendered", "sample", sample, "mode", r.Mode)
	return p.Present(frame)
}

// streamPresenter returns the presenter for the non-window outputs.
func streamPresenter(r *config.Resolved) (present.Presenter, error) {
	switch r.Present {
	case config.PresentPNG:
		return png.New(r.Output), nil
	case config.PresentTerm:
		tw := term.New(os.Stdout)
		tw.Home = true
		return tw, nil
	case config.PresentNone:
		return present.Discard, nil
	default:
		return nil, fmt.Errorf("presenter %q cannot render a single frame", r.Present)
	}
}

func newSource(r *config.Resolved) *clock.Source {
	return clock.NewSource(clock.System(),
		clock.WithMode(r.Mode),
		clock.WithAmbientAfter(r.AmbientAfter))
}

// serve runs until interrupted.
func serve(r *config.Resolved, opts []watchface.Option) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	switch r.Present {
	case config.PresentWindow:
		return serveWindow(ctx, r, opts)
	case config.PresentGPU:
		return serveGPU(ctx, r, opts)
	}

	p, err := streamPresenter(r)
	if err != nil {
		return err
	}
	sess := session.New(watchface.New(opts...), p)
	defer sess.Close()
	if err := sess.Start(time.Now()); err != nil {
		return err
	}

	src := newSource(r)
	ticks := make(chan clock.Tick)
	go func() {
		_ = src.Run(ctx, ticks)
	}()
	return sess.Run(ctx, ticks)
}

// serveWindow drives the session from the ebiten update loop. Losing the
// window focus is the ambient signal.
func serveWindow(ctx context.Context, r *config.Resolved, opts []watchface.Option) error {
	rc := watchface.New(opts...)
	w := window.New(title, rc.Width(), rc.Height())
	sess := session.New(rc, w)
	defer sess.Close()

	src := newSource(r)
	w.Focus = func(focused bool) { src.SetAmbient(!focused) }
	w.Step = func() error {
		if tick, ok := src.Poll(time.Now()); ok {
			return sess.Handle(tick)
		}
		return nil
	}

	if err := sess.Start(time.Now()); err != nil {
		return err
	}
	go func() {
		<-ctx.Done()
		w.Close()
	}()
	return w.Run()
}

// serveGPU renders into a GPU canvas shown by gogpu until ctx is done.
func serveGPU(ctx context.Context, r *config.Resolved, opts []watchface.Option) error {
	src := newSource(r)
	var sess *session.Session

	w := &gpuwin.Window{
		Title:   title,
		Options: opts,
		Start: func(s *gpuwin.Surface) error {
			sess = session.New(s.RenderContext(), s)
			return sess.Start(time.Now())
		},
		Step: func() error {
			if tick, ok := src.Poll(time.Now()); ok {
				return sess.Handle(tick)
			}
			return nil
		},
	}
	return w.Run(ctx)
}
