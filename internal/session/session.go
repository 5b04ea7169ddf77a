// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package session ties the tick source, the renderer and the presenters
// together for the lifetime of one display surface.
package session

import (
	"context"
	"fmt"
	"time"

	"github.com/gogpu/watchface"
	"github.com/gogpu/watchface/internal/clock"
	"github.com/gogpu/watchface/present"
)

// Session owns the render context of a display session. Renders are
// strictly sequential: Handle must not be called concurrently, and Run
// consumes ticks on the calling goroutine only.
type Session struct {
	rc  *watchface.RenderContext
	out present.Presenter

	renders int
}

// New returns a session rendering with rc and handing frames to out.
func New(rc *watchface.RenderContext, out present.Presenter) *Session {
	if out == nil {
		out = present.Discard
	}
	return &Session{rc: rc, out: out}
}

// Renders returns the number of frames handed to the presenter.
func (s *Session) Renders() int { return s.renders }

// Start draws the first frame, in Active mode at now, as soon as the
// display surface exists.
func (s *Session) Start(now time.Time) error {
	watchface.Logger().Info("session: started", "width", s.rc.Width(), "height", s.rc.Height())
	return s.Handle(clock.Tick{At: now, Sample: watchface.FromTime(now), Mode: watchface.Active})
}

// Handle renders one tick and presents the result. Presenter failures are
// logged and swallowed so the display keeps updating; a renderer contract
// violation (unknown mode, closed context) is returned.
func (s *Session) Handle(tick clock.Tick) error {
	f, err := watchface.Render(s.rc, &tick.Sample, tick.Mode)
	if err != nil {
		return fmt.Errorf("session: %w", err)
	}
	if !f.Changed() {
		return nil
	}
	s.renders++
	if err := s.out.Present(f); err != nil {
		watchface.Logger().Warn("session: present failed", "mode", tick.Mode, "sample", tick.Sample, "err", err)
	}
	return nil
}

// Run handles ticks until ctx is done or ticks is closed. It returns nil in
// both cases and the first Handle error otherwise.
func (s *Session) Run(ctx context.Context, ticks <-chan clock.Tick) error {
	for {
		select {
		case <-ctx.Done():
			watchface.Logger().Info("session: stopped", "renders", s.renders)
			return nil
		case tick, ok := <-ticks:
			if !ok {
				watchface.Logger().Info("session: tick source closed", "renders", s.renders)
				return nil
			}
			if err := s.Handle(tick); err != nil {
				return err
			}
		}
	}
}

// Close releases the render context.
func (s *Session) Close() error {
	return s.rc.Close()
}
