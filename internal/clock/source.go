// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package clock

import (
	"context"
	"sync"
	"time"

	"github.com/gogpu/watchface"
)

// Tick is one render request: a fresh sample and the mode to draw it in.
type Tick struct {
	At     time.Time
	Sample watchface.TimeSample
	Mode   watchface.RenderMode
}

// Interval returns the tick cadence of mode.
func Interval(mode watchface.RenderMode) time.Duration {
	if mode == watchface.Ambient {
		return time.Minute
	}
	return time.Second
}

// Option configures a Source.
type Option func(*Source)

// WithMode sets the mode the source starts in.
func WithMode(mode watchface.RenderMode) Option {
	return func(s *Source) { s.mode = mode }
}

// WithAmbientAfter makes the source enter Ambient mode by itself once it
// has been Active for d. Zero disables the timeout.
func WithAmbientAfter(d time.Duration) Option {
	return func(s *Source) { s.ambientAfter = d }
}

// WithResolution sets how often Run samples the clock. Ticks are still
// emitted only on second (Active) or minute (Ambient) boundaries.
func WithResolution(d time.Duration) Option {
	return func(s *Source) {
		if d > 0 {
			s.resolution = d
		}
	}
}

// Source emits ticks at the cadence of the current mode and carries the
// mode-change signal. Poll and SetAmbient are safe for concurrent use.
type Source struct {
	clock        Clock
	resolution   time.Duration
	ambientAfter time.Duration
	changed      chan struct{}

	mu          sync.Mutex
	mode        watchface.RenderMode
	last        time.Time // time of the last emitted tick, zero forces a tick
	activeSince time.Time
}

// NewSource returns a source reading c, starting in Active mode.
func NewSource(c Clock, opts ...Option) *Source {
	s := &Source{
		clock:      c,
		resolution: 100 * time.Millisecond,
		changed:    make(chan struct{}, 1),
		mode:       watchface.Active,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.activeSince = c.Now()
	return s
}

// Mode returns the current mode.
func (s *Source) Mode() watchface.RenderMode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

// SetAmbient is the ambient-mode-changed signal. A change switches the
// cadence and makes the next Poll emit a tick in the new mode right away.
func (s *Source) SetAmbient(ambient bool) {
	mode := watchface.Active
	if ambient {
		mode = watchface.Ambient
	}

	s.mu.Lock()
	changed := s.setModeLocked(mode, s.clock.Now())
	s.mu.Unlock()

	if changed {
		select {
		case s.changed <- struct{}{}:
		default:
		}
	}
}

func (s *Source) setModeLocked(mode watchface.RenderMode, now time.Time) bool {
	if s.mode == mode {
		return false
	}
	s.mode = mode
	s.last = time.Time{}
	if mode == watchface.Active {
		s.activeSince = now
	}
	watchface.Logger().Info("clock: mode changed", "mode", mode)
	return true
}

// Poll returns a tick when now has crossed the cadence boundary of the
// current mode since the last emitted tick, or when the mode just changed.
// Hosts that own their frame loop call Poll once per frame.
func (s *Source) Poll(now time.Time) (Tick, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.mode == watchface.Active && s.ambientAfter > 0 && now.Sub(s.activeSince) >= s.ambientAfter {
		s.setModeLocked(watchface.Ambient, now)
	}

	step := Interval(s.mode)
	if !s.last.IsZero() && now.Truncate(step).Equal(s.last.Truncate(step)) {
		return Tick{}, false
	}
	s.last = now
	return Tick{At: now, Sample: watchface.FromTime(now), Mode: s.mode}, true
}

// Run emits ticks on out until ctx is done, and returns ctx.Err().
// The first tick is emitted immediately.
func (s *Source) Run(ctx context.Context, out chan<- Tick) error {
	t := s.clock.NewTicker(s.resolution)
	defer t.Stop()

	emit := func(now time.Time) error {
		tick, ok := s.Poll(now)
		if !ok {
			return nil
		}
		select {
		case out <- tick:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	if err := emit(s.clock.Now()); err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-t.C():
			if err := emit(now); err != nil {
				return err
			}
		case <-s.changed:
			if err := emit(s.clock.Now()); err != nil {
				return err
			}
		}
	}
}
