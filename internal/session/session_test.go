// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package session

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/draw"
	"testing"
	"time"

	"github.com/gogpu/watchface"
	"github.com/gogpu/watchface/internal/clock"
	"github.com/gogpu/watchface/present"
)

type recorder struct {
	frames []watchface.Frame
	err    error
}

func (r *recorder) Present(f watchface.Frame) error {
	r.frames = append(r.frames, f.Clone())
	return r.err
}

func solid(c color.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, watchface.CanvasSize, watchface.CanvasSize))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: c}, image.Point{}, draw.Src)
	return img
}

// newSession builds a session with art for both modes, so every render
// repaints the whole canvas.
func newSession(t *testing.T, out present.Presenter) *Session {
	t.Helper()
	rc := watchface.New(watchface.WithBackgrounds(watchface.Backgrounds{
		watchface.Active:  solid(color.Gray{Y: 230}),
		watchface.Ambient: solid(color.Gray{Y: 20}),
	}))
	s := New(rc, out)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestStartRendersActive(t *testing.T) {
	rec := &recorder{}
	s := newSession(t, rec)

	if err := s.Start(time.Date(2026, 1, 1, 3, 0, 0, 0, time.UTC)); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if len(rec.frames) != 1 || s.Renders() != 1 {
		t.Fatalf("presented %d frames, Renders() = %d", len(rec.frames), s.Renders())
	}
	if !rec.frames[0].Changed() {
		t.Error("start frame has empty damage")
	}
}

func TestHandleSkipsInvalidSample(t *testing.T) {
	rec := &recorder{}
	s := newSession(t, rec)

	err := s.Handle(clock.Tick{Sample: watchface.TimeSample{Hour: 99}, Mode: watchface.Active})
	if err != nil {
		t.Fatalf("Handle() error = %v", err)
	}
	if len(rec.frames) != 0 {
		t.Errorf("invalid sample presented %d frames", len(rec.frames))
	}
}

func TestHandleUnknownMode(t *testing.T) {
	s := newSession(t, &recorder{})
	err := s.Handle(clock.Tick{Mode: watchface.RenderMode(3)})
	if !errors.Is(err, watchface.ErrUnknownMode) {
		t.Errorf("Handle() error = %v, want ErrUnknownMode", err)
	}
}

func TestHandleSurvivesPresenterError(t *testing.T) {
	rec := &recorder{err: errors.New("display gone")}
	s := newSession(t, rec)

	for i := 0; i < 3; i++ {
		tick := clock.Tick{Sample: watchface.TimeSample{Second: i}, Mode: watchface.Active}
		if err := s.Handle(tick); err != nil {
			t.Fatalf("Handle() error = %v", err)
		}
	}
	if len(rec.frames) != 3 {
		t.Errorf("presented %d frames, want 3", len(rec.frames))
	}
}

func TestRunUntilTicksClosed(t *testing.T) {
	rec := &recorder{}
	s := newSession(t, rec)

	ticks := make(chan clock.Tick, 3)
	ticks <- clock.Tick{Sample: watchface.TimeSample{Hour: 9, Minute: 15, Second: 59, Millisecond: 999}, Mode: watchface.Ambient}
	ticks <- clock.Tick{Sample: watchface.TimeSample{Hour: 9, Minute: 15}, Mode: watchface.Ambient}
	ticks <- clock.Tick{Sample: watchface.TimeSample{Hour: 9, Minute: 15, Second: 30}, Mode: watchface.Active}
	close(ticks)

	if err := s.Run(context.Background(), ticks); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(rec.frames) != 3 {
		t.Fatalf("presented %d frames, want 3", len(rec.frames))
	}
	if !bytes.Equal(rec.frames[0].Pix, rec.frames[1].Pix) {
		t.Error("ambient frames of the same minute differ")
	}
	if bytes.Equal(rec.frames[1].Pix, rec.frames[2].Pix) {
		t.Error("active frame equals ambient frame")
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	s := newSession(t, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := s.Run(ctx, make(chan clock.Tick)); err != nil {
		t.Errorf("Run() = %v, want nil", err)
	}
}

func TestMultiPresenter(t *testing.T) {
	a, b := &recorder{err: errors.New("a failed")}, &recorder{}
	s := newSession(t, present.Multi{a, b})
	if err := s.Start(time.Now()); err != nil {
		t.Fatal(err)
	}
	if len(a.frames) != 1 || len(b.frames) != 1 {
		t.Errorf("frames a=%d b=%d, want 1 each", len(a.frames), len(b.frames))
	}
}
