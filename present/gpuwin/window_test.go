// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpuwin

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

func TestLoopQuitsOnCancel(t *testing.T) {
	var quits atomic.Int32
	l := newLoop(func() { quits.Add(1) })

	ctx, cancel := context.WithCancel(context.Background())
	stop := l.watch(ctx)
	defer stop()

	cancel()
	deadline := time.Now().Add(5 * time.Second)
	for quits.Load() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("app not asked to quit after cancel")
		}
		time.Sleep(time.Millisecond)
	}
	if err := l.result(); err != nil {
		t.Errorf("result() = %v, want nil on cancel", err)
	}
}

func TestLoopStopWatching(t *testing.T) {
	var quits atomic.Int32
	l := newLoop(func() { quits.Add(1) })

	ctx, cancel := context.WithCancel(context.Background())
	l.watch(ctx)()
	cancel()
	time.Sleep(10 * time.Millisecond)
	if n := quits.Load(); n != 0 {
		t.Errorf("quit called %d times after stop", n)
	}
}

func TestLoopFailQuitsOnce(t *testing.T) {
	var quits int
	l := newLoop(func() { quits++ })

	first := errors.New("session: unknown mode")
	l.fail(first)
	l.fail(errors.New("later"))

	if !l.failed() || !errors.Is(l.result(), first) {
		t.Errorf("result() = %v, want %v", l.result(), first)
	}
	if quits != 1 {
		t.Errorf("quit called %d times, want 1", quits)
	}
}
