// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package present

import (
	"sync"

	"github.com/gogpu/watchface"
)

// Latest keeps a private copy of the most recent frame for hosts that draw
// on their own goroutine. Present and Take are safe for concurrent use.
type Latest struct {
	mu    sync.Mutex
	frame watchface.Frame
	dirty bool
}

// Present copies f, reusing the previous buffer when it is large enough.
func (l *Latest) Present(f watchface.Frame) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	pix := l.frame.Pix[:0]
	l.frame = f
	l.frame.Pix = append(pix, f.Pix...)
	l.dirty = true
	return nil
}

// Take calls fn with the stored frame if it changed since the last Take
// and reports whether it did. fn must not retain the frame.
func (l *Latest) Take(fn func(f watchface.Frame)) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.dirty {
		return false
	}
	l.dirty = false
	fn(l.frame)
	return true
}
