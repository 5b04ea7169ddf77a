// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package watchface

import "errors"

var (
	// ErrUnknownMode is returned when a render is requested for a mode that
	// has no style. Nothing is drawn.
	ErrUnknownMode = errors.New("watchface: unknown render mode")

	// ErrClosed is returned by Render after the RenderContext was closed.
	ErrClosed = errors.New("watchface: render context is closed")
)
