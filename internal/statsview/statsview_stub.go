// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build !statsview

package statsview

// Launch does nothing without the statsview build tag.
func Launch() (stop func()) {
	return func() {}
}

// Available reports whether Launch starts a server.
func Available() bool {
	return false
}
