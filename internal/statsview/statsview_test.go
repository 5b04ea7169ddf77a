// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build !statsview

package statsview

import "testing"

func TestLaunchWithoutTag(t *testing.T) {
	if Available() {
		t.Fatal("Available() = true without the statsview tag")
	}
	stop := Launch()
	stop()
}
