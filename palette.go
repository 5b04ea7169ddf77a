// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package watchface

import "github.com/gogpu/gg"

// Palette holds the fixed colors of one render mode.
// Second is unused by modes that do not draw the second needle.
type Palette struct {
	Hour   gg.RGBA // hour and minute needles
	Second gg.RGBA // second needle, counterweight and pivot
	Ring1  gg.RGBA // radius-2 center ring
	Ring2  gg.RGBA // radius-1 center dot
}

var (
	// ActivePalette is a dark needle set on a light face with a red second hand.
	ActivePalette = Palette{
		Hour:   gg.RGB(0.19, 0.19, 0.19),
		Second: gg.RGB(0.745, 0.0, 0.062),
		Ring1:  gg.RGB(0.733, 0.733, 0.733),
		Ring2:  gg.RGB(0, 0, 0),
	}

	// AmbientPalette uses light needles on a dark face.
	AmbientPalette = Palette{
		Hour:  gg.RGB(0.86, 0.86, 0.86),
		Ring1: gg.RGB(0.733, 0.733, 0.733),
		Ring2: gg.RGB(0, 0, 0),
	}
)
