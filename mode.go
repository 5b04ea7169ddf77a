// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package watchface

import (
	"fmt"
	"strings"
)

// RenderMode selects the palette and needle set used for a render.
type RenderMode uint8

const (
	// Active is the normal, full-fidelity mode updated every second.
	Active RenderMode = iota

	// Ambient is the low-power mode updated once per minute.
	Ambient

	numModes
)

// Modes lists every valid RenderMode in declaration order.
var Modes = [...]RenderMode{Active, Ambient}

// String returns the lower-case mode name.
func (m RenderMode) String() string {
	switch m {
	case Active:
		return "active"
	case Ambient:
		return "ambient"
	default:
		return fmt.Sprintf("RenderMode(%d)", uint8(m))
	}
}

// Valid reports whether m is a known mode.
func (m RenderMode) Valid() bool {
	return m < numModes
}

// ParseRenderMode parses a mode name as returned by String.
func ParseRenderMode(s string) (RenderMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "active", "":
		return Active, nil
	case "ambient":
		return Ambient, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// NeedleSet is the set of indicators a mode draws.
type NeedleSet uint8

// Indicators.
const (
	NeedleHour NeedleSet = 1 << iota
	NeedleMinute
	NeedleSecond
	NeedlePivot

	// NeedleMinuteSweep lets the minute needle follow seconds. Without it
	// the minute needle only moves on whole minutes.
	NeedleMinuteSweep
)

// Has reports whether all indicators in o are part of s.
func (s NeedleSet) Has(o NeedleSet) bool {
	return s&o == o
}

// Style is what a RenderMode selects: one palette and one needle set.
type Style struct {
	Palette Palette
	Needles NeedleSet
}

var styles = [numModes]Style{
	Active: {
		Palette: ActivePalette,
		Needles: NeedleHour | NeedleMinute | NeedleSecond | NeedlePivot | NeedleMinuteSweep,
	},
	Ambient: {
		Palette: AmbientPalette,
		Needles: NeedleHour | NeedleMinute,
	},
}

// StyleFor returns the style of mode, or ErrUnknownMode.
func StyleFor(mode RenderMode) (Style, error) {
	if !mode.Valid() {
		return Style{}, fmt.Errorf("%w: %v", ErrUnknownMode, mode)
	}
	return styles[mode], nil
}
