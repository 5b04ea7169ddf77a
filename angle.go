// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package watchface

import "math"

// HourAngle returns the hour needle angle in radians. The needle moves
// continuously with the minutes; 12 and 0 o'clock are both angle 0.
func HourAngle(hour, minute int) float64 {
	return math.Pi * (float64(hour%12) + float64(minute)/60) / 6
}

// MinuteAngle returns the minute needle angle in radians, moving
// continuously with the seconds.
func MinuteAngle(minute, second int) float64 {
	return math.Pi * (float64(minute) + float64(second)/60) / 30
}

// SecondAngle returns the second needle angle in radians, moving
// continuously with the milliseconds.
func SecondAngle(second, millisecond int) float64 {
	return math.Pi * (float64(second) + float64(millisecond)/1000) / 30
}

// NeedleAngles are the rotations applied for one render.
type NeedleAngles struct {
	Hour   float64
	Minute float64
	Second float64

	// HasSecond is false when the mode does not draw the second needle;
	// Second is then zero.
	HasSecond bool
}

// Angles computes the needle rotations for sample in mode.
// In modes without NeedleMinuteSweep the seconds do not reach the minute
// needle, so ambient renders are identical across a whole minute.
func Angles(sample TimeSample, mode RenderMode) (NeedleAngles, error) {
	style, err := StyleFor(mode)
	if err != nil {
		return NeedleAngles{}, err
	}
	return style.angles(sample), nil
}

func (st Style) angles(s TimeSample) NeedleAngles {
	a := NeedleAngles{Hour: HourAngle(s.Hour, s.Minute)}

	if st.Needles.Has(NeedleMinuteSweep) {
		a.Minute = MinuteAngle(s.Minute, s.Second)
	} else {
		a.Minute = MinuteAngle(s.Minute, 0)
	}

	if st.Needles.Has(NeedleSecond) {
		a.Second = SecondAngle(s.Second, s.Millisecond)
		a.HasSecond = true
	}
	return a
}
