// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package watchface

import (
	"fmt"
	"time"
)

// TimeSample is a wall-clock reading delivered by the clock source.
// The renderer never retains or mutates it.
type TimeSample struct {
	Hour        int // 0-23
	Minute      int // 0-59
	Second      int // 0-59
	Millisecond int // 0-999
}

// FromTime extracts a sample from t in t's location.
func FromTime(t time.Time) TimeSample {
	h, m, s := t.Clock()
	return TimeSample{
		Hour:        h,
		Minute:      m,
		Second:      s,
		Millisecond: t.Nanosecond() / int(time.Millisecond),
	}
}

// Valid reports whether every field is within its range.
func (s TimeSample) Valid() bool {
	return s.Hour >= 0 && s.Hour < 24 &&
		s.Minute >= 0 && s.Minute < 60 &&
		s.Second >= 0 && s.Second < 60 &&
		s.Millisecond >= 0 && s.Millisecond < 1000
}

func (s TimeSample) String() string {
	return fmt.Sprintf("%02d:%02d:%02d.%03d", s.Hour, s.Minute, s.Second, s.Millisecond)
}
