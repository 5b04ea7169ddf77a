// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package term draws frames in a terminal with half-block characters.
package term

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/gogpu/watchface"
)

const (
	halfBlock   = "▀"
	cursorHome  = "\x1b[H"
	defaultCols = 60
)

// Writer renders each frame as text on an io.Writer. Every character cell
// covers two rows of samples: the upper one in the foreground color and
// the lower one in the background color.
type Writer struct {
	w        io.Writer
	renderer *lipgloss.Renderer

	// Cols is the number of character columns a frame is scaled to.
	Cols int

	// Home moves the cursor to the top-left corner before each frame so
	// the face is redrawn in place.
	Home bool
}

// New returns a Writer for w. The color profile is detected from w.
func New(w io.Writer) *Writer {
	return &Writer{w: w, renderer: lipgloss.NewRenderer(w), Cols: defaultCols}
}

// Present implements present.Presenter.
func (tw *Writer) Present(f watchface.Frame) error {
	var b strings.Builder
	if tw.Home {
		b.WriteString(cursorHome)
	}
	tw.render(&b, f)
	if _, err := io.WriteString(tw.w, b.String()); err != nil {
		return fmt.Errorf("term: %w", err)
	}
	return nil
}

func (tw *Writer) render(b *strings.Builder, f watchface.Frame) {
	cols := tw.Cols
	if cols <= 0 {
		cols = defaultCols
	}
	cell := max((f.Width+cols-1)/cols, 1)
	cols = f.Width / cell
	rows := f.Height / cell

	for y := 0; y+1 < rows; y += 2 {
		for x := 0; x < cols; x++ {
			top := average(f, x*cell, y*cell, cell)
			bottom := average(f, x*cell, (y+1)*cell, cell)
			style := tw.renderer.NewStyle().
				Foreground(lipgloss.Color(top)).
				Background(lipgloss.Color(bottom))
			b.WriteString(style.Render(halfBlock))
		}
		b.WriteByte('\n')
	}
}

// average returns the mean color of the n x n block at (x0, y0),
// composited over black, as a #rrggbb string.
func average(f watchface.Frame, x0, y0, n int) string {
	var r, g, bl int
	for y := y0; y < y0+n; y++ {
		row := y * f.Stride
		for x := x0; x < x0+n; x++ {
			i := row + x*4
			r += int(f.Pix[i])
			g += int(f.Pix[i+1])
			bl += int(f.Pix[i+2])
		}
	}
	k := n * n
	return fmt.Sprintf("#%02x%02x%02x", r/k, g/k, bl/k)
}
