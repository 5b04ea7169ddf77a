// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package png presents frames as PNG files.
package png

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/watchface"
)

// Writer encodes every presented frame to a PNG file.
//
// When Path contains a %d verb each frame gets its own file numbered from
// zero; otherwise every frame replaces the previous file. Files are written
// to a temporary name and renamed, so a reader never sees a partial image.
type Writer struct {
	Path string

	n   int
	enc png.Encoder
}

// New returns a Writer for path.
func New(path string) *Writer {
	return &Writer{Path: path, enc: png.Encoder{CompressionLevel: png.BestSpeed}}
}

// Present implements present.Presenter.
func (w *Writer) Present(f watchface.Frame) error {
	path := w.Path
	if strings.Contains(path, "%d") {
		path = fmt.Sprintf(path, w.n)
	}
	w.n++

	if err := w.write(path, f); err != nil {
		return fmt.Errorf("png: %w", err)
	}
	watchface.Logger().Debug("png: frame written", "path", path)
	return nil
}

func (w *Writer) write(path string, f watchface.Frame) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".frame-*.png")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	success := false
	defer func() {
		if !success {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if err := w.enc.Encode(tmp, f.Image()); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}
	success = true
	return nil
}
