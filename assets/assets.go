// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package assets provides the background art of the watch face.
//
// Art comes either from image files (PNG, JPEG, GIF, WebP, BMP) scaled to
// the canvas, or from [Dial], which draws a plain default face with gg.
// Load failures are reported once, here, at session start; the renderer
// never re-checks art per frame.
package assets

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"os"

	_ "golang.org/x/image/bmp" // register BMP decoder
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // register WebP decoder

	"github.com/gogpu/watchface"
)

// Paths names the art file of each mode. An empty path selects the
// procedural default dial for that mode.
type Paths struct {
	Active  string
	Ambient string
}

// For returns the path configured for mode.
func (p Paths) For(mode watchface.RenderMode) string {
	switch mode {
	case watchface.Ambient:
		return p.Ambient
	default:
		return p.Active
	}
}

// LoadError reports a background that could not be loaded.
type LoadError struct {
	Mode watchface.RenderMode
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("assets: %s background %q: %v", e.Mode, e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Load decodes the image at path and scales it to width x height when its
// size differs.
func Load(path string, width, height int) (image.Image, error) {
	f, err := os.Open(path) //nolint:gosec // path comes from configuration
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	watchface.Logger().Debug("assets: decoded", "path", path, "format", format, "bounds", img.Bounds())

	return Fit(img, width, height), nil
}

// Fit returns img unchanged when it is already width x height with its
// origin at (0, 0), and a CatmullRom-scaled copy otherwise.
func Fit(img image.Image, width, height int) image.Image {
	target := image.Rect(0, 0, width, height)
	if img.Bounds() == target {
		return img
	}
	dst := image.NewRGBA(target)
	xdraw.CatmullRom.Scale(dst, target, img, img.Bounds(), xdraw.Src, nil)
	return dst
}

// LoadSet loads the art of every mode for a size x size canvas. A mode
// without a path gets the default Dial. Each failure is logged once and
// joined into the returned error; the modes that did load are returned
// regardless, so a caller can continue in a degraded state.
func LoadSet(paths Paths, size int) (watchface.Backgrounds, error) {
	bgs := watchface.Backgrounds{}
	var errs []error

	for _, mode := range watchface.Modes {
		path := paths.For(mode)
		if path == "" {
			bgs[mode] = Dial(mode, size)
			continue
		}
		img, err := Load(path, size, size)
		if err != nil {
			lerr := &LoadError{Mode: mode, Path: path, Err: err}
			watchface.Logger().Warn("assets: could not create background image", "mode", mode, "path", path, "err", err)
			errs = append(errs, lerr)
			continue
		}
		bgs[mode] = img
	}
	return bgs, errors.Join(errs...)
}
