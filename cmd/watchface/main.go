// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Command watchface shows an analog watch face.
//
// Usage:
//
//	watchface [flags]
//
// Settings are read from watchface.yaml when it exists; flags override the
// file. With -once a single frame is rendered (at -at, or now) and the
// command exits; otherwise it runs until interrupted.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/gogpu/watchface"
	"github.com/gogpu/watchface/assets"
	"github.com/gogpu/watchface/internal/config"
	"github.com/gogpu/watchface/internal/statsview"
)

type flags struct {
	config  string
	mode    string
	at      string
	present string
	output  string
	once    bool
	log     string
}

func main() {
	var f flags
	flag.StringVar(&f.config, "config", config.FileName, "configuration file")
	flag.StringVar(&f.mode, "mode", "", "initial mode: active or ambient")
	flag.StringVar(&f.at, "at", "", "render this time of day instead of now (HH:MM[:SS[.mmm]])")
	flag.StringVar(&f.present, "present", "", "presenter: png, window, gpu, term or none")
	flag.StringVar(&f.output, "o", "", "output file for the png presenter (%d numbers frames)")
	flag.BoolVar(&f.once, "once", false, "render a single frame and exit")
	flag.StringVar(&f.log, "log", "", "log level: debug, info, warn or error")
	flag.Parse()

	if err := run(f); err != nil {
		fmt.Fprintf(os.Stderr, "watchface: %v\n", err)
		os.Exit(1)
	}
}

func run(f flags) error {
	cfg, err := config.LoadOptional(f.config)
	if err != nil {
		return err
	}
	override(cfg, f)
	r, err := cfg.Resolve()
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: r.LogLevel}))
	watchface.SetLogger(logger)
	defer watchface.SetLogger(nil)

	stop := statsview.Launch()
	defer stop()

	backgrounds, err := loadBackgrounds(r)
	if err != nil {
		logger.Warn("continuing without some background art", "err", err)
	}
	opts := []watchface.Option{
		watchface.WithBackgrounds(backgrounds),
		watchface.WithSize(r.Width, r.Height),
	}

	if f.once {
		at := time.Now()
		if f.at != "" {
			if at, err = parseAt(f.at); err != nil {
				return err
			}
		}
		return renderOnce(r, opts, at)
	}
	if f.at != "" {
		return errors.New("-at needs -once")
	}
	return serve(r, opts)
}

// loadBackgrounds loads the art of both modes at the dial size. Art is
// never scaled to a larger canvas: its center must stay on the needle
// pivot at (Radius, Radius).
func loadBackgrounds(r *config.Resolved) (watchface.Backgrounds, error) {
	return assets.LoadSet(r.Assets, watchface.CanvasSize)
}

// override copies the flags that were set on the command line into cfg.
func override(cfg *config.Config, f flags) {
	flag.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "mode":
			cfg.Mode = f.mode
		case "present":
			cfg.Present = f.present
		case "o":
			cfg.Output = f.output
		case "log":
			cfg.Log.Level = f.log
		}
	})
}

var atLayouts = []string{"15:04:05.000", "15:04:05", "15:04"}

// parseAt parses a time of day.
func parseAt(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range atLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("-at: cannot parse %q as HH:MM[:SS[.mmm]]", s)
}
