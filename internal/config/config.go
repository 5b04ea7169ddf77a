// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package config reads the optional watchface.yaml host configuration.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/watchface"
	"github.com/gogpu/watchface/assets"
)

// FileName is the configuration file looked up by default.
const FileName = "watchface.yaml"

// Presenter names accepted in the present field.
const (
	PresentPNG    = "png"
	PresentWindow = "window"
	PresentGPU    = "gpu"
	PresentTerm   = "term"
	PresentNone   = "none"
)

var presenters = []string{PresentPNG, PresentWindow, PresentGPU, PresentTerm, PresentNone}

// Config represents the optional watchface.yaml configuration.
type Config struct {
	Assets       AssetsConfig  `yaml:"assets"`
	Mode         string        `yaml:"mode,omitempty"`
	AmbientAfter time.Duration `yaml:"ambient_after,omitempty"`
	Present      string        `yaml:"present,omitempty"`
	Output       string        `yaml:"output,omitempty"`
	Log          LogConfig     `yaml:"log"`
	Size         SizeConfig    `yaml:"size"`

	dir string
}

// AssetsConfig holds the background art paths, relative to the file.
type AssetsConfig struct {
	Active  string `yaml:"active,omitempty"`
	Ambient string `yaml:"ambient,omitempty"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level string `yaml:"level,omitempty"`
}

// SizeConfig is the canvas size in pixels.
type SizeConfig struct {
	Width  int `yaml:"width,omitempty"`
	Height int `yaml:"height,omitempty"`
}

// Resolved contains validated configuration values with defaults applied.
type Resolved struct {
	Assets       assets.Paths
	Mode         watchface.RenderMode
	AmbientAfter time.Duration
	Present      string
	Output       string
	LogLevel     slog.Level
	Width        int
	Height       int
}

// LoadOptional reads the file at path if present. A missing file yields an
// empty Config.
func LoadOptional(path string) (*Config, error) {
	cfg := &Config{dir: filepath.Dir(path)}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// Resolve validates cfg and fills in defaults.
func (c *Config) Resolve() (*Resolved, error) {
	mode, err := watchface.ParseRenderMode(strings.TrimSpace(c.Mode))
	if err != nil {
		return nil, fmt.Errorf("mode: %w", err)
	}

	present := strings.ToLower(strings.TrimSpace(c.Present))
	if present == "" {
		present = PresentWindow
	}
	if !valid(present) {
		return nil, fmt.Errorf("present: unknown presenter %q (want one of %s)", c.Present, strings.Join(presenters, ", "))
	}

	level, err := parseLevel(c.Log.Level)
	if err != nil {
		return nil, err
	}

	if c.AmbientAfter < 0 {
		return nil, fmt.Errorf("ambient_after: negative duration %v", c.AmbientAfter)
	}

	r := &Resolved{
		Assets: assets.Paths{
			Active:  c.path(c.Assets.Active),
			Ambient: c.path(c.Assets.Ambient),
		},
		Mode:         mode,
		AmbientAfter: c.AmbientAfter,
		Present:      present,
		Output:       c.Output,
		LogLevel:     level,
		Width:        c.Size.Width,
		Height:       c.Size.Height,
	}
	if r.Output == "" {
		r.Output = "watchface.png"
	}
	if r.Width <= 0 || r.Height <= 0 {
		r.Width, r.Height = watchface.CanvasSize, watchface.CanvasSize
	}
	return r, nil
}

// path resolves p relative to the directory of the configuration file.
func (c *Config) path(p string) string {
	p = strings.TrimSpace(p)
	if p == "" || filepath.IsAbs(p) || c.dir == "" {
		return p
	}
	return filepath.Join(c.dir, p)
}

func valid(present string) bool {
	for _, p := range presenters {
		if p == present {
			return true
		}
	}
	return false
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	s = strings.TrimSpace(s)
	if s == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("log.level: %w", err)
	}
	return level, nil
}
