// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package config

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gogpu/watchface"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadOptionalMissing(t *testing.T) {
	cfg, err := LoadOptional(filepath.Join(t.TempDir(), FileName))
	if err != nil {
		t.Fatalf("LoadOptional() error = %v", err)
	}
	r, err := cfg.Resolve()
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	want := Resolved{
		Mode:     watchface.Active,
		Present:  PresentWindow,
		Output:   "watchface.png",
		LogLevel: slog.LevelInfo,
		Width:    watchface.CanvasSize,
		Height:   watchface.CanvasSize,
	}
	if *r != want {
		t.Errorf("Resolve() = %+v, want %+v", *r, want)
	}
}

func TestLoadOptionalFull(t *testing.T) {
	path := writeConfig(t, `
assets:
  active: art/day.png
  ambient: /opt/face/night.png
mode: ambient
ambient_after: 45s
present: PNG
output: out/face.png
log:
  level: debug
size:
  width: 400
  height: 400
`)
	cfg, err := LoadOptional(path)
	if err != nil {
		t.Fatalf("LoadOptional() error = %v", err)
	}
	r, err := cfg.Resolve()
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	if want := filepath.Join(filepath.Dir(path), "art", "day.png"); r.Assets.Active != want {
		t.Errorf("Assets.Active = %q, want %q", r.Assets.Active, want)
	}
	if r.Assets.Ambient != "/opt/face/night.png" {
		t.Errorf("Assets.Ambient = %q", r.Assets.Ambient)
	}
	if r.Mode != watchface.Ambient || r.AmbientAfter != 45*time.Second {
		t.Errorf("Mode = %v, AmbientAfter = %v", r.Mode, r.AmbientAfter)
	}
	if r.Present != PresentPNG || r.Output != "out/face.png" {
		t.Errorf("Present = %q, Output = %q", r.Present, r.Output)
	}
	if r.LogLevel != slog.LevelDebug || r.Width != 400 || r.Height != 400 {
		t.Errorf("LogLevel = %v, size = %dx%d", r.LogLevel, r.Width, r.Height)
	}
}

func TestResolveErrors(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"unknown mode", Config{Mode: "dim"}},
		{"unknown presenter", Config{Present: "hologram"}},
		{"bad level", Config{Log: LogConfig{Level: "loud"}}},
		{"negative ambient_after", Config{AmbientAfter: -time.Second}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.cfg.Resolve(); err == nil {
				t.Error("Resolve() succeeded")
			}
		})
	}

	_, err := (&Config{Mode: "dim"}).Resolve()
	if !errors.Is(err, watchface.ErrUnknownMode) {
		t.Errorf("unknown mode error = %v, want ErrUnknownMode", err)
	}
}

func TestLoadOptionalMalformed(t *testing.T) {
	path := writeConfig(t, "assets: [unclosed")
	if _, err := LoadOptional(path); err == nil {
		t.Error("LoadOptional() accepted malformed YAML")
	}
}
