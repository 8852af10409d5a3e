// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package config

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/ggstage"
	"github.com/gogpu/ggstage/backend"
	"gonum.org/v1/gonum/spatial/r2"
)

const sample = `
expand = true
backend = "software"
background = "#102030"
layers = ["backdrop", "world", "ui"]
default = false
default_layer = "world"

[origins]
ui = "top-right"
world = "sideways"

[translate]
ui = [-10, 5.5]
`

func apply(t *testing.T, f File) ggstage.Config {
	t.Helper()
	opts, err := f.Options()
	if err != nil {
		t.Fatalf("Options: %v", err)
	}
	cfg := ggstage.DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

func TestDecodeSample(t *testing.T) {
	f, err := Decode(strings.NewReader(sample))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	cfg := apply(t, f)

	if !cfg.Expand {
		t.Error("Expand = false")
	}
	if cfg.Backend != backend.ModeFallback {
		t.Errorf("Backend = %v, want fallback", cfg.Backend)
	}
	if cfg.Background != (color.RGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xff}) {
		t.Errorf("Background = %v", cfg.Background)
	}
	if strings.Join(cfg.Layers, ",") != "backdrop,world,ui" {
		t.Errorf("Layers = %v", cfg.Layers)
	}
	if cfg.Default {
		t.Error("Default = true, want false")
	}
	if cfg.DefaultLayer != "world" {
		t.Errorf("DefaultLayer = %q", cfg.DefaultLayer)
	}
	if cfg.Origins["ui"] != ggstage.AnchorTopRight {
		t.Errorf("ui origin = %v", cfg.Origins["ui"])
	}
	if cfg.Origins["world"] != ggstage.AnchorCenter {
		t.Errorf("unknown anchor = %v, want center", cfg.Origins["world"])
	}
	if cfg.Translate["ui"] != (r2.Vec{X: -10, Y: 5.5}) {
		t.Errorf("ui translate = %v", cfg.Translate["ui"])
	}
	if cfg.Width != ggstage.DefaultWidth || cfg.Height != ggstage.DefaultHeight {
		t.Errorf("size = %dx%d, want defaults", cfg.Width, cfg.Height)
	}
}

func TestEmptyKeepsDefaults(t *testing.T) {
	f, err := Decode(strings.NewReader(""))
	if err != nil {
		t.Fatal(err)
	}
	cfg := apply(t, f)
	want := ggstage.DefaultConfig()
	if cfg.Expand != want.Expand || cfg.Width != want.Width || cfg.Height != want.Height ||
		cfg.Default != want.Default || cfg.Backend != want.Backend || len(cfg.Layers) != 0 {
		t.Errorf("empty file changed defaults: %+v", cfg)
	}
}

func TestPartialSize(t *testing.T) {
	cfg := apply(t, File{Width: 320})
	if cfg.Width != 320 || cfg.Height != ggstage.DefaultHeight {
		t.Errorf("size = %dx%d, want 320x%d", cfg.Width, cfg.Height, ggstage.DefaultHeight)
	}
}

func TestUnknownKey(t *testing.T) {
	_, err := Decode(strings.NewReader("widht = 3\n"))
	if err == nil || !strings.Contains(err.Error(), "widht") {
		t.Errorf("Decode = %v, want unknown key error naming widht", err)
	}
}

func TestBadValues(t *testing.T) {
	if _, err := (File{Backend: "vulkan"}).Options(); err == nil {
		t.Error("unknown backend accepted")
	}
	if _, err := (File{Background: "#12"}).Options(); err == nil {
		t.Error("bad background accepted")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stage.toml")
	if err := os.WriteFile(path, []byte("width = 640\nheight = 480\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	f, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if f.Width != 640 || f.Height != 480 {
		t.Errorf("Load = %+v", f)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("Load(missing) = nil error")
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGBA
	}{
		{"#fff", color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}},
		{"#102030", color.RGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xff}},
		{"#10203040", color.RGBA{R: 0x10, G: 0x20, B: 0x30, A: 0x40}},
		{"Black", color.RGBA{A: 0xff}},
		{"cornflowerblue", color.RGBA{R: 100, G: 149, B: 237, A: 0xff}},
		{"transparent", color.RGBA{}},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if err != nil {
			t.Errorf("ParseColor(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	for _, bad := range []string{"#12", "#zzzzzz", "nocolor"} {
		if _, err := ParseColor(bad); err == nil {
			t.Errorf("ParseColor(%q) succeeded", bad)
		}
	}
}
