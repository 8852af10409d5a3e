// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package cli

import (
	"bytes"
	"errors"
	"image/color"
	"log/slog"
	"strings"
	"testing"

	"github.com/gogpu/ggstage"
	"github.com/gogpu/ggstage/backend"
)

func parse(t *testing.T, args ...string) *Options {
	t.Helper()
	opts, exit, err := Parse(args, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("Parse(%v): %v", args, err)
	}
	if exit {
		t.Fatalf("Parse(%v) asked to exit", args)
	}
	return opts
}

func applied(opts *Options) ggstage.Config {
	cfg := ggstage.DefaultConfig()
	for _, o := range opts.Overrides {
		o(&cfg)
	}
	return cfg
}

func TestDefaults(t *testing.T) {
	opts := parse(t)
	if opts.Host != HostTerm || opts.FPS != 60 || opts.Frames != 0 {
		t.Errorf("defaults = %+v", opts)
	}
	if opts.LogLevel != slog.LevelInfo || opts.LogFormat != "text" {
		t.Errorf("log defaults = %v %q", opts.LogLevel, opts.LogFormat)
	}
	if len(opts.Overrides) != 0 {
		t.Errorf("Overrides = %d, want none without flags", len(opts.Overrides))
	}
}

func TestHeadlessDefaultsToOneFrame(t *testing.T) {
	if opts := parse(t, "-host", "headless"); opts.Frames != 1 {
		t.Errorf("Frames = %d, want 1", opts.Frames)
	}
	if opts := parse(t, "-host", "headless", "-frames", "5"); opts.Frames != 5 {
		t.Errorf("Frames = %d, want 5", opts.Frames)
	}
}

func TestOverrides(t *testing.T) {
	opts := parse(t,
		"-expand",
		"-width", "320",
		"-backend", "software",
		"-background", "#ff0000",
		"-log-level", "debug",
		"-log-format", "JSON",
	)
	cfg := applied(opts)
	if !cfg.Expand {
		t.Error("Expand not applied")
	}
	if cfg.Width != 320 || cfg.Height != ggstage.DefaultHeight {
		t.Errorf("size = %dx%d, want 320x%d", cfg.Width, cfg.Height, ggstage.DefaultHeight)
	}
	if cfg.Backend != backend.ModeFallback {
		t.Errorf("Backend = %v, want fallback", cfg.Backend)
	}
	if cfg.Background != (color.RGBA{R: 0xff, A: 0xff}) {
		t.Errorf("Background = %v", cfg.Background)
	}
	if opts.LogLevel != slog.LevelDebug || opts.LogFormat != "json" {
		t.Errorf("log = %v %q", opts.LogLevel, opts.LogFormat)
	}
}

func TestSizeOverrideAppliedOnce(t *testing.T) {
	opts := parse(t, "-width", "320", "-height", "200")
	if len(opts.Overrides) != 1 {
		t.Fatalf("Overrides = %d, want 1", len(opts.Overrides))
	}
	if cfg := applied(opts); cfg.Width != 320 || cfg.Height != 200 {
		t.Errorf("size = %dx%d, want 320x200", cfg.Width, cfg.Height)
	}
}

func TestExpandFalseOverride(t *testing.T) {
	cfg := ggstage.DefaultConfig()
	cfg.Expand = true
	for _, o := range parse(t, "-expand=false").Overrides {
		o(&cfg)
	}
	if cfg.Expand {
		t.Error("-expand=false did not clear Expand")
	}
}

func TestHelp(t *testing.T) {
	var out bytes.Buffer
	opts, exit, err := Parse([]string{"-h"}, &out)
	if err != nil || !exit || opts != nil {
		t.Fatalf("Parse(-h) = %v, %v, %v", opts, exit, err)
	}
	if !strings.Contains(out.String(), "Usage:") {
		t.Error("help text missing Usage")
	}
}

func TestInvalid(t *testing.T) {
	tests := [][]string{
		{"-host", "x11"},
		{"-fps", "0"},
		{"-frames", "-1"},
		{"-log-level", "loud"},
		{"-log-format", "xml"},
		{"-backend", "vulkan"},
		{"-background", "#12"},
		{"-nope"},
		{"extra"},
	}
	for _, args := range tests {
		_, _, err := Parse(args, &bytes.Buffer{})
		var exitErr *ExitError
		if !errors.As(err, &exitErr) || exitErr.Code != 2 {
			t.Errorf("Parse(%v) = %v, want ExitError code 2", args, err)
		}
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	NewLogger(&buf, slog.LevelInfo, "json").Info("hello", "k", 1)
	if !strings.HasPrefix(buf.String(), "{") {
		t.Errorf("json output = %q", buf.String())
	}

	buf.Reset()
	l := NewLogger(&buf, slog.LevelWarn, "text")
	l.Info("hidden")
	l.Warn("shown")
	if strings.Contains(buf.String(), "hidden") || !strings.Contains(buf.String(), "shown") {
		t.Errorf("text output = %q", buf.String())
	}
}
