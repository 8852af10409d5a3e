// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"context"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/ggstage"
	"github.com/gogpu/ggstage/internal/cli"
)

func TestRunHelp(t *testing.T) {
	var out bytes.Buffer
	if err := run(context.Background(), &out, &bytes.Buffer{}, []string{"-h"}); err != nil {
		t.Fatalf("run(-h) = %v", err)
	}
	if !strings.Contains(out.String(), "Usage:") {
		t.Error("help text missing")
	}
}

func TestRunBadFlag(t *testing.T) {
	err := run(context.Background(), &bytes.Buffer{}, &bytes.Buffer{}, []string{"-host", "x11"})
	var exitErr *cli.ExitError
	if !errors.As(err, &exitErr) || exitErr.Code != 2 {
		t.Errorf("run = %v, want ExitError code 2", err)
	}
}

func TestRunHeadlessWritesPNG(t *testing.T) {
	t.Cleanup(ggstage.Defaults.Reset)

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "stage.toml")
	cfg := "background = \"navy\"\nlayers = [\"world\", \"ui\"]\n\n[origins]\nui = \"top-left\"\n"
	if err := os.WriteFile(cfgPath, []byte(cfg), 0o600); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, "frame.png")

	var logs bytes.Buffer
	err := run(context.Background(), &bytes.Buffer{}, &logs, []string{
		"-host", "headless",
		"-config", cfgPath,
		"-width", "64", "-height", "32",
		"-frames", "3",
		"-output", out,
		"-log-level", "debug",
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 64 || b.Dy() != 32 {
		t.Errorf("frame size = %dx%d, want 64x32", b.Dx(), b.Dy())
	}
	// navy background in a corner no marker reaches
	if r, g, b, _ := img.At(63, 31).RGBA(); r != 0 || g != 0 || b>>8 != 0x80 {
		t.Errorf("corner pixel = %d,%d,%d, want navy", r>>8, g>>8, b>>8)
	}
	if !strings.Contains(logs.String(), "headless run finished") {
		t.Errorf("missing finish log in %q", logs.String())
	}
}

func TestRunMissingConfig(t *testing.T) {
	err := run(context.Background(), &bytes.Buffer{}, &bytes.Buffer{}, []string{
		"-host", "headless", "-config", filepath.Join(t.TempDir(), "nope.toml"),
	})
	if err == nil {
		t.Error("run with missing config succeeded")
	}
}
