// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package config loads canvas settings from TOML files.
//
// Example file:
//
//	expand = true
//	backend = "auto"
//	background = "#102030"
//	layers = ["backdrop", "world", "ui"]
//	default_layer = "world"
//
//	[origins]
//	ui = "top-right"
//
//	[translate]
//	ui = [-10, 5]
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/gogpu/ggstage"
	"github.com/gogpu/ggstage/backend"
	"github.com/pelletier/go-toml/v2"
)

// File is the on-disk canvas configuration. Zero values keep the
// ggstage defaults.
type File struct {
	Expand       bool                  `toml:"expand"`
	X            int                   `toml:"x"`
	Y            int                   `toml:"y"`
	Width        int                   `toml:"width"`
	Height       int                   `toml:"height"`
	Backend      string                `toml:"backend"`
	Background   string                `toml:"background"`
	Layers       []string              `toml:"layers"`
	Default      *bool                 `toml:"default"`
	DefaultLayer string                `toml:"default_layer"`
	Origins      map[string]string     `toml:"origins"`
	Translate    map[string][2]float64 `toml:"translate"`
}

// Load reads and decodes a TOML file.
func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("config: %w", err)
	}
	f, err := Decode(bytes.NewReader(data))
	if err != nil {
		return File{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return f, nil
}

// Decode decodes TOML from r. Unknown keys are an error.
func Decode(r io.Reader) (File, error) {
	var f File
	dec := toml.NewDecoder(r).DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return File{}, fmt.Errorf("unknown keys:\n%s", strict.String())
		}
		return File{}, err
	}
	return f, nil
}

// Options converts f to canvas options. Unknown anchor names are logged
// and treated as center.
func (f File) Options() ([]ggstage.Option, error) {
	var opts []ggstage.Option

	if f.Expand {
		opts = append(opts, ggstage.WithExpand())
	}
	if f.X != 0 || f.Y != 0 {
		opts = append(opts, ggstage.WithPosition(f.X, f.Y))
	}
	if f.Width != 0 || f.Height != 0 {
		w, h := f.Width, f.Height
		if w == 0 {
			w = ggstage.DefaultWidth
		}
		if h == 0 {
			h = ggstage.DefaultHeight
		}
		opts = append(opts, ggstage.WithSize(w, h))
	}

	mode, err := backend.ParseMode(f.Backend)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	opts = append(opts, ggstage.WithBackend(mode))

	if f.Background != "" {
		bg, err := ParseColor(f.Background)
		if err != nil {
			return nil, fmt.Errorf("config: background: %w", err)
		}
		opts = append(opts, ggstage.WithBackground(bg))
	}

	if len(f.Layers) > 0 {
		opts = append(opts, ggstage.WithLayers(f.Layers...))
	}
	if f.Default != nil {
		opts = append(opts, ggstage.WithDefault(*f.Default))
	}
	if f.DefaultLayer != "" {
		opts = append(opts, ggstage.WithDefaultLayer(f.DefaultLayer))
	}

	for layer, name := range f.Origins {
		a, ok := ggstage.LookupAnchor(name)
		if !ok {
			ggstage.Logger().Warn("config: unknown anchor, using center", "layer", layer, "anchor", name)
		}
		opts = append(opts, ggstage.WithOrigin(layer, a))
	}
	for layer, d := range f.Translate {
		opts = append(opts, ggstage.WithTranslate(layer, d[0], d[1]))
	}
	return opts, nil
}
