// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package cli parses the ggstage command line.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/gogpu/ggstage"
	"github.com/gogpu/ggstage/backend"
	"github.com/gogpu/ggstage/internal/config"
)

// Host names accepted by -host.
const (
	HostTerm     = "term"
	HostHeadless = "headless"
)

// ExitError is an error that carries a process exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return e.Message
}

func usageError(format string, args ...any) error {
	return &ExitError{Code: 2, Message: fmt.Sprintf(format, args...)}
}

// Options is the parsed command line.
type Options struct {
	ConfigPath string
	Host       string
	FPS        int
	Frames     int
	Output     string
	LogLevel   slog.Level
	LogFormat  string

	// Width and Height are the explicit -width/-height values, or zero.
	Width, Height int

	// Overrides holds canvas options for flags given on the command line.
	// They apply after the config file.
	Overrides []ggstage.Option
}

// Parse processes command-line arguments. It reports whether the program
// should exit cleanly (help was requested) or returns an *ExitError.
func Parse(args []string, output io.Writer) (*Options, bool, error) {
	fs := flag.NewFlagSet("ggstage", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprint(output, `
ggstage - layered 2D canvas demo.

Usage:
  ggstage [options]

Press Esc or Ctrl-C to quit the terminal host.

Options:
`)
		fs.PrintDefaults()
	}

	opts := &Options{}
	fs.StringVar(&opts.ConfigPath, "config", "", "Path to a TOML canvas configuration.")
	fs.StringVar(&opts.Host, "host", HostTerm, "Host to run on: 'term' or 'headless'.")
	fs.IntVar(&opts.FPS, "fps", 60, "Frame rate for the terminal host.")
	fs.IntVar(&opts.Frames, "frames", 0, "Stop after this many frames. 0 runs until quit (headless: 1).")
	fs.StringVar(&opts.Output, "output", "", "Headless only: write the last frame to this PNG file.")
	logLevel := fs.String("log-level", "info", "Logging level: 'debug', 'info', 'warn', 'error'.")
	fs.StringVar(&opts.LogFormat, "log-format", "text", "Log output format: 'text' or 'json'.")
	expand := fs.Bool("expand", false, "Fill the host viewport and follow its resizes.")
	fs.IntVar(&opts.Width, "width", 0, "Canvas width in pixels.")
	fs.IntVar(&opts.Height, "height", 0, "Canvas height in pixels.")
	backendName := fs.String("backend", "auto", "Renderer backend: 'auto', 'primary', 'fallback', 'gpu' or 'software'.")
	background := fs.String("background", "", "Background color: '#rrggbb', '#rrggbbaa' or a color name.")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, usageError("%v", err)
	}
	if fs.NArg() > 0 {
		return nil, false, usageError("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	switch opts.Host {
	case HostTerm, HostHeadless:
	default:
		return nil, false, usageError("invalid host %q: must be 'term' or 'headless'", opts.Host)
	}
	if opts.FPS <= 0 {
		return nil, false, usageError("invalid fps %d: must be positive", opts.FPS)
	}
	if opts.Frames < 0 {
		return nil, false, usageError("invalid frames %d: must not be negative", opts.Frames)
	}
	if err := opts.LogLevel.UnmarshalText([]byte(*logLevel)); err != nil {
		return nil, false, usageError("invalid log-level: must be 'debug', 'info', 'warn', or 'error'")
	}
	opts.LogFormat = strings.ToLower(opts.LogFormat)
	if opts.LogFormat != "text" && opts.LogFormat != "json" {
		return nil, false, usageError("invalid log-format: must be 'text' or 'json'")
	}

	// Only flags given explicitly override the config file.
	var (
		err     error
		sizeSet bool
	)
	fs.Visit(func(f *flag.Flag) {
		if err != nil {
			return
		}
		switch f.Name {
		case "expand":
			v := *expand
			opts.Overrides = append(opts.Overrides, func(c *ggstage.Config) { c.Expand = v })
		case "width", "height":
			sizeSet = true
		case "backend":
			var m backend.Mode
			if m, err = backend.ParseMode(*backendName); err == nil {
				opts.Overrides = append(opts.Overrides, ggstage.WithBackend(m))
			}
		case "background":
			bg, perr := config.ParseColor(*background)
			if perr != nil {
				err = perr
				return
			}
			opts.Overrides = append(opts.Overrides, ggstage.WithBackground(bg))
		}
	})
	if err != nil {
		return nil, false, usageError("%v", err)
	}
	if sizeSet {
		w, h := opts.Width, opts.Height
		opts.Overrides = append(opts.Overrides, func(c *ggstage.Config) {
			if w != 0 {
				c.Width = w
			}
			if h != 0 {
				c.Height = h
			}
		})
	}

	if opts.Host == HostHeadless && opts.Frames == 0 {
		opts.Frames = 1
	}
	return opts, false, nil
}

// NewLogger returns a slog logger writing to w in the given format.
func NewLogger(w io.Writer, level slog.Level, format string) *slog.Logger {
	hopts := &slog.HandlerOptions{Level: level}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, hopts))
	}
	return slog.New(slog.NewTextHandler(w, hopts))
}
