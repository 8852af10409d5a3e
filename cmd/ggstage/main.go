// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Command ggstage demonstrates the layered canvas.
//
// On the terminal host it fills the window, follows resizes and paints
// every frame until Esc, Ctrl-C or -frames. On the headless host it
// paints -frames frames offscreen and can save the result as a PNG.
package main

import (
	"context"
	"errors"
	"fmt"
	"image/png"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gogpu/ggstage"
	"github.com/gogpu/ggstage/host/headless"
	"github.com/gogpu/ggstage/host/term"
	"github.com/gogpu/ggstage/internal/cli"
	"github.com/gogpu/ggstage/internal/config"
	"github.com/gogpu/ggstage/surface"
	"golang.org/x/sync/errgroup"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run holds the program logic so tests can drive it.
func run(ctx context.Context, stdout, stderr io.Writer, args []string) error {
	opts, shouldExit, err := cli.Parse(args, stdout)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	ggstage.SetLogger(cli.NewLogger(stderr, opts.LogLevel, opts.LogFormat))
	defer ggstage.SetLogger(nil)

	canvasOpts, err := canvasOptions(opts)
	if err != nil {
		return err
	}

	switch opts.Host {
	case cli.HostHeadless:
		return runHeadless(opts, canvasOpts)
	default:
		return runTerm(ctx, opts, canvasOpts)
	}
}

// canvasOptions layers flag overrides over the config file.
func canvasOptions(opts *cli.Options) ([]ggstage.Option, error) {
	var out []ggstage.Option
	if opts.ConfigPath != "" {
		f, err := config.Load(opts.ConfigPath)
		if err != nil {
			return nil, err
		}
		fromFile, err := f.Options()
		if err != nil {
			return nil, err
		}
		out = append(out, fromFile...)
	}
	return append(out, opts.Overrides...), nil
}

func runHeadless(opts *cli.Options, canvasOpts []ggstage.Option) error {
	viewport := surface.Sz(ggstage.DefaultWidth, ggstage.DefaultHeight)
	if opts.Width > 0 {
		viewport.Width = opts.Width
	}
	if opts.Height > 0 {
		viewport.Height = opts.Height
	}
	h := headless.New(viewport)

	c, err := ggstage.New(h, canvasOpts...)
	if err != nil {
		return err
	}
	defer c.Close()
	populate(c)

	if err := c.Loop().Start(); err != nil {
		return err
	}
	for range opts.Frames {
		h.Tick()
	}
	c.Stop()
	ggstage.Logger().Info("headless run finished", "frames", c.Renderer().Frames(), "size", c.Size().String())

	if opts.Output == "" {
		return nil
	}
	return savePNG(opts.Output, h.Surfaces())
}

func savePNG(path string, surfaces []*surface.ImageSurface) error {
	if len(surfaces) == 0 {
		return errors.New("no headless surface to save")
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, surfaces[0].Snapshot()); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func runTerm(ctx context.Context, opts *cli.Options, canvasOpts []ggstage.Option) error {
	h, err := term.Open(term.WithFPS(opts.FPS))
	if err != nil {
		return err
	}
	defer h.Close()

	// The terminal always fills the screen unless told otherwise.
	canvasOpts = append([]ggstage.Option{ggstage.WithExpand()}, canvasOpts...)
	c, err := ggstage.New(h, canvasOpts...)
	if err != nil {
		return err
	}
	defer c.Close()
	populate(c)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return c.Run(gctx)
	})
	g.Go(func() error {
		select {
		case <-h.Done():
		case <-gctx.Done():
		case <-c.Loop().Done():
		}
		c.Stop()
		return nil
	})
	if opts.Frames > 0 {
		g.Go(func() error {
			return stopAfter(gctx, c, uint64(opts.Frames))
		})
	}

	err = g.Wait()
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// stopAfter stops c once its loop has painted n frames.
func stopAfter(ctx context.Context, c *ggstage.Canvas, n uint64) error {
	ticker := time.NewTicker(10 * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-c.Loop().Done():
			return nil
		case <-ticker.C:
			if c.Loop().Frames() >= n {
				c.Stop()
				return nil
			}
		}
	}
}
