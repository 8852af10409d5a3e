// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggstage

import (
	"errors"

	"github.com/gogpu/ggstage/backend"
)

// Common errors returned by Canvas operations.
var (
	// ErrRendererUnavailable is returned when no requested or fallback
	// backend could be constructed.
	ErrRendererUnavailable = backend.ErrRendererUnavailable

	// ErrInvalidDimensions is returned when width or height is not positive.
	ErrInvalidDimensions = errors.New("ggstage: invalid dimensions")

	// ErrNilHost is returned when New is called without a host.
	ErrNilHost = errors.New("ggstage: nil host")

	// ErrClosed is returned when operations are attempted on a closed canvas.
	ErrClosed = errors.New("ggstage: canvas is closed")

	// ErrLoopStarted is returned when a render loop is started twice.
	ErrLoopStarted = errors.New("ggstage: render loop already started")

	// ErrUnknownLayer is returned for layer names the canvas does not have.
	ErrUnknownLayer = errors.New("ggstage: unknown layer")
)
