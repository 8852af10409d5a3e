// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggstage

import (
	"context"
	"sync/atomic"

	"github.com/gogpu/ggstage/surface"
)

// Reactor applies viewport resizes one at a time, in arrival order.
//
// Every event is handled to completion before the next is read, so two
// resizes never interleave.
type Reactor struct {
	events  <-chan surface.Size
	apply   func(surface.Size) error
	handled atomic.Uint64
}

// NewReactor returns a reactor that calls apply for each event.
func NewReactor(events <-chan surface.Size, apply func(surface.Size) error) *Reactor {
	return &Reactor{events: events, apply: apply}
}

// Handled returns the number of events applied successfully.
func (r *Reactor) Handled() uint64 {
	return r.handled.Load()
}

// Run consumes events until ctx is done or the channel closes.
// A failed event is logged and skipped.
func (r *Reactor) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case size, ok := <-r.events:
			if !ok {
				return nil
			}
			if err := r.apply(size); err != nil {
				Logger().Warn("ggstage: resize skipped", "size", size.String(), "err", err)
				continue
			}
			r.handled.Add(1)
		}
	}
}
