// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggstage

import (
	"context"
	"sync"
	"sync/atomic"
)

// LoopState is the lifecycle state of a render loop.
type LoopState int32

// Loop states. A loop moves Idle -> Running -> Stopped and never back.
const (
	LoopIdle LoopState = iota
	LoopRunning
	LoopStopped
)

// String returns the state name.
func (s LoopState) String() string {
	switch s {
	case LoopIdle:
		return "idle"
	case LoopRunning:
		return "running"
	case LoopStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Loop paints once per display frame until stopped.
//
// Each frame callback paints and then requests the next frame, so the loop
// follows the host refresh rate. Stop is the only way to end it.
type Loop struct {
	sched  FrameScheduler
	paint  func() error
	state  atomic.Int32
	frames atomic.Uint64

	stopOnce sync.Once
	done     chan struct{}
}

// NewLoop returns an idle loop that calls paint on every frame from sched.
func NewLoop(sched FrameScheduler, paint func() error) *Loop {
	return &Loop{
		sched: sched,
		paint: paint,
		done:  make(chan struct{}),
	}
}

// State returns the current state.
func (l *Loop) State() LoopState {
	return LoopState(l.state.Load())
}

// Frames returns the number of frames painted.
func (l *Loop) Frames() uint64 {
	return l.frames.Load()
}

// Start moves the loop from idle to running and requests the first frame.
// Starting a loop that is not idle returns ErrLoopStarted.
func (l *Loop) Start() error {
	if !l.state.CompareAndSwap(int32(LoopIdle), int32(LoopRunning)) {
		return ErrLoopStarted
	}
	Logger().Info("ggstage: render loop started")
	l.sched.RequestFrame(l.frame)
	return nil
}

// Stop ends the loop. Frames already requested become no-ops.
// Stop is idempotent and may be called from any state.
func (l *Loop) Stop() {
	l.stopOnce.Do(func() {
		prev := LoopState(l.state.Swap(int32(LoopStopped)))
		close(l.done)
		if prev == LoopRunning {
			Logger().Info("ggstage: render loop stopped", "frames", l.frames.Load())
		}
	})
}

// Done is closed when the loop stops.
func (l *Loop) Done() <-chan struct{} {
	return l.done
}

// Run starts the loop and blocks until ctx is done or Stop is called.
// Cancelling ctx stops the loop.
func (l *Loop) Run(ctx context.Context) error {
	if err := l.Start(); err != nil {
		return err
	}
	select {
	case <-ctx.Done():
		l.Stop()
	case <-l.done:
	}
	return nil
}

func (l *Loop) frame() {
	if l.State() != LoopRunning {
		return
	}
	if err := l.paint(); err != nil {
		Logger().Warn("ggstage: frame paint failed", "err", err)
	}
	l.frames.Add(1)
	if l.State() == LoopRunning {
		l.sched.RequestFrame(l.frame)
	}
}
