// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package backend creates renderers that own a surface.
//
// Backends are registered with a priority and an availability probe. Two
// are built in:
//
//   - "gpu" (priority 100): composes on the CPU and presents through a
//     host texture presenter. Available once a gpucontext.DeviceProvider
//     has been installed with SetDeviceProvider.
//   - "software" (priority 10): composes on the CPU and presents the frame
//     to the surface directly. Always available.
//
// # Backend Selection
//
// Open resolves a Mode:
//
//	r, err := backend.Open(backend.ModeAuto, backend.Options{
//	    Surface:  s,
//	    Size:     surface.Sz(800, 600),
//	    Settings: render.DefaultSettings(),
//	})
//	if errors.Is(err, backend.ErrRendererUnavailable) {
//	    // neither the requested nor a fallback backend could be built
//	}
//
//   - ModeAuto tries available backends from highest to lowest priority.
//   - ModePrimary uses the highest-priority backend only.
//   - ModeFallback uses the lowest-priority backend only.
//
// # Third-party Backends
//
//	backend.Register("vulkan", 200, vulkanFactory, vulkanAvailable)
package backend
