// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package surface defines the drawable element a renderer paints into.
//
// A Surface is owned by exactly one renderer. It receives finished frames
// through Present and follows the logical dimensions the renderer was last
// resized to. Hosts create surfaces for their platform (a terminal screen,
// a browser canvas element, an in-memory image) and callers may hand an
// existing surface to a canvas instead of letting the host create one.
//
// # Surface Types
//
//   - ImageSurface: in-memory surface that keeps the last presented frame
//   - host/term: tcell screen surface
//   - host/dom: HTML canvas element (js/wasm only)
//
// Surfaces are NOT thread-safe. The owning renderer serializes access.
package surface
