// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package cache provides a small generic LRU cache.
//
//	c := cache.New[key, *image.RGBA](4)
//	img := c.GetOrCreate(k, func() *image.RGBA { return scale(src, k) })
//
// LRU is safe for concurrent use and must not be copied after creation.
package cache
