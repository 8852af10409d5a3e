// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggstage

// FullscreenController enters or leaves fullscreen through the first
// capability that supports the requested direction.
type FullscreenController struct {
	probe func() []FullscreenCapability
}

// NewFullscreenController returns a controller that asks probe for the
// current capabilities on every toggle.
func NewFullscreenController(probe func() []FullscreenCapability) *FullscreenController {
	return &FullscreenController{probe: probe}
}

func (f *FullscreenController) capabilities() []FullscreenCapability {
	if f == nil || f.probe == nil {
		return nil
	}
	return f.probe()
}

// Supported reports whether any capability can enter fullscreen.
func (f *FullscreenController) Supported() bool {
	for _, c := range f.capabilities() {
		if c.Enter != nil {
			return true
		}
	}
	return false
}

// Toggle enters fullscreen when enable is true and leaves it otherwise.
// Exactly the first capability offering that direction is invoked. With no
// such capability Toggle does nothing and returns nil.
func (f *FullscreenController) Toggle(enable bool) error {
	for _, c := range f.capabilities() {
		fn := c.Exit
		if enable {
			fn = c.Enter
		}
		if fn == nil {
			continue
		}
		Logger().Debug("ggstage: fullscreen", "enable", enable, "via", c.Name)
		if err := fn(); err != nil {
			Logger().Warn("ggstage: fullscreen request failed", "via", c.Name, "err", err)
			return err
		}
		return nil
	}
	return nil
}
