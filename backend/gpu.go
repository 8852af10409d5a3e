// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package backend

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/ggstage/scene"
)

// ErrNoPresenter is returned when neither the surface nor the device
// provider can present textures.
var ErrNoPresenter = errors.New("backend: no texture presenter")

// TexturePresenter puts RGBA textures on screen.
//
// Host GPU contexts implement it; the gpu backend looks for it on the
// surface first and on the installed device provider second.
type TexturePresenter interface {
	// NewTextureFromRGBA uploads 8-bit, 4-channel data laid out in the
	// device provider's surface format.
	NewTextureFromRGBA(width, height int, data []byte) (any, error)

	// DrawTexture draws tex with its top-left corner at (x, y).
	DrawTexture(tex any, x, y float32) error
}

// textureUpdater is implemented by textures that accept new pixel data in place.
type textureUpdater interface {
	UpdateData(data []byte) error
}

// textureDestroyer is implemented by textures that hold GPU resources.
type textureDestroyer interface {
	Destroy()
}

var (
	providerMu sync.RWMutex
	provider   gpucontext.DeviceProvider
)

// SetDeviceProvider installs the host GPU device used by the gpu backend.
// Pass nil to uninstall it, which makes the backend unavailable.
func SetDeviceProvider(p gpucontext.DeviceProvider) {
	providerMu.Lock()
	defer providerMu.Unlock()
	provider = p
}

// DeviceProvider returns the installed provider, or nil.
func DeviceProvider() gpucontext.DeviceProvider {
	providerMu.RLock()
	defer providerMu.RUnlock()
	return provider
}

func gpuAvailable() bool {
	return DeviceProvider() != nil
}

// GPURenderer composes frames on the CPU and presents them as a texture.
//
// The texture is created lazily on the first Render. After a resize the
// old texture stays alive until the replacement has been uploaded, since
// in-flight command buffers may still sample it.
type GPURenderer struct {
	compositor
	provider  gpucontext.DeviceProvider
	presenter TexturePresenter

	format  gputypes.TextureFormat
	swizzle bool
	staging []byte

	texture     any
	oldTexture  any
	sizeChanged bool
}

func newGPURenderer(opts Options) (Renderer, error) {
	return NewGPURenderer(DeviceProvider(), opts)
}

// NewGPURenderer creates a GPU presentation renderer.
//
// Frames are uploaded in the provider's surface format. RGBA8 and BGRA8
// surfaces (linear or sRGB) are supported; any other format makes the
// backend unavailable so ModeAuto falls back to software.
func NewGPURenderer(p gpucontext.DeviceProvider, opts Options) (*GPURenderer, error) {
	if p == nil {
		return nil, &UnavailableError{Name: BackendGPU}
	}
	format := p.SurfaceFormat()
	if format == gputypes.TextureFormatUndefined {
		format = gputypes.TextureFormatRGBA8Unorm
	}
	swizzle, ok := uploadLayout(format)
	if !ok {
		Logger().Debug("backend: gpu surface format not supported", "format", format)
		return nil, fmt.Errorf("%w: surface format %v", &UnavailableError{Name: BackendGPU}, format)
	}
	presenter, ok := opts.Surface.(TexturePresenter)
	if !ok {
		presenter, ok = p.(TexturePresenter)
	}
	if !ok {
		return nil, ErrNoPresenter
	}

	c, err := newCompositor(opts)
	if err != nil {
		return nil, err
	}

	if c.target.Format() != gputypes.TextureFormatRGBA8Unorm {
		return nil, fmt.Errorf("%w: pixmap format %v", &UnavailableError{Name: BackendGPU}, c.target.Format())
	}

	return &GPURenderer{
		compositor: c,
		provider:   p,
		presenter:  presenter,
		format:     format,
		swizzle:    swizzle,
	}, nil
}

// uploadLayout reports whether RGBA pixmap rows must be swizzled for a
// surface format, and whether the format is supported at all.
func uploadLayout(format gputypes.TextureFormat) (swizzle, ok bool) {
	switch format {
	case gputypes.TextureFormatRGBA8Unorm, gputypes.TextureFormatRGBA8UnormSrgb:
		return false, true
	case gputypes.TextureFormatBGRA8Unorm, gputypes.TextureFormatBGRA8UnormSrgb:
		return true, true
	default:
		return false, false
	}
}

// Format returns the texture format frames are uploaded in.
func (r *GPURenderer) Format() gputypes.TextureFormat {
	return r.format
}

// uploadData returns the composed frame in the upload format.
func (r *GPURenderer) uploadData() []byte {
	pix := r.target.Pixels()
	if !r.swizzle {
		return pix
	}
	if cap(r.staging) < len(pix) {
		r.staging = make([]byte, len(pix))
	}
	r.staging = r.staging[:len(pix)]
	for i := 0; i+3 < len(pix); i += 4 {
		r.staging[i] = pix[i+2]
		r.staging[i+1] = pix[i+1]
		r.staging[i+2] = pix[i]
		r.staging[i+3] = pix[i+3]
	}
	return r.staging
}

// Name returns the backend identifier.
func (r *GPURenderer) Name() string {
	return BackendGPU
}

// Provider returns the device provider the renderer was created with.
func (r *GPURenderer) Provider() gpucontext.DeviceProvider {
	return r.provider
}

// Texture returns the current texture, or nil before the first Render.
func (r *GPURenderer) Texture() any {
	return r.texture
}

// Resize changes the pixmap and surface dimensions and schedules the
// texture for recreation.
func (r *GPURenderer) Resize(width, height int) error {
	changed, err := r.resize(width, height)
	if changed {
		r.sizeChanged = true
	}
	return err
}

// Render paints stage, uploads the frame and draws it at the origin.
func (r *GPURenderer) Render(stage *scene.Node) error {
	if err := r.compose(stage); err != nil {
		return err
	}

	if r.sizeChanged {
		if r.texture != nil {
			destroyTexture(r.oldTexture)
			r.oldTexture = r.texture
			r.texture = nil
		}
		r.sizeChanged = false
	}

	data := r.uploadData()
	if r.texture != nil {
		if u, ok := r.texture.(textureUpdater); ok {
			if err := u.UpdateData(data); err != nil {
				return fmt.Errorf("backend: texture update failed: %w", err)
			}
		} else {
			r.oldTexture, r.texture = r.texture, nil
		}
	}

	if r.texture == nil {
		tex, err := r.presenter.NewTextureFromRGBA(r.size.Width, r.size.Height, data)
		if err != nil {
			return fmt.Errorf("backend: texture creation failed: %w", err)
		}
		r.texture = tex
		// The replaced texture is idle once the new upload has completed.
		destroyTexture(r.oldTexture)
		r.oldTexture = nil
	}

	if err := r.presenter.DrawTexture(r.texture, 0, 0); err != nil {
		return err
	}
	r.frames++
	return nil
}

// Close releases textures and the surface. Close is idempotent.
func (r *GPURenderer) Close() error {
	if r.closed {
		return nil
	}
	destroyTexture(r.oldTexture)
	destroyTexture(r.texture)
	r.oldTexture, r.texture = nil, nil
	r.provider = nil
	return r.close()
}

func destroyTexture(tex any) {
	if d, ok := tex.(textureDestroyer); ok {
		d.Destroy()
	}
}

var _ Renderer = (*GPURenderer)(nil)
