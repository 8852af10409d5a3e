// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package backend

import (
	"errors"
	"testing"

	"github.com/gogpu/ggstage/render"
	"github.com/gogpu/ggstage/surface"
)

func testOptions() Options {
	return Options{
		Surface:  surface.NewImageSurface(1, 1),
		Size:     surface.Sz(64, 32),
		Settings: render.DefaultSettings(),
	}
}

// namedFactory builds software renderers that report a custom name.
type namedRenderer struct {
	*SoftwareRenderer
	name string
}

func (r *namedRenderer) Name() string { return r.name }

func namedFactory(name string) Factory {
	return func(opts Options) (Renderer, error) {
		sr, err := NewSoftwareRenderer(opts)
		if err != nil {
			return nil, err
		}
		return &namedRenderer{SoftwareRenderer: sr, name: name}, nil
	}
}

func failingFactory(Options) (Renderer, error) {
	return nil, errors.New("device lost")
}

func TestRegistryRegister(t *testing.T) {
	r := NewRegistry()
	r.Register("test", 50, namedFactory("test"), nil)

	entry, ok := r.Get("test")
	if !ok {
		t.Fatal("registered backend not found")
	}
	if entry.Name != "test" {
		t.Errorf("Name = %s, want test", entry.Name)
	}
	if entry.Priority != 50 {
		t.Errorf("Priority = %d, want 50", entry.Priority)
	}
	if !entry.Available() {
		t.Error("backend should be available (nil Available func)")
	}
}

func TestRegistryUnregister(t *testing.T) {
	r := NewRegistry()
	r.Register("temp", 10, namedFactory("temp"), nil)
	r.Unregister("temp")

	if _, ok := r.Get("temp"); ok {
		t.Error("backend should not exist after unregister")
	}
}

func TestRegistryListOrder(t *testing.T) {
	r := NewRegistry()
	r.Register("low", 10, namedFactory("low"), nil)
	r.Register("high", 100, namedFactory("high"), nil)
	r.Register("mid", 50, namedFactory("mid"), func() bool { return false })

	list := r.List()
	want := []string{"high", "mid", "low"}
	if len(list) != len(want) {
		t.Fatalf("List() = %v, want %v", list, want)
	}
	for i := range want {
		if list[i] != want[i] {
			t.Errorf("List()[%d] = %s, want %s", i, list[i], want[i])
		}
	}

	avail := r.Available()
	if len(avail) != 2 || avail[0] != "high" || avail[1] != "low" {
		t.Errorf("Available() = %v, want [high low]", avail)
	}
}

func TestRegistryOpenModes(t *testing.T) {
	tests := []struct {
		name     string
		mode     Mode
		gpuAvail bool
		want     string
		wantErr  bool
	}{
		{"auto picks primary", ModeAuto, true, "gpu", false},
		{"auto falls back", ModeAuto, false, "software", false},
		{"primary available", ModePrimary, true, "gpu", false},
		{"primary unavailable", ModePrimary, false, "", true},
		{"fallback", ModeFallback, true, "software", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRegistry()
			avail := tt.gpuAvail
			r.Register("gpu", 100, namedFactory("gpu"), func() bool { return avail })
			r.Register("software", 10, namedFactory("software"), nil)

			rd, err := r.Open(tt.mode, testOptions())
			if tt.wantErr {
				if !errors.Is(err, ErrRendererUnavailable) {
					t.Fatalf("Open() error = %v, want ErrRendererUnavailable", err)
				}
				var ue *UnavailableError
				if !errors.As(err, &ue) || ue.Name != "gpu" {
					t.Errorf("Open() error = %v, want UnavailableError{gpu}", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Open() error = %v", err)
			}
			if rd.Name() != tt.want {
				t.Errorf("Name() = %s, want %s", rd.Name(), tt.want)
			}
		})
	}
}

func TestRegistryOpenAutoSkipsFailingFactory(t *testing.T) {
	r := NewRegistry()
	r.Register("broken", 100, failingFactory, nil)
	r.Register("software", 10, namedFactory("software"), nil)

	rd, err := r.Open(ModeAuto, testOptions())
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if rd.Name() != "software" {
		t.Errorf("Name() = %s, want software", rd.Name())
	}
}

func TestRegistryOpenAllFail(t *testing.T) {
	r := NewRegistry()
	r.Register("broken", 100, failingFactory, nil)

	_, err := r.Open(ModeAuto, testOptions())
	if !errors.Is(err, ErrRendererUnavailable) {
		t.Errorf("Open() error = %v, want ErrRendererUnavailable", err)
	}
}

func TestRegistryOpenEmpty(t *testing.T) {
	_, err := NewRegistry().Open(ModeAuto, testOptions())
	if !errors.Is(err, ErrRendererUnavailable) {
		t.Errorf("Open() error = %v, want ErrRendererUnavailable", err)
	}
}

func TestRegistryOpenNilSurface(t *testing.T) {
	r := NewRegistry()
	r.Register("software", 10, namedFactory("software"), nil)
	_, err := r.Open(ModeAuto, Options{Size: surface.Sz(1, 1)})
	if !errors.Is(err, ErrNilSurface) || !errors.Is(err, ErrRendererUnavailable) {
		t.Errorf("Open() error = %v, want ErrNilSurface and ErrRendererUnavailable", err)
	}
}

func TestRegistryOpenByNameNotFound(t *testing.T) {
	_, err := NewRegistry().OpenByName("vulkan", testOptions())
	var nf *NotFoundError
	if !errors.As(err, &nf) || nf.Name != "vulkan" {
		t.Fatalf("OpenByName() error = %v, want NotFoundError{vulkan}", err)
	}
	if !errors.Is(err, ErrRendererUnavailable) {
		t.Error("NotFoundError should match ErrRendererUnavailable")
	}
}

func TestGlobalRegistryBuiltins(t *testing.T) {
	for _, name := range []string{BackendGPU, BackendSoftware} {
		if _, ok := Default().Get(name); !ok {
			t.Errorf("built-in backend %q not registered", name)
		}
	}
	list := List()
	if len(list) < 2 || list[0] != BackendGPU {
		t.Errorf("List() = %v, want gpu first", list)
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"", ModeAuto, false},
		{"auto", ModeAuto, false},
		{"Primary", ModePrimary, false},
		{"gpu", ModePrimary, false},
		{" fallback ", ModeFallback, false},
		{"software", ModeFallback, false},
		{"webgl", ModeAuto, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMode(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseMode(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseMode(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestModeString(t *testing.T) {
	if ModeFallback.String() != "fallback" {
		t.Errorf("String() = %q, want fallback", ModeFallback.String())
	}
	if Mode(9).String() != "Mode(9)" {
		t.Errorf("String() = %q, want Mode(9)", Mode(9).String())
	}
}
