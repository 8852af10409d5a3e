// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package backend

import (
	"fmt"
	"sort"
	"sync"
)

// Factory creates a renderer with the given options.
// Implementations should validate options and return descriptive errors.
type Factory func(opts Options) (Renderer, error)

// Entry represents a registered backend.
type Entry struct {
	// Name is the unique identifier for this backend.
	Name string

	// Priority determines selection order (higher = preferred).
	// Standard priorities:
	//   - 100: GPU presentation
	//   - 10: software
	Priority int

	// Factory creates renderer instances.
	Factory Factory

	// Available reports if the backend can be used right now.
	Available func() bool
}

// globalRegistry is the default registry.
var globalRegistry = &Registry{}

// Registry manages registered backends.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*Entry
}

// NewRegistry creates a new empty registry.
// Most code should use the global registry via Register and Open.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]*Entry),
	}
}

// Default returns the global registry.
func Default() *Registry {
	return globalRegistry
}

// Register adds a backend to the global registry.
//
// If available is nil, the backend is assumed always available.
// Registering a name that already exists replaces the previous entry.
func Register(name string, priority int, factory Factory, available func() bool) {
	globalRegistry.Register(name, priority, factory, available)
}

// Unregister removes a backend from the global registry.
func Unregister(name string) {
	globalRegistry.Unregister(name)
}

// List returns all registered backend names sorted by priority (highest first).
func List() []string {
	return globalRegistry.List()
}

// Available returns names of all available backends sorted by priority.
func Available() []string {
	return globalRegistry.Available()
}

// Open creates a renderer from the global registry.
func Open(mode Mode, opts Options) (Renderer, error) {
	return globalRegistry.Open(mode, opts)
}

// Register adds a backend to this registry.
func (r *Registry) Register(name string, priority int, factory Factory, available func() bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.entries == nil {
		r.entries = make(map[string]*Entry)
	}

	if available == nil {
		available = func() bool { return true }
	}

	r.entries[name] = &Entry{
		Name:      name,
		Priority:  priority,
		Factory:   factory,
		Available: available,
	}
}

// Unregister removes a backend from this registry.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.entries, name)
}

// List returns all registered backend names sorted by priority.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sortedNames(false)
}

// Available returns names of all available backends sorted by priority.
func (r *Registry) Available() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sortedNames(true)
}

// Get returns information about a specific backend.
func (r *Registry) Get(name string) (*Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.entries[name]
	if !ok {
		return nil, false
	}

	// Return a copy to prevent modification
	entryCopy := *entry
	return &entryCopy, true
}

// Open resolves mode to a backend and creates a renderer.
// Every failure matches ErrRendererUnavailable.
func (r *Registry) Open(mode Mode, opts Options) (Renderer, error) {
	if opts.Surface == nil {
		return nil, fmt.Errorf("%w: %w", ErrRendererUnavailable, ErrNilSurface)
	}

	r.mu.RLock()
	all := r.sortedNames(false)
	available := r.sortedNames(true)
	r.mu.RUnlock()

	if len(all) == 0 {
		return nil, ErrRendererUnavailable
	}

	switch mode {
	case ModePrimary:
		return r.OpenByName(all[0], opts)
	case ModeFallback:
		return r.OpenByName(all[len(all)-1], opts)
	}

	if len(available) == 0 {
		return nil, ErrRendererUnavailable
	}

	// Try each available backend in priority order
	var lastErr error
	for _, name := range available {
		rd, err := r.OpenByName(name, opts)
		if err == nil {
			return rd, nil
		}
		Logger().Warn("backend: falling back", "backend", name, "err", err)
		lastErr = err
	}
	return nil, lastErr
}

// OpenByName creates a renderer using a specific backend.
func (r *Registry) OpenByName(name string, opts Options) (Renderer, error) {
	r.mu.RLock()
	entry, ok := r.entries[name]
	r.mu.RUnlock()

	if !ok {
		return nil, &NotFoundError{Name: name}
	}

	if !entry.Available() {
		return nil, &UnavailableError{Name: name}
	}

	rd, err := entry.Factory(opts)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrRendererUnavailable, name, err)
	}
	Logger().Info("backend: renderer created", "backend", name, "size", rd.Size())
	return rd, nil
}

// sortedNames returns backend names sorted by priority (highest first).
// If onlyAvailable is true, filters to available backends only.
// Must be called with lock held.
func (r *Registry) sortedNames(onlyAvailable bool) []string {
	if len(r.entries) == 0 {
		return nil
	}

	type entry struct {
		name     string
		priority int
	}

	entries := make([]entry, 0, len(r.entries))
	for name, e := range r.entries {
		if onlyAvailable && !e.Available() {
			continue
		}
		entries = append(entries, entry{name: name, priority: e.Priority})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].priority == entries[j].priority {
			return entries[i].name < entries[j].name
		}
		return entries[i].priority > entries[j].priority
	})

	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.name
	}
	return names
}

// init registers the built-in backends.
func init() {
	Register(BackendGPU, 100, newGPURenderer, gpuAvailable)
	Register(BackendSoftware, 10, newSoftwareRenderer, nil)
}
