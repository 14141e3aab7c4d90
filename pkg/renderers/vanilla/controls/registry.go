// Package controls implements the control-slot registry for the vanilla
// renderer: named renderers that emit the actual input element from the
// wrapper's slot context, honoring its accessibility wiring.
package controls

import (
	"bytes"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/goliatone/go-fieldwrap/pkg/field"
)

// Renderer writes the control markup for a field into buf. The slot context
// carries the ids and flags the control must wire up (aria-describedby,
// aria-invalid, required, autocomplete); props supply value and presentation
// extras.
type Renderer func(buf *bytes.Buffer, slot field.ControlContext, props field.Props, value string) error

// Script describes a JavaScript dependency a control needs emitted once per
// page.
type Script struct {
	Src    string
	Inline string
	Module bool
	Defer  bool
}

// Descriptor bundles a control renderer with its asset dependencies.
type Descriptor struct {
	Name        string
	Renderer    Renderer
	Stylesheets []string
	Scripts     []Script
}

// Registry tracks control descriptors by name. Callers can register custom
// controls or override the built-ins.
type Registry struct {
	mu       sync.RWMutex
	controls map[string]Descriptor
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{controls: make(map[string]Descriptor)}
}

// Clone returns a copy of the registry so callers can mutate in isolation.
func (r *Registry) Clone() *Registry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cloned := New()
	for name, descriptor := range r.controls {
		cloned.controls[name] = cloneDescriptor(descriptor)
	}
	return cloned
}

// Register associates a descriptor with name, replacing any existing entry.
func (r *Registry) Register(name string, descriptor Descriptor) error {
	if name = normalize(name); name == "" {
		return fmt.Errorf("controls: control name is required")
	}
	if descriptor.Renderer == nil {
		return fmt.Errorf("controls: renderer for %q is nil", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	descriptor.Name = name
	r.controls[name] = cloneDescriptor(descriptor)
	return nil
}

// MustRegister mirrors Register but panics on error, for default setup.
func (r *Registry) MustRegister(name string, descriptor Descriptor) {
	if err := r.Register(name, descriptor); err != nil {
		panic(err)
	}
}

// Descriptor fetches a descriptor by name.
func (r *Registry) Descriptor(name string) (Descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	descriptor, ok := r.controls[normalize(name)]
	return descriptor, ok
}

// Names lists the registered control names sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.controls))
	for name := range r.controls {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Assets aggregates the stylesheets and scripts of the named controls,
// deduplicated in first-seen order.
func (r *Registry) Assets(names []string) (stylesheets []string, scripts []Script) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seenSheets := make(map[string]struct{})
	seenScripts := make(map[string]struct{})

	for _, name := range names {
		descriptor, ok := r.controls[normalize(name)]
		if !ok {
			continue
		}
		for _, sheet := range descriptor.Stylesheets {
			if _, dup := seenSheets[sheet]; dup || sheet == "" {
				continue
			}
			seenSheets[sheet] = struct{}{}
			stylesheets = append(stylesheets, sheet)
		}
		for _, script := range descriptor.Scripts {
			key := script.Src + "\x00" + script.Inline
			if _, dup := seenScripts[key]; dup {
				continue
			}
			seenScripts[key] = struct{}{}
			scripts = append(scripts, script)
		}
	}
	return stylesheets, scripts
}

func cloneDescriptor(d Descriptor) Descriptor {
	out := d
	out.Stylesheets = slices.Clone(d.Stylesheets)
	out.Scripts = slices.Clone(d.Scripts)
	return out
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
