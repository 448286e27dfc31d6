// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package transform implements the pipeline's pluggable per-stage
// string transformations: uppercase, reverse (flipper), rotate,
// insert-spaces (expander), prefix-tag (logger), and typewriter.
//
// Each transform is a small value satisfying pipeline.Transform. A
// Registry replaces the original C implementation's dlopen/dlsym
// plugin loading: transform names are resolved statically, with no
// per-instance global state, so the same transform name can back two
// independent stages in one pipeline without interference.
package transform

import "fmt"

// Factory constructs a fresh, independent instance of a named
// transform. Registry stores one Factory per name; Lookup calls the
// Factory once per call, so "uppercaser" looked up twice yields two
// unrelated values with no shared state.
type Factory func() Named

// Named is the interface implemented by every transform in this
// package; it is a pipeline.Transform without importing the pipeline
// package, keeping transform free of a dependency on its consumer.
type Named interface {
	Name() string
	Transform(s string) (string, bool)
}

// Registry maps stage names to transform factories.
type Registry struct {
	factories map[string]Factory
}

// NewRegistry returns a Registry pre-populated with this package's six
// built-in transforms.
func NewRegistry() *Registry {
	r := &Registry{factories: make(map[string]Factory)}
	r.Register("uppercaser", func() Named { return Uppercase{} })
	r.Register("rotator", func() Named { return Rotate{} })
	r.Register("flipper", func() Named { return Reverse{} })
	r.Register("expander", func() Named { return InsertSpaces{} })
	r.Register("logger", func() Named { return PrefixTag{Tag: "logger"} })
	r.Register("typewriter", func() Named { return NewTypewriter() })
	return r
}

// Register adds or replaces the factory for name.
func (r *Registry) Register(name string, f Factory) {
	r.factories[name] = f
}

// Lookup constructs a fresh transform instance for name.
// Returns an error if name is not registered.
func (r *Registry) Lookup(name string) (Named, error) {
	f, ok := r.factories[name]
	if !ok {
		return nil, fmt.Errorf("transform: unknown stage %q", name)
	}
	return f(), nil
}

// Names returns the registered transform names, for usage text.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	return names
}
