package scene

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

// ErrUnknownScene is returned by New for names that are not registered
var ErrUnknownScene = errors.New("unknown scene")

type builder func(opts Options) (*Scene, error)

var builders = map[string]builder{
	"cornell":       func(opts Options) (*Scene, error) { return NewCornellScene(opts), nil },
	"cornell-boxes": func(opts Options) (*Scene, error) { return NewCornellBoxesScene(opts), nil },
	"random":        func(opts Options) (*Scene, error) { return NewRandomScene(opts), nil },
	"two-spheres":   func(opts Options) (*Scene, error) { return NewTwoSpheresScene(opts), nil },
	"two-perlin":    func(opts Options) (*Scene, error) { return NewTwoPerlinScene(opts), nil },
	"simple-light":  func(opts Options) (*Scene, error) { return NewSimpleLightScene(opts), nil },
	"earth":         NewEarthScene,
}

// Names returns the registered scene names in sorted order
func Names() []string {
	return slices.Sorted(maps.Keys(builders))
}

// New builds the named scene
func New(name string, opts Options) (*Scene, error) {
	build, ok := builders[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScene, name)
	}
	s, err := build(opts)
	if err != nil {
		return nil, fmt.Errorf("scene %s: %w", name, err)
	}
	s.Name = name
	return s, nil
}
