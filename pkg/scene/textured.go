package scene

import (
	"fmt"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/loaders"
	"github.com/df07/go-pathtracer/pkg/material"
)

// uvDebugSize is the resolution of the earth scene's placeholder texture
const uvDebugSize = 64

// NewTwoSpheresScene creates two large checkered spheres touching at the origin
func NewTwoSpheresScene(opts Options) *Scene {
	checker := material.NewTexturedLambertian(
		material.NewChecker(core.NewVec3(0.9, 0.9, 0.9), core.NewVec3(0.2, 0.3, 0.1)))

	objects := []geometry.Hittable{
		geometry.NewSphere(core.NewVec3(0, -10, 0), 10, checker),
		geometry.NewSphere(core.NewVec3(0, 10, 0), 10, checker),
	}

	return &Scene{
		World:        newWorld(objects, core.NewSeededSampler(opts.Seed)),
		Background:   skyBackground,
		CameraConfig: defaultCameraConfig(),
		Sampling:     defaultSampling(),
	}
}

// NewTwoPerlinScene creates a marbled sphere resting on a marbled ground
func NewTwoPerlinScene(opts Options) *Scene {
	sampler := core.NewSeededSampler(opts.Seed)

	objects := []geometry.Hittable{
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000,
			material.NewTexturedLambertian(material.NewNoiseTexture(sampler, 8))),
		geometry.NewSphere(core.NewVec3(0, 2, 0), 2,
			material.NewTexturedLambertian(material.NewNoiseTexture(sampler, 4))),
	}

	return &Scene{
		World:        newWorld(objects, sampler),
		Background:   skyBackground,
		CameraConfig: defaultCameraConfig(),
		Sampling:     defaultSampling(),
	}
}

// NewEarthScene creates a globe textured with the image at opts.ImagePath.
// Without a path the globe shows its UV coordinates instead.
func NewEarthScene(opts Options) (*Scene, error) {
	var texture material.Texture = material.NewUVDebugTexture(uvDebugSize, uvDebugSize)
	if opts.ImagePath != "" {
		image, err := loaders.LoadImageTexture(opts.ImagePath)
		if err != nil {
			return nil, fmt.Errorf("loading earth texture: %w", err)
		}
		texture = image
	}

	objects := []geometry.Hittable{
		geometry.NewSphere(core.NewVec3(0, 0, 0), 2, material.NewTexturedLambertian(texture)),
	}

	return &Scene{
		World:        newWorld(objects, core.NewSeededSampler(opts.Seed)),
		Background:   skyBackground,
		CameraConfig: defaultCameraConfig(),
		Sampling:     defaultSampling(),
	}, nil
}
