package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

const (
	randomGridExtent  = 11
	smallSphereRadius = 0.2

	// Diffuse picks below this get a thin glossy coat
	clearCoatChoice = 0.1
	clearCoatRatio  = 0.2
)

// NewRandomScene creates a checkered ground covered in small random spheres
// around three large ones
func NewRandomScene(opts Options) *Scene {
	sampler := core.NewSeededSampler(opts.Seed)

	camera := defaultCameraConfig()
	camera.Aperture = 0.1

	return &Scene{
		World:        newWorld(randomSceneObjects(sampler), sampler),
		Background:   skyBackground,
		CameraConfig: camera,
		Sampling:     defaultSampling(),
	}
}

// randomSceneObjects lays out the ground, the grid of small spheres and the three large ones
func randomSceneObjects(sampler core.Sampler) []geometry.Hittable {
	checker := material.NewChecker(core.NewVec3(0.9, 0.9, 0.9), core.NewVec3(0.2, 0.3, 0.1))
	objects := []geometry.Hittable{
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, material.NewTexturedLambertian(checker)),
	}

	clearing := core.NewVec3(4, smallSphereRadius, 0)
	for a := -randomGridExtent; a < randomGridExtent; a++ {
		for b := -randomGridExtent; b < randomGridExtent; b++ {
			choice := sampler.Get1D()
			center := core.NewVec3(
				float64(a)+0.9*sampler.Get1D(),
				smallSphereRadius,
				float64(b)+0.9*sampler.Get1D(),
			)
			if center.Subtract(clearing).Length() <= 0.9 {
				continue
			}

			var mat material.Material
			switch {
			case choice < 0.8:
				mat = material.NewLambertian(randomAlbedo(sampler))
				if choice < clearCoatChoice {
					coat := material.NewMetal(core.NewVec3(0.95, 0.95, 0.95), 0.05)
					mat = material.NewMix(mat, coat, clearCoatRatio)
				}
			case choice < 0.95:
				albedo := core.NewVec3(
					0.5+0.5*sampler.Get1D(),
					0.5+0.5*sampler.Get1D(),
					0.5+0.5*sampler.Get1D(),
				)
				mat = material.NewMetal(albedo, 0.5*sampler.Get1D())
			default:
				mat = material.NewDielectric(1.5)
			}
			objects = append(objects, geometry.NewSphere(center, smallSphereRadius, mat))
		}
	}

	objects = append(objects,
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1, material.NewDielectric(1.5)),
		geometry.NewSphere(core.NewVec3(-4, -1, 0), 1, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))),
		geometry.NewSphere(core.NewVec3(4, 1, 0), 1, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0)),
	)
	return objects
}

// randomAlbedo multiplies two uniform colors, which biases albedos toward darker,
// more saturated values
func randomAlbedo(sampler core.Sampler) core.Vec3 {
	return sampler.Get3D().MultiplyVec(sampler.Get3D())
}
