package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// NewSimpleLightScene creates a green sphere on marbled ground, lit only by
// four rectangle lights of different strengths. The wall light behind the sphere
// fades from warm at its lower edge to white at the top.
func NewSimpleLightScene(opts Options) *Scene {
	sampler := core.NewSeededSampler(opts.Seed)

	rectLights := []*geometry.AxisRect{
		geometry.NewXYRect(-1, 1, 1, 3, -2, material.NewDiffuseLight(core.NewVec3(0.2, 0.2, 0.2))),
		geometry.NewXYRect(-1, 1, 1, 3, 2, material.NewTexturedDiffuseLight(
			material.NewGradient(core.NewVec3(1, 0.55, 0.2), core.NewVec3(1, 1, 1), 1))),
		geometry.NewXZRect(-1, 1, -1, 1, 4, material.NewDiffuseLight(core.NewVec3(1, 1, 1))),
		geometry.NewXZRect(-1, 1, -1, 1, 0, material.NewDiffuseLight(core.NewVec3(4, 4, 4))),
	}

	objects := []geometry.Hittable{
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000,
			material.NewTexturedLambertian(material.NewNoiseTexture(sampler, 8))),
		geometry.NewSphere(core.NewVec3(0, 2, 0), 2, material.NewLambertian(core.NewVec3(0.12, 0.85, 0.15))),
	}
	lights := geometry.NewHittableList()
	for _, light := range rectLights {
		objects = append(objects, light)
		lights.Add(light)
	}

	camera := defaultCameraConfig()
	camera.LookFrom = core.NewVec3(26, 3, 0)
	camera.LookAt = core.NewVec3(0, 2, 0)
	camera.VFov = 40

	return &Scene{
		World:        newWorld(objects, sampler),
		Lights:       lights,
		Background:   core.NewVec3(0, 0, 0),
		CameraConfig: camera,
		Sampling:     defaultSampling(),
	}
}
