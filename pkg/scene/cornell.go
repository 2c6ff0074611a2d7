package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// Cornell box dimensions (standard 555x555x555 units)
const boxSize = 555.0

func cornellCameraConfig() renderer.CameraConfig {
	return renderer.CameraConfig{
		LookFrom:      core.NewVec3(278, 278, -800), // Camera outside the open side of the box
		LookAt:        core.NewVec3(278, 278, 0),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          40,
		AspectRatio:   1,
		FocusDistance: 10,
		Width:         600,
	}
}

// cornellRoom returns the five walls and the ceiling light of the box
func cornellRoom() ([]geometry.Hittable, *geometry.AxisRect) {
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))
	light := material.NewDiffuseLight(core.NewVec3(15, 15, 15))

	ceilingLight := geometry.NewXZRect(213, 343, 227, 332, boxSize-1, light)

	walls := []geometry.Hittable{
		geometry.NewYZRect(0, boxSize, 0, boxSize, boxSize, green), // Left wall, seen from the camera
		geometry.NewYZRect(0, boxSize, 0, boxSize, 0, red),
		ceilingLight,
		geometry.NewXZRect(0, boxSize, 0, boxSize, 0, white),       // Floor
		geometry.NewXZRect(0, boxSize, 0, boxSize, boxSize, white), // Ceiling
		geometry.NewXYRect(0, boxSize, 0, boxSize, boxSize, white), // Back wall
	}
	return walls, ceilingLight
}

// NewCornellScene creates the Cornell box with a mirror sphere and a glass sphere,
// importance sampling the ceiling light
func NewCornellScene(opts Options) *Scene {
	objects, ceilingLight := cornellRoom()
	objects = append(objects,
		geometry.NewSphere(core.NewVec3(200, 350, 200), 100, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0)),
		geometry.NewSphere(core.NewVec3(400, 350, 200), 80, material.NewDielectric(1.5)),
	)

	return &Scene{
		World:        newWorld(objects, core.NewSeededSampler(opts.Seed)),
		Lights:       ceilingLight,
		Background:   core.NewVec3(0, 0, 0),
		CameraConfig: cornellCameraConfig(),
		Sampling:     SamplingConfig{SamplesPerPixel: 100, MaxDepth: 50},
	}
}

// NewCornellBoxesScene creates the Cornell box with two white blocks on the floor
func NewCornellBoxesScene(opts Options) *Scene {
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))

	objects, ceilingLight := cornellRoom()
	objects = append(objects,
		geometry.NewBox(core.NewVec3(130, 0, 65), core.NewVec3(295, 165, 230), white),
		geometry.NewBox(core.NewVec3(265, 0, 295), core.NewVec3(430, 330, 460), white),
	)

	return &Scene{
		World:        newWorld(objects, core.NewSeededSampler(opts.Seed)),
		Lights:       ceilingLight,
		Background:   core.NewVec3(0, 0, 0),
		CameraConfig: cornellCameraConfig(),
		Sampling:     SamplingConfig{SamplesPerPixel: 100, MaxDepth: 50},
	}
}
