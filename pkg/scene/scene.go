package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/pdf"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Name         string
	World        *geometry.HittableList // Top-level list holding the scene BVH
	Lights       pdf.Target             // Shapes sampled directly by diffuse surfaces, nil for none
	Background   core.Vec3              // Radiance of rays that escape the scene
	CameraConfig renderer.CameraConfig
	Sampling     SamplingConfig
}

// SamplingConfig holds the scene's suggested render settings
type SamplingConfig struct {
	SamplesPerPixel int
	MaxDepth        int
}

// Options control scene construction
type Options struct {
	Seed      int64  // Seeds object placement, Perlin tables and BVH axes
	ImagePath string // Texture image for the earth scene
}

func defaultSampling() SamplingConfig {
	return SamplingConfig{SamplesPerPixel: 36, MaxDepth: 50}
}

// defaultCameraConfig is the outdoor view shared by the sphere scenes
func defaultCameraConfig() renderer.CameraConfig {
	return renderer.CameraConfig{
		LookFrom:      core.NewVec3(13, 2, 3),
		LookAt:        core.NewVec3(0, 0, 0),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          20,
		AspectRatio:   16.0 / 9.0,
		FocusDistance: 10,
		Width:         400,
	}
}

// skyBackground is the flat light blue used by the outdoor scenes
var skyBackground = core.NewVec3(0.7, 0.8, 1.0)

// newWorld wraps the objects in a BVH inside a top-level list
func newWorld(objects []geometry.Hittable, sampler core.Sampler) *geometry.HittableList {
	return geometry.NewHittableList(geometry.NewBVH(objects, sampler))
}

// GetWorld implements renderer.Scene
func (s *Scene) GetWorld() geometry.Hittable {
	return s.World
}

// GetLights implements renderer.Scene
func (s *Scene) GetLights() pdf.Target {
	return s.Lights
}

// GetBackground implements renderer.Scene
func (s *Scene) GetBackground() core.Vec3 {
	return s.Background
}

// GetCameraConfig implements renderer.Scene
func (s *Scene) GetCameraConfig() renderer.CameraConfig {
	return s.CameraConfig
}

// RenderConfig returns the scene's suggested settings on top of the renderer defaults
func (s *Scene) RenderConfig() renderer.RenderConfig {
	config := renderer.DefaultRenderConfig()
	config.SamplesPerPixel = s.Sampling.SamplesPerPixel
	config.MaxDepth = s.Sampling.MaxDepth
	return config
}
