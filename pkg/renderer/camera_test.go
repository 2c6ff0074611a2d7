package renderer

import (
	"math/rand"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func testCameraConfig() CameraConfig {
	return CameraConfig{
		LookFrom:    core.NewVec3(0, 0, 0),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		Width:       400,
		AspectRatio: 2.0,
		VFov:        90.0,
	}
}

func TestCameraGetRay_Corners(t *testing.T) {
	camera := NewCamera(testCameraConfig())
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	// vfov 90 at focus distance 1 gives a viewport 2 high and 4 wide
	tests := []struct {
		name     string
		s, t     float64
		expected core.Vec3
	}{
		{"center", 0.5, 0.5, core.NewVec3(0, 0, -1)},
		{"bottom-left", 0, 0, core.NewVec3(-2, -1, -1)},
		{"top-right", 1, 1, core.NewVec3(2, 1, -1)},
		{"top-left", 0, 1, core.NewVec3(-2, 1, -1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := camera.GetRay(tt.s, tt.t, sampler)
			if ray.Origin != (core.Vec3{}) {
				t.Errorf("Pinhole ray should start at the eye, got %v", ray.Origin)
			}
			if ray.Direction.Subtract(tt.expected).Length() > 1e-9 {
				t.Errorf("Expected direction %v, got %v", tt.expected, ray.Direction)
			}
		})
	}
}

func TestCameraDefocus(t *testing.T) {
	config := testCameraConfig()
	config.Aperture = 0.5
	config.FocusDistance = 3
	camera := NewCamera(config)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	focusPoint := core.NewVec3(0, 0, -3)
	for i := 0; i < 200; i++ {
		ray := camera.GetRay(0.5, 0.5, sampler)
		if ray.Origin.Z != 0 || ray.Origin.Length() > 0.25+1e-12 {
			t.Fatalf("Lens sample %v outside the aperture", ray.Origin)
		}
		// Every ray through the image center converges on the focal plane
		if ray.At(1).Subtract(focusPoint).Length() > 1e-9 {
			t.Fatalf("Ray misses the focus point: %v", ray.At(1))
		}
	}
}

func TestCameraConfigImageSize(t *testing.T) {
	config := testCameraConfig()
	width, height := config.ImageSize()
	if width != 400 || height != 200 {
		t.Errorf("Expected 400x200, got %dx%d", width, height)
	}

	config.AspectRatio = 1
	config.Width = 555
	if _, height := config.ImageSize(); height != 555 {
		t.Errorf("Expected square image, got height %d", height)
	}
}
