package material

import (
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

// TestImageTextureEvaluate tests basic texture sampling
func TestImageTextureEvaluate(t *testing.T) {
	// Layout:
	//   white black
	//   black white
	white := core.NewVec3(1, 1, 1)
	black := core.NewVec3(0, 0, 0)
	pixels := []core.Vec3{
		white, black, // Row 0 (top in image coords)
		black, white, // Row 1 (bottom in image coords)
	}
	texture := NewImageTexture(2, 2, pixels)

	tests := []struct {
		name     string
		uv       core.Vec2
		expected core.Vec3
	}{
		{"bottom-left", core.NewVec2(0.1, 0.1), black},
		{"bottom-right", core.NewVec2(0.9, 0.1), white},
		{"top-left", core.NewVec2(0.1, 0.9), white},
		{"top-right", core.NewVec2(0.9, 0.9), black},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := texture.Evaluate(tt.uv, core.Vec3{})
			if result != tt.expected {
				t.Errorf("UV%v: expected %v, got %v", tt.uv, tt.expected, result)
			}
		})
	}
}

// TestImageTextureClamping tests that out-of-range UVs stick to the image edge
func TestImageTextureClamping(t *testing.T) {
	pixels := make([]core.Vec3, 16)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			val := float64(y*4+x) / 15.0
			pixels[y*4+x] = core.NewVec3(val, val, val)
		}
	}
	texture := NewImageTexture(4, 4, pixels)

	tests := []struct {
		name     string
		uv       core.Vec2
		expected core.Vec3
	}{
		{"u=1 v=0 is bottom-right", core.NewVec2(1, 0), pixels[15]},
		{"u=0 v=1 is top-left", core.NewVec2(0, 1), pixels[0]},
		{"negative clamps to bottom-left", core.NewVec2(-0.5, -0.5), pixels[12]},
		{"above one clamps to top-right", core.NewVec2(2.3, 3.7), pixels[3]},
		{"interior", core.NewVec2(0.375, 0.625), pixels[5]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := texture.Evaluate(tt.uv, core.Vec3{})
			if result != tt.expected {
				t.Errorf("UV%v: expected %v, got %v", tt.uv, tt.expected, result)
			}
		})
	}
}

func TestImageTextureEmpty(t *testing.T) {
	texture := NewImageTexture(0, 0, nil)
	result := texture.Evaluate(core.NewVec2(0.5, 0.5), core.Vec3{})
	if result != core.NewVec3(0, 1, 1) {
		t.Errorf("Empty texture should be cyan, got %v", result)
	}
}

func TestUVDebugTexture(t *testing.T) {
	texture := NewUVDebugTexture(8, 8)

	bottomLeft := texture.Evaluate(core.NewVec2(0, 0), core.Vec3{})
	if bottomLeft != core.NewVec3(0, 0, 0) {
		t.Errorf("UV(0,0) should be black, got %v", bottomLeft)
	}
	topRight := texture.Evaluate(core.NewVec2(1, 1), core.Vec3{})
	if topRight != core.NewVec3(1, 1, 0) {
		t.Errorf("UV(1,1) should be yellow, got %v", topRight)
	}
}
