package material

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestSolidColor(t *testing.T) {
	color := core.NewVec3(0.7, 0.3, 0.1)
	solid := NewSolidColor(color)

	testCases := []struct {
		uv    core.Vec2
		point core.Vec3
	}{
		{core.NewVec2(0, 0), core.NewVec3(0, 0, 0)},
		{core.NewVec2(1, 1), core.NewVec3(5, 3, -2)},
		{core.NewVec2(0.5, 0.5), core.NewVec3(-1, -1, -1)},
	}

	for _, tc := range testCases {
		result := solid.Evaluate(tc.uv, tc.point)
		if result != color {
			t.Errorf("SolidColor at UV%v, Point%v: expected %v, got %v", tc.uv, tc.point, color, result)
		}
	}
}

func TestChecker(t *testing.T) {
	even := core.NewVec3(0.2, 0.3, 0.1)
	odd := core.NewVec3(0.9, 0.9, 0.9)
	checker := NewChecker(even, odd)

	tests := []struct {
		name     string
		point    core.Vec3
		expected core.Vec3
	}{
		// sin(1)^3 > 0
		{"all positive", core.NewVec3(0.1, 0.1, 0.1), even},
		// one negative factor
		{"one negative", core.NewVec3(-0.1, 0.1, 0.1), odd},
		// two negative factors
		{"two negative", core.NewVec3(-0.1, -0.1, 0.1), even},
		// 10*0.4 = 4 rad, sin(4) < 0
		{"second band", core.NewVec3(0.4, 0.1, 0.1), odd},
		// product of exactly zero is not negative
		{"on a boundary", core.NewVec3(0, 0.1, 0.1), even},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := checker.Evaluate(core.Vec2{}, tt.point)
			if result != tt.expected {
				t.Errorf("Checker at %v: expected %v, got %v", tt.point, tt.expected, result)
			}
		})
	}
}

func TestPerlinNoiseRange(t *testing.T) {
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))
	perlin := NewPerlin(sampler)
	random := rand.New(rand.NewSource(1))

	for i := 0; i < 1000; i++ {
		p := core.NewVec3(random.Float64()*20-10, random.Float64()*20-10, random.Float64()*20-10)
		n := perlin.Noise(p)
		// Gradient noise with unit gradients is bounded by sqrt(3)/2 per axis blend
		if math.IsNaN(n) || math.Abs(n) > 1.5 {
			t.Fatalf("Noise out of range at %v: %f", p, n)
		}
		if turb := perlin.Turbulence(p, turbulenceDepth); turb < 0 {
			t.Fatalf("Turbulence must be non-negative, got %f", turb)
		}
	}
}

func TestPerlinNoiseIsZeroOnLatticePoints(t *testing.T) {
	perlin := NewPerlin(core.NewRandomSampler(rand.New(rand.NewSource(5))))

	// Gradient noise vanishes at integer coordinates
	for _, p := range []core.Vec3{{}, {X: 1, Y: 2, Z: 3}, {X: -4, Y: 7, Z: -2}} {
		if n := perlin.Noise(p); math.Abs(n) > 1e-12 {
			t.Errorf("Noise at lattice point %v should be 0, got %f", p, n)
		}
	}
}

func TestPerlinDeterministic(t *testing.T) {
	a := NewPerlin(core.NewRandomSampler(rand.New(rand.NewSource(9))))
	b := NewPerlin(core.NewRandomSampler(rand.New(rand.NewSource(9))))

	p := core.NewVec3(1.25, -3.5, 0.75)
	if a.Noise(p) != b.Noise(p) {
		t.Errorf("Same seed should give identical noise: %f vs %f", a.Noise(p), b.Noise(p))
	}
}

func TestNoiseTextureIsGrey(t *testing.T) {
	texture := NewNoiseTexture(core.NewRandomSampler(rand.New(rand.NewSource(42))), 4)

	for _, p := range []core.Vec3{{X: 0.3, Y: 0.1, Z: 0.7}, {X: -2, Y: 1.5, Z: 3.25}} {
		c := texture.Evaluate(core.Vec2{}, p)
		if c.X != c.Y || c.Y != c.Z {
			t.Errorf("Noise texture should be grey, got %v", c)
		}
		if c.X < 0 || c.X > 1 {
			t.Errorf("Noise texture value should be in [0,1], got %f", c.X)
		}
	}
}

func TestGradient(t *testing.T) {
	warm := core.NewVec3(1, 0.6, 0.2)
	cool := core.NewVec3(0.2, 0.4, 1)
	gradient := NewGradient(warm, cool, 4)

	tests := []struct {
		name     string
		v        float64
		expected core.Vec3
	}{
		{"bottom edge", 0, warm.Multiply(4)},
		{"top edge", 1, cool.Multiply(4)},
		{"below range clamps", -1, warm.Multiply(4)},
		{"above range clamps", 2, cool.Multiply(4)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := gradient.Evaluate(core.NewVec2(0.5, tt.v), core.Vec3{})
			if got.Subtract(tt.expected).Length() > 1e-3 {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}

	mid := gradient.Evaluate(core.NewVec2(0, 0.5), core.Vec3{})
	if mid.X >= 4*warm.X || mid.Z >= 4*cool.Z || mid.X <= 0 || mid.Z <= 0 {
		t.Errorf("Midpoint %v should lie between the endpoint colors", mid)
	}
}
