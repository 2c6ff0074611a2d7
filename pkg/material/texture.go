package material

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Texture provides spatially-varying colors for materials
type Texture interface {
	// Evaluate returns color at given UV coordinates and 3D point
	// UV is used for image textures, point for procedural textures
	Evaluate(uv core.Vec2, point core.Vec3) core.Vec3
}

// SolidColor provides uniform color
type SolidColor struct {
	Color core.Vec3
}

// NewSolidColor creates a new solid color source
func NewSolidColor(color core.Vec3) *SolidColor {
	return &SolidColor{Color: color}
}

// Evaluate returns the solid color regardless of UV or position
func (s *SolidColor) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	return s.Color
}

// Checker alternates between two textures in a 3D pattern
type Checker struct {
	Even  Texture
	Odd   Texture
	Scale float64 // Spatial frequency of the pattern
}

// NewChecker creates a checker of two solid colors at the default frequency
func NewChecker(even, odd core.Vec3) *Checker {
	return &Checker{Even: NewSolidColor(even), Odd: NewSolidColor(odd), Scale: 10}
}

// Evaluate picks Odd where sin(sx)·sin(sy)·sin(sz) is negative
func (c *Checker) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	sines := math.Sin(c.Scale*point.X) * math.Sin(c.Scale*point.Y) * math.Sin(c.Scale*point.Z)
	if sines < 0 {
		return c.Odd.Evaluate(uv, point)
	}
	return c.Even.Evaluate(uv, point)
}

// Gradient blends two colors along the surface V coordinate, interpolating in
// CIE L*u*v* so the midpoint stays perceptually even. Scale lets it drive emitters.
type Gradient struct {
	From, To colorful.Color
	Scale    float64
}

// NewGradient creates a gradient between two linear RGB colors
func NewGradient(from, to core.Vec3, scale float64) *Gradient {
	return &Gradient{
		From:  colorful.LinearRgb(from.X, from.Y, from.Z),
		To:    colorful.LinearRgb(to.X, to.Y, to.Z),
		Scale: scale,
	}
}

// Evaluate returns From at v=0 and To at v=1
func (g *Gradient) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	t := min(max(uv.Y, 0), 1)
	r, gr, b := g.From.BlendLuv(g.To, t).Clamped().LinearRgb()
	return core.NewVec3(r, gr, b).Multiply(g.Scale)
}
