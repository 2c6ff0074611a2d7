package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Sphere is a sphere with a single material. A negative radius flips the
// normals inward, which makes a hollow shell when nested in a positive one.
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material material.Material
}

// NewSphere creates a sphere
func NewSphere(center core.Vec3, radius float64, mat material.Material) *Sphere {
	return &Sphere{Center: center, Radius: radius, Material: mat}
}

// Hit solves |origin + t·dir - center|² = r² and reports the nearest root in [tMin, tMax]
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	toOrigin := ray.Origin.Subtract(s.Center)
	a := ray.Direction.LengthSquared()
	h := toOrigin.Dot(ray.Direction)
	c := toOrigin.LengthSquared() - s.Radius*s.Radius

	discriminant := h*h - a*c
	if discriminant < 0 {
		return nil, false
	}
	sqrtD := math.Sqrt(discriminant)

	for _, t := range [2]float64{(-h - sqrtD) / a, (-h + sqrtD) / a} {
		if t < tMin || t > tMax || math.IsNaN(t) {
			continue
		}
		point := ray.At(t)
		outward := point.Subtract(s.Center).Divide(s.Radius)
		hit := &material.HitRecord{T: t, Point: point, Material: s.Material, UV: sphereUV(outward)}
		hit.SetFaceNormal(ray, outward)
		return hit, true
	}
	return nil, false
}

// sphereUV maps a point on the unit sphere to [0,1]².
// u runs around the Y axis starting at -X, v runs from -Y (0) to +Y (1).
func sphereUV(p core.Vec3) core.Vec2 {
	theta := math.Acos(-p.Y)
	phi := math.Atan2(-p.Z, p.X) + math.Pi
	return core.NewVec2(phi/(2*math.Pi), theta/math.Pi)
}

// BoundingBox is the cube of half-width |Radius| around the center
func (s *Sphere) BoundingBox() (core.AABB, bool) {
	r := math.Abs(s.Radius)
	extent := core.NewVec3(r, r, r)
	return core.NewAABB(s.Center.Subtract(extent), s.Center.Add(extent)), true
}
