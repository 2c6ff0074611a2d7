package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// rectThickness pads the zero-width axis of a rectangle's bounding box
const rectThickness = 1e-4

// lightSampleEpsilon is the minimum distance accepted when re-tracing toward a light
const lightSampleEpsilon = 0.001

// AxisRect is a rectangle lying in a plane perpendicular to one coordinate axis.
// Its in-plane coordinates (a, b) are the two remaining axes in X, Y, Z order.
type AxisRect struct {
	Axis     int     // Fixed axis: 0=X (YZ rect), 1=Y (XZ rect), 2=Z (XY rect)
	A0, A1   float64 // Bounds on the first in-plane axis
	B0, B1   float64 // Bounds on the second in-plane axis
	K        float64 // Position on the fixed axis
	Material material.Material
}

// NewXYRect creates a rectangle in the plane z = k
func NewXYRect(x0, x1, y0, y1, k float64, mat material.Material) *AxisRect {
	return &AxisRect{Axis: 2, A0: x0, A1: x1, B0: y0, B1: y1, K: k, Material: mat}
}

// NewXZRect creates a rectangle in the plane y = k
func NewXZRect(x0, x1, z0, z1, k float64, mat material.Material) *AxisRect {
	return &AxisRect{Axis: 1, A0: x0, A1: x1, B0: z0, B1: z1, K: k, Material: mat}
}

// NewYZRect creates a rectangle in the plane x = k
func NewYZRect(y0, y1, z0, z1, k float64, mat material.Material) *AxisRect {
	return &AxisRect{Axis: 0, A0: y0, A1: y1, B0: z0, B1: z1, K: k, Material: mat}
}

// planeAxes returns the two in-plane axes
func (r *AxisRect) planeAxes() (int, int) {
	switch r.Axis {
	case 0:
		return 1, 2
	case 1:
		return 0, 2
	default:
		return 0, 1
	}
}

// Hit tests if a ray crosses the rectangle plane inside its bounds
func (r *AxisRect) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	t := (r.K - ray.Origin.Axis(r.Axis)) / ray.Direction.Axis(r.Axis)
	// Written so NaN from a parallel ray is rejected
	if !(t >= tMin && t <= tMax) {
		return nil, false
	}

	aAxis, bAxis := r.planeAxes()
	a := ray.Origin.Axis(aAxis) + t*ray.Direction.Axis(aAxis)
	b := ray.Origin.Axis(bAxis) + t*ray.Direction.Axis(bAxis)
	if !(a >= r.A0 && a <= r.A1 && b >= r.B0 && b <= r.B1) {
		return nil, false
	}

	hitRecord := &material.HitRecord{
		T:        t,
		Point:    ray.At(t),
		Material: r.Material,
		UV:       core.NewVec2((a-r.A0)/(r.A1-r.A0), (b-r.B0)/(r.B1-r.B0)),
	}
	hitRecord.SetFaceNormal(ray, core.UnitAxis(r.Axis))

	return hitRecord, true
}

// BoundingBox returns the rectangle padded to a thin slab on its fixed axis
func (r *AxisRect) BoundingBox() (core.AABB, bool) {
	aAxis, bAxis := r.planeAxes()
	lo := setAxis(setAxis(setAxis(core.Vec3{}, aAxis, r.A0), bAxis, r.B0), r.Axis, r.K-rectThickness)
	hi := setAxis(setAxis(setAxis(core.Vec3{}, aAxis, r.A1), bAxis, r.B1), r.Axis, r.K+rectThickness)
	return core.NewAABB(lo, hi), true
}

// Area returns the surface area of the rectangle
func (r *AxisRect) Area() float64 {
	return (r.A1 - r.A0) * (r.B1 - r.B0)
}

// PDFValue returns the solid-angle density of sampling direction from origin
// by picking a uniform point on the rectangle. Directions that miss have density 0.
func (r *AxisRect) PDFValue(origin, direction core.Vec3) float64 {
	hit, ok := r.Hit(core.NewRay(origin, direction), lightSampleEpsilon, math.Inf(1))
	if !ok {
		return 0
	}

	distanceSquared := hit.T * hit.T * direction.LengthSquared()
	cosine := math.Abs(direction.Axis(r.Axis)) / direction.Length()

	return distanceSquared / (cosine * r.Area())
}

// RandomPoint returns a uniformly distributed point on the rectangle
func (r *AxisRect) RandomPoint(sampler core.Sampler) core.Vec3 {
	aAxis, bAxis := r.planeAxes()
	sample := sampler.Get2D()
	p := setAxis(core.Vec3{}, aAxis, r.A0+sample.X*(r.A1-r.A0))
	p = setAxis(p, bAxis, r.B0+sample.Y*(r.B1-r.B0))
	return setAxis(p, r.Axis, r.K)
}

// setAxis returns v with the component on axis replaced by value
func setAxis(v core.Vec3, axis int, value float64) core.Vec3 {
	switch axis {
	case 0:
		v.X = value
	case 1:
		v.Y = value
	default:
		v.Z = value
	}
	return v
}
