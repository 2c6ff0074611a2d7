package core

import (
	"cmp"
	"math"
)

// Interval is a closed range of ray parameters
type Interval struct {
	Min, Max float64
}

// NewInterval creates a new interval
func NewInterval(min, max float64) Interval {
	return Interval{Min: min, Max: max}
}

// Overlaps reports whether two intervals share at least one point.
// NaN bounds compare false and therefore count as overlapping.
func (i Interval) Overlaps(other Interval) bool {
	return !(i.Max < other.Min || other.Max < i.Min)
}

// Intersect returns the common part of two intervals.
// A NaN bound in other leaves the corresponding bound of i unchanged.
func (i Interval) Intersect(other Interval) Interval {
	result := i
	if other.Min > result.Min {
		result.Min = other.Min
	}
	if other.Max < result.Max {
		result.Max = other.Max
	}
	return result
}

// AABB is an axis-aligned bounding box given by its two extreme corners
type AABB struct {
	Min, Max Vec3
}

func NewAABB(min, max Vec3) AABB {
	return AABB{Min: min, Max: max}
}

// NewAABBFromPoints creates the smallest AABB containing every point.
// With no points it returns the zero box.
func NewAABBFromPoints(points ...Vec3) AABB {
	if len(points) == 0 {
		return AABB{}
	}
	box := AABB{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		box = box.Union(AABB{Min: p, Max: p})
	}
	return box
}

// Hit reports whether the ray passes through the box within [tMin, tMax] (slab test).
// A zero direction component divides to ±Inf (or NaN on a slab plane); no
// explicit parallel-ray branch is taken so axis-aligned rays follow IEEE arithmetic.
func (aabb AABB) Hit(ray Ray, tMin, tMax float64) bool {
	running := Interval{Min: tMin, Max: tMax}
	for axis := 0; axis < 3; axis++ {
		slab := aabb.slab(ray, axis)
		if !running.Overlaps(slab) {
			return false
		}
		running = running.Intersect(slab)
	}
	return true
}

// slab returns the ordered ray parameters at which the ray crosses the two planes of one axis
func (aabb AABB) slab(ray Ray, axis int) Interval {
	invDirection := 1.0 / ray.Direction.Axis(axis)
	origin := ray.Origin.Axis(axis)

	t1 := (aabb.Min.Axis(axis) - origin) * invDirection
	t2 := (aabb.Max.Axis(axis) - origin) * invDirection
	if t2 < t1 {
		t1, t2 = t2, t1
	}
	return Interval{Min: t1, Max: t2}
}

// Union returns the smallest AABB containing both boxes
func (aabb AABB) Union(other AABB) AABB {
	return AABB{Min: minVec(aabb.Min, other.Min), Max: maxVec(aabb.Max, other.Max)}
}

func minVec(a, b Vec3) Vec3 {
	return Vec3{math.Min(a.X, b.X), math.Min(a.Y, b.Y), math.Min(a.Z, b.Z)}
}

func maxVec(a, b Vec3) Vec3 {
	return Vec3{math.Max(a.X, b.X), math.Max(a.Y, b.Y), math.Max(a.Z, b.Z)}
}

// CompareAxis orders two boxes by their minimum corner on the given axis.
// It is only a sort key for BVH construction; ties are left to the sort.
func CompareAxis(a, b AABB, axis int) int {
	return cmp.Compare(a.Min.Axis(axis), b.Min.Axis(axis))
}
