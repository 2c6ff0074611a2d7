package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/pdf"
)

// HittableList is an unordered collection tested by brute-force iteration.
// Objects is read-only outside Add so the light targets stay in sync.
type HittableList struct {
	Objects []Hittable
	targets []pdf.Target
}

// NewHittableList creates a list from the given objects
func NewHittableList(objects ...Hittable) *HittableList {
	list := &HittableList{}
	for _, object := range objects {
		list.Add(object)
	}
	return list
}

// Add appends an object to the list
func (l *HittableList) Add(object Hittable) {
	l.Objects = append(l.Objects, object)
	if target, ok := object.(pdf.Target); ok {
		l.targets = append(l.targets, target)
	}
}

// Len returns the number of objects
func (l *HittableList) Len() int {
	return len(l.Objects)
}

// Hit returns the closest hit among all objects
func (l *HittableList) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	var closest *material.HitRecord
	closestSoFar := tMax

	for _, object := range l.Objects {
		if hit, ok := object.Hit(ray, tMin, closestSoFar); ok {
			closest = hit
			closestSoFar = hit.T
		}
	}

	return closest, closest != nil
}

// BoundingBox returns the union of all object boxes, or false if the list is
// empty or any object is unbounded
func (l *HittableList) BoundingBox() (core.AABB, bool) {
	if len(l.Objects) == 0 {
		return core.AABB{}, false
	}

	var box core.AABB
	for i, object := range l.Objects {
		objectBox, ok := object.BoundingBox()
		if !ok {
			return core.AABB{}, false
		}
		if i == 0 {
			box = objectBox
		} else {
			box = box.Union(objectBox)
		}
	}
	return box, true
}

// TargetCount returns how many members can be sampled as lights
func (l *HittableList) TargetCount() int {
	return len(l.targets)
}

// PDFValue averages the light densities of all sampleable objects,
// matching RandomPoint's uniform choice between them
func (l *HittableList) PDFValue(origin, direction core.Vec3) float64 {
	if len(l.targets) == 0 {
		return 0
	}

	weight := 1.0 / float64(len(l.targets))
	sum := 0.0
	for _, target := range l.targets {
		sum += weight * target.PDFValue(origin, direction)
	}
	return sum
}

// RandomPoint picks a sampleable object uniformly and returns a point on it.
// With no targets it returns the origin; pdf.Sampleable screens that case out.
func (l *HittableList) RandomPoint(sampler core.Sampler) core.Vec3 {
	if len(l.targets) == 0 {
		return core.Vec3{}
	}

	index := min(int(sampler.Get1D()*float64(len(l.targets))), len(l.targets)-1)
	return l.targets[index].RandomPoint(sampler)
}
