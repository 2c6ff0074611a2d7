package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Box is an axis-aligned box made up of 6 rectangles
type Box struct {
	Min, Max core.Vec3
	sides    *HittableList
}

// NewBox creates a box spanning the corners min and max
func NewBox(min, max core.Vec3, mat material.Material) *Box {
	sides := NewHittableList(
		NewXYRect(min.X, max.X, min.Y, max.Y, max.Z, mat),
		NewXYRect(min.X, max.X, min.Y, max.Y, min.Z, mat),
		NewXZRect(min.X, max.X, min.Z, max.Z, max.Y, mat),
		NewXZRect(min.X, max.X, min.Z, max.Z, min.Y, mat),
		NewYZRect(min.Y, max.Y, min.Z, max.Z, max.X, mat),
		NewYZRect(min.Y, max.Y, min.Z, max.Z, min.X, mat),
	)
	return &Box{Min: min, Max: max, sides: sides}
}

// Hit returns the closest face hit
func (b *Box) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	return b.sides.Hit(ray, tMin, tMax)
}

// BoundingBox returns the box corners padded by the face thickness
func (b *Box) BoundingBox() (core.AABB, bool) {
	return b.sides.BoundingBox()
}
